package main

import (
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"sync"
	"time"
)

const baseURL = "http://localhost:8080/orders/track/"

// usage: go run . TRK12345678AB12
func main() {
	fixed := "TRK00000000AAAA"
	if len(os.Args) > 1 {
		fixed = os.Args[1]
	}

	for {
		var wg sync.WaitGroup
		for range rand.Intn(10) {
			wg.Go(func() { doRequest(fixed) })
		}
		wg.Wait()
		time.Sleep(20 * time.Millisecond)
	}
}

func randomTracking() string {
	chars := []rune("ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")
	suffix := make([]rune, 4)
	for i := range suffix {
		suffix[i] = chars[rand.Intn(len(chars))]
	}
	return fmt.Sprintf("TRK%08d%s", rand.Intn(100_000_000), string(suffix))
}

func doRequest(fixed string) {
	tracking := fixed
	if rand.Intn(5) == 0 {
		tracking = randomTracking()
	}

	url := baseURL + tracking
	resp, err := http.Get(url)
	if err != nil {
		fmt.Println("Ошибка запроса:", err)
	} else {
		fmt.Println("GET", url, "->", resp.Status)
		resp.Body.Close()
	}
}
