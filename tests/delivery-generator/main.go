package main

import (
	"context"
	"encoding/json"
	"log"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"
)

type DeliveryEvent struct {
	TrackingNumber string    `json:"tracking_number"`
	Status         string    `json:"status"`
	OccurredAt     time.Time `json:"occurred_at"`
}

var statuses = []string{"processing", "shipped", "delivered", "cancelled"}

// usage: delivery-generator TRK12345678AB12 TRK87654321CD34 ...
func main() {
	trackingNumbers := os.Args[1:]
	if len(trackingNumbers) == 0 {
		log.Fatal("pass at least one tracking number")
	}

	brokers := "localhost:9092"
	if v, ok := os.LookupEnv("KAFKA_BROKERS"); ok {
		brokers = v
	}

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers),
		Topic:                  "deliveries",
		AllowAutoTopicCreation: true,
	}
	defer writer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			ev := DeliveryEvent{
				TrackingNumber: trackingNumbers[rand.IntN(len(trackingNumbers))],
				Status:         statuses[rand.IntN(len(statuses))],
				OccurredAt:     time.Now().UTC(),
			}
			// изредка шлём мусор, чтобы проверить DLQ
			if rand.IntN(10) == 0 {
				ev.Status = "lost"
			}

			data, _ := json.Marshal(ev)
			if err := writer.WriteMessages(ctx, kafka.Message{Key: []byte(ev.TrackingNumber), Value: data}); err != nil {
				log.Println("failed to write event:", err)
				continue
			}
			log.Println("event sent", ev.TrackingNumber, ev.Status)
		case <-ctx.Done():
			return
		}
	}
}
