package middleware

import "net/http"

// Preflight отвечает пустым 200 на любой OPTIONS; CORS-заголовки к этому моменту уже выставлены.
func Preflight(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
