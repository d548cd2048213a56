package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// Routes returns the gateway router
func (h *Handler) Routes() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/generate", h.HandleGenerate).Methods(http.MethodPost)
	r.HandleFunc("/api/generate", h.HandleGenerate).Methods(http.MethodPost)
	r.HandleFunc("/api/history", h.HandleHistory).Methods(http.MethodGet, http.MethodDelete)
	r.HandleFunc("/api/options", h.HandleOptions).Methods(http.MethodGet)
	r.HandleFunc("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte("OK")); err != nil {
			slog.Error("Unable to write healthcheck", "err", err)
		}
	})
	r.Use(logRequests)
	return r
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		slog.Debug("Request handled", "method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
	})
}
