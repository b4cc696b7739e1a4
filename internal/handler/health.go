package handler

import (
	"context"
	"log"
	"net/http"
	"time"
)

// Pinger reports whether the backing store is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthResponse is the body of /healthz
type HealthResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// Health serves GET /healthz
func Health(store Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if store != nil {
			if err := store.Ping(ctx); err != nil {
				log.Printf("Health check failed: %v", err)
				writeJSON(w, HealthResponse{Status: "unavailable", Error: "database unreachable"}, http.StatusServiceUnavailable)
				return
			}
		}
		writeJSON(w, HealthResponse{Status: "ok"}, http.StatusOK)
	}
}
