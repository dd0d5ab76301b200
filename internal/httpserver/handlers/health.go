package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/yohoo/startpage/internal/httpserver/deps"
)

type healthResponse struct {
	Status        string `json:"status"`
	Service       string `json:"service"`
	Version       string `json:"version"`
	UptimeSeconds int64  `json:"uptime_seconds"`
}

// Health serves GET /health.
func Health(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(healthResponse{
			Status:        "ok",
			Service:       d.Service,
			Version:       d.Version,
			UptimeSeconds: int64(time.Since(d.StartTime).Seconds()),
		})
	}
}
