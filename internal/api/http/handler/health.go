package handler

import (
	"context"
	"net/http"

	"github.com/dkarpov/notes-server/internal/logger"
)

// Pinger reports whether the persistent store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Health handles the liveness endpoint.
type Health struct {
	pinger Pinger
	logger *logger.Logger
}

// NewHealth creates a new Health handler.
func NewHealth(pinger Pinger, logger *logger.Logger) *Health {
	return &Health{pinger: pinger, logger: logger}
}

type healthResponse struct {
	Status string `json:"status"`
}

// Check reports ok when the store responds to a ping.
func (h *Health) Check(w http.ResponseWriter, r *http.Request) {
	if err := h.pinger.Ping(r.Context()); err != nil {
		h.logger.Error("Health handler: store ping failed", "error", err.Error())
		writeJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "unavailable"})
		return
	}

	writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}
