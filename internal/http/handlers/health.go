package handlers

import (
	"context"
	"net/http"
	"time"
)

const serviceName = "mizhuo-backend"

// HealthHandler reports service identity, uptime, and whether the user
// store is reachable.
type HealthHandler struct {
	startedAt time.Time
	// ping checks the user store; nil means no store is wired (tests).
	ping func(ctx context.Context) error
}

// NewHealthHandler creates a health endpoint handler. ping may be nil.
func NewHealthHandler(startedAt time.Time, ping func(ctx context.Context) error) *HealthHandler {
	return &HealthHandler{startedAt: startedAt, ping: ping}
}

// Register wires the handler into a ServeMux.
func (h *HealthHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/health", h.handle)
}

func (h *HealthHandler) handle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	status := http.StatusOK
	store := "ok"
	if h.ping != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := h.ping(ctx); err != nil {
			status = http.StatusServiceUnavailable
			store = "unreachable"
		}
	}

	respondJSON(w, status, map[string]string{
		"service": serviceName,
		"status":  statusWord(status),
		"store":   store,
		"uptime":  time.Since(h.startedAt).Truncate(time.Second).String(),
	})
}

func statusWord(status int) string {
	if status == http.StatusOK {
		return "ok"
	}
	return "degraded"
}
