package handler

import (
	"errors"
	"net/http"

	"github.com/esmael/chapapay/internal/storage"
)

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct {
	store storage.Store
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(store storage.Store) *HealthHandler {
	return &HealthHandler{store: store}
}

// Liveness reports that the process is up.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Readiness reports whether the backing store answers.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	_, err := h.store.Get(r.Context(), "health_probe")
	if err != nil && !errors.Is(err, storage.ErrKeyNotFound) {
		writeError(w, http.StatusServiceUnavailable, "store unavailable", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}
