package handler

import (
	"context"
	"net/http"

	"github.com/esmael/chapapay/internal/adapter/http/dto"
	"github.com/esmael/chapapay/internal/domain"
	"github.com/esmael/chapapay/internal/infrastructure/metrics"
)

// StatsService defines the behavior needed by StatsHandler.
type StatsService interface {
	GetSystemStats(ctx context.Context) (domain.SystemStats, error)
}

// SeedService defines the reset behavior needed by StatsHandler.
type SeedService interface {
	Reset(ctx context.Context) error
}

// StatsHandler serves system statistics and the store reset endpoint.
type StatsHandler struct {
	statsUC StatsService
	seedUC  SeedService
	metrics *metrics.Metrics
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(statsUC StatsService, seedUC SeedService, m *metrics.Metrics) *StatsHandler {
	return &StatsHandler{statsUC: statsUC, seedUC: seedUC, metrics: m}
}

// SystemStats recomputes and returns platform-wide statistics.
func (h *StatsHandler) SystemStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsUC.GetSystemStats(r.Context())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to compute system stats", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, dto.SystemStatsFromDomain(stats))
}

// Reset clears and re-seeds the store.
func (h *StatsHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.seedUC.Reset(r.Context()); err != nil {
		writeError(w, mapDomainError(err), "failed to reset data", err.Error())
		return
	}
	h.metrics.SeedRuns.Inc()

	stats, err := h.statsUC.GetSystemStats(r.Context())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to compute system stats", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, dto.SystemStatsFromDomain(stats))
}
