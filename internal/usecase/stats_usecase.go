package usecase

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/esmael/chapapay/internal/domain"
)

// StatsUseCase serves system statistics. Stats are never read back from
// the snapshot: every call recomputes from the current collections and
// re-persists, so the snapshot cannot drift.
type StatsUseCase struct {
	users   UserRepository
	admins  AdminRepository
	txns    TransactionRepository
	stats   StatsRepository
	latency *Latency
	logger  zerolog.Logger
}

// NewStatsUseCase creates a new StatsUseCase.
func NewStatsUseCase(users UserRepository, admins AdminRepository, txns TransactionRepository, stats StatsRepository, latency *Latency, logger zerolog.Logger) *StatsUseCase {
	return &StatsUseCase{
		users:   users,
		admins:  admins,
		txns:    txns,
		stats:   stats,
		latency: latency,
		logger:  logger.With().Str("component", "stats").Logger(),
	}
}

// GetSystemStats recomputes system statistics from the user, admin, and
// seeded transaction collections and persists the fresh snapshot.
func (uc *StatsUseCase) GetSystemStats(ctx context.Context) (domain.SystemStats, error) {
	if err := uc.latency.Wait(ctx); err != nil {
		return domain.SystemStats{}, err
	}

	users, err := uc.users.List(ctx)
	if err != nil {
		return domain.SystemStats{}, err
	}
	admins, err := uc.admins.List(ctx)
	if err != nil {
		return domain.SystemStats{}, err
	}
	txns, err := uc.txns.ListSeeded(ctx)
	if err != nil {
		return domain.SystemStats{}, err
	}

	stats := domain.ComputeSystemStats(users, admins, txns, time.Now().UTC())
	if err := uc.stats.Save(ctx, stats); err != nil {
		return domain.SystemStats{}, err
	}
	return stats, nil
}
