package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/esmael/chapapay/internal/domain"
	"github.com/esmael/chapapay/internal/storage"
)

// StatsRepository persists the last computed SystemStats snapshot under
// chapa_system_stats. The snapshot is write-mostly; reads recompute.
type StatsRepository struct {
	store storage.Store
}

// NewStatsRepository creates a StatsRepository over the store.
func NewStatsRepository(store storage.Store) *StatsRepository {
	return &StatsRepository{store: store}
}

// Get returns the persisted snapshot, or nil if none exists yet.
func (r *StatsRepository) Get(ctx context.Context) (*domain.SystemStats, error) {
	raw, err := r.store.Get(ctx, keySystemStats)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", keySystemStats, err)
	}

	var stats domain.SystemStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		return nil, fmt.Errorf("decode %s: %w", keySystemStats, err)
	}
	return &stats, nil
}

// Save overwrites the persisted snapshot.
func (r *StatsRepository) Save(ctx context.Context, stats domain.SystemStats) error {
	raw, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("encode %s: %w", keySystemStats, err)
	}
	if err := r.store.Set(ctx, keySystemStats, raw); err != nil {
		return fmt.Errorf("save %s: %w", keySystemStats, err)
	}
	return nil
}
