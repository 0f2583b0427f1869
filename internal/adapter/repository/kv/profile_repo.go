package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/esmael/chapapay/internal/domain"
	"github.com/esmael/chapapay/internal/storage"
)

// profileEnvelope matches the dashboard's persisted profile shape:
// {"userProfiles": {"<userId>": {...}}}.
type profileEnvelope struct {
	UserProfiles map[string]domain.UserProfile `json:"userProfiles"`
}

// ProfileRepository persists extended user profiles under
// chapa-user-profiles-storage, all in one keyed map.
type ProfileRepository struct {
	store storage.Store
	mu    sync.Mutex
}

// NewProfileRepository creates a ProfileRepository over the store.
func NewProfileRepository(store storage.Store) *ProfileRepository {
	return &ProfileRepository{store: store}
}

func (r *ProfileRepository) load(ctx context.Context) (profileEnvelope, error) {
	env := profileEnvelope{UserProfiles: make(map[string]domain.UserProfile)}

	raw, err := r.store.Get(ctx, keyUserProfiles)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return env, nil
	}
	if err != nil {
		return env, fmt.Errorf("load %s: %w", keyUserProfiles, err)
	}
	if err := json.Unmarshal(raw, &env); err != nil {
		return env, fmt.Errorf("decode %s: %w", keyUserProfiles, err)
	}
	if env.UserProfiles == nil {
		env.UserProfiles = make(map[string]domain.UserProfile)
	}
	return env, nil
}

// Get returns the stored profile for userID, or nil if none exists.
func (r *ProfileRepository) Get(ctx context.Context, userID string) (*domain.UserProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	env, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	profile, ok := env.UserProfiles[userID]
	if !ok {
		return nil, nil
	}
	return &profile, nil
}

// Save upserts a user's profile.
func (r *ProfileRepository) Save(ctx context.Context, profile domain.UserProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	env, err := r.load(ctx)
	if err != nil {
		return err
	}
	env.UserProfiles[profile.UserID] = profile

	raw, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("encode %s: %w", keyUserProfiles, err)
	}
	if err := r.store.Set(ctx, keyUserProfiles, raw); err != nil {
		return fmt.Errorf("save %s: %w", keyUserProfiles, err)
	}
	return nil
}
