package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/esmael/chapapay/internal/domain"
	"github.com/esmael/chapapay/internal/storage"
)

// sessionEnvelope matches the dashboard's persisted session shape:
// {"state": {"user": ..., "isAuthenticated": ...}}.
type sessionEnvelope struct {
	State domain.Session `json:"state"`
}

// SessionRepository persists the session snapshot under chapa-auth-storage.
type SessionRepository struct {
	store storage.Store
}

// NewSessionRepository creates a SessionRepository over the store.
func NewSessionRepository(store storage.Store) *SessionRepository {
	return &SessionRepository{store: store}
}

// Get returns the persisted session, or nil when no session was saved.
func (r *SessionRepository) Get(ctx context.Context) (*domain.Session, error) {
	raw, err := r.store.Get(ctx, keyAuthSession)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", keyAuthSession, err)
	}

	var env sessionEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("decode %s: %w", keyAuthSession, err)
	}
	return &env.State, nil
}

// Save overwrites the persisted session snapshot.
func (r *SessionRepository) Save(ctx context.Context, session domain.Session) error {
	raw, err := json.Marshal(sessionEnvelope{State: session})
	if err != nil {
		return fmt.Errorf("encode %s: %w", keyAuthSession, err)
	}
	if err := r.store.Set(ctx, keyAuthSession, raw); err != nil {
		return fmt.Errorf("save %s: %w", keyAuthSession, err)
	}
	return nil
}

// Clear removes the persisted session snapshot.
func (r *SessionRepository) Clear(ctx context.Context) error {
	if err := r.store.Delete(ctx, keyAuthSession); err != nil {
		return fmt.Errorf("clear %s: %w", keyAuthSession, err)
	}
	return nil
}
