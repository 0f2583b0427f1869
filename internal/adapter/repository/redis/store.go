// Package redis provides a storage.Store backed by Redis, for running the
// platform against a durable external store instead of process memory.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/redis/go-redis/v9"

	"github.com/esmael/chapapay/internal/storage"
)

// Store implements storage.Store on a Redis client. Keys are stored
// verbatim; the chapa_* namespace already avoids collisions.
type Store struct {
	client *redis.Client
}

// NewClient connects to Redis, retrying the initial ping with exponential
// backoff so the service survives a store that comes up slightly later.
func NewClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 100 * time.Millisecond
	b.MaxInterval = 2 * time.Second
	b.MaxElapsedTime = 15 * time.Second

	err = backoff.Retry(func() error {
		return client.Ping(ctx).Err()
	}, backoff.WithContext(b, ctx))
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return client, nil
}

// NewStore creates a Store on an established client.
func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

// Get retrieves the value stored under key.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	raw, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, storage.ErrKeyNotFound
	}
	if err != nil {
		return nil, err
	}
	return raw, nil
}

// Set stores value under key without expiry; snapshots are durable.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	return s.client.Set(ctx, key, value, 0).Err()
}

// Delete removes key. Deleting an absent key is not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}
