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

// TransactionRepository persists the seeded transaction collection under
// chapa_transactions and one created-transaction log per user under
// chapa_user_<id>. The two sets never mix: only log entries can be updated
// or deleted.
type TransactionRepository struct {
	store storage.Store
	mu    sync.Mutex
}

// NewTransactionRepository creates a TransactionRepository over the store.
func NewTransactionRepository(store storage.Store) *TransactionRepository {
	return &TransactionRepository{store: store}
}

func (r *TransactionRepository) loadList(ctx context.Context, key string) ([]domain.Transaction, error) {
	raw, err := r.store.Get(ctx, key)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return []domain.Transaction{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", key, err)
	}

	var txns []domain.Transaction
	if err := json.Unmarshal(raw, &txns); err != nil {
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}
	return txns, nil
}

func (r *TransactionRepository) saveList(ctx context.Context, key string, txns []domain.Transaction) error {
	raw, err := json.Marshal(txns)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := r.store.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// ListSeeded returns the seeded transaction collection.
func (r *TransactionRepository) ListSeeded(ctx context.Context) ([]domain.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loadList(ctx, keyTransactions)
}

// ReplaceSeeded overwrites the seeded transaction collection.
func (r *TransactionRepository) ReplaceSeeded(ctx context.Context, txns []domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saveList(ctx, keyTransactions, txns)
}

// ListLog returns a user's created-transaction log, newest first.
func (r *TransactionRepository) ListLog(ctx context.Context, userID string) ([]domain.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loadList(ctx, UserLogKey(userID))
}

// SaveLog overwrites a user's created-transaction log.
func (r *TransactionRepository) SaveLog(ctx context.Context, userID string, txns []domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saveList(ctx, UserLogKey(userID), txns)
}
