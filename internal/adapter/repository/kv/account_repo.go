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

// accountCollection is a JSON array of accounts under a single key. The
// mutex serializes read-modify-write cycles so that concurrent patches do
// not drop each other's writes.
type accountCollection struct {
	store    storage.Store
	key      string
	notFound error
	mu       sync.Mutex
}

func (c *accountCollection) load(ctx context.Context) ([]domain.Account, error) {
	raw, err := c.store.Get(ctx, c.key)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return []domain.Account{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", c.key, err)
	}

	var accounts []domain.Account
	if err := json.Unmarshal(raw, &accounts); err != nil {
		return nil, fmt.Errorf("decode %s: %w", c.key, err)
	}
	return accounts, nil
}

func (c *accountCollection) save(ctx context.Context, accounts []domain.Account) error {
	raw, err := json.Marshal(accounts)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.key, err)
	}
	if err := c.store.Set(ctx, c.key, raw); err != nil {
		return fmt.Errorf("save %s: %w", c.key, err)
	}
	return nil
}

func (c *accountCollection) list(ctx context.Context) ([]domain.Account, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load(ctx)
}

func (c *accountCollection) getByID(ctx context.Context, id string) (*domain.Account, error) {
	accounts, err := c.list(ctx)
	if err != nil {
		return nil, err
	}
	for i := range accounts {
		if accounts[i].ID == id {
			return &accounts[i], nil
		}
	}
	return nil, c.notFound
}

func (c *accountCollection) getByEmail(ctx context.Context, email string) (*domain.Account, error) {
	email = domain.NormalizeEmail(email)
	accounts, err := c.list(ctx)
	if err != nil {
		return nil, err
	}
	for i := range accounts {
		if domain.NormalizeEmail(accounts[i].Email) == email {
			return &accounts[i], nil
		}
	}
	return nil, c.notFound
}

func (c *accountCollection) create(ctx context.Context, account domain.Account) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	accounts, err := c.load(ctx)
	if err != nil {
		return err
	}
	return c.save(ctx, append(accounts, account))
}

func (c *accountCollection) update(ctx context.Context, account domain.Account) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	accounts, err := c.load(ctx)
	if err != nil {
		return err
	}
	for i := range accounts {
		if accounts[i].ID == account.ID {
			accounts[i] = account
			return c.save(ctx, accounts)
		}
	}
	return c.notFound
}

func (c *accountCollection) delete(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	accounts, err := c.load(ctx)
	if err != nil {
		return err
	}
	kept := accounts[:0]
	for _, a := range accounts {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	if len(kept) == len(accounts) {
		return c.notFound
	}
	return c.save(ctx, kept)
}

func (c *accountCollection) replaceAll(ctx context.Context, accounts []domain.Account) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.save(ctx, accounts)
}

// UserRepository persists the regular-user collection under chapa_users.
type UserRepository struct {
	col accountCollection
}

// NewUserRepository creates a UserRepository over the store.
func NewUserRepository(store storage.Store) *UserRepository {
	return &UserRepository{col: accountCollection{
		store:    store,
		key:      keyUsers,
		notFound: domain.ErrUserNotFound,
	}}
}

func (r *UserRepository) List(ctx context.Context) ([]domain.Account, error) {
	return r.col.list(ctx)
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	return r.col.getByID(ctx, id)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	return r.col.getByEmail(ctx, email)
}

func (r *UserRepository) Create(ctx context.Context, account domain.Account) error {
	return r.col.create(ctx, account)
}

func (r *UserRepository) Update(ctx context.Context, account domain.Account) error {
	return r.col.update(ctx, account)
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	return r.col.delete(ctx, id)
}

func (r *UserRepository) ReplaceAll(ctx context.Context, accounts []domain.Account) error {
	return r.col.replaceAll(ctx, accounts)
}

// AdminRepository persists the administrator collection under chapa_admins.
type AdminRepository struct {
	col accountCollection
}

// NewAdminRepository creates an AdminRepository over the store.
func NewAdminRepository(store storage.Store) *AdminRepository {
	return &AdminRepository{col: accountCollection{
		store:    store,
		key:      keyAdmins,
		notFound: domain.ErrAdminNotFound,
	}}
}

func (r *AdminRepository) List(ctx context.Context) ([]domain.Account, error) {
	return r.col.list(ctx)
}

func (r *AdminRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	return r.col.getByID(ctx, id)
}

func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	return r.col.getByEmail(ctx, email)
}

func (r *AdminRepository) Create(ctx context.Context, account domain.Account) error {
	return r.col.create(ctx, account)
}

func (r *AdminRepository) Update(ctx context.Context, account domain.Account) error {
	return r.col.update(ctx, account)
}

func (r *AdminRepository) Delete(ctx context.Context, id string) error {
	return r.col.delete(ctx, id)
}

func (r *AdminRepository) ReplaceAll(ctx context.Context, accounts []domain.Account) error {
	return r.col.replaceAll(ctx, accounts)
}
