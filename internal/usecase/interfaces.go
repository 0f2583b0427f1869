package usecase

import (
	"context"

	"github.com/esmael/chapapay/internal/domain"
)

// UserRepository defines data access for the regular-user collection.
type UserRepository interface {
	List(ctx context.Context) ([]domain.Account, error)
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	Create(ctx context.Context, account domain.Account) error
	Update(ctx context.Context, account domain.Account) error
	Delete(ctx context.Context, id string) error
	ReplaceAll(ctx context.Context, accounts []domain.Account) error
}

// AdminRepository defines data access for the administrator collection.
type AdminRepository interface {
	List(ctx context.Context) ([]domain.Account, error)
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	Create(ctx context.Context, account domain.Account) error
	Update(ctx context.Context, account domain.Account) error
	Delete(ctx context.Context, id string) error
	ReplaceAll(ctx context.Context, accounts []domain.Account) error
}

// TransactionRepository defines data access for the seeded transaction
// collection and the per-user created-transaction logs.
type TransactionRepository interface {
	ListSeeded(ctx context.Context) ([]domain.Transaction, error)
	ReplaceSeeded(ctx context.Context, txns []domain.Transaction) error
	ListLog(ctx context.Context, userID string) ([]domain.Transaction, error)
	SaveLog(ctx context.Context, userID string, txns []domain.Transaction) error
}

// StatsRepository defines data access for the SystemStats snapshot.
type StatsRepository interface {
	Get(ctx context.Context) (*domain.SystemStats, error)
	Save(ctx context.Context, stats domain.SystemStats) error
}

// SessionRepository defines data access for the session snapshot.
type SessionRepository interface {
	Get(ctx context.Context) (*domain.Session, error)
	Save(ctx context.Context, session domain.Session) error
	Clear(ctx context.Context) error
}

// ProfileRepository defines data access for extended user profiles.
type ProfileRepository interface {
	Get(ctx context.Context, userID string) (*domain.UserProfile, error)
	Save(ctx context.Context, profile domain.UserProfile) error
}
