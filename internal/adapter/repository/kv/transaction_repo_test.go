package kv

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/esmael/chapapay/internal/domain"
	"github.com/esmael/chapapay/internal/storage"
)

func TestTransactionRepository(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := storage.NewMemoryStore()
	repo := NewTransactionRepository(store)

	t.Run("empty collections list empty", func(t *testing.T) {
		seeded, err := repo.ListSeeded(ctx)
		if err != nil || len(seeded) != 0 {
			t.Fatalf("expected empty seeded list, got %d, %v", len(seeded), err)
		}
		log, err := repo.ListLog(ctx, "user-001")
		if err != nil || len(log) != 0 {
			t.Fatalf("expected empty log, got %d, %v", len(log), err)
		}
	})

	t.Run("seeded and per-user logs are separate keys", func(t *testing.T) {
		seeded := []domain.Transaction{
			{ID: "TXN-001", UserID: "user-001", Type: domain.TypeIncome, Amount: decimal.NewFromInt(100)},
		}
		if err := repo.ReplaceSeeded(ctx, seeded); err != nil {
			t.Fatalf("replace seeded failed: %v", err)
		}

		log := []domain.Transaction{
			{ID: "TXN-100", UserID: "user-001", Type: domain.TypeExpense, Amount: decimal.NewFromInt(50)},
		}
		if err := repo.SaveLog(ctx, "user-001", log); err != nil {
			t.Fatalf("save log failed: %v", err)
		}

		if _, err := store.Get(ctx, "chapa_transactions"); err != nil {
			t.Fatalf("expected chapa_transactions key: %v", err)
		}
		if _, err := store.Get(ctx, "chapa_user_user-001"); err != nil {
			t.Fatalf("expected chapa_user_user-001 key: %v", err)
		}

		gotSeeded, _ := repo.ListSeeded(ctx)
		if len(gotSeeded) != 1 || gotSeeded[0].ID != "TXN-001" {
			t.Fatalf("seeded collection polluted: %v", gotSeeded)
		}
		gotLog, _ := repo.ListLog(ctx, "user-001")
		if len(gotLog) != 1 || gotLog[0].ID != "TXN-100" {
			t.Fatalf("log polluted: %v", gotLog)
		}
	})

	t.Run("logs are isolated per user", func(t *testing.T) {
		other, err := repo.ListLog(ctx, "user-002")
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if len(other) != 0 {
			t.Fatalf("expected empty log for other user, got %d", len(other))
		}
	})
}

func TestStatsRepository(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := storage.NewMemoryStore()
	repo := NewStatsRepository(store)

	t.Run("absent snapshot returns nil", func(t *testing.T) {
		stats, err := repo.Get(ctx)
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if stats != nil {
			t.Fatalf("expected nil, got %+v", stats)
		}
	})

	t.Run("save and read back under chapa_system_stats", func(t *testing.T) {
		in := domain.SystemStats{TotalUsers: 8, TotalTransactions: 150, SystemUptime: domain.SystemUptime}
		if err := repo.Save(ctx, in); err != nil {
			t.Fatalf("save failed: %v", err)
		}

		if _, err := store.Get(ctx, "chapa_system_stats"); errors.Is(err, storage.ErrKeyNotFound) {
			t.Fatal("expected chapa_system_stats key")
		}

		got, err := repo.Get(ctx)
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if got.TotalUsers != 8 || got.TotalTransactions != 150 {
			t.Fatalf("unexpected snapshot %+v", got)
		}
	})
}
