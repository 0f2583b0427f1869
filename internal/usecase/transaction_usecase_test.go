package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/esmael/chapapay/internal/adapter/repository/kv"
	"github.com/esmael/chapapay/internal/domain"
	"github.com/esmael/chapapay/internal/storage"
)

func newTransactionFixture(t *testing.T) (*TransactionUseCase, *kv.TransactionRepository) {
	t.Helper()

	store := storage.NewMemoryStore()
	repo := kv.NewTransactionRepository(store)
	uc := NewTransactionUseCase(repo, nil, zerolog.Nop())
	return uc, repo
}

func seedViewTransactions(t *testing.T, repo *kv.TransactionRepository) {
	t.Helper()

	date := func(s string) time.Time {
		d, _ := time.Parse(time.RFC3339, s)
		return d
	}
	seeded := []domain.Transaction{
		{ID: "TXN-001", UserID: "user-001", Type: domain.TypeIncome, Status: domain.StatusCompleted,
			Amount: decimal.NewFromInt(1000), Category: "Salary", Date: date("2026-08-01T10:00:00Z")},
		{ID: "TXN-002", UserID: "user-002", Type: domain.TypeExpense, Status: domain.StatusPending,
			Amount: decimal.NewFromInt(200), Category: "Shopping", Date: date("2026-08-10T10:00:00Z")},
	}
	if err := repo.ReplaceSeeded(context.Background(), seeded); err != nil {
		t.Fatalf("seed: %v", err)
	}
}

func TestTransactionCreate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("expense gets a one percent fee and lowers the balance", func(t *testing.T) {
		uc, _ := newTransactionFixture(t)

		result, err := uc.Create(ctx, "user-001", CreateTransactionInput{
			Type:        domain.TypeExpense,
			Amount:      decimal.NewFromInt(500),
			Description: "Rent payment",
			Category:    "Rent",
			Recipient:   "Landlord",
		})
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}

		txn := result.Transaction
		if !txn.Fee.Equal(decimal.NewFromInt(5)) {
			t.Errorf("expected fee 5, got %s", txn.Fee)
		}
		if txn.Status != domain.StatusCompleted {
			t.Errorf("expected completed status, got %s", txn.Status)
		}
		if txn.Method != domain.MethodChapaWallet {
			t.Errorf("expected default method, got %s", txn.Method)
		}
		if !strings.HasPrefix(txn.ID, "TXN-") {
			t.Errorf("unexpected id %s", txn.ID)
		}
		if !strings.HasPrefix(txn.Reference, "CHP-") {
			t.Errorf("unexpected reference %s", txn.Reference)
		}

		base, _ := decimal.NewFromString(baseWalletBalance)
		if !result.NewBalance.Equal(base.Sub(decimal.NewFromInt(500))) {
			t.Errorf("unexpected balance %s", result.NewBalance)
		}
	})

	t.Run("income carries no fee and raises the balance", func(t *testing.T) {
		uc, _ := newTransactionFixture(t)

		result, err := uc.Create(ctx, "user-001", CreateTransactionInput{
			Type:   domain.TypeIncome,
			Amount: decimal.NewFromInt(300),
			Method: domain.MethodBankTransfer,
		})
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}
		if !result.Transaction.Fee.Equal(decimal.Zero) {
			t.Errorf("expected zero fee, got %s", result.Transaction.Fee)
		}

		base, _ := decimal.NewFromString(baseWalletBalance)
		if !result.NewBalance.Equal(base.Add(decimal.NewFromInt(300))) {
			t.Errorf("unexpected balance %s", result.NewBalance)
		}
	})

	t.Run("new transactions prepend to the log", func(t *testing.T) {
		uc, repo := newTransactionFixture(t)

		first, _ := uc.Create(ctx, "user-001", CreateTransactionInput{Type: domain.TypeIncome, Amount: decimal.NewFromInt(10)})
		second, _ := uc.Create(ctx, "user-001", CreateTransactionInput{Type: domain.TypeIncome, Amount: decimal.NewFromInt(20)})

		log, err := repo.ListLog(ctx, "user-001")
		if err != nil {
			t.Fatalf("list log: %v", err)
		}
		if len(log) != 2 {
			t.Fatalf("expected 2 log entries, got %d", len(log))
		}
		if log[0].ID != second.Transaction.ID || log[1].ID != first.Transaction.ID {
			t.Fatal("expected newest entry first")
		}
	})

	t.Run("validation", func(t *testing.T) {
		uc, _ := newTransactionFixture(t)

		if _, err := uc.Create(ctx, "u", CreateTransactionInput{Type: "transfer", Amount: decimal.NewFromInt(5)}); !errors.Is(err, domain.ErrInvalidType) {
			t.Errorf("expected ErrInvalidType, got %v", err)
		}
		if _, err := uc.Create(ctx, "u", CreateTransactionInput{Type: domain.TypeIncome, Amount: decimal.Zero}); !errors.Is(err, domain.ErrInvalidAmount) {
			t.Errorf("expected ErrInvalidAmount, got %v", err)
		}
		if _, err := uc.Create(ctx, "u", CreateTransactionInput{Type: domain.TypeIncome, Amount: decimal.NewFromInt(5), Method: "cash"}); !errors.Is(err, domain.ErrInvalidMethod) {
			t.Errorf("expected ErrInvalidMethod, got %v", err)
		}
	})
}

func TestTransactionListMergesLogAndSeeded(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	uc, repo := newTransactionFixture(t)
	seedViewTransactions(t, repo)

	created, err := uc.Create(ctx, "user-001", CreateTransactionInput{Type: domain.TypeExpense, Amount: decimal.NewFromInt(50)})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	all, err := uc.List(ctx, "user-001", domain.TransactionFilter{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 transactions, got %d", len(all))
	}
	// The freshly created transaction is the newest.
	if all[0].ID != created.Transaction.ID {
		t.Fatalf("expected created transaction first, got %s", all[0].ID)
	}

	filtered, err := uc.List(ctx, "user-001", domain.TransactionFilter{Status: domain.StatusPending})
	if err != nil {
		t.Fatalf("filtered list failed: %v", err)
	}
	if len(filtered) != 1 || filtered[0].ID != "TXN-002" {
		t.Fatalf("unexpected filter result %v", filtered)
	}
}

func TestTransactionGetByID(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	uc, repo := newTransactionFixture(t)
	seedViewTransactions(t, repo)

	got, err := uc.GetByID(ctx, "user-001", "TXN-001")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got == nil || got.ID != "TXN-001" {
		t.Fatalf("unexpected result %+v", got)
	}

	missing, err := uc.GetByID(ctx, "user-001", "TXN-999")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for missing id, got %+v", missing)
	}
}

func TestTransactionUpdate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("patches a log entry", func(t *testing.T) {
		uc, _ := newTransactionFixture(t)

		created, _ := uc.Create(ctx, "user-001", CreateTransactionInput{Type: domain.TypeExpense, Amount: decimal.NewFromInt(80)})

		desc := "updated description"
		status := domain.StatusFailed
		got, err := uc.Update(ctx, "user-001", UpdateTransactionInput{
			ID:          created.Transaction.ID,
			Description: &desc,
			Status:      &status,
		})
		if err != nil {
			t.Fatalf("update failed: %v", err)
		}
		if got.Description != desc || got.Status != status {
			t.Fatalf("patch not applied: %+v", got)
		}
		if !got.Amount.Equal(decimal.NewFromInt(80)) {
			t.Fatal("unpatched field changed")
		}
	})

	t.Run("seeded transactions are unreachable", func(t *testing.T) {
		uc, repo := newTransactionFixture(t)
		seedViewTransactions(t, repo)

		desc := "tamper"
		_, err := uc.Update(ctx, "user-001", UpdateTransactionInput{ID: "TXN-001", Description: &desc})
		if !errors.Is(err, domain.ErrTransactionNotFound) {
			t.Fatalf("expected ErrTransactionNotFound, got %v", err)
		}
	})
}

func TestTransactionDelete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	uc, repo := newTransactionFixture(t)
	seedViewTransactions(t, repo)

	created, _ := uc.Create(ctx, "user-001", CreateTransactionInput{Type: domain.TypeIncome, Amount: decimal.NewFromInt(40)})

	if err := uc.Delete(ctx, "user-001", created.Transaction.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	// Deleting a seeded transaction reports not found.
	if err := uc.Delete(ctx, "user-001", "TXN-001"); !errors.Is(err, domain.ErrTransactionNotFound) {
		t.Fatalf("expected ErrTransactionNotFound, got %v", err)
	}

	all, _ := uc.List(ctx, "user-001", domain.TransactionFilter{})
	if len(all) != 2 {
		t.Fatalf("expected the 2 seeded transactions, got %d", len(all))
	}
}

func TestTransactionStats(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	uc, repo := newTransactionFixture(t)
	seedViewTransactions(t, repo)

	before, err := uc.Stats(ctx, "user-001")
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if before.TotalTransactions != 2 {
		t.Fatalf("expected 2 transactions, got %d", before.TotalTransactions)
	}
	if !before.TotalIncome.Equal(decimal.NewFromInt(1000)) {
		t.Fatalf("expected income 1000, got %s", before.TotalIncome)
	}
	if before.PendingTransactions != 1 {
		t.Fatalf("expected 1 pending, got %d", before.PendingTransactions)
	}

	// Stats are recomputed after every change.
	if _, err := uc.Create(ctx, "user-001", CreateTransactionInput{Type: domain.TypeExpense, Amount: decimal.NewFromInt(100)}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	after, err := uc.Stats(ctx, "user-001")
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if after.TotalTransactions != 3 {
		t.Fatalf("expected 3 transactions, got %d", after.TotalTransactions)
	}
	if !after.TotalExpenses.Equal(before.TotalExpenses.Add(decimal.NewFromInt(100))) {
		t.Fatalf("expected expense delta of 100, got %s", after.TotalExpenses)
	}
}
