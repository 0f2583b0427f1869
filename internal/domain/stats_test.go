package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestComputeSystemStats(t *testing.T) {
	t.Parallel()

	users := []Account{
		{ID: "user-001", Status: StatusActive},
		{ID: "user-002", Status: StatusActive},
		{ID: "user-003", Status: StatusInactive},
		{ID: "user-004", Status: StatusSuspended},
	}
	admins := []Account{
		{ID: "admin-001", Status: StatusActive},
		{ID: "admin-002", Status: StatusInactive},
	}
	txns := []Transaction{
		{Type: TypeIncome, Status: StatusCompleted, Amount: decimal.NewFromInt(100)},
		{Type: TypeExpense, Status: StatusPending, Amount: decimal.NewFromFloat(50.25)},
		{Type: TypeExpense, Status: StatusFailed, Amount: decimal.NewFromInt(10)},
	}
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	stats := ComputeSystemStats(users, admins, txns, now)

	if stats.TotalUsers != 4 || stats.ActiveUsers != 2 {
		t.Errorf("users: got total=%d active=%d", stats.TotalUsers, stats.ActiveUsers)
	}
	if stats.TotalAdmins != 2 || stats.ActiveAdmins != 1 {
		t.Errorf("admins: got total=%d active=%d", stats.TotalAdmins, stats.ActiveAdmins)
	}
	if stats.TotalTransactions != 3 {
		t.Errorf("expected 3 transactions, got %d", stats.TotalTransactions)
	}
	// Revenue sums every amount regardless of type or status.
	if !stats.TotalRevenue.Equal(decimal.NewFromFloat(160.25)) {
		t.Errorf("expected revenue 160.25, got %s", stats.TotalRevenue)
	}
	if stats.SystemUptime != SystemUptime {
		t.Errorf("expected uptime %s, got %s", SystemUptime, stats.SystemUptime)
	}
	if !stats.LastUpdated.Equal(now) {
		t.Errorf("expected lastUpdated %s, got %s", now, stats.LastUpdated)
	}
}

func TestComputeSystemStatsEmpty(t *testing.T) {
	t.Parallel()

	stats := ComputeSystemStats(nil, nil, nil, time.Now())
	if stats.TotalUsers != 0 || stats.TotalTransactions != 0 {
		t.Fatal("expected zero counts for empty collections")
	}
	if !stats.TotalRevenue.Equal(decimal.Zero) {
		t.Fatalf("expected zero revenue, got %s", stats.TotalRevenue)
	}
}

func TestComputeTransactionStats(t *testing.T) {
	t.Parallel()

	txns := []Transaction{
		{Type: TypeIncome, Status: StatusCompleted, Amount: decimal.NewFromInt(1000)},
		{Type: TypeIncome, Status: StatusPending, Amount: decimal.NewFromInt(500)},
		{Type: TypeExpense, Status: StatusCompleted, Amount: decimal.NewFromFloat(120.75)},
		{Type: TypeExpense, Status: StatusPending, Amount: decimal.NewFromInt(80)},
		{Type: TypeExpense, Status: StatusFailed, Amount: decimal.NewFromInt(40)},
	}

	stats := ComputeTransactionStats(txns)

	if !stats.TotalIncome.Equal(decimal.NewFromInt(1500)) {
		t.Errorf("expected income 1500, got %s", stats.TotalIncome)
	}
	if !stats.TotalExpenses.Equal(decimal.NewFromFloat(240.75)) {
		t.Errorf("expected expenses 240.75, got %s", stats.TotalExpenses)
	}
	if stats.TotalTransactions != 5 {
		t.Errorf("expected 5 transactions, got %d", stats.TotalTransactions)
	}
	if stats.PendingTransactions != 2 {
		t.Errorf("expected 2 pending, got %d", stats.PendingTransactions)
	}
}
