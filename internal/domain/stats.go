package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SystemUptime is the constant uptime figure the dashboard displays. The
// platform does not measure real uptime.
const SystemUptime = "99.9%"

// SystemStats is a derived aggregate over the account and transaction
// collections. It is never mutated directly; recompute it on every read.
type SystemStats struct {
	TotalUsers        int             `json:"totalUsers"`
	ActiveUsers       int             `json:"activeUsers"`
	TotalAdmins       int             `json:"totalAdmins"`
	ActiveAdmins      int             `json:"activeAdmins"`
	TotalTransactions int             `json:"totalTransactions"`
	TotalRevenue      decimal.Decimal `json:"totalRevenue"`
	SystemUptime      string          `json:"systemUptime"`
	LastUpdated       time.Time       `json:"lastUpdated"`
}

// ComputeSystemStats derives system statistics from the current
// collections. TotalRevenue is the sum of all transaction amounts
// regardless of type or status.
func ComputeSystemStats(users, admins []Account, txns []Transaction, now time.Time) SystemStats {
	stats := SystemStats{
		TotalUsers:        len(users),
		TotalAdmins:       len(admins),
		TotalTransactions: len(txns),
		TotalRevenue:      decimal.Zero,
		SystemUptime:      SystemUptime,
		LastUpdated:       now,
	}
	for _, u := range users {
		if u.IsActive() {
			stats.ActiveUsers++
		}
	}
	for _, a := range admins {
		if a.IsActive() {
			stats.ActiveAdmins++
		}
	}
	for _, t := range txns {
		stats.TotalRevenue = stats.TotalRevenue.Add(t.Amount)
	}
	return stats
}

// TransactionStats summarizes a single user's merged transaction view.
type TransactionStats struct {
	TotalIncome         decimal.Decimal `json:"totalIncome"`
	TotalExpenses       decimal.Decimal `json:"totalExpenses"`
	TotalTransactions   int             `json:"totalTransactions"`
	PendingTransactions int             `json:"pendingTransactions"`
}

// ComputeTransactionStats accumulates income, expense, count, and pending
// count in a single pass.
func ComputeTransactionStats(txns []Transaction) TransactionStats {
	stats := TransactionStats{
		TotalIncome:   decimal.Zero,
		TotalExpenses: decimal.Zero,
	}
	for _, t := range txns {
		stats.TotalTransactions++
		switch t.Type {
		case TypeIncome:
			stats.TotalIncome = stats.TotalIncome.Add(t.Amount)
		case TypeExpense:
			stats.TotalExpenses = stats.TotalExpenses.Add(t.Amount)
		}
		if t.Status == StatusPending {
			stats.PendingTransactions++
		}
	}
	return stats
}
