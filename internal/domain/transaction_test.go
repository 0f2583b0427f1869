package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func sampleTransactions() []Transaction {
	date := func(s string) time.Time {
		d, _ := time.Parse("2006-01-02", s)
		return d
	}
	return []Transaction{
		{
			ID: "TXN-001", Type: TypeIncome, Status: StatusCompleted,
			Category: "Salary", Amount: decimal.NewFromInt(5000),
			Description: "Monthly salary", Sender: "Acme PLC",
			Reference: "CHP-00000001", Date: date("2026-08-01"),
		},
		{
			ID: "TXN-002", Type: TypeExpense, Status: StatusPending,
			Category: "Shopping", Amount: decimal.NewFromFloat(250.50),
			Description: "Grocery run", Recipient: "Shoa Supermarket",
			Reference: "CHP-00000002", Date: date("2026-08-10"),
		},
		{
			ID: "TXN-003", Type: TypeExpense, Status: StatusFailed,
			Category: "Utilities", Amount: decimal.NewFromInt(300),
			Description: "Electricity bill", Recipient: "EEU",
			Reference: "CHP-00000003", Date: date("2026-08-15"),
		},
		{
			ID: "TXN-004", Type: TypeIncome, Status: StatusCompleted,
			Category: "Refund", Amount: decimal.NewFromInt(120),
			Description: "Order refund", Sender: "Shoa Supermarket",
			Reference: "CHP-00000004", Date: date("2026-08-20"),
		},
	}
}

func TestFilterTransactions(t *testing.T) {
	t.Parallel()

	txns := sampleTransactions()

	tests := []struct {
		name   string
		filter TransactionFilter
		want   []string
	}{
		{"empty filter returns all", TransactionFilter{}, []string{"TXN-001", "TXN-002", "TXN-003", "TXN-004"}},
		{"by type", TransactionFilter{Type: TypeExpense}, []string{"TXN-002", "TXN-003"}},
		{"by status", TransactionFilter{Status: StatusCompleted}, []string{"TXN-001", "TXN-004"}},
		{"by category", TransactionFilter{Category: "Utilities"}, []string{"TXN-003"}},
		{"date from inclusive", TransactionFilter{DateFrom: "2026-08-15"}, []string{"TXN-003", "TXN-004"}},
		{"date to inclusive", TransactionFilter{DateTo: "2026-08-10"}, []string{"TXN-001", "TXN-002"}},
		{"date range", TransactionFilter{DateFrom: "2026-08-05", DateTo: "2026-08-18"}, []string{"TXN-002", "TXN-003"}},
		{"search matches description", TransactionFilter{Search: "grocery"}, []string{"TXN-002"}},
		{"search matches counterparty", TransactionFilter{Search: "shoa"}, []string{"TXN-002", "TXN-004"}},
		{"search matches amount", TransactionFilter{Search: "250.5"}, []string{"TXN-002"}},
		{"search matches reference", TransactionFilter{Search: "chp-00000003"}, []string{"TXN-003"}},
		{"combined", TransactionFilter{Type: TypeExpense, Status: StatusPending}, []string{"TXN-002"}},
		{"no match", TransactionFilter{Search: "does-not-exist"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterTransactions(txns, tt.filter)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d results, got %d", len(tt.want), len(got))
			}
			for i, id := range tt.want {
				if got[i].ID != id {
					t.Errorf("result[%d] = %s, want %s", i, got[i].ID, id)
				}
			}
		})
	}
}

func TestFilterTransactionsDoesNotMutate(t *testing.T) {
	t.Parallel()

	txns := sampleTransactions()
	before := make([]string, len(txns))
	for i, tx := range txns {
		before[i] = tx.ID
	}

	FilterTransactions(txns, TransactionFilter{Type: TypeIncome})

	for i, tx := range txns {
		if tx.ID != before[i] {
			t.Fatalf("input slice mutated at %d: %s != %s", i, tx.ID, before[i])
		}
	}
}

func TestFilterTransactionsIdempotent(t *testing.T) {
	t.Parallel()

	txns := sampleTransactions()
	f := TransactionFilter{Status: StatusCompleted}

	once := FilterTransactions(txns, f)
	twice := FilterTransactions(once, f)

	if len(once) != len(twice) {
		t.Fatalf("filter not idempotent: %d then %d", len(once), len(twice))
	}
}

func TestSortTransactionsByDateDesc(t *testing.T) {
	t.Parallel()

	txns := sampleTransactions()
	SortTransactionsByDateDesc(txns)

	for i := 1; i < len(txns); i++ {
		if txns[i].Date.After(txns[i-1].Date) {
			t.Fatalf("not sorted descending at index %d", i)
		}
	}
	if txns[0].ID != "TXN-004" {
		t.Fatalf("expected newest first, got %s", txns[0].ID)
	}
}

func TestTransactionTypeIsValid(t *testing.T) {
	t.Parallel()

	if !TypeIncome.IsValid() || !TypeExpense.IsValid() {
		t.Error("known types should be valid")
	}
	if TransactionType("transfer").IsValid() {
		t.Error("unknown type should be invalid")
	}
}

func TestPaymentMethodIsValid(t *testing.T) {
	t.Parallel()

	for _, m := range []PaymentMethod{MethodChapaWallet, MethodBankTransfer, MethodCard, MethodMobileMoney} {
		if !m.IsValid() {
			t.Errorf("expected %s to be valid", m)
		}
	}
	if PaymentMethod("cash").IsValid() {
		t.Error("unknown method should be invalid")
	}
}
