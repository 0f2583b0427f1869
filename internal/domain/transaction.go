package domain

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies the direction of a transaction relative to
// the owning wallet.
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

var validTransactionTypes = map[TransactionType]bool{
	TypeIncome:  true,
	TypeExpense: true,
}

// IsValid checks if the transaction type is known.
func (t TransactionType) IsValid() bool {
	return validTransactionTypes[t]
}

// TransactionStatus is the settlement state of a transaction. All three
// states are terminal; no further transitions are modeled.
type TransactionStatus string

const (
	StatusCompleted TransactionStatus = "completed"
	StatusPending   TransactionStatus = "pending"
	StatusFailed    TransactionStatus = "failed"
)

// PaymentMethod is the channel a transaction settled through.
type PaymentMethod string

const (
	MethodChapaWallet  PaymentMethod = "chapa_wallet"
	MethodBankTransfer PaymentMethod = "bank_transfer"
	MethodCard         PaymentMethod = "card"
	MethodMobileMoney  PaymentMethod = "mobile_money"
)

var validPaymentMethods = map[PaymentMethod]bool{
	MethodChapaWallet:  true,
	MethodBankTransfer: true,
	MethodCard:         true,
	MethodMobileMoney:  true,
}

// IsValid checks if the payment method is known.
func (m PaymentMethod) IsValid() bool {
	return validPaymentMethods[m]
}

// Transaction is an immutable financial event with a mutable status.
// Amount is always positive; Fee is a non-negative surcharge; Reference is
// a unique external code.
type Transaction struct {
	ID          string            `json:"id"`
	UserID      string            `json:"userId"`
	Type        TransactionType   `json:"type"`
	Amount      decimal.Decimal   `json:"amount"`
	Description string            `json:"description"`
	Date        time.Time         `json:"date"`
	Status      TransactionStatus `json:"status"`
	Category    string            `json:"category"`
	Method      PaymentMethod     `json:"method"`
	Recipient   string            `json:"recipient,omitempty"`
	Sender      string            `json:"sender,omitempty"`
	Reference   string            `json:"reference"`
	Fee         decimal.Decimal   `json:"fee"`
}

// searchBlob joins the searchable fields of the transaction into a single
// lowercase string for free-text matching.
func (t *Transaction) searchBlob() string {
	return strings.ToLower(strings.Join([]string{
		t.Description,
		t.Recipient,
		t.Sender,
		t.Amount.String(),
		t.Reference,
	}, " "))
}

// TransactionFilter narrows a transaction list. Zero-value fields do not
// filter. Date bounds are inclusive and compared on the calendar date
// (YYYY-MM-DD) of the transaction.
type TransactionFilter struct {
	Type     TransactionType
	Status   TransactionStatus
	Category string
	DateFrom string
	DateTo   string
	Search   string
}

const filterDateLayout = "2006-01-02"

// FilterTransactions returns the transactions matching the filter in a
// fresh slice, applying criteria in a fixed order: type, status, category,
// date range, free-text search. The input is never mutated.
func FilterTransactions(txns []Transaction, f TransactionFilter) []Transaction {
	out := make([]Transaction, 0, len(txns))
	search := strings.ToLower(strings.TrimSpace(f.Search))

	for _, t := range txns {
		if f.Type != "" && t.Type != f.Type {
			continue
		}
		if f.Status != "" && t.Status != f.Status {
			continue
		}
		if f.Category != "" && t.Category != f.Category {
			continue
		}
		date := t.Date.Format(filterDateLayout)
		if f.DateFrom != "" && date < f.DateFrom {
			continue
		}
		if f.DateTo != "" && date > f.DateTo {
			continue
		}
		if search != "" && !strings.Contains(t.searchBlob(), search) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// SortTransactionsByDateDesc sorts transactions newest first, in place.
func SortTransactionsByDateDesc(txns []Transaction) {
	sort.SliceStable(txns, func(i, j int) bool {
		return txns[i].Date.After(txns[j].Date)
	})
}
