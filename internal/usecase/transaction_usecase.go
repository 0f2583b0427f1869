package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/esmael/chapapay/internal/domain"
)

// TransactionUseCase unifies the seeded transaction collection with a
// user's created-transaction log and provides filtering, CRUD, and
// statistics over the union. Only log entries can be updated or deleted;
// seeded transactions are immutable through this service.
type TransactionUseCase struct {
	txns    TransactionRepository
	latency *Latency
	logger  zerolog.Logger
}

// NewTransactionUseCase creates a new TransactionUseCase.
func NewTransactionUseCase(txns TransactionRepository, latency *Latency, logger zerolog.Logger) *TransactionUseCase {
	return &TransactionUseCase{
		txns:    txns,
		latency: latency,
		logger:  logger.With().Str("component", "transactions").Logger(),
	}
}

// merged returns the user's log and the seeded collection as one slice,
// newest first. Log entries come first among equal dates.
func (uc *TransactionUseCase) merged(ctx context.Context, userID string) ([]domain.Transaction, error) {
	log, err := uc.txns.ListLog(ctx, userID)
	if err != nil {
		return nil, err
	}
	seeded, err := uc.txns.ListSeeded(ctx)
	if err != nil {
		return nil, err
	}

	all := make([]domain.Transaction, 0, len(log)+len(seeded))
	all = append(all, log...)
	all = append(all, seeded...)
	domain.SortTransactionsByDateDesc(all)
	return all, nil
}

// List returns the merged transaction view narrowed by the filter.
func (uc *TransactionUseCase) List(ctx context.Context, userID string, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	if err := uc.latency.Wait(ctx); err != nil {
		return nil, err
	}

	all, err := uc.merged(ctx, userID)
	if err != nil {
		return nil, err
	}
	return domain.FilterTransactions(all, filter), nil
}

// GetByID finds a transaction in the merged view. A missing id is not an
// error; the result is simply nil.
func (uc *TransactionUseCase) GetByID(ctx context.Context, userID, id string) (*domain.Transaction, error) {
	if err := uc.latency.Wait(ctx); err != nil {
		return nil, err
	}

	all, err := uc.merged(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].ID == id {
			return &all[i], nil
		}
	}
	return nil, nil
}

// CreateTransactionInput is the send-money payload.
type CreateTransactionInput struct {
	Type        domain.TransactionType
	Amount      decimal.Decimal
	Description string
	Category    string
	Method      domain.PaymentMethod
	Recipient   string
}

// CreateTransactionResult is the created record plus the mock wallet
// balance after it.
type CreateTransactionResult struct {
	Transaction domain.Transaction
	NewBalance  decimal.Decimal
}

// Create records a new transaction in the user's log. The status is always
// completed; the id and reference are freshly generated; the new balance is
// computed from a constant base, not a real ledger.
func (uc *TransactionUseCase) Create(ctx context.Context, userID string, input CreateTransactionInput) (*CreateTransactionResult, error) {
	if !input.Type.IsValid() {
		return nil, domain.ErrInvalidType
	}
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}
	method := input.Method
	if method == "" {
		method = domain.MethodChapaWallet
	}
	if !method.IsValid() {
		return nil, domain.ErrInvalidMethod
	}

	if err := uc.latency.Wait(ctx); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	fee := decimal.Zero
	if input.Type == domain.TypeExpense {
		rate, _ := decimal.NewFromString(expenseFeeRate)
		fee = input.Amount.Mul(rate).Round(2)
	}

	txn := domain.Transaction{
		ID:          newTransactionID(now),
		UserID:      userID,
		Type:        input.Type,
		Amount:      input.Amount,
		Description: input.Description,
		Date:        now,
		Status:      domain.StatusCompleted,
		Category:    input.Category,
		Method:      method,
		Recipient:   input.Recipient,
		Reference:   "CHP-" + ulid.Make().String(),
		Fee:         fee,
	}

	log, err := uc.txns.ListLog(ctx, userID)
	if err != nil {
		return nil, err
	}
	log = append([]domain.Transaction{txn}, log...)
	if err := uc.txns.SaveLog(ctx, userID, log); err != nil {
		return nil, err
	}

	base, _ := decimal.NewFromString(baseWalletBalance)
	newBalance := base.Add(txn.Amount)
	if txn.Type == domain.TypeExpense {
		newBalance = base.Sub(txn.Amount)
	}

	uc.logger.Info().
		Str("transaction_id", txn.ID).
		Str("user_id", userID).
		Str("amount", txn.Amount.String()).
		Msg("transaction created")
	return &CreateTransactionResult{Transaction: txn, NewBalance: newBalance}, nil
}

// UpdateTransactionInput is a merge-patch over a created transaction.
type UpdateTransactionInput struct {
	ID          string
	Description *string
	Category    *string
	Status      *domain.TransactionStatus
	Recipient   *string
}

// Update merge-patches a transaction in the user's log. Seeded
// transactions are not reachable here and report not found.
func (uc *TransactionUseCase) Update(ctx context.Context, userID string, input UpdateTransactionInput) (*domain.Transaction, error) {
	if err := uc.latency.Wait(ctx); err != nil {
		return nil, err
	}

	log, err := uc.txns.ListLog(ctx, userID)
	if err != nil {
		return nil, err
	}

	for i := range log {
		if log[i].ID != input.ID {
			continue
		}
		if input.Description != nil {
			log[i].Description = *input.Description
		}
		if input.Category != nil {
			log[i].Category = *input.Category
		}
		if input.Status != nil {
			log[i].Status = *input.Status
		}
		if input.Recipient != nil {
			log[i].Recipient = *input.Recipient
		}
		if err := uc.txns.SaveLog(ctx, userID, log); err != nil {
			return nil, err
		}

		uc.logger.Info().Str("transaction_id", input.ID).Str("user_id", userID).Msg("transaction updated")
		return &log[i], nil
	}
	return nil, domain.ErrTransactionNotFound
}

// Delete removes a transaction from the user's log. Seeded transactions
// are not reachable here and report not found.
func (uc *TransactionUseCase) Delete(ctx context.Context, userID, id string) error {
	if err := uc.latency.Wait(ctx); err != nil {
		return err
	}

	log, err := uc.txns.ListLog(ctx, userID)
	if err != nil {
		return err
	}

	kept := log[:0]
	for _, t := range log {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(log) {
		return domain.ErrTransactionNotFound
	}
	if err := uc.txns.SaveLog(ctx, userID, kept); err != nil {
		return err
	}

	uc.logger.Info().Str("transaction_id", id).Str("user_id", userID).Msg("transaction deleted")
	return nil
}

// Stats summarizes the user's merged transaction view in a single pass.
func (uc *TransactionUseCase) Stats(ctx context.Context, userID string) (domain.TransactionStats, error) {
	if err := uc.latency.Wait(ctx); err != nil {
		return domain.TransactionStats{}, err
	}

	all, err := uc.merged(ctx, userID)
	if err != nil {
		return domain.TransactionStats{}, err
	}
	return domain.ComputeTransactionStats(all), nil
}

const idSuffixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// newTransactionID builds a TXN-<timestamp>-<random> identifier.
func newTransactionID(now time.Time) string {
	suffix := make([]byte, 6)
	for i := range suffix {
		suffix[i] = idSuffixAlphabet[rand.Intn(len(idSuffixAlphabet))]
	}
	return fmt.Sprintf("TXN-%d-%s", now.UnixMilli(), suffix)
}
