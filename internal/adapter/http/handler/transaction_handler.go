package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/esmael/chapapay/internal/adapter/http/dto"
	"github.com/esmael/chapapay/internal/adapter/http/middleware"
	"github.com/esmael/chapapay/internal/domain"
	"github.com/esmael/chapapay/internal/infrastructure/metrics"
	"github.com/esmael/chapapay/internal/usecase"
)

// TransactionService defines the behavior needed by TransactionHandler.
type TransactionService interface {
	List(ctx context.Context, userID string, filter domain.TransactionFilter) ([]domain.Transaction, error)
	GetByID(ctx context.Context, userID, id string) (*domain.Transaction, error)
	Create(ctx context.Context, userID string, input usecase.CreateTransactionInput) (*usecase.CreateTransactionResult, error)
	Update(ctx context.Context, userID string, input usecase.UpdateTransactionInput) (*domain.Transaction, error)
	Delete(ctx context.Context, userID, id string) error
	Stats(ctx context.Context, userID string) (domain.TransactionStats, error)
}

// TransactionHandler handles transaction requests. Every operation is
// scoped to the authenticated account's merged transaction view.
type TransactionHandler struct {
	txUC    TransactionService
	metrics *metrics.Metrics
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(txUC TransactionService, m *metrics.Metrics) *TransactionHandler {
	return &TransactionHandler{txUC: txUC, metrics: m}
}

// filterFromQuery builds a TransactionFilter from query parameters.
func filterFromQuery(r *http.Request) domain.TransactionFilter {
	q := r.URL.Query()
	return domain.TransactionFilter{
		Type:     domain.TransactionType(q.Get("type")),
		Status:   domain.TransactionStatus(q.Get("status")),
		Category: q.Get("category"),
		DateFrom: q.Get("date_from"),
		DateTo:   q.Get("date_to"),
		Search:   q.Get("search"),
	}
}

// List returns the filtered merged transaction view.
func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.AccountIDFrom(r.Context())

	txns, err := h.txUC.List(r.Context(), userID, filterFromQuery(r))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list transactions", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, dto.ListTransactionsResponse{
		Transactions: dto.TransactionsFromDomain(txns),
		Total:        len(txns),
	})
}

// Get returns a single transaction, or 404 if it is not visible to the
// account.
func (h *TransactionHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := middleware.AccountIDFrom(r.Context())
	id := chi.URLParam(r, "id")

	txn, err := h.txUC.GetByID(r.Context(), userID, id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get transaction", err.Error())
		return
	}
	if txn == nil {
		writeError(w, http.StatusNotFound, "transaction not found", "")
		return
	}
	writeJSON(w, http.StatusOK, dto.TransactionFromDomain(txn))
}

// Create records a new transaction.
func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.AccountIDFrom(r.Context())

	var req dto.CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	result, err := h.txUC.Create(r.Context(), userID, req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create transaction", err.Error())
		return
	}
	h.metrics.TransactionsCreated.Inc()
	amount, _ := result.Transaction.Amount.Float64()
	h.metrics.TransactionAmount.Observe(amount)

	writeJSON(w, http.StatusCreated, dto.CreateTransactionResponse{
		Transaction: dto.TransactionFromDomain(&result.Transaction),
		NewBalance:  result.NewBalance,
	})
}

// Update merge-patches a created transaction.
func (h *TransactionHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := middleware.AccountIDFrom(r.Context())
	id := chi.URLParam(r, "id")

	var req dto.UpdateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	txn, err := h.txUC.Update(r.Context(), userID, req.ToUseCaseInput(id))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to update transaction", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, dto.TransactionFromDomain(txn))
}

// Delete removes a created transaction.
func (h *TransactionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.AccountIDFrom(r.Context())
	id := chi.URLParam(r, "id")

	if err := h.txUC.Delete(r.Context(), userID, id); err != nil {
		writeError(w, mapDomainError(err), "failed to delete transaction", err.Error())
		return
	}
	h.metrics.TransactionsDeleted.Inc()
	w.WriteHeader(http.StatusNoContent)
}

// Stats summarizes the account's merged transaction view.
func (h *TransactionHandler) Stats(w http.ResponseWriter, r *http.Request) {
	userID := middleware.AccountIDFrom(r.Context())

	stats, err := h.txUC.Stats(r.Context(), userID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to compute transaction stats", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, dto.TransactionStatsFromDomain(stats))
}
