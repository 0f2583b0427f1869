package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/esmael/chapapay/internal/adapter/http/dto"
	"github.com/esmael/chapapay/internal/adapter/http/middleware"
	"github.com/esmael/chapapay/internal/domain"
	"github.com/esmael/chapapay/internal/usecase"
)

type transactionServiceStub struct {
	listFn   func(ctx context.Context, userID string, filter domain.TransactionFilter) ([]domain.Transaction, error)
	getFn    func(ctx context.Context, userID, id string) (*domain.Transaction, error)
	createFn func(ctx context.Context, userID string, input usecase.CreateTransactionInput) (*usecase.CreateTransactionResult, error)
	updateFn func(ctx context.Context, userID string, input usecase.UpdateTransactionInput) (*domain.Transaction, error)
	deleteFn func(ctx context.Context, userID, id string) error
	statsFn  func(ctx context.Context, userID string) (domain.TransactionStats, error)
}

func (s *transactionServiceStub) List(ctx context.Context, userID string, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	return s.listFn(ctx, userID, filter)
}

func (s *transactionServiceStub) GetByID(ctx context.Context, userID, id string) (*domain.Transaction, error) {
	return s.getFn(ctx, userID, id)
}

func (s *transactionServiceStub) Create(ctx context.Context, userID string, input usecase.CreateTransactionInput) (*usecase.CreateTransactionResult, error) {
	return s.createFn(ctx, userID, input)
}

func (s *transactionServiceStub) Update(ctx context.Context, userID string, input usecase.UpdateTransactionInput) (*domain.Transaction, error) {
	return s.updateFn(ctx, userID, input)
}

func (s *transactionServiceStub) Delete(ctx context.Context, userID, id string) error {
	return s.deleteFn(ctx, userID, id)
}

func (s *transactionServiceStub) Stats(ctx context.Context, userID string) (domain.TransactionStats, error) {
	return s.statsFn(ctx, userID)
}

func authedRequest(method, target string, body []byte, userID string) *http.Request {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, bytes.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	ctx := context.WithValue(req.Context(), middleware.AccountIDContextKey, userID)
	return req.WithContext(ctx)
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestTransactionHandler_List(t *testing.T) {
	var gotUser string
	var gotFilter domain.TransactionFilter
	handler := NewTransactionHandler(&transactionServiceStub{
		listFn: func(ctx context.Context, userID string, filter domain.TransactionFilter) ([]domain.Transaction, error) {
			gotUser = userID
			gotFilter = filter
			return []domain.Transaction{
				{ID: "TXN-001", UserID: userID, Type: domain.TypeExpense},
				{ID: "TXN-002", UserID: userID, Type: domain.TypeIncome},
			}, nil
		},
	}, testMetrics)

	req := authedRequest(http.MethodGet, "/transactions?type=expense&status=pending&search=coffee", nil, "user-001")
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if gotUser != "user-001" {
		t.Fatalf("expected user-001, got %s", gotUser)
	}
	if gotFilter.Type != domain.TypeExpense || gotFilter.Status != domain.StatusPending || gotFilter.Search != "coffee" {
		t.Fatalf("filter not built from query: %+v", gotFilter)
	}

	var resp dto.ListTransactionsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Total != 2 || len(resp.Transactions) != 2 {
		t.Fatalf("unexpected listing %+v", resp)
	}
}

func TestTransactionHandler_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		handler := NewTransactionHandler(&transactionServiceStub{
			getFn: func(ctx context.Context, userID, id string) (*domain.Transaction, error) {
				if id != "TXN-042" {
					t.Fatalf("unexpected id %s", id)
				}
				return &domain.Transaction{ID: id, UserID: userID}, nil
			},
		}, testMetrics)

		req := withURLParam(authedRequest(http.MethodGet, "/transactions/TXN-042", nil, "user-001"), "id", "TXN-042")
		rec := httptest.NewRecorder()

		handler.Get(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})

	t.Run("not visible", func(t *testing.T) {
		handler := NewTransactionHandler(&transactionServiceStub{
			getFn: func(ctx context.Context, userID, id string) (*domain.Transaction, error) {
				return nil, nil
			},
		}, testMetrics)

		req := withURLParam(authedRequest(http.MethodGet, "/transactions/TXN-999", nil, "user-001"), "id", "TXN-999")
		rec := httptest.NewRecorder()

		handler.Get(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}

func TestTransactionHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		handler := NewTransactionHandler(&transactionServiceStub{
			createFn: func(ctx context.Context, userID string, input usecase.CreateTransactionInput) (*usecase.CreateTransactionResult, error) {
				return &usecase.CreateTransactionResult{
					Transaction: domain.Transaction{
						ID:     "TXN-100",
						UserID: userID,
						Type:   input.Type,
						Amount: input.Amount,
						Fee:    decimal.NewFromFloat(5),
						Status: domain.StatusCompleted,
					},
					NewBalance: decimal.NewFromFloat(11995),
				}, nil
			},
		}, testMetrics)

		body, _ := json.Marshal(dto.CreateTransactionRequest{
			Type:        domain.TypeExpense,
			Amount:      decimal.NewFromFloat(500),
			Description: "Utility bill",
			Category:    "Bills",
		})
		req := authedRequest(http.MethodPost, "/transactions", body, "user-001")
		rec := httptest.NewRecorder()

		handler.Create(rec, req)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		var resp dto.CreateTransactionResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if resp.Transaction == nil || resp.Transaction.ID != "TXN-100" {
			t.Fatalf("unexpected transaction %+v", resp.Transaction)
		}
		if !resp.NewBalance.Equal(decimal.NewFromFloat(11995)) {
			t.Fatalf("unexpected balance %s", resp.NewBalance)
		}
	})

	t.Run("validation error", func(t *testing.T) {
		handler := NewTransactionHandler(&transactionServiceStub{
			createFn: func(ctx context.Context, userID string, input usecase.CreateTransactionInput) (*usecase.CreateTransactionResult, error) {
				return nil, domain.ErrInvalidAmount
			},
		}, testMetrics)

		body, _ := json.Marshal(dto.CreateTransactionRequest{Type: domain.TypeExpense})
		req := authedRequest(http.MethodPost, "/transactions", body, "user-001")
		rec := httptest.NewRecorder()

		handler.Create(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("invalid body", func(t *testing.T) {
		handler := NewTransactionHandler(&transactionServiceStub{
			createFn: func(ctx context.Context, userID string, input usecase.CreateTransactionInput) (*usecase.CreateTransactionResult, error) {
				t.Fatal("Create should not be called for invalid payload")
				return nil, nil
			},
		}, testMetrics)

		req := authedRequest(http.MethodPost, "/transactions", []byte("{invalid"), "user-001")
		rec := httptest.NewRecorder()

		handler.Create(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestTransactionHandler_Update(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var gotInput usecase.UpdateTransactionInput
		handler := NewTransactionHandler(&transactionServiceStub{
			updateFn: func(ctx context.Context, userID string, input usecase.UpdateTransactionInput) (*domain.Transaction, error) {
				gotInput = input
				return &domain.Transaction{ID: input.ID, UserID: userID, Description: *input.Description}, nil
			},
		}, testMetrics)

		desc := "Updated description"
		body, _ := json.Marshal(dto.UpdateTransactionRequest{Description: &desc})
		req := withURLParam(authedRequest(http.MethodPatch, "/transactions/TXN-001", body, "user-001"), "id", "TXN-001")
		rec := httptest.NewRecorder()

		handler.Update(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotInput.ID != "TXN-001" || gotInput.Description == nil || *gotInput.Description != desc {
			t.Fatalf("unexpected input %+v", gotInput)
		}
	})

	t.Run("seeded records are read only", func(t *testing.T) {
		handler := NewTransactionHandler(&transactionServiceStub{
			updateFn: func(ctx context.Context, userID string, input usecase.UpdateTransactionInput) (*domain.Transaction, error) {
				return nil, domain.ErrTransactionNotFound
			},
		}, testMetrics)

		body, _ := json.Marshal(dto.UpdateTransactionRequest{})
		req := withURLParam(authedRequest(http.MethodPatch, "/transactions/CHP-0001", body, "user-001"), "id", "CHP-0001")
		rec := httptest.NewRecorder()

		handler.Update(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}

func TestTransactionHandler_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		handler := NewTransactionHandler(&transactionServiceStub{
			deleteFn: func(ctx context.Context, userID, id string) error {
				if userID != "user-001" || id != "TXN-001" {
					t.Fatalf("unexpected args %s %s", userID, id)
				}
				return nil
			},
		}, testMetrics)

		req := withURLParam(authedRequest(http.MethodDelete, "/transactions/TXN-001", nil, "user-001"), "id", "TXN-001")
		rec := httptest.NewRecorder()

		handler.Delete(rec, req)

		if rec.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", rec.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		handler := NewTransactionHandler(&transactionServiceStub{
			deleteFn: func(ctx context.Context, userID, id string) error {
				return domain.ErrTransactionNotFound
			},
		}, testMetrics)

		req := withURLParam(authedRequest(http.MethodDelete, "/transactions/TXN-404", nil, "user-001"), "id", "TXN-404")
		rec := httptest.NewRecorder()

		handler.Delete(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}

func TestTransactionHandler_Stats(t *testing.T) {
	handler := NewTransactionHandler(&transactionServiceStub{
		statsFn: func(ctx context.Context, userID string) (domain.TransactionStats, error) {
			return domain.TransactionStats{
				TotalIncome:         decimal.NewFromFloat(1500),
				TotalExpenses:       decimal.NewFromFloat(240.75),
				TotalTransactions:   5,
				PendingTransactions: 2,
			}, nil
		},
	}, testMetrics)

	req := authedRequest(http.MethodGet, "/transactions/stats", nil, "user-001")
	rec := httptest.NewRecorder()

	handler.Stats(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp dto.TransactionStatsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.TotalTransactions != 5 || resp.PendingTransactions != 2 {
		t.Fatalf("unexpected stats %+v", resp)
	}
	if !resp.TotalIncome.Equal(decimal.NewFromFloat(1500)) {
		t.Fatalf("unexpected income %s", resp.TotalIncome)
	}
}
