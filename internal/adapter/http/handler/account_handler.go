package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/esmael/chapapay/internal/adapter/http/dto"
	"github.com/esmael/chapapay/internal/domain"
	"github.com/esmael/chapapay/internal/usecase"
)

// AccountService defines the behavior needed by AccountHandler.
type AccountService interface {
	ListUsers(ctx context.Context) ([]domain.Account, error)
	ListAdmins(ctx context.Context) ([]domain.Account, error)
	ListAllAccounts(ctx context.Context) ([]domain.Account, error)
	UpdateUser(ctx context.Context, id string, input usecase.UpdateAccountInput) (*domain.Account, error)
	UpdateAdmin(ctx context.Context, id string, input usecase.UpdateAccountInput) (*domain.Account, error)
	AddAdmin(ctx context.Context, input usecase.AddAdminInput) (*domain.Account, error)
	RemoveAdmin(ctx context.Context, id string) error
	DeleteUser(ctx context.Context, id string) error
}

// AccountHandler handles account administration requests.
type AccountHandler struct {
	accountUC AccountService
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountUC AccountService) *AccountHandler {
	return &AccountHandler{accountUC: accountUC}
}

// ListUsers lists the user collection.
func (h *AccountHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.accountUC.ListUsers(r.Context())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list users", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, dto.ListAccountsResponse{
		Accounts: dto.AccountsFromDomain(users),
		Total:    len(users),
	})
}

// ListAdmins lists the admin collection.
func (h *AccountHandler) ListAdmins(w http.ResponseWriter, r *http.Request) {
	admins, err := h.accountUC.ListAdmins(r.Context())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list admins", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, dto.ListAccountsResponse{
		Accounts: dto.AccountsFromDomain(admins),
		Total:    len(admins),
	})
}

// ListAll lists the union of users and admins.
func (h *AccountHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.accountUC.ListAllAccounts(r.Context())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list accounts", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, dto.ListAccountsResponse{
		Accounts: dto.AccountsFromDomain(accounts),
		Total:    len(accounts),
	})
}

// UpdateUser merge-patches a user account.
func (h *AccountHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req dto.UpdateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	account, err := h.accountUC.UpdateUser(r.Context(), id, req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to update user", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, dto.AccountFromDomain(account))
}

// DeleteUser deletes a user account.
func (h *AccountHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.accountUC.DeleteUser(r.Context(), id); err != nil {
		writeError(w, mapDomainError(err), "failed to delete user", err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// UpdateAdmin merge-patches an admin account.
func (h *AccountHandler) UpdateAdmin(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req dto.UpdateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	account, err := h.accountUC.UpdateAdmin(r.Context(), id, req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to update admin", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, dto.AccountFromDomain(account))
}

// AddAdmin creates a new administrator.
func (h *AccountHandler) AddAdmin(w http.ResponseWriter, r *http.Request) {
	var req dto.AddAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	account, err := h.accountUC.AddAdmin(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to add admin", err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, dto.AccountFromDomain(account))
}

// RemoveAdmin deletes an administrator.
func (h *AccountHandler) RemoveAdmin(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.accountUC.RemoveAdmin(r.Context(), id); err != nil {
		writeError(w, mapDomainError(err), "failed to remove admin", err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
