package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/esmael/chapapay/internal/adapter/http/dto"
	"github.com/esmael/chapapay/internal/adapter/http/middleware"
	"github.com/esmael/chapapay/internal/domain"
	"github.com/esmael/chapapay/internal/infrastructure/auth"
	"github.com/esmael/chapapay/internal/infrastructure/metrics"
	"github.com/esmael/chapapay/internal/usecase"
)

// AuthService defines the behavior needed by AuthHandler.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*domain.Account, error)
	Register(ctx context.Context, input usecase.RegisterInput) (*domain.Account, error)
	CreateAccount(ctx context.Context, input usecase.CreateAccountInput, actorRole domain.Role) (*domain.Account, error)
	Logout(ctx context.Context) error
	State() domain.SessionState
	CurrentAccount() *domain.Account
}

// AuthHandler handles authentication and session requests.
type AuthHandler struct {
	authUC  AuthService
	tokens  *auth.TokenManager
	metrics *metrics.Metrics
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authUC AuthService, tokens *auth.TokenManager, m *metrics.Metrics) *AuthHandler {
	return &AuthHandler{authUC: authUC, tokens: tokens, metrics: m}
}

// Login authenticates an account and issues a session token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	account, err := h.authUC.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.metrics.LoginAttempts.WithLabelValues("failure").Inc()
		writeError(w, mapDomainError(err), "login failed", err.Error())
		return
	}
	h.metrics.LoginAttempts.WithLabelValues("success").Inc()

	token, err := h.tokens.Issue(account)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to issue token", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.AuthResponse{
		Token:   token,
		Account: dto.AccountFromDomain(account),
	})
}

// Register creates a new user account and issues a session token.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	account, err := h.authUC.Register(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "registration failed", err.Error())
		return
	}
	h.metrics.Registrations.Inc()

	token, err := h.tokens.Issue(account)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to issue token", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.AuthResponse{
		Token:   token,
		Account: dto.AccountFromDomain(account),
	})
}

// CreateAccount is the privileged account-creation endpoint.
func (h *AuthHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	actorRole := middleware.CheckerFrom(r.Context()).Role()
	account, err := h.authUC.CreateAccount(r.Context(), req.ToUseCaseInput(), actorRole)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create account", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.AccountFromDomain(account))
}

// Logout clears the session.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.authUC.Logout(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, "logout failed", err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Session reports the current session snapshot.
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	state := h.authUC.State()
	resp := dto.SessionResponse{
		State:           state,
		IsAuthenticated: state == domain.SessionAuthenticated,
	}
	if account := h.authUC.CurrentAccount(); account != nil {
		resp.Account = dto.AccountFromDomain(account)
	}
	writeJSON(w, http.StatusOK, resp)
}

// Permissions lists the session role's permission set.
func (h *AuthHandler) Permissions(w http.ResponseWriter, r *http.Request) {
	checker := middleware.CheckerFrom(r.Context())
	writeJSON(w, http.StatusOK, dto.PermissionsResponse{
		Role:        checker.Role(),
		Permissions: checker.Permissions(),
	})
}

// CanAccess probes whether the session role may access a dashboard route.
func (h *AuthHandler) CanAccess(w http.ResponseWriter, r *http.Request) {
	route := r.URL.Query().Get("route")
	if route == "" {
		writeError(w, http.StatusBadRequest, "missing route parameter", "")
		return
	}

	checker := middleware.CheckerFrom(r.Context())
	writeJSON(w, http.StatusOK, dto.CanAccessResponse{
		Route:   route,
		Allowed: domain.CanAccessRoute(checker.Permissions(), route),
	})
}
