package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/esmael/chapapay/internal/adapter/http/handler"
	"github.com/esmael/chapapay/internal/adapter/http/middleware"
	"github.com/esmael/chapapay/internal/domain"
	"github.com/esmael/chapapay/internal/infrastructure/auth"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	AuthHandler        *handler.AuthHandler
	AccountHandler     *handler.AccountHandler
	TransactionHandler *handler.TransactionHandler
	StatsHandler       *handler.StatsHandler
	ProfileHandler     *handler.ProfileHandler
	HealthHandler      *handler.HealthHandler
	Tokens             *auth.TokenManager
	Logger             zerolog.Logger
	RateLimiter        *middleware.RateLimiter
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Recovery)
	r.Use(middleware.Metrics)
	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}

	// Health and metrics endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Authenticate(cfg.Tokens))

		// Auth
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", cfg.AuthHandler.Login)
			r.Post("/register", cfg.AuthHandler.Register)
			r.Post("/logout", cfg.AuthHandler.Logout)
			r.Get("/session", cfg.AuthHandler.Session)
			r.Get("/permissions", cfg.AuthHandler.Permissions)
			r.Get("/can-access", cfg.AuthHandler.CanAccess)
			r.With(middleware.RequireAuthenticated).
				Post("/accounts", cfg.AuthHandler.CreateAccount)
		})

		// Users
		r.Route("/users", func(r chi.Router) {
			r.Use(middleware.RequireAuthenticated)
			r.With(middleware.RequireAnyPermission(domain.PermViewUsers)).
				Get("/", cfg.AccountHandler.ListUsers)
			r.With(middleware.RequireAnyPermission(domain.PermUpdateUsers)).
				Patch("/{id}", cfg.AccountHandler.UpdateUser)
			r.With(middleware.RequireAnyPermission(domain.PermDeleteUsers)).
				Delete("/{id}", cfg.AccountHandler.DeleteUser)
		})

		// Admins
		r.Route("/admins", func(r chi.Router) {
			r.Use(middleware.RequireAuthenticated)
			r.Use(middleware.RequireAnyPermission(domain.PermManageAdmins))
			r.Get("/", cfg.AccountHandler.ListAdmins)
			r.Post("/", cfg.AccountHandler.AddAdmin)
			r.Patch("/{id}", cfg.AccountHandler.UpdateAdmin)
			r.Delete("/{id}", cfg.AccountHandler.RemoveAdmin)
		})

		// All accounts, users and admins combined
		r.With(middleware.RequireAuthenticated).
			With(middleware.RequireAnyPermission(domain.PermViewUsers)).
			Get("/accounts", cfg.AccountHandler.ListAll)

		// Transactions
		r.Route("/transactions", func(r chi.Router) {
			r.Use(middleware.RequireAuthenticated)
			r.Use(middleware.RequireAnyPermission(domain.PermViewOwnTransactions, domain.PermViewTransactions))
			r.Get("/", cfg.TransactionHandler.List)
			r.Get("/stats", cfg.TransactionHandler.Stats)
			r.Get("/{id}", cfg.TransactionHandler.Get)
			r.With(middleware.RequireAnyPermission(domain.PermMakePayments, domain.PermManageTransactions)).
				Post("/", cfg.TransactionHandler.Create)
			r.With(middleware.RequireAnyPermission(domain.PermMakePayments, domain.PermManageTransactions)).
				Patch("/{id}", cfg.TransactionHandler.Update)
			r.With(middleware.RequireAnyPermission(domain.PermMakePayments, domain.PermManageTransactions)).
				Delete("/{id}", cfg.TransactionHandler.Delete)
		})

		// System
		r.Route("/system", func(r chi.Router) {
			r.Use(middleware.RequireAuthenticated)
			r.With(middleware.RequireAnyPermission(domain.PermViewSystemStats)).
				Get("/stats", cfg.StatsHandler.SystemStats)
			r.With(middleware.RequireAnyPermission(domain.PermManageSystemSettings)).
				Post("/reset", cfg.StatsHandler.Reset)
		})

		// Profile
		r.Route("/profile", func(r chi.Router) {
			r.Use(middleware.RequireAuthenticated)
			r.Get("/", cfg.ProfileHandler.Get)
			r.With(middleware.RequireAnyPermission(domain.PermUpdateOwnProfile)).
				Patch("/", cfg.ProfileHandler.Update)
		})
	})

	return r
}
