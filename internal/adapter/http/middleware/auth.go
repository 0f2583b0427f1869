package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/esmael/chapapay/internal/domain"
	"github.com/esmael/chapapay/internal/infrastructure/auth"
)

// ContextKey is the type for context keys.
type ContextKey string

const (
	// CheckerContextKey carries the permission checker for the session role.
	CheckerContextKey ContextKey = "checker"
	// AccountIDContextKey carries the authenticated account id.
	AccountIDContextKey ContextKey = "account_id"
)

// Authenticate verifies the bearer token and puts a permission checker and
// the account id on the request context. Requests without a token proceed
// as guest; requests with a bad token are rejected.
func Authenticate(tokens *auth.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				ctx := context.WithValue(r.Context(), CheckerContextKey, domain.NewChecker(domain.RoleGuest))
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				http.Error(w, "invalid authorization header format", http.StatusUnauthorized)
				return
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				http.Error(w, "invalid or expired token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), CheckerContextKey, domain.NewChecker(claims.Role))
			ctx = context.WithValue(ctx, AccountIDContextKey, claims.AccountID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CheckerFrom returns the permission checker for the request, defaulting
// to guest.
func CheckerFrom(ctx context.Context) *domain.Checker {
	if checker, ok := ctx.Value(CheckerContextKey).(*domain.Checker); ok {
		return checker
	}
	return domain.NewChecker(domain.RoleGuest)
}

// AccountIDFrom returns the authenticated account id, or empty.
func AccountIDFrom(ctx context.Context) string {
	if id, ok := ctx.Value(AccountIDContextKey).(string); ok {
		return id
	}
	return ""
}

// RequireAuthenticated rejects requests without a verified account.
func RequireAuthenticated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if AccountIDFrom(r.Context()) == "" {
			http.Error(w, "authentication required", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAnyPermission rejects requests whose session role holds none of
// the given permissions.
func RequireAnyPermission(perms ...domain.Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !CheckerFrom(r.Context()).HasAnyPermission(perms...) {
				http.Error(w, "insufficient permissions", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
