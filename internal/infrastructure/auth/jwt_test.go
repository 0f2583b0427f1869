package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/esmael/chapapay/internal/domain"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Parallel()

	manager := NewTokenManager("test-secret", time.Hour)
	account := &domain.Account{ID: "user-001", Email: "abebe@example.com", Role: domain.RoleUser}

	token, err := manager.Issue(account)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	claims, err := manager.Verify(token)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if claims.AccountID != "user-001" || claims.Email != "abebe@example.com" || claims.Role != domain.RoleUser {
		t.Fatalf("unexpected claims %+v", claims)
	}
}

func TestVerifyRejectsExpired(t *testing.T) {
	t.Parallel()

	manager := NewTokenManager("test-secret", -time.Minute)
	token, err := manager.Issue(&domain.Account{ID: "user-001"})
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, err := manager.Verify(token); !errors.Is(err, domain.ErrExpiredToken) {
		t.Fatalf("expected ErrExpiredToken, got %v", err)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	t.Parallel()

	issuer := NewTokenManager("secret-a", time.Hour)
	verifier := NewTokenManager("secret-b", time.Hour)

	token, err := issuer.Issue(&domain.Account{ID: "user-001"})
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, err := verifier.Verify(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	t.Parallel()

	manager := NewTokenManager("test-secret", time.Hour)
	if _, err := manager.Verify("not.a.token"); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
