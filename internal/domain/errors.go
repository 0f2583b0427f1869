package domain

import "errors"

var (
	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountDeactivated = errors.New("account has been deactivated")
	ErrNotAuthenticated   = errors.New("not authenticated")

	// Authorization errors
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInvalidToken        = errors.New("invalid token")
	ErrExpiredToken        = errors.New("token has expired")
	ErrRoleNotPermitted    = errors.New("cannot self-register with elevated role")
	ErrPrivilegeEscalation = errors.New("insufficient privileges to create this role")

	// Account errors
	ErrEmailTaken    = errors.New("an account with this email already exists")
	ErrUserNotFound  = errors.New("user not found")
	ErrAdminNotFound = errors.New("admin not found")

	// Transaction errors
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrNegativeFee         = errors.New("fee cannot be negative")
)
