package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Validation errors
var (
	ErrInvalidEmail     = errors.New("invalid email format")
	ErrPasswordTooShort = errors.New("password too short")
	ErrInvalidRole      = errors.New("invalid role")
	ErrInvalidStatus    = errors.New("invalid account status")
	ErrInvalidType      = errors.New("invalid transaction type")
	ErrInvalidMethod    = errors.New("invalid payment method")
	ErrAmountTooLarge   = errors.New("amount exceeds maximum allowed")
)

// Validation constants
const (
	// MinPasswordLength is the only password rule the platform enforces.
	// See AuthUseCase for how passwords are checked at login.
	MinPasswordLength = 6

	MaxTransactionAmount = "1000000" // 1 million
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// NormalizeEmail lowercases and trims an email address. All email
// comparisons in the platform are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateEmail validates email format.
func ValidateEmail(email string) error {
	if !emailRegex.MatchString(NormalizeEmail(email)) {
		return ErrInvalidEmail
	}
	return nil
}

// ValidatePassword validates password length.
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return fmt.Errorf("%w: must be at least %d characters", ErrPasswordTooShort, MinPasswordLength)
	}
	return nil
}

// ValidateAmount validates a transaction amount.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	maxAmount, _ := decimal.NewFromString(MaxTransactionAmount)
	if amount.GreaterThan(maxAmount) {
		return fmt.Errorf("%w: maximum amount is %s", ErrAmountTooLarge, MaxTransactionAmount)
	}

	return nil
}

// ValidateFee validates a transaction fee.
func ValidateFee(fee decimal.Decimal) error {
	if fee.IsNegative() {
		return ErrNegativeFee
	}
	return nil
}
