package dto

import (
	"github.com/shopspring/decimal"

	"github.com/esmael/chapapay/internal/domain"
	"github.com/esmael/chapapay/internal/usecase"
)

// LoginRequest is the login payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the self-service registration payload.
type RegisterRequest struct {
	FirstName string      `json:"first_name"`
	LastName  string      `json:"last_name"`
	Email     string      `json:"email"`
	Phone     string      `json:"phone"`
	Password  string      `json:"password"`
	Role      domain.Role `json:"role,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *RegisterRequest) ToUseCaseInput() usecase.RegisterInput {
	return usecase.RegisterInput{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Phone:     r.Phone,
		Password:  r.Password,
		Role:      r.Role,
	}
}

// CreateAccountRequest is the privileged account-creation payload.
type CreateAccountRequest struct {
	FirstName string      `json:"first_name"`
	LastName  string      `json:"last_name"`
	Email     string      `json:"email"`
	Phone     string      `json:"phone"`
	Role      domain.Role `json:"role"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateAccountRequest) ToUseCaseInput() usecase.CreateAccountInput {
	return usecase.CreateAccountInput{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Phone:     r.Phone,
		Role:      r.Role,
	}
}

// UpdateAccountRequest is a merge-patch over an account.
type UpdateAccountRequest struct {
	FirstName     *string               `json:"first_name,omitempty"`
	LastName      *string               `json:"last_name,omitempty"`
	Phone         *string               `json:"phone,omitempty"`
	Role          *domain.Role          `json:"role,omitempty"`
	Status        *domain.AccountStatus `json:"status,omitempty"`
	IsVerified    *bool                 `json:"is_verified,omitempty"`
	WalletBalance *decimal.Decimal      `json:"wallet_balance,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateAccountRequest) ToUseCaseInput() usecase.UpdateAccountInput {
	return usecase.UpdateAccountInput{
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		Phone:         r.Phone,
		Role:          r.Role,
		Status:        r.Status,
		IsVerified:    r.IsVerified,
		WalletBalance: r.WalletBalance,
	}
}

// AddAdminRequest is the payload for creating an administrator.
type AddAdminRequest struct {
	FirstName string      `json:"first_name"`
	LastName  string      `json:"last_name"`
	Email     string      `json:"email"`
	Phone     string      `json:"phone"`
	Role      domain.Role `json:"role"`
}

// ToUseCaseInput converts to use case input.
func (r *AddAdminRequest) ToUseCaseInput() usecase.AddAdminInput {
	return usecase.AddAdminInput{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Phone:     r.Phone,
		Role:      r.Role,
	}
}

// CreateTransactionRequest is the send-money payload.
type CreateTransactionRequest struct {
	Type        domain.TransactionType `json:"type"`
	Amount      decimal.Decimal        `json:"amount"`
	Description string                 `json:"description"`
	Category    string                 `json:"category"`
	Method      domain.PaymentMethod   `json:"method,omitempty"`
	Recipient   string                 `json:"recipient,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateTransactionRequest) ToUseCaseInput() usecase.CreateTransactionInput {
	return usecase.CreateTransactionInput{
		Type:        r.Type,
		Amount:      r.Amount,
		Description: r.Description,
		Category:    r.Category,
		Method:      r.Method,
		Recipient:   r.Recipient,
	}
}

// UpdateTransactionRequest is a merge-patch over a created transaction.
type UpdateTransactionRequest struct {
	Description *string                   `json:"description,omitempty"`
	Category    *string                   `json:"category,omitempty"`
	Status      *domain.TransactionStatus `json:"status,omitempty"`
	Recipient   *string                   `json:"recipient,omitempty"`
}

// ToUseCaseInput converts to use case input for the given transaction id.
func (r *UpdateTransactionRequest) ToUseCaseInput(id string) usecase.UpdateTransactionInput {
	return usecase.UpdateTransactionInput{
		ID:          id,
		Description: r.Description,
		Category:    r.Category,
		Status:      r.Status,
		Recipient:   r.Recipient,
	}
}

// UpdateProfileRequest is a merge-patch over a user profile.
type UpdateProfileRequest struct {
	Bio                *string `json:"bio,omitempty"`
	Address            *string `json:"address,omitempty"`
	Language           *string `json:"language,omitempty"`
	Currency           *string `json:"currency,omitempty"`
	EmailNotifications *bool   `json:"email_notifications,omitempty"`
	SMSNotifications   *bool   `json:"sms_notifications,omitempty"`
	TwoFactorEnabled   *bool   `json:"two_factor_enabled,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateProfileRequest) ToUseCaseInput() usecase.UpdateProfileInput {
	return usecase.UpdateProfileInput{
		Bio:                r.Bio,
		Address:            r.Address,
		Language:           r.Language,
		Currency:           r.Currency,
		EmailNotifications: r.EmailNotifications,
		SMSNotifications:   r.SMSNotifications,
		TwoFactorEnabled:   r.TwoFactorEnabled,
	}
}
