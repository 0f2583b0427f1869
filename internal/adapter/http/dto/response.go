package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/esmael/chapapay/internal/domain"
)

// AccountResponse represents an account in API responses.
type AccountResponse struct {
	ID                string               `json:"id"`
	Kind              domain.AccountKind   `json:"kind"`
	FirstName         string               `json:"first_name"`
	LastName          string               `json:"last_name"`
	Email             string               `json:"email"`
	Phone             string               `json:"phone"`
	Role              domain.Role          `json:"role"`
	Status            domain.AccountStatus `json:"status"`
	CreatedAt         time.Time            `json:"created_at"`
	LastLogin         *time.Time           `json:"last_login,omitempty"`
	WalletBalance     decimal.Decimal      `json:"wallet_balance"`
	TotalTransactions int                  `json:"total_transactions"`
	IsVerified        bool                 `json:"is_verified"`
	Avatar            string               `json:"avatar"`
	Permissions       []domain.Permission  `json:"permissions,omitempty"`
}

// AccountFromDomain converts a domain account to a response.
func AccountFromDomain(a *domain.Account) *AccountResponse {
	return &AccountResponse{
		ID:                a.ID,
		Kind:              a.Kind,
		FirstName:         a.FirstName,
		LastName:          a.LastName,
		Email:             a.Email,
		Phone:             a.Phone,
		Role:              a.Role,
		Status:            a.Status,
		CreatedAt:         a.CreatedAt,
		LastLogin:         a.LastLogin,
		WalletBalance:     a.WalletBalance,
		TotalTransactions: a.TotalTransactions,
		IsVerified:        a.IsVerified,
		Avatar:            a.Avatar,
		Permissions:       a.Permissions,
	}
}

// AccountsFromDomain converts domain accounts to responses.
func AccountsFromDomain(accounts []domain.Account) []*AccountResponse {
	result := make([]*AccountResponse, len(accounts))
	for i := range accounts {
		result[i] = AccountFromDomain(&accounts[i])
	}
	return result
}

// ListAccountsResponse wraps an account listing.
type ListAccountsResponse struct {
	Accounts []*AccountResponse `json:"accounts"`
	Total    int                `json:"total"`
}

// AuthResponse is returned by login and register.
type AuthResponse struct {
	Token   string           `json:"token"`
	Account *AccountResponse `json:"account"`
}

// SessionResponse describes the current session.
type SessionResponse struct {
	State           domain.SessionState `json:"state"`
	IsAuthenticated bool                `json:"is_authenticated"`
	Account         *AccountResponse    `json:"account,omitempty"`
}

// PermissionsResponse lists the session role's permissions.
type PermissionsResponse struct {
	Role        domain.Role         `json:"role"`
	Permissions []domain.Permission `json:"permissions"`
}

// CanAccessResponse answers a route-access probe.
type CanAccessResponse struct {
	Route   string `json:"route"`
	Allowed bool   `json:"allowed"`
}

// TransactionResponse represents a transaction in API responses.
type TransactionResponse struct {
	ID          string                   `json:"id"`
	UserID      string                   `json:"user_id"`
	Type        domain.TransactionType   `json:"type"`
	Amount      decimal.Decimal          `json:"amount"`
	Description string                   `json:"description"`
	Date        time.Time                `json:"date"`
	Status      domain.TransactionStatus `json:"status"`
	Category    string                   `json:"category"`
	Method      domain.PaymentMethod     `json:"method"`
	Recipient   string                   `json:"recipient,omitempty"`
	Sender      string                   `json:"sender,omitempty"`
	Reference   string                   `json:"reference"`
	Fee         decimal.Decimal          `json:"fee"`
}

// TransactionFromDomain converts a domain transaction to a response.
func TransactionFromDomain(t *domain.Transaction) *TransactionResponse {
	return &TransactionResponse{
		ID:          t.ID,
		UserID:      t.UserID,
		Type:        t.Type,
		Amount:      t.Amount,
		Description: t.Description,
		Date:        t.Date,
		Status:      t.Status,
		Category:    t.Category,
		Method:      t.Method,
		Recipient:   t.Recipient,
		Sender:      t.Sender,
		Reference:   t.Reference,
		Fee:         t.Fee,
	}
}

// TransactionsFromDomain converts domain transactions to responses.
func TransactionsFromDomain(txns []domain.Transaction) []*TransactionResponse {
	result := make([]*TransactionResponse, len(txns))
	for i := range txns {
		result[i] = TransactionFromDomain(&txns[i])
	}
	return result
}

// ListTransactionsResponse wraps a transaction listing.
type ListTransactionsResponse struct {
	Transactions []*TransactionResponse `json:"transactions"`
	Total        int                    `json:"total"`
}

// CreateTransactionResponse is the created record plus the mock balance.
type CreateTransactionResponse struct {
	Transaction *TransactionResponse `json:"transaction"`
	NewBalance  decimal.Decimal      `json:"new_balance"`
}

// TransactionStatsResponse summarizes a user's transaction view.
type TransactionStatsResponse struct {
	TotalIncome         decimal.Decimal `json:"total_income"`
	TotalExpenses       decimal.Decimal `json:"total_expenses"`
	TotalTransactions   int             `json:"total_transactions"`
	PendingTransactions int             `json:"pending_transactions"`
}

// TransactionStatsFromDomain converts domain stats to a response.
func TransactionStatsFromDomain(s domain.TransactionStats) TransactionStatsResponse {
	return TransactionStatsResponse{
		TotalIncome:         s.TotalIncome,
		TotalExpenses:       s.TotalExpenses,
		TotalTransactions:   s.TotalTransactions,
		PendingTransactions: s.PendingTransactions,
	}
}

// SystemStatsResponse represents the platform-wide aggregate.
type SystemStatsResponse struct {
	TotalUsers        int             `json:"total_users"`
	ActiveUsers       int             `json:"active_users"`
	TotalAdmins       int             `json:"total_admins"`
	ActiveAdmins      int             `json:"active_admins"`
	TotalTransactions int             `json:"total_transactions"`
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
	SystemUptime      string          `json:"system_uptime"`
	LastUpdated       time.Time       `json:"last_updated"`
}

// SystemStatsFromDomain converts domain stats to a response.
func SystemStatsFromDomain(s domain.SystemStats) SystemStatsResponse {
	return SystemStatsResponse{
		TotalUsers:        s.TotalUsers,
		ActiveUsers:       s.ActiveUsers,
		TotalAdmins:       s.TotalAdmins,
		ActiveAdmins:      s.ActiveAdmins,
		TotalTransactions: s.TotalTransactions,
		TotalRevenue:      s.TotalRevenue,
		SystemUptime:      s.SystemUptime,
		LastUpdated:       s.LastUpdated,
	}
}

// ProfileResponse represents an extended user profile.
type ProfileResponse struct {
	UserID      string                    `json:"user_id"`
	Bio         string                    `json:"bio,omitempty"`
	Address     string                    `json:"address,omitempty"`
	Preferences domain.ProfilePreferences `json:"preferences"`
	Security    domain.ProfileSecurity    `json:"security"`
	Activity    []domain.ProfileActivity  `json:"activity,omitempty"`
	UpdatedAt   time.Time                 `json:"updated_at"`
}

// ProfileFromDomain converts a domain profile to a response.
func ProfileFromDomain(p domain.UserProfile) ProfileResponse {
	return ProfileResponse{
		UserID:      p.UserID,
		Bio:         p.Bio,
		Address:     p.Address,
		Preferences: p.Preferences,
		Security:    p.Security,
		Activity:    p.Activity,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
