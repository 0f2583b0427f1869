package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountKind discriminates between the two account collections. The
// dashboard stores regular users and administrators separately, but they
// share one entity shape.
type AccountKind string

const (
	KindUser  AccountKind = "user"
	KindAdmin AccountKind = "admin"
)

// Role represents an account's access level.
type Role string

const (
	// RoleGuest is the implicit role of an unauthenticated session.
	RoleGuest Role = "guest"

	// RoleUser can view and manage only their own wallet and transactions.
	RoleUser Role = "user"

	// RoleAdmin can manage users and transactions platform-wide.
	RoleAdmin Role = "admin"

	// RoleSuperAdmin can additionally manage admins and system settings.
	RoleSuperAdmin Role = "superadmin"
)

var validRoles = map[Role]bool{
	RoleUser:       true,
	RoleAdmin:      true,
	RoleSuperAdmin: true,
}

// IsValid checks if the role is a valid authenticated role.
func (r Role) IsValid() bool {
	return validRoles[r]
}

// CanCreate reports whether an actor with this role may create an account
// with the target role. Nobody may create a superadmin; only a superadmin
// may create an admin; admins and superadmins may create users.
func (r Role) CanCreate(target Role) bool {
	switch target {
	case RoleSuperAdmin:
		return false
	case RoleAdmin:
		return r == RoleSuperAdmin
	case RoleUser:
		return r == RoleAdmin || r == RoleSuperAdmin
	default:
		return false
	}
}

// CanManageUsers checks if the role can manage user accounts.
func (r Role) CanManageUsers() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

// CanManageAdmins checks if the role can manage admin accounts.
func (r Role) CanManageAdmins() bool {
	return r == RoleSuperAdmin
}

// AccountStatus represents the lifecycle state of an account.
type AccountStatus string

const (
	StatusActive    AccountStatus = "active"
	StatusInactive  AccountStatus = "inactive"
	StatusSuspended AccountStatus = "suspended"
)

var validStatuses = map[AccountStatus]bool{
	StatusActive:    true,
	StatusInactive:  true,
	StatusSuspended: true,
}

// IsValid checks if the status is a known account status.
func (s AccountStatus) IsValid() bool {
	return validStatuses[s]
}

// Account is the unified identity entity. Kind tells which collection it
// belongs to; Permissions is populated only for admin-kind accounts and
// snapshots the role's permission set at creation time.
type Account struct {
	ID                string          `json:"id"`
	Kind              AccountKind     `json:"kind"`
	FirstName         string          `json:"firstName"`
	LastName          string          `json:"lastName"`
	Email             string          `json:"email"`
	Phone             string          `json:"phone"`
	Role              Role            `json:"role"`
	Status            AccountStatus   `json:"status"`
	CreatedAt         time.Time       `json:"createdAt"`
	LastLogin         *time.Time      `json:"lastLogin,omitempty"`
	WalletBalance     decimal.Decimal `json:"walletBalance"`
	TotalTransactions int             `json:"totalTransactions"`
	IsVerified        bool            `json:"isVerified"`
	Avatar            string          `json:"avatar"`
	Permissions       []Permission    `json:"permissions,omitempty"`
}

// FullName returns the display name of the account.
func (a *Account) FullName() string {
	return a.FirstName + " " + a.LastName
}

// IsActive checks if the account may authenticate.
func (a *Account) IsActive() bool {
	return a.Status == StatusActive
}
