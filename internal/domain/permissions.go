package domain

// Permission is a string token gating a single dashboard action. Access
// checks are plain set-membership tests.
type Permission string

const (
	// Guest permissions
	PermViewLandingPage Permission = "view_landing_page"
	PermRegisterAccount Permission = "register_account"
	PermLogin           Permission = "login"

	// User permissions
	PermViewOwnTransactions Permission = "view_own_transactions"
	PermUpdateOwnProfile    Permission = "update_own_profile"
	PermManageOwnWallet     Permission = "manage_own_wallet"
	PermMakePayments        Permission = "make_payments"
	PermRequestRefunds      Permission = "request_refunds"

	// Admin permissions
	PermViewTransactions     Permission = "view_transactions"
	PermManageTransactions   Permission = "manage_transactions"
	PermExportTransactions   Permission = "export_transactions"
	PermViewUsers            Permission = "view_users"
	PermCreateUsers          Permission = "create_users"
	PermUpdateUsers          Permission = "update_users"
	PermDeleteUsers          Permission = "delete_users"
	PermAccessAdminDashboard Permission = "access_admin_dashboard"
	PermViewSystemStats      Permission = "view_system_stats"
	PermProcessPayments      Permission = "process_payments"
	PermRefundPayments       Permission = "refund_payments"

	// Superadmin-only permissions
	PermManageAdmins          Permission = "manage_admins"
	PermManageSystemSettings  Permission = "manage_system_settings"
	PermAdjustPaymentSettings Permission = "adjust_payment_settings"
)

var adminPermissions = []Permission{
	PermViewTransactions,
	PermManageTransactions,
	PermExportTransactions,
	PermViewUsers,
	PermCreateUsers,
	PermUpdateUsers,
	PermDeleteUsers,
	PermAccessAdminDashboard,
	PermViewSystemStats,
	PermProcessPayments,
	PermRefundPayments,
}

// rolePermissions is the authoritative role to permission-set table. It is
// static, loaded once, and read-only at runtime.
var rolePermissions = map[Role][]Permission{
	RoleGuest: {
		PermViewLandingPage,
		PermRegisterAccount,
		PermLogin,
	},
	RoleUser: {
		PermViewOwnTransactions,
		PermUpdateOwnProfile,
		PermManageOwnWallet,
		PermMakePayments,
		PermRequestRefunds,
	},
	RoleAdmin: adminPermissions,
	RoleSuperAdmin: append(append([]Permission{}, adminPermissions...),
		PermManageAdmins,
		PermManageSystemSettings,
		PermAdjustPaymentSettings,
	),
}

// routePermissions maps a dashboard route to the permissions that grant
// access. Holding any one of them is sufficient. Routes not listed here are
// unrestricted.
var routePermissions = map[string][]Permission{
	"/dashboard/transactions":     {PermViewTransactions, PermViewOwnTransactions},
	"/dashboard/users":            {PermViewUsers},
	"/dashboard/send-money":       {PermMakePayments, PermProcessPayments},
	"/dashboard/admin-management": {PermManageAdmins},
}

// PermissionsForRole returns a copy of the permission set for the role.
// Unknown roles fall back to the guest set.
func PermissionsForRole(role Role) []Permission {
	perms, ok := rolePermissions[role]
	if !ok {
		perms = rolePermissions[RoleGuest]
	}
	out := make([]Permission, len(perms))
	copy(out, perms)
	return out
}

// RequiredPermissions returns the any-of permission set guarding a route.
// The second return value is false for unmapped (unrestricted) routes.
func RequiredPermissions(route string) ([]Permission, bool) {
	perms, ok := routePermissions[route]
	if !ok {
		return nil, false
	}
	out := make([]Permission, len(perms))
	copy(out, perms)
	return out, true
}

// CanAccessRoute reports whether a permission set grants access to a route.
// Unmapped routes are always permitted; mapped routes require at least one
// of the listed permissions.
func CanAccessRoute(perms []Permission, route string) bool {
	required, ok := routePermissions[route]
	if !ok {
		return true
	}
	for _, need := range required {
		for _, have := range perms {
			if have == need {
				return true
			}
		}
	}
	return false
}

// Checker evaluates permission predicates for a single role. It is a pure
// view over the static permission table; construct a new one whenever the
// session role changes.
type Checker struct {
	role  Role
	perms map[Permission]bool
}

// NewChecker creates a Checker for the role. An empty role means an
// unauthenticated session and defaults to guest.
func NewChecker(role Role) *Checker {
	if role == "" {
		role = RoleGuest
	}
	perms := make(map[Permission]bool)
	for _, p := range PermissionsForRole(role) {
		perms[p] = true
	}
	return &Checker{role: role, perms: perms}
}

// Role returns the role the checker was built for.
func (c *Checker) Role() Role {
	return c.role
}

// HasPermission checks membership of a single permission.
func (c *Checker) HasPermission(p Permission) bool {
	return c.perms[p]
}

// HasAnyPermission reports whether at least one of the permissions holds.
func (c *Checker) HasAnyPermission(perms ...Permission) bool {
	for _, p := range perms {
		if c.perms[p] {
			return true
		}
	}
	return false
}

// HasAllPermissions reports whether every one of the permissions holds.
func (c *Checker) HasAllPermissions(perms ...Permission) bool {
	for _, p := range perms {
		if !c.perms[p] {
			return false
		}
	}
	return true
}

// HasRole reports whether the checker's role is one of the given roles.
func (c *Checker) HasRole(roles ...Role) bool {
	for _, r := range roles {
		if c.role == r {
			return true
		}
	}
	return false
}

// Permissions returns the checker's permission set.
func (c *Checker) Permissions() []Permission {
	return PermissionsForRole(c.role)
}
