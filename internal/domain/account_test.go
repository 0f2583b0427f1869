package domain

import "testing"

func TestRoleCanCreate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		actor  Role
		target Role
		want   bool
	}{
		{RoleSuperAdmin, RoleSuperAdmin, false},
		{RoleAdmin, RoleSuperAdmin, false},
		{RoleUser, RoleSuperAdmin, false},
		{RoleSuperAdmin, RoleAdmin, true},
		{RoleAdmin, RoleAdmin, false},
		{RoleUser, RoleAdmin, false},
		{RoleSuperAdmin, RoleUser, true},
		{RoleAdmin, RoleUser, true},
		{RoleUser, RoleUser, false},
		{RoleGuest, RoleUser, false},
		{RoleAdmin, Role("invalid"), false},
	}

	for _, tt := range tests {
		if got := tt.actor.CanCreate(tt.target); got != tt.want {
			t.Errorf("%s.CanCreate(%s) = %v, want %v", tt.actor, tt.target, got, tt.want)
		}
	}
}

func TestRoleIsValid(t *testing.T) {
	t.Parallel()

	for _, r := range []Role{RoleUser, RoleAdmin, RoleSuperAdmin} {
		if !r.IsValid() {
			t.Errorf("expected %s to be valid", r)
		}
	}
	if RoleGuest.IsValid() {
		t.Error("guest is not an authenticated role")
	}
	if Role("root").IsValid() {
		t.Error("unknown role should be invalid")
	}
}

func TestRoleManagement(t *testing.T) {
	t.Parallel()

	if !RoleAdmin.CanManageUsers() || !RoleSuperAdmin.CanManageUsers() {
		t.Error("admin and superadmin should manage users")
	}
	if RoleUser.CanManageUsers() {
		t.Error("user should not manage users")
	}
	if RoleAdmin.CanManageAdmins() {
		t.Error("only superadmin manages admins")
	}
	if !RoleSuperAdmin.CanManageAdmins() {
		t.Error("superadmin should manage admins")
	}
}

func TestAccountHelpers(t *testing.T) {
	t.Parallel()

	a := Account{FirstName: "Abebe", LastName: "Kebede", Status: StatusActive}
	if a.FullName() != "Abebe Kebede" {
		t.Fatalf("unexpected full name %q", a.FullName())
	}
	if !a.IsActive() {
		t.Fatal("active account reported inactive")
	}

	a.Status = StatusSuspended
	if a.IsActive() {
		t.Fatal("suspended account reported active")
	}
}

func TestAccountStatusIsValid(t *testing.T) {
	t.Parallel()

	for _, s := range []AccountStatus{StatusActive, StatusInactive, StatusSuspended} {
		if !s.IsValid() {
			t.Errorf("expected %s to be valid", s)
		}
	}
	if AccountStatus("banned").IsValid() {
		t.Error("unknown status should be invalid")
	}
}
