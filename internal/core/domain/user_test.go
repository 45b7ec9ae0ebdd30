package domain

import "testing"

func TestRoleBackendMapping(t *testing.T) {
	cases := []struct {
		role    Role
		backend string
	}{
		{RoleManager, "GESTIONNAIRE"},
		{RoleCourier, "LIVREUR"},
		{RoleClient, "CLIENT"},
		{RoleRecipient, "DESTINATAIRE"},
	}

	for _, tc := range cases {
		if got := tc.role.BackendName(); got != tc.backend {
			t.Fatalf("BackendName(%s) = %q, want %q", tc.role, got, tc.backend)
		}
		role, ok := RoleFromBackend(tc.backend)
		if !ok || role != tc.role {
			t.Fatalf("RoleFromBackend(%q) = %v/%v, want %s", tc.backend, role, ok, tc.role)
		}
		if !tc.role.IsValid() {
			t.Fatalf("expected %s to be valid", tc.role)
		}
	}
}

func TestRoleFromBackend_Unknown(t *testing.T) {
	if _, ok := RoleFromBackend("ADMIN"); ok {
		t.Fatalf("expected unknown backend role to be rejected")
	}
	if Role("ADMIN").IsValid() {
		t.Fatalf("expected ADMIN to be invalid")
	}
}

func TestRolesFromBackend_DropsUnknown(t *testing.T) {
	roles := RolesFromBackend([]string{"GESTIONNAIRE", "SUPERVISEUR", "CLIENT"})
	if len(roles) != 2 {
		t.Fatalf("expected 2 roles, got %v", roles)
	}
	if roles[0] != RoleManager || roles[1] != RoleClient {
		t.Fatalf("unexpected roles: %v", roles)
	}
}

func TestRolePriorityOrder(t *testing.T) {
	want := []Role{RoleManager, RoleCourier, RoleClient, RoleRecipient}
	got := RolePriority()
	if len(got) != len(want) {
		t.Fatalf("expected %d roles, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("priority[%d] = %s, want %s", i, got[i], want[i])
		}
	}

	// The returned slice is a copy; mutating it must not change the order.
	got[0] = RoleRecipient
	if RolePriority()[0] != RoleManager {
		t.Fatalf("RolePriority leaked its backing slice")
	}
}

func TestUserHasRole(t *testing.T) {
	u := &User{Roles: []Role{RoleClient, RoleRecipient}}
	if !u.HasRole(RoleClient) {
		t.Fatalf("expected user to have CLIENT")
	}
	if u.HasRole(RoleManager) {
		t.Fatalf("did not expect user to have MANAGER")
	}
}
