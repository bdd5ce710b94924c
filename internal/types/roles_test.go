// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"testing"
)

func TestParseRole(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		expected  Role
		expectErr bool
	}{
		{name: "tenant admin", input: "TenantAdmin", expected: RoleTenantAdmin},
		{name: "tenant user", input: "TenantUser", expected: RoleTenantUser},
		{name: "sysadmin is not tenant assignable", input: "SysAdmin", expectErr: true},
		{name: "unknown role", input: "Wizard", expectErr: true},
		{name: "empty", input: "", expectErr: true},
		{name: "case sensitive", input: "tenantadmin", expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := ParseRole(tc.input)
			if tc.expectErr {
				if err == nil {
					t.Errorf("expected error for %q, got role %q", tc.input, r)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if r != tc.expected {
				t.Errorf("expected %q, got %q", tc.expected, r)
			}
		})
	}
}

func TestParseRolesDropsDuplicates(t *testing.T) {
	roles, err := ParseRoles([]string{"TenantUser", "TenantUser", "TenantAdmin"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(roles) != 2 {
		t.Errorf("expected 2 roles, got %d: %v", len(roles), roles)
	}
}

func TestPermissionLevelOrdering(t *testing.T) {
	if !(PermissionRead < PermissionWrite && PermissionWrite < PermissionOwner) {
		t.Error("permission levels are not ordered Read < Write < Owner")
	}
}
