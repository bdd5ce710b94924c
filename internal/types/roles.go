// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"fmt"
	"slices"
)

// Role is one of the closed set of system role names. SysAdmin is global and
// lives on the User record; it is never stored inside a TenantRole.
type Role string

const (
	RoleSysAdmin    Role = "SysAdmin"
	RoleTenantAdmin Role = "TenantAdmin"
	RoleTenantUser  Role = "TenantUser"
)

var tenantScopedRoles = []Role{RoleTenantAdmin, RoleTenantUser}

// ParseRole validates a role name against the closed set of roles assignable
// to a TenantRole. SysAdmin is rejected here on purpose.
func ParseRole(name string) (Role, error) {
	r := Role(name)
	if !slices.Contains(tenantScopedRoles, r) {
		return "", fmt.Errorf("invalid role %q", name)
	}
	return r, nil
}

// ParseRoles validates a set of role names, dropping duplicates.
func ParseRoles(names []string) ([]Role, error) {
	var roles []Role
	for _, n := range names {
		r, err := ParseRole(n)
		if err != nil {
			return nil, err
		}
		if !slices.Contains(roles, r) {
			roles = append(roles, r)
		}
	}
	return roles, nil
}

// PermissionLevel is the ordered resource-access tier used by agent ACL
// checks. It is orthogonal to system roles.
type PermissionLevel int

const (
	PermissionRead PermissionLevel = iota
	PermissionWrite
	PermissionOwner
)

func (p PermissionLevel) String() string {
	switch p {
	case PermissionRead:
		return "read"
	case PermissionWrite:
		return "write"
	case PermissionOwner:
		return "owner"
	}
	return fmt.Sprintf("PermissionLevel(%d)", int(p))
}

// ParsePermissionLevel maps a wire name to its access tier.
func ParsePermissionLevel(name string) (PermissionLevel, error) {
	switch name {
	case "read":
		return PermissionRead, nil
	case "write":
		return PermissionWrite, nil
	case "owner":
		return PermissionOwner, nil
	}
	return 0, fmt.Errorf("invalid permission level %q", name)
}

func RoleStrings(roles []Role) []string {
	out := make([]string, len(roles))
	for i, r := range roles {
		out[i] = string(r)
	}
	return out
}

func RolesFromStrings(names []string) []Role {
	out := make([]Role, len(names))
	for i, n := range names {
		out[i] = Role(n)
	}
	return out
}
