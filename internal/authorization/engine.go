// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"fmt"
	"slices"
	"strings"

	"github.com/canonical/membership-service/internal/types"
)

// The decision engine is the single source of truth for privileged
// mutations. Both checks are pure functions of their inputs; callers must
// not re-implement any part of the policy.

// ValidateTenantAccess decides whether the acting user may operate on
// targetTenantID. Rules, in order:
//  1. a system admin may do anything
//  2. a nil target tenant means the operation is tenant-agnostic and is
//     reserved for system admins
//  3. a tenant admin may operate on their own tenant (case-insensitive)
//  4. everything else is denied
//
// A nil return means access is allowed.
func ValidateTenantAccess(actingUserID string, actingRoles []types.Role, actingTenantID string, targetTenantID *string) error {
	if slices.Contains(actingRoles, types.RoleSysAdmin) {
		return nil
	}

	if targetTenantID == nil {
		return fmt.Errorf("user %s may not perform tenant-agnostic operations: %w", actingUserID, types.ErrForbidden)
	}

	if slices.Contains(actingRoles, types.RoleTenantAdmin) && strings.EqualFold(actingTenantID, *targetTenantID) {
		return nil
	}

	return fmt.Errorf("user %s: %w", actingUserID, types.ErrForbidden)
}

// HasResourcePermission checks an agent's ACL for the given permission
// level. System admins bypass agent ACLs at every level; system-scoped
// agents are readable by anyone.
func HasResourcePermission(agent *types.Agent, userID string, userRoles []types.Role, level types.PermissionLevel) bool {
	if slices.Contains(userRoles, types.RoleSysAdmin) {
		return true
	}

	switch level {
	case types.PermissionOwner:
		return slices.Contains(agent.OwnerAccess, userID)
	case types.PermissionWrite:
		return slices.Contains(agent.OwnerAccess, userID) ||
			slices.Contains(agent.WriteAccess, userID)
	case types.PermissionRead:
		return agent.SystemScoped ||
			slices.Contains(agent.OwnerAccess, userID) ||
			slices.Contains(agent.WriteAccess, userID) ||
			slices.Contains(agent.ReadAccess, userID)
	}

	return false
}
