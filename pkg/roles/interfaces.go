// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package roles

import (
	"context"

	"github.com/canonical/membership-service/internal/types"
)

type ServiceInterface interface {
	AssignRoles(ctx context.Context, userID, tenantID string, roles []string) error
	RemoveRoles(ctx context.Context, userID, tenantID string, roles []string) error
	PromoteToTenantAdmin(ctx context.Context, userID, tenantID string) error
	GetUserRoles(ctx context.Context, userID, tenantID string) ([]types.Role, error)
	GetCurrentUserRoles(ctx context.Context) ([]types.Role, error)
	ListUsersByRole(ctx context.Context, tenantID, role string) ([]*types.User, error)
	ListSystemAdmins(ctx context.Context) ([]*types.User, error)
	LockUser(ctx context.Context, userID, reason string) error
	UnlockUser(ctx context.Context, userID string) error
}

type StorageInterface interface {
	GetUserByID(ctx context.Context, id string) (*types.User, error)
	GetTenantRole(ctx context.Context, userID, tenantID string) (*types.TenantRole, error)
	UpsertTenantRole(ctx context.Context, userID, tenantID string, roles []types.Role, approved bool) error
	RemoveTenantRoles(ctx context.Context, userID, tenantID string, roles []types.Role) error
	ListUsersByRole(ctx context.Context, tenantID string, role types.Role) ([]*types.User, error)
	ListSystemAdmins(ctx context.Context) ([]*types.User, error)
	SetUserLockout(ctx context.Context, userID string, locked bool, reason, lockedBy string) error
}

type AuthzInterface interface {
	ValidateTenantAccess(ctx context.Context, actingUserID string, actingRoles []types.Role, actingTenantID string, targetTenantID *string) error
}

type RoleCacheInterface interface {
	Get(tenantID, userID string) ([]types.Role, bool)
	Set(tenantID, userID string, roles []types.Role)
	Invalidate(tenantID, userID string)
}
