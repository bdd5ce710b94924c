// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package membership

import (
	"context"

	"github.com/canonical/membership-service/internal/types"
	"github.com/canonical/membership-service/pkg/authentication"
)

type ServiceInterface interface {
	RequestToJoinTenant(ctx context.Context, tenantID string) error
	CreateTenant(ctx context.Context, tenantID, name, domain string) (*types.Tenant, error)
	ApproveUser(ctx context.Context, userID, tenantID string) error
	GetUnapprovedUsers(ctx context.Context, tenantID string) ([]*types.PendingMember, error)
	AssignBootstrapSysAdminRoles(ctx context.Context) error
	ListTenants(ctx context.Context) ([]*types.Tenant, error)
	GetTenant(ctx context.Context, tenantID string) (*types.Tenant, error)
	SetTenantStatus(ctx context.Context, tenantID string, enabled bool) error
	EnsureUser(ctx context.Context, principal authentication.Principal) (*types.User, error)
}

type StorageInterface interface {
	GetUserByID(ctx context.Context, id string) (*types.User, error)
	CreateUser(ctx context.Context, user *types.User) (*types.User, error)
	PromoteFirstSysAdmin(ctx context.Context, userID string) (bool, error)

	GetTenantRole(ctx context.Context, userID, tenantID string) (*types.TenantRole, error)
	CreateTenantRole(ctx context.Context, userID, tenantID string, roles []types.Role, approved bool) error
	UpsertTenantRole(ctx context.Context, userID, tenantID string, roles []types.Role, approved bool) error
	ApproveTenantRole(ctx context.Context, userID, tenantID string, defaultRole types.Role) (bool, error)
	ListUnapprovedMembers(ctx context.Context, tenantID string) ([]*types.PendingMember, error)

	CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error)
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	ListTenants(ctx context.Context) ([]*types.Tenant, error)
	SetTenantStatus(ctx context.Context, id string, enabled bool) error
}

type AuthzInterface interface {
	ValidateTenantAccess(ctx context.Context, actingUserID string, actingRoles []types.Role, actingTenantID string, targetTenantID *string) error
}

type RoleCacheInterface interface {
	Get(tenantID, userID string) ([]types.Role, bool)
	Set(tenantID, userID string, roles []types.Role)
	Invalidate(tenantID, userID string)
}
