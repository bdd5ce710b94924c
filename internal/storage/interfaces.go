// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"time"

	"github.com/canonical/membership-service/internal/types"
)

type IdentityStorageInterface interface {
	GetUserByID(ctx context.Context, id string) (*types.User, error)
	GetUserByEmail(ctx context.Context, email string) (*types.User, error)
	// CreateUser inserts the user, granting SysAdmin atomically when no user
	// exists yet. Returns the stored record.
	CreateUser(ctx context.Context, user *types.User) (*types.User, error)
	UpdateUser(ctx context.Context, user *types.User) error
	AnyUserExists(ctx context.Context) (bool, error)
	ListSystemAdmins(ctx context.Context) ([]*types.User, error)
	ListUsersByRole(ctx context.Context, tenantID string, role types.Role) ([]*types.User, error)
	SetUserLockout(ctx context.Context, userID string, locked bool, reason, lockedBy string) error
	// PromoteFirstSysAdmin flips is_sysadmin for userID only while no system
	// admin exists; reports whether the promotion happened.
	PromoteFirstSysAdmin(ctx context.Context, userID string) (bool, error)

	GetTenantRole(ctx context.Context, userID, tenantID string) (*types.TenantRole, error)
	ListTenantRolesByUser(ctx context.Context, userID string) ([]*types.TenantRole, error)
	// UpsertTenantRole unions roles into the user's record for the tenant,
	// creating it when absent. Approval is sticky: once approved a record
	// never reverts through this path.
	UpsertTenantRole(ctx context.Context, userID, tenantID string, roles []types.Role, approved bool) error
	// CreateTenantRole inserts a new record and fails with ErrDuplicateKey
	// when one already exists for (user, tenant).
	CreateTenantRole(ctx context.Context, userID, tenantID string, roles []types.Role, approved bool) error
	// RemoveTenantRoles removes the named roles, deleting the record when its
	// role set becomes empty.
	RemoveTenantRoles(ctx context.Context, userID, tenantID string, roles []types.Role) error
	// ApproveTenantRole flips is_approved, seeding defaultRole when the role
	// set is empty; reports whether a pending record was approved.
	ApproveTenantRole(ctx context.Context, userID, tenantID string, defaultRole types.Role) (bool, error)
	ListUnapprovedMembers(ctx context.Context, tenantID string) ([]*types.PendingMember, error)
}

type TenantStorageInterface interface {
	CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error)
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	GetTenantByDomain(ctx context.Context, domain string) (*types.Tenant, error)
	ListTenants(ctx context.Context) ([]*types.Tenant, error)
	UpdateTenant(ctx context.Context, tenant *types.Tenant, paths []string) error
	DeleteTenant(ctx context.Context, id string) error
	SetTenantStatus(ctx context.Context, id string, enabled bool) error
}

type InvitationStorageInterface interface {
	CreateInvitation(ctx context.Context, invite *types.Invitation) (*types.Invitation, error)
	GetInvitationByToken(ctx context.Context, token string) (*types.Invitation, error)
	GetPendingInvitationByEmail(ctx context.Context, email string) (*types.Invitation, error)
	// AcceptInvitation transitions the invitation out of pending exactly
	// once; returns the accepted record or ErrNotFound when the token is
	// unknown, terminal, or expired.
	AcceptInvitation(ctx context.Context, token string, now time.Time) (*types.Invitation, error)
	// ExpireInvitation marks a pending invitation past its deadline as
	// expired; reports whether this call performed the transition.
	ExpireInvitation(ctx context.Context, token string, now time.Time) (bool, error)
}

type AgentStorageInterface interface {
	CreateAgent(ctx context.Context, agent *types.Agent) (*types.Agent, error)
	GetAgentByID(ctx context.Context, id string) (*types.Agent, error)
	ListAgentsByTenant(ctx context.Context, tenantID string) ([]*types.Agent, error)
	UpdateAgentAccess(ctx context.Context, id string, owner, write, read []string) error
}

type StorageInterface interface {
	IdentityStorageInterface
	TenantStorageInterface
	InvitationStorageInterface
	AgentStorageInterface
}
