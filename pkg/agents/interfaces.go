// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package agents

import (
	"context"

	"github.com/canonical/membership-service/internal/types"
)

type ServiceInterface interface {
	CreateAgent(ctx context.Context, name string, tenantID *string, systemScoped bool) (*types.Agent, error)
	GetAgent(ctx context.Context, id string) (*types.Agent, error)
	ListAgents(ctx context.Context, tenantID string) ([]*types.Agent, error)
	GrantAccess(ctx context.Context, agentID, userID string, level types.PermissionLevel) error
	RevokeAccess(ctx context.Context, agentID, userID string, level types.PermissionLevel) error
	CheckAccess(ctx context.Context, agentID, userID string, level types.PermissionLevel) (bool, error)
}

type StorageInterface interface {
	GetUserByID(ctx context.Context, id string) (*types.User, error)
	GetTenantRole(ctx context.Context, userID, tenantID string) (*types.TenantRole, error)

	CreateAgent(ctx context.Context, agent *types.Agent) (*types.Agent, error)
	GetAgentByID(ctx context.Context, id string) (*types.Agent, error)
	ListAgentsByTenant(ctx context.Context, tenantID string) ([]*types.Agent, error)
	UpdateAgentAccess(ctx context.Context, id string, owner, write, read []string) error
}

type AuthzInterface interface {
	ValidateTenantAccess(ctx context.Context, actingUserID string, actingRoles []types.Role, actingTenantID string, targetTenantID *string) error
	HasResourcePermission(ctx context.Context, agent *types.Agent, userID string, userRoles []types.Role, level types.PermissionLevel) bool
}

type RoleCacheInterface interface {
	Get(tenantID, userID string) ([]types.Role, bool)
	Set(tenantID, userID string, roles []types.Role)
	Invalidate(tenantID, userID string)
}
