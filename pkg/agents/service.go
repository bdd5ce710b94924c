// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package agents

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/canonical/membership-service/internal/authorization"
	"github.com/canonical/membership-service/internal/logging"
	"github.com/canonical/membership-service/internal/monitoring"
	"github.com/canonical/membership-service/internal/storage"
	"github.com/canonical/membership-service/internal/tracing"
	"github.com/canonical/membership-service/internal/types"
	"github.com/canonical/membership-service/pkg/authentication"
)

type Service struct {
	storage  StorageInterface
	authz    AuthzInterface
	resolver *authorization.RoleResolver

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	authz AuthzInterface,
	cache RoleCacheInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:  storage,
		authz:    authz,
		resolver: authorization.NewRoleResolver(storage, cache, authz, logger),
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

// CreateAgent registers an agent and seeds its creator into all three access
// sets. System-scoped agents carry no tenant and are reserved for system
// admins.
func (s *Service) CreateAgent(ctx context.Context, name string, tenantID *string, systemScoped bool) (*types.Agent, error) {
	ctx, span := s.tracer.Start(ctx, "agents.Service.CreateAgent")
	defer span.End()

	principal, ok := authentication.PrincipalFromContext(ctx)
	if !ok {
		return nil, fmt.Errorf("%w: no authenticated user", types.ErrUnauthorized)
	}

	if name == "" {
		return nil, fmt.Errorf("%w: agent name is required", types.ErrBadRequest)
	}

	if systemScoped {
		tenantID = nil
	} else if tenantID == nil || *tenantID == "" {
		return nil, fmt.Errorf("%w: tenant id is required for tenant-scoped agents", types.ErrBadRequest)
	}

	if err := s.resolver.ValidateActor(ctx, tenantID); err != nil {
		return nil, err
	}

	creator := []string{principal.UserID}
	agent, err := s.storage.CreateAgent(ctx, &types.Agent{
		Name:         name,
		TenantID:     tenantID,
		SystemScoped: systemScoped,
		OwnerAccess:  creator,
		WriteAccess:  creator,
		ReadAccess:   creator,
	})
	if err != nil {
		if errors.Is(err, storage.ErrForeignKeyViolation) {
			return nil, fmt.Errorf("tenant %s: %w", *tenantID, types.ErrNotFound)
		}
		s.logger.Errorf("failed to create agent %s: %v", name, err)
		return nil, types.ErrInternal
	}

	return agent, nil
}

func (s *Service) GetAgent(ctx context.Context, id string) (*types.Agent, error) {
	ctx, span := s.tracer.Start(ctx, "agents.Service.GetAgent")
	defer span.End()

	agent, _, err := s.agentForCaller(ctx, id, types.PermissionRead)
	if err != nil {
		return nil, err
	}

	return agent, nil
}

func (s *Service) ListAgents(ctx context.Context, tenantID string) ([]*types.Agent, error) {
	ctx, span := s.tracer.Start(ctx, "agents.Service.ListAgents")
	defer span.End()

	if tenantID == "" {
		return nil, fmt.Errorf("%w: tenant id is required", types.ErrBadRequest)
	}

	if err := s.resolver.ValidateActor(ctx, &tenantID); err != nil {
		return nil, err
	}

	agents, err := s.storage.ListAgentsByTenant(ctx, tenantID)
	if err != nil {
		s.logger.Errorf("failed to list agents for tenant %s: %v", tenantID, err)
		return nil, types.ErrInternal
	}

	return agents, nil
}

// GrantAccess adds a user to an agent's ACL at the given level. Granting a
// level implies every level below it, so the sets stay nested.
func (s *Service) GrantAccess(ctx context.Context, agentID, userID string, level types.PermissionLevel) error {
	ctx, span := s.tracer.Start(ctx, "agents.Service.GrantAccess")
	defer span.End()

	if userID == "" {
		return fmt.Errorf("%w: user id is required", types.ErrBadRequest)
	}

	agent, _, err := s.agentForCaller(ctx, agentID, types.PermissionOwner)
	if err != nil {
		return err
	}

	if _, err := s.storage.GetUserByID(ctx, userID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("user %s: %w", userID, types.ErrNotFound)
		}
		s.logger.Errorf("failed to get user %s: %v", userID, err)
		return types.ErrInternal
	}

	switch level {
	case types.PermissionOwner:
		agent.OwnerAccess = addMember(agent.OwnerAccess, userID)
		fallthrough
	case types.PermissionWrite:
		agent.WriteAccess = addMember(agent.WriteAccess, userID)
		fallthrough
	case types.PermissionRead:
		agent.ReadAccess = addMember(agent.ReadAccess, userID)
	default:
		return fmt.Errorf("%w: invalid permission level", types.ErrBadRequest)
	}

	return s.updateAccess(ctx, agent)
}

// RevokeAccess removes a user from an agent's ACL at the given level and at
// every level above it, so the sets stay nested. The last owner cannot be
// removed.
func (s *Service) RevokeAccess(ctx context.Context, agentID, userID string, level types.PermissionLevel) error {
	ctx, span := s.tracer.Start(ctx, "agents.Service.RevokeAccess")
	defer span.End()

	if userID == "" {
		return fmt.Errorf("%w: user id is required", types.ErrBadRequest)
	}

	agent, _, err := s.agentForCaller(ctx, agentID, types.PermissionOwner)
	if err != nil {
		return err
	}

	switch level {
	case types.PermissionRead:
		agent.ReadAccess = removeMember(agent.ReadAccess, userID)
		fallthrough
	case types.PermissionWrite:
		agent.WriteAccess = removeMember(agent.WriteAccess, userID)
		fallthrough
	case types.PermissionOwner:
		agent.OwnerAccess = removeMember(agent.OwnerAccess, userID)
	default:
		return fmt.Errorf("%w: invalid permission level", types.ErrBadRequest)
	}

	if len(agent.OwnerAccess) == 0 {
		return fmt.Errorf("%w: an agent must retain at least one owner", types.ErrBadRequest)
	}

	return s.updateAccess(ctx, agent)
}

// CheckAccess evaluates whether userID holds the given permission on the
// agent. The caller needs read access to ask.
func (s *Service) CheckAccess(ctx context.Context, agentID, userID string, level types.PermissionLevel) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "agents.Service.CheckAccess")
	defer span.End()

	if userID == "" {
		return false, fmt.Errorf("%w: user id is required", types.ErrBadRequest)
	}

	agent, _, err := s.agentForCaller(ctx, agentID, types.PermissionRead)
	if err != nil {
		return false, err
	}

	targetRoles, err := s.resolver.ResolveRoles(ctx, userID, agentTenant(agent))
	if err != nil {
		return false, err
	}

	return s.authz.HasResourcePermission(ctx, agent, userID, targetRoles, level), nil
}

// agentForCaller loads the agent and enforces the caller's permission on it.
// The caller's roles are resolved against the agent's own tenant.
func (s *Service) agentForCaller(ctx context.Context, agentID string, level types.PermissionLevel) (*types.Agent, *authentication.Principal, error) {
	principal, ok := authentication.PrincipalFromContext(ctx)
	if !ok {
		return nil, nil, fmt.Errorf("%w: no authenticated user", types.ErrUnauthorized)
	}

	if agentID == "" {
		return nil, nil, fmt.Errorf("%w: agent id is required", types.ErrBadRequest)
	}

	agent, err := s.storage.GetAgentByID(ctx, agentID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil, fmt.Errorf("agent %s: %w", agentID, types.ErrNotFound)
		}
		s.logger.Errorf("failed to get agent %s: %v", agentID, err)
		return nil, nil, types.ErrInternal
	}

	roles, err := s.resolver.ResolveRoles(ctx, principal.UserID, agentTenant(agent))
	if err != nil {
		return nil, nil, err
	}

	if !s.authz.HasResourcePermission(ctx, agent, principal.UserID, roles, level) {
		return nil, nil, fmt.Errorf("%w: %s access to agent %s denied", types.ErrForbidden, level, agentID)
	}

	return agent, &principal, nil
}

func (s *Service) updateAccess(ctx context.Context, agent *types.Agent) error {
	if err := s.storage.UpdateAgentAccess(ctx, agent.ID, agent.OwnerAccess, agent.WriteAccess, agent.ReadAccess); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("agent %s: %w", agent.ID, types.ErrNotFound)
		}
		s.logger.Errorf("failed to update access for agent %s: %v", agent.ID, err)
		return types.ErrInternal
	}
	return nil
}

func agentTenant(agent *types.Agent) string {
	if agent.TenantID == nil {
		return ""
	}
	return *agent.TenantID
}

func addMember(set []string, userID string) []string {
	if slices.Contains(set, userID) {
		return set
	}
	return append(set, userID)
}

func removeMember(set []string, userID string) []string {
	return slices.DeleteFunc(set, func(id string) bool { return id == userID })
}
