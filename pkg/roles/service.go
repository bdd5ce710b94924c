// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package roles

import (
	"context"
	"errors"
	"fmt"
	"strings"

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
	cache    RoleCacheInterface
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
		cache:    cache,
		resolver: authorization.NewRoleResolver(storage, cache, authz, logger),
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

func (s *Service) AssignRoles(ctx context.Context, userID, tenantID string, roles []string) error {
	ctx, span := s.tracer.Start(ctx, "roles.Service.AssignRoles")
	defer span.End()

	if userID == "" || tenantID == "" {
		return fmt.Errorf("%w: user id and tenant id are required", types.ErrBadRequest)
	}
	// Tenant ids are lowercase slugs; normalize before the write so the
	// uniqueness index cannot alias a mixed-case id to a second record.
	tenantID = strings.ToLower(tenantID)

	parsed, err := types.ParseRoles(roles)
	if err != nil {
		return fmt.Errorf("%w: %v", types.ErrBadRequest, err)
	}
	if len(parsed) == 0 {
		return fmt.Errorf("%w: at least one role is required", types.ErrBadRequest)
	}

	if err := s.resolver.ValidateActor(ctx, &tenantID); err != nil {
		return err
	}

	if err := s.storage.UpsertTenantRole(ctx, userID, tenantID, parsed, true); err != nil {
		if errors.Is(err, storage.ErrForeignKeyViolation) {
			return fmt.Errorf("user %s: %w", userID, types.ErrNotFound)
		}
		s.logger.Errorf("failed to assign roles to user %s in tenant %s: %v", userID, tenantID, err)
		return types.ErrInternal
	}

	s.cache.Invalidate(tenantID, userID)

	return nil
}

func (s *Service) RemoveRoles(ctx context.Context, userID, tenantID string, roles []string) error {
	ctx, span := s.tracer.Start(ctx, "roles.Service.RemoveRoles")
	defer span.End()

	if userID == "" || tenantID == "" {
		return fmt.Errorf("%w: user id and tenant id are required", types.ErrBadRequest)
	}
	tenantID = strings.ToLower(tenantID)

	parsed, err := types.ParseRoles(roles)
	if err != nil {
		return fmt.Errorf("%w: %v", types.ErrBadRequest, err)
	}
	if len(parsed) == 0 {
		return fmt.Errorf("%w: at least one role is required", types.ErrBadRequest)
	}

	if err := s.resolver.ValidateActor(ctx, &tenantID); err != nil {
		return err
	}

	if err := s.storage.RemoveTenantRoles(ctx, userID, tenantID, parsed); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("no membership for user %s in tenant %s: %w", userID, tenantID, types.ErrNotFound)
		}
		s.logger.Errorf("failed to remove roles from user %s in tenant %s: %v", userID, tenantID, err)
		return types.ErrInternal
	}

	s.cache.Invalidate(tenantID, userID)

	return nil
}

func (s *Service) PromoteToTenantAdmin(ctx context.Context, userID, tenantID string) error {
	ctx, span := s.tracer.Start(ctx, "roles.Service.PromoteToTenantAdmin")
	defer span.End()

	return s.AssignRoles(ctx, userID, tenantID, []string{string(types.RoleTenantAdmin)})
}

func (s *Service) GetUserRoles(ctx context.Context, userID, tenantID string) ([]types.Role, error) {
	ctx, span := s.tracer.Start(ctx, "roles.Service.GetUserRoles")
	defer span.End()

	if userID == "" || tenantID == "" {
		return nil, fmt.Errorf("%w: user id and tenant id are required", types.ErrBadRequest)
	}

	if err := s.resolver.ValidateActor(ctx, &tenantID); err != nil {
		return nil, err
	}

	return s.resolver.ResolveRoles(ctx, userID, tenantID)
}

func (s *Service) GetCurrentUserRoles(ctx context.Context) ([]types.Role, error) {
	ctx, span := s.tracer.Start(ctx, "roles.Service.GetCurrentUserRoles")
	defer span.End()

	principal, ok := authentication.PrincipalFromContext(ctx)
	if !ok {
		return nil, fmt.Errorf("%w: no authenticated user", types.ErrUnauthorized)
	}

	tenantID, ok := authentication.GetTenantID(ctx)
	if !ok {
		return nil, fmt.Errorf("%w: no tenant bound to request", types.ErrBadRequest)
	}

	return s.resolver.ResolveRoles(ctx, principal.UserID, tenantID)
}

func (s *Service) ListUsersByRole(ctx context.Context, tenantID, role string) ([]*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "roles.Service.ListUsersByRole")
	defer span.End()

	if tenantID == "" {
		return nil, fmt.Errorf("%w: tenant id is required", types.ErrBadRequest)
	}

	parsed, err := types.ParseRole(role)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrBadRequest, err)
	}

	if err := s.resolver.ValidateActor(ctx, &tenantID); err != nil {
		return nil, err
	}

	users, err := s.storage.ListUsersByRole(ctx, tenantID, parsed)
	if err != nil {
		s.logger.Errorf("failed to list users by role %s in tenant %s: %v", role, tenantID, err)
		return nil, types.ErrInternal
	}

	return users, nil
}

func (s *Service) ListSystemAdmins(ctx context.Context) ([]*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "roles.Service.ListSystemAdmins")
	defer span.End()

	// Tenant-agnostic read, SysAdmin only.
	if err := s.resolver.ValidateActor(ctx, nil); err != nil {
		return nil, err
	}

	admins, err := s.storage.ListSystemAdmins(ctx)
	if err != nil {
		s.logger.Errorf("failed to list system admins: %v", err)
		return nil, types.ErrInternal
	}

	return admins, nil
}

func (s *Service) LockUser(ctx context.Context, userID, reason string) error {
	ctx, span := s.tracer.Start(ctx, "roles.Service.LockUser")
	defer span.End()

	if userID == "" {
		return fmt.Errorf("%w: user id is required", types.ErrBadRequest)
	}

	principal, ok := authentication.PrincipalFromContext(ctx)
	if !ok {
		return fmt.Errorf("%w: no authenticated user", types.ErrUnauthorized)
	}

	// Lockout is tenant-agnostic, SysAdmin only.
	if err := s.resolver.ValidateActor(ctx, nil); err != nil {
		return err
	}

	if err := s.storage.SetUserLockout(ctx, userID, true, reason, principal.UserID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("user %s: %w", userID, types.ErrNotFound)
		}
		s.logger.Errorf("failed to lock user %s: %v", userID, err)
		return types.ErrInternal
	}

	s.logger.Security().AccountLocked(userID, principal.UserID)

	if tenantID, ok := authentication.GetTenantID(ctx); ok {
		s.cache.Invalidate(tenantID, userID)
	}

	return nil
}

func (s *Service) UnlockUser(ctx context.Context, userID string) error {
	ctx, span := s.tracer.Start(ctx, "roles.Service.UnlockUser")
	defer span.End()

	if userID == "" {
		return fmt.Errorf("%w: user id is required", types.ErrBadRequest)
	}

	principal, ok := authentication.PrincipalFromContext(ctx)
	if !ok {
		return fmt.Errorf("%w: no authenticated user", types.ErrUnauthorized)
	}

	if err := s.resolver.ValidateActor(ctx, nil); err != nil {
		return err
	}

	if err := s.storage.SetUserLockout(ctx, userID, false, "", principal.UserID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("user %s: %w", userID, types.ErrNotFound)
		}
		s.logger.Errorf("failed to unlock user %s: %v", userID, err)
		return types.ErrInternal
	}

	s.logger.Security().AccountUnlocked(userID, principal.UserID)

	if tenantID, ok := authentication.GetTenantID(ctx); ok {
		s.cache.Invalidate(tenantID, userID)
	}

	return nil
}
