// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"errors"
	"fmt"

	"github.com/canonical/membership-service/internal/logging"
	"github.com/canonical/membership-service/internal/storage"
	"github.com/canonical/membership-service/internal/types"
	"github.com/canonical/membership-service/pkg/authentication"
)

// RoleReaderInterface is the storage subset the resolver reads from.
type RoleReaderInterface interface {
	GetUserByID(ctx context.Context, id string) (*types.User, error)
	GetTenantRole(ctx context.Context, userID, tenantID string) (*types.TenantRole, error)
}

type RoleCacheInterface interface {
	Get(tenantID, userID string) ([]types.Role, bool)
	Set(tenantID, userID string, roles []types.Role)
}

type TenantAccessInterface interface {
	ValidateTenantAccess(ctx context.Context, actingUserID string, actingRoles []types.Role, actingTenantID string, targetTenantID *string) error
}

// RoleResolver computes a user's effective role set and validates the calling
// actor against a target tenant. It is the single home of the resolution
// rules: pending memberships grant nothing, and SysAdmin is appended from the
// user record rather than cached, so a bootstrap promotion is visible on the
// next request.
type RoleResolver struct {
	storage RoleReaderInterface
	cache   RoleCacheInterface
	authz   TenantAccessInterface

	logger logging.LoggerInterface
}

func NewRoleResolver(
	storage RoleReaderInterface,
	cache RoleCacheInterface,
	authz TenantAccessInterface,
	logger logging.LoggerInterface,
) *RoleResolver {
	return &RoleResolver{
		storage: storage,
		cache:   cache,
		authz:   authz,
		logger:  logger,
	}
}

// ValidateActor resolves the caller from the context and runs the tenant
// access decision against targetTenantID. A nil target means the operation is
// tenant-agnostic and only a SysAdmin passes.
func (r *RoleResolver) ValidateActor(ctx context.Context, targetTenantID *string) error {
	principal, ok := authentication.PrincipalFromContext(ctx)
	if !ok {
		return fmt.Errorf("%w: no authenticated user", types.ErrUnauthorized)
	}

	actingTenantID, _ := authentication.GetTenantID(ctx)

	actorRoles, err := r.ResolveRoles(ctx, principal.UserID, actingTenantID)
	if err != nil {
		return err
	}

	return r.authz.ValidateTenantAccess(ctx, principal.UserID, actorRoles, actingTenantID, targetTenantID)
}

// ResolveRoles returns the user's effective role set for the tenant, reading
// the tenant-scoped part through the cache.
func (r *RoleResolver) ResolveRoles(ctx context.Context, userID, tenantID string) ([]types.Role, error) {
	user, err := r.storage.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("user %s: %w", userID, types.ErrNotFound)
		}
		r.logger.Errorf("failed to get user %s: %v", userID, err)
		return nil, types.ErrInternal
	}

	var roles []types.Role
	if tenantID != "" {
		cached, ok := r.cache.Get(tenantID, userID)
		if ok {
			roles = cached
		} else {
			tenantRole, err := r.storage.GetTenantRole(ctx, userID, tenantID)
			if err != nil && !errors.Is(err, storage.ErrNotFound) {
				r.logger.Errorf("failed to get tenant role for user %s in tenant %s: %v", userID, tenantID, err)
				return nil, types.ErrInternal
			}
			// Pending memberships grant nothing until approved.
			if tenantRole != nil && tenantRole.IsApproved {
				roles = tenantRole.Roles
			}
			r.cache.Set(tenantID, userID, roles)
		}
	}

	if user.IsSysAdmin {
		roles = append(roles[:len(roles):len(roles)], types.RoleSysAdmin)
	}

	return roles, nil
}
