// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package membership

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

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
	validate *validator.Validate

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
		validate: validator.New(),
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

// RequestToJoinTenant files a pending membership for the caller. An enabled
// tenant gates joining; any existing membership, approved or not, conflicts.
func (s *Service) RequestToJoinTenant(ctx context.Context, tenantID string) error {
	ctx, span := s.tracer.Start(ctx, "membership.Service.RequestToJoinTenant")
	defer span.End()

	principal, ok := authentication.PrincipalFromContext(ctx)
	if !ok {
		return fmt.Errorf("%w: no authenticated user", types.ErrUnauthorized)
	}

	if tenantID == "" {
		return fmt.Errorf("%w: tenant id is required", types.ErrBadRequest)
	}

	tenant, err := s.storage.GetTenantByID(ctx, tenantID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("tenant %s: %w", tenantID, types.ErrNotFound)
		}
		s.logger.Errorf("failed to get tenant %s: %v", tenantID, err)
		return types.ErrInternal
	}
	if !tenant.Enabled {
		return fmt.Errorf("%w: tenant is disabled", types.ErrForbidden)
	}

	err = s.storage.CreateTenantRole(ctx, principal.UserID, tenantID, []types.Role{types.RoleTenantUser}, false)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return fmt.Errorf("%w: membership already exists for tenant %s", types.ErrConflict, tenantID)
		}
		s.logger.Errorf("failed to create join request for user %s in tenant %s: %v", principal.UserID, tenantID, err)
		return types.ErrInternal
	}

	s.cache.Invalidate(tenantID, principal.UserID)

	return nil
}

// CreateTenant creates a tenant and makes its creator the first TenantAdmin.
// The creator grant is an explicit self-bootstrap path and skips the access
// decision on purpose.
func (s *Service) CreateTenant(ctx context.Context, tenantID, name, domain string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "membership.Service.CreateTenant")
	defer span.End()

	principal, ok := authentication.PrincipalFromContext(ctx)
	if !ok {
		return nil, fmt.Errorf("%w: no authenticated user", types.ErrUnauthorized)
	}

	if err := s.validate.Var(tenantID, "required,lowercase,hostname_rfc1123,max=63"); err != nil {
		return nil, fmt.Errorf("%w: tenant id must be a lowercase slug", types.ErrBadRequest)
	}
	if name == "" {
		return nil, fmt.Errorf("%w: tenant name is required", types.ErrBadRequest)
	}

	if _, err := s.EnsureUser(ctx, principal); err != nil {
		return nil, err
	}

	created, err := s.storage.CreateTenant(ctx, &types.Tenant{
		ID:      tenantID,
		Name:    name,
		Domain:  domain,
		Enabled: true,
	})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, fmt.Errorf("%w: tenant id %s is taken", types.ErrConflict, tenantID)
		}
		s.logger.Errorf("failed to create tenant %s: %v", tenantID, err)
		return nil, types.ErrInternal
	}

	if err := s.storage.UpsertTenantRole(ctx, principal.UserID, created.ID, []types.Role{types.RoleTenantAdmin}, true); err != nil {
		s.logger.Errorf("failed to grant creator admin on tenant %s: %v", created.ID, err)
		return nil, types.ErrInternal
	}

	s.cache.Invalidate(created.ID, principal.UserID)

	return created, nil
}

// ApproveUser flips a pending membership to approved. Only a global SysAdmin
// may approve; the target tenant is deliberately not part of the access check
// so TenantAdmins cannot approve their own tenant's requests.
func (s *Service) ApproveUser(ctx context.Context, userID, tenantID string) error {
	ctx, span := s.tracer.Start(ctx, "membership.Service.ApproveUser")
	defer span.End()

	if userID == "" || tenantID == "" {
		return fmt.Errorf("%w: user id and tenant id are required", types.ErrBadRequest)
	}
	// Tenant ids are lowercase slugs; normalize so the fallback insert below
	// cannot record a mixed-case alias of an existing membership.
	tenantID = strings.ToLower(tenantID)

	if err := s.resolver.ValidateActor(ctx, nil); err != nil {
		return err
	}

	approved, err := s.storage.ApproveTenantRole(ctx, userID, tenantID, types.RoleTenantUser)
	if err != nil {
		s.logger.Errorf("failed to approve user %s in tenant %s: %v", userID, tenantID, err)
		return types.ErrInternal
	}

	if !approved {
		// No pending record: either the membership is already approved or it
		// does not exist yet. The latter gets a pre-approved entry.
		_, err := s.storage.GetTenantRole(ctx, userID, tenantID)
		if err == nil {
			return fmt.Errorf("%w: user %s is already approved in tenant %s", types.ErrConflict, userID, tenantID)
		}
		if !errors.Is(err, storage.ErrNotFound) {
			s.logger.Errorf("failed to get tenant role for user %s in tenant %s: %v", userID, tenantID, err)
			return types.ErrInternal
		}

		err = s.storage.CreateTenantRole(ctx, userID, tenantID, []types.Role{types.RoleTenantUser}, true)
		if err != nil {
			if errors.Is(err, storage.ErrDuplicateKey) {
				return fmt.Errorf("%w: user %s is already approved in tenant %s", types.ErrConflict, userID, tenantID)
			}
			s.logger.Errorf("failed to create approved membership for user %s in tenant %s: %v", userID, tenantID, err)
			return types.ErrInternal
		}
	}

	s.cache.Invalidate(tenantID, userID)

	return nil
}

func (s *Service) GetUnapprovedUsers(ctx context.Context, tenantID string) ([]*types.PendingMember, error) {
	ctx, span := s.tracer.Start(ctx, "membership.Service.GetUnapprovedUsers")
	defer span.End()

	// Global listing is SysAdmin only; tenant-filtered listing follows the
	// standard tenant access decision.
	var target *string
	if tenantID != "" {
		target = &tenantID
	}
	if err := s.resolver.ValidateActor(ctx, target); err != nil {
		return nil, err
	}

	members, err := s.storage.ListUnapprovedMembers(ctx, tenantID)
	if err != nil {
		s.logger.Errorf("failed to list unapproved members: %v", err)
		return nil, types.ErrInternal
	}

	return members, nil
}

// AssignBootstrapSysAdminRoles promotes the caller to SysAdmin while the
// system has none. Once any SysAdmin exists the caller must already be one.
func (s *Service) AssignBootstrapSysAdminRoles(ctx context.Context) error {
	ctx, span := s.tracer.Start(ctx, "membership.Service.AssignBootstrapSysAdminRoles")
	defer span.End()

	principal, ok := authentication.PrincipalFromContext(ctx)
	if !ok {
		return fmt.Errorf("%w: no authenticated user", types.ErrUnauthorized)
	}

	promoted, err := s.storage.PromoteFirstSysAdmin(ctx, principal.UserID)
	if err != nil {
		s.logger.Errorf("failed to promote bootstrap admin %s: %v", principal.UserID, err)
		return types.ErrInternal
	}

	if promoted {
		s.logger.Security().BootstrapAdmin(principal.UserID)
		return nil
	}

	user, err := s.storage.GetUserByID(ctx, principal.UserID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("user %s: %w", principal.UserID, types.ErrNotFound)
		}
		s.logger.Errorf("failed to get user %s: %v", principal.UserID, err)
		return types.ErrInternal
	}
	if user.IsSysAdmin {
		return nil
	}

	s.logger.Security().AuthzFailure(principal.UserID, "bootstrap_sysadmin")
	return fmt.Errorf("%w: a system admin already exists", types.ErrForbidden)
}

func (s *Service) ListTenants(ctx context.Context) ([]*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "membership.Service.ListTenants")
	defer span.End()

	if err := s.resolver.ValidateActor(ctx, nil); err != nil {
		return nil, err
	}

	tenants, err := s.storage.ListTenants(ctx)
	if err != nil {
		s.logger.Errorf("failed to list tenants: %v", err)
		return nil, types.ErrInternal
	}

	return tenants, nil
}

func (s *Service) GetTenant(ctx context.Context, tenantID string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "membership.Service.GetTenant")
	defer span.End()

	if tenantID == "" {
		return nil, fmt.Errorf("%w: tenant id is required", types.ErrBadRequest)
	}

	if err := s.resolver.ValidateActor(ctx, nil); err != nil {
		return nil, err
	}

	tenant, err := s.storage.GetTenantByID(ctx, tenantID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("tenant %s: %w", tenantID, types.ErrNotFound)
		}
		s.logger.Errorf("failed to get tenant %s: %v", tenantID, err)
		return nil, types.ErrInternal
	}

	return tenant, nil
}

func (s *Service) SetTenantStatus(ctx context.Context, tenantID string, enabled bool) error {
	ctx, span := s.tracer.Start(ctx, "membership.Service.SetTenantStatus")
	defer span.End()

	if tenantID == "" {
		return fmt.Errorf("%w: tenant id is required", types.ErrBadRequest)
	}

	if err := s.resolver.ValidateActor(ctx, nil); err != nil {
		return err
	}

	if err := s.storage.SetTenantStatus(ctx, tenantID, enabled); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("tenant %s: %w", tenantID, types.ErrNotFound)
		}
		s.logger.Errorf("failed to set status of tenant %s: %v", tenantID, err)
		return types.ErrInternal
	}

	return nil
}

// EnsureUser provisions a local account for a verified principal on first
// sight. The insert computes the first-user SysAdmin grant atomically, so two
// racing first logins elect exactly one admin.
func (s *Service) EnsureUser(ctx context.Context, principal authentication.Principal) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "membership.Service.EnsureUser")
	defer span.End()

	user, err := s.storage.GetUserByID(ctx, principal.UserID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		s.logger.Errorf("failed to get user %s: %v", principal.UserID, err)
		return nil, types.ErrInternal
	}

	created, err := s.storage.CreateUser(ctx, &types.User{
		ID:    principal.UserID,
		Email: principal.Email,
		Name:  principal.Name,
	})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			// Lost a provisioning race, the row exists now.
			user, err := s.storage.GetUserByID(ctx, principal.UserID)
			if err != nil {
				s.logger.Errorf("failed to get user %s after create race: %v", principal.UserID, err)
				return nil, types.ErrInternal
			}
			return user, nil
		}
		s.logger.Errorf("failed to create user %s: %v", principal.UserID, err)
		return nil, types.ErrInternal
	}

	if created.IsSysAdmin {
		s.logger.Security().BootstrapAdmin(created.ID)
	}

	return created, nil
}
