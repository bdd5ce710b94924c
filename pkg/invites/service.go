// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invites

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/canonical/membership-service/internal/authorization"
	"github.com/canonical/membership-service/internal/logging"
	"github.com/canonical/membership-service/internal/monitoring"
	"github.com/canonical/membership-service/internal/storage"
	"github.com/canonical/membership-service/internal/tracing"
	"github.com/canonical/membership-service/internal/types"
	"github.com/canonical/membership-service/pkg/authentication"
)

// DefaultInvitationLifetime is applied when the config leaves the
// lifetime unset.
const DefaultInvitationLifetime = 7 * 24 * time.Hour

type Service struct {
	storage  StorageInterface
	cache    RoleCacheInterface
	resolver *authorization.RoleResolver
	email    EmailServiceInterface
	tokens   TokenSourceInterface
	lifetime time.Duration

	validate *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	authz AuthzInterface,
	cache RoleCacheInterface,
	email EmailServiceInterface,
	tokens TokenSourceInterface,
	lifetime time.Duration,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	if lifetime <= 0 {
		lifetime = DefaultInvitationLifetime
	}

	return &Service{
		storage:  storage,
		cache:    cache,
		resolver: authorization.NewRoleResolver(storage, cache, authz, logger),
		email:    email,
		tokens:   tokens,
		lifetime: lifetime,
		validate: validator.New(),
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

// InviteUser records a pending invitation for an email address that has no
// account yet and notifies the address. The notification is best effort, a
// failed send never rolls back the stored invitation.
func (s *Service) InviteUser(ctx context.Context, email, tenantID string, roles []string) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "invites.Service.InviteUser")
	defer span.End()

	if err := s.validate.Var(email, "required,email"); err != nil {
		return nil, fmt.Errorf("%w: a valid email address is required", types.ErrBadRequest)
	}
	if tenantID == "" {
		return nil, fmt.Errorf("%w: tenant id is required", types.ErrBadRequest)
	}

	parsed, err := types.ParseRoles(roles)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrBadRequest, err)
	}
	if len(parsed) == 0 {
		parsed = []types.Role{types.RoleTenantUser}
	}

	if err := s.resolver.ValidateActor(ctx, &tenantID); err != nil {
		return nil, err
	}

	if _, err := s.storage.GetUserByEmail(ctx, email); err == nil {
		return nil, fmt.Errorf("%w: a user with email %s already exists", types.ErrConflict, email)
	} else if !errors.Is(err, storage.ErrNotFound) {
		s.logger.Errorf("failed to look up user by email %s: %v", email, err)
		return nil, types.ErrInternal
	}

	token, err := s.tokens.Generate()
	if err != nil {
		s.logger.Errorf("failed to generate invitation token: %v", err)
		return nil, types.ErrInternal
	}

	invite, err := s.storage.CreateInvitation(ctx, &types.Invitation{
		Email:     email,
		TenantID:  tenantID,
		Roles:     parsed,
		Token:     token,
		Status:    types.InvitationPending,
		ExpiresAt: time.Now().UTC().Add(s.lifetime),
	})
	if err != nil {
		if errors.Is(err, storage.ErrForeignKeyViolation) {
			return nil, fmt.Errorf("tenant %s: %w", tenantID, types.ErrNotFound)
		}
		s.logger.Errorf("failed to create invitation for %s in tenant %s: %v", email, tenantID, err)
		return nil, types.ErrInternal
	}

	s.sendInvitationMail(ctx, invite)

	return invite, nil
}

// GetInviteByEmail returns the caller's pending invitation, keyed by the
// email claim on the token. An invitation past its deadline is expired on
// read and reported as not found.
func (s *Service) GetInviteByEmail(ctx context.Context) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "invites.Service.GetInviteByEmail")
	defer span.End()

	principal, ok := authentication.PrincipalFromContext(ctx)
	if !ok {
		return nil, fmt.Errorf("%w: no authenticated user", types.ErrUnauthorized)
	}
	if principal.Email == "" {
		return nil, fmt.Errorf("%w: token carries no email claim", types.ErrBadRequest)
	}

	invite, err := s.storage.GetPendingInvitationByEmail(ctx, principal.Email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("no pending invitation for %s: %w", principal.Email, types.ErrNotFound)
		}
		s.logger.Errorf("failed to get invitation for %s: %v", principal.Email, err)
		return nil, types.ErrInternal
	}

	now := time.Now().UTC()
	if invite.IsExpired(now) {
		if err := s.expireInvitation(ctx, invite.Token, now); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("no pending invitation for %s: %w", principal.Email, types.ErrNotFound)
	}

	return invite, nil
}

// AcceptInvitation consumes a pending invitation exactly once and grants the
// invited user an approved membership with the invitation's roles. The
// invited user must already have an account.
func (s *Service) AcceptInvitation(ctx context.Context, token string) error {
	ctx, span := s.tracer.Start(ctx, "invites.Service.AcceptInvitation")
	defer span.End()

	if token == "" {
		return fmt.Errorf("%w: invitation token is required", types.ErrBadRequest)
	}

	invite, err := s.storage.GetInvitationByToken(ctx, token)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("invitation: %w", types.ErrNotFound)
		}
		s.logger.Errorf("failed to get invitation by token: %v", err)
		return types.ErrInternal
	}

	// A consumed or expired invitation behaves like a missing one so the
	// token leaks nothing about its history.
	if invite.Status != types.InvitationPending {
		return fmt.Errorf("invitation: %w", types.ErrNotFound)
	}

	now := time.Now().UTC()
	if invite.IsExpired(now) {
		if err := s.expireInvitation(ctx, token, now); err != nil {
			return err
		}
		return fmt.Errorf("invitation: %w", types.ErrNotFound)
	}

	user, err := s.storage.GetUserByEmail(ctx, invite.Email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%w: no account exists for the invited email", types.ErrNotFound)
		}
		s.logger.Errorf("failed to look up invited user %s: %v", invite.Email, err)
		return types.ErrInternal
	}

	// The conditional update is the single-use guard. A concurrent accept
	// of the same token loses here.
	accepted, err := s.storage.AcceptInvitation(ctx, token, now)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("invitation: %w", types.ErrNotFound)
		}
		s.logger.Errorf("failed to accept invitation: %v", err)
		return types.ErrInternal
	}

	if err := s.storage.UpsertTenantRole(ctx, user.ID, accepted.TenantID, accepted.Roles, true); err != nil {
		s.logger.Errorf("failed to grant invited roles to user %s in tenant %s: %v", user.ID, accepted.TenantID, err)
		return types.ErrInternal
	}

	s.cache.Invalidate(accepted.TenantID, user.ID)

	return nil
}

func (s *Service) sendInvitationMail(ctx context.Context, invite *types.Invitation) {
	subject := fmt.Sprintf("You have been invited to join %s", invite.TenantID)
	body := fmt.Sprintf(
		"You have been invited to join the %s tenant with roles %v. Use the token %s to accept before %s.",
		invite.TenantID, types.RoleStrings(invite.Roles), invite.Token, invite.ExpiresAt.Format(time.RFC3339),
	)

	if err := s.email.Send(ctx, invite.Email, subject, body, false); err != nil {
		s.logger.Warnf("failed to send invitation mail to %s: %v", invite.Email, err)
	}
}

func (s *Service) expireInvitation(ctx context.Context, token string, now time.Time) error {
	if _, err := s.storage.ExpireInvitation(ctx, token, now); err != nil {
		s.logger.Errorf("failed to expire invitation: %v", err)
		return types.ErrInternal
	}
	return nil
}
