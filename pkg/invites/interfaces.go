// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invites

import (
	"context"
	"time"

	"github.com/canonical/membership-service/internal/types"
)

type ServiceInterface interface {
	InviteUser(ctx context.Context, email, tenantID string, roles []string) (*types.Invitation, error)
	GetInviteByEmail(ctx context.Context) (*types.Invitation, error)
	AcceptInvitation(ctx context.Context, token string) error
}

type StorageInterface interface {
	GetUserByID(ctx context.Context, id string) (*types.User, error)
	GetUserByEmail(ctx context.Context, email string) (*types.User, error)
	GetTenantRole(ctx context.Context, userID, tenantID string) (*types.TenantRole, error)
	UpsertTenantRole(ctx context.Context, userID, tenantID string, roles []types.Role, approved bool) error

	CreateInvitation(ctx context.Context, invite *types.Invitation) (*types.Invitation, error)
	GetInvitationByToken(ctx context.Context, token string) (*types.Invitation, error)
	GetPendingInvitationByEmail(ctx context.Context, email string) (*types.Invitation, error)
	AcceptInvitation(ctx context.Context, token string, now time.Time) (*types.Invitation, error)
	ExpireInvitation(ctx context.Context, token string, now time.Time) (bool, error)
}

type AuthzInterface interface {
	ValidateTenantAccess(ctx context.Context, actingUserID string, actingRoles []types.Role, actingTenantID string, targetTenantID *string) error
}

type RoleCacheInterface interface {
	Get(tenantID, userID string) ([]types.Role, bool)
	Set(tenantID, userID string, roles []types.Role)
	Invalidate(tenantID, userID string)
}

// EmailServiceInterface delivers notifications best effort. A failed send
// never rolls back the invitation record.
type EmailServiceInterface interface {
	Send(ctx context.Context, to, subject, body string, isHTML bool) error
}

// TokenSourceInterface produces unguessable single-use invitation tokens.
// Injected so tests can pin token values.
type TokenSourceInterface interface {
	Generate() (string, error)
}
