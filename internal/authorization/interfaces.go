// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"

	"github.com/canonical/membership-service/internal/types"
)

type AuthorizerInterface interface {
	ValidateTenantAccess(ctx context.Context, actingUserID string, actingRoles []types.Role, actingTenantID string, targetTenantID *string) error
	HasResourcePermission(ctx context.Context, agent *types.Agent, userID string, userRoles []types.Role, level types.PermissionLevel) bool
}
