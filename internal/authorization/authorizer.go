// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"

	"github.com/canonical/membership-service/internal/logging"
	"github.com/canonical/membership-service/internal/monitoring"
	"github.com/canonical/membership-service/internal/tracing"
	"github.com/canonical/membership-service/internal/types"
)

// Authorizer wraps the pure decision functions with tracing and security
// audit logging. Services depend on this facade rather than calling the
// functions directly so every denial is observable in one place.
type Authorizer struct {
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *Authorizer) ValidateTenantAccess(ctx context.Context, actingUserID string, actingRoles []types.Role, actingTenantID string, targetTenantID *string) error {
	_, span := a.tracer.Start(ctx, "authorization.Authorizer.ValidateTenantAccess")
	defer span.End()

	if err := ValidateTenantAccess(actingUserID, actingRoles, actingTenantID, targetTenantID); err != nil {
		target := "system"
		if targetTenantID != nil {
			target = *targetTenantID
		}
		a.logger.Security().AuthzFailure(actingUserID, "tenant_access:"+target)
		return err
	}

	return nil
}

func (a *Authorizer) HasResourcePermission(ctx context.Context, agent *types.Agent, userID string, userRoles []types.Role, level types.PermissionLevel) bool {
	_, span := a.tracer.Start(ctx, "authorization.Authorizer.HasResourcePermission")
	defer span.End()

	ok := HasResourcePermission(agent, userID, userRoles, level)
	if !ok {
		a.logger.Security().AuthzFailure(userID, "agent_"+level.String()+":"+agent.ID)
	}

	return ok
}

func NewAuthorizer(tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Authorizer {
	authorizer := new(Authorizer)

	authorizer.tracer = tracer
	authorizer.monitor = monitor
	authorizer.logger = logger

	return authorizer
}
