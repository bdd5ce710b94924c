// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"
	"fmt"

	"github.com/canonical/membership-service/internal/logging"
	"github.com/canonical/membership-service/internal/monitoring"
	"github.com/canonical/membership-service/internal/tracing"
	"github.com/canonical/membership-service/internal/types"
	"github.com/canonical/membership-service/pkg/authentication"
)

type Service struct {
	registry RegistryInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	registry RegistryInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		registry: registry,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

// HandleRegistration eagerly provisions a local account for a freshly
// registered identity, so the first authenticated request does not pay the
// provisioning write and bootstrap promotion happens at registration time.
func (s *Service) HandleRegistration(ctx context.Context, identityID, email, name string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "webhooks.Service.HandleRegistration")
	defer span.End()

	if identityID == "" || email == "" {
		return nil, fmt.Errorf("%w: identity id and email are required", types.ErrBadRequest)
	}

	user, err := s.registry.EnsureUser(ctx, authentication.Principal{
		UserID: identityID,
		Email:  email,
		Name:   name,
	})
	if err != nil {
		s.logger.Errorf("failed to provision user %s from registration webhook: %v", identityID, err)
		return nil, err
	}

	s.logger.Infof("provisioned user %s from registration webhook", user.ID)
	return user, nil
}
