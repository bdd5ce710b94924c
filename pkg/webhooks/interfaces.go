// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"

	"github.com/canonical/membership-service/internal/types"
	"github.com/canonical/membership-service/pkg/authentication"
)

type ServiceInterface interface {
	HandleRegistration(ctx context.Context, identityID, email, name string) (*types.User, error)
}

// RegistryInterface provisions local accounts for identities the provider
// reports. It is a subset of the membership service.
type RegistryInterface interface {
	EnsureUser(ctx context.Context, principal authentication.Principal) (*types.User, error)
}
