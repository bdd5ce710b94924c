// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"

	"github.com/coreos/go-oidc/v3/oidc"

	"github.com/canonical/membership-service/internal/types"
)

type ProviderInterface interface {
	// Verifier returns the token verifier associated with the specified OIDC issuer
	Verifier(*oidc.Config) *oidc.IDTokenVerifier
}

type TokenVerifierInterface interface {
	// VerifyToken verifies a raw JWT string and extracts the caller identity
	// from its claims. Returns an error if the token is invalid or carries no
	// usable subject.
	VerifyToken(ctx context.Context, rawToken string) (*Principal, error)
}

// UserRegistryInterface provisions a local account for a verified principal
// on first sight and reports its lockout state on every request.
type UserRegistryInterface interface {
	EnsureUser(ctx context.Context, principal Principal) (*types.User, error)
}
