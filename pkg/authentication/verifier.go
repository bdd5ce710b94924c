// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"

	"github.com/canonical/membership-service/internal/logging"
	"github.com/canonical/membership-service/internal/monitoring"
	"github.com/canonical/membership-service/internal/tracing"
)

// Claims that may carry the caller identity when `sub` is absent, tried in
// order after `preferred_username`.
var fallbackSubjectClaims = []string{"user_id", "uid", "id", "email", "username"}

type JWTVerifier struct {
	verifier *oidc.IDTokenVerifier

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (v *JWTVerifier) VerifyToken(ctx context.Context, rawToken string) (*Principal, error) {
	ctx, span := v.tracer.Start(ctx, "authentication.JWTVerifier.VerifyToken")
	defer span.End()

	token, err := v.verifier.Verify(ctx, rawToken)
	if err != nil {
		return nil, err
	}

	var claims map[string]any
	if err := token.Claims(&claims); err != nil {
		v.logger.Debugf("Failed to extract claims: %v", err)
		return nil, err
	}

	principal, err := resolvePrincipal(claims)
	if err != nil {
		v.logger.Security().AuthnFailure(err.Error())
		return nil, err
	}

	return principal, nil
}

// resolvePrincipal maps token claims to a caller identity. The subject is
// taken from `sub`, then `preferred_username`, then the first non-empty of
// the fallback claims.
func resolvePrincipal(claims map[string]any) (*Principal, error) {
	subject := stringClaim(claims, "sub")
	if subject == "" {
		subject = stringClaim(claims, "preferred_username")
	}
	if subject == "" {
		for _, name := range fallbackSubjectClaims {
			if subject = stringClaim(claims, name); subject != "" {
				break
			}
		}
	}

	if subject == "" {
		return nil, fmt.Errorf("token carries no subject claim")
	}

	return &Principal{
		UserID: subject,
		Email:  stringClaim(claims, "email"),
		Name:   stringClaim(claims, "name"),
	}, nil
}

func stringClaim(claims map[string]any, name string) string {
	s, _ := claims[name].(string)
	return s
}

func NewJWTVerifier(
	provider ProviderInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *JWTVerifier {
	v := &JWTVerifier{
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}

	config := &oidc.Config{
		SkipClientIDCheck: true,
		SkipIssuerCheck:   false,
	}

	v.verifier = provider.Verifier(config)

	return v
}

func NewJWTVerifierDirect(
	verifier *oidc.IDTokenVerifier,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *JWTVerifier {
	return &JWTVerifier{
		verifier: verifier,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}
