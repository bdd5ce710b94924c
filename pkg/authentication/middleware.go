// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/canonical/membership-service/internal/logging"
	"github.com/canonical/membership-service/internal/monitoring"
	"github.com/canonical/membership-service/internal/tracing"
)

type Middleware struct {
	verifier TokenVerifierInterface
	registry UserRegistryInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (m *Middleware) Authenticate() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "authentication.Middleware.Authenticate")
			defer span.End()

			token, found := m.getBearerToken(r.Header)
			if !found {
				m.errorResponse(w, http.StatusUnauthorized, "missing authorization header")
				return
			}

			principal, err := m.verifier.VerifyToken(ctx, token)
			if err != nil {
				m.logger.Debugf("JWT verification failed: %v", err)
				m.errorResponse(w, http.StatusUnauthorized, "invalid token")
				return
			}

			// First sight of a subject provisions its local account.
			user, err := m.registry.EnsureUser(ctx, *principal)
			if err != nil {
				m.logger.Errorf("failed to provision user %s: %v", principal.UserID, err)
				m.errorResponse(w, http.StatusInternalServerError, "internal server error")
				return
			}

			if user.IsLockedOut {
				m.logger.Security().AuthzFailure(principal.UserID, "account_lockout")
				m.errorResponse(w, http.StatusForbidden, "account is locked")
				return
			}

			ctx = WithPrincipal(ctx, *principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// TenantBinding binds the caller's acting tenant from the X-Tenant-ID
// header when present. Runs on authenticated and unauthenticated chains
// alike so the noop verifier path behaves the same.
func TenantBinding() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if tenantID := r.Header.Get("X-Tenant-ID"); tenantID != "" {
				r = r.WithContext(WithTenantID(r.Context(), tenantID))
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (m *Middleware) getBearerToken(headers http.Header) (string, bool) {
	bearer := headers.Get("Authorization")
	if bearer == "" {
		return "", false
	}

	// Only support "Bearer <token>" format (RFC 6750)
	if !strings.HasPrefix(bearer, "Bearer ") {
		return "", false
	}

	return strings.TrimPrefix(bearer, "Bearer "), true
}

func (m *Middleware) errorResponse(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  status,
		"message": message,
	}); err != nil {
		m.logger.Errorf("failed to encode error response: %v", err)
	}
}

func NewMiddleware(verifier TokenVerifierInterface, registry UserRegistryInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		verifier: verifier,
		registry: registry,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}
