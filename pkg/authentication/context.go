// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import "context"

// Principal is the authenticated caller extracted from a verified token.
type Principal struct {
	UserID string
	Email  string
	Name   string
}

// Define private custom types to avoid collisions
type contextKey struct{}
type tenantContextKey struct{}

var principalContextKey = contextKey{}
var tenantIDContextKey = tenantContextKey{}

// WithPrincipal returns a new context carrying the authenticated principal.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalContextKey, p)
}

// PrincipalFromContext retrieves the authenticated principal from the context.
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalContextKey).(Principal)
	return p, ok
}

// GetUserID retrieves the authenticated user ID from the context.
// Returns an empty string and false if no principal is present.
func GetUserID(ctx context.Context) (string, bool) {
	p, ok := PrincipalFromContext(ctx)
	return p.UserID, ok
}

// WithTenantID returns a new context carrying the caller's acting tenant.
func WithTenantID(ctx context.Context, tenantID string) context.Context {
	return context.WithValue(ctx, tenantIDContextKey, tenantID)
}

// GetTenantID retrieves the acting tenant from the context.
// Returns an empty string and false if no tenant is bound.
func GetTenantID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(tenantIDContextKey).(string)
	return id, ok && id != ""
}
