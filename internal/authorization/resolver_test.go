// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/membership-service/internal/logging"
	"github.com/canonical/membership-service/internal/monitoring"
	"github.com/canonical/membership-service/internal/storage"
	"github.com/canonical/membership-service/internal/tracing"
	"github.com/canonical/membership-service/internal/types"
	"github.com/canonical/membership-service/pkg/authentication"
)

//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_interfaces.go -source=./resolver.go

func callerContext(userID, tenantID string) context.Context {
	ctx := authentication.WithPrincipal(context.Background(), authentication.Principal{UserID: userID})
	if tenantID != "" {
		ctx = authentication.WithTenantID(ctx, tenantID)
	}
	return ctx
}

func newTestResolver(reader *MockRoleReaderInterface, cache *MockRoleCacheInterface) *RoleResolver {
	tracer := tracing.NewTracer(tracing.NewNoopConfig())
	monitor := monitoring.NewNoopMonitor()
	logger := logging.NewNoopLogger()

	return NewRoleResolver(reader, cache, NewAuthorizer(tracer, monitor, logger), logger)
}

func TestResolveRoles(t *testing.T) {
	tests := []struct {
		name          string
		tenantID      string
		setupMocks    func(*MockRoleReaderInterface, *MockRoleCacheInterface)
		expectedRoles []types.Role
		expectedErr   error
	}{
		{
			name:     "unknown user",
			tenantID: "acme",
			setupMocks: func(r *MockRoleReaderInterface, c *MockRoleCacheInterface) {
				r.EXPECT().GetUserByID(gomock.Any(), "carol").Return(nil, storage.ErrNotFound)
			},
			expectedErr: types.ErrNotFound,
		},
		{
			name:     "user lookup failure",
			tenantID: "acme",
			setupMocks: func(r *MockRoleReaderInterface, c *MockRoleCacheInterface) {
				r.EXPECT().GetUserByID(gomock.Any(), "carol").Return(nil, fmt.Errorf("connection refused"))
			},
			expectedErr: types.ErrInternal,
		},
		{
			name:     "cache hit skips the role lookup",
			tenantID: "acme",
			setupMocks: func(r *MockRoleReaderInterface, c *MockRoleCacheInterface) {
				r.EXPECT().GetUserByID(gomock.Any(), "carol").Return(&types.User{ID: "carol"}, nil)
				c.EXPECT().Get("acme", "carol").Return([]types.Role{types.RoleTenantUser}, true)
			},
			expectedRoles: []types.Role{types.RoleTenantUser},
		},
		{
			name:     "cache miss reads through and populates",
			tenantID: "acme",
			setupMocks: func(r *MockRoleReaderInterface, c *MockRoleCacheInterface) {
				r.EXPECT().GetUserByID(gomock.Any(), "carol").Return(&types.User{ID: "carol"}, nil)
				c.EXPECT().Get("acme", "carol").Return(nil, false)
				r.EXPECT().GetTenantRole(gomock.Any(), "carol", "acme").Return(&types.TenantRole{
					UserID: "carol", TenantID: "acme", Roles: []types.Role{types.RoleTenantAdmin}, IsApproved: true,
				}, nil)
				c.EXPECT().Set("acme", "carol", []types.Role{types.RoleTenantAdmin})
			},
			expectedRoles: []types.Role{types.RoleTenantAdmin},
		},
		{
			name:     "pending membership grants nothing",
			tenantID: "acme",
			setupMocks: func(r *MockRoleReaderInterface, c *MockRoleCacheInterface) {
				r.EXPECT().GetUserByID(gomock.Any(), "carol").Return(&types.User{ID: "carol"}, nil)
				c.EXPECT().Get("acme", "carol").Return(nil, false)
				r.EXPECT().GetTenantRole(gomock.Any(), "carol", "acme").Return(&types.TenantRole{
					UserID: "carol", TenantID: "acme", Roles: []types.Role{types.RoleTenantUser}, IsApproved: false,
				}, nil)
				c.EXPECT().Set("acme", "carol", gomock.Nil())
			},
			expectedRoles: nil,
		},
		{
			name:     "sysadmin is appended from the user record, never cached",
			tenantID: "acme",
			setupMocks: func(r *MockRoleReaderInterface, c *MockRoleCacheInterface) {
				r.EXPECT().GetUserByID(gomock.Any(), "carol").Return(&types.User{ID: "carol", IsSysAdmin: true}, nil)
				c.EXPECT().Get("acme", "carol").Return(nil, false)
				r.EXPECT().GetTenantRole(gomock.Any(), "carol", "acme").Return(nil, storage.ErrNotFound)
				c.EXPECT().Set("acme", "carol", gomock.Nil())
			},
			expectedRoles: []types.Role{types.RoleSysAdmin},
		},
		{
			name: "empty tenant skips the cache entirely",
			setupMocks: func(r *MockRoleReaderInterface, c *MockRoleCacheInterface) {
				r.EXPECT().GetUserByID(gomock.Any(), "carol").Return(&types.User{ID: "carol", IsSysAdmin: true}, nil)
			},
			expectedRoles: []types.Role{types.RoleSysAdmin},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockReader := NewMockRoleReaderInterface(ctrl)
			mockCache := NewMockRoleCacheInterface(ctrl)
			tt.setupMocks(mockReader, mockCache)

			roles, err := newTestResolver(mockReader, mockCache).ResolveRoles(context.Background(), "carol", tt.tenantID)

			if tt.expectedErr != nil {
				if !errors.Is(err, tt.expectedErr) {
					t.Errorf("expected %v, got %v", tt.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !slices.Equal(roles, tt.expectedRoles) {
				t.Errorf("expected roles %v, got %v", tt.expectedRoles, roles)
			}
		})
	}
}

func TestValidateActor(t *testing.T) {
	tests := []struct {
		name        string
		ctx         context.Context
		target      *string
		setupMocks  func(*MockRoleReaderInterface, *MockRoleCacheInterface)
		expectedErr error
	}{
		{
			name:        "unauthenticated caller",
			ctx:         context.Background(),
			target:      strPtr("acme"),
			setupMocks:  func(r *MockRoleReaderInterface, c *MockRoleCacheInterface) {},
			expectedErr: types.ErrUnauthorized,
		},
		{
			name:   "sysadmin passes a tenant-agnostic check",
			ctx:    callerContext("root", ""),
			target: nil,
			setupMocks: func(r *MockRoleReaderInterface, c *MockRoleCacheInterface) {
				r.EXPECT().GetUserByID(gomock.Any(), "root").Return(&types.User{ID: "root", IsSysAdmin: true}, nil)
			},
		},
		{
			name:   "tenant admin passes for the own tenant",
			ctx:    callerContext("bob", "acme"),
			target: strPtr("acme"),
			setupMocks: func(r *MockRoleReaderInterface, c *MockRoleCacheInterface) {
				r.EXPECT().GetUserByID(gomock.Any(), "bob").Return(&types.User{ID: "bob"}, nil)
				c.EXPECT().Get("acme", "bob").Return([]types.Role{types.RoleTenantAdmin}, true)
			},
		},
		{
			name:   "tenant admin is forbidden for another tenant",
			ctx:    callerContext("bob", "acme"),
			target: strPtr("globex"),
			setupMocks: func(r *MockRoleReaderInterface, c *MockRoleCacheInterface) {
				r.EXPECT().GetUserByID(gomock.Any(), "bob").Return(&types.User{ID: "bob"}, nil)
				c.EXPECT().Get("acme", "bob").Return([]types.Role{types.RoleTenantAdmin}, true)
			},
			expectedErr: types.ErrForbidden,
		},
		{
			name:   "tenant user is forbidden for a tenant-agnostic check",
			ctx:    callerContext("carol", "acme"),
			target: nil,
			setupMocks: func(r *MockRoleReaderInterface, c *MockRoleCacheInterface) {
				r.EXPECT().GetUserByID(gomock.Any(), "carol").Return(&types.User{ID: "carol"}, nil)
				c.EXPECT().Get("acme", "carol").Return([]types.Role{types.RoleTenantUser}, true)
			},
			expectedErr: types.ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockReader := NewMockRoleReaderInterface(ctrl)
			mockCache := NewMockRoleCacheInterface(ctrl)
			tt.setupMocks(mockReader, mockCache)

			err := newTestResolver(mockReader, mockCache).ValidateActor(tt.ctx, tt.target)

			if tt.expectedErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.expectedErr) {
				t.Errorf("expected %v, got %v", tt.expectedErr, err)
			}
		})
	}
}
