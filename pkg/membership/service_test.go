// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package membership

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/membership-service/internal/authorization"
	"github.com/canonical/membership-service/internal/logging"
	"github.com/canonical/membership-service/internal/monitoring"
	"github.com/canonical/membership-service/internal/storage"
	"github.com/canonical/membership-service/internal/tracing"
	"github.com/canonical/membership-service/internal/types"
	"github.com/canonical/membership-service/pkg/authentication"
)

//go:generate mockgen -build_flags=--mod=mod -package membership -destination ./mock_interfaces.go -source=./interfaces.go

func actorContext(userID, tenantID string) context.Context {
	ctx := authentication.WithPrincipal(context.Background(), authentication.Principal{UserID: userID})
	if tenantID != "" {
		ctx = authentication.WithTenantID(ctx, tenantID)
	}
	return ctx
}

func newTestService(mockStorage *MockStorageInterface, mockCache *MockRoleCacheInterface) *Service {
	tracer := tracing.NewTracer(tracing.NewNoopConfig())
	monitor := monitoring.NewNoopMonitor()
	logger := logging.NewNoopLogger()

	return NewService(
		mockStorage,
		authorization.NewAuthorizer(tracer, monitor, logger),
		mockCache,
		tracer,
		monitor,
		logger,
	)
}

func TestRequestToJoinTenant(t *testing.T) {
	enabledTenant := &types.Tenant{ID: "acme", Name: "Acme", Enabled: true}

	tests := []struct {
		name        string
		ctx         context.Context
		tenantID    string
		setupMocks  func(*MockStorageInterface, *MockRoleCacheInterface)
		expectedErr error
	}{
		{
			name:        "unauthenticated caller",
			ctx:         context.Background(),
			tenantID:    "acme",
			setupMocks:  func(s *MockStorageInterface, c *MockRoleCacheInterface) {},
			expectedErr: types.ErrUnauthorized,
		},
		{
			name:     "unknown tenant",
			ctx:      actorContext("dave", ""),
			tenantID: "ghost",
			setupMocks: func(s *MockStorageInterface, c *MockRoleCacheInterface) {
				s.EXPECT().GetTenantByID(gomock.Any(), "ghost").Return(nil, storage.ErrNotFound)
			},
			expectedErr: types.ErrNotFound,
		},
		{
			name:     "disabled tenant gates joining",
			ctx:      actorContext("dave", ""),
			tenantID: "acme",
			setupMocks: func(s *MockStorageInterface, c *MockRoleCacheInterface) {
				s.EXPECT().GetTenantByID(gomock.Any(), "acme").Return(&types.Tenant{ID: "acme", Enabled: false}, nil)
			},
			expectedErr: types.ErrForbidden,
		},
		{
			name:     "creates pending membership with default role",
			ctx:      actorContext("dave", ""),
			tenantID: "acme",
			setupMocks: func(s *MockStorageInterface, c *MockRoleCacheInterface) {
				s.EXPECT().GetTenantByID(gomock.Any(), "acme").Return(enabledTenant, nil)
				s.EXPECT().CreateTenantRole(gomock.Any(), "dave", "acme", []types.Role{types.RoleTenantUser}, false).Return(nil)
				c.EXPECT().Invalidate("acme", "dave")
			},
		},
		{
			name:     "second request conflicts",
			ctx:      actorContext("dave", ""),
			tenantID: "acme",
			setupMocks: func(s *MockStorageInterface, c *MockRoleCacheInterface) {
				s.EXPECT().GetTenantByID(gomock.Any(), "acme").Return(enabledTenant, nil)
				s.EXPECT().CreateTenantRole(gomock.Any(), "dave", "acme", gomock.Any(), false).Return(storage.ErrDuplicateKey)
			},
			expectedErr: types.ErrConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockCache := NewMockRoleCacheInterface(ctrl)
			tt.setupMocks(mockStorage, mockCache)

			err := newTestService(mockStorage, mockCache).RequestToJoinTenant(tt.ctx, tt.tenantID)

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

func TestCreateTenant(t *testing.T) {
	tests := []struct {
		name        string
		tenantID    string
		tenantName  string
		setupMocks  func(*MockStorageInterface, *MockRoleCacheInterface)
		expectedErr error
	}{
		{
			name:        "rejects non-slug tenant id",
			tenantID:    "Not A Slug",
			tenantName:  "Acme",
			setupMocks:  func(s *MockStorageInterface, c *MockRoleCacheInterface) {},
			expectedErr: types.ErrBadRequest,
		},
		{
			name:        "rejects empty name",
			tenantID:    "acme",
			tenantName:  "",
			setupMocks:  func(s *MockStorageInterface, c *MockRoleCacheInterface) {},
			expectedErr: types.ErrBadRequest,
		},
		{
			name:       "creator becomes first tenant admin",
			tenantID:   "acme",
			tenantName: "Acme",
			setupMocks: func(s *MockStorageInterface, c *MockRoleCacheInterface) {
				s.EXPECT().GetUserByID(gomock.Any(), "alice").Return(&types.User{ID: "alice"}, nil)
				s.EXPECT().CreateTenant(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, t *types.Tenant) (*types.Tenant, error) {
						return t, nil
					})
				s.EXPECT().UpsertTenantRole(gomock.Any(), "alice", "acme", []types.Role{types.RoleTenantAdmin}, true).Return(nil)
				c.EXPECT().Invalidate("acme", "alice")
			},
		},
		{
			name:       "lazily provisions the creator",
			tenantID:   "acme",
			tenantName: "Acme",
			setupMocks: func(s *MockStorageInterface, c *MockRoleCacheInterface) {
				s.EXPECT().GetUserByID(gomock.Any(), "alice").Return(nil, storage.ErrNotFound)
				s.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, u *types.User) (*types.User, error) {
						return u, nil
					})
				s.EXPECT().CreateTenant(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, t *types.Tenant) (*types.Tenant, error) {
						return t, nil
					})
				s.EXPECT().UpsertTenantRole(gomock.Any(), "alice", "acme", []types.Role{types.RoleTenantAdmin}, true).Return(nil)
				c.EXPECT().Invalidate("acme", "alice")
			},
		},
		{
			name:       "tenant id collision conflicts",
			tenantID:   "acme",
			tenantName: "Acme",
			setupMocks: func(s *MockStorageInterface, c *MockRoleCacheInterface) {
				s.EXPECT().GetUserByID(gomock.Any(), "alice").Return(&types.User{ID: "alice"}, nil)
				s.EXPECT().CreateTenant(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey)
			},
			expectedErr: types.ErrConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockCache := NewMockRoleCacheInterface(ctrl)
			tt.setupMocks(mockStorage, mockCache)

			tenant, err := newTestService(mockStorage, mockCache).CreateTenant(actorContext("alice", ""), tt.tenantID, tt.tenantName, "")

			if tt.expectedErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if !tenant.Enabled {
					t.Error("expected new tenant to be enabled")
				}
				return
			}
			if !errors.Is(err, tt.expectedErr) {
				t.Errorf("expected %v, got %v", tt.expectedErr, err)
			}
		})
	}
}

func TestApproveUser(t *testing.T) {
	sysadmin := func(s *MockStorageInterface) {
		s.EXPECT().GetUserByID(gomock.Any(), "root").Return(&types.User{ID: "root", IsSysAdmin: true}, nil)
	}

	tests := []struct {
		name        string
		ctx         context.Context
		setupMocks  func(*MockStorageInterface, *MockRoleCacheInterface)
		expectedErr error
	}{
		{
			name: "tenant admin may not approve own tenant",
			ctx:  actorContext("bob", "acme"),
			setupMocks: func(s *MockStorageInterface, c *MockRoleCacheInterface) {
				s.EXPECT().GetUserByID(gomock.Any(), "bob").Return(&types.User{ID: "bob"}, nil)
				c.EXPECT().Get("acme", "bob").Return([]types.Role{types.RoleTenantAdmin}, true)
			},
			expectedErr: types.ErrForbidden,
		},
		{
			name: "approves pending membership",
			ctx:  actorContext("root", ""),
			setupMocks: func(s *MockStorageInterface, c *MockRoleCacheInterface) {
				sysadmin(s)
				s.EXPECT().ApproveTenantRole(gomock.Any(), "dave", "acme", types.RoleTenantUser).Return(true, nil)
				c.EXPECT().Invalidate("acme", "dave")
			},
		},
		{
			name: "already approved conflicts",
			ctx:  actorContext("root", ""),
			setupMocks: func(s *MockStorageInterface, c *MockRoleCacheInterface) {
				sysadmin(s)
				s.EXPECT().ApproveTenantRole(gomock.Any(), "dave", "acme", types.RoleTenantUser).Return(false, nil)
				s.EXPECT().GetTenantRole(gomock.Any(), "dave", "acme").Return(&types.TenantRole{
					UserID: "dave", TenantID: "acme", Roles: []types.Role{types.RoleTenantUser}, IsApproved: true,
				}, nil)
			},
			expectedErr: types.ErrConflict,
		},
		{
			name: "missing membership gets a pre-approved entry",
			ctx:  actorContext("root", ""),
			setupMocks: func(s *MockStorageInterface, c *MockRoleCacheInterface) {
				sysadmin(s)
				s.EXPECT().ApproveTenantRole(gomock.Any(), "dave", "acme", types.RoleTenantUser).Return(false, nil)
				s.EXPECT().GetTenantRole(gomock.Any(), "dave", "acme").Return(nil, storage.ErrNotFound)
				s.EXPECT().CreateTenantRole(gomock.Any(), "dave", "acme", []types.Role{types.RoleTenantUser}, true).Return(nil)
				c.EXPECT().Invalidate("acme", "dave")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockCache := NewMockRoleCacheInterface(ctrl)
			tt.setupMocks(mockStorage, mockCache)

			err := newTestService(mockStorage, mockCache).ApproveUser(tt.ctx, "dave", "acme")

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

func TestAssignBootstrapSysAdminRoles(t *testing.T) {
	tests := []struct {
		name        string
		setupMocks  func(*MockStorageInterface)
		expectedErr error
	}{
		{
			name: "first caller self-promotes",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().PromoteFirstSysAdmin(gomock.Any(), "alice").Return(true, nil)
			},
		},
		{
			name: "existing sysadmin is a no-op",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().PromoteFirstSysAdmin(gomock.Any(), "alice").Return(false, nil)
				s.EXPECT().GetUserByID(gomock.Any(), "alice").Return(&types.User{ID: "alice", IsSysAdmin: true}, nil)
			},
		},
		{
			name: "forbidden once an admin exists",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().PromoteFirstSysAdmin(gomock.Any(), "alice").Return(false, nil)
				s.EXPECT().GetUserByID(gomock.Any(), "alice").Return(&types.User{ID: "alice"}, nil)
			},
			expectedErr: types.ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockCache := NewMockRoleCacheInterface(ctrl)
			tt.setupMocks(mockStorage)

			err := newTestService(mockStorage, mockCache).AssignBootstrapSysAdminRoles(actorContext("alice", ""))

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

func TestGetUnapprovedUsers(t *testing.T) {
	tests := []struct {
		name        string
		ctx         context.Context
		tenantID    string
		setupMocks  func(*MockStorageInterface, *MockRoleCacheInterface)
		expectedErr error
	}{
		{
			name:     "global listing requires sysadmin",
			ctx:      actorContext("bob", "acme"),
			tenantID: "",
			setupMocks: func(s *MockStorageInterface, c *MockRoleCacheInterface) {
				s.EXPECT().GetUserByID(gomock.Any(), "bob").Return(&types.User{ID: "bob"}, nil)
				c.EXPECT().Get("acme", "bob").Return([]types.Role{types.RoleTenantAdmin}, true)
			},
			expectedErr: types.ErrForbidden,
		},
		{
			name:     "tenant admin lists own tenant",
			ctx:      actorContext("bob", "acme"),
			tenantID: "acme",
			setupMocks: func(s *MockStorageInterface, c *MockRoleCacheInterface) {
				s.EXPECT().GetUserByID(gomock.Any(), "bob").Return(&types.User{ID: "bob"}, nil)
				c.EXPECT().Get("acme", "bob").Return([]types.Role{types.RoleTenantAdmin}, true)
				s.EXPECT().ListUnapprovedMembers(gomock.Any(), "acme").Return([]*types.PendingMember{
					{UserID: "dave", TenantID: "acme", Roles: []types.Role{types.RoleTenantUser}},
				}, nil)
			},
		},
		{
			name:     "zero-membership users surface with empty tenant",
			ctx:      actorContext("root", ""),
			tenantID: "",
			setupMocks: func(s *MockStorageInterface, c *MockRoleCacheInterface) {
				s.EXPECT().GetUserByID(gomock.Any(), "root").Return(&types.User{ID: "root", IsSysAdmin: true}, nil)
				s.EXPECT().ListUnapprovedMembers(gomock.Any(), "").Return([]*types.PendingMember{
					{UserID: "erin", TenantID: ""},
				}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockCache := NewMockRoleCacheInterface(ctrl)
			tt.setupMocks(mockStorage, mockCache)

			members, err := newTestService(mockStorage, mockCache).GetUnapprovedUsers(tt.ctx, tt.tenantID)

			if tt.expectedErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if len(members) != 1 {
					t.Errorf("expected one pending member, got %d", len(members))
				}
				return
			}
			if !errors.Is(err, tt.expectedErr) {
				t.Errorf("expected %v, got %v", tt.expectedErr, err)
			}
		})
	}
}

func TestEnsureUser(t *testing.T) {
	principal := authentication.Principal{UserID: "alice", Email: "alice@example.com", Name: "Alice"}

	t.Run("existing user is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStorage := NewMockStorageInterface(ctrl)
		mockCache := NewMockRoleCacheInterface(ctrl)
		mockStorage.EXPECT().GetUserByID(gomock.Any(), "alice").Return(&types.User{ID: "alice"}, nil)

		user, err := newTestService(mockStorage, mockCache).EnsureUser(context.Background(), principal)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.ID != "alice" {
			t.Errorf("unexpected user: %+v", user)
		}
	})

	t.Run("first user is created as sysadmin", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStorage := NewMockStorageInterface(ctrl)
		mockCache := NewMockRoleCacheInterface(ctrl)
		mockStorage.EXPECT().GetUserByID(gomock.Any(), "alice").Return(nil, storage.ErrNotFound)
		mockStorage.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u *types.User) (*types.User, error) {
				created := *u
				created.IsSysAdmin = true
				return &created, nil
			})

		user, err := newTestService(mockStorage, mockCache).EnsureUser(context.Background(), principal)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !user.IsSysAdmin {
			t.Error("expected first user to be sysadmin")
		}
	})

	t.Run("create race falls back to the stored row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStorage := NewMockStorageInterface(ctrl)
		mockCache := NewMockRoleCacheInterface(ctrl)
		gomock.InOrder(
			mockStorage.EXPECT().GetUserByID(gomock.Any(), "alice").Return(nil, storage.ErrNotFound),
			mockStorage.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil, fmt.Errorf("users_pkey: %w", storage.ErrDuplicateKey)),
			mockStorage.EXPECT().GetUserByID(gomock.Any(), "alice").Return(&types.User{ID: "alice"}, nil),
		)

		user, err := newTestService(mockStorage, mockCache).EnsureUser(context.Background(), principal)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.ID != "alice" {
			t.Errorf("unexpected user: %+v", user)
		}
	})
}
