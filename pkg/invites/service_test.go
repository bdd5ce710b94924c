// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invites

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/canonical/membership-service/internal/authorization"
	"github.com/canonical/membership-service/internal/logging"
	"github.com/canonical/membership-service/internal/monitoring"
	"github.com/canonical/membership-service/internal/storage"
	"github.com/canonical/membership-service/internal/tracing"
	"github.com/canonical/membership-service/internal/types"
	"github.com/canonical/membership-service/pkg/authentication"
)

//go:generate mockgen -build_flags=--mod=mod -package invites -destination ./mock_interfaces.go -source=./interfaces.go

func actorContext(userID, tenantID string) context.Context {
	ctx := authentication.WithPrincipal(context.Background(), authentication.Principal{UserID: userID})
	if tenantID != "" {
		ctx = authentication.WithTenantID(ctx, tenantID)
	}
	return ctx
}

func inviteeContext(userID, email string) context.Context {
	return authentication.WithPrincipal(context.Background(), authentication.Principal{UserID: userID, Email: email})
}

type testMocks struct {
	storage *MockStorageInterface
	cache   *MockRoleCacheInterface
	email   *MockEmailServiceInterface
	tokens  *MockTokenSourceInterface
}

func newTestService(m testMocks) *Service {
	tracer := tracing.NewTracer(tracing.NewNoopConfig())
	monitor := monitoring.NewNoopMonitor()
	logger := logging.NewNoopLogger()

	return NewService(
		m.storage,
		authorization.NewAuthorizer(tracer, monitor, logger),
		m.cache,
		m.email,
		m.tokens,
		DefaultInvitationLifetime,
		tracer,
		monitor,
		logger,
	)
}

func TestInviteUser(t *testing.T) {
	tests := []struct {
		name        string
		ctx         context.Context
		email       string
		tenantID    string
		roles       []string
		setupMocks  func(testMocks)
		expectedErr error
	}{
		{
			name:        "unauthenticated caller",
			ctx:         context.Background(),
			email:       "newcomer@example.com",
			tenantID:    "acme",
			setupMocks:  func(m testMocks) {},
			expectedErr: types.ErrUnauthorized,
		},
		{
			name:        "malformed email rejected",
			ctx:         actorContext("root", ""),
			email:       "not-an-email",
			tenantID:    "acme",
			setupMocks:  func(m testMocks) {},
			expectedErr: types.ErrBadRequest,
		},
		{
			name:     "existing account conflicts",
			ctx:      actorContext("root", ""),
			email:    "bob@example.com",
			tenantID: "acme",
			setupMocks: func(m testMocks) {
				m.storage.EXPECT().GetUserByID(gomock.Any(), "root").Return(&types.User{ID: "root", IsSysAdmin: true}, nil)
				m.storage.EXPECT().GetUserByEmail(gomock.Any(), "bob@example.com").Return(&types.User{ID: "bob"}, nil)
			},
			expectedErr: types.ErrConflict,
		},
		{
			name:     "tenant admin invites with default role",
			ctx:      actorContext("alice", "acme"),
			email:    "newcomer@example.com",
			tenantID: "acme",
			setupMocks: func(m testMocks) {
				m.storage.EXPECT().GetUserByID(gomock.Any(), "alice").Return(&types.User{ID: "alice"}, nil)
				m.cache.EXPECT().Get("acme", "alice").Return(nil, false)
				m.storage.EXPECT().GetTenantRole(gomock.Any(), "alice", "acme").Return(&types.TenantRole{
					UserID:     "alice",
					TenantID:   "acme",
					Roles:      []types.Role{types.RoleTenantAdmin},
					IsApproved: true,
				}, nil)
				m.cache.EXPECT().Set("acme", "alice", []types.Role{types.RoleTenantAdmin})
				m.storage.EXPECT().GetUserByEmail(gomock.Any(), "newcomer@example.com").Return(nil, storage.ErrNotFound)
				m.tokens.EXPECT().Generate().Return("tok-123", nil)
				m.storage.EXPECT().CreateInvitation(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, invite *types.Invitation) (*types.Invitation, error) {
						if invite.Token != "tok-123" {
							t.Errorf("expected generated token, got %q", invite.Token)
						}
						if invite.Status != types.InvitationPending {
							t.Errorf("expected pending status, got %q", invite.Status)
						}
						if len(invite.Roles) != 1 || invite.Roles[0] != types.RoleTenantUser {
							t.Errorf("expected default TenantUser role, got %v", invite.Roles)
						}
						if !invite.ExpiresAt.After(time.Now()) {
							t.Errorf("expected a future deadline, got %v", invite.ExpiresAt)
						}
						invite.ID = "inv-1"
						return invite, nil
					},
				)
				m.email.EXPECT().Send(gomock.Any(), "newcomer@example.com", gomock.Any(), gomock.Any(), false).Return(nil)
			},
		},
		{
			name:     "mail failure does not roll back",
			ctx:      actorContext("root", ""),
			email:    "newcomer@example.com",
			tenantID: "acme",
			roles:    []string{"TenantAdmin"},
			setupMocks: func(m testMocks) {
				m.storage.EXPECT().GetUserByID(gomock.Any(), "root").Return(&types.User{ID: "root", IsSysAdmin: true}, nil)
				m.storage.EXPECT().GetUserByEmail(gomock.Any(), "newcomer@example.com").Return(nil, storage.ErrNotFound)
				m.tokens.EXPECT().Generate().Return("tok-456", nil)
				m.storage.EXPECT().CreateInvitation(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, invite *types.Invitation) (*types.Invitation, error) {
						return invite, nil
					},
				)
				m.email.EXPECT().Send(gomock.Any(), "newcomer@example.com", gomock.Any(), gomock.Any(), false).Return(errors.New("smtp down"))
			},
		},
		{
			name:     "token source failure",
			ctx:      actorContext("root", ""),
			email:    "newcomer@example.com",
			tenantID: "acme",
			setupMocks: func(m testMocks) {
				m.storage.EXPECT().GetUserByID(gomock.Any(), "root").Return(&types.User{ID: "root", IsSysAdmin: true}, nil)
				m.storage.EXPECT().GetUserByEmail(gomock.Any(), "newcomer@example.com").Return(nil, storage.ErrNotFound)
				m.tokens.EXPECT().Generate().Return("", errors.New("entropy exhausted"))
			},
			expectedErr: types.ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mocks := testMocks{
				storage: NewMockStorageInterface(ctrl),
				cache:   NewMockRoleCacheInterface(ctrl),
				email:   NewMockEmailServiceInterface(ctrl),
				tokens:  NewMockTokenSourceInterface(ctrl),
			}
			tt.setupMocks(mocks)

			invite, err := newTestService(mocks).InviteUser(tt.ctx, tt.email, tt.tenantID, tt.roles)

			if tt.expectedErr != nil {
				if !errors.Is(err, tt.expectedErr) {
					t.Errorf("expected error %v, got %v", tt.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if invite == nil || invite.Status != types.InvitationPending {
				t.Errorf("expected a pending invitation, got %+v", invite)
			}
		})
	}
}

func TestGetInviteByEmail(t *testing.T) {
	pending := &types.Invitation{
		ID:        "inv-1",
		Email:     "newcomer@example.com",
		TenantID:  "acme",
		Roles:     []types.Role{types.RoleTenantUser},
		Token:     "tok-123",
		Status:    types.InvitationPending,
		ExpiresAt: time.Now().Add(time.Hour),
	}

	tests := []struct {
		name        string
		ctx         context.Context
		setupMocks  func(testMocks)
		expectedErr error
	}{
		{
			name:        "no email claim",
			ctx:         actorContext("bob", ""),
			setupMocks:  func(m testMocks) {},
			expectedErr: types.ErrBadRequest,
		},
		{
			name: "no pending invitation",
			ctx:  inviteeContext("bob", "newcomer@example.com"),
			setupMocks: func(m testMocks) {
				m.storage.EXPECT().GetPendingInvitationByEmail(gomock.Any(), "newcomer@example.com").Return(nil, storage.ErrNotFound)
			},
			expectedErr: types.ErrNotFound,
		},
		{
			name: "pending invitation returned",
			ctx:  inviteeContext("bob", "newcomer@example.com"),
			setupMocks: func(m testMocks) {
				m.storage.EXPECT().GetPendingInvitationByEmail(gomock.Any(), "newcomer@example.com").Return(pending, nil)
			},
		},
		{
			name: "past deadline is expired on read",
			ctx:  inviteeContext("bob", "newcomer@example.com"),
			setupMocks: func(m testMocks) {
				stale := *pending
				stale.ExpiresAt = time.Now().Add(-time.Minute)
				m.storage.EXPECT().GetPendingInvitationByEmail(gomock.Any(), "newcomer@example.com").Return(&stale, nil)
				m.storage.EXPECT().ExpireInvitation(gomock.Any(), "tok-123", gomock.Any()).Return(true, nil)
			},
			expectedErr: types.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mocks := testMocks{
				storage: NewMockStorageInterface(ctrl),
				cache:   NewMockRoleCacheInterface(ctrl),
				email:   NewMockEmailServiceInterface(ctrl),
				tokens:  NewMockTokenSourceInterface(ctrl),
			}
			tt.setupMocks(mocks)

			invite, err := newTestService(mocks).GetInviteByEmail(tt.ctx)

			if tt.expectedErr != nil {
				if !errors.Is(err, tt.expectedErr) {
					t.Errorf("expected error %v, got %v", tt.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if invite.Token != "tok-123" {
				t.Errorf("expected the invitee to see the token, got %q", invite.Token)
			}
		})
	}
}

func TestAcceptInvitation(t *testing.T) {
	newPending := func() *types.Invitation {
		return &types.Invitation{
			ID:        "inv-1",
			Email:     "newcomer@example.com",
			TenantID:  "acme",
			Roles:     []types.Role{types.RoleTenantUser},
			Token:     "tok-123",
			Status:    types.InvitationPending,
			ExpiresAt: time.Now().Add(time.Hour),
		}
	}

	tests := []struct {
		name        string
		token       string
		setupMocks  func(testMocks)
		expectedErr error
	}{
		{
			name:        "empty token",
			token:       "",
			setupMocks:  func(m testMocks) {},
			expectedErr: types.ErrBadRequest,
		},
		{
			name:  "unknown token",
			token: "tok-missing",
			setupMocks: func(m testMocks) {
				m.storage.EXPECT().GetInvitationByToken(gomock.Any(), "tok-missing").Return(nil, storage.ErrNotFound)
			},
			expectedErr: types.ErrNotFound,
		},
		{
			name:  "replay of a consumed invitation",
			token: "tok-123",
			setupMocks: func(m testMocks) {
				consumed := newPending()
				consumed.Status = types.InvitationAccepted
				m.storage.EXPECT().GetInvitationByToken(gomock.Any(), "tok-123").Return(consumed, nil)
			},
			expectedErr: types.ErrNotFound,
		},
		{
			name:  "past deadline is expired exactly once",
			token: "tok-123",
			setupMocks: func(m testMocks) {
				stale := newPending()
				stale.ExpiresAt = time.Now().Add(-time.Minute)
				m.storage.EXPECT().GetInvitationByToken(gomock.Any(), "tok-123").Return(stale, nil)
				m.storage.EXPECT().ExpireInvitation(gomock.Any(), "tok-123", gomock.Any()).Return(true, nil)
			},
			expectedErr: types.ErrNotFound,
		},
		{
			name:  "invited user has no account yet",
			token: "tok-123",
			setupMocks: func(m testMocks) {
				m.storage.EXPECT().GetInvitationByToken(gomock.Any(), "tok-123").Return(newPending(), nil)
				m.storage.EXPECT().GetUserByEmail(gomock.Any(), "newcomer@example.com").Return(nil, storage.ErrNotFound)
			},
			expectedErr: types.ErrNotFound,
		},
		{
			name:  "accept grants the invited roles",
			token: "tok-123",
			setupMocks: func(m testMocks) {
				pending := newPending()
				m.storage.EXPECT().GetInvitationByToken(gomock.Any(), "tok-123").Return(pending, nil)
				m.storage.EXPECT().GetUserByEmail(gomock.Any(), "newcomer@example.com").Return(&types.User{ID: "bob"}, nil)
				m.storage.EXPECT().AcceptInvitation(gomock.Any(), "tok-123", gomock.Any()).Return(pending, nil)
				m.storage.EXPECT().UpsertTenantRole(gomock.Any(), "bob", "acme", []types.Role{types.RoleTenantUser}, true).Return(nil)
				m.cache.EXPECT().Invalidate("acme", "bob")
			},
		},
		{
			name:  "concurrent accept loses the conditional update",
			token: "tok-123",
			setupMocks: func(m testMocks) {
				m.storage.EXPECT().GetInvitationByToken(gomock.Any(), "tok-123").Return(newPending(), nil)
				m.storage.EXPECT().GetUserByEmail(gomock.Any(), "newcomer@example.com").Return(&types.User{ID: "bob"}, nil)
				m.storage.EXPECT().AcceptInvitation(gomock.Any(), "tok-123", gomock.Any()).Return(nil, storage.ErrNotFound)
			},
			expectedErr: types.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mocks := testMocks{
				storage: NewMockStorageInterface(ctrl),
				cache:   NewMockRoleCacheInterface(ctrl),
				email:   NewMockEmailServiceInterface(ctrl),
				tokens:  NewMockTokenSourceInterface(ctrl),
			}
			tt.setupMocks(mocks)

			err := newTestService(mocks).AcceptInvitation(context.Background(), tt.token)

			if tt.expectedErr != nil {
				if !errors.Is(err, tt.expectedErr) {
					t.Errorf("expected error %v, got %v", tt.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}

func TestRandomTokenSource(t *testing.T) {
	source := NewRandomTokenSource()

	first, err := source.Generate()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	second, err := source.Generate()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if first == second {
		t.Errorf("expected distinct tokens, got %q twice", first)
	}
	if len(first) < 32 {
		t.Errorf("expected at least 32 characters of token, got %d", len(first))
	}
}
