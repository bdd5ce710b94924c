// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/membership-service/internal/logging"
	"github.com/canonical/membership-service/internal/monitoring"
	"github.com/canonical/membership-service/internal/tracing"
	"github.com/canonical/membership-service/internal/types"
	"github.com/canonical/membership-service/pkg/authentication"
)

//go:generate mockgen -build_flags=--mod=mod -package webhooks -destination ./mock_interfaces.go -source=./interfaces.go

func newTestService(registry RegistryInterface) *Service {
	return NewService(
		registry,
		tracing.NewTracer(tracing.NewNoopConfig()),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	)
}

func TestHandleRegistration(t *testing.T) {
	tests := []struct {
		name        string
		identityID  string
		email       string
		setupMocks  func(*MockRegistryInterface)
		expectedErr error
	}{
		{
			name:        "missing identity id",
			identityID:  "",
			email:       "bob@example.com",
			setupMocks:  func(m *MockRegistryInterface) {},
			expectedErr: types.ErrBadRequest,
		},
		{
			name:        "missing email",
			identityID:  "bob",
			email:       "",
			setupMocks:  func(m *MockRegistryInterface) {},
			expectedErr: types.ErrBadRequest,
		},
		{
			name:       "provisions the account",
			identityID: "bob",
			email:      "bob@example.com",
			setupMocks: func(m *MockRegistryInterface) {
				m.EXPECT().EnsureUser(gomock.Any(), authentication.Principal{UserID: "bob", Email: "bob@example.com", Name: "Bob"}).
					Return(&types.User{ID: "bob", Email: "bob@example.com"}, nil)
			},
		},
		{
			name:       "registry failure surfaces",
			identityID: "bob",
			email:      "bob@example.com",
			setupMocks: func(m *MockRegistryInterface) {
				m.EXPECT().EnsureUser(gomock.Any(), gomock.Any()).Return(nil, types.ErrInternal)
			},
			expectedErr: types.ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRegistry := NewMockRegistryInterface(ctrl)
			tt.setupMocks(mockRegistry)

			user, err := newTestService(mockRegistry).HandleRegistration(context.Background(), tt.identityID, tt.email, "Bob")

			if tt.expectedErr != nil {
				if !errors.Is(err, tt.expectedErr) {
					t.Errorf("expected error %v, got %v", tt.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if user == nil || user.ID != "bob" {
				t.Errorf("expected the provisioned user back, got %+v", user)
			}
		})
	}
}
