// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invites

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/canonical/membership-service/internal/logging"
	"github.com/canonical/membership-service/internal/monitoring"
	"github.com/canonical/membership-service/internal/tracing"
	"github.com/canonical/membership-service/internal/types"
)

func newTestAPI(service ServiceInterface) *chi.Mux {
	api := NewAPI(
		service,
		tracing.NewTracer(tracing.NewNoopConfig()),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	)

	mux := chi.NewMux()
	api.RegisterEndpoints(mux)
	return mux
}

func TestHandleInviteUser(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name: "created without leaking the token",
			body: `{"email": "newcomer@example.com", "roles": ["TenantUser"]}`,
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().InviteUser(gomock.Any(), "newcomer@example.com", "acme", []string{"TenantUser"}).Return(&types.Invitation{
					ID:        "inv-1",
					Email:     "newcomer@example.com",
					TenantID:  "acme",
					Roles:     []types.Role{types.RoleTenantUser},
					Token:     "tok-123",
					Status:    types.InvitationPending,
					ExpiresAt: time.Now().Add(time.Hour),
				}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "malformed email",
			body:           `{"email": "not-an-email"}`,
			setupMocks:     func(m *MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "existing account maps to 409",
			body: `{"email": "bob@example.com"}`,
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().InviteUser(gomock.Any(), "bob@example.com", "acme", gomock.Nil()).Return(nil, types.ErrConflict)
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			tt.setupMocks(mockService)

			req := httptest.NewRequest(http.MethodPost, "/api/v0/tenants/acme/invitations", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()

			newTestAPI(mockService).ServeHTTP(rr, req)

			if rr.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d: %s", tt.expectedStatus, rr.Code, rr.Body.String())
			}
			if rr.Code == http.StatusCreated && strings.Contains(rr.Body.String(), "tok-123") {
				t.Errorf("expected the token to stay out of the inviter response, got %s", rr.Body.String())
			}
		})
	}
}

func TestHandleGetInviteByEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockServiceInterface(ctrl)
	mockService.EXPECT().GetInviteByEmail(gomock.Any()).Return(&types.Invitation{
		ID:        "inv-1",
		Email:     "newcomer@example.com",
		TenantID:  "acme",
		Roles:     []types.Role{types.RoleTenantUser},
		Token:     "tok-123",
		Status:    types.InvitationPending,
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v0/invitations/me", nil)
	rr := httptest.NewRecorder()

	newTestAPI(mockService).ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "tok-123") {
		t.Errorf("expected the invitee to receive the token, got %s", rr.Body.String())
	}
}

func TestHandleAcceptInvitation(t *testing.T) {
	tests := []struct {
		name           string
		serviceErr     error
		expectedStatus int
	}{
		{
			name:           "accepted",
			serviceErr:     nil,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "consumed token maps to 404",
			serviceErr:     types.ErrNotFound,
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			mockService.EXPECT().AcceptInvitation(gomock.Any(), "tok-123").Return(tt.serviceErr)

			req := httptest.NewRequest(http.MethodPost, "/api/v0/invitations/tok-123/accept", nil)
			rr := httptest.NewRecorder()

			newTestAPI(mockService).ServeHTTP(rr, req)

			if rr.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d: %s", tt.expectedStatus, rr.Code, rr.Body.String())
			}
		})
	}
}
