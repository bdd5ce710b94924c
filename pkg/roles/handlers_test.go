// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package roles

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

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

func TestHandleAssignRoles(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name: "success",
			body: `{"roles": ["TenantUser"]}`,
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().AssignRoles(gomock.Any(), "carol", "acme", []string{"TenantUser"}).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "malformed body",
			body:           `{"roles": "TenantUser"}`,
			setupMocks:     func(m *MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "empty role list",
			body:           `{"roles": []}`,
			setupMocks:     func(m *MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "forbidden maps to 403",
			body: `{"roles": ["TenantUser"]}`,
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().AssignRoles(gomock.Any(), "carol", "acme", []string{"TenantUser"}).Return(types.ErrForbidden)
			},
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			tt.setupMocks(mockService)

			req := httptest.NewRequest(http.MethodPost, "/api/v0/tenants/acme/users/carol/roles", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()

			newTestAPI(mockService).ServeHTTP(rr, req)

			if rr.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d: %s", tt.expectedStatus, rr.Code, rr.Body.String())
			}
		})
	}
}

func TestHandleGetUserRoles(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockServiceInterface(ctrl)
	mockService.EXPECT().GetUserRoles(gomock.Any(), "carol", "acme").Return([]types.Role{types.RoleTenantUser}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v0/tenants/acme/users/carol/roles", nil)
	rr := httptest.NewRecorder()

	newTestAPI(mockService).ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "TenantUser") {
		t.Errorf("expected body to contain TenantUser, got %s", rr.Body.String())
	}
}

func TestHandleGetCurrentUserRolesUnauthorized(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockServiceInterface(ctrl)
	mockService.EXPECT().GetCurrentUserRoles(gomock.Any()).Return(nil, types.ErrUnauthorized)

	req := httptest.NewRequest(http.MethodGet, "/api/v0/me/roles", nil)
	rr := httptest.NewRecorder()

	newTestAPI(mockService).ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", rr.Code)
	}
}

func TestHandleLockUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockServiceInterface(ctrl)
	mockService.EXPECT().LockUser(gomock.Any(), "carol", "terms violation").Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v0/users/carol/lock", strings.NewReader(`{"reason": "terms violation"}`))
	rr := httptest.NewRecorder()

	newTestAPI(mockService).ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rr.Code)
	}
}
