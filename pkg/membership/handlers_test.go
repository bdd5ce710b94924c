// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package membership

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

func TestHandleCreateTenant(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name: "created",
			body: `{"id": "acme", "name": "Acme"}`,
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().CreateTenant(gomock.Any(), "acme", "Acme", "").Return(&types.Tenant{ID: "acme", Name: "Acme", Enabled: true}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing name",
			body:           `{"id": "acme"}`,
			setupMocks:     func(m *MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "collision maps to 409",
			body: `{"id": "acme", "name": "Acme"}`,
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().CreateTenant(gomock.Any(), "acme", "Acme", "").Return(nil, types.ErrConflict)
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

			req := httptest.NewRequest(http.MethodPost, "/api/v0/tenants", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()

			newTestAPI(mockService).ServeHTTP(rr, req)

			if rr.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d: %s", tt.expectedStatus, rr.Code, rr.Body.String())
			}
		})
	}
}

func TestHandleRequestToJoin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockServiceInterface(ctrl)
	mockService.EXPECT().RequestToJoinTenant(gomock.Any(), "acme").Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v0/tenants/acme/join", nil)
	rr := httptest.NewRecorder()

	newTestAPI(mockService).ServeHTTP(rr, req)

	if rr.Code != http.StatusAccepted {
		t.Errorf("expected status 202, got %d", rr.Code)
	}
}

func TestHandleApproveUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockServiceInterface(ctrl)
	mockService.EXPECT().ApproveUser(gomock.Any(), "dave", "acme").Return(types.ErrForbidden)

	req := httptest.NewRequest(http.MethodPost, "/api/v0/tenants/acme/users/dave/approve", nil)
	rr := httptest.NewRecorder()

	newTestAPI(mockService).ServeHTTP(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Errorf("expected status 403, got %d", rr.Code)
	}
}

func TestHandleGetUnapprovedUsersTenantFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockServiceInterface(ctrl)
	mockService.EXPECT().GetUnapprovedUsers(gomock.Any(), "acme").Return([]*types.PendingMember{
		{UserID: "dave", TenantID: "acme", Roles: []types.Role{types.RoleTenantUser}},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v0/pending-members?tenant=acme", nil)
	rr := httptest.NewRecorder()

	newTestAPI(mockService).ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "dave") {
		t.Errorf("expected body to contain pending member, got %s", rr.Body.String())
	}
}

func TestHandleSetTenantStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockServiceInterface(ctrl)
	mockService.EXPECT().SetTenantStatus(gomock.Any(), "acme", false).Return(nil)

	req := httptest.NewRequest(http.MethodPut, "/api/v0/tenants/acme/status", strings.NewReader(`{"enabled": false}`))
	rr := httptest.NewRecorder()

	newTestAPI(mockService).ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rr.Code)
	}
}
