// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package agents

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

func TestHandleCreateAgent(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name: "created",
			body: `{"name": "crawler", "tenant_id": "acme"}`,
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().CreateAgent(gomock.Any(), "crawler", gomock.Any(), false).Return(&types.Agent{ID: "agent-1", Name: "crawler"}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing name",
			body:           `{"tenant_id": "acme"}`,
			setupMocks:     func(m *MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "forbidden maps to 403",
			body: `{"name": "indexer", "system_scoped": true}`,
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().CreateAgent(gomock.Any(), "indexer", gomock.Nil(), true).Return(nil, types.ErrForbidden)
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

			req := httptest.NewRequest(http.MethodPost, "/api/v0/agents", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()

			newTestAPI(mockService).ServeHTTP(rr, req)

			if rr.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d: %s", tt.expectedStatus, rr.Code, rr.Body.String())
			}
		})
	}
}

func TestHandleGrantAccess(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name: "granted",
			body: `{"user_id": "erin", "level": "write"}`,
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().GrantAccess(gomock.Any(), "agent-1", "erin", types.PermissionWrite).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unknown level",
			body:           `{"user_id": "erin", "level": "admin"}`,
			setupMocks:     func(m *MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "non-owner maps to 403",
			body: `{"user_id": "erin", "level": "read"}`,
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().GrantAccess(gomock.Any(), "agent-1", "erin", types.PermissionRead).Return(types.ErrForbidden)
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

			req := httptest.NewRequest(http.MethodPost, "/api/v0/agents/agent-1/access", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()

			newTestAPI(mockService).ServeHTTP(rr, req)

			if rr.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d: %s", tt.expectedStatus, rr.Code, rr.Body.String())
			}
		})
	}
}

func TestHandleRevokeAccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockServiceInterface(ctrl)
	mockService.EXPECT().RevokeAccess(gomock.Any(), "agent-1", "dave", types.PermissionRead).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/v0/agents/agent-1/access", strings.NewReader(`{"user_id": "dave", "level": "read"}`))
	rr := httptest.NewRecorder()

	newTestAPI(mockService).ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rr.Code)
	}
}

func TestHandleCheckAccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockServiceInterface(ctrl)
	mockService.EXPECT().CheckAccess(gomock.Any(), "agent-1", "bob", types.PermissionWrite).Return(false, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v0/agents/agent-1/access/bob?level=write", nil)
	rr := httptest.NewRecorder()

	newTestAPI(mockService).ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"allowed":false`) {
		t.Errorf("expected a negative access decision, got %s", rr.Body.String())
	}
}
