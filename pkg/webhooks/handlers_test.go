// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

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

func newTestAPI(service ServiceInterface, secret string) *chi.Mux {
	api := NewAPI(
		service,
		secret,
		tracing.NewTracer(tracing.NewNoopConfig()),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	)

	mux := chi.NewMux()
	api.RegisterEndpoints(mux)
	return mux
}

func TestHandleRegistrationWebhook(t *testing.T) {
	body := `{"id": "bob", "traits": {"email": "bob@example.com", "name": "Bob"}}`

	tests := []struct {
		name           string
		secret         string
		token          string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name:   "provisioned",
			secret: "hunter2",
			token:  "hunter2",
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().HandleRegistration(gomock.Any(), "bob", "bob@example.com", "Bob").
					Return(&types.User{ID: "bob"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "wrong token",
			secret:         "hunter2",
			token:          "wrong",
			setupMocks:     func(m *MockServiceInterface) {},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "unset secret disables the hook",
			secret:         "",
			token:          "",
			setupMocks:     func(m *MockServiceInterface) {},
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			tt.setupMocks(mockService)

			req := httptest.NewRequest(http.MethodPost, "/api/v0/webhooks/registration", strings.NewReader(body))
			if tt.token != "" {
				req.Header.Set(SecretHeader, tt.token)
			}
			rr := httptest.NewRecorder()

			newTestAPI(mockService, tt.secret).ServeHTTP(rr, req)

			if rr.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d: %s", tt.expectedStatus, rr.Code, rr.Body.String())
			}
		})
	}
}
