// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/membership-service/internal/http/types"
	"github.com/canonical/membership-service/internal/logging"
	"github.com/canonical/membership-service/internal/monitoring"
	"github.com/canonical/membership-service/internal/tracing"
)

// SecretHeader carries the shared secret the identity provider is configured
// to send.
const SecretHeader = "X-Webhook-Token"

type API struct {
	service ServiceInterface
	secret  string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/api/v0/webhooks/registration", a.handleRegistration)
}

func (a *API) handleRegistration(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "webhooks.API.handleRegistration")
	defer span.End()

	if !a.authorized(r) {
		a.logger.Security().AuthnFailure("webhook secret mismatch")
		a.writeMessage(w, http.StatusForbidden, "invalid webhook token")
		return
	}

	var payload IdentityPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		a.writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := a.service.HandleRegistration(ctx, payload.ID, payload.Traits.Email, payload.Traits.Name)
	if err != nil {
		a.writeMessage(w, httptypes.Status(err), err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(httptypes.Response{Data: user, Status: http.StatusOK}); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}

// An unset secret disables the webhook rather than leaving it open.
func (a *API) authorized(r *http.Request) bool {
	if a.secret == "" {
		return false
	}
	token := r.Header.Get(SecretHeader)
	return subtle.ConstantTimeCompare([]byte(token), []byte(a.secret)) == 1
}

func (a *API) writeMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(httptypes.Response{Message: message, Status: status}); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}

func NewAPI(
	service ServiceInterface,
	secret string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	return &API{
		service: service,
		secret:  secret,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}
