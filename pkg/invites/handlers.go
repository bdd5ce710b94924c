// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invites

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	httptypes "github.com/canonical/membership-service/internal/http/types"
	"github.com/canonical/membership-service/internal/logging"
	"github.com/canonical/membership-service/internal/monitoring"
	"github.com/canonical/membership-service/internal/tracing"
	"github.com/canonical/membership-service/internal/types"
)

type API struct {
	service  ServiceInterface
	validate *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

type InviteRequest struct {
	Email string   `json:"email" validate:"required,email"`
	Roles []string `json:"roles"`
}

// InvitationResponse is the wire view of an invitation. The token is only
// populated on the invitee-facing endpoint, the mail is the channel for it
// otherwise.
type InvitationResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	TenantID  string    `json:"tenant_id"`
	Roles     []string  `json:"roles"`
	Status    string    `json:"status"`
	Token     string    `json:"token,omitempty"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/api/v0/tenants/{id}/invitations", a.handleInviteUser)
	mux.Get("/api/v0/invitations/me", a.handleGetInviteByEmail)
	mux.Post("/api/v0/invitations/{token}/accept", a.handleAcceptInvitation)
}

func (a *API) handleInviteUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "invites.API.handleInviteUser")
	defer span.End()

	req := new(InviteRequest)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		a.writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		a.writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	invite, err := a.service.InviteUser(ctx, req.Email, chi.URLParam(r, "id"), req.Roles)
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeResponse(w, http.StatusCreated, invitationView(invite, false))
}

func (a *API) handleGetInviteByEmail(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "invites.API.handleGetInviteByEmail")
	defer span.End()

	invite, err := a.service.GetInviteByEmail(ctx)
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeResponse(w, http.StatusOK, invitationView(invite, true))
}

func (a *API) handleAcceptInvitation(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "invites.API.handleAcceptInvitation")
	defer span.End()

	if err := a.service.AcceptInvitation(ctx, chi.URLParam(r, "token")); err != nil {
		a.writeError(w, err)
		return
	}

	a.writeMessage(w, http.StatusOK, "invitation accepted")
}

func invitationView(invite *types.Invitation, withToken bool) *InvitationResponse {
	resp := &InvitationResponse{
		ID:        invite.ID,
		Email:     invite.Email,
		TenantID:  invite.TenantID,
		Roles:     types.RoleStrings(invite.Roles),
		Status:    string(invite.Status),
		ExpiresAt: invite.ExpiresAt,
	}
	if withToken {
		resp.Token = invite.Token
	}
	return resp
}

func (a *API) writeResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(httptypes.Response{Data: data, Status: status}); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}

func (a *API) writeMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(httptypes.Response{Message: message, Status: status}); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}

func (a *API) writeError(w http.ResponseWriter, err error) {
	a.writeMessage(w, httptypes.Status(err), err.Error())
}

func NewAPI(
	service ServiceInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	return &API{
		service:  service,
		validate: validator.New(),
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}
