// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package membership

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	httptypes "github.com/canonical/membership-service/internal/http/types"
	"github.com/canonical/membership-service/internal/logging"
	"github.com/canonical/membership-service/internal/monitoring"
	"github.com/canonical/membership-service/internal/tracing"
)

type API struct {
	service  ServiceInterface
	validate *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

type CreateTenantRequest struct {
	ID     string `json:"id" validate:"required"`
	Name   string `json:"name" validate:"required"`
	Domain string `json:"domain"`
}

type TenantStatusRequest struct {
	Enabled *bool `json:"enabled" validate:"required"`
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/api/v0/tenants", a.handleCreateTenant)
	mux.Get("/api/v0/tenants", a.handleListTenants)
	mux.Get("/api/v0/tenants/{id}", a.handleGetTenant)
	mux.Put("/api/v0/tenants/{id}/status", a.handleSetTenantStatus)
	mux.Post("/api/v0/tenants/{id}/join", a.handleRequestToJoin)
	mux.Post("/api/v0/tenants/{id}/users/{userID}/approve", a.handleApproveUser)
	mux.Get("/api/v0/pending-members", a.handleGetUnapprovedUsers)
	mux.Post("/api/v0/bootstrap", a.handleBootstrap)
}

func (a *API) handleCreateTenant(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "membership.API.handleCreateTenant")
	defer span.End()

	req := new(CreateTenantRequest)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		a.writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		a.writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	tenant, err := a.service.CreateTenant(ctx, req.ID, req.Name, req.Domain)
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeResponse(w, http.StatusCreated, tenant)
}

func (a *API) handleListTenants(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "membership.API.handleListTenants")
	defer span.End()

	tenants, err := a.service.ListTenants(ctx)
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeResponse(w, http.StatusOK, tenants)
}

func (a *API) handleGetTenant(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "membership.API.handleGetTenant")
	defer span.End()

	tenant, err := a.service.GetTenant(ctx, chi.URLParam(r, "id"))
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeResponse(w, http.StatusOK, tenant)
}

func (a *API) handleSetTenantStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "membership.API.handleSetTenantStatus")
	defer span.End()

	req := new(TenantStatusRequest)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		a.writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		a.writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := a.service.SetTenantStatus(ctx, chi.URLParam(r, "id"), *req.Enabled); err != nil {
		a.writeError(w, err)
		return
	}

	a.writeResponse(w, http.StatusOK, nil)
}

func (a *API) handleRequestToJoin(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "membership.API.handleRequestToJoin")
	defer span.End()

	if err := a.service.RequestToJoinTenant(ctx, chi.URLParam(r, "id")); err != nil {
		a.writeError(w, err)
		return
	}

	a.writeResponse(w, http.StatusAccepted, nil)
}

func (a *API) handleApproveUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "membership.API.handleApproveUser")
	defer span.End()

	if err := a.service.ApproveUser(ctx, chi.URLParam(r, "userID"), chi.URLParam(r, "id")); err != nil {
		a.writeError(w, err)
		return
	}

	a.writeResponse(w, http.StatusOK, nil)
}

func (a *API) handleGetUnapprovedUsers(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "membership.API.handleGetUnapprovedUsers")
	defer span.End()

	members, err := a.service.GetUnapprovedUsers(ctx, r.URL.Query().Get("tenant"))
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeResponse(w, http.StatusOK, members)
}

func (a *API) handleBootstrap(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "membership.API.handleBootstrap")
	defer span.End()

	if err := a.service.AssignBootstrapSysAdminRoles(ctx); err != nil {
		a.writeError(w, err)
		return
	}

	a.writeResponse(w, http.StatusOK, nil)
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
