// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package agents

import (
	"encoding/json"
	"net/http"

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

type CreateAgentRequest struct {
	Name         string  `json:"name" validate:"required"`
	TenantID     *string `json:"tenant_id"`
	SystemScoped bool    `json:"system_scoped"`
}

type AccessRequest struct {
	UserID string `json:"user_id" validate:"required"`
	Level  string `json:"level" validate:"required"`
}

type AccessCheckResponse struct {
	UserID  string `json:"user_id"`
	Level   string `json:"level"`
	Allowed bool   `json:"allowed"`
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/api/v0/agents", a.handleCreateAgent)
	mux.Get("/api/v0/agents/{id}", a.handleGetAgent)
	mux.Get("/api/v0/tenants/{id}/agents", a.handleListAgents)
	mux.Post("/api/v0/agents/{id}/access", a.handleGrantAccess)
	mux.Delete("/api/v0/agents/{id}/access", a.handleRevokeAccess)
	mux.Get("/api/v0/agents/{id}/access/{userID}", a.handleCheckAccess)
}

func (a *API) handleCreateAgent(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "agents.API.handleCreateAgent")
	defer span.End()

	req := new(CreateAgentRequest)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		a.writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		a.writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	agent, err := a.service.CreateAgent(ctx, req.Name, req.TenantID, req.SystemScoped)
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeResponse(w, http.StatusCreated, agent)
}

func (a *API) handleGetAgent(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "agents.API.handleGetAgent")
	defer span.End()

	agent, err := a.service.GetAgent(ctx, chi.URLParam(r, "id"))
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeResponse(w, http.StatusOK, agent)
}

func (a *API) handleListAgents(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "agents.API.handleListAgents")
	defer span.End()

	agents, err := a.service.ListAgents(ctx, chi.URLParam(r, "id"))
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeResponse(w, http.StatusOK, agents)
}

func (a *API) handleGrantAccess(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "agents.API.handleGrantAccess")
	defer span.End()

	req, level, ok := a.decodeAccess(w, r)
	if !ok {
		return
	}

	if err := a.service.GrantAccess(ctx, chi.URLParam(r, "id"), req.UserID, level); err != nil {
		a.writeError(w, err)
		return
	}

	a.writeResponse(w, http.StatusOK, nil)
}

func (a *API) handleRevokeAccess(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "agents.API.handleRevokeAccess")
	defer span.End()

	req, level, ok := a.decodeAccess(w, r)
	if !ok {
		return
	}

	if err := a.service.RevokeAccess(ctx, chi.URLParam(r, "id"), req.UserID, level); err != nil {
		a.writeError(w, err)
		return
	}

	a.writeResponse(w, http.StatusOK, nil)
}

func (a *API) handleCheckAccess(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "agents.API.handleCheckAccess")
	defer span.End()

	level, err := types.ParsePermissionLevel(r.URL.Query().Get("level"))
	if err != nil {
		a.writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	userID := chi.URLParam(r, "userID")
	allowed, err := a.service.CheckAccess(ctx, chi.URLParam(r, "id"), userID, level)
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeResponse(w, http.StatusOK, AccessCheckResponse{
		UserID:  userID,
		Level:   level.String(),
		Allowed: allowed,
	})
}

func (a *API) decodeAccess(w http.ResponseWriter, r *http.Request) (*AccessRequest, types.PermissionLevel, bool) {
	req := new(AccessRequest)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		a.writeMessage(w, http.StatusBadRequest, "invalid request body")
		return nil, 0, false
	}
	if err := a.validate.Struct(req); err != nil {
		a.writeMessage(w, http.StatusBadRequest, err.Error())
		return nil, 0, false
	}

	level, err := types.ParsePermissionLevel(req.Level)
	if err != nil {
		a.writeMessage(w, http.StatusBadRequest, err.Error())
		return nil, 0, false
	}

	return req, level, true
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
