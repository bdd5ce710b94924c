// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package roles

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

type RoleSetRequest struct {
	Roles []string `json:"roles" validate:"required,min=1"`
}

type LockRequest struct {
	Reason string `json:"reason" validate:"required"`
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/tenants/{id}/users/{userID}/roles", a.handleGetUserRoles)
	mux.Post("/api/v0/tenants/{id}/users/{userID}/roles", a.handleAssignRoles)
	mux.Delete("/api/v0/tenants/{id}/users/{userID}/roles", a.handleRemoveRoles)
	mux.Post("/api/v0/tenants/{id}/users/{userID}/promote", a.handlePromote)
	mux.Get("/api/v0/tenants/{id}/users", a.handleListUsersByRole)
	mux.Get("/api/v0/me/roles", a.handleGetCurrentUserRoles)
	mux.Get("/api/v0/sysadmins", a.handleListSystemAdmins)
	mux.Post("/api/v0/users/{userID}/lock", a.handleLockUser)
	mux.Post("/api/v0/users/{userID}/unlock", a.handleUnlockUser)
}

func (a *API) handleGetUserRoles(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "roles.API.handleGetUserRoles")
	defer span.End()

	roles, err := a.service.GetUserRoles(ctx, chi.URLParam(r, "userID"), chi.URLParam(r, "id"))
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeResponse(w, http.StatusOK, types.RoleStrings(roles))
}

func (a *API) handleAssignRoles(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "roles.API.handleAssignRoles")
	defer span.End()

	req, ok := a.decodeRoleSet(w, r)
	if !ok {
		return
	}

	if err := a.service.AssignRoles(ctx, chi.URLParam(r, "userID"), chi.URLParam(r, "id"), req.Roles); err != nil {
		a.writeError(w, err)
		return
	}

	a.writeResponse(w, http.StatusOK, nil)
}

func (a *API) handleRemoveRoles(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "roles.API.handleRemoveRoles")
	defer span.End()

	req, ok := a.decodeRoleSet(w, r)
	if !ok {
		return
	}

	if err := a.service.RemoveRoles(ctx, chi.URLParam(r, "userID"), chi.URLParam(r, "id"), req.Roles); err != nil {
		a.writeError(w, err)
		return
	}

	a.writeResponse(w, http.StatusOK, nil)
}

func (a *API) handlePromote(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "roles.API.handlePromote")
	defer span.End()

	if err := a.service.PromoteToTenantAdmin(ctx, chi.URLParam(r, "userID"), chi.URLParam(r, "id")); err != nil {
		a.writeError(w, err)
		return
	}

	a.writeResponse(w, http.StatusOK, nil)
}

func (a *API) handleListUsersByRole(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "roles.API.handleListUsersByRole")
	defer span.End()

	users, err := a.service.ListUsersByRole(ctx, chi.URLParam(r, "id"), r.URL.Query().Get("role"))
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeResponse(w, http.StatusOK, users)
}

func (a *API) handleGetCurrentUserRoles(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "roles.API.handleGetCurrentUserRoles")
	defer span.End()

	roles, err := a.service.GetCurrentUserRoles(ctx)
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeResponse(w, http.StatusOK, types.RoleStrings(roles))
}

func (a *API) handleListSystemAdmins(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "roles.API.handleListSystemAdmins")
	defer span.End()

	admins, err := a.service.ListSystemAdmins(ctx)
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeResponse(w, http.StatusOK, admins)
}

func (a *API) handleLockUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "roles.API.handleLockUser")
	defer span.End()

	req := new(LockRequest)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		a.writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		a.writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := a.service.LockUser(ctx, chi.URLParam(r, "userID"), req.Reason); err != nil {
		a.writeError(w, err)
		return
	}

	a.writeResponse(w, http.StatusOK, nil)
}

func (a *API) handleUnlockUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "roles.API.handleUnlockUser")
	defer span.End()

	if err := a.service.UnlockUser(ctx, chi.URLParam(r, "userID")); err != nil {
		a.writeError(w, err)
		return
	}

	a.writeResponse(w, http.StatusOK, nil)
}

func (a *API) decodeRoleSet(w http.ResponseWriter, r *http.Request) (*RoleSetRequest, bool) {
	req := new(RoleSetRequest)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		a.writeMessage(w, http.StatusBadRequest, "invalid request body")
		return nil, false
	}
	if err := a.validate.Struct(req); err != nil {
		a.writeMessage(w, http.StatusBadRequest, err.Error())
		return nil, false
	}
	return req, true
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
