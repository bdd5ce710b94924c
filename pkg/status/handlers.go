// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/membership-service/internal/http/types"
	"github.com/canonical/membership-service/internal/logging"
	"github.com/canonical/membership-service/internal/monitoring"
	"github.com/canonical/membership-service/internal/tracing"
	"github.com/canonical/membership-service/internal/version"
)

type API struct {
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

type Health struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/status", a.handleStatus)
	mux.Get("/api/v0/version", a.handleVersion)
}

func (a *API) handleStatus(w http.ResponseWriter, r *http.Request) {
	_, span := a.tracer.Start(r.Context(), "status.API.handleStatus")
	defer span.End()

	a.writeResponse(w, Health{Status: "ok", Version: version.Version})
}

func (a *API) handleVersion(w http.ResponseWriter, r *http.Request) {
	_, span := a.tracer.Start(r.Context(), "status.API.handleVersion")
	defer span.End()

	a.writeResponse(w, map[string]string{"version": version.Version})
}

func (a *API) writeResponse(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(httptypes.Response{Data: data, Status: http.StatusOK}); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}

func NewAPI(tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	return &API{
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}
