// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/canonical/membership-service/internal/db"
	"github.com/canonical/membership-service/internal/logging"
	"github.com/canonical/membership-service/internal/monitoring"
	"github.com/canonical/membership-service/internal/tracing"
	"github.com/canonical/membership-service/pkg/agents"
	"github.com/canonical/membership-service/pkg/authentication"
	"github.com/canonical/membership-service/pkg/invites"
	"github.com/canonical/membership-service/pkg/membership"
	"github.com/canonical/membership-service/pkg/metrics"
	"github.com/canonical/membership-service/pkg/roles"
	"github.com/canonical/membership-service/pkg/status"
	"github.com/canonical/membership-service/pkg/webhooks"
)

func NewRouter(
	membershipService membership.ServiceInterface,
	rolesService roles.ServiceInterface,
	invitesService invites.ServiceInterface,
	agentsService agents.ServiceInterface,
	webhooksService webhooks.ServiceInterface,
	webhookSecret string,
	authMiddleware *authentication.Middleware,
	dbClient db.DBClientInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS([]string{"*"}),
	)

	router.Use(middlewares...)

	// Unauthenticated surface. The registration webhook guards itself with a
	// shared secret instead of a bearer token.
	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(tracer, monitor, logger).RegisterEndpoints(router)
	webhooks.NewAPI(webhooksService, webhookSecret, tracer, monitor, logger).RegisterEndpoints(router)

	// Everything else requires a verified token, the tenant binding and a
	// request-scoped transaction on mutations.
	apiRouter := chi.NewMux()
	apiRouter.Use(
		authMiddleware.Authenticate(),
		authentication.TenantBinding(),
		db.TransactionMiddleware(dbClient, logger),
	)

	membership.NewAPI(membershipService, tracer, monitor, logger).RegisterEndpoints(apiRouter)
	roles.NewAPI(rolesService, tracer, monitor, logger).RegisterEndpoints(apiRouter)
	invites.NewAPI(invitesService, tracer, monitor, logger).RegisterEndpoints(apiRouter)
	agents.NewAPI(agentsService, tracer, monitor, logger).RegisterEndpoints(apiRouter)

	router.Mount("/", apiRouter)

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
