// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/canonical/membership-service/internal/authorization"
	"github.com/canonical/membership-service/internal/config"
	"github.com/canonical/membership-service/internal/db"
	"github.com/canonical/membership-service/internal/logging"
	"github.com/canonical/membership-service/internal/mail"
	"github.com/canonical/membership-service/internal/monitoring/prometheus"
	"github.com/canonical/membership-service/internal/rolecache"
	"github.com/canonical/membership-service/internal/storage"
	"github.com/canonical/membership-service/internal/tracing"
	"github.com/canonical/membership-service/pkg/agents"
	"github.com/canonical/membership-service/pkg/authentication"
	"github.com/canonical/membership-service/pkg/invites"
	"github.com/canonical/membership-service/pkg/membership"
	"github.com/canonical/membership-service/pkg/roles"
	"github.com/canonical/membership-service/pkg/web"
	"github.com/canonical/membership-service/pkg/webhooks"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		panic(fmt.Errorf("issues with environment sourcing: %s", err))
	}

	logger := logging.NewLogger(specs.LogLevel)
	logger.Debugf("env vars: %v", specs)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("membership-service", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	dbConfig := db.Config{
		DSN:             specs.DSN,
		MaxConns:        specs.DBMaxConns,
		MinConns:        specs.DBMinConns,
		MaxConnLifetime: specs.DBMaxConnLifetime,
		MaxConnIdleTime: specs.DBMaxConnIdleTime,
		TracingEnabled:  specs.TracingEnabled,
	}
	dbClient, err := db.NewDBClient(dbConfig, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create database client: %v", err)
	}
	defer dbClient.Close()
	s := storage.NewStorage(dbClient, tracer, monitor, logger)

	roleCache := rolecache.NewRoleCache(specs.RoleCacheSize, specs.RoleCacheTTL, monitor, logger)
	authorizer := authorization.NewAuthorizer(tracer, monitor, logger)

	var mailer mail.EmailServiceInterface
	if specs.MailAPIURL != "" {
		mailer = mail.NewClient(specs.MailAPIURL, specs.MailFrom, tracer, monitor, logger)
		logger.Info("Mail delivery is enabled")
	} else {
		mailer = mail.NewNoopClient(logger)
		logger.Info("Using noop mail client")
	}

	membershipService := membership.NewService(s, authorizer, roleCache, tracer, monitor, logger)
	rolesService := roles.NewService(s, authorizer, roleCache, tracer, monitor, logger)
	invitesService := invites.NewService(
		s,
		authorizer,
		roleCache,
		mailer,
		invites.NewRandomTokenSource(),
		specs.InvitationLifetime,
		tracer,
		monitor,
		logger,
	)
	agentsService := agents.NewService(s, authorizer, roleCache, tracer, monitor, logger)
	webhooksService := webhooks.NewService(membershipService, tracer, monitor, logger)

	var verifier authentication.TokenVerifierInterface
	if specs.AuthenticationEnabled {
		verifier, err = authentication.NewJWTAuthenticator(
			context.Background(),
			specs.OIDCIssuer,
			specs.JWKSURL,
			tracer,
			monitor,
			logger,
		)
		if err != nil {
			return fmt.Errorf("failed to set up authentication: %v", err)
		}
	} else {
		verifier = authentication.NewNoopVerifier()
		logger.Info("Authentication is disabled, token subjects are trusted as-is")
	}
	authMiddleware := authentication.NewMiddleware(verifier, membershipService, tracer, monitor, logger)

	router := web.NewRouter(
		membershipService,
		rolesService,
		invitesService,
		agentsService,
		webhooksService,
		specs.WebhookSecret,
		authMiddleware,
		dbClient,
		tracer,
		monitor,
		logger,
	)
	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}
