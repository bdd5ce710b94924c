// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	AuthenticationEnabled bool   `envconfig:"authentication_enabled" default:"true"`
	OIDCIssuer            string `envconfig:"oidc_issuer"`
	JWKSURL               string `envconfig:"jwks_url"`

	MailAPIURL string `envconfig:"mail_api_url"`
	MailFrom   string `envconfig:"mail_from" default:"no-reply@example.com"`

	WebhookSecret string `envconfig:"webhook_secret"`

	InvitationLifetime time.Duration `envconfig:"invitation_lifetime" default:"168h"`

	RoleCacheTTL  time.Duration `envconfig:"role_cache_ttl" default:"5m"`
	RoleCacheSize int           `envconfig:"role_cache_size" default:"4096"`
}
