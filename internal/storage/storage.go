// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"strings"

	"github.com/canonical/membership-service/internal/db"
	"github.com/canonical/membership-service/internal/logging"
	"github.com/canonical/membership-service/internal/monitoring"
	"github.com/canonical/membership-service/internal/tracing"
	"github.com/canonical/membership-service/internal/types"
)

var _ StorageInterface = (*Storage)(nil)

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

// Role sets travel through SQL as comma-joined strings so array columns can
// be read and written via database/sql. Role names never contain commas.
func joinRoles(roles []types.Role) string {
	return strings.Join(types.RoleStrings(roles), ",")
}

func splitRoles(s string) []types.Role {
	if s == "" {
		return nil
	}
	return types.RolesFromStrings(strings.Split(s, ","))
}

func joinColumns(cols []string) string {
	return strings.Join(cols, ", ")
}
