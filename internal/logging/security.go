// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
)

// SecurityLogger emits structured audit events for security-relevant state
// changes. Identifiers only, never tokens or credentials.
type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) AuthnSuccess(subject string) {
	s.l.Info("authentication succeeded", zap.String("event", "authn_success"), zap.String("subject", subject))
}

func (s *SecurityLogger) AuthnFailure(reason string) {
	s.l.Warn("authentication failed", zap.String("event", "authn_failure"), zap.String("reason", reason))
}

func (s *SecurityLogger) AuthzFailure(subject, policy string) {
	s.l.Warn("authorization denied", zap.String("event", "authz_failure"), zap.String("subject", subject), zap.String("policy", policy))
}

func (s *SecurityLogger) AccountLocked(subject, lockedBy string) {
	s.l.Warn("account locked", zap.String("event", "account_locked"), zap.String("subject", subject), zap.String("locked_by", lockedBy))
}

func (s *SecurityLogger) AccountUnlocked(subject, unlockedBy string) {
	s.l.Info("account unlocked", zap.String("event", "account_unlocked"), zap.String("subject", subject), zap.String("unlocked_by", unlockedBy))
}

func (s *SecurityLogger) BootstrapAdmin(subject string) {
	s.l.Warn("bootstrap system admin assigned", zap.String("event", "bootstrap_admin"), zap.String("subject", subject))
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Info("system startup", zap.String("event", "system_startup"))
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Info("system shutdown", zap.String("event", "system_shutdown"))
}
