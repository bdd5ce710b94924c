// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import (
	"context"

	"github.com/canonical/membership-service/internal/logging"
)

// NoopClient logs instead of sending, for deployments without a mail API.
type NoopClient struct {
	logger logging.LoggerInterface
}

func (c *NoopClient) Send(ctx context.Context, to, subject, body string, isHTML bool) error {
	c.logger.Infof("mail delivery disabled, dropping message to %s with subject %q", to, subject)
	return nil
}

func NewNoopClient(logger logging.LoggerInterface) *NoopClient {
	return &NoopClient{logger: logger}
}
