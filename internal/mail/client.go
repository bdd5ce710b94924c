// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/canonical/membership-service/internal/logging"
	"github.com/canonical/membership-service/internal/monitoring"
	"github.com/canonical/membership-service/internal/tracing"
)

type Client struct {
	apiURL string
	from   string
	client *http.Client

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

type sendRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
	HTML    bool   `json:"html"`
}

func (c *Client) Send(ctx context.Context, to, subject, body string, isHTML bool) error {
	ctx, span := c.tracer.Start(ctx, "mail.Client.Send")
	defer span.End()

	payload, err := json.Marshal(sendRequest{
		From:    c.from,
		To:      to,
		Subject: subject,
		Body:    body,
		HTML:    isHTML,
	})
	if err != nil {
		return fmt.Errorf("failed to encode mail request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+"/v1/messages", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build mail request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call mail API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("mail API returned status %d", resp.StatusCode)
	}

	return nil
}

func NewClient(apiURL, from string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Client {
	return &Client{
		apiURL: apiURL,
		from:   from,
		client: &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)},

		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}
