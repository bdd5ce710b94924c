// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import (
	"context"
)

// EmailServiceInterface is the outbound notification collaborator. Delivery
// is best effort: callers persist their own state first and never roll back
// on a send failure.
type EmailServiceInterface interface {
	Send(ctx context.Context, to, subject, body string, isHTML bool) error
}
