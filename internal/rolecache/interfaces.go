// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package rolecache

import (
	"github.com/canonical/membership-service/internal/types"
)

type RoleCacheInterface interface {
	Get(tenantID, userID string) ([]types.Role, bool)
	Set(tenantID, userID string, roles []types.Role)
	Invalidate(tenantID, userID string)
}
