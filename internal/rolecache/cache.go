// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package rolecache

import (
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/canonical/membership-service/internal/logging"
	"github.com/canonical/membership-service/internal/monitoring"
	"github.com/canonical/membership-service/internal/types"
)

const defaultTTL = 5 * time.Minute

// RoleCache is a read-through cache for resolved tenant role sets, keyed by
// (tenant, user). Mutating paths invalidate their key synchronously before
// returning, so staleness is bounded to readers already in flight plus the
// TTL. There is no cross-instance invalidation; multi-instance deployments
// converge within the TTL.
type RoleCache struct {
	cache *lru.LRU[string, []types.Role]
	ttl   time.Duration

	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Keys fold tenant case so lookups agree with the storage layer's
// case-insensitive tenant ids.
func cacheKey(tenantID, userID string) string {
	return strings.ToLower(tenantID) + "/" + userID
}

func (c *RoleCache) Get(tenantID, userID string) ([]types.Role, bool) {
	return c.cache.Get(cacheKey(tenantID, userID))
}

func (c *RoleCache) Set(tenantID, userID string, roles []types.Role) {
	c.cache.Add(cacheKey(tenantID, userID), roles)
}

func (c *RoleCache) Invalidate(tenantID, userID string) {
	c.cache.Remove(cacheKey(tenantID, userID))
}

func NewRoleCache(size int, ttl time.Duration, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *RoleCache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	if size <= 0 {
		size = 4096
	}

	c := new(RoleCache)

	c.cache = lru.NewLRU[string, []types.Role](size, nil, ttl)
	c.ttl = ttl
	c.monitor = monitor
	c.logger = logger

	return c
}
