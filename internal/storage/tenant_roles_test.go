// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"strings"
	"testing"
)

func TestPendingMemberFilter(t *testing.T) {
	t.Run("unfiltered listing keeps the bare sentinel branch", func(t *testing.T) {
		sql, args, err := pendingMemberFilter("").ToSql()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(sql, "tr.id IS NULL") {
			t.Errorf("expected the sentinel branch in %q", sql)
		}
		if strings.Contains(sql, "NOT EXISTS") {
			t.Errorf("unfiltered listing must not restrict the sentinel, got %q", sql)
		}
		if len(args) != 1 {
			t.Errorf("expected 1 argument, got %v", args)
		}
	})

	// A user approved in another tenant is not a pending member of the
	// filtered tenant; the sentinel only covers users with no membership
	// anywhere.
	t.Run("tenant-filtered listing guards the sentinel", func(t *testing.T) {
		sql, _, err := pendingMemberFilter("acme").ToSql()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(sql, "tr.id IS NULL AND NOT EXISTS (SELECT 1 FROM tenant_roles") {
			t.Errorf("expected the no-membership-anywhere guard in %q", sql)
		}
	})
}
