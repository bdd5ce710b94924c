// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

// User is an identity-provider subject known to the system. Users are
// provisioned lazily on first authentication or on invitation acceptance and
// are never hard-deleted by this subsystem.
type User struct {
	ID            string    `db:"id"`
	Email         string    `db:"email"`
	Name          string    `db:"name"`
	IsSysAdmin    bool      `db:"is_sysadmin"`
	IsLockedOut   bool      `db:"is_locked_out"`
	LockoutReason string    `db:"lockout_reason"`
	LockedBy      string    `db:"locked_by"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

// TenantRole is a user's membership record for one tenant: a role set plus
// an approval flag. A user holds at most one TenantRole per tenant.
type TenantRole struct {
	ID         string    `db:"id"`
	UserID     string    `db:"user_id"`
	TenantID   string    `db:"tenant_id"`
	Roles      []Role    `db:"roles"`
	IsApproved bool      `db:"is_approved"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

type Tenant struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Domain    string    `db:"domain"`
	Enabled   bool      `db:"enabled"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Agent is a resource carrying its own access-control list, independent of
// tenant-role permissions. The three access sets are hierarchical: owners are
// writers, writers are readers.
type Agent struct {
	ID           string    `db:"id"`
	Name         string    `db:"name"`
	TenantID     *string   `db:"tenant_id"`
	SystemScoped bool      `db:"system_scoped"`
	OwnerAccess  []string  `db:"owner_access"`
	WriteAccess  []string  `db:"write_access"`
	ReadAccess   []string  `db:"read_access"`
	CreatedAt    time.Time `db:"created_at"`
}

type InvitationStatus string

const (
	InvitationPending  InvitationStatus = "pending"
	InvitationAccepted InvitationStatus = "accepted"
	InvitationExpired  InvitationStatus = "expired"
)

// Invitation grants a named email a starting role set in a tenant upon
// acceptance. Accepted and Expired are terminal.
type Invitation struct {
	ID        string           `db:"id"`
	Email     string           `db:"email"`
	TenantID  string           `db:"tenant_id"`
	Roles     []Role           `db:"roles"`
	Token     string           `db:"token"`
	Status    InvitationStatus `db:"status"`
	ExpiresAt time.Time        `db:"expires_at"`
	CreatedAt time.Time        `db:"created_at"`
	UpdatedAt time.Time        `db:"updated_at"`
}

func (i *Invitation) IsExpired(now time.Time) bool {
	return now.After(i.ExpiresAt)
}

// PendingMember is a join request awaiting approval. Users that exist but
// hold no tenant membership at all are surfaced with an empty TenantID.
type PendingMember struct {
	UserID   string
	Email    string
	TenantID string
	Roles    []Role
}
