// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/canonical/membership-service/internal/types"
)

func scanTenantRole(row sq.RowScanner) (*types.TenantRole, error) {
	var (
		tr    types.TenantRole
		roles string
	)
	err := row.Scan(&tr.ID, &tr.UserID, &tr.TenantID, &roles, &tr.IsApproved, &tr.CreatedAt, &tr.UpdatedAt)
	if err != nil {
		return nil, err
	}
	tr.Roles = splitRoles(roles)
	return &tr, nil
}

func (s *Storage) GetTenantRole(ctx context.Context, userID, tenantID string) (*types.TenantRole, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTenantRole")
	defer span.End()

	row := s.db.Statement(ctx).
		Select("id", "user_id", "tenant_id", "array_to_string(roles, ',')", "is_approved", "created_at", "updated_at").
		From("tenant_roles").
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Expr("LOWER(tenant_id) = LOWER(?)", tenantID)).
		QueryRowContext(ctx)

	tr, err := scanTenantRole(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tenant role: %w", err)
	}

	return tr, nil
}

func (s *Storage) ListTenantRolesByUser(ctx context.Context, userID string) ([]*types.TenantRole, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListTenantRolesByUser")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "user_id", "tenant_id", "array_to_string(roles, ',')", "is_approved", "created_at", "updated_at").
		From("tenant_roles").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at").
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list tenant roles: %w", err)
	}
	defer rows.Close()

	var result []*types.TenantRole
	for rows.Next() {
		tr, err := scanTenantRole(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tenant role: %w", err)
		}
		result = append(result, tr)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}

// UpsertTenantRole unions roles into the user's record for the tenant in a
// single statement, so concurrent role mutations never lose each other's
// writes. The unique (user_id, LOWER(tenant_id)) index keeps one record per
// tenant per user regardless of the id's case.
func (s *Storage) UpsertTenantRole(ctx context.Context, userID, tenantID string, roles []types.Role, approved bool) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpsertTenantRole")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("failed to generate tenant role ID: %w", err)
	}

	_, err = s.db.Statement(ctx).
		Insert("tenant_roles").
		Columns("id", "user_id", "tenant_id", "roles", "is_approved").
		Values(id.String(), userID, tenantID, sq.Expr("string_to_array(?, ',')", joinRoles(roles)), approved).
		Suffix(`ON CONFLICT (user_id, LOWER(tenant_id)) DO UPDATE SET
			roles = ARRAY(SELECT DISTINCT r FROM unnest(tenant_roles.roles || EXCLUDED.roles) AS r),
			is_approved = tenant_roles.is_approved OR EXCLUDED.is_approved,
			updated_at = NOW()`).
		ExecContext(ctx)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to upsert tenant role: %w", err)
	}

	return nil
}

func (s *Storage) CreateTenantRole(ctx context.Context, userID, tenantID string, roles []types.Role, approved bool) error {
	ctx, span := s.tracer.Start(ctx, "storage.CreateTenantRole")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("failed to generate tenant role ID: %w", err)
	}

	_, err = s.db.Statement(ctx).
		Insert("tenant_roles").
		Columns("id", "user_id", "tenant_id", "roles", "is_approved").
		Values(id.String(), userID, tenantID, sq.Expr("string_to_array(?, ',')", joinRoles(roles)), approved).
		ExecContext(ctx)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to create tenant role: %w", err)
	}

	return nil
}

// RemoveTenantRoles removes the named roles via an atomic array difference,
// then deletes the record only if its role set is still empty. A record is
// never retained with an empty role set.
func (s *Storage) RemoveTenantRoles(ctx context.Context, userID, tenantID string, roles []types.Role) error {
	ctx, span := s.tracer.Start(ctx, "storage.RemoveTenantRoles")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("tenant_roles").
		Set("roles", sq.Expr("ARRAY(SELECT r FROM unnest(roles) AS r WHERE NOT r = ANY(string_to_array(?, ',')))", joinRoles(roles))).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Expr("LOWER(tenant_id) = LOWER(?)", tenantID)).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to remove tenant roles: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	_, err = s.db.Statement(ctx).
		Delete("tenant_roles").
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Expr("LOWER(tenant_id) = LOWER(?)", tenantID)).
		Where(sq.Expr("cardinality(roles) = 0")).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to prune empty tenant role: %w", err)
	}

	return nil
}

// ApproveTenantRole flips a pending record to approved, seeding defaultRole
// when the role set is empty. Reports false when no pending record matched,
// leaving the caller to distinguish "absent" from "already approved".
func (s *Storage) ApproveTenantRole(ctx context.Context, userID, tenantID string, defaultRole types.Role) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ApproveTenantRole")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("tenant_roles").
		Set("is_approved", true).
		Set("roles", sq.Expr("CASE WHEN cardinality(roles) = 0 THEN ARRAY[?] ELSE roles END", string(defaultRole))).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"user_id": userID, "is_approved": false}).
		Where(sq.Expr("LOWER(tenant_id) = LOWER(?)", tenantID)).
		ExecContext(ctx)

	if err != nil {
		return false, fmt.Errorf("failed to approve tenant role: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check rows affected: %w", err)
	}

	return rows > 0, nil
}

// pendingMemberFilter matches pending membership rows plus the sentinel NULL
// row the LEFT JOIN produces for users with no membership at all. In
// tenant-filtered mode the join only sees the target tenant, so a bare NULL
// branch would match every user merely absent from that tenant; the NOT
// EXISTS guard keeps the sentinel to users holding zero memberships anywhere.
func pendingMemberFilter(tenantID string) sq.Sqlizer {
	if tenantID == "" {
		return sq.Or{
			sq.Eq{"tr.is_approved": false},
			sq.Expr("tr.id IS NULL"),
		}
	}
	return sq.Or{
		sq.Eq{"tr.is_approved": false},
		sq.Expr("(tr.id IS NULL AND NOT EXISTS (SELECT 1 FROM tenant_roles o WHERE o.user_id = u.id))"),
	}
}

// ListUnapprovedMembers lists pending join requests, optionally filtered to
// one tenant. Users holding no membership at all surface once with an empty
// tenant id.
func (s *Storage) ListUnapprovedMembers(ctx context.Context, tenantID string) ([]*types.PendingMember, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListUnapprovedMembers")
	defer span.End()

	join := "tenant_roles tr ON tr.user_id = u.id"
	args := []interface{}{}
	if tenantID != "" {
		join = "tenant_roles tr ON tr.user_id = u.id AND LOWER(tr.tenant_id) = LOWER(?)"
		args = append(args, tenantID)
	}

	rows, err := s.db.Statement(ctx).
		Select("u.id", "u.email", "COALESCE(tr.tenant_id, '')", "COALESCE(array_to_string(tr.roles, ','), '')").
		From("users u").
		LeftJoin(join, args...).
		Where(pendingMemberFilter(tenantID)).
		OrderBy("u.id").
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list unapproved members: %w", err)
	}
	defer rows.Close()

	var members []*types.PendingMember
	for rows.Next() {
		var (
			m     types.PendingMember
			roles string
		)
		if err := rows.Scan(&m.UserID, &m.Email, &m.TenantID, &roles); err != nil {
			return nil, fmt.Errorf("failed to scan pending member: %w", err)
		}
		m.Roles = splitRoles(roles)
		members = append(members, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return members, nil
}
