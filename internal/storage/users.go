// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/membership-service/internal/types"
)

var userColumns = []string{"id", "email", "name", "is_sysadmin", "is_locked_out", "lockout_reason", "locked_by", "created_at", "updated_at"}

func scanUser(row sq.RowScanner) (*types.User, error) {
	var u types.User
	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.IsSysAdmin, &u.IsLockedOut, &u.LockoutReason, &u.LockedBy, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Storage) GetUserByID(ctx context.Context, id string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserByID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(userColumns...).
		From("users").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx)

	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return u, nil
}

func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserByEmail")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(userColumns...).
		From("users").
		Where(sq.Expr("LOWER(email) = LOWER(?)", email)).
		QueryRowContext(ctx)

	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return u, nil
}

// CreateUser inserts the user record. The is_sysadmin flag is computed inside
// the insert itself so the very first user in the system becomes a system
// admin without a racy check-then-act round trip.
func (s *Storage) CreateUser(ctx context.Context, user *types.User) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateUser")
	defer span.End()

	row := s.db.Statement(ctx).
		Insert("users").
		Columns("id", "email", "name", "is_sysadmin").
		Values(user.ID, user.Email, user.Name, sq.Expr("NOT EXISTS (SELECT 1 FROM users)")).
		Suffix("RETURNING " + joinColumns(userColumns)).
		QueryRowContext(ctx)

	created, err := scanUser(row)
	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	return created, nil
}

func (s *Storage) UpdateUser(ctx context.Context, user *types.User) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateUser")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("users").
		Set("email", user.Email).
		Set("name", user.Name).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": user.ID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) AnyUserExists(ctx context.Context) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.AnyUserExists")
	defer span.End()

	var exists bool
	err := s.db.Statement(ctx).
		Select("EXISTS (SELECT 1 FROM users)").
		QueryRowContext(ctx).
		Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("failed to probe users: %w", err)
	}

	return exists, nil
}

func (s *Storage) ListSystemAdmins(ctx context.Context) ([]*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListSystemAdmins")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(userColumns...).
		From("users").
		Where(sq.Eq{"is_sysadmin": true}).
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list system admins: %w", err)
	}
	defer rows.Close()

	var users []*types.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return users, nil
}

func (s *Storage) ListUsersByRole(ctx context.Context, tenantID string, role types.Role) ([]*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListUsersByRole")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("u.id", "u.email", "u.name", "u.is_sysadmin", "u.is_locked_out", "u.lockout_reason", "u.locked_by", "u.created_at", "u.updated_at").
		From("users u").
		Join("tenant_roles tr ON tr.user_id = u.id").
		Where(sq.Eq{"tr.tenant_id": tenantID, "tr.is_approved": true}).
		Where(sq.Expr("? = ANY(tr.roles)", string(role))).
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list users by role: %w", err)
	}
	defer rows.Close()

	var users []*types.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return users, nil
}

func (s *Storage) SetUserLockout(ctx context.Context, userID string, locked bool, reason, lockedBy string) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetUserLockout")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("users").
		Set("is_locked_out", locked).
		Set("lockout_reason", reason).
		Set("locked_by", lockedBy).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": userID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to set user lockout: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

// PromoteFirstSysAdmin grants is_sysadmin to userID in a single conditional
// update guarded on no system admin existing, so two concurrent bootstrap
// calls cannot both win.
func (s *Storage) PromoteFirstSysAdmin(ctx context.Context, userID string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.PromoteFirstSysAdmin")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("users").
		Set("is_sysadmin", true).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": userID}).
		Where(sq.Expr("NOT EXISTS (SELECT 1 FROM users WHERE is_sysadmin)")).
		ExecContext(ctx)

	if err != nil {
		return false, fmt.Errorf("failed to promote bootstrap admin: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check rows affected: %w", err)
	}

	return rows > 0, nil
}
