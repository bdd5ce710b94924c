// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/canonical/membership-service/internal/types"
)

const invitationColumns = "id, email, tenant_id, array_to_string(roles, ','), token, status, expires_at, created_at, updated_at"

func scanInvitation(row sq.RowScanner) (*types.Invitation, error) {
	var (
		inv   types.Invitation
		roles string
	)
	err := row.Scan(&inv.ID, &inv.Email, &inv.TenantID, &roles, &inv.Token, &inv.Status, &inv.ExpiresAt, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		return nil, err
	}
	inv.Roles = splitRoles(roles)
	return &inv, nil
}

func (s *Storage) CreateInvitation(ctx context.Context, invite *types.Invitation) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateInvitation")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate invitation ID: %w", err)
	}

	row := s.db.Statement(ctx).
		Insert("invitations").
		Columns("id", "email", "tenant_id", "roles", "token", "status", "expires_at").
		Values(id.String(), invite.Email, invite.TenantID, sq.Expr("string_to_array(?, ',')", joinRoles(invite.Roles)), invite.Token, types.InvitationPending, invite.ExpiresAt).
		Suffix("RETURNING " + invitationColumns).
		QueryRowContext(ctx)

	created, err := scanInvitation(row)
	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to insert invitation: %w", err)
	}

	return created, nil
}

func (s *Storage) GetInvitationByToken(ctx context.Context, token string) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetInvitationByToken")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(invitationColumns).
		From("invitations").
		Where(sq.Eq{"token": token}).
		QueryRowContext(ctx)

	inv, err := scanInvitation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get invitation: %w", err)
	}

	return inv, nil
}

func (s *Storage) GetPendingInvitationByEmail(ctx context.Context, email string) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetPendingInvitationByEmail")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(invitationColumns).
		From("invitations").
		Where(sq.Expr("LOWER(email) = LOWER(?)", email)).
		Where(sq.Eq{"status": types.InvitationPending}).
		OrderBy("created_at DESC").
		Limit(1).
		QueryRowContext(ctx)

	inv, err := scanInvitation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get invitation by email: %w", err)
	}

	return inv, nil
}

// AcceptInvitation transitions the invitation from pending to accepted in a
// single conditional update, so a token is consumed at most once. ErrNotFound
// covers unknown, terminal and expired tokens alike.
func (s *Storage) AcceptInvitation(ctx context.Context, token string, now time.Time) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.AcceptInvitation")
	defer span.End()

	row := s.db.Statement(ctx).
		Update("invitations").
		Set("status", types.InvitationAccepted).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"token": token, "status": types.InvitationPending}).
		Where(sq.Gt{"expires_at": now}).
		Suffix("RETURNING " + invitationColumns).
		QueryRowContext(ctx)

	inv, err := scanInvitation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to accept invitation: %w", err)
	}

	return inv, nil
}

// ExpireInvitation marks a pending invitation past its deadline as expired.
// The conditional update guarantees the pending-to-expired transition fires
// exactly once no matter how many callers observe the stale record.
func (s *Storage) ExpireInvitation(ctx context.Context, token string, now time.Time) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ExpireInvitation")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("invitations").
		Set("status", types.InvitationExpired).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"token": token, "status": types.InvitationPending}).
		Where(sq.LtOrEq{"expires_at": now}).
		ExecContext(ctx)

	if err != nil {
		return false, fmt.Errorf("failed to expire invitation: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check rows affected: %w", err)
	}

	return rows > 0, nil
}
