// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/canonical/membership-service/internal/types"
)

const agentColumns = "id, name, tenant_id, system_scoped, array_to_string(owner_access, ','), array_to_string(write_access, ','), array_to_string(read_access, ','), created_at"

func scanAgent(row sq.RowScanner) (*types.Agent, error) {
	var (
		a                  types.Agent
		owner, write, read string
	)
	err := row.Scan(&a.ID, &a.Name, &a.TenantID, &a.SystemScoped, &owner, &write, &read, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	a.OwnerAccess = splitUsers(owner)
	a.WriteAccess = splitUsers(write)
	a.ReadAccess = splitUsers(read)
	return &a, nil
}

func splitUsers(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

func (s *Storage) CreateAgent(ctx context.Context, agent *types.Agent) (*types.Agent, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateAgent")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate agent ID: %w", err)
	}

	row := s.db.Statement(ctx).
		Insert("agents").
		Columns("id", "name", "tenant_id", "system_scoped", "owner_access", "write_access", "read_access").
		Values(
			id.String(),
			agent.Name,
			agent.TenantID,
			agent.SystemScoped,
			sq.Expr("string_to_array(?, ',')", strings.Join(agent.OwnerAccess, ",")),
			sq.Expr("string_to_array(?, ',')", strings.Join(agent.WriteAccess, ",")),
			sq.Expr("string_to_array(?, ',')", strings.Join(agent.ReadAccess, ",")),
		).
		Suffix("RETURNING " + agentColumns).
		QueryRowContext(ctx)

	created, err := scanAgent(row)
	if err != nil {
		return nil, fmt.Errorf("failed to insert agent: %w", err)
	}

	return created, nil
}

func (s *Storage) GetAgentByID(ctx context.Context, id string) (*types.Agent, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetAgentByID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(agentColumns).
		From("agents").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx)

	a, err := scanAgent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get agent: %w", err)
	}

	return a, nil
}

func (s *Storage) ListAgentsByTenant(ctx context.Context, tenantID string) ([]*types.Agent, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListAgentsByTenant")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(agentColumns).
		From("agents").
		Where(sq.Or{
			sq.Expr("LOWER(tenant_id) = LOWER(?)", tenantID),
			sq.Eq{"system_scoped": true},
		}).
		OrderBy("created_at").
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list agents: %w", err)
	}
	defer rows.Close()

	var agents []*types.Agent
	for rows.Next() {
		a, err := scanAgent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan agent: %w", err)
		}
		agents = append(agents, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return agents, nil
}

func (s *Storage) UpdateAgentAccess(ctx context.Context, id string, owner, write, read []string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateAgentAccess")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("agents").
		Set("owner_access", sq.Expr("string_to_array(?, ',')", strings.Join(owner, ","))).
		Set("write_access", sq.Expr("string_to_array(?, ',')", strings.Join(write, ","))).
		Set("read_access", sq.Expr("string_to_array(?, ',')", strings.Join(read, ","))).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update agent access: %w", err)
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
