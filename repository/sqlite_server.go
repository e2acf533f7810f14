package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/kadirgun/peyk/database"
	"github.com/kadirgun/peyk/models"
	"github.com/kadirgun/peyk/pkg"
)

// sqliteServerRepo, ServerRepository interface'inin SQLite implementasyonu.
type sqliteServerRepo struct {
	db database.TxQuerier
}

// NewSQLiteServerRepo, constructor — interface döner.
func NewSQLiteServerRepo(db database.TxQuerier) ServerRepository {
	return &sqliteServerRepo{db: db}
}

func (r *sqliteServerRepo) GetByID(ctx context.Context, id string) (*models.Server, error) {
	query := `SELECT id, name, owner_id, created_at FROM servers WHERE id = ?`

	srv := &models.Server{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&srv.ID, &srv.Name, &srv.OwnerID, &srv.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get server by id: %w", err)
	}

	return srv, nil
}

func (r *sqliteServerRepo) IsMember(ctx context.Context, serverID, userID string) (bool, error) {
	query := `SELECT 1 FROM server_members WHERE server_id = ? AND user_id = ? LIMIT 1`

	var dummy int
	err := r.db.QueryRowContext(ctx, query, serverID, userID).Scan(&dummy)

	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check server membership: %w", err)
	}

	return true, nil
}

func (r *sqliteServerRepo) FindMembership(ctx context.Context, serverID, userID string) (*models.ServerMember, error) {
	query := `
		SELECT id, server_id, user_id, joined_at
		FROM server_members
		WHERE server_id = ? AND user_id = ?`

	m := &models.ServerMember{}
	err := r.db.QueryRowContext(ctx, query, serverID, userID).Scan(
		&m.ID, &m.ServerID, &m.UserID, &m.JoinedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find membership: %w", err)
	}

	return m, nil
}
