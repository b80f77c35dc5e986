package repository

import (
	"context"
	"database/sql"
	"fmt"
)

type StatsRepository struct {
	db *sql.DB
}

func NewStatsRepository(db *sql.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

var _ Stats = (*StatsRepository)(nil)

const (
	countUsersSQL = `SELECT COUNT(*) FROM users`
	countNotesSQL = `SELECT COUNT(*) FROM notes`
)

func (r *StatsRepository) CountUsers(ctx context.Context) (int, error) {
	return r.countRows(ctx, countUsersSQL, "users")
}

func (r *StatsRepository) CountNotes(ctx context.Context) (int, error) {
	return r.countRows(ctx, countNotesSQL, "notes")
}

func (r *StatsRepository) countRows(ctx context.Context, query, table string) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return n, nil
}
