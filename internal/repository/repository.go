package repository

import (
	"context"
	"database/sql"
	"errors"

	"notes_auth/internal/models"
)

// ErrDuplicateUser is returned by Create when the UNIQUE constraint on
// username fires. The constraint is the authoritative guard against
// concurrent registration; callers may pre-check for a friendlier fast path
// but must still handle this error from the insert itself.
var ErrDuplicateUser = errors.New("user already exists")

type Users interface {
	Create(ctx context.Context, username, displayName, passwordHash string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByID(ctx context.Context, id int) (*models.User, error)
}

type Stats interface {
	CountUsers(ctx context.Context) (int, error)
	CountNotes(ctx context.Context) (int, error)
}

type Repository struct {
	Users Users
	Stats Stats
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Users: NewUserRepository(db),
		Stats: NewStatsRepository(db),
	}
}
