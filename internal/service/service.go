package service

import (
	"context"

	"notes_auth/internal/config"
	"notes_auth/internal/models"
	"notes_auth/internal/repository"
)

// Authorization owns the credential verification and session-issuance flow.
type Authorization interface {
	Register(ctx context.Context, in RegisterInput) (*models.User, error)
	Login(ctx context.Context, username, password string) (string, *models.User, error)
	ParseToken(accessToken string) (*Claims, error)
	UserByID(ctx context.Context, id int) (*models.User, error)
}

// Stats exposes read-only aggregate counters for the admin endpoint.
type Stats interface {
	Snapshot(ctx context.Context) (StatsSnapshot, error)
}

//
// Root Service aggregates all sub-services.
//

type Service struct {
	Authorization
	Stats
}

// NewService wires the repository layer into concrete services. The config is
// loaded once in main and immutable from here on; the signing secret never
// lives in a package-level variable.
func NewService(repos *repository.Repository, cfg config.Config) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Users, cfg),
		Stats:         NewStatsService(repos.Stats),
	}
}
