package service

import (
	"context"
	"time"

	"notes_auth/internal/repository"
)

// StatsSnapshot is the admin stats payload.
type StatsSnapshot struct {
	UsersCount    int   `json:"usersCount"`
	NotesCount    int   `json:"notesCount"`
	UptimeSeconds int64 `json:"uptime"`
}

// StatsService serves read-only aggregate counts plus process uptime.
type StatsService struct {
	stats     repository.Stats
	startedAt time.Time
}

func NewStatsService(stats repository.Stats) *StatsService {
	return &StatsService{stats: stats, startedAt: time.Now()}
}

func (s *StatsService) Snapshot(ctx context.Context) (StatsSnapshot, error) {
	users, err := s.stats.CountUsers(ctx)
	if err != nil {
		return StatsSnapshot{}, err
	}
	notes, err := s.stats.CountNotes(ctx)
	if err != nil {
		return StatsSnapshot{}, err
	}
	return StatsSnapshot{
		UsersCount:    users,
		NotesCount:    notes,
		UptimeSeconds: int64(time.Since(s.startedAt).Seconds()),
	}, nil
}
