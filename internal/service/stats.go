package service

import (
	"context"
	"fmt"
	"time"

	"github.com/NickyVHDP/pokertracker/internal/metrics"
	"github.com/NickyVHDP/pokertracker/internal/model"
	"github.com/NickyVHDP/pokertracker/internal/repository"
)

// StatsService computes aggregate statistics over stored sessions.
type StatsService struct {
	sessions repository.SessionStore
}

// NewStatsService creates a new StatsService instance.
func NewStatsService(sessions repository.SessionStore) *StatsService {
	return &StatsService{sessions: sessions}
}

// Compute aggregates statistics over all sessions within the optional
// date range. Sessions are loaded in chronological order so the streak
// calculations see play history oldest-first.
func (s *StatsService) Compute(ctx context.Context, from, to *time.Time) (*model.Stats, error) {
	sessions, err := s.sessions.SessionsInRange(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load sessions for stats: %w", err)
	}
	return metrics.Compute(sessions), nil
}
