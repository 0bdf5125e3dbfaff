package repository

import (
	"context"

	"github.com/osse101/WhineTime/internal/domain"
)

// Outcomes persists finished sessions. SaveOutcome returns
// domain.ErrOutcomeExists when the session already has a record.
type Outcomes interface {
	SaveOutcome(ctx context.Context, outcome domain.Outcome) error
	GetOutcome(ctx context.Context, sessionID string) (*domain.Outcome, error)
	GetLeaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error)
}
