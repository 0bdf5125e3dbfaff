package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/WhineTime/internal/database/generated"
	"github.com/osse101/WhineTime/internal/domain"
	"github.com/osse101/WhineTime/internal/logger"
	"github.com/osse101/WhineTime/internal/repository"
)

// OutcomeRepository stores finished sessions in session_outcomes
type OutcomeRepository struct {
	pool *pgxpool.Pool
	q    *generated.Queries
}

// NewOutcomeRepository creates a new OutcomeRepository
func NewOutcomeRepository(pool *pgxpool.Pool) repository.Outcomes {
	return &OutcomeRepository{
		pool: pool,
		q:    generated.New(pool),
	}
}

// SaveOutcome inserts the outcome. A second save for the same session
// returns domain.ErrOutcomeExists and leaves the first record untouched.
func (r *OutcomeRepository) SaveOutcome(ctx context.Context, o domain.Outcome) error {
	id, err := parseSessionUUID(o.SessionID)
	if err != nil {
		return err
	}

	finishedAt := o.FinishedAt
	if finishedAt.IsZero() {
		finishedAt = time.Now()
	}
	achievements := o.Achievements
	if achievements == nil {
		achievements = []string{}
	}

	rows, err := r.q.SaveOutcome(ctx, generated.SaveOutcomeParams{
		SessionID:      pgtype.UUID{Bytes: id, Valid: true},
		PlayerName:     o.PlayerName,
		Result:         string(o.Result),
		DaysSurvived:   int32(o.DaysSurvived),
		GameHours:      o.GameHours,
		Level:          int32(o.Level),
		Xp:             o.XP,
		Money:          o.Money,
		TotalDebt:      o.TotalDebt,
		Babies:         int32(o.Babies),
		TasksCompleted: int32(o.TasksCompleted),
		Achievements:   achievements,
		FinishedAt:     pgtype.Timestamptz{Time: finishedAt.UTC(), Valid: true},
	})
	if err != nil {
		return fmt.Errorf("%w: save outcome: %w", domain.ErrDatabaseError, err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: %s", domain.ErrOutcomeExists, o.SessionID)
	}

	logger.FromContext(ctx).Debug(LogMsgOutcomeSaved, "session_id", o.SessionID, "result", o.Result)
	return nil
}

// GetOutcome returns the stored outcome or domain.ErrSessionNotFound
func (r *OutcomeRepository) GetOutcome(ctx context.Context, sessionID string) (*domain.Outcome, error) {
	id, err := parseSessionUUID(sessionID)
	if err != nil {
		return nil, err
	}

	row, err := r.q.GetOutcome(ctx, pgtype.UUID{Bytes: id, Valid: true})
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrSessionNotFound, sessionID)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get outcome: %w", domain.ErrDatabaseError, err)
	}

	o := toOutcome(row)
	return &o, nil
}

// GetLeaderboard ranks outcomes: wins first, then days survived, then level.
func (r *OutcomeRepository) GetLeaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	if limit <= 0 || limit > MaxLeaderboardLimit {
		limit = MaxLeaderboardLimit
	}

	rows, err := r.q.GetLeaderboard(ctx, int32(limit))
	if err != nil {
		return nil, fmt.Errorf("%w: leaderboard: %w", domain.ErrDatabaseError, err)
	}

	entries := make([]domain.LeaderboardEntry, 0, len(rows))
	for i, row := range rows {
		entries = append(entries, domain.LeaderboardEntry{Rank: i + 1, Outcome: toOutcome(row)})
	}
	return entries, nil
}

func toOutcome(row generated.SessionOutcome) domain.Outcome {
	return domain.Outcome{
		SessionID:      uuid.UUID(row.SessionID.Bytes).String(),
		PlayerName:     row.PlayerName,
		Result:         domain.OutcomeResult(row.Result),
		DaysSurvived:   int(row.DaysSurvived),
		GameHours:      row.GameHours,
		Level:          int(row.Level),
		XP:             row.Xp,
		Money:          row.Money,
		TotalDebt:      row.TotalDebt,
		Babies:         int(row.Babies),
		TasksCompleted: int(row.TasksCompleted),
		Achievements:   row.Achievements,
		FinishedAt:     row.FinishedAt.Time,
	}
}

func parseSessionUUID(sessionID string) (uuid.UUID, error) {
	id, err := uuid.Parse(sessionID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid session id %q", domain.ErrInvalidInput, sessionID)
	}
	return id, nil
}
