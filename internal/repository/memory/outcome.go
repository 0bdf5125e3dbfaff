// Package memory keeps outcomes and session events in process. It backs tests and the offline
// simulator; nothing survives a restart.
package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/osse101/WhineTime/internal/domain"
	"github.com/osse101/WhineTime/internal/repository"
)

// OutcomeRepository is a map guarded by a RWMutex
type OutcomeRepository struct {
	mu       sync.RWMutex
	outcomes map[string]domain.Outcome
}

var _ repository.Outcomes = (*OutcomeRepository)(nil)

// NewOutcomeRepository creates an empty store
func NewOutcomeRepository() *OutcomeRepository {
	return &OutcomeRepository{outcomes: make(map[string]domain.Outcome)}
}

// SaveOutcome stores the first outcome recorded for a session
func (r *OutcomeRepository) SaveOutcome(_ context.Context, o domain.Outcome) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.outcomes[o.SessionID]; ok {
		return domain.ErrOutcomeExists
	}
	o.Achievements = slices.Clone(o.Achievements)
	r.outcomes[o.SessionID] = o
	return nil
}

// GetOutcome returns a copy of the stored outcome
func (r *OutcomeRepository) GetOutcome(_ context.Context, sessionID string) (*domain.Outcome, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.outcomes[sessionID]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	o.Achievements = slices.Clone(o.Achievements)
	return &o, nil
}

// GetLeaderboard ranks wins first, then days survived, then level, with
// earlier finishers ahead on ties
func (r *OutcomeRepository) GetLeaderboard(_ context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	r.mu.RLock()
	all := make([]domain.Outcome, 0, len(r.outcomes))
	for _, o := range r.outcomes {
		all = append(all, o)
	}
	r.mu.RUnlock()

	slices.SortFunc(all, compareOutcomes)
	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}

	entries := make([]domain.LeaderboardEntry, len(all))
	for i, o := range all {
		entries[i] = domain.LeaderboardEntry{Rank: i + 1, Outcome: o}
	}
	return entries, nil
}

func compareOutcomes(a, b domain.Outcome) int {
	aWon, bWon := a.Result == domain.OutcomeWon, b.Result == domain.OutcomeWon
	if aWon != bWon {
		if aWon {
			return -1
		}
		return 1
	}
	return cmp.Or(
		cmp.Compare(b.DaysSurvived, a.DaysSurvived),
		cmp.Compare(b.Level, a.Level),
		a.FinishedAt.Compare(b.FinishedAt),
		cmp.Compare(a.SessionID, b.SessionID),
	)
}
