package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/WhineTime/internal/actor"
	"github.com/osse101/WhineTime/internal/clock"
	"github.com/osse101/WhineTime/internal/config"
	"github.com/osse101/WhineTime/internal/domain"
	"github.com/osse101/WhineTime/internal/event"
	"github.com/osse101/WhineTime/internal/game"
)

var testStart = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// calmBalance freezes every need so sessions only end when a test says so
func calmBalance() config.Balance {
	b := config.DefaultBalance()
	for n := range b.Actors.Baby.AwakeRates {
		b.Actors.Baby.AwakeRates[n] = 0
	}
	for n := range b.Actors.Baby.SleepingRates {
		b.Actors.Baby.SleepingRates[n] = 0
	}
	b.Actors.Baby.DiscomfortRate = 0
	b.Actors.Baby.ColicComfortPerLevel = 0
	b.Actors.Caregiver.HungerRate = 0
	b.Actors.Caregiver.TirednessRate = 0
	b.Actors.Caregiver.StressRate = 0
	b.Actors.Caregiver.StressRecoveryRate = 0
	b.Actors.Caregiver.CryingStressRate = 0
	return b
}

func calmBalances(profile string) (config.Balance, error) {
	if profile == "harsh" {
		return config.DefaultBalance(), nil
	}
	if _, err := config.BalanceForProfile(profile); err != nil {
		return config.Balance{}, err
	}
	return calmBalance(), nil
}

type fixture struct {
	svc  Service
	repo *MockOutcomes
	bus  *recordingBus
}

func newFixture(t *testing.T, opts Options) fixture {
	t.Helper()
	repo := &MockOutcomes{}
	bus := newRecordingBus()
	if opts.Balances == nil {
		opts.Balances = calmBalances
	}
	if opts.Clock == nil {
		opts.Clock = clock.NewSimulatedClock(testStart)
	}
	return fixture{svc: NewService(repo, bus, opts), repo: repo, bus: bus}
}

func seed(v int64) *int64 { return &v }

func TestCreate(t *testing.T) {
	f := newFixture(t, Options{})
	ctx := context.Background()

	t.Run("defaults", func(t *testing.T) {
		sum, err := f.svc.Create(ctx, CreateRequest{})

		require.NoError(t, err)
		assert.NotEmpty(t, sum.SessionID)
		assert.Equal(t, config.ProfileNormal, sum.Profile)
		assert.Equal(t, testStart, sum.CreatedAt)
		assert.Equal(t, game.StatusPlaying, sum.Snapshot.Status)
		assert.Len(t, sum.Snapshot.Actors, 3, "player, baby and station")
	})

	t.Run("named player", func(t *testing.T) {
		sum, err := f.svc.Create(ctx, CreateRequest{PlayerName: "Robin", Gender: domain.GenderMale, Profile: config.ProfileHard, Seed: seed(7)})

		require.NoError(t, err)
		player, ok := findActor(sum.Snapshot, sum.Snapshot.PlayerID)
		require.True(t, ok)
		assert.Equal(t, "Robin", player.Name)
	})

	t.Run("publishes created event", func(t *testing.T) {
		created := f.bus.ofType(event.SessionCreated)
		require.Len(t, created, 2)
		payload, err := event.DecodePayload[event.SessionCreatedPayloadV1](created[1].Payload)
		require.NoError(t, err)
		assert.Equal(t, "Robin", payload.PlayerName)
		assert.Equal(t, config.ProfileHard, payload.Profile)
	})

	t.Run("rejects bad input", func(t *testing.T) {
		_, err := f.svc.Create(ctx, CreateRequest{Profile: "nightmare"})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)

		_, err = f.svc.Create(ctx, CreateRequest{Gender: "robot"})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	assert.Equal(t, 2, f.svc.ActiveCount())
}

func TestGet_Unknown(t *testing.T) {
	f := newFixture(t, Options{})

	_, err := f.svc.Get(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestAdvance(t *testing.T) {
	f := newFixture(t, Options{})
	ctx := context.Background()
	sum, err := f.svc.Create(ctx, CreateRequest{})
	require.NoError(t, err)

	tests := []struct {
		name    string
		dt      time.Duration
		wantErr error
	}{
		{"zero", 0, domain.ErrInvalidInput},
		{"negative", -time.Hour, domain.ErrInvalidInput},
		{"too long", 25 * time.Hour, domain.ErrInvalidInput},
		{"one hour", time.Hour, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap, err := f.svc.Advance(ctx, sum.SessionID, tt.dt)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, 1.0, snap.Hours, 1e-6)
		})
	}

	_, err = f.svc.Advance(ctx, "missing", time.Hour)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestAdvance_PublishesDaySettled(t *testing.T) {
	f := newFixture(t, Options{})
	ctx := context.Background()
	sum, err := f.svc.Create(ctx, CreateRequest{})
	require.NoError(t, err)

	_, err = f.svc.Advance(ctx, sum.SessionID, 24*time.Hour)
	require.NoError(t, err)
	_, err = f.svc.Advance(ctx, sum.SessionID, time.Hour)
	require.NoError(t, err)

	settled := f.bus.ofType(event.DaySettled)
	require.Len(t, settled, 1)
	assert.Equal(t, sum.SessionID, settled[0].SessionID())
	_, ok := settled[0].Payload.(game.DaySummary)
	assert.True(t, ok)
}

func TestAdvance_LossRecordsOutcomeOnce(t *testing.T) {
	// ARRANGE
	f := newFixture(t, Options{})
	ctx := context.Background()
	sum, err := f.svc.Create(ctx, CreateRequest{Profile: "harsh", Seed: seed(1)})
	require.NoError(t, err)

	var saved domain.Outcome
	f.repo.On("SaveOutcome", mock.Anything, mock.MatchedBy(func(o domain.Outcome) bool {
		return o.SessionID == sum.SessionID
	})).Run(func(args mock.Arguments) {
		saved = args.Get(1).(domain.Outcome)
	}).Return(nil).Once()

	// ACT
	var finishedErr error
	for i := 0; i < 5 && finishedErr == nil; i++ {
		_, finishedErr = f.svc.Advance(ctx, sum.SessionID, 24*time.Hour)
	}

	// ASSERT
	require.ErrorIs(t, finishedErr, domain.ErrSessionFinished)
	f.repo.AssertExpectations(t)
	assert.Equal(t, domain.OutcomeLost, saved.Result)
	assert.Equal(t, testStart, saved.FinishedAt)
	assert.Len(t, f.bus.ofType(event.SessionFinished), 1)

	_, err = f.svc.Act(ctx, sum.SessionID, Action{Name: ActionWashBottles})
	assert.ErrorIs(t, err, domain.ErrSessionFinished)

	snap, err := f.svc.Get(ctx, sum.SessionID)
	require.NoError(t, err, "finished sessions stay readable")
	assert.Equal(t, game.StatusLost, snap.Status)

	out, err := f.svc.End(ctx, sum.SessionID)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeLost, out.Result)
	f.repo.AssertNumberOfCalls(t, "SaveOutcome", 1)
}

func TestEnd(t *testing.T) {
	ctx := context.Background()

	t.Run("playing game is abandoned", func(t *testing.T) {
		f := newFixture(t, Options{})
		sum, err := f.svc.Create(ctx, CreateRequest{})
		require.NoError(t, err)
		f.repo.On("SaveOutcome", mock.Anything, mock.Anything).Return(nil).Once()

		out, err := f.svc.End(ctx, sum.SessionID)

		require.NoError(t, err)
		assert.Equal(t, domain.OutcomeAbandoned, out.Result)
		assert.Equal(t, sum.SessionID, out.SessionID)
		_, err = f.svc.Get(ctx, sum.SessionID)
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)
		_, err = f.svc.End(ctx, sum.SessionID)
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)
		assert.Equal(t, 0, f.svc.ActiveCount())
	})

	t.Run("save failure keeps session", func(t *testing.T) {
		f := newFixture(t, Options{})
		sum, err := f.svc.Create(ctx, CreateRequest{})
		require.NoError(t, err)
		f.repo.On("SaveOutcome", mock.Anything, mock.Anything).Return(domain.ErrDatabaseError).Once()

		_, err = f.svc.End(ctx, sum.SessionID)

		assert.ErrorIs(t, err, domain.ErrDatabaseError)
		_, err = f.svc.Get(ctx, sum.SessionID)
		assert.NoError(t, err)
	})

	t.Run("already stored counts as saved", func(t *testing.T) {
		f := newFixture(t, Options{})
		sum, err := f.svc.Create(ctx, CreateRequest{})
		require.NoError(t, err)
		f.repo.On("SaveOutcome", mock.Anything, mock.Anything).Return(domain.ErrOutcomeExists).Once()

		out, err := f.svc.End(ctx, sum.SessionID)

		require.NoError(t, err)
		assert.Equal(t, domain.OutcomeAbandoned, out.Result)
	})
}

func TestEnd_ReleasesSessionLocks(t *testing.T) {
	// ARRANGE
	ctx := context.Background()
	f := newFixture(t, Options{})
	f.repo.On("SaveOutcome", mock.Anything, mock.Anything).Return(nil)

	var ids []string
	for i := 0; i < 50; i++ {
		sum, err := f.svc.Create(ctx, CreateRequest{})
		require.NoError(t, err)
		ids = append(ids, sum.SessionID)
	}

	// ACT
	for _, id := range ids {
		_, err := f.svc.End(ctx, id)
		require.NoError(t, err)
	}
	svc := f.svc.(*service)
	svc.wg.Wait()

	// ASSERT
	assert.Equal(t, 0, f.svc.ActiveCount())
	assert.Equal(t, 0, svc.locks.Len(), "ended sessions keep no mutex")
}

func TestOutcome(t *testing.T) {
	f := newFixture(t, Options{})
	ctx := context.Background()
	sum, err := f.svc.Create(ctx, CreateRequest{})
	require.NoError(t, err)

	live, err := f.svc.Outcome(ctx, sum.SessionID)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeAbandoned, live.Result, "preview of a game still playing")
	f.repo.AssertNotCalled(t, "SaveOutcome", mock.Anything, mock.Anything)

	stored := &domain.Outcome{SessionID: "old", Result: domain.OutcomeWon}
	f.repo.On("GetOutcome", mock.Anything, "old").Return(stored, nil).Once()
	got, err := f.svc.Outcome(ctx, "old")
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeWon, got.Result)
}

func TestAdvanceAll(t *testing.T) {
	f := newFixture(t, Options{})
	ctx := context.Background()
	var ids []string
	for i := 0; i < 3; i++ {
		sum, err := f.svc.Create(ctx, CreateRequest{})
		require.NoError(t, err)
		ids = append(ids, sum.SessionID)
	}

	advanced := f.svc.AdvanceAll(ctx, 30*time.Minute)

	assert.Equal(t, 3, advanced)
	for _, id := range ids {
		snap, err := f.svc.Get(ctx, id)
		require.NoError(t, err)
		assert.InDelta(t, 0.5, snap.Hours, 1e-6)
	}
	assert.Equal(t, 0, f.svc.AdvanceAll(ctx, 0))
}

func TestLeaderboard(t *testing.T) {
	f := newFixture(t, Options{})
	entries := []domain.LeaderboardEntry{{Rank: 1, Outcome: domain.Outcome{SessionID: "a"}}}
	f.repo.On("GetLeaderboard", mock.Anything, DefaultLeaderboardSize).Return(entries, nil).Once()
	f.repo.On("GetLeaderboard", mock.Anything, 3).Return(nil, errors.New("boom")).Once()

	got, err := f.svc.Leaderboard(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, entries, got)

	_, err = f.svc.Leaderboard(context.Background(), 3)
	assert.Error(t, err)
}

func TestEviction_RecordsAbandoned(t *testing.T) {
	// ARRANGE
	f := newFixture(t, Options{CacheSize: 1})
	ctx := context.Background()
	first, err := f.svc.Create(ctx, CreateRequest{})
	require.NoError(t, err)

	evicted := make(chan domain.Outcome, 1)
	f.repo.On("SaveOutcome", mock.Anything, mock.MatchedBy(func(o domain.Outcome) bool {
		return o.SessionID == first.SessionID
	})).Run(func(args mock.Arguments) {
		evicted <- args.Get(1).(domain.Outcome)
	}).Return(nil).Once()

	// ACT
	_, err = f.svc.Create(ctx, CreateRequest{})
	require.NoError(t, err)

	// ASSERT
	select {
	case o := <-evicted:
		assert.Equal(t, domain.OutcomeAbandoned, o.Result)
	case <-time.After(2 * time.Second):
		t.Fatal("evicted session was not recorded")
	}
	_, err = f.svc.Get(ctx, first.SessionID)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestEviction_TTL(t *testing.T) {
	f := newFixture(t, Options{TTL: 50 * time.Millisecond})
	ctx := context.Background()
	sum, err := f.svc.Create(ctx, CreateRequest{})
	require.NoError(t, err)
	f.repo.On("SaveOutcome", mock.Anything, mock.Anything).Return(nil).Once()

	assert.Eventually(t, func() bool {
		_, err := f.svc.Get(ctx, sum.SessionID)
		return errors.Is(err, domain.ErrSessionNotFound)
	}, 2*time.Second, 20*time.Millisecond)
}

func TestShutdown_AbandonsLiveSessions(t *testing.T) {
	f := newFixture(t, Options{})
	ctx := context.Background()
	for i := 0; i < 2; i++ {
		_, err := f.svc.Create(ctx, CreateRequest{})
		require.NoError(t, err)
	}
	f.repo.On("SaveOutcome", mock.Anything, mock.MatchedBy(func(o domain.Outcome) bool {
		return o.Result == domain.OutcomeAbandoned
	})).Return(nil).Twice()

	require.NoError(t, f.svc.Shutdown(ctx))

	f.repo.AssertExpectations(t)
	assert.Equal(t, 0, f.svc.ActiveCount())
}

func TestAct_ConcurrentCallsSerialise(t *testing.T) {
	f := newFixture(t, Options{})
	ctx := context.Background()
	sum, err := f.svc.Create(ctx, CreateRequest{})
	require.NoError(t, err)
	before := sum.Snapshot.Resources[domain.ResourceDiapers]

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = f.svc.Act(ctx, sum.SessionID, Action{Name: ActionBuyItem, Item: domain.ResourceDiapers, Quantity: 1})
		}()
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = f.svc.Advance(ctx, sum.SessionID, time.Minute)
		}()
	}
	wg.Wait()

	snap, err := f.svc.Get(ctx, sum.SessionID)
	require.NoError(t, err)
	assert.Equal(t, before+20, snap.Resources[domain.ResourceDiapers])
	assert.InDelta(t, 20.0/60.0, snap.Hours, 1e-6)
}

func findActor(snap game.Snapshot, id string) (actor.Summary, bool) {
	for _, a := range snap.Actors {
		if a.ID == id {
			return a, true
		}
	}
	return actor.Summary{}, false
}
