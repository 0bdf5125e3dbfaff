package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/WhineTime/internal/clock"
	"github.com/osse101/WhineTime/internal/concurrency"
	"github.com/osse101/WhineTime/internal/config"
	"github.com/osse101/WhineTime/internal/domain"
	"github.com/osse101/WhineTime/internal/event"
	"github.com/osse101/WhineTime/internal/game"
	"github.com/osse101/WhineTime/internal/logger"
	"github.com/osse101/WhineTime/internal/repository"
	"github.com/osse101/WhineTime/internal/utils"
)

// Service hosts many games at once. Calls on the same session are
// serialised; calls on different sessions run in parallel.
type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Summary, error)
	Get(ctx context.Context, id string) (*game.Snapshot, error)
	Advance(ctx context.Context, id string, dt time.Duration) (*game.Snapshot, error)
	Act(ctx context.Context, id string, action Action) (*ActionResult, error)
	End(ctx context.Context, id string) (*domain.Outcome, error)
	Outcome(ctx context.Context, id string) (*domain.Outcome, error)
	AdvanceAll(ctx context.Context, dt time.Duration) int
	Leaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error)
	ActiveCount() int
	Shutdown(ctx context.Context) error
}

// CreateRequest describes a new game
type CreateRequest struct {
	PlayerName string
	Gender     domain.Gender
	Profile    string
	Seed       *int64
}

// Summary is returned when a session is created
type Summary struct {
	SessionID string        `json:"session_id"`
	Profile   string        `json:"profile"`
	CreatedAt time.Time     `json:"created_at"`
	Snapshot  game.Snapshot `json:"snapshot"`
}

// BalanceResolver maps a profile name to a balance table
type BalanceResolver func(profile string) (config.Balance, error)

// Options configures the service. Zero values take the package defaults.
type Options struct {
	CacheSize int
	TTL       time.Duration
	Balances  BalanceResolver
	Clock     clock.Clock
}

type service struct {
	repo     repository.Outcomes
	bus      event.Bus
	balances BalanceResolver
	clock    clock.Clock
	cache    *sessionCache
	locks    *concurrency.LockManager
	wg       sync.WaitGroup // tracks eviction goroutines
}

// NewService creates a session service
func NewService(repo repository.Outcomes, bus event.Bus, opts Options) Service {
	if opts.CacheSize <= 0 {
		opts.CacheSize = DefaultCacheSize
	}
	if opts.TTL <= 0 {
		opts.TTL = DefaultTTL
	}
	if opts.Balances == nil {
		opts.Balances = config.BalanceForProfile
	}
	if opts.Clock == nil {
		opts.Clock = clock.NewRealClock()
	}

	s := &service{
		repo:     repo,
		bus:      bus,
		balances: opts.Balances,
		clock:    opts.Clock,
		locks:    concurrency.NewLockManager(),
	}
	s.cache = newSessionCache(opts.CacheSize, opts.TTL, s.onEvict)
	return s
}

// Create starts a new game and caches it
func (s *service) Create(ctx context.Context, req CreateRequest) (*Summary, error) {
	if req.Profile == "" {
		req.Profile = config.ProfileNormal
	}
	balance, err := s.balances(req.Profile)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %q", domain.ErrInvalidInput, ErrContextUnknownProfile, req.Profile)
	}

	var opts []game.Option
	if req.PlayerName != "" {
		opts = append(opts, game.WithPlayerName(req.PlayerName))
	}
	if req.Gender != "" {
		if !req.Gender.IsValid() {
			return nil, fmt.Errorf("%w: gender %q", domain.ErrInvalidInput, req.Gender)
		}
		opts = append(opts, game.WithPlayerGender(req.Gender))
	}
	if req.Seed != nil {
		opts = append(opts, game.WithRandom(utils.SeededRandom(*req.Seed)))
	}

	sess := &session{
		id:        uuid.NewString(),
		profile:   req.Profile,
		createdAt: s.clock.Now().UTC(),
		game:      game.New(balance, opts...),
	}
	s.cache.Touch(sess)

	logger.FromContext(ctx).Info(LogMsgSessionCreated, "session_id", sess.id, "profile", sess.profile)
	s.publish(ctx, event.NewSessionCreatedEvent(sess.id, sess.game.PlayerName(), sess.profile))

	return &Summary{
		SessionID: sess.id,
		Profile:   sess.profile,
		CreatedAt: sess.createdAt,
		Snapshot:  sess.game.Snapshot(),
	}, nil
}

// Get returns a snapshot of a live session
func (s *service) Get(ctx context.Context, id string) (*game.Snapshot, error) {
	var snap game.Snapshot
	err := s.withSession(id, false, func(sess *session) error {
		snap = sess.game.Snapshot()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &snap, nil
}

// Advance runs the simulation of one session forward by dt
func (s *service) Advance(ctx context.Context, id string, dt time.Duration) (*game.Snapshot, error) {
	if dt <= 0 || dt > MaxAdvance {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrContextInvalidAdvance)
	}

	var snap game.Snapshot
	err := s.withSession(id, true, func(sess *session) error {
		sess.game.Advance(ctx, dt)
		s.flush(ctx, sess)
		snap = sess.game.Snapshot()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &snap, nil
}

// AdvanceAll advances every live, unfinished session and returns how many moved
func (s *service) AdvanceAll(ctx context.Context, dt time.Duration) int {
	if dt <= 0 {
		return 0
	}
	dt = min(dt, MaxAdvance)

	advanced := 0
	for _, id := range s.cache.IDs() {
		if ctx.Err() != nil {
			break
		}
		_, err := s.Advance(ctx, id, dt)
		switch {
		case err == nil:
			advanced++
		case errors.Is(err, domain.ErrSessionFinished), errors.Is(err, domain.ErrSessionNotFound):
		default:
			logger.FromContext(ctx).Warn(LogMsgAdvanceAllFailed, "session_id", id, "error", err)
		}
	}
	return advanced
}

// End closes a session. A game still playing is recorded as abandoned.
func (s *service) End(ctx context.Context, id string) (*domain.Outcome, error) {
	var out *domain.Outcome
	err := s.withSession(id, false, func(sess *session) error {
		o, err := s.record(ctx, sess)
		if err != nil {
			return err
		}
		sess.closed = true
		out = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.cache.Remove(id)
	s.locks.Forget(id)
	logger.FromContext(ctx).Info(LogMsgSessionEnded, "session_id", id, "result", out.Result)
	return out, nil
}

// Outcome returns the outcome of a session, live or persisted. For a live
// game still playing it is a preview and nothing is recorded.
func (s *service) Outcome(ctx context.Context, id string) (*domain.Outcome, error) {
	var out *domain.Outcome
	err := s.withSession(id, false, func(sess *session) error {
		if sess.outcome != nil {
			o := *sess.outcome
			out = &o
			return nil
		}
		o := sess.game.Outcome()
		o.SessionID = sess.id
		out = &o
		return nil
	})
	if errors.Is(err, domain.ErrSessionNotFound) {
		return s.repo.GetOutcome(ctx, id)
	}
	return out, err
}

// Leaderboard returns the best recorded outcomes
func (s *service) Leaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = DefaultLeaderboardSize
	}
	return s.repo.GetLeaderboard(ctx, limit)
}

// ActiveCount is the number of cached sessions
func (s *service) ActiveCount() int {
	return s.cache.Len()
}

// Shutdown records every unfinished live game as abandoned and waits for
// pending eviction work.
func (s *service) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgShuttingDown, "active_sessions", s.cache.Len())

	for _, id := range s.cache.IDs() {
		if _, err := s.End(ctx, id); err != nil && !errors.Is(err, domain.ErrSessionNotFound) {
			log.Warn(LogMsgOutcomeSaveFailed, "session_id", id, "error", err)
		}
	}

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info(LogMsgShutdownDone)
		return nil
	case <-ctx.Done():
		log.Warn(LogMsgShutdownForced)
		return ctx.Err()
	}
}

// withSession runs fn holding the session lock. With mutating set, a
// finished game is rejected with ErrSessionFinished.
func (s *service) withSession(id string, mutating bool, fn func(*session) error) error {
	sess, ok := s.cache.Get(id)
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrSessionNotFound, id)
	}

	mu := s.locks.GetLock(id)
	mu.Lock()
	defer mu.Unlock()

	if sess.closed {
		return fmt.Errorf("%w: %s", domain.ErrSessionNotFound, id)
	}
	if mutating {
		if sess.game.Finished() {
			return fmt.Errorf("%w: %s", domain.ErrSessionFinished, id)
		}
		s.cache.Touch(sess)
	}
	return fn(sess)
}

// flush publishes what the game raised and records the outcome once the
// game is over. Caller holds the session lock.
func (s *service) flush(ctx context.Context, sess *session) {
	for _, n := range sess.game.DrainNotices() {
		// record publishes the finished event with the full outcome
		if n.Type == domain.EventTypeSessionFinished {
			continue
		}
		s.publish(ctx, event.NewSessionEvent(sess.id, event.Type(n.Type), n.Hours, n.Payload))
	}
	if sess.game.Finished() {
		if _, err := s.record(ctx, sess); err != nil {
			logger.FromContext(ctx).Error(LogMsgOutcomeSaveFailed, "session_id", sess.id, "error", err)
		}
	}
}

// record persists the outcome the first time it is called for a session.
// Caller holds the session lock.
func (s *service) record(ctx context.Context, sess *session) (*domain.Outcome, error) {
	if sess.outcome != nil {
		return sess.outcome, nil
	}

	o := sess.game.Outcome()
	o.SessionID = sess.id
	o.FinishedAt = s.clock.Now().UTC()

	if err := s.repo.SaveOutcome(ctx, o); err != nil && !errors.Is(err, domain.ErrOutcomeExists) {
		return nil, err
	}
	sess.outcome = &o

	logger.FromContext(ctx).Info(LogMsgOutcomeRecorded, "session_id", sess.id, "result", o.Result, "days", o.DaysSurvived)
	s.publish(ctx, event.NewSessionFinishedEvent(o))
	return sess.outcome, nil
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "event_type", evt.Type, "session_id", evt.SessionID(), "error", err)
	}
}

// onEvict is called by the LRU with its lock held, so the abandoned outcome
// is recorded on another goroutine. The session's mutex is dropped on every
// path, including sessions End already closed.
func (s *service) onEvict(id string, sess *session) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer s.locks.Forget(id)
		ctx := context.Background()

		mu := s.locks.GetLock(id)
		mu.Lock()
		if sess.closed {
			mu.Unlock()
			return
		}
		sess.closed = true
		logger.FromContext(ctx).Info(LogMsgSessionEvicted, "session_id", id)
		if _, err := s.record(ctx, sess); err != nil {
			logger.FromContext(ctx).Error(LogMsgOutcomeSaveFailed, "session_id", id, "error", err)
		}
		mu.Unlock()
	}()
}
