package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/osse101/WhineTime/internal/actor"
	"github.com/osse101/WhineTime/internal/domain"
	"github.com/osse101/WhineTime/internal/event"
	"github.com/osse101/WhineTime/internal/eventlog"
	"github.com/osse101/WhineTime/internal/game"
	"github.com/osse101/WhineTime/internal/repository/memory"
	"github.com/osse101/WhineTime/internal/session"
)

const (
	defaultSimHours = 7 * 24
	simStep         = time.Hour
)

// Greedy policy thresholds
const (
	simFeedHunger     = 50
	simDiaperClean    = 40
	simComfortBelow   = 40
	simEatHunger      = 60
	simSleepTiredness = 75
	simSleepHours     = 2
	simRestockBelow   = 3
	simRestockAmount  = 6
	simWorkMoneyBelow = 150
	simWorkHourStart  = 9
	simWorkHourEnd    = 10
)

// SimulateCommand plays a game headless with a greedy care policy
type SimulateCommand struct{}

func (c *SimulateCommand) Name() string {
	return "simulate"
}

func (c *SimulateCommand) Description() string {
	return "Play a headless game with a greedy policy: simulate [hours] [profile] [seed]"
}

type simOptions struct {
	Hours   int
	Profile string
	Seed    int64
}

type simResult struct {
	SessionID string
	Snapshot  game.Snapshot
	Outcome   *domain.Outcome
	Actions   map[string]int
	Rejected  int
	Events    map[string]int
}

func (c *SimulateCommand) Run(args []string) error {
	opts := simOptions{Hours: defaultSimHours, Seed: time.Now().UnixNano()}
	if len(args) > 0 {
		h, err := strconv.Atoi(args[0])
		if err != nil || h <= 0 {
			return fmt.Errorf("hours must be a positive integer, got %q", args[0])
		}
		opts.Hours = h
	}
	if len(args) > 1 {
		opts.Profile = args[1]
	}
	if len(args) > 2 {
		seed, err := strconv.ParseInt(args[2], 10, 64)
		if err != nil {
			return fmt.Errorf("seed must be an integer, got %q", args[2])
		}
		opts.Seed = seed
	}

	PrintHeader(fmt.Sprintf("Simulating %d hours (seed %d)", opts.Hours, opts.Seed))
	res, err := simulate(context.Background(), opts)
	if err != nil {
		return err
	}

	snap := res.Snapshot
	PrintInfo("Day %d, %s: status %s, money %.2f, level %d", snap.Day, snap.TimeOfDay, snap.Status, snap.Financial.Money, snap.Progress.Level)
	PrintCounts("Actions:", res.Actions)
	PrintInfo("Rejected actions: %d", res.Rejected)
	PrintCounts("Events:", res.Events)
	if res.Outcome != nil {
		PrintSuccess("Outcome: %s after %d days", res.Outcome.Result, res.Outcome.DaysSurvived)
	}
	return nil
}

// simulate runs a game on in-memory storage. The game is ended at the hour
// limit if it is still running so an outcome is always recorded.
func simulate(ctx context.Context, opts simOptions) (*simResult, error) {
	bus := event.NewMemoryBus()
	events := eventlog.NewService(memory.NewEventLogRepository())
	events.Subscribe(bus)
	svc := session.NewService(memory.NewOutcomeRepository(), bus, session.Options{})
	defer func() { _ = svc.Shutdown(ctx) }()

	seed := opts.Seed
	sum, err := svc.Create(ctx, session.CreateRequest{PlayerName: "simulator", Profile: opts.Profile, Seed: &seed})
	if err != nil {
		return nil, err
	}

	res := &simResult{SessionID: sum.SessionID, Actions: make(map[string]int), Events: make(map[string]int)}
	snap := &sum.Snapshot
play:
	for h := 0; h < opts.Hours && snap.Status == game.StatusPlaying; h++ {
		for _, a := range greedyActions(snap) {
			out, err := svc.Act(ctx, sum.SessionID, a)
			switch {
			case errors.Is(err, domain.ErrActionRejected):
				res.Rejected++
				continue
			case errors.Is(err, domain.ErrSessionFinished):
				break play
			case err != nil:
				return nil, fmt.Errorf("%s: %w", a.Name, err)
			}
			res.Actions[a.Name]++
			snap = &out.Snapshot
			if snap.Status != game.StatusPlaying {
				break play
			}
		}

		next, err := svc.Advance(ctx, sum.SessionID, simStep)
		if errors.Is(err, domain.ErrSessionFinished) {
			break
		}
		if err != nil {
			return nil, err
		}
		snap = next
	}

	if final, err := svc.Get(ctx, sum.SessionID); err == nil {
		snap = final
	}
	res.Snapshot = *snap

	// End records a running game as abandoned and returns a finished one as is
	if res.Outcome, err = svc.End(ctx, sum.SessionID); err != nil {
		return nil, err
	}

	timeline, err := events.Timeline(ctx, sum.SessionID, eventlog.Filter{Limit: eventlog.MaxTimelineLimit})
	if err != nil {
		return nil, err
	}
	for _, e := range timeline {
		res.Events[e.EventType]++
	}
	return res, nil
}

// greedyActions tends whatever looks worst right now. Rejections are
// expected and simply skipped.
func greedyActions(snap *game.Snapshot) []session.Action {
	var out []session.Action

	for _, a := range snap.Actors {
		switch a.Kind {
		case domain.ActorBaby:
			if a.Needs[domain.NeedHunger] >= simFeedHunger {
				out = append(out, session.Action{Name: session.ActionFeed, TargetID: a.ID, Formula: feedFormula(snap, a.Baby)})
			}
			if a.Needs[domain.NeedCleanliness] <= simDiaperClean {
				out = append(out, session.Action{Name: session.ActionChangeDiaper, TargetID: a.ID})
			}
			if a.Needs[domain.NeedComfort] < simComfortBelow {
				out = append(out, session.Action{Name: session.ActionComfort, TargetID: a.ID})
			}
		case domain.ActorCaregiver:
			if a.ID != snap.PlayerID {
				continue
			}
			if a.Needs[domain.NeedHunger] >= simEatHunger {
				out = append(out, session.Action{Name: session.ActionEat, ActorID: a.ID})
			}
			if a.Needs[domain.NeedTiredness] >= simSleepTiredness {
				out = append(out, session.Action{Name: session.ActionSleep, ActorID: a.ID, Hours: simSleepHours})
			}
		}
	}

	if snap.Resources[domain.ResourceDirtyBottles] > 0 && snap.Resources[domain.ResourceCleanBottles] < simRestockBelow {
		out = append(out, session.Action{Name: session.ActionWashBottles})
	}
	for _, r := range []domain.Resource{domain.ResourceDiapers, domain.ResourceFormula, domain.ResourceFood} {
		if snap.Resources[r] < simRestockBelow {
			out = append(out, session.Action{Name: session.ActionBuyItem, Item: r, Quantity: simRestockAmount})
		}
	}

	hourOfDay := int(snap.Hours) % 24
	if !snap.OnLeave && snap.Financial.Money < simWorkMoneyBelow &&
		hourOfDay >= simWorkHourStart && hourOfDay < simWorkHourEnd {
		out = append(out, session.Action{Name: session.ActionWork})
	}
	return out
}

func feedFormula(snap *game.Snapshot, baby *actor.BabyDetail) domain.FormulaType {
	if snap.Resources[domain.ResourceBreastMilk] > 0 {
		return domain.FormulaBreastMilk
	}
	if baby != nil && baby.SpecialNeeds.SensitiveFormula && snap.Resources[domain.ResourceSensitiveFormula] > 0 {
		return domain.FormulaSensitive
	}
	return domain.FormulaRegular
}
