package session

import (
	"context"
	"fmt"

	"github.com/osse101/WhineTime/internal/domain"
	"github.com/osse101/WhineTime/internal/game"
	"github.com/osse101/WhineTime/internal/logger"
)

// Action is one player command. Only the fields the named action uses are read.
type Action struct {
	Name     string             `json:"action" validate:"required,action"`
	ActorID  string             `json:"actor_id,omitempty"`
	TargetID string             `json:"target_id,omitempty"`
	Item     domain.Resource    `json:"item,omitempty"`
	Quantity int                `json:"quantity,omitempty" validate:"gte=0"`
	Amount   float64            `json:"amount,omitempty" validate:"gte=0"`
	Hours    float64            `json:"hours,omitempty" validate:"gte=0,lte=24"`
	Formula  domain.FormulaType `json:"formula,omitempty"`
	Task     domain.TaskType    `json:"task,omitempty"`
	Priority int                `json:"priority,omitempty" validate:"gte=0"`
	Upgrade  string             `json:"upgrade,omitempty"`
	Label    string             `json:"name,omitempty" validate:"max=32"`
	Gender   domain.Gender      `json:"gender,omitempty" validate:"omitempty,gender"`
}

// ActionResult is what a successful action produced
type ActionResult struct {
	Action   string           `json:"action"`
	Message  string           `json:"message,omitempty"`
	ActorID  string           `json:"actor_id,omitempty"`
	Amount   float64          `json:"amount,omitempty"`
	Work     *game.WorkResult `json:"work,omitempty"`
	Snapshot game.Snapshot    `json:"snapshot"`
}

// actionFunc applies an action. ok=false means the game refused it.
type actionFunc func(ctx context.Context, g *game.Game, a Action, res *ActionResult) (bool, error)

var actions = map[string]actionFunc{
	ActionAddBaby: func(_ context.Context, g *game.Game, a Action, res *ActionResult) (bool, error) {
		id, ok := g.AddBaby(a.Label)
		res.ActorID = id
		return ok, nil
	},
	ActionAddCaregiver: func(_ context.Context, g *game.Game, a Action, res *ActionResult) (bool, error) {
		if a.Label == "" {
			return false, missing("name")
		}
		gender := a.Gender
		if gender == "" {
			gender = domain.GenderFemale
		}
		if !gender.IsValid() {
			return false, fmt.Errorf("%w: gender %q", domain.ErrInvalidInput, a.Gender)
		}
		id, ok := g.AddCaregiver(a.Label, gender)
		res.ActorID = id
		return ok, nil
	},
	ActionFeed: func(_ context.Context, g *game.Game, a Action, _ *ActionResult) (bool, error) {
		if err := requireActor(g, a.TargetID, domain.ActorBaby); err != nil {
			return false, err
		}
		formula := a.Formula
		if formula == "" {
			formula = domain.FormulaRegular
		}
		if !formula.IsValid() {
			return false, fmt.Errorf("%w: formula %q", domain.ErrInvalidInput, a.Formula)
		}
		return g.Feed(a.TargetID, formula), nil
	},
	ActionChangeDiaper: babyAction((*game.Game).ChangeDiaper),
	ActionComfort:      babyAction((*game.Game).Comfort),
	ActionEat:          caregiverAction((*game.Game).Eat),
	ActionSleep: func(_ context.Context, g *game.Game, a Action, _ *ActionResult) (bool, error) {
		id := a.ActorID
		if id == "" {
			id = g.PlayerID()
		}
		if err := requireActor(g, id, domain.ActorCaregiver); err != nil {
			return false, err
		}
		if a.Hours <= 0 {
			return false, missing("hours")
		}
		return g.Sleep(id, a.Hours), nil
	},
	ActionWork: func(ctx context.Context, g *game.Game, _ Action, res *ActionResult) (bool, error) {
		w := g.Work(ctx)
		res.Work = &w
		res.Message = w.Message
		res.Amount = w.Earnings
		return w.Success, nil
	},
	ActionStartBreastfeeding: caregiverAction((*game.Game).StartBreastfeeding),
	ActionStopBreastfeeding:  caregiverAction((*game.Game).StopBreastfeeding),
	ActionAssignTask: func(_ context.Context, g *game.Game, a Action, _ *ActionResult) (bool, error) {
		if err := requireActor(g, a.ActorID, domain.ActorCaregiver); err != nil {
			return false, err
		}
		if !a.Task.IsValid() {
			return false, fmt.Errorf("%w: task %q", domain.ErrInvalidInput, a.Task)
		}
		if err := requireActor(g, a.TargetID, a.Task.TargetKind()); err != nil {
			return false, err
		}
		return g.AssignTask(a.ActorID, a.Task, a.TargetID, a.Priority), nil
	},
	ActionBuyItem: func(_ context.Context, g *game.Game, a Action, _ *ActionResult) (bool, error) {
		if !a.Item.IsValid() {
			return false, fmt.Errorf("%w: item %q", domain.ErrInvalidInput, a.Item)
		}
		if a.Quantity <= 0 {
			return false, missing("quantity")
		}
		return g.BuyItem(a.Item, a.Quantity), nil
	},
	ActionWashBottles:      householdAction((*game.Game).WashBottles),
	ActionSterilizeBottles: householdAction((*game.Game).SterilizeBottles),
	ActionPumpBreastMilk:   householdAction((*game.Game).PumpBreastMilk),
	ActionTakeLoan: func(_ context.Context, g *game.Game, a Action, res *ActionResult) (bool, error) {
		res.Amount = a.Amount
		return g.TakeLoan(a.Amount), nil
	},
	ActionRepayLoan: func(_ context.Context, g *game.Game, a Action, res *ActionResult) (bool, error) {
		res.Amount = a.Amount
		return g.RepayLoan(a.Amount), nil
	},
	ActionMakeFormula:   stationAction((*game.Game).MakeFormula),
	ActionCleanStation:  stationAction((*game.Game).CleanStation),
	ActionRefillStation: stationAction((*game.Game).RefillStation),
	ActionCollectFormula: func(_ context.Context, g *game.Game, a Action, res *ActionResult) (bool, error) {
		id, err := stationID(g, a)
		if err != nil {
			return false, err
		}
		amount, ok := g.CollectFormula(id)
		res.Amount = amount
		return ok, nil
	},
	ActionBuyUpgrade: func(_ context.Context, g *game.Game, a Action, _ *ActionResult) (bool, error) {
		if a.Upgrade == "" {
			return false, missing("upgrade")
		}
		return g.BuyUpgrade(a.Upgrade), nil
	},
}

// ActionNames lists every action Act accepts
func ActionNames() []string {
	return []string{
		ActionAddBaby, ActionAddCaregiver, ActionFeed, ActionChangeDiaper, ActionComfort,
		ActionEat, ActionSleep, ActionWork, ActionStartBreastfeeding, ActionStopBreastfeeding,
		ActionAssignTask, ActionBuyItem, ActionWashBottles, ActionSterilizeBottles,
		ActionPumpBreastMilk, ActionTakeLoan, ActionRepayLoan, ActionMakeFormula,
		ActionCleanStation, ActionRefillStation, ActionCollectFormula, ActionBuyUpgrade,
	}
}

// Act applies one action to a session. A refused action returns
// domain.ErrActionRejected and leaves the game unchanged.
func (s *service) Act(ctx context.Context, id string, a Action) (*ActionResult, error) {
	apply, ok := actions[a.Name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownAction, a.Name)
	}

	res := &ActionResult{Action: a.Name}
	err := s.withSession(id, true, func(sess *session) error {
		ok, err := apply(ctx, sess.game, a, res)
		if err != nil {
			return err
		}
		if !ok {
			logger.FromContext(ctx).Debug(LogMsgActionRejected, "session_id", id, "action", a.Name)
			if res.Message != "" {
				return fmt.Errorf("%w: %s: %s", domain.ErrActionRejected, a.Name, res.Message)
			}
			return fmt.Errorf("%w: %s", domain.ErrActionRejected, a.Name)
		}
		// work and loans can end the game or cross days
		s.flush(ctx, sess)
		res.Snapshot = sess.game.Snapshot()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func babyAction(fn func(*game.Game, string) bool) actionFunc {
	return func(_ context.Context, g *game.Game, a Action, _ *ActionResult) (bool, error) {
		if err := requireActor(g, a.TargetID, domain.ActorBaby); err != nil {
			return false, err
		}
		return fn(g, a.TargetID), nil
	}
}

// caregiverAction defaults to the player when no actor is named
func caregiverAction(fn func(*game.Game, string) bool) actionFunc {
	return func(_ context.Context, g *game.Game, a Action, _ *ActionResult) (bool, error) {
		id := a.ActorID
		if id == "" {
			id = g.PlayerID()
		}
		if err := requireActor(g, id, domain.ActorCaregiver); err != nil {
			return false, err
		}
		return fn(g, id), nil
	}
}

// stationAction defaults to the household's first station
func stationAction(fn func(*game.Game, string) bool) actionFunc {
	return func(_ context.Context, g *game.Game, a Action, _ *ActionResult) (bool, error) {
		id, err := stationID(g, a)
		if err != nil {
			return false, err
		}
		return fn(g, id), nil
	}
}

func householdAction(fn func(*game.Game) bool) actionFunc {
	return func(_ context.Context, g *game.Game, _ Action, _ *ActionResult) (bool, error) {
		return fn(g), nil
	}
}

func stationID(g *game.Game, a Action) (string, error) {
	id := a.TargetID
	if id == "" {
		id = g.StationID()
	}
	return id, requireActor(g, id, domain.ActorFeedingStation)
}

func requireActor(g *game.Game, id string, kind domain.ActorKind) error {
	if id == "" {
		return missing("actor id")
	}
	summary, ok := g.StatusSummary(id)
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrActorNotFound, id)
	}
	if summary.Kind != kind {
		return fmt.Errorf("%w: %s: %s is a %s, want %s", domain.ErrInvalidInput, ErrContextActorKind, id, summary.Kind, kind)
	}
	return nil
}

func missing(field string) error {
	return fmt.Errorf("%w: %s %s", domain.ErrInvalidInput, ErrContextMissingField, field)
}
