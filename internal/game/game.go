// Package game is the simulation context: it owns every actor, the ledger,
// loans, the clock, progression and the outcome flags of one household, and
// exposes the player's actions as synchronous calls. A Game is not safe for
// concurrent use; callers serialise Advance and every action.
package game

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/WhineTime/internal/actor"
	"github.com/osse101/WhineTime/internal/clock"
	"github.com/osse101/WhineTime/internal/config"
	"github.com/osse101/WhineTime/internal/domain"
	"github.com/osse101/WhineTime/internal/ledger"
	"github.com/osse101/WhineTime/internal/loan"
	"github.com/osse101/WhineTime/internal/logger"
	"github.com/osse101/WhineTime/internal/outcome"
	"github.com/osse101/WhineTime/internal/progression"
	"github.com/osse101/WhineTime/internal/utils"
)

// Game is one household
type Game struct {
	balance config.Balance
	rnd     func() float64
	newID   func() string

	clock    *clock.GameClock
	loans    *loan.Account
	ledger   *ledger.Ledger
	actors   *actor.Registry
	progress *progression.Tracker
	outcome  *outcome.Evaluator

	playerID   string
	playerName string
	stationID  string

	status  Status
	reason  outcome.Reason
	notices []Notice
}

// Option customises a new game
type Option func(*options)

type options struct {
	rnd          func() float64
	newID        func() string
	playerName   string
	playerGender domain.Gender
}

// WithRandom injects the random source used for every roll
func WithRandom(rnd func() float64) Option {
	return func(o *options) { o.rnd = rnd }
}

// WithIDGenerator replaces the UUID generator for actor and task IDs
func WithIDGenerator(newID func() string) Option {
	return func(o *options) { o.newID = newID }
}

// WithPlayerName names the player caregiver
func WithPlayerName(name string) Option {
	return func(o *options) { o.playerName = name }
}

// WithPlayerGender sets the player caregiver's gender
func WithPlayerGender(g domain.Gender) Option {
	return func(o *options) { o.playerGender = g }
}

// New seeds a household with the player caregiver, one baby and one
// feeding station
func New(balance config.Balance, opts ...Option) *Game {
	o := options{
		rnd:          utils.RandomFloat,
		newID:        uuid.NewString,
		playerName:   balance.Household.PlayerName,
		playerGender: domain.GenderFemale,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.playerName == "" {
		o.playerName = balance.Household.PlayerName
	}
	if !o.playerGender.IsValid() {
		o.playerGender = domain.GenderFemale
	}

	gc := clock.NewGameClock()
	loans := loan.NewAccount(balance.Loan)
	g := &Game{
		balance:    balance,
		rnd:        o.rnd,
		newID:      o.newID,
		clock:      gc,
		loans:      loans,
		ledger:     ledger.New(balance.Ledger, gc, loans),
		actors:     actor.NewRegistry(),
		progress:   progression.NewTracker(balance.Progression),
		outcome:    outcome.NewEvaluator(balance.Outcome),
		playerName: o.playerName,
		status:     StatusPlaying,
	}

	g.playerID, _ = g.addCaregiver(o.playerName, o.playerGender)
	g.addBaby(balance.Household.FirstBabyName)
	station := actor.NewFeedingStation(g.newID(), balance.Household.StationName, domain.FormulaRegular, balance.Actors.Station)
	g.actors.Add(station)
	g.stationID = station.ID()
	return g
}

// PlayerID is the caregiver the player controls directly
func (g *Game) PlayerID() string { return g.playerID }

// PlayerName is the player caregiver's name
func (g *Game) PlayerName() string { return g.playerName }

// StationID is the household's first feeding station
func (g *Game) StationID() string { return g.stationID }

// Status reports whether the game is still running
func (g *Game) Status() Status { return g.status }

// Reason says why the game finished or why leave was revoked
func (g *Game) Reason() outcome.Reason {
	if g.reason != outcome.ReasonNone {
		return g.reason
	}
	return g.outcome.RevokedReason()
}

// Finished is true once the game was won or lost
func (g *Game) Finished() bool { return g.status != StatusPlaying }

// Hours is the elapsed game time
func (g *Game) Hours() float64 { return g.clock.Hours() }

// Advance simulates dt of game time in steps of at most Step. Each step
// advances every actor, applies finished tasks, settles crossed days and
// evaluates the outcome. A finished game does not advance.
func (g *Game) Advance(ctx context.Context, dt time.Duration) {
	for dt > 0 && !g.Finished() {
		step := min(dt, Step)
		g.step(ctx, step)
		dt -= step
	}
}

func (g *Game) step(ctx context.Context, dt time.Duration) {
	env := actor.Env{CryingBabies: g.cryingBabies(), StressMultiplier: 1}
	if g.progress.HasUpgrade(progression.UpgradeStressReduction) {
		env.StressMultiplier = g.balance.Household.Upgrades.StressReductionMultiplier
	}
	for _, a := range g.actors.All() {
		a.Advance(dt, env)
	}
	for _, c := range g.actors.Caregivers() {
		for _, t := range c.DrainFinished() {
			g.finishTask(ctx, c, t)
		}
	}
	g.settle(ctx, g.ledger.UpdateDuration(dt))
	g.evaluate(ctx)
}

func (g *Game) cryingBabies() int {
	n := 0
	for _, b := range g.actors.Babies() {
		if b.IsCrying() {
			n++
		}
	}
	return n
}

// finishTask applies a completed task's effect and pays its reward. A task
// whose effect cannot be applied any more counts as failed.
func (g *Game) finishTask(ctx context.Context, c *actor.Caregiver, t domain.Task) {
	log := logger.FromContext(ctx)
	payload := TaskFinished{CaregiverID: c.ID(), Task: t}

	if t.Status == domain.TaskCompleted && !g.applyTask(t) {
		log.Debug(LogMsgTaskEffectFailed, "task", t.Type, "target", t.TargetID)
		t.Status = domain.TaskFailed
		payload.Task = t
	}
	if t.Status == domain.TaskCompleted {
		reward, ups := g.progress.CompleteTask(t.Type, g.ledger)
		payload.Reward = reward
		g.levelUps(ctx, ups)
	}
	log.Debug(LogMsgTaskFinished, "task", t.Type, "status", t.Status, "caregiver", c.ID())
	g.notify(domain.EventTypeTaskFinished, payload)
}

func (g *Game) applyTask(t domain.Task) bool {
	switch t.Type {
	case domain.TaskFeed:
		b, ok := g.actors.Baby(t.TargetID)
		return ok && g.feed(b, g.pickFormula(b))
	case domain.TaskSleep:
		b, ok := g.actors.Baby(t.TargetID)
		return ok && b.HelpSleep()
	case domain.TaskComfort:
		b, ok := g.actors.Baby(t.TargetID)
		return ok && b.Comfort(g.comfortAmount())
	case domain.TaskMakeFormula:
		s, ok := g.actors.Station(t.TargetID)
		return ok && s.MakeFormula(g.formulaBatch())
	case domain.TaskRefillWater:
		s, ok := g.actors.Station(t.TargetID)
		return ok && g.refill(s)
	default:
		return false
	}
}

// pickFormula chooses what a feed task gives the baby: sensitive formula for
// a sensitive baby when stocked, then regular formula, then stored milk
func (g *Game) pickFormula(b *actor.Baby) domain.FormulaType {
	if b.SpecialNeeds().SensitiveFormula && g.ledger.Amount(domain.ResourceSensitiveFormula) >= 1 {
		return domain.FormulaSensitive
	}
	if g.ledger.Amount(domain.ResourceFormula) >= 1 {
		return domain.FormulaRegular
	}
	if g.ledger.Amount(domain.ResourceSensitiveFormula) >= 1 {
		return domain.FormulaSensitive
	}
	return domain.FormulaBreastMilk
}

func (g *Game) levelUps(ctx context.Context, ups []progression.LevelUp) {
	for _, up := range ups {
		logger.FromContext(ctx).Debug(LogMsgLevelUp, "level", up.NewLevel, "reward", up.Reward)
		g.progress.RecordEarnings(up.Reward)
		g.notify(domain.EventTypeLevelUp, up)
	}
}

// settle runs the household's end-of-day routine for every day the ledger
// just billed: income, a possible random event, then achievements
func (g *Game) settle(ctx context.Context, settlements []ledger.Settlement) {
	log := logger.FromContext(ctx)
	h := g.balance.Household
	for _, s := range settlements {
		income := h.DailyIncome
		if g.progress.HasUpgrade(progression.UpgradeBonusMoney) {
			income = h.BonusDailyIncome
		}
		g.ledger.Credit(income)
		g.progress.RecordEarnings(income)

		summary := DaySummary{Settlement: s, Income: income}
		if g.rnd() < h.RandomEventChance {
			summary.Event = g.randomEvent()
			log.Debug(LogMsgRandomEvent, "day", s.Day, "event", summary.Event)
		}
		summary.MoneyAfter = g.ledger.Balance()
		log.Debug(LogMsgDaySettled, "day", s.Day, "interest", s.Interest,
			"utilities", s.ElectricityBill+s.WaterBill, "income", income)
		g.notify(domain.EventTypeDaySettled, summary)

		for _, u := range g.progress.CheckAchievements(s.Day+1, g.ledger) {
			log.Debug(LogMsgAchievement, "achievement", u.Achievement, "reward", u.Reward)
			g.progress.RecordEarnings(u.Reward)
			g.notify(domain.EventTypeAchievementUnlocked, u)
		}
	}
}

func (g *Game) randomEvent() RandomEvent {
	ev := randomEvents[utils.RollIntRange(g.rnd(), 0, len(randomEvents)-1)]
	rules := g.balance.Household.Events
	switch ev {
	case EventDonation:
		g.ledger.Credit(rules.Donation)
		g.progress.RecordEarnings(rules.Donation)
	case EventAppreciation:
		g.progress.AddHappiness(rules.Appreciation)
	case EventFormulaDelivery:
		g.ledger.AddResource(domain.ResourceFormula, rules.FormulaDelivery)
	case EventVolunteerHelper:
		for _, c := range g.actors.Caregivers() {
			c.RelieveStress(rules.VolunteerRelief)
		}
	}
	g.notify(domain.EventTypeRandomEvent, ev)
	return ev
}

func (g *Game) outcomeState() outcome.State {
	s := outcome.State{
		Hours:     g.clock.Hours(),
		Money:     g.ledger.Balance(),
		BabyCount: g.actors.Count(domain.ActorBaby),
	}
	if p, ok := g.actors.Caregiver(g.playerID); ok {
		s.PlayerHunger = p.Need(domain.NeedHunger)
		s.PlayerTiredness = p.Need(domain.NeedTiredness)
	}
	for _, b := range g.actors.Babies() {
		s.Babies = append(s.Babies, outcome.BabyVitals{
			Hunger:      b.Need(domain.NeedHunger),
			Cleanliness: b.Need(domain.NeedCleanliness),
		})
	}
	return s
}

// evaluate updates the on-leave flag and latches a win or loss
func (g *Game) evaluate(ctx context.Context) {
	if g.Finished() {
		return
	}
	log := logger.FromContext(ctx)
	s := g.outcomeState()

	if g.outcome.UpdateLeaveStatus(s) {
		reason := g.outcome.RevokedReason()
		log.Debug(LogMsgLeaveRevoked, "reason", reason, "hours", s.Hours)
		g.notify(domain.EventTypeLeaveRevoked, LeaveRevoked{Reason: reason})
	}

	if over, reason := g.outcome.CheckGameOver(s); over {
		g.finish(ctx, StatusLost, reason)
		return
	}
	if g.outcome.CheckWinCondition(s) {
		g.finish(ctx, StatusWon, outcome.ReasonSurvivedLeave)
	}
}

func (g *Game) finish(ctx context.Context, status Status, reason outcome.Reason) {
	g.status = status
	g.reason = reason
	logger.FromContext(ctx).Debug(LogMsgGameFinished, "status", status, "reason", reason, "hours", g.clock.Hours())
	g.notify(domain.EventTypeSessionFinished, Finished{Status: status, Reason: reason})
}

// CheckGameOver reports a loss. A finished game stays lost; a running one
// is checked against its current state without changing it.
func (g *Game) CheckGameOver() (bool, outcome.Reason) {
	switch g.status {
	case StatusLost:
		return true, g.reason
	case StatusWon:
		return false, outcome.ReasonNone
	}
	return g.outcome.CheckGameOver(g.outcomeState())
}

// CheckWinCondition reports a win under the same rules as CheckGameOver
func (g *Game) CheckWinCondition() bool {
	switch g.status {
	case StatusWon:
		return true
	case StatusLost:
		return false
	}
	return g.outcome.CheckWinCondition(g.outcomeState())
}
