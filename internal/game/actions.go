package game

import (
	"context"

	"github.com/osse101/WhineTime/internal/actor"
	"github.com/osse101/WhineTime/internal/domain"
	"github.com/osse101/WhineTime/internal/ledger"
	"github.com/osse101/WhineTime/internal/progression"
)

// WorkResult reports a shift at work
type WorkResult struct {
	Success     bool                `json:"success"`
	Earnings    float64             `json:"earnings"`
	HoursAway   float64             `json:"hours_away"`
	Message     string              `json:"message"`
	Settlements []ledger.Settlement `json:"settlements,omitempty"`
}

// AddBaby brings another baby into the household
func (g *Game) AddBaby(name string) (string, bool) {
	if g.Finished() || name == "" {
		return "", false
	}
	return g.addBaby(name)
}

func (g *Game) addBaby(name string) (string, bool) {
	b := actor.NewBaby(g.newID(), name, g.balance.Actors.Baby, g.rnd)
	if !g.actors.Add(b) {
		return "", false
	}
	return b.ID(), true
}

// AddCaregiver hires another pair of hands
func (g *Game) AddCaregiver(name string, gender domain.Gender) (string, bool) {
	if g.Finished() || name == "" || !gender.IsValid() {
		return "", false
	}
	return g.addCaregiver(name, gender)
}

func (g *Game) addCaregiver(name string, gender domain.Gender) (string, bool) {
	c := actor.NewCaregiver(g.newID(), name, gender, g.balance.Actors.Caregiver, g.rnd)
	if !g.actors.Add(c) {
		return "", false
	}
	return c.ID(), true
}

// Feed gives a baby one feeding of ft. Formula feeds use one unit of stock
// and dirty a clean bottle; breast milk uses one feeding's volume. Rejected
// without any change when the baby is not hungry or the supplies are short.
func (g *Game) Feed(babyID string, ft domain.FormulaType) bool {
	if g.Finished() || !ft.IsValid() {
		return false
	}
	b, ok := g.actors.Baby(babyID)
	if !ok {
		return false
	}
	return g.feed(b, ft)
}

func (g *Game) feed(b *actor.Baby, ft domain.FormulaType) bool {
	if !b.CanFeed() || !g.hasFeedingSupplies(ft) {
		return false
	}
	if !b.Feed(ft, g.feedEffectiveness(), g.clock.Hours()) {
		return false
	}
	if ft == domain.FormulaBreastMilk {
		g.ledger.FeedWithBreastMilk()
	} else {
		g.ledger.UseResource(ft.Resource(), 1)
		g.ledger.UseBottle()
	}
	g.progress.RecordFeeding()
	return true
}

func (g *Game) hasFeedingSupplies(ft domain.FormulaType) bool {
	if ft == domain.FormulaBreastMilk {
		return g.ledger.Amount(domain.ResourceBreastMilk) >= g.balance.Ledger.BreastMilkFeedVolume
	}
	return g.ledger.Amount(ft.Resource()) >= 1 && g.ledger.Amount(domain.ResourceCleanBottles) >= 1
}

func (g *Game) feedEffectiveness() float64 {
	if g.progress.HasUpgrade(progression.UpgradeFasterFeeding) {
		return g.balance.Household.Upgrades.FasterFeedingEffectiveness
	}
	return g.balance.Actors.Baby.FeedEffectiveness
}

// ChangeDiaper uses one diaper. Rejected while the baby is still clean or
// the household is out of diapers.
func (g *Game) ChangeDiaper(babyID string) bool {
	if g.Finished() {
		return false
	}
	b, ok := g.actors.Baby(babyID)
	if !ok || !b.NeedsChange() || g.ledger.Amount(domain.ResourceDiapers) < 1 {
		return false
	}
	if !b.ChangeDiaper(g.clock.Hours()) {
		return false
	}
	return g.ledger.UseResource(domain.ResourceDiapers, 1)
}

// Comfort soothes a baby
func (g *Game) Comfort(babyID string) bool {
	if g.Finished() {
		return false
	}
	b, ok := g.actors.Baby(babyID)
	if !ok {
		return false
	}
	return b.Comfort(g.comfortAmount())
}

func (g *Game) comfortAmount() float64 {
	if g.progress.HasUpgrade(progression.UpgradeAutoComfort) {
		return g.balance.Household.Upgrades.AutoComfortAmount
	}
	return g.balance.Actors.Baby.ComfortAmount
}

// Eat feeds a caregiver one meal from the household food
func (g *Game) Eat(caregiverID string) bool {
	if g.Finished() {
		return false
	}
	c, ok := g.actors.Caregiver(caregiverID)
	meal := g.balance.Household.FoodPerMeal
	if !ok || !c.CanEat() || g.ledger.Amount(domain.ResourceFood) < meal {
		return false
	}
	if !c.Eat() {
		return false
	}
	return g.ledger.UseResource(domain.ResourceFood, meal)
}

// Sleep lets a caregiver sleep for hours. The nap is instantaneous: game
// time does not move.
func (g *Game) Sleep(caregiverID string, hours float64) bool {
	if g.Finished() {
		return false
	}
	c, ok := g.actors.Caregiver(caregiverID)
	return ok && c.Sleep(hours)
}

// Work sends the player to a shift. Money and tiredness change at once and
// the clock jumps ahead by the shift length. Needs do not decay while the
// player is away, but every day the shift crosses is settled.
func (g *Game) Work(ctx context.Context) WorkResult {
	if g.Finished() {
		return WorkResult{Message: MsgWorkFinished}
	}
	rules := g.balance.Household.Work
	p, ok := g.actors.Caregiver(g.playerID)
	if !ok || p.Need(domain.NeedTiredness) > rules.MaxTiredness {
		return WorkResult{Message: MsgWorkTooTired}
	}

	g.ledger.Credit(rules.Earnings)
	g.progress.RecordEarnings(rules.Earnings)
	p.AddNeed(domain.NeedTiredness, rules.TirednessCost)

	settlements := g.ledger.UpdateTime(rules.Hours)
	g.settle(ctx, settlements)
	g.evaluate(ctx)

	return WorkResult{
		Success:     true,
		Earnings:    rules.Earnings,
		HoursAway:   rules.Hours,
		Message:     MsgWorkDone,
		Settlements: settlements,
	}
}

// StartBreastfeeding puts a free female caregiver to breastfeeding
func (g *Game) StartBreastfeeding(caregiverID string) bool {
	if g.Finished() {
		return false
	}
	c, ok := g.actors.Caregiver(caregiverID)
	return ok && c.StartBreastfeeding()
}

// StopBreastfeeding ends a breastfeeding session
func (g *Game) StopBreastfeeding(caregiverID string) bool {
	if g.Finished() {
		return false
	}
	c, ok := g.actors.Caregiver(caregiverID)
	return ok && c.StopBreastfeeding()
}

// AssignTask queues a task on a caregiver. The target must be the kind of
// actor the task works on. A zero priority takes the household default.
func (g *Game) AssignTask(caregiverID string, taskType domain.TaskType, targetID string, priority int) bool {
	if g.Finished() || !taskType.IsValid() {
		return false
	}
	c, ok := g.actors.Caregiver(caregiverID)
	if !ok {
		return false
	}
	target, ok := g.actors.Get(targetID)
	if !ok || target.Kind() != taskType.TargetKind() {
		return false
	}
	if priority == 0 {
		priority = g.balance.Household.DefaultPriority
	}
	duration := g.balance.Household.TaskDurations[taskType]
	return c.AddTask(domain.Task{
		ID:        g.newID(),
		Type:      taskType,
		TargetID:  targetID,
		Priority:  priority,
		Duration:  duration,
		Remaining: duration,
	})
}

// BuyItem buys quantity units from the shop
func (g *Game) BuyItem(item domain.Resource, quantity int) bool {
	return !g.Finished() && g.ledger.BuyItem(item, quantity)
}

// WashBottles cleans every dirty bottle
func (g *Game) WashBottles() bool {
	return !g.Finished() && g.ledger.WashBottles()
}

// SterilizeBottles sterilises the clean bottles
func (g *Game) SterilizeBottles() bool {
	return !g.Finished() && g.ledger.SterilizeBottles()
}

// PumpBreastMilk fills one clean bottle with milk
func (g *Game) PumpBreastMilk() bool {
	return !g.Finished() && g.ledger.PumpBreastMilk()
}

// TakeLoan borrows amount
func (g *Game) TakeLoan(amount float64) bool {
	return !g.Finished() && g.ledger.TakeLoan(amount)
}

// RepayLoan pays back amount
func (g *Game) RepayLoan(amount float64) bool {
	return !g.Finished() && g.ledger.RepayLoan(amount)
}

// MakeFormula mixes a batch at a station
func (g *Game) MakeFormula(stationID string) bool {
	if g.Finished() {
		return false
	}
	s, ok := g.actors.Station(stationID)
	return ok && s.MakeFormula(g.formulaBatch())
}

// formulaBatch is zero, meaning the station default, unless upgraded
func (g *Game) formulaBatch() float64 {
	if g.progress.HasUpgrade(progression.UpgradeEfficientFormula) {
		return g.balance.Household.Upgrades.EfficientFormulaBatch
	}
	return 0
}

// CleanStation restores a station's uses
func (g *Game) CleanStation(stationID string) bool {
	if g.Finished() {
		return false
	}
	s, ok := g.actors.Station(stationID)
	return ok && s.Clean()
}

// RefillStation tops a station up from household water
func (g *Game) RefillStation(stationID string) bool {
	if g.Finished() {
		return false
	}
	s, ok := g.actors.Station(stationID)
	return ok && g.refill(s)
}

func (g *Game) refill(s *actor.FeedingStation) bool {
	drawn, ok := s.RefillWater(g.ledger.Amount(domain.ResourceWater))
	if !ok {
		return false
	}
	return g.ledger.UseResource(domain.ResourceWater, drawn)
}

// CollectFormula moves everything a station has mixed into household stock
// and returns the amount moved
func (g *Game) CollectFormula(stationID string) (float64, bool) {
	if g.Finished() {
		return 0, false
	}
	s, ok := g.actors.Station(stationID)
	if !ok || s.FormulaAmount() <= 0 {
		return 0, false
	}
	amount := s.TakeFormula()
	g.ledger.AddResource(s.FormulaType().Resource(), amount)
	return amount, true
}

// BuyUpgrade buys a one-time upgrade by name
func (g *Game) BuyUpgrade(name string) bool {
	return !g.Finished() && g.progress.BuyUpgrade(progression.Upgrade(name), g.ledger)
}
