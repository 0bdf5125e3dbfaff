// Package ledger holds the household resources: money, consumables, bottles
// and metered utilities. It also owns the game clock's daily settlement,
// charging loan interest and utility bills whenever a day ends.
package ledger

import (
	"github.com/osse101/WhineTime/internal/clock"
	"github.com/osse101/WhineTime/internal/domain"
	"github.com/osse101/WhineTime/internal/loan"
)

// Ledger maps every resource to a quantity. Money may go negative through
// interest and bills; every other resource stays non-negative.
type Ledger struct {
	cfg       Config
	resources map[domain.Resource]float64
	clock     *clock.GameClock
	loans     *loan.Account
}

// New creates a ledger stocked with cfg.Initial
func New(cfg Config, gc *clock.GameClock, acct *loan.Account) *Ledger {
	l := &Ledger{
		cfg:       cfg,
		resources: make(map[domain.Resource]float64, len(domain.AllResources())),
		clock:     gc,
		loans:     acct,
	}
	for _, r := range domain.AllResources() {
		l.resources[r] = cfg.Initial[r]
	}
	return l
}

// Amount returns the current quantity of r
func (l *Ledger) Amount(r domain.Resource) float64 {
	return l.resources[r]
}

// Price returns the unit price of a shop item and whether it is for sale
func (l *Ledger) Price(item domain.Resource) (float64, bool) {
	p, ok := l.cfg.Prices[item]
	return p, ok
}

// Prices returns a copy of the shop price list
func (l *Ledger) Prices() map[domain.Resource]float64 {
	out := make(map[domain.Resource]float64, len(l.cfg.Prices))
	for k, v := range l.cfg.Prices {
		out[k] = v
	}
	return out
}

// CanAfford reports whether money covers quantity units of item
func (l *Ledger) CanAfford(item domain.Resource, quantity int) bool {
	price, ok := l.Price(item)
	if !ok || quantity <= 0 {
		return false
	}
	return l.resources[domain.ResourceMoney] >= price*float64(quantity)
}

// BuyItem debits money and credits the item. Bottles arrive clean.
func (l *Ledger) BuyItem(item domain.Resource, quantity int) bool {
	if !l.CanAfford(item, quantity) {
		return false
	}
	price, _ := l.Price(item)
	l.resources[domain.ResourceMoney] -= price * float64(quantity)
	l.resources[item] += float64(quantity)
	if item == domain.ResourceBottles {
		l.resources[domain.ResourceCleanBottles] += float64(quantity)
	}
	return true
}

// UseResource consumes amount of r, failing without change when stock is short
func (l *Ledger) UseResource(r domain.Resource, amount float64) bool {
	if !r.IsValid() || amount < 0 || l.resources[r] < amount {
		return false
	}
	l.resources[r] -= amount
	return true
}

// AddResource credits amount of r. Unknown resources and negative amounts
// are ignored.
func (l *Ledger) AddResource(r domain.Resource, amount float64) {
	if !r.IsValid() || amount < 0 {
		return
	}
	l.resources[r] += amount
}

// Balance implements loan.Wallet
func (l *Ledger) Balance() float64 {
	return l.resources[domain.ResourceMoney]
}

// Credit implements loan.Wallet
func (l *Ledger) Credit(amount float64) {
	l.resources[domain.ResourceMoney] += amount
}

// Debit implements loan.Wallet
func (l *Ledger) Debit(amount float64) bool {
	return l.UseResource(domain.ResourceMoney, amount)
}

// Charge implements loan.Wallet
func (l *Ledger) Charge(amount float64) {
	l.resources[domain.ResourceMoney] -= amount
}

// TakeLoan borrows amount into money
func (l *Ledger) TakeLoan(amount float64) bool {
	return l.loans.TakeLoan(amount, l)
}

// RepayLoan pays down amount from money
func (l *Ledger) RepayLoan(amount float64) bool {
	return l.loans.RepayLoan(amount, l)
}

// WashBottles turns every dirty bottle clean, paying water and electricity
// per bottle
func (l *Ledger) WashBottles() bool {
	dirty := l.resources[domain.ResourceDirtyBottles]
	if dirty <= 0 {
		return false
	}
	water := dirty * l.cfg.WashWaterPerBottle
	power := dirty * l.cfg.WashElectricityPerBottle
	if l.resources[domain.ResourceWater] < water || l.resources[domain.ResourceElectricity] < power {
		return false
	}
	l.resources[domain.ResourceWater] -= water
	l.resources[domain.ResourceElectricity] -= power
	l.resources[domain.ResourceCleanBottles] += dirty
	l.resources[domain.ResourceDirtyBottles] = 0
	return true
}

// SterilizeBottles spends electricity per clean bottle
func (l *Ledger) SterilizeBottles() bool {
	clean := l.resources[domain.ResourceCleanBottles]
	if clean <= 0 {
		return false
	}
	return l.UseResource(domain.ResourceElectricity, clean*l.cfg.SterilizeElectricityPerBottle)
}

// PumpBreastMilk fills one clean bottle with a fixed volume of milk
func (l *Ledger) PumpBreastMilk() bool {
	if l.resources[domain.ResourceCleanBottles] < 1 {
		return false
	}
	if !l.UseResource(domain.ResourceElectricity, l.cfg.PumpElectricity) {
		return false
	}
	l.resources[domain.ResourceCleanBottles]--
	l.resources[domain.ResourceDirtyBottles]++
	l.resources[domain.ResourceBreastMilk] += l.cfg.PumpVolume
	return true
}

// FeedWithBreastMilk consumes one feeding's volume of stored milk
func (l *Ledger) FeedWithBreastMilk() bool {
	return l.UseResource(domain.ResourceBreastMilk, l.cfg.BreastMilkFeedVolume)
}

// UseBottle marks one clean bottle dirty
func (l *Ledger) UseBottle() bool {
	if !l.UseResource(domain.ResourceCleanBottles, 1) {
		return false
	}
	l.resources[domain.ResourceDirtyBottles]++
	return true
}

// Snapshot returns a copy of every resource
func (l *Ledger) Snapshot() map[domain.Resource]float64 {
	out := make(map[domain.Resource]float64, len(l.resources))
	for k, v := range l.resources {
		out[k] = v
	}
	return out
}
