package ledger

import (
	"math"
	"time"

	"github.com/osse101/WhineTime/internal/domain"
)

// Settlement records what one day boundary cost the household
type Settlement struct {
	Day             int     `json:"day"`
	Interest        float64 `json:"interest"`
	ElectricityUsed float64 `json:"electricity_used"`
	WaterUsed       float64 `json:"water_used"`
	ElectricityBill float64 `json:"electricity_bill"`
	WaterBill       float64 `json:"water_bill"`
	MoneyAfter      float64 `json:"money_after"`
}

// Total is interest plus utilities
func (s Settlement) Total() float64 {
	return s.Interest + s.ElectricityBill + s.WaterBill
}

// UpdateTime advances the game clock by hours and settles once for every
// day that ended, in order: loan interest, then utility billing.
func (l *Ledger) UpdateTime(hours float64) []Settlement {
	return l.settleDays(l.clock.Advance(hours))
}

// UpdateDuration is UpdateTime for a game-time duration
func (l *Ledger) UpdateDuration(dt time.Duration) []Settlement {
	return l.settleDays(l.clock.AdvanceDuration(dt))
}

func (l *Ledger) settleDays(days []int) []Settlement {
	if len(days) == 0 {
		return nil
	}
	out := make([]Settlement, 0, len(days))
	for _, day := range days {
		s := Settlement{Day: day}
		s.Interest = l.loans.ApplyDailyInterest(l)
		s.ElectricityUsed, s.WaterUsed, s.ElectricityBill, s.WaterBill = l.PayUtilityBills()
		s.MoneyAfter = l.Balance()
		out = append(out, s)
	}
	return out
}

// PayUtilityBills charges metered consumption since the last bill and
// refills both utilities to capacity
func (l *Ledger) PayUtilityBills() (electricityUsed, waterUsed, electricityBill, waterBill float64) {
	electricityUsed = math.Max(0, l.cfg.ElectricityCapacity-l.resources[domain.ResourceElectricity])
	waterUsed = math.Max(0, l.cfg.WaterCapacity-l.resources[domain.ResourceWater])
	electricityBill = electricityUsed * l.cfg.ElectricityPrice
	waterBill = waterUsed * l.cfg.WaterPrice

	l.Charge(electricityBill + waterBill)
	l.resources[domain.ResourceElectricity] = l.cfg.ElectricityCapacity
	l.resources[domain.ResourceWater] = l.cfg.WaterCapacity
	return electricityUsed, waterUsed, electricityBill, waterBill
}

// FinancialStatus summarises money and debt
type FinancialStatus struct {
	Money           float64 `json:"money"`
	TotalDebt       float64 `json:"total_debt"`
	DailyInterest   float64 `json:"daily_interest"`
	NetWorth        float64 `json:"net_worth"`
	AvailableCredit float64 `json:"available_credit"`
}

// FinancialStatus returns the household's money position
func (l *Ledger) FinancialStatus() FinancialStatus {
	money := l.Balance()
	debt := l.loans.TotalDebt()
	return FinancialStatus{
		Money:           money,
		TotalDebt:       debt,
		DailyInterest:   l.loans.DailyInterest(),
		NetWorth:        money - debt,
		AvailableCredit: l.loans.AvailableCredit(),
	}
}

// CriticalResources lists resources running low, in display order
func (l *Ledger) CriticalResources() []domain.Resource {
	c := l.cfg.Critical
	r := l.resources
	critical := []domain.Resource{}
	if r[domain.ResourceDiapers] < c.Diapers {
		critical = append(critical, domain.ResourceDiapers)
	}
	if r[domain.ResourceFormula] < c.Formula && r[domain.ResourceSensitiveFormula] < c.SensitiveFormula {
		critical = append(critical, domain.ResourceFormula)
	}
	if r[domain.ResourceFood] < c.Food {
		critical = append(critical, domain.ResourceFood)
	}
	if r[domain.ResourceCleanBottles] < c.CleanBottles {
		critical = append(critical, domain.ResourceCleanBottles)
	}
	if r[domain.ResourceMoney] < c.Money {
		critical = append(critical, domain.ResourceMoney)
	}
	return critical
}
