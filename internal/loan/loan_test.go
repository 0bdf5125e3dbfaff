package loan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeWallet struct {
	money float64
}

func (w *fakeWallet) Balance() float64      { return w.money }
func (w *fakeWallet) Credit(amount float64) { w.money += amount }
func (w *fakeWallet) Charge(amount float64) { w.money -= amount }
func (w *fakeWallet) Debit(amount float64) bool {
	if w.money < amount {
		return false
	}
	w.money -= amount
	return true
}

func TestTakeLoan(t *testing.T) {
	tests := []struct {
		name      string
		debt      float64
		amount    float64
		wantOK    bool
		wantDebt  float64
		wantMoney float64
	}{
		{"first loan", 0, 500, true, 500, 600},
		{"exactly to ceiling", 1500, 500, true, 2000, 600},
		{"one over ceiling", 1500, 501, false, 1500, 100},
		{"zero amount", 0, 0, false, 0, 100},
		{"negative amount", 0, -50, false, 0, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// ARRANGE
			a := NewAccount(DefaultConfig())
			a.totalDebt = tt.debt
			w := &fakeWallet{money: 100}

			// ACT
			ok := a.TakeLoan(tt.amount, w)

			// ASSERT
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantDebt, a.TotalDebt())
			assert.Equal(t, tt.wantMoney, w.money)
			assert.LessOrEqual(t, a.TotalDebt(), DefaultConfig().MaxLoanAmount)
		})
	}
}

func TestRepayLoan(t *testing.T) {
	tests := []struct {
		name      string
		debt      float64
		money     float64
		amount    float64
		wantOK    bool
		wantDebt  float64
		wantMoney float64
	}{
		{"partial repayment", 1000, 500, 300, true, 700, 200},
		{"more than debt", 100, 500, 200, false, 100, 500},
		{"more than money", 1000, 100, 200, false, 1000, 100},
		{"non-positive", 1000, 500, 0, false, 1000, 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAccount(DefaultConfig())
			a.totalDebt = tt.debt
			w := &fakeWallet{money: tt.money}

			ok := a.RepayLoan(tt.amount, w)

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantDebt, a.TotalDebt())
			assert.Equal(t, tt.wantMoney, w.money)
		})
	}
}

func TestApplyDailyInterest(t *testing.T) {
	// ARRANGE
	a := NewAccount(DefaultConfig())
	w := &fakeWallet{money: 0}
	assert.True(t, a.TakeLoan(1000, w))
	before := w.money

	// ACT
	interest := a.ApplyDailyInterest(w)

	// ASSERT
	assert.InDelta(t, 1000*0.05/365, interest, 1e-9)
	assert.InDelta(t, before-1000*0.05/365, w.money, 1e-9)
	assert.Equal(t, 1000.0, a.TotalDebt(), "interest is paid from money, not added to debt")
}

func TestApplyDailyInterest_CanGoNegative(t *testing.T) {
	a := NewAccount(DefaultConfig())
	a.totalDebt = 2000
	w := &fakeWallet{money: 0}

	a.ApplyDailyInterest(w)

	assert.Less(t, w.money, 0.0)
}

func TestSnapshot(t *testing.T) {
	a := NewAccount(DefaultConfig())
	w := &fakeWallet{}
	a.TakeLoan(400, w)

	s := a.Snapshot()

	assert.Equal(t, 400.0, s.TotalDebt)
	assert.Equal(t, 1600.0, s.AvailableCredit)
	assert.Equal(t, s, a.Snapshot())
}
