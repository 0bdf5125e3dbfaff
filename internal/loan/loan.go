// Package loan implements the household debt account: borrowing against a
// fixed ceiling, repayment, and daily interest.
package loan

// Wallet is the money side of the ledger as seen by the loan account
type Wallet interface {
	// Balance returns current money, which may be negative
	Balance() float64
	// Credit adds money unconditionally
	Credit(amount float64)
	// Debit removes money only when the balance covers it
	Debit(amount float64) bool
	// Charge removes money unconditionally, allowing a negative balance
	Charge(amount float64)
}

// Config holds the loan terms
type Config struct {
	InterestRate  float64 `yaml:"interest_rate"`
	MaxLoanAmount float64 `yaml:"max_loan_amount"`
	DaysPerYear   float64 `yaml:"days_per_year"`
}

// DefaultConfig returns the standard loan terms
func DefaultConfig() Config {
	return Config{
		InterestRate:  0.05,
		MaxLoanAmount: 2000,
		DaysPerYear:   365,
	}
}

// Account tracks outstanding debt. TotalDebt never exceeds MaxLoanAmount.
type Account struct {
	cfg       Config
	totalDebt float64
}

// NewAccount opens an account with no debt
func NewAccount(cfg Config) *Account {
	return &Account{cfg: cfg}
}

// TakeLoan borrows amount into w. It fails when amount is not positive or
// the new debt would exceed the ceiling.
func (a *Account) TakeLoan(amount float64, w Wallet) bool {
	if amount <= 0 || a.totalDebt+amount > a.cfg.MaxLoanAmount {
		return false
	}
	a.totalDebt += amount
	w.Credit(amount)
	return true
}

// RepayLoan pays down amount from w. It fails when either the debt or the
// money is smaller than amount.
func (a *Account) RepayLoan(amount float64, w Wallet) bool {
	if amount <= 0 || amount > a.totalDebt || w.Balance() < amount {
		return false
	}
	if !w.Debit(amount) {
		return false
	}
	a.totalDebt -= amount
	return true
}

// DailyInterest is totalDebt × rate / daysPerYear
func (a *Account) DailyInterest() float64 {
	if a.cfg.DaysPerYear <= 0 {
		return 0
	}
	return a.totalDebt * a.cfg.InterestRate / a.cfg.DaysPerYear
}

// ApplyDailyInterest charges one day of interest to w and returns it.
// Interest is charged even if it drives money negative.
func (a *Account) ApplyDailyInterest(w Wallet) float64 {
	interest := a.DailyInterest()
	if interest > 0 {
		w.Charge(interest)
	}
	return interest
}

// TotalDebt returns outstanding debt
func (a *Account) TotalDebt() float64 {
	return a.totalDebt
}

// AvailableCredit is how much more can be borrowed
func (a *Account) AvailableCredit() float64 {
	return a.cfg.MaxLoanAmount - a.totalDebt
}

// State is a read-only view of the account
type State struct {
	TotalDebt       float64 `json:"total_debt"`
	InterestRate    float64 `json:"interest_rate"`
	MaxLoanAmount   float64 `json:"max_loan_amount"`
	DailyInterest   float64 `json:"daily_interest"`
	AvailableCredit float64 `json:"available_credit"`
}

// Snapshot returns the current account state
func (a *Account) Snapshot() State {
	return State{
		TotalDebt:       a.totalDebt,
		InterestRate:    a.cfg.InterestRate,
		MaxLoanAmount:   a.cfg.MaxLoanAmount,
		DailyInterest:   a.DailyInterest(),
		AvailableCredit: a.AvailableCredit(),
	}
}
