package emi

import (
	"math"
)

// LoanParameters are the user inputs of a financing quote.
type LoanParameters struct {
	Price          float64 `json:"price"`
	DownPayment    float64 `json:"downPayment"`
	DurationMonths int     `json:"durationMonths"`
}

// Validate checks price >= 0, 0 <= downPayment <= price and duration >= 1.
func (p LoanParameters) Validate() error {
	if !validAmount(p.Price) || !validAmount(p.DownPayment) || p.DownPayment > p.Price {
		return ErrInvalidAmount
	}
	if p.DurationMonths < 1 {
		return ErrInvalidDuration
	}
	return nil
}

// AmortizationResult summarizes a level-payment loan.
// Amounts are unrounded; callers round each field independently for display.
type AmortizationResult struct {
	MonthlyPayment    float64 `json:"monthlyPayment"`
	TotalPayment      float64 `json:"totalPayment"`
	InterestPaid      float64 `json:"interestPaid"`
	AnnualRatePercent float64 `json:"annualRatePercent"`
	LoanAmount        float64 `json:"loanAmount"`
	DurationMonths    int     `json:"durationMonths"`
}

// Engine combines a rate policy with the amortization formula.
type Engine struct {
	policy RatePolicy
}

// NewEngine creates an Engine backed by the given policy.
func NewEngine(policy RatePolicy) *Engine {
	return &Engine{policy: policy}
}

// NewDefaultEngine creates an Engine backed by DefaultRatePolicy.
func NewDefaultEngine() *Engine {
	return NewEngine(DefaultRatePolicy())
}

// Policy returns the engine's rate policy.
func (e *Engine) Policy() RatePolicy {
	return e.policy
}

// Calculate resolves the rate for the duration and amortizes price minus
// down payment over it.
func (e *Engine) Calculate(params LoanParameters) (AmortizationResult, error) {
	if err := params.Validate(); err != nil {
		return AmortizationResult{}, err
	}

	rate := e.policy.RateFor(params.DurationMonths)
	loanAmount := params.Price - params.DownPayment

	monthly, err := MonthlyPayment(loanAmount, params.DurationMonths, rate)
	if err != nil {
		return AmortizationResult{}, err
	}

	total := monthly * float64(params.DurationMonths)

	return AmortizationResult{
		MonthlyPayment:    monthly,
		TotalPayment:      total,
		InterestPaid:      total - loanAmount,
		AnnualRatePercent: rate,
		LoanAmount:        loanAmount,
		DurationMonths:    params.DurationMonths,
	}, nil
}

// MonthlyPayment returns the level payment that amortizes loanAmount over
// durationMonths at the given annual rate.
// M = L * r(1+r)^n / ((1+r)^n - 1), with r the monthly rate.
// A zero rate divides the loan evenly.
func MonthlyPayment(loanAmount float64, durationMonths int, annualRatePercent float64) (float64, error) {
	if durationMonths < 1 {
		return 0, ErrInvalidDuration
	}
	if !validAmount(loanAmount) {
		return 0, ErrInvalidAmount
	}
	if !validRate(annualRatePercent) {
		return 0, ErrInvalidRate
	}

	n := float64(durationMonths)
	if annualRatePercent == 0 {
		return loanAmount / n, nil
	}

	r := annualRatePercent / 100 / 12
	growth := math.Pow(1+r, n)
	return loanAmount * r * growth / (growth - 1), nil
}

// ScheduleRow is one month of an amortization table.
type ScheduleRow struct {
	Month            int     `json:"month"`
	Payment          float64 `json:"payment"`
	Principal        float64 `json:"principal"`
	Interest         float64 `json:"interest"`
	RemainingBalance float64 `json:"remainingBalance"`
}

// Schedule expands a result into its month-by-month breakdown.
// The last row absorbs floating point residue so the balance closes at zero.
func Schedule(result AmortizationResult) []ScheduleRow {
	if result.DurationMonths < 1 {
		return nil
	}

	r := result.AnnualRatePercent / 100 / 12
	balance := result.LoanAmount
	rows := make([]ScheduleRow, 0, result.DurationMonths)

	for month := 1; month <= result.DurationMonths; month++ {
		interest := balance * r
		principal := result.MonthlyPayment - interest
		payment := result.MonthlyPayment

		if month == result.DurationMonths {
			principal = balance
			payment = principal + interest
		}

		balance -= principal

		rows = append(rows, ScheduleRow{
			Month:            month,
			Payment:          payment,
			Principal:        principal,
			Interest:         interest,
			RemainingBalance: balance,
		})
	}

	return rows
}

func validAmount(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
