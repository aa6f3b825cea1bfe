// Package emi computes equated monthly installments for in-store financing.
// It holds the duration-keyed rate policy, the amortization engine, the
// down payment amount/percent synchronization and the estimator state used
// by the calculator, the per-product widget and the payment info page.
// Everything here is pure and safe for concurrent use.
package emi

import (
	"errors"
	"math"
	"sort"
)

// Validation errors returned by the package.
var (
	ErrInvalidDuration   = errors.New("duration must be at least one month")
	ErrInvalidAmount     = errors.New("amount must be a non-negative number")
	ErrInvalidRate       = errors.New("interest rate must be a non-negative number")
	ErrDuplicateDuration = errors.New("duplicate duration in rate table")
)

// DefaultFallbackRatePercent applies to every duration missing from the table.
const DefaultFallbackRatePercent = 6

// RateEntry maps a loan duration to its annual interest rate.
type RateEntry struct {
	DurationMonths    int     `json:"durationMonths"`
	AnnualRatePercent float64 `json:"annualRatePercent"`
}

// RatePolicy resolves the annual rate for a loan duration.
// The zero value resolves every duration to 0%.
type RatePolicy struct {
	rates    map[int]float64
	fallback float64
}

// DefaultRatePolicy returns the store's financing table:
// 3 months interest free, 6 months at 6%, 9 months at 4%, and 6% for any
// other duration. The 9 month plan being cheaper than the 6 month plan is
// a business rule, not a curve.
func DefaultRatePolicy() RatePolicy {
	return RatePolicy{
		rates: map[int]float64{
			3: 0,
			6: 6,
			9: 4,
		},
		fallback: DefaultFallbackRatePercent,
	}
}

// NewRatePolicy builds a policy from explicit entries and a fallback rate.
func NewRatePolicy(entries []RateEntry, fallbackPercent float64) (RatePolicy, error) {
	if !validRate(fallbackPercent) {
		return RatePolicy{}, ErrInvalidRate
	}

	rates := make(map[int]float64, len(entries))
	for _, e := range entries {
		if e.DurationMonths < 1 {
			return RatePolicy{}, ErrInvalidDuration
		}
		if !validRate(e.AnnualRatePercent) {
			return RatePolicy{}, ErrInvalidRate
		}
		if _, dup := rates[e.DurationMonths]; dup {
			return RatePolicy{}, ErrDuplicateDuration
		}
		rates[e.DurationMonths] = e.AnnualRatePercent
	}

	return RatePolicy{rates: rates, fallback: fallbackPercent}, nil
}

// RateFor returns the annual rate in percent for the given duration.
// It is total: unknown durations get the fallback rate.
func (p RatePolicy) RateFor(durationMonths int) float64 {
	if rate, ok := p.rates[durationMonths]; ok {
		return rate
	}
	return p.fallback
}

// FallbackRatePercent returns the rate used for durations outside the table.
func (p RatePolicy) FallbackRatePercent() float64 {
	return p.fallback
}

// Entries returns the explicit table sorted by duration.
func (p RatePolicy) Entries() []RateEntry {
	entries := make([]RateEntry, 0, len(p.rates))
	for months, rate := range p.rates {
		entries = append(entries, RateEntry{DurationMonths: months, AnnualRatePercent: rate})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].DurationMonths < entries[j].DurationMonths
	})
	return entries
}

func validRate(rate float64) bool {
	return rate >= 0 && !math.IsInf(rate, 0) && !math.IsNaN(rate)
}
