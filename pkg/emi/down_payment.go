package emi

import "math"

// DownPaymentState keeps the down payment amount and its share of the price
// consistent. Percent is a whole number in 0..100.
type DownPaymentState struct {
	Amount  float64 `json:"amount"`
	Percent int     `json:"percent"`
}

// SetByAmount clamps the amount to [0, price] and derives the percent.
// Percent is 0 when the price is 0.
func SetByAmount(rawAmount, price float64) DownPaymentState {
	price = nonNegative(price)
	amount := math.Min(nonNegative(rawAmount), price)

	return DownPaymentState{
		Amount:  amount,
		Percent: percentOf(amount, price),
	}
}

// SetByPercent clamps the percent to [0, 100] and derives the amount.
func SetByPercent(rawPercent, price float64) DownPaymentState {
	percent := clampPercent(rawPercent)

	return DownPaymentState{
		Amount:  math.Round(float64(percent) / 100 * nonNegative(price)),
		Percent: percent,
	}
}

// OnPriceChange keeps the percent and lets the amount follow the new price.
func OnPriceChange(newPrice float64, currentPercent int) DownPaymentState {
	return SetByPercent(float64(currentPercent), newPrice)
}

func percentOf(amount, price float64) int {
	if price <= 0 {
		return 0
	}
	return clampPercent(amount / price * 100)
}

func clampPercent(p float64) int {
	if math.IsNaN(p) || p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return int(math.Round(p))
}

func nonNegative(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if math.IsInf(v, 1) {
		return math.MaxFloat64
	}
	return v
}
