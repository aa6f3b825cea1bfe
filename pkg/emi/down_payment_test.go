package emi

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetByAmount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		amount      float64
		price       float64
		wantAmount  float64
		wantPercent int
	}{
		{"within range", 20000, 100000, 20000, 20},
		{"rounds percent", 12345, 100000, 12345, 12},
		{"clamps above price", 150000, 100000, 100000, 100},
		{"clamps negative", -500, 100000, 0, 0},
		{"zero price", 5000, 0, 0, 0},
		{"NaN amount", math.NaN(), 1000, 0, 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := SetByAmount(tt.amount, tt.price)
			assert.Equal(t, tt.wantAmount, got.Amount)
			assert.Equal(t, tt.wantPercent, got.Percent)
		})
	}
}

func TestSetByAmount_AlwaysWithinPrice(t *testing.T) {
	t.Parallel()

	raw := []float64{-1e9, -1, 0, 1, 499.5, 1e4, 1e6, 1e12, math.Inf(1), math.Inf(-1)}
	prices := []float64{0, 1, 333, 50000, 175000}

	for _, price := range prices {
		for _, amount := range raw {
			got := SetByAmount(amount, price)
			assert.GreaterOrEqual(t, got.Amount, 0.0)
			assert.LessOrEqual(t, got.Amount, price)
			assert.GreaterOrEqual(t, got.Percent, 0)
			assert.LessOrEqual(t, got.Percent, 100)
		}
	}
}

func TestSetByPercent(t *testing.T) {
	t.Parallel()

	assert.Equal(t, DownPaymentState{Amount: 25000, Percent: 25}, SetByPercent(25, 100000))
	assert.Equal(t, DownPaymentState{Amount: 100000, Percent: 100}, SetByPercent(140, 100000))
	assert.Equal(t, DownPaymentState{Amount: 0, Percent: 0}, SetByPercent(-10, 100000))
	assert.Equal(t, DownPaymentState{Amount: 0, Percent: 35}, SetByPercent(35, 0))
	// 5% of 333 is 16.65
	assert.Equal(t, 17.0, SetByPercent(5, 333).Amount)
}

func TestSetByPercent_RoundTrip(t *testing.T) {
	t.Parallel()

	// whole-unit rounding keeps the round trip within one percent once a
	// unit is at most one percent of the price
	prices := []float64{100, 333, 1001, 50000, 123457, 175000}
	for _, price := range prices {
		for percent := 0; percent <= 100; percent++ {
			state := SetByPercent(float64(percent), price)
			back := SetByAmount(state.Amount, price)
			assert.InDelta(t, percent, back.Percent, 1, "price=%v percent=%d", price, percent)
		}
	}
}

func TestOnPriceChange(t *testing.T) {
	t.Parallel()

	got := OnPriceChange(80000, 20)
	assert.Equal(t, DownPaymentState{Amount: 16000, Percent: 20}, got)

	got = OnPriceChange(0, 20)
	assert.Equal(t, 0.0, got.Amount)
	assert.Equal(t, 20, got.Percent)
}
