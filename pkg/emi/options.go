package emi

import "fmt"

// StandardDurations are the plans offered next to every product, in display
// order. They are a curated subset of the calculator's 1..24 slider.
var StandardDurations = []int{3, 6, 9, 12}

// Option is one precomputed plan of the per-product widget.
type Option struct {
	Label  string             `json:"label"`
	Result AmortizationResult `json:"result"`
}

// FixedOptions computes every standard plan for a price and down payment.
// There is no calculate step: callers recompute whenever price or down
// payment change. The down payment is clamped to [0, price].
func FixedOptions(engine *Engine, price, downPayment float64) ([]Option, error) {
	if engine == nil {
		engine = NewDefaultEngine()
	}

	price = nonNegative(price)
	down := SetByAmount(downPayment, price)

	options := make([]Option, 0, len(StandardDurations))
	for _, months := range StandardDurations {
		result, err := engine.Calculate(LoanParameters{
			Price:          price,
			DownPayment:    down.Amount,
			DurationMonths: months,
		})
		if err != nil {
			return nil, fmt.Errorf("computing %d month plan: %w", months, err)
		}
		options = append(options, Option{
			Label:  OptionLabel(months, result.AnnualRatePercent),
			Result: result,
		})
	}
	return options, nil
}

// OptionLabel names a plan, flagging interest free ones.
func OptionLabel(months int, annualRatePercent float64) string {
	unit := "Months"
	if months == 1 {
		unit = "Month"
	}
	if annualRatePercent == 0 {
		return fmt.Sprintf("%d %s (No interest)", months, unit)
	}
	return fmt.Sprintf("%d %s", months, unit)
}
