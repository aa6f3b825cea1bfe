package emi

// Calculator slider bounds and defaults.
const (
	MinSliderDuration     = 1
	MaxSliderDuration     = 24
	DownPaymentSliderStep = 5
	DefaultEstimatorPrice = 50000
	DefaultDurationMonths = 3
)

// State is the lifecycle of the full calculator.
type State int

const (
	// StateEditing means inputs changed since the last calculation.
	StateEditing State = iota
	// StateCalculated means the stored result matches the current inputs.
	StateCalculated
)

func (s State) String() string {
	switch s {
	case StateCalculated:
		return "calculated"
	default:
		return "editing"
	}
}

// Snapshot is an immutable view of an Estimator.
type Snapshot struct {
	State          State               `json:"-"`
	StateName      string              `json:"state"`
	Price          float64             `json:"price"`
	DownPayment    DownPaymentState    `json:"downPayment"`
	DurationMonths int                 `json:"durationMonths"`
	Result         *AmortizationResult `json:"result,omitempty"`
}

// Estimator holds the editable inputs of the full calculator. Any input
// mutation discards a previous result; Calculate must run again before a
// result is visible. An Estimator is not safe for concurrent use.
type Estimator struct {
	engine      *Engine
	state       State
	price       float64
	downPayment DownPaymentState
	duration    int
	result      AmortizationResult
}

// NewEstimator starts in StateEditing with the default price, no down
// payment and a 3 month duration.
func NewEstimator(engine *Engine) *Estimator {
	if engine == nil {
		engine = NewDefaultEngine()
	}
	return &Estimator{
		engine:   engine,
		state:    StateEditing,
		price:    DefaultEstimatorPrice,
		duration: DefaultDurationMonths,
	}
}

// State returns the current lifecycle state.
func (e *Estimator) State() State {
	return e.state
}

// SetPrice changes the price. The down payment percent is kept and the
// amount follows.
func (e *Estimator) SetPrice(price float64) {
	e.price = nonNegative(price)
	e.downPayment = OnPriceChange(e.price, e.downPayment.Percent)
	e.invalidate()
}

// SetDownPaymentAmount sets the down payment from an absolute amount.
func (e *Estimator) SetDownPaymentAmount(amount float64) {
	e.downPayment = SetByAmount(amount, e.price)
	e.invalidate()
}

// SetDownPaymentPercent sets the down payment from a share of the price.
func (e *Estimator) SetDownPaymentPercent(percent float64) {
	e.downPayment = SetByPercent(percent, e.price)
	e.invalidate()
}

// SetDuration changes the loan duration. Durations below one month are
// rejected and leave the estimator untouched.
func (e *Estimator) SetDuration(months int) error {
	if months < 1 {
		return ErrInvalidDuration
	}
	e.duration = months
	e.invalidate()
	return nil
}

// Calculate runs the engine on the current inputs and moves to
// StateCalculated.
func (e *Estimator) Calculate() (AmortizationResult, error) {
	result, err := e.engine.Calculate(e.Parameters())
	if err != nil {
		return AmortizationResult{}, err
	}
	e.result = result
	e.state = StateCalculated
	return result, nil
}

// Result returns the stored result; ok is false while editing.
func (e *Estimator) Result() (AmortizationResult, bool) {
	if e.state != StateCalculated {
		return AmortizationResult{}, false
	}
	return e.result, true
}

// Parameters returns the current inputs as loan parameters.
func (e *Estimator) Parameters() LoanParameters {
	return LoanParameters{
		Price:          e.price,
		DownPayment:    e.downPayment.Amount,
		DurationMonths: e.duration,
	}
}

// DownPayment returns the synchronized amount and percent.
func (e *Estimator) DownPayment() DownPaymentState {
	return e.downPayment
}

// Snapshot captures inputs, state and the result if one is current.
func (e *Estimator) Snapshot() Snapshot {
	snap := Snapshot{
		State:          e.state,
		StateName:      e.state.String(),
		Price:          e.price,
		DownPayment:    e.downPayment,
		DurationMonths: e.duration,
	}
	if result, ok := e.Result(); ok {
		snap.Result = &result
	}
	return snap
}

func (e *Estimator) invalidate() {
	e.state = StateEditing
	e.result = AmortizationResult{}
}
