package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gadgetpasal/backend/internal/apperror"
	"github.com/gadgetpasal/backend/internal/logger"
	"github.com/gadgetpasal/backend/internal/metrics"
	"github.com/gadgetpasal/backend/internal/model"
	"github.com/gadgetpasal/backend/pkg/currency"
	"github.com/gadgetpasal/backend/pkg/datetime"
	"github.com/gadgetpasal/backend/pkg/emi"
)

// Down payment input modes of the calculator.
const (
	DownPaymentModeAmount  = "amount"
	DownPaymentModePercent = "percent"
)

// CalculatorPath is the storefront page the product widget links to.
const CalculatorPath = "/emi-calculator"

// ProductLookup resolves catalog products. Missing products surface as
// apperror not-found errors.
type ProductLookup interface {
	GetProduct(ctx context.Context, id uuid.UUID) (*model.Product, error)
}

// OptionCache stores rendered option tables.
type OptionCache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

// EMIService serves the calculator, the per-product widget and the
// payment-info page from one amortization engine.
type EMIService struct {
	engine   *emi.Engine
	catalog  ProductLookup
	currency currency.Currency
	cache    OptionCache
	cacheTTL time.Duration
	today    func() datetime.Date
}

// NewEMIService creates an EMIService. A nil engine uses the default rate policy.
func NewEMIService(engine *emi.Engine, catalog ProductLookup, curr currency.Currency) *EMIService {
	if engine == nil {
		engine = emi.NewDefaultEngine()
	}
	if curr == "" {
		curr = currency.DefaultCurrency
	}
	return &EMIService{
		engine:   engine,
		catalog:  catalog,
		currency: curr,
		today:    datetime.Today,
	}
}

// WithOptionCache enables caching of per-product option tables.
func (s *EMIService) WithOptionCache(cache OptionCache, ttl time.Duration) *EMIService {
	s.cache = cache
	s.cacheTTL = ttl
	return s
}

// CalculateInput holds the calculator's inputs. When both down payment forms
// are set, the percent is used only in percent mode.
type CalculateInput struct {
	Price              float64
	DownPayment        *float64
	DownPaymentPercent *float64
	DurationMonths     int
	Mode               string
	IncludeSchedule    bool
}

// Quote is the display form of an amortization result. Every amount is
// rounded to whole units on its own, so Monthly*Months need not equal Total.
type Quote struct {
	State              string            `json:"state"`
	Currency           currency.Currency `json:"currency"`
	Price              decimal.Decimal   `json:"price"`
	DownPayment        decimal.Decimal   `json:"downPayment"`
	DownPaymentPercent int               `json:"downPaymentPercent"`
	LoanAmount         decimal.Decimal   `json:"loanAmount"`
	DurationMonths     int               `json:"durationMonths"`
	AnnualRatePercent  decimal.Decimal   `json:"annualRatePercent"`
	InterestFree       bool              `json:"interestFree"`
	MonthlyPayment     decimal.Decimal   `json:"monthlyPayment"`
	TotalPayment       decimal.Decimal   `json:"totalPayment"`
	InterestPaid       decimal.Decimal   `json:"interestPaid"`
	Formatted          FormattedQuote    `json:"formatted"`
	Schedule           []Installment     `json:"schedule,omitempty"`
}

type FormattedQuote struct {
	Price          string `json:"price"`
	DownPayment    string `json:"downPayment"`
	LoanAmount     string `json:"loanAmount"`
	AnnualRate     string `json:"annualRate"`
	MonthlyPayment string `json:"monthlyPayment"`
	TotalPayment   string `json:"totalPayment"`
	InterestPaid   string `json:"interestPaid"`
}

// Installment is one row of the repayment schedule.
type Installment struct {
	Month            int             `json:"month"`
	DueDate          datetime.Date   `json:"dueDate"`
	Payment          decimal.Decimal `json:"payment"`
	Principal        decimal.Decimal `json:"principal"`
	Interest         decimal.Decimal `json:"interest"`
	RemainingBalance decimal.Decimal `json:"remainingBalance"`
}

// Calculate runs the full calculator: it replays the inputs on an Estimator
// and presents the calculated result.
func (s *EMIService) Calculate(ctx context.Context, input CalculateInput) (*Quote, error) {
	quote, err := s.calculate(input)
	metrics.EMICalculations.WithLabelValues(metrics.VariantCalculator, metrics.Status(err)).Inc()
	if err != nil {
		logger.FromContext(ctx).Debug("emi calculation rejected", "error", err)
		return nil, err
	}
	return quote, nil
}

func (s *EMIService) calculate(input CalculateInput) (*Quote, error) {
	if input.DurationMonths < emi.MinSliderDuration || input.DurationMonths > emi.MaxSliderDuration {
		return nil, apperror.ValidationError("durationMonths",
			fmt.Sprintf("duration must be between %d and %d months", emi.MinSliderDuration, emi.MaxSliderDuration))
	}
	switch input.Mode {
	case "", DownPaymentModeAmount, DownPaymentModePercent:
	default:
		return nil, apperror.ValidationError("mode", "mode must be amount or percent")
	}

	est := emi.NewEstimator(s.engine)
	est.SetPrice(input.Price)
	switch {
	case input.DownPaymentPercent != nil && (input.DownPayment == nil || input.Mode == DownPaymentModePercent):
		est.SetDownPaymentPercent(*input.DownPaymentPercent)
	case input.DownPayment != nil:
		est.SetDownPaymentAmount(*input.DownPayment)
	}
	if err := est.SetDuration(input.DurationMonths); err != nil {
		return nil, apperror.Invalid("durationMonths", err)
	}

	if _, err := est.Calculate(); err != nil {
		return nil, apperror.Invalid("price", err)
	}

	snap := est.Snapshot()
	quote, err := s.present(snap.Price, snap.DownPayment, *snap.Result)
	if err != nil {
		return nil, err
	}
	quote.State = snap.StateName
	if input.IncludeSchedule {
		quote.Schedule = s.schedule(*snap.Result)
	}
	return quote, nil
}

// QuoteFor finances amount in full over months, as used at checkout.
func (s *EMIService) QuoteFor(ctx context.Context, amount decimal.Decimal, months int) (*Quote, error) {
	price := amount.InexactFloat64()
	quote, err := s.calculate(CalculateInput{Price: price, DurationMonths: months, IncludeSchedule: true})
	metrics.EMICalculations.WithLabelValues(metrics.VariantCheckout, metrics.Status(err)).Inc()
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Debug("checkout emi quote", "amount", amount.String(), "months", months)
	return quote, nil
}

func (s *EMIService) present(price float64, down emi.DownPaymentState, result emi.AmortizationResult) (*Quote, error) {
	for _, v := range []float64{price, down.Amount, result.MonthlyPayment, result.TotalPayment, result.InterestPaid} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, apperror.ValidationError("price", "amount is too large")
		}
	}

	quote := &Quote{
		Currency:           s.currency,
		Price:              whole(price),
		DownPayment:        whole(down.Amount),
		DownPaymentPercent: down.Percent,
		LoanAmount:         whole(result.LoanAmount),
		DurationMonths:     result.DurationMonths,
		AnnualRatePercent:  whole(result.AnnualRatePercent),
		InterestFree:       result.AnnualRatePercent == 0,
		MonthlyPayment:     whole(result.MonthlyPayment),
		TotalPayment:       whole(result.TotalPayment),
		InterestPaid:       whole(result.InterestPaid),
	}
	quote.Formatted = FormattedQuote{
		Price:          s.format(quote.Price),
		DownPayment:    s.format(quote.DownPayment),
		LoanAmount:     s.format(quote.LoanAmount),
		AnnualRate:     quote.AnnualRatePercent.String() + "%",
		MonthlyPayment: s.format(quote.MonthlyPayment),
		TotalPayment:   s.format(quote.TotalPayment),
		InterestPaid:   s.format(quote.InterestPaid),
	}
	return quote, nil
}

func (s *EMIService) schedule(result emi.AmortizationResult) []Installment {
	rows := emi.Schedule(result)
	due := datetime.InstallmentDueDates(s.today(), len(rows))

	out := make([]Installment, 0, len(rows))
	for i, row := range rows {
		out = append(out, Installment{
			Month:            row.Month,
			DueDate:          due[i],
			Payment:          whole(row.Payment),
			Principal:        whole(row.Principal),
			Interest:         whole(row.Interest),
			RemainingBalance: whole(row.RemainingBalance),
		})
	}
	return out
}

// DownPaymentInput asks for one side of the amount/percent pair.
type DownPaymentInput struct {
	Price   float64
	Amount  *float64
	Percent *float64
}

type DownPaymentQuote struct {
	Price           decimal.Decimal `json:"price"`
	Amount          decimal.Decimal `json:"amount"`
	Percent         int             `json:"percent"`
	FormattedAmount string          `json:"formattedAmount"`
}

// SyncDownPayment derives the missing side of the down payment pair.
func (s *EMIService) SyncDownPayment(input DownPaymentInput) (*DownPaymentQuote, error) {
	var state emi.DownPaymentState
	switch {
	case input.Amount != nil && input.Percent != nil:
		return nil, apperror.ValidationError("amount", "give either amount or percent, not both")
	case input.Amount != nil:
		state = emi.SetByAmount(*input.Amount, input.Price)
	case input.Percent != nil:
		state = emi.SetByPercent(*input.Percent, input.Price)
	default:
		return nil, apperror.ValidationError("amount", "amount or percent is required")
	}
	return s.downPaymentQuote(input.Price, state), nil
}

// RepriceDownPayment keeps percent fixed while the price changes.
func (s *EMIService) RepriceDownPayment(price float64, percent int) *DownPaymentQuote {
	return s.downPaymentQuote(price, emi.OnPriceChange(price, percent))
}

func (s *EMIService) downPaymentQuote(price float64, state emi.DownPaymentState) *DownPaymentQuote {
	amount := whole(state.Amount)
	return &DownPaymentQuote{
		Price:           whole(math.Max(price, 0)),
		Amount:          amount,
		Percent:         state.Percent,
		FormattedAmount: s.format(amount),
	}
}

// ProductEMIOption is one row of the per-product widget.
type ProductEMIOption struct {
	DurationMonths    int             `json:"durationMonths"`
	AnnualRatePercent decimal.Decimal `json:"annualRatePercent"`
	InterestFree      bool            `json:"interestFree"`
	Label             string          `json:"label"`
	MonthlyPayment    decimal.Decimal `json:"monthlyPayment"`
	TotalPayment      decimal.Decimal `json:"totalPayment"`
	FormattedMonthly  string          `json:"formattedMonthly"`
}

type ProductEMIOptions struct {
	ProductID     uuid.UUID          `json:"productId"`
	Currency      currency.Currency  `json:"currency"`
	Price         decimal.Decimal    `json:"price"`
	DownPayment   decimal.Decimal    `json:"downPayment"`
	Options       []ProductEMIOption `json:"options"`
	CalculatorURL string             `json:"calculatorUrl"`
}

// ProductOptions computes the standard plans for a catalog product.
// Tables are cached when a cache is configured; cache failures only log.
func (s *EMIService) ProductOptions(ctx context.Context, productID uuid.UUID, downPayment float64) (*ProductEMIOptions, error) {
	product, err := s.catalog.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	price := product.Price.InexactFloat64()
	down := emi.SetByAmount(downPayment, price)
	key := OptionsCacheKey(productID, product.Price, whole(down.Amount))

	if cached, ok := s.cachedOptions(ctx, key); ok {
		return cached, nil
	}

	options, err := emi.FixedOptions(s.engine, price, down.Amount)
	metrics.EMICalculations.WithLabelValues(metrics.VariantWidget, metrics.Status(err)).Inc()
	if err != nil {
		return nil, apperror.Invalid("price", err)
	}

	out := &ProductEMIOptions{
		ProductID:     product.ID,
		Currency:      s.currency,
		Price:         product.Price,
		DownPayment:   whole(down.Amount),
		Options:       make([]ProductEMIOption, 0, len(options)),
		CalculatorURL: CalculatorPath + "?price=" + product.Price.String(),
	}
	for _, opt := range options {
		monthly := whole(opt.Result.MonthlyPayment)
		out.Options = append(out.Options, ProductEMIOption{
			DurationMonths:    opt.Result.DurationMonths,
			AnnualRatePercent: whole(opt.Result.AnnualRatePercent),
			InterestFree:      opt.Result.AnnualRatePercent == 0,
			Label:             opt.Label,
			MonthlyPayment:    monthly,
			TotalPayment:      whole(opt.Result.TotalPayment),
			FormattedMonthly:  s.format(monthly) + "/mo",
		})
	}

	s.storeOptions(ctx, key, out)
	return out, nil
}

// OptionsCacheKey identifies an option table by product, price and down payment.
func OptionsCacheKey(productID uuid.UUID, price, downPayment decimal.Decimal) string {
	return fmt.Sprintf("emi:options:%s:%s:%s", productID, price.String(), downPayment.String())
}

func (s *EMIService) cachedOptions(ctx context.Context, key string) (*ProductEMIOptions, bool) {
	if s.cache == nil {
		return nil, false
	}

	raw, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		metrics.EMIOptionsCache.WithLabelValues("error").Inc()
		logger.FromContext(ctx).Warn("emi options cache read failed", "key", key, "error", err)
		return nil, false
	}
	if !ok {
		metrics.EMIOptionsCache.WithLabelValues("miss").Inc()
		return nil, false
	}

	var out ProductEMIOptions
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		metrics.EMIOptionsCache.WithLabelValues("error").Inc()
		logger.FromContext(ctx).Warn("emi options cache entry unreadable", "key", key, "error", err)
		return nil, false
	}
	metrics.EMIOptionsCache.WithLabelValues("hit").Inc()
	return &out, true
}

func (s *EMIService) storeOptions(ctx context.Context, key string, options *ProductEMIOptions) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(options)
	if err != nil {
		logger.FromContext(ctx).Warn("emi options encode failed", "key", key, "error", err)
		return
	}
	if err := s.cache.Set(ctx, key, string(raw), s.cacheTTL); err != nil {
		logger.FromContext(ctx).Warn("emi options cache write failed", "key", key, "error", err)
	}
}

// PlanRate is one row of the published rate table.
type PlanRate struct {
	DurationMonths    int     `json:"durationMonths"`
	AnnualRatePercent float64 `json:"annualRatePercent"`
	InterestFree      bool    `json:"interestFree"`
	Label             string  `json:"label"`
}

// WalletOption is a digital wallet accepted for payment.
type WalletOption struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// PaymentPlans is the content of the payment-info page.
type PaymentPlans struct {
	Rates               []PlanRate     `json:"rates"`
	FallbackRatePercent float64        `json:"fallbackRatePercent"`
	StandardDurations   []int          `json:"standardDurations"`
	MinDurationMonths   int            `json:"minDurationMonths"`
	MaxDurationMonths   int            `json:"maxDurationMonths"`
	DownPaymentStep     int            `json:"downPaymentStep"`
	Terms               []string       `json:"terms"`
	Banks               []string       `json:"banks"`
	Wallets             []WalletOption `json:"wallets"`
}

var emiConditions = []string{
	"Valid ID proof and address proof are required for EMI processing",
	"EMI facility is subject to approval based on customer eligibility",
	"Late payment fees will apply for missed installments",
}

var partnerBanks = []string{
	"Nepal Investment Bank",
	"Nabil Bank",
	"Nepal Bank Limited",
	"Rastriya Banijya Bank",
	"NIC Asia Bank",
	"Everest Bank",
	"Himalayan Bank",
	"Machhapuchhre Bank",
	"Global IME Bank",
	"Kumari Bank",
	"Laxmi Bank",
	"Siddhartha Bank",
	"Citizens Bank International",
	"Prime Commercial Bank",
	"Sunrise Bank",
}

var digitalWallets = []WalletOption{
	{Name: "eSewa", Description: "Nepal's leading digital wallet service"},
	{Name: "Khalti", Description: "Digital wallet and payment gateway"},
	{Name: "IME Pay", Description: "Mobile wallet for payments and remittances"},
	{Name: "ConnectIPS", Description: "National Payment Gateway by Nepal Clearing House"},
}

// Plans describes the rate policy and EMI terms. The rate lines of the terms
// are generated from the policy so the page cannot drift from the calculator.
func (s *EMIService) Plans() PaymentPlans {
	policy := s.engine.Policy()
	entries := policy.Entries()

	rates := make([]PlanRate, 0, len(entries))
	terms := make([]string, 0, len(entries)+1+len(emiConditions))
	for _, e := range entries {
		rates = append(rates, PlanRate{
			DurationMonths:    e.DurationMonths,
			AnnualRatePercent: e.AnnualRatePercent,
			InterestFree:      e.AnnualRatePercent == 0,
			Label:             emi.OptionLabel(e.DurationMonths, e.AnnualRatePercent),
		})
		terms = append(terms, rateTerm(e))
	}
	terms = append(terms, fmt.Sprintf("Any other duration will have a %s%% interest rate", percentText(policy.FallbackRatePercent())))
	terms = append(terms, emiConditions...)

	return PaymentPlans{
		Rates:               rates,
		FallbackRatePercent: policy.FallbackRatePercent(),
		StandardDurations:   append([]int{}, emi.StandardDurations...),
		MinDurationMonths:   emi.MinSliderDuration,
		MaxDurationMonths:   emi.MaxSliderDuration,
		DownPaymentStep:     emi.DownPaymentSliderStep,
		Terms:               terms,
		Banks:               append([]string{}, partnerBanks...),
		Wallets:             append([]WalletOption{}, digitalWallets...),
	}
}

func rateTerm(e emi.RateEntry) string {
	if e.AnnualRatePercent == 0 {
		return fmt.Sprintf("%d months EMI comes with 0%% interest", e.DurationMonths)
	}
	return fmt.Sprintf("%d months EMI comes with %s%% interest rate", e.DurationMonths, percentText(e.AnnualRatePercent))
}

func percentText(rate float64) string {
	return decimal.NewFromFloat(rate).String()
}

func (s *EMIService) format(amount decimal.Decimal) string {
	return currency.NewMoney(amount, s.currency).FormatWhole()
}

// whole rounds half away from zero to whole currency units.
func whole(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(0)
}
