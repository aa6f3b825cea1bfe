package service

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/gadgetpasal/backend/internal/apperror"
	"github.com/gadgetpasal/backend/internal/model"
	"github.com/gadgetpasal/backend/pkg/currency"
	"github.com/gadgetpasal/backend/pkg/datetime"
)

// MockProductLookup implements ProductLookup for testing
type MockProductLookup struct {
	mock.Mock
}

func (m *MockProductLookup) GetProduct(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

// fakeCache is an in-memory OptionCache that can be told to fail.
type fakeCache struct {
	mu      sync.Mutex
	entries map[string]string
	getErr  error
	setErr  error
	sets    int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string]string{}}
}

func (c *fakeCache) Get(_ context.Context, key string) (string, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return "", false, c.getErr
	}
	v, ok := c.entries[key]
	return v, ok, nil
}

func (c *fakeCache) Set(_ context.Context, key, value string, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets++
	if c.setErr != nil {
		return c.setErr
	}
	c.entries[key] = value
	return nil
}

func floatPtr(v float64) *float64 { return &v }

func newTestEMIService(catalog ProductLookup) *EMIService {
	svc := NewEMIService(nil, catalog, "")
	svc.today = func() datetime.Date { return datetime.NewDate(2024, time.January, 31) }
	return svc
}

func TestEMIService_Calculate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		input        CalculateInput
		wantMonthly  int64
		wantTotal    int64
		wantInterest int64
		wantRate     int64
		wantLoan     int64
		wantPercent  int
	}{
		{
			name:        "three months is interest free",
			input:       CalculateInput{Price: 50000, DurationMonths: 3},
			wantMonthly: 16667,
			wantTotal:   50000,
			wantLoan:    50000,
		},
		{
			name:         "six months at six percent",
			input:        CalculateInput{Price: 50000, DurationMonths: 6},
			wantMonthly:  8480,
			wantTotal:    50879,
			wantInterest: 879,
			wantRate:     6,
			wantLoan:     50000,
		},
		{
			name:         "nine months at four percent with amount down payment",
			input:        CalculateInput{Price: 100000, DownPayment: floatPtr(20000), DurationMonths: 9},
			wantMonthly:  9038,
			wantTotal:    81339,
			wantInterest: 1339,
			wantRate:     4,
			wantLoan:     80000,
			wantPercent:  20,
		},
		{
			name:        "percent only",
			input:       CalculateInput{Price: 60000, DownPaymentPercent: floatPtr(50), DurationMonths: 3},
			wantMonthly: 10000,
			wantTotal:   30000,
			wantLoan:    30000,
			wantPercent: 50,
		},
		{
			name: "percent wins in percent mode",
			input: CalculateInput{
				Price: 60000, DownPayment: floatPtr(6000), DownPaymentPercent: floatPtr(50),
				DurationMonths: 3, Mode: DownPaymentModePercent,
			},
			wantMonthly: 10000,
			wantTotal:   30000,
			wantLoan:    30000,
			wantPercent: 50,
		},
		{
			name: "amount wins in amount mode",
			input: CalculateInput{
				Price: 60000, DownPayment: floatPtr(6000), DownPaymentPercent: floatPtr(50),
				DurationMonths: 3, Mode: DownPaymentModeAmount,
			},
			wantMonthly: 18000,
			wantTotal:   54000,
			wantLoan:    54000,
			wantPercent: 10,
		},
		{
			name:        "down payment above price is clamped",
			input:       CalculateInput{Price: 30000, DownPayment: floatPtr(90000), DurationMonths: 6},
			wantRate:    6,
			wantPercent: 100,
		},
		{
			name:        "negative price reads as zero",
			input:       CalculateInput{Price: -500, DurationMonths: 12},
			wantRate:    6,
			wantMonthly: 0,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := newTestEMIService(nil)

			quote, err := svc.Calculate(context.Background(), tt.input)

			require.NoError(t, err)
			assert.Equal(t, "calculated", quote.State)
			assert.Equal(t, currency.NPR, quote.Currency)
			assert.True(t, decimal.NewFromInt(tt.wantMonthly).Equal(quote.MonthlyPayment), "monthly %s", quote.MonthlyPayment)
			assert.True(t, decimal.NewFromInt(tt.wantTotal).Equal(quote.TotalPayment), "total %s", quote.TotalPayment)
			assert.True(t, decimal.NewFromInt(tt.wantInterest).Equal(quote.InterestPaid), "interest %s", quote.InterestPaid)
			assert.True(t, decimal.NewFromInt(tt.wantRate).Equal(quote.AnnualRatePercent), "rate %s", quote.AnnualRatePercent)
			assert.True(t, decimal.NewFromInt(tt.wantLoan).Equal(quote.LoanAmount), "loan %s", quote.LoanAmount)
			assert.Equal(t, tt.wantPercent, quote.DownPaymentPercent)
			assert.Equal(t, tt.wantRate == 0, quote.InterestFree)
			assert.Empty(t, quote.Schedule)
		})
	}
}

func TestEMIService_Calculate_Formatted(t *testing.T) {
	t.Parallel()
	svc := newTestEMIService(nil)

	quote, err := svc.Calculate(context.Background(), CalculateInput{Price: 50000, DurationMonths: 6})

	require.NoError(t, err)
	assert.Equal(t, "NPR 8,480", quote.Formatted.MonthlyPayment)
	assert.Equal(t, "NPR 879", quote.Formatted.InterestPaid)
	assert.Equal(t, "6%", quote.Formatted.AnnualRate)
}

func TestEMIService_Calculate_Rejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input CalculateInput
		field string
	}{
		{name: "zero duration", input: CalculateInput{Price: 50000, DurationMonths: 0}, field: "durationMonths"},
		{name: "duration above slider", input: CalculateInput{Price: 50000, DurationMonths: 25}, field: "durationMonths"},
		{name: "unknown mode", input: CalculateInput{Price: 50000, DurationMonths: 3, Mode: "ratio"}, field: "mode"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := newTestEMIService(nil)

			quote, err := svc.Calculate(context.Background(), tt.input)

			assert.Nil(t, quote)
			assert.Equal(t, http.StatusBadRequest, apperror.GetStatusCode(err))
			assert.Equal(t, tt.field, apperror.GetField(err))
		})
	}
}

func TestEMIService_Calculate_Schedule(t *testing.T) {
	t.Parallel()
	svc := newTestEMIService(nil)

	quote, err := svc.Calculate(context.Background(), CalculateInput{Price: 50000, DurationMonths: 3, IncludeSchedule: true})

	require.NoError(t, err)
	require.Len(t, quote.Schedule, 3)
	assert.Equal(t, 1, quote.Schedule[0].Month)
	assert.Equal(t, "2024-03-01", quote.Schedule[0].DueDate.String())
	assert.Equal(t, "2024-05-01", quote.Schedule[2].DueDate.String())
	assert.True(t, quote.Schedule[2].RemainingBalance.IsZero())
	assert.True(t, quote.Schedule[0].Interest.IsZero())
}

func TestEMIService_QuoteFor(t *testing.T) {
	t.Parallel()
	svc := newTestEMIService(nil)

	quote, err := svc.QuoteFor(context.Background(), decimal.NewFromInt(50000), 6)

	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(8480).Equal(quote.MonthlyPayment))
	assert.True(t, quote.DownPayment.IsZero())
	assert.Len(t, quote.Schedule, 6)

	_, err = svc.QuoteFor(context.Background(), decimal.NewFromInt(50000), 30)
	assert.Equal(t, http.StatusBadRequest, apperror.GetStatusCode(err))
}

func TestEMIService_SyncDownPayment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		input       DownPaymentInput
		wantAmount  int64
		wantPercent int
		wantErr     bool
	}{
		{name: "from amount", input: DownPaymentInput{Price: 80000, Amount: floatPtr(20000)}, wantAmount: 20000, wantPercent: 25},
		{name: "from percent", input: DownPaymentInput{Price: 80000, Percent: floatPtr(10)}, wantAmount: 8000, wantPercent: 10},
		{name: "amount clamped", input: DownPaymentInput{Price: 80000, Amount: floatPtr(100000)}, wantAmount: 80000, wantPercent: 100},
		{name: "percent clamped", input: DownPaymentInput{Price: 80000, Percent: floatPtr(-5)}, wantAmount: 0, wantPercent: 0},
		{name: "both sides", input: DownPaymentInput{Price: 80000, Amount: floatPtr(1), Percent: floatPtr(1)}, wantErr: true},
		{name: "neither side", input: DownPaymentInput{Price: 80000}, wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := newTestEMIService(nil)

			got, err := svc.SyncDownPayment(tt.input)

			if tt.wantErr {
				assert.Equal(t, http.StatusBadRequest, apperror.GetStatusCode(err))
				return
			}
			require.NoError(t, err)
			assert.True(t, decimal.NewFromInt(tt.wantAmount).Equal(got.Amount), "amount %s", got.Amount)
			assert.Equal(t, tt.wantPercent, got.Percent)
		})
	}
}

func TestEMIService_RepriceDownPayment(t *testing.T) {
	t.Parallel()
	svc := newTestEMIService(nil)

	got := svc.RepriceDownPayment(60000, 25)

	assert.True(t, decimal.NewFromInt(15000).Equal(got.Amount))
	assert.Equal(t, 25, got.Percent)
	assert.Equal(t, "NPR 15,000", got.FormattedAmount)
}

func TestEMIService_ProductOptions(t *testing.T) {
	t.Parallel()
	productID := uuid.New()
	product := &model.Product{ID: productID, Name: "Pixel", Price: decimal.NewFromInt(60000), Stock: 1}

	catalog := new(MockProductLookup)
	catalog.On("GetProduct", mock.Anything, productID).Return(product, nil)
	svc := newTestEMIService(catalog)

	got, err := svc.ProductOptions(context.Background(), productID, 0)

	require.NoError(t, err)
	require.Len(t, got.Options, 4)
	assert.Equal(t, "3 Months (No interest)", got.Options[0].Label)
	assert.True(t, got.Options[0].InterestFree)
	assert.True(t, decimal.NewFromInt(20000).Equal(got.Options[0].MonthlyPayment))
	assert.Equal(t, "NPR 20,000/mo", got.Options[0].FormattedMonthly)
	assert.Equal(t, "6 Months", got.Options[1].Label)
	assert.Equal(t, 12, got.Options[3].DurationMonths)
	assert.Equal(t, "/emi-calculator?price=60000", got.CalculatorURL)
	catalog.AssertExpectations(t)
}

func TestEMIService_ProductOptions_NotFound(t *testing.T) {
	t.Parallel()
	productID := uuid.New()

	catalog := new(MockProductLookup)
	catalog.On("GetProduct", mock.Anything, productID).Return(nil, apperror.NotFound("product"))
	svc := newTestEMIService(catalog)

	got, err := svc.ProductOptions(context.Background(), productID, 0)

	assert.Nil(t, got)
	assert.Equal(t, http.StatusNotFound, apperror.GetStatusCode(err))
}

func TestEMIService_ProductOptions_Cache(t *testing.T) {
	t.Parallel()
	productID := uuid.New()
	product := &model.Product{ID: productID, Name: "Pixel", Price: decimal.NewFromInt(60000), Stock: 1}

	catalog := new(MockProductLookup)
	catalog.On("GetProduct", mock.Anything, productID).Return(product, nil)
	cache := newFakeCache()
	svc := newTestEMIService(catalog).WithOptionCache(cache, time.Minute)

	first, err := svc.ProductOptions(context.Background(), productID, 6000)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.sets)

	key := OptionsCacheKey(productID, product.Price, decimal.NewFromInt(6000))
	assert.Contains(t, cache.entries, key)

	second, err := svc.ProductOptions(context.Background(), productID, 6000)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.sets, "hit must not write again")
	assert.Equal(t, first.CalculatorURL, second.CalculatorURL)
	require.Len(t, second.Options, len(first.Options))
	assert.True(t, first.Options[1].MonthlyPayment.Equal(second.Options[1].MonthlyPayment))
}

func TestEMIService_ProductOptions_CacheFailuresAreIgnored(t *testing.T) {
	t.Parallel()
	productID := uuid.New()
	product := &model.Product{ID: productID, Price: decimal.NewFromInt(45000), Stock: 1}

	catalog := new(MockProductLookup)
	catalog.On("GetProduct", mock.Anything, productID).Return(product, nil)
	cache := newFakeCache()
	cache.getErr = errors.New("connection refused")
	cache.setErr = errors.New("connection refused")
	svc := newTestEMIService(catalog).WithOptionCache(cache, time.Minute)

	got, err := svc.ProductOptions(context.Background(), productID, 0)

	require.NoError(t, err)
	assert.Len(t, got.Options, 4)
	assert.Equal(t, 1, cache.sets)
}

func TestOptionsCacheKey(t *testing.T) {
	t.Parallel()
	id := uuid.MustParse("7f1c1f2e-5d59-4a55-8a0e-0c1c3b6f0f11")

	key := OptionsCacheKey(id, decimal.NewFromInt(60000), decimal.NewFromInt(500))

	assert.Equal(t, "emi:options:7f1c1f2e-5d59-4a55-8a0e-0c1c3b6f0f11:60000:500", key)
}

func TestEMIService_Plans(t *testing.T) {
	t.Parallel()
	svc := newTestEMIService(nil)

	plans := svc.Plans()

	require.Len(t, plans.Rates, 3)
	assert.Equal(t, 3, plans.Rates[0].DurationMonths)
	assert.True(t, plans.Rates[0].InterestFree)
	assert.Equal(t, 4.0, plans.Rates[2].AnnualRatePercent)
	assert.Equal(t, 6.0, plans.FallbackRatePercent)
	assert.Equal(t, []int{3, 6, 9, 12}, plans.StandardDurations)
	assert.Equal(t, 1, plans.MinDurationMonths)
	assert.Equal(t, 24, plans.MaxDurationMonths)

	require.GreaterOrEqual(t, len(plans.Terms), 4)
	assert.Equal(t, "3 months EMI comes with 0% interest", plans.Terms[0])
	assert.Equal(t, "6 months EMI comes with 6% interest rate", plans.Terms[1])
	assert.Equal(t, "9 months EMI comes with 4% interest rate", plans.Terms[2])
	assert.Equal(t, "Any other duration will have a 6% interest rate", plans.Terms[3])

	assert.Len(t, plans.Banks, 15)
	assert.Len(t, plans.Wallets, 4)
}
