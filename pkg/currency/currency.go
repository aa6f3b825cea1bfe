// Package currency provides standardized currency handling across the application.
// Stored amounts use decimal.Decimal; display strings use locale-aware digit grouping.
package currency

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Currency represents an ISO 4217 currency code.
type Currency string

// Supported currencies.
const (
	NPR Currency = "NPR" // Nepalese Rupee
	INR Currency = "INR" // Indian Rupee
	USD Currency = "USD" // US Dollar
	EUR Currency = "EUR" // Euro
)

// DefaultCurrency is the store currency when none is configured.
const DefaultCurrency = NPR

// CurrencyInfo contains metadata about a currency.
type CurrencyInfo struct {
	Code          Currency
	Name          string
	Symbol        string
	DecimalPlaces int          // Number of decimal places (e.g., 2 for USD)
	Locale        language.Tag // Locale used for digit grouping
}

var currencies = map[Currency]CurrencyInfo{
	NPR: {Code: NPR, Name: "Nepalese Rupee", Symbol: "NPR", DecimalPlaces: 2, Locale: language.MustParse("en-NP")},
	INR: {Code: INR, Name: "Indian Rupee", Symbol: "₹", DecimalPlaces: 2, Locale: language.MustParse("en-IN")},
	USD: {Code: USD, Name: "US Dollar", Symbol: "$", DecimalPlaces: 2, Locale: language.AmericanEnglish},
	EUR: {Code: EUR, Name: "Euro", Symbol: "€", DecimalPlaces: 2, Locale: language.German},
}

// IsValid checks if a currency code is supported.
func IsValid(code string) bool {
	_, ok := currencies[Currency(code)]
	return ok
}

func infoOrDefault(code Currency) CurrencyInfo {
	if info, ok := currencies[code]; ok {
		return info
	}
	return currencies[DefaultCurrency]
}

// Money represents a monetary amount with currency.
type Money struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency Currency        `json:"currency"`
}

// NewMoney creates a new Money value.
func NewMoney(amount decimal.Decimal, curr Currency) Money {
	if curr == "" {
		curr = DefaultCurrency
	}
	return Money{Amount: amount, Currency: curr}
}

// Format renders the amount with the currency's decimal places and grouping.
func (m Money) Format() string {
	info := infoOrDefault(m.Currency)
	return render(info, m.Amount.Round(int32(info.DecimalPlaces)), info.DecimalPlaces)
}

// FormatWhole renders the amount rounded to whole units, e.g. "NPR 16,667".
func (m Money) FormatWhole() string {
	info := infoOrDefault(m.Currency)
	return render(info, m.Amount.Round(0), 0)
}

func render(info CurrencyInfo, amount decimal.Decimal, places int) string {
	p := message.NewPrinter(info.Locale)
	value := amount.InexactFloat64()
	formatted := p.Sprint(number.Decimal(value, number.Scale(places)))
	return info.Symbol + " " + formatted
}
