// Package datetime provides date handling for orders and installment plans.
// Dates are calendar days in UTC and serialize as "YYYY-MM-DD".
package datetime

import (
	"encoding/json"
	"strings"
	"time"
)

// DateFormat is the standard date-only format (YYYY-MM-DD).
const DateFormat = "2006-01-02"

// FirstPaymentGraceDays is the gap between purchase and the first installment.
const FirstPaymentGraceDays = 30

// Date represents a date-only value (no time component).
type Date struct {
	time.Time
}

// NewDate creates a Date from year, month, day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// dateOf truncates t to its UTC calendar day.
func dateOf(t time.Time) Date {
	t = t.UTC()
	return NewDate(t.Year(), t.Month(), t.Day())
}

// Today returns today's date in UTC.
func Today() Date {
	return dateOf(time.Now())
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format(DateFormat))
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), "\"")
	if s == "" || s == "null" {
		return nil
	}

	t, err := time.Parse(DateFormat, s)
	if err == nil {
		d.Time = t
		return nil
	}

	// Fall back to RFC3339 (extract date portion)
	t, err = time.Parse(time.RFC3339, s)
	if err == nil {
		*d = dateOf(t)
		return nil
	}

	return err
}

// String returns the date in YYYY-MM-DD format.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateFormat)
}

// firstPaymentDue returns the due date of the first installment for a
// purchase made on the given day.
func firstPaymentDue(purchase Date) Date {
	return Date{purchase.AddDate(0, 0, FirstPaymentGraceDays)}
}

// InstallmentDueDates returns one due date per month. The first falls
// FirstPaymentGraceDays after purchase and the rest repeat on the same day of
// each following month.
// Days past the end of a short month clamp to its last day.
func InstallmentDueDates(purchase Date, months int) []Date {
	if months < 1 {
		return nil
	}

	first := firstPaymentDue(purchase)
	dates := make([]Date, 0, months)
	for i := 0; i < months; i++ {
		dates = append(dates, addMonthsClamped(first, i))
	}
	return dates
}

func addMonthsClamped(d Date, months int) Date {
	y, m, day := d.Date()
	target := time.Date(y, m+time.Month(months), 1, 0, 0, 0, 0, time.UTC)
	last := target.AddDate(0, 1, -1).Day()
	if day > last {
		day = last
	}
	return NewDate(target.Year(), target.Month(), day)
}
