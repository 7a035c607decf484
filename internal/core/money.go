// Package core holds the domain types and exact money arithmetic.
//
// Amounts are fixed-point with two decimal places. All arithmetic goes
// through decimal.Decimal so that summing any set of amounts is exact;
// float64 only ever appears at the presentation boundary.
package core

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Money is an exact two-decimal amount.
//
// It marshals to JSON as an unquoted number with exactly two decimal places
// ("45.00") and unmarshals from either a JSON number or a numeric string.
type Money struct {
	dec decimal.Decimal
}

// MoneyZero is the zero amount.
var MoneyZero = Money{}

// NewMoney rounds d half-up to two decimal places.
func NewMoney(d decimal.Decimal) Money {
	return Money{dec: d.Round(2)}
}

// MoneyFromFloat converts f to an exact two-decimal amount.
func MoneyFromFloat(f float64) Money {
	return NewMoney(decimal.NewFromFloat(f))
}

// ParseMoney parses a decimal string such as "12.34". The third decimal
// place rounds half-up, matching how amounts were accepted historically.
func ParseMoney(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Money{}, ErrInvalidAmount
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, ErrInvalidAmount
	}
	return NewMoney(d), nil
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{dec: m.dec.Add(other.dec)}
}

// Sub returns m - other. The result may be negative.
func (m Money) Sub(other Money) Money {
	return Money{dec: m.dec.Sub(other.dec)}
}

// IsPositive reports whether m is strictly greater than zero.
func (m Money) IsPositive() bool {
	return m.dec.IsPositive()
}

// Equal reports numeric equality.
func (m Money) Equal(other Money) bool {
	return m.dec.Equal(other.dec)
}

// Decimal exposes the underlying value for derived computations
// (percentages, ratios) that are not themselves amounts.
func (m Money) Decimal() decimal.Decimal {
	return m.dec
}

// String renders the amount with exactly two decimal places.
func (m Money) String() string {
	return m.dec.StringFixed(2)
}

// MarshalJSON emits an unquoted two-decimal number.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.dec.StringFixed(2)), nil
}

// UnmarshalJSON accepts a JSON number or a quoted numeric string and rounds
// to two decimal places.
func (m *Money) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return ErrInvalidAmount
	}
	m.dec = d.Round(2)
	return nil
}
