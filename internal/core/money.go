// Package core provides the domain model of the ledger: accounts,
// transactions and fixed-point money handling.
//
// Monetary amounts are stored as int64 cents so that all balance arithmetic
// is exact integer math. Decimal strings from user input are converted once
// at the boundary, with half-up rounding on the third decimal place.
package core

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Money is a monetary amount in cents (2-decimal fixed point).
type Money struct {
	Cents int64
}

// ParseDecimalToCents converts a decimal string to cents with half-up
// rounding. It accepts both dot (12.34) and comma (12,34) separators and
// rejects negative values.
//
// Examples:
//
//	ParseDecimalToCents("12.34")  -> 1234, nil
//	ParseDecimalToCents("12,34")  -> 1234, nil
//	ParseDecimalToCents("12.345") -> 1235, nil (rounds up)
//	ParseDecimalToCents("-1")     -> 0, ErrInvalidAmount
func ParseDecimalToCents(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	// Normalize decimal comma to dot
	s = strings.ReplaceAll(s, ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	if d.IsNegative() {
		return 0, ErrInvalidAmount
	}
	cents := d.Shift(2).Round(0)
	if !cents.BigInt().IsInt64() {
		return 0, ErrInvalidAmount
	}
	return cents.IntPart(), nil
}

// ParseMoney parses a decimal string into Money. Zero is allowed; callers
// that require a strictly positive amount validate separately.
func ParseMoney(s string) (Money, error) {
	cents, err := ParseDecimalToCents(s)
	if err != nil {
		return Money{}, err
	}
	return Money{Cents: cents}, nil
}

// Validate rejects non-positive amounts. Movement amounts must be > 0;
// only initial balances may be zero.
func (m Money) Validate() error {
	if m.Cents <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

func (m Money) Add(o Money) Money { return Money{Cents: m.Cents + o.Cents} }

func (m Money) Sub(o Money) Money { return Money{Cents: m.Cents - o.Cents} }

// LessThan reports whether m < o.
func (m Money) LessThan(o Money) bool { return m.Cents < o.Cents }

// String formats the amount with exactly two decimal places, e.g. "150.00".
func (m Money) String() string {
	return decimal.New(m.Cents, -2).StringFixed(2)
}
