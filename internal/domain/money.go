package domain

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidMoney is returned when a price cannot be represented in cents.
var ErrInvalidMoney = errors.New("invalid money amount")

// Money is a currency amount in minor units (cents).
type Money int64

// Cents builds a Money value from minor units.
func Cents(n int64) Money {
	return Money(n)
}

// MoneyFromFloat converts a decimal amount with at most two fractional
// digits into Money.
func MoneyFromFloat(f float64) (Money, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidMoney, f)
	}
	scaled := f * 100
	cents := math.Round(scaled)
	if math.Abs(scaled-cents) > 1e-6 {
		return 0, fmt.Errorf("%w: %v has more than two fractional digits", ErrInvalidMoney, f)
	}
	return Money(cents), nil
}

// ParseMoney parses a decimal string such as "3.5" or "10.75".
func ParseMoney(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidMoney)
	}
	whole, frac, hasFrac := strings.Cut(s, ".")
	if hasFrac && (len(frac) == 0 || len(frac) > 2) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMoney, s)
	}
	neg := strings.HasPrefix(whole, "-")
	w, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMoney, s)
	}
	var f int64
	if hasFrac {
		for len(frac) < 2 {
			frac += "0"
		}
		f, err = strconv.ParseInt(frac, 10, 64)
		if err != nil || f < 0 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidMoney, s)
		}
	}
	if neg {
		return Money(w*100 - f), nil
	}
	return Money(w*100 + f), nil
}

// String formats the amount with exactly two fractional digits.
func (m Money) String() string {
	sign := ""
	v := int64(m)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// Float returns the amount as a float, for display and JSON output only.
func (m Money) Float() float64 {
	return float64(m) / 100
}
