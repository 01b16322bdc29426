package ledger

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Amount is a signed integer or decimal transaction value.
type Amount float64

// String returns the canonical form of the amount used in signed messages: the shortest decimal that
// round-trips, with exponent notation below 1e-6 and from 1e21 upwards.
func (a Amount) String() string {
	f := float64(a)
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		// covers negative zero
		return "0"
	}

	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		return formatExponent(strconv.FormatFloat(f, 'e', -1, 64))
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// formatExponent drops the zero padding strconv puts on exponents ("1e-07" becomes "1e-7").
func formatExponent(s string) string {
	mantissa, exp, found := strings.Cut(s, "e")
	if !found {
		return s
	}
	sign := exp[:1]
	digits := strings.TrimLeft(exp[1:], "0")
	if digits == "" {
		digits = "0"
	}
	return mantissa + "e" + sign + digits
}

// IsNegative reports whether the amount is below zero.
func (a Amount) IsNegative() bool {
	return a < 0
}

func (a Amount) isFinite() bool {
	f := float64(a)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// MarshalJSON writes the canonical form; non-finite amounts have no JSON number and become null.
func (a Amount) MarshalJSON() ([]byte, error) {
	if !a.isFinite() {
		return []byte("null"), nil
	}
	return []byte(a.String()), nil
}

// UnmarshalJSON accepts a JSON number or a numeric string.
func (a *Amount) UnmarshalJSON(data []byte) error {
	var n json.Number
	err := json.Unmarshal(data, &n)
	if err != nil {
		return fmt.Errorf("amount %s is not a number: %w", data, err)
	}

	f, err := strconv.ParseFloat(n.String(), 64)
	if err != nil {
		return fmt.Errorf("parse amount %q: %w", n, err)
	}
	*a = Amount(f)

	return nil
}
