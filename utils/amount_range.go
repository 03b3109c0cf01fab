package utils

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MaxAmountDigits is the most whole-rupee digits an amount may carry.
// 10^17 and above have no name in words.
const MaxAmountDigits = 17

// MaxAmountScale is the most decimal places accepted in an amount.
const MaxAmountScale = 400

// wholeDigits counts the digits left of the decimal point from the
// coefficient and exponent alone. Amounts below one give zero or less.
// d must not be zero.
func wholeDigits(d decimal.Decimal) int {
	c := d.Coefficient()
	return len(c.Abs(c).String()) + int(d.Exponent())
}

// CheckMagnitude rejects amounts too large to name or too finely scaled to
// round and add. It never rescales d, so it is safe on inputs such as
// "1e200000000".
func CheckMagnitude(d decimal.Decimal) error {
	if d.IsZero() {
		return nil
	}
	if wholeDigits(d) > MaxAmountDigits {
		return fmt.Errorf("%w: %s", ErrUnsupportedMagnitude, safeString(d))
	}
	if d.Exponent() < -MaxAmountScale {
		return fmt.Errorf("%w: more than %d decimal places", ErrInvalidAmount, MaxAmountScale)
	}
	return nil
}

// safeString is d.String() for amounts in range and coefficient-exponent
// form otherwise, so error messages never expand a huge exponent.
func safeString(d decimal.Decimal) string {
	if d.IsZero() {
		return "0"
	}
	if wholeDigits(d) <= MaxAmountDigits && d.Exponent() >= -MaxAmountScale {
		return d.String()
	}
	if d.Exponent() == 0 {
		return d.Coefficient().String()
	}
	return fmt.Sprintf("%se%d", d.Coefficient().String(), d.Exponent())
}
