package utils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var currencyMarks = regexp.MustCompile(`(?i)(rs\.?|₹)`)

// ParseNumber reads a number typed into the form, ignoring thousands
// separators and rupee marks ("Rs. 1,250", "₹45000").
func ParseNumber(val string) (decimal.Decimal, error) {
	s := strings.ReplaceAll(val, ",", "")
	s = currencyMarks.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, ErrEmptyValue
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("not a number: %q", val)
	}
	if d.IsZero() {
		return decimal.Zero, nil
	}
	if err := CheckMagnitude(d); err != nil {
		return decimal.Zero, err
	}
	return d, nil
}
