package utils

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

var ones = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen",
	"Sixteen", "Seventeen", "Eighteen", "Nineteen",
}

var tens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

// MaxWordsAmount is the first whole amount that is not named (10^17).
var MaxWordsAmount = decimal.New(1, 17)

// twoDigitWords names 1..99; zero yields "".
func twoDigitWords(n int64) string {
	switch {
	case n < 20:
		return ones[n]
	case n%10 == 0:
		return tens[n/10]
	default:
		return tens[n/10] + " " + ones[n%10]
	}
}

// hundredsWords names 100..999.
func hundredsWords(n int64) string {
	rest := twoDigitWords(n % 100)
	if rest == "" {
		return ones[n/100] + " Hundred"
	}
	return ones[n/100] + " Hundred " + rest
}

// NumberToWords names a whole number using Indian grouping. A crore count
// of a crore or more is itself named, e.g. 10^14 is "One Crore Crore".
// Zero yields "".
func NumberToWords(num int64) string {
	switch {
	case num == 0:
		return ""
	case num < 100:
		return twoDigitWords(num)
	case num < 1000:
		return hundredsWords(num)
	case num < 100000:
		return scaledWords(num, 1000, "Thousand")
	case num < 10000000:
		return scaledWords(num, 100000, "Lakh")
	default:
		return scaledWords(num, 10000000, "Crore")
	}
}

func scaledWords(num, unit int64, scale string) string {
	head := NumberToWords(num/unit) + " " + scale
	if rest := NumberToWords(num % unit); rest != "" {
		return head + " " + rest
	}
	return head
}

// AmountToWords renders a non-negative amount as title-case English words,
// e.g. 100000.5 → "One Lakh and Fifty Paise". The amount is rounded to
// paise first.
func AmountToWords(amount decimal.Decimal) (string, error) {
	if amount.IsNegative() {
		return "", fmt.Errorf("%w: %s is negative", ErrInvalidAmount, safeString(amount))
	}
	// Size is judged from digits and exponent before anything rescales.
	switch {
	case amount.IsZero():
		return "Zero", nil
	case wholeDigits(amount) > MaxAmountDigits:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedMagnitude, safeString(amount))
	case wholeDigits(amount) < -2:
		return "Zero", nil
	}

	amount = amount.Round(2)
	whole := amount.Truncate(0)
	if whole.GreaterThanOrEqual(MaxWordsAmount) {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedMagnitude, amount)
	}

	rupees := whole.IntPart()
	paise := amount.Sub(whole).Shift(2).IntPart()

	switch {
	case rupees == 0 && paise == 0:
		return "Zero", nil
	case paise == 0:
		return NumberToWords(rupees), nil
	case rupees == 0:
		return twoDigitWords(paise) + " Paise", nil
	default:
		return NumberToWords(rupees) + " and " + twoDigitWords(paise) + " Paise", nil
	}
}

// FloatToWords is AmountToWords for float input; NaN and infinities are
// rejected as invalid amounts.
func FloatToWords(amount float64) (string, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return "", fmt.Errorf("%w: %v", ErrInvalidAmount, amount)
	}
	if amount < 0 {
		return "", fmt.Errorf("%w: %v is negative", ErrInvalidAmount, amount)
	}
	return AmountToWords(decimal.NewFromFloat(amount))
}

// RupeesInWords is the "Amount In Words" line printed on the invoice.
func RupeesInWords(amount decimal.Decimal) (string, error) {
	words, err := AmountToWords(amount)
	if err != nil {
		return "", err
	}
	return "Rupees " + words + " Only.", nil
}
