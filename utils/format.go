package utils

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.English)

// FormatAmount prints an amount with thousands separators and two decimals
// (1234.5 → "1,234.50"). Digits come from the decimal itself, so amounts
// past float64 precision print exactly.
func FormatAmount(d decimal.Decimal) string {
	fixed := d.StringFixed(2)
	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign, fixed = "-", fixed[1:]
	}
	whole, frac, _ := strings.Cut(fixed, ".")

	if n, err := strconv.ParseInt(whole, 10, 64); err == nil {
		whole = printer.Sprint(number.Decimal(n))
	} else {
		whole = groupThousands(whole)
	}
	return sign + whole + "." + frac
}

// groupThousands separates a digit string beyond int64 range in threes.
func groupThousands(digits string) string {
	var b strings.Builder
	head := len(digits) % 3
	if head == 0 {
		head = 3
	}
	b.WriteString(digits[:head])
	for i := head; i < len(digits); i += 3 {
		b.WriteByte(',')
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

var invalidFileChars = regexp.MustCompile(`[\\/*?:"<>|]`)

// CleanFileName drops characters that are not allowed in file names.
func CleanFileName(filename string) string {
	return invalidFileChars.ReplaceAllString(filename, "")
}

// Truncate cuts s to at most n runes.
func Truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

// IsBlank reports whether every string is empty after trimming.
func IsBlank(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
