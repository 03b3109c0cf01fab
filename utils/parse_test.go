package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumber(t *testing.T) {
	tests := map[string]string{
		"45000":      "45000",
		"1,250.50":   "1250.5",
		"Rs. 1,250":  "1250",
		"rs 12.5":    "12.5",
		"RS.99":      "99",
		"₹45000":     "45000",
		"  ₹ 1.25  ": "1.25",
		"-3":         "-3",
	}
	for in, want := range tests {
		got, err := ParseNumber(in)
		require.NoError(t, err, in)
		assert.True(t, decimal.RequireFromString(want).Equal(got), "%q → %s", in, got)
	}
}

func TestParseNumberErrors(t *testing.T) {
	for _, in := range []string{"", "   ", "Rs.", "₹"} {
		_, err := ParseNumber(in)
		assert.ErrorIs(t, err, ErrEmptyValue, in)
	}
	for _, in := range []string{"abc", "12..5", "1.2.3"} {
		_, err := ParseNumber(in)
		assert.Error(t, err, in)
	}
}

func TestParseNumberRange(t *testing.T) {
	_, err := ParseNumber("1e200000000")
	assert.ErrorIs(t, err, ErrUnsupportedMagnitude)

	_, err = ParseNumber("₹ 100000000000000000")
	assert.ErrorIs(t, err, ErrUnsupportedMagnitude)

	_, err = ParseNumber("1e-200000000")
	assert.ErrorIs(t, err, ErrInvalidAmount)

	got, err := ParseNumber("0e-200000000")
	require.NoError(t, err)
	assert.True(t, got.IsZero())
	assert.Equal(t, int32(0), got.Exponent())

	got, err = ParseNumber("99,999,999,999,999,999.99")
	require.NoError(t, err)
	assert.Equal(t, "99999999999999999.99", got.String())
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "175.75", FormatAmount(decimal.RequireFromString("175.75")))
	assert.Equal(t, "1,234.50", FormatAmount(decimal.RequireFromString("1234.5")))
	assert.Equal(t, "176.00", FormatAmount(decimal.NewFromInt(176)))
	assert.Equal(t, "101,250.00", FormatAmount(decimal.NewFromInt(101250)))
	assert.Equal(t, "0.00", FormatAmount(decimal.Zero))
	assert.Equal(t, "-0.49", FormatAmount(decimal.RequireFromString("-0.49")))
	assert.Equal(t, "0.00", FormatAmount(decimal.RequireFromString("-0.001")))
	assert.Equal(t, "1,000.01", FormatAmount(decimal.RequireFromString("1000.005")))
}

func TestFormatAmountBeyondFloatPrecision(t *testing.T) {
	assert.Equal(t, "9,007,199,254,740,993.00", FormatAmount(decimal.NewFromInt(9007199254740993)))
	assert.Equal(t, "12,345,678,901,234,567.89", FormatAmount(decimal.RequireFromString("12345678901234567.89")))
	assert.Equal(t, "123,456,789,012,345,678,901.50", FormatAmount(decimal.RequireFromString("123456789012345678901.5")))
	assert.Equal(t, "-100,000,000,000,000,000,000.00", FormatAmount(decimal.RequireFromString("-1e20")))
}

func TestCleanFileName(t *testing.T) {
	assert.Equal(t, "RishabGems_RG-1_AB Traders_98.pptx", CleanFileName(`RishabGems_RG-1_A/B Traders_98?.pptx`))
	assert.Equal(t, "abc", CleanFileName(`a<b>c|*:"\`))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 65))
	assert.Equal(t, "ab", Truncate("abc", 2))
	assert.Equal(t, "₹₹", Truncate("₹₹₹", 2))
}

func TestIsBlank(t *testing.T) {
	assert.True(t, IsBlank("", "  ", "\t"))
	assert.False(t, IsBlank("", "x"))
}
