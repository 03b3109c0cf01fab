package utils

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"

	"rishabgems/invoicegen/models"
)

// Summarize adds the line amounts in order and rounds the subtotal half-up
// to a whole rupee. Rounding is NetPayable - Subtotal and may be negative.
// Amounts outside CheckMagnitude's range are rejected like negative ones.
func Summarize(amounts []decimal.Decimal) (models.BillingSummary, error) {
	subtotal := decimal.Zero
	for i, a := range amounts {
		if a.IsNegative() || CheckMagnitude(a) != nil {
			return models.BillingSummary{}, &LineItemError{Index: i, Value: safeString(a)}
		}
		if a.IsZero() {
			continue
		}
		subtotal = subtotal.Add(a)
	}

	net := subtotal.Round(0)
	return models.BillingSummary{
		Subtotal:   subtotal,
		Rounding:   net.Sub(subtotal),
		NetPayable: net,
	}, nil
}

// SummarizeFloats validates float amounts (finite, non-negative) before
// summing them as decimals.
func SummarizeFloats(amounts []float64) (models.BillingSummary, error) {
	converted := make([]decimal.Decimal, len(amounts))
	for i, f := range amounts {
		if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
			return models.BillingSummary{}, &LineItemError{Index: i, Value: strconv.FormatFloat(f, 'g', -1, 64)}
		}
		converted[i] = decimal.NewFromFloat(f)
	}
	return Summarize(converted)
}
