package models

import "github.com/shopspring/decimal"

// BillingSummary is the subtotal / rounding / net payable triple printed in
// the invoice's billing summary table. NetPayable always equals
// Subtotal + Rounding and carries no fractional part.
type BillingSummary struct {
	Subtotal   decimal.Decimal `json:"subtotal"`
	Rounding   decimal.Decimal `json:"rounding"`
	NetPayable decimal.Decimal `json:"net_payable"`
}
