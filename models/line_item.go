package models

import "github.com/shopspring/decimal"

const (
	WeightUnitCarats = "carats"
	WeightUnitGrams  = "gms"
)

// LineItemInput is one row exactly as typed into the form. Every field is
// raw text; amounts may carry commas, "Rs." or "₹".
type LineItemInput struct {
	No          string `json:"no"`
	Description string `json:"description"`
	Weight      string `json:"weight"`
	WeightUnit  string `json:"weight_unit"`
	Rate        string `json:"rate"`
	Amount      string `json:"amount"`
}

// LineItem is a validated, normalized row.
type LineItem struct {
	No          int             `json:"no"`
	Description string          `json:"description"`
	Weight      decimal.Decimal `json:"weight"`
	WeightUnit  string          `json:"weight_unit"`
	Rate        decimal.Decimal `json:"rate"`
	Amount      decimal.Decimal `json:"amount"`
	AutoAmount  bool            `json:"auto_amount"`
}
