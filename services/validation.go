package services

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"rishabgems/invoicegen/models"
	"rishabgems/invoicegen/utils"
)

var ErrNoLineItems = errors.New("no data entered, fill at least one line item before generating the invoice")

var maxRowNo = decimal.NewFromInt(math.MaxInt32)

// ValidationError collects every problem found in the submitted rows.
// Err is set when one of the problems is also a sentinel such as
// ErrNoLineItems.
type ValidationError struct {
	Problems []string
	Err      error
}

func (e *ValidationError) Error() string {
	return "please fix these errors before generating the invoice: " + strings.Join(e.Problems, " | ")
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ValidateRows drops fully blank rows, checks the rest and returns them
// normalized and sorted by No. Rows are numbered from 1 in error messages,
// counting only non-blank rows.
func ValidateRows(rows []models.LineItemInput) ([]models.LineItem, error) {
	var (
		problems []string
		items    []models.LineItem
		idx      int
	)
	for _, r := range rows {
		if utils.IsBlank(r.No, r.Description, r.Weight, r.Rate, r.Amount) {
			continue
		}
		idx++
		item, errs := validateRow(r)
		if len(errs) > 0 {
			problems = append(problems, fmt.Sprintf("Row %d: %s", idx, strings.Join(errs, "; ")))
			continue
		}
		items = append(items, item)
	}

	if idx == 0 {
		return nil, ErrNoLineItems
	}
	if len(problems) > 0 {
		return nil, &ValidationError{Problems: problems}
	}

	sort.SliceStable(items, func(i, j int) bool { return items[i].No < items[j].No })
	return items, nil
}

func validateRow(r models.LineItemInput) (models.LineItem, []string) {
	var errs []string
	item := models.LineItem{Description: strings.TrimSpace(r.Description)}

	no, err := utils.ParseNumber(r.No)
	switch {
	case err != nil || !no.IsInteger() || !no.IsPositive():
		errs = append(errs, "No. must be a positive integer.")
	case no.GreaterThan(maxRowNo):
		errs = append(errs, fmt.Sprintf("No. must not exceed %d.", math.MaxInt32))
	default:
		item.No = int(no.IntPart())
	}

	if item.Description == "" {
		errs = append(errs, "Item Description cannot be empty.")
	}

	switch unit := strings.ToLower(strings.TrimSpace(r.WeightUnit)); unit {
	case "":
		item.WeightUnit = models.WeightUnitCarats
	case models.WeightUnitCarats, models.WeightUnitGrams:
		item.WeightUnit = unit
	default:
		errs = append(errs, "Weight unit must be carats or gms.")
	}

	weight, weightOK := nonNegative(r.Weight, "Weight", "1.25", &errs)
	rate, rateOK := nonNegative(r.Rate, "Rate (₹)", "45000", &errs)
	item.Weight, item.Rate = weight, rate

	if utils.IsBlank(r.Amount) {
		if !weightOK || !rateOK {
			errs = append(errs, "Amount (₹) must be a number (e.g. 56250) or left blank for auto-calc.")
		} else if amt := weight.Mul(rate).Round(2); utils.CheckMagnitude(amt) != nil {
			errs = append(errs, "Amount (₹) is too large.")
		} else {
			item.Amount = amt
			item.AutoAmount = true
		}
	} else {
		amt, err := utils.ParseNumber(r.Amount)
		switch {
		case errors.Is(err, utils.ErrUnsupportedMagnitude):
			errs = append(errs, "Amount (₹) is too large.")
		case err != nil:
			errs = append(errs, "Amount (₹) must be a number (e.g. 56250) or left blank for auto-calc.")
		case amt.IsNegative():
			errs = append(errs, "Amount (₹) must be non-negative.")
		default:
			item.Amount = amt.Round(2)
		}
	}

	return item, errs
}

func nonNegative(raw, label, example string, errs *[]string) (decimal.Decimal, bool) {
	d, err := utils.ParseNumber(raw)
	if errors.Is(err, utils.ErrUnsupportedMagnitude) {
		*errs = append(*errs, label+" is too large.")
		return decimal.Zero, false
	}
	if err != nil {
		*errs = append(*errs, fmt.Sprintf("%s must be a number (e.g. %s).", label, example))
		return decimal.Zero, false
	}
	if d.IsNegative() {
		*errs = append(*errs, label+" must be non-negative.")
		return decimal.Zero, false
	}
	return d, true
}
