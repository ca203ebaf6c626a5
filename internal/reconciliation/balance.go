package reconciliation

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Status classifies how the category amounts compare with the gross takings
type Status string

const (
	StatusBalanced Status = "balanced"
	StatusShort    Status = "short"
	StatusOver     Status = "over"
)

// Tolerance is the largest absolute difference that still counts as balanced.
var Tolerance = decimal.New(1, -2)

// BalanceResult holds the totals derived from a sales entry
type BalanceResult struct {
	Gross       decimal.Decimal `json:"gross"`
	CategorySum decimal.Decimal `json:"category_sum"`
	Difference  decimal.Decimal `json:"difference"`
}

// ComputeBalance derives gross, category sum and the remaining difference
func ComputeBalance(card, cash, quick, food, drinks, uncategorized decimal.Decimal) BalanceResult {
	gross := card.Add(cash)
	categorySum := quick.Add(food).Add(drinks).Add(uncategorized)

	return BalanceResult{
		Gross:       gross,
		CategorySum: categorySum,
		Difference:  gross.Sub(categorySum),
	}
}

// Status returns the classification of the result's difference
func (r BalanceResult) Status() Status {
	return Classify(r.Difference)
}

// Classify maps a balance difference onto Balanced, Short or Over.
// Differences within one cent either way are balanced.
func Classify(difference decimal.Decimal) Status {
	switch {
	case difference.Abs().LessThanOrEqual(Tolerance):
		return StatusBalanced
	case difference.IsPositive():
		return StatusShort
	default:
		return StatusOver
	}
}

// SuggestAutofill returns the uncategorized amount that would absorb the shortfall.
// Nothing is suggested unless the categories under-count the gross by more than a cent.
func SuggestAutofill(uncategorized, difference decimal.Decimal) (decimal.Decimal, bool) {
	if Classify(difference) != StatusShort {
		return uncategorized, false
	}
	return uncategorized.Add(difference), true
}

// CanSave reports whether a sales record may be persisted
func CanSave(gross, categorySum decimal.Decimal) bool {
	return gross.Round(2).Equal(categorySum.Round(2)) && gross.IsPositive()
}

// Message is the operator-facing banner for a balance difference
func Message(difference decimal.Decimal) string {
	if Classify(difference) == StatusBalanced {
		return "Totals balance"
	}
	return remainingMessage(difference)
}

// remainingMessage states the exact figure still to balance
func remainingMessage(difference decimal.Decimal) string {
	if difference.IsPositive() {
		return fmt.Sprintf("Remaining to balance: $%s", difference.StringFixed(2))
	}
	return fmt.Sprintf("Categories exceed payments: remaining to balance $%s", difference.StringFixed(2))
}
