package analytics

import (
	"github.com/shopspring/decimal"

	"expense-tracker-backend/expense"
)

// Summary is the spending overview for one window.
type Summary struct {
	Total      float64                      `json:"total"`
	ByCategory map[expense.Category]float64 `json:"byCategory"`
	Count      int                          `json:"count"`
}

// Aggregate reduces a record sequence to total, count and per-category
// sums. It is a pure function and does not depend on input order.
// Amounts accumulate as decimals so long runs of small values cannot
// drift; rounding to 2 places happens only here, at the presentation
// boundary. Empty input is a valid zero-valued result, not an error.
func Aggregate(records []expense.Expense) Summary {
	total := decimal.Zero
	byCategory := make(map[expense.Category]decimal.Decimal)

	for _, r := range records {
		amount := decimal.NewFromFloat(r.Amount)
		total = total.Add(amount)
		byCategory[r.Category] = byCategory[r.Category].Add(amount)
	}

	summary := Summary{
		Total:      roundMoney(total),
		ByCategory: make(map[expense.Category]float64, len(byCategory)),
		Count:      len(records),
	}
	for category, sum := range byCategory {
		summary.ByCategory[category] = roundMoney(sum)
	}

	return summary
}

// roundMoney rounds half-up to 2 decimal places.
func roundMoney(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}
