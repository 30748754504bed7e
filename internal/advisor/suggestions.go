package advisor

import (
	"github.com/shopspring/decimal"

	"financeai/internal/analytics"
)

// Suggestion is a proposed savings goal.
type Suggestion struct {
	Title            string  `json:"title"`
	Description      string  `json:"description"`
	TargetAmount     float64 `json:"target_amount"`
	SuggestedMonthly float64 `json:"suggested_monthly"`
	Priority         string  `json:"priority"`
}

// SuggestGoals proposes three goals sized from the summary when income
// exceeds expenses, and none otherwise.
func SuggestGoals(s analytics.Summary) []Suggestion {
	income := decimal.NewFromFloat(s.TotalIncome)
	expenses := decimal.NewFromFloat(s.TotalExpenses)
	surplus := income.Sub(expenses)
	if !surplus.IsPositive() {
		return []Suggestion{}
	}

	share := func(pct int64) float64 {
		return analytics.Money(surplus.Mul(decimal.New(pct, -2)))
	}

	return []Suggestion{
		{
			Title:            "Emergency Fund",
			Description:      "Build a safety net for unexpected expenses",
			TargetAmount:     analytics.Money(expenses.Mul(decimal.NewFromInt(6))),
			SuggestedMonthly: share(30),
			Priority:         "high",
		},
		{
			Title:            "Short-term Savings",
			Description:      "For upcoming purchases or experiences",
			TargetAmount:     analytics.Money(income.Mul(decimal.NewFromInt(2))),
			SuggestedMonthly: share(20),
			Priority:         "medium",
		},
		{
			Title:            "Investment Fund",
			Description:      "Build wealth for the future",
			TargetAmount:     analytics.Money(income.Mul(decimal.NewFromInt(12))),
			SuggestedMonthly: share(30),
			Priority:         "medium",
		},
	}
}
