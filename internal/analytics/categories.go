package analytics

import (
	"sort"
	"time"

	"financeai/internal/models"
)

const insightWindowDays = 30

// CategoryInsight is one category's share of recent spending.
type CategoryInsight struct {
	Category           string  `json:"category"`
	Total              float64 `json:"total"`
	Percentage         float64 `json:"percentage"`
	TransactionCount   int     `json:"transaction_count"`
	AverageTransaction float64 `json:"average_transaction"`
}

// CategoryInsights is the per-category breakdown of the last 30 days.
type CategoryInsights struct {
	HasData       bool              `json:"has_data"`
	Message       string            `json:"message,omitempty"`
	Categories    []CategoryInsight `json:"categories,omitempty"`
	TotalSpending float64           `json:"total_spending"`
	PeriodDays    int               `json:"period_days,omitempty"`
}

// InsightsByCategory breaks down the trailing 30 days of expenses by
// category, largest total first.
func InsightsByCategory(txns []models.Transaction, now time.Time) CategoryInsights {
	start := now.AddDate(0, 0, -insightWindowDays)
	byCategory := newCategoryTotals()
	for _, t := range txns {
		if t.IsExpense() && inWindow(t.Date, start, now) {
			byCategory.add(t)
		}
	}

	if len(byCategory.order) == 0 {
		return CategoryInsights{HasData: false, Message: "No transaction data available"}
	}

	total := byCategory.sum()
	insights := make([]CategoryInsight, 0, len(byCategory.order))
	for _, cat := range byCategory.order {
		sum := byCategory.get(cat)
		count := byCategory.counts[cat]
		insights = append(insights, CategoryInsight{
			Category:           cat,
			Total:              Money(sum),
			Percentage:         Percent(sum, total),
			TransactionCount:   count,
			AverageTransaction: Money(sum.Div(amountOf(float64(count)))),
		})
	}

	sort.SliceStable(insights, func(i, j int) bool {
		return insights[i].Total > insights[j].Total
	})

	return CategoryInsights{
		HasData:       true,
		Categories:    insights,
		TotalSpending: Money(total),
		PeriodDays:    insightWindowDays,
	}
}

// CategoryAmount is a single category spend figure.
type CategoryAmount struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// SortedCategorySpending flattens a summary's category map, largest amount
// first with ties broken by category name.
func SortedCategorySpending(s Summary) []CategoryAmount {
	out := make([]CategoryAmount, 0, len(s.CategorySpending))
	for cat, amt := range s.CategorySpending {
		out = append(out, CategoryAmount{Category: cat, Amount: amt})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Amount != out[j].Amount {
			return out[i].Amount > out[j].Amount
		}
		return out[i].Category < out[j].Category
	})
	return out
}
