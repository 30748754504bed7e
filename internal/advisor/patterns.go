package advisor

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"financeai/internal/analytics"
	"financeai/internal/models"
)

const topCategoryLimit = 5

var (
	shoppingShare = decimal.RequireFromString("0.3")
	diningShare   = decimal.RequireFromString("0.25")
)

// PatternCategory is one of the largest spending categories.
type PatternCategory struct {
	Category   string  `json:"category"`
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
}

// Patterns summarizes where the money goes.
type Patterns struct {
	TotalExpenses float64           `json:"total_expenses"`
	TopCategories []PatternCategory `json:"top_categories"`
	Insights      []string          `json:"insights"`
}

// AnalyzePatterns ranks expense categories and attaches plain-language
// observations about them.
func AnalyzePatterns(txns []models.Transaction) Patterns {
	if len(txns) == 0 {
		return Patterns{
			TotalExpenses: 0,
			TopCategories: []PatternCategory{},
			Insights:      []string{"Start tracking expenses to get insights!"},
		}
	}

	total := decimal.Zero
	byCategory := make(map[string]decimal.Decimal)
	for _, t := range txns {
		if !t.IsExpense() {
			continue
		}
		amt := decimal.NewFromFloat(t.Amount)
		total = total.Add(amt)
		byCategory[t.Category] = byCategory[t.Category].Add(amt)
	}

	cats := make([]string, 0, len(byCategory))
	for cat := range byCategory {
		cats = append(cats, cat)
	}
	sort.Slice(cats, func(i, j int) bool {
		a, b := byCategory[cats[i]], byCategory[cats[j]]
		if !a.Equal(b) {
			return a.GreaterThan(b)
		}
		return cats[i] < cats[j]
	})
	if len(cats) > topCategoryLimit {
		cats = cats[:topCategoryLimit]
	}

	top := make([]PatternCategory, 0, len(cats))
	for _, cat := range cats {
		top = append(top, PatternCategory{
			Category:   cat,
			Amount:     analytics.Money(byCategory[cat]),
			Percentage: analytics.Percent(byCategory[cat], total),
		})
	}

	var insights []string
	if len(top) > 0 {
		insights = append(insights, fmt.Sprintf("%s is your highest spending category at %.1f%% of total expenses",
			top[0].Category, top[0].Percentage))
	}
	if byCategory["Shopping"].GreaterThan(total.Mul(shoppingShare)) {
		insights = append(insights, "Consider reducing shopping expenses - they're over 30% of your budget")
	}
	if byCategory["Food & Dining"].GreaterThan(total.Mul(diningShare)) {
		insights = append(insights, "Dining expenses are high - cooking at home could save money")
	}
	if len(insights) == 0 {
		insights = []string{"Your spending looks balanced!"}
	}

	return Patterns{
		TotalExpenses: analytics.Money(total),
		TopCategories: top,
		Insights:      insights,
	}
}
