package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"financeai/internal/models"
)

const (
	// DefaultTrendMonths is used when a trend request omits months.
	DefaultTrendMonths = 6
	// MaxTrendMonths bounds the trend lookback.
	MaxTrendMonths = 60

	trendStrideDays  = 30
	trendLabelLayout = "Jan 2006"
)

// TrendPoint is one month's income and expense totals.
type TrendPoint struct {
	Month    string  `json:"month"`
	Expenses float64 `json:"expenses"`
	Income   float64 `json:"income"`
}

// SpendingTrends buckets the last months*30 days of transactions by the
// calendar month of each transaction, then reads back exactly months labels
// generated at 30-day strides from now. Near month boundaries a stride label
// can repeat or skip a calendar month, in which case a bucket is reported
// twice or not at all.
func SpendingTrends(txns []models.Transaction, months int, now time.Time) []TrendPoint {
	if months <= 0 {
		return []TrendPoint{}
	}
	start := now.AddDate(0, 0, -months*trendStrideDays)

	type bucket struct{ expenses, income decimal.Decimal }
	buckets := make(map[string]*bucket)

	for _, t := range txns {
		if !inWindow(t.Date, start, now) {
			continue
		}
		key := t.Date.UTC().Format(trendLabelLayout)
		b, ok := buckets[key]
		if !ok {
			b = &bucket{expenses: decimal.Zero, income: decimal.Zero}
			buckets[key] = b
		}
		if t.IsExpense() {
			b.expenses = b.expenses.Add(amountOf(t.Amount))
		} else {
			b.income = b.income.Add(amountOf(t.Amount))
		}
	}

	points := make([]TrendPoint, 0, months)
	for i := 0; i < months; i++ {
		label := now.AddDate(0, 0, -(months-i-1)*trendStrideDays).UTC().Format(trendLabelLayout)
		p := TrendPoint{Month: label}
		if b, ok := buckets[label]; ok {
			p.Expenses = Money(b.expenses)
			p.Income = Money(b.income)
		}
		points = append(points, p)
	}
	return points
}
