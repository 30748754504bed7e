package advisor

import (
	"sort"

	"github.com/shopspring/decimal"

	"financeai/internal/analytics"
	"financeai/internal/models"
)

// Trend labels for expense direction.
const (
	TrendIncreasing       = "increasing"
	TrendDecreasing       = "decreasing"
	TrendStable           = "stable"
	TrendInsufficientData = "insufficient_data"
)

var (
	predictionBuffer = decimal.RequireFromString("1.05")
	trendUpper       = decimal.RequireFromString("1.1")
	trendLower       = decimal.RequireFromString("0.9")
)

// Prediction forecasts next month's expenses.
type Prediction struct {
	NextMonthPrediction float64            `json:"next_month_prediction"`
	CategoryPredictions map[string]float64 `json:"category_predictions"`
	Trend               string             `json:"trend"`
	Confidence          string             `json:"confidence"`
}

// PredictExpenses averages expenses over the distinct calendar months present
// in txns and adds a 5% buffer. The trend compares the mean expense per
// transaction in the newer half of the history against the older half.
func PredictExpenses(txns []models.Transaction) Prediction {
	if len(txns) == 0 {
		return Prediction{
			NextMonthPrediction: 0,
			CategoryPredictions: map[string]float64{},
			Trend:               TrendInsufficientData,
			Confidence:          "low",
		}
	}

	ordered := make([]models.Transaction, len(txns))
	copy(ordered, txns)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Date.Before(ordered[j].Date)
	})

	months := make(map[string]struct{})
	total := decimal.Zero
	byCategory := make(map[string]decimal.Decimal)
	for _, t := range ordered {
		months[t.Date.UTC().Format("2006-01")] = struct{}{}
		if t.IsExpense() {
			amt := decimal.NewFromFloat(t.Amount)
			total = total.Add(amt)
			byCategory[t.Category] = byCategory[t.Category].Add(amt)
		}
	}
	monthCount := decimal.NewFromInt(int64(len(months)))

	categories := make(map[string]float64, len(byCategory))
	for cat, sum := range byCategory {
		categories[cat] = analytics.Money(sum.Div(monthCount))
	}

	confidence := "low"
	if len(ordered) > 10 {
		confidence = "medium"
	}

	return Prediction{
		NextMonthPrediction: analytics.Money(total.Div(monthCount).Mul(predictionBuffer)),
		CategoryPredictions: categories,
		Trend:               expenseTrend(ordered),
		Confidence:          confidence,
	}
}

func expenseTrend(ordered []models.Transaction) string {
	n := len(ordered)
	if n < 2 {
		return TrendStable
	}
	older, recent := ordered[:n/2], ordered[n/2:]
	olderAvg, recentAvg := meanExpense(older), meanExpense(recent)

	switch {
	case recentAvg.GreaterThan(olderAvg.Mul(trendUpper)):
		return TrendIncreasing
	case recentAvg.LessThan(olderAvg.Mul(trendLower)):
		return TrendDecreasing
	default:
		return TrendStable
	}
}

// meanExpense divides the expense total by the number of transactions,
// income included.
func meanExpense(txns []models.Transaction) decimal.Decimal {
	sum := decimal.Zero
	for _, t := range txns {
		if t.IsExpense() {
			sum = sum.Add(decimal.NewFromFloat(t.Amount))
		}
	}
	return sum.Div(decimal.NewFromInt(int64(len(txns))))
}
