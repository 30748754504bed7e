package advisor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"financeai/internal/analytics"
	"financeai/internal/models"
)

func txn(typ models.TransactionType, amount float64, category string, at time.Time) models.Transaction {
	return models.Transaction{Type: typ, Amount: amount, Category: category, Date: at}
}

func day(m time.Month, d int) time.Time {
	return time.Date(2025, m, d, 10, 0, 0, 0, time.UTC)
}

func TestPredictExpenses(t *testing.T) {
	t.Run("no_transactions", func(t *testing.T) {
		p := PredictExpenses(nil)

		assert.Equal(t, 0.0, p.NextMonthPrediction)
		assert.Empty(t, p.CategoryPredictions)
		assert.Equal(t, TrendInsufficientData, p.Trend)
		assert.Equal(t, "low", p.Confidence)
	})

	t.Run("single_transaction_is_stable", func(t *testing.T) {
		p := PredictExpenses([]models.Transaction{txn(models.TransactionTypeExpense, 100, "Food", day(time.March, 1))})

		assert.Equal(t, 105.0, p.NextMonthPrediction)
		assert.Equal(t, TrendStable, p.Trend)
	})

	t.Run("averages_over_distinct_months", func(t *testing.T) {
		txns := []models.Transaction{
			txn(models.TransactionTypeExpense, 300, "Rent", day(time.March, 2)),
			txn(models.TransactionTypeIncome, 1000, "Salary", day(time.January, 5)),
			txn(models.TransactionTypeExpense, 100, "Food", day(time.February, 3)),
			txn(models.TransactionTypeExpense, 200, "Food", day(time.January, 20)),
		}

		p := PredictExpenses(txns)

		// 600 of expenses over 3 months, plus 5%.
		assert.Equal(t, 210.0, p.NextMonthPrediction)
		assert.Equal(t, map[string]float64{"Food": 100, "Rent": 100}, p.CategoryPredictions)
		assert.Equal(t, "low", p.Confidence)
	})

	t.Run("trend_orders_by_date", func(t *testing.T) {
		increasing := []models.Transaction{
			txn(models.TransactionTypeExpense, 500, "Food", day(time.March, 4)),
			txn(models.TransactionTypeExpense, 10, "Food", day(time.March, 1)),
			txn(models.TransactionTypeExpense, 400, "Food", day(time.March, 3)),
			txn(models.TransactionTypeExpense, 20, "Food", day(time.March, 2)),
		}
		assert.Equal(t, TrendIncreasing, PredictExpenses(increasing).Trend)

		decreasing := []models.Transaction{
			txn(models.TransactionTypeExpense, 500, "Food", day(time.March, 1)),
			txn(models.TransactionTypeExpense, 400, "Food", day(time.March, 2)),
			txn(models.TransactionTypeExpense, 20, "Food", day(time.March, 3)),
		}
		assert.Equal(t, TrendDecreasing, PredictExpenses(decreasing).Trend)

		stable := []models.Transaction{
			txn(models.TransactionTypeExpense, 100, "Food", day(time.March, 1)),
			txn(models.TransactionTypeExpense, 105, "Food", day(time.March, 2)),
		}
		assert.Equal(t, TrendStable, PredictExpenses(stable).Trend)
	})

	t.Run("income_dilutes_half_average", func(t *testing.T) {
		// Newer half: 100 expense over 2 rows = 50 vs older 100 over 1 row.
		txns := []models.Transaction{
			txn(models.TransactionTypeExpense, 100, "Food", day(time.March, 1)),
			txn(models.TransactionTypeExpense, 100, "Food", day(time.March, 2)),
			txn(models.TransactionTypeIncome, 900, "Salary", day(time.March, 3)),
		}
		assert.Equal(t, TrendDecreasing, PredictExpenses(txns).Trend)
	})

	t.Run("medium_confidence_above_ten_transactions", func(t *testing.T) {
		var txns []models.Transaction
		for i := 1; i <= 11; i++ {
			txns = append(txns, txn(models.TransactionTypeExpense, 10, "Food", day(time.March, i)))
		}
		assert.Equal(t, "medium", PredictExpenses(txns).Confidence)
		assert.Equal(t, "low", PredictExpenses(txns[:10]).Confidence)
	})
}

func TestSuggestGoals(t *testing.T) {
	t.Run("surplus_yields_three_goals", func(t *testing.T) {
		got := SuggestGoals(analytics.Summary{TotalIncome: 1000, TotalExpenses: 400})

		assert.Equal(t, []Suggestion{
			{Title: "Emergency Fund", Description: "Build a safety net for unexpected expenses", TargetAmount: 2400, SuggestedMonthly: 180, Priority: "high"},
			{Title: "Short-term Savings", Description: "For upcoming purchases or experiences", TargetAmount: 2000, SuggestedMonthly: 120, Priority: "medium"},
			{Title: "Investment Fund", Description: "Build wealth for the future", TargetAmount: 12000, SuggestedMonthly: 180, Priority: "medium"},
		}, got)
	})

	t.Run("no_surplus_yields_none", func(t *testing.T) {
		assert.Empty(t, SuggestGoals(analytics.Summary{TotalIncome: 400, TotalExpenses: 400}))
		assert.Empty(t, SuggestGoals(analytics.Summary{TotalIncome: 100, TotalExpenses: 400}))
	})
}

func TestAnalyzePatterns(t *testing.T) {
	t.Run("no_transactions", func(t *testing.T) {
		p := AnalyzePatterns(nil)

		assert.Equal(t, 0.0, p.TotalExpenses)
		assert.Empty(t, p.TopCategories)
		assert.Equal(t, []string{"Start tracking expenses to get insights!"}, p.Insights)
	})

	t.Run("income_only_is_balanced", func(t *testing.T) {
		p := AnalyzePatterns([]models.Transaction{txn(models.TransactionTypeIncome, 500, "Salary", day(time.March, 1))})

		assert.Empty(t, p.TopCategories)
		assert.Equal(t, []string{"Your spending looks balanced!"}, p.Insights)
	})

	t.Run("flags_shopping_and_dining", func(t *testing.T) {
		txns := []models.Transaction{
			txn(models.TransactionTypeExpense, 400, "Shopping", day(time.March, 1)),
			txn(models.TransactionTypeExpense, 300, "Food & Dining", day(time.March, 2)),
			txn(models.TransactionTypeExpense, 100, "Transport", day(time.March, 3)),
			txn(models.TransactionTypeExpense, 100, "Utilities", day(time.March, 4)),
			txn(models.TransactionTypeExpense, 50, "Books", day(time.March, 5)),
			txn(models.TransactionTypeExpense, 50, "Gifts", day(time.March, 6)),
			txn(models.TransactionTypeIncome, 5000, "Salary", day(time.March, 7)),
		}

		p := AnalyzePatterns(txns)

		assert.Equal(t, 1000.0, p.TotalExpenses)
		assert.Len(t, p.TopCategories, 5)
		assert.Equal(t, PatternCategory{Category: "Shopping", Amount: 400, Percentage: 40}, p.TopCategories[0])
		assert.Equal(t, "Books", p.TopCategories[4].Category)
		assert.Equal(t, []string{
			"Shopping is your highest spending category at 40.0% of total expenses",
			"Consider reducing shopping expenses - they're over 30% of your budget",
			"Dining expenses are high - cooking at home could save money",
		}, p.Insights)
	})
}
