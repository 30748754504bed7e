package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"financeai/internal/analytics"
	"financeai/internal/models"
	"financeai/internal/testutil"
)

var analyticsNow = time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

func newTestAnalyticsService(db *gorm.DB) *analyticsService {
	svc := NewAnalyticsService(db).(*analyticsService)
	svc.now = func() time.Time { return analyticsNow }
	return svc
}

func TestAnalyticsService_SpendingSummary(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := newTestAnalyticsService(db)
	user := testutil.CreateTestUser(t, db)
	other := testutil.CreateTestUser(t, db)

	testutil.CreateTestTransaction(t, db, user.ID, models.TransactionTypeExpense, 50, "Food", analyticsNow.AddDate(0, 0, -2))
	testutil.CreateTestTransaction(t, db, user.ID, models.TransactionTypeIncome, 1000, "Salary", analyticsNow.AddDate(0, 0, -5))
	testutil.CreateTestTransaction(t, db, user.ID, models.TransactionTypeExpense, 70, "Food", analyticsNow.AddDate(0, 0, -40))
	testutil.CreateTestTransaction(t, db, user.ID, models.TransactionTypeExpense, 99, "Food", analyticsNow.AddDate(0, 0, 3))
	testutil.CreateTestTransaction(t, db, other.ID, models.TransactionTypeExpense, 500, "Food", analyticsNow.AddDate(0, 0, -1))
	testutil.CreateTestBudget(t, db, user.ID, "Food", 60, models.BudgetPeriodMonthly)

	summary, err := svc.GetSpendingSummary(user.ID, analytics.PeriodMonth)
	require.NoError(t, err)

	assert.Equal(t, 50.0, summary.TotalExpenses)
	assert.Equal(t, 1000.0, summary.TotalIncome)
	assert.Equal(t, 950.0, summary.NetSavings)
	assert.Equal(t, 2, summary.TransactionCount)
	assert.Equal(t, map[string]float64{"Food": 50}, summary.CategorySpending)
	require.Len(t, summary.Budgets, 1)
	assert.Equal(t, 50.0, summary.Budgets[0].Spent)
}

func TestAnalyticsService_BudgetAnalysis(t *testing.T) {
	t.Run("no_budgets", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestAnalyticsService(db)
		user := testutil.CreateTestUser(t, db)

		result, err := svc.GetBudgetAnalysis(user.ID)
		require.NoError(t, err)
		assert.False(t, result.HasBudgets)
		assert.Equal(t, "No budgets set yet", result.Message)
	})

	t.Run("exceeded", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestAnalyticsService(db)
		user := testutil.CreateTestUser(t, db)

		testutil.CreateTestBudget(t, db, user.ID, "Food", 50, models.BudgetPeriodMonthly)
		testutil.CreateTestTransaction(t, db, user.ID, models.TransactionTypeExpense, 60, "Food", analyticsNow.AddDate(0, 0, -1))

		result, err := svc.GetBudgetAnalysis(user.ID)
		require.NoError(t, err)
		require.Len(t, result.Budgets, 1)
		assert.Equal(t, 120.0, result.Budgets[0].Percentage)
		assert.Equal(t, analytics.StatusExceeded, result.Budgets[0].Status)
		assert.Equal(t, "March 2025", result.Month)
	})
}

func TestAnalyticsService_SavingsProgress(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := newTestAnalyticsService(db)
	user := testutil.CreateTestUser(t, db)

	testutil.CreateTestGoal(t, db, user.ID, 1000, 250)
	testutil.CreateTestGoal(t, db, user.ID, 100, 100)

	result, err := svc.GetSavingsProgress(user.ID)
	require.NoError(t, err)

	assert.True(t, result.HasGoals)
	require.Len(t, result.Goals, 1)
	assert.Equal(t, 25.0, result.Goals[0].Progress)
	assert.Equal(t, 1000.0, result.TotalTarget)
	assert.Equal(t, 250.0, result.TotalSaved)
}

func TestAnalyticsService_Trends(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := newTestAnalyticsService(db)
	user := testutil.CreateTestUser(t, db)

	testutil.CreateTestTransaction(t, db, user.ID, models.TransactionTypeExpense, 40, "Food", analyticsNow.AddDate(0, 0, -3))

	points, err := svc.GetSpendingTrends(user.ID, 3)
	require.NoError(t, err)
	require.Len(t, points, 3)

	_, err = svc.GetSpendingTrends(user.ID, 0)
	testutil.AssertAppError(t, err, "INVALID_INPUT")

	_, err = svc.GetSpendingTrends(user.ID, analytics.MaxTrendMonths+1)
	testutil.AssertAppError(t, err, "INVALID_INPUT")
}

func TestAnalyticsService_Categories(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := newTestAnalyticsService(db)
	user := testutil.CreateTestUser(t, db)

	testutil.CreateTestTransaction(t, db, user.ID, models.TransactionTypeExpense, 30, "Food", analyticsNow.AddDate(0, 0, -1))
	testutil.CreateTestTransaction(t, db, user.ID, models.TransactionTypeExpense, 70, "Rent", analyticsNow.AddDate(0, 0, -2))

	insights, err := svc.GetCategoryInsights(user.ID)
	require.NoError(t, err)
	assert.True(t, insights.HasData)
	assert.Equal(t, 100.0, insights.TotalSpending)

	spending, err := svc.GetCategorySpending(user.ID)
	require.NoError(t, err)
	require.Len(t, spending, 2)
	assert.Equal(t, "Rent", spending[0].Category)
}

func TestAnalyticsService_AdvisoryViews(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := newTestAnalyticsService(db)
	user := testutil.CreateTestUser(t, db)

	testutil.CreateTestTransaction(t, db, user.ID, models.TransactionTypeIncome, 1000, "Salary", analyticsNow.AddDate(0, 0, -10))
	testutil.CreateTestTransaction(t, db, user.ID, models.TransactionTypeExpense, 400, "Shopping", analyticsNow.AddDate(0, 0, -5))
	testutil.CreateTestTransaction(t, db, user.ID, models.TransactionTypeExpense, 100, "Food", analyticsNow.AddDate(0, 0, -4))

	prediction, err := svc.GetPredictions(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "low", prediction.Confidence)

	suggestions, err := svc.GetSuggestions(user.ID)
	require.NoError(t, err)
	assert.Len(t, suggestions, 3)

	patterns, err := svc.GetSpendingPatterns(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 500.0, patterns.TotalExpenses)
	require.NotEmpty(t, patterns.TopCategories)
	assert.Equal(t, "Shopping", patterns.TopCategories[0].Category)
}

func TestAnalyticsService_Dashboard(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := newTestAnalyticsService(db)
	user := testutil.CreateTestUser(t, db)

	testutil.CreateTestTransaction(t, db, user.ID, models.TransactionTypeIncome, 1000, "Salary", analyticsNow.AddDate(0, -3, 0))
	testutil.CreateTestTransaction(t, db, user.ID, models.TransactionTypeExpense, 200, "Food", analyticsNow.AddDate(0, 0, -2))
	testutil.CreateTestGoal(t, db, user.ID, 100, 100)
	testutil.CreateTestGoal(t, db, user.ID, 500, 0)

	dashboard, err := svc.GetDashboard(user.ID)
	require.NoError(t, err)

	assert.Equal(t, 800.0, dashboard.Balance)
	assert.Equal(t, 0.0, dashboard.MonthIncome)
	assert.Equal(t, 200.0, dashboard.MonthExpenses)
	assert.Equal(t, int64(2), dashboard.GoalsCount)
}
