package services

import (
	"time"

	"gorm.io/gorm"

	"financeai/internal/advisor"
	"financeai/internal/analytics"
	apperrors "financeai/internal/errors"
	"financeai/internal/models"
)

// analyticsService loads a user's rows and hands them to the pure
// analytics and advisor functions. Window filtering happens in Go so results
// do not depend on how the driver compares timestamps.
type analyticsService struct {
	db  *gorm.DB
	now func() time.Time
}

// NewAnalyticsService creates a new AnalyticsServicer.
func NewAnalyticsService(db *gorm.DB) AnalyticsServicer {
	return &analyticsService{db: db, now: clock}
}

func (s *analyticsService) transactions(userID string) ([]models.Transaction, error) {
	var txns []models.Transaction
	if err := s.db.Where("user_id = ?", userID).Order("date ASC").Find(&txns).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return txns, nil
}

func (s *analyticsService) budgets(userID string) ([]models.Budget, error) {
	var budgets []models.Budget
	if err := s.db.Where("user_id = ?", userID).Order("category ASC").Find(&budgets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return budgets, nil
}

// GetSpendingSummary totals the trailing window for period.
func (s *analyticsService) GetSpendingSummary(userID string, period analytics.Period) (*analytics.Summary, error) {
	txns, err := s.transactions(userID)
	if err != nil {
		return nil, err
	}
	budgets, err := s.budgets(userID)
	if err != nil {
		return nil, err
	}
	summary := analytics.SpendingSummary(txns, budgets, period, s.now())
	return &summary, nil
}

// GetBudgetAnalysis compares month-to-date spend with each budget.
func (s *analyticsService) GetBudgetAnalysis(userID string) (*analytics.BudgetAnalysis, error) {
	budgets, err := s.budgets(userID)
	if err != nil {
		return nil, err
	}
	var txns []models.Transaction
	if len(budgets) > 0 {
		if txns, err = s.transactions(userID); err != nil {
			return nil, err
		}
	}
	result := analytics.AnalyzeBudgets(txns, budgets, s.now())
	return &result, nil
}

// GetSavingsProgress reports on the user's open goals.
func (s *analyticsService) GetSavingsProgress(userID string) (*analytics.SavingsProgress, error) {
	var goals []models.SavingsGoal
	if err := s.db.Where("user_id = ? AND completed = ?", userID, false).Order("created_at ASC").Find(&goals).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	result := analytics.TrackSavings(goals, s.now())
	return &result, nil
}

// GetSpendingTrends returns one point per month label.
func (s *analyticsService) GetSpendingTrends(userID string, months int) ([]analytics.TrendPoint, error) {
	if months < 1 || months > analytics.MaxTrendMonths {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "months must be between 1 and 60")
	}
	txns, err := s.transactions(userID)
	if err != nil {
		return nil, err
	}
	return analytics.SpendingTrends(txns, months, s.now()), nil
}

// GetCategoryInsights breaks down the last 30 days of spend.
func (s *analyticsService) GetCategoryInsights(userID string) (*analytics.CategoryInsights, error) {
	txns, err := s.transactions(userID)
	if err != nil {
		return nil, err
	}
	result := analytics.InsightsByCategory(txns, s.now())
	return &result, nil
}

// GetCategorySpending lists the 30-day category totals, largest first.
func (s *analyticsService) GetCategorySpending(userID string) ([]analytics.CategoryAmount, error) {
	txns, err := s.transactions(userID)
	if err != nil {
		return nil, err
	}
	summary := analytics.SpendingSummary(txns, nil, analytics.PeriodMonth, s.now())
	return analytics.SortedCategorySpending(summary), nil
}

// GetPredictions forecasts next month's expenses from the full history.
func (s *analyticsService) GetPredictions(userID string) (*advisor.Prediction, error) {
	txns, err := s.transactions(userID)
	if err != nil {
		return nil, err
	}
	prediction := advisor.PredictExpenses(txns)
	return &prediction, nil
}

// GetSuggestions proposes savings goals from the 30-day summary.
func (s *analyticsService) GetSuggestions(userID string) ([]advisor.Suggestion, error) {
	summary, err := s.GetSpendingSummary(userID, analytics.PeriodMonth)
	if err != nil {
		return nil, err
	}
	return advisor.SuggestGoals(*summary), nil
}

// GetSpendingPatterns ranks all-time expense categories.
func (s *analyticsService) GetSpendingPatterns(userID string) (*advisor.Patterns, error) {
	txns, err := s.transactions(userID)
	if err != nil {
		return nil, err
	}
	patterns := advisor.AnalyzePatterns(txns)
	return &patterns, nil
}

// GetDashboard returns the headline numbers.
func (s *analyticsService) GetDashboard(userID string) (*analytics.Dashboard, error) {
	txns, err := s.transactions(userID)
	if err != nil {
		return nil, err
	}
	var goalsCount int64
	if err := s.db.Model(&models.SavingsGoal{}).Where("user_id = ?", userID).Count(&goalsCount).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	dashboard := analytics.BuildDashboard(txns, goalsCount, s.now())
	return &dashboard, nil
}
