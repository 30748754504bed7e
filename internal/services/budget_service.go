package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"financeai/internal/analytics"
	apperrors "financeai/internal/errors"
	"financeai/internal/models"
)

// budgetService handles budget-related business logic.
type budgetService struct {
	db  *gorm.DB
	now func() time.Time
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB) BudgetServicer {
	return &budgetService{db: db, now: clock}
}

// UpsertBudget creates the user's budget for a category or updates the
// existing one in place.
func (s *budgetService) UpsertBudget(userID, category string, amount float64, period models.BudgetPeriod) (*models.Budget, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Category is required")
	}
	if amount < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Amount must not be negative")
	}
	if period == "" {
		period = models.BudgetPeriodMonthly
	}
	switch period {
	case models.BudgetPeriodWeekly, models.BudgetPeriodMonthly, models.BudgetPeriodYearly:
	default:
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Period must be 'weekly', 'monthly' or 'yearly'")
	}

	var budget models.Budget
	err := s.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("user_id = ? AND category = ?", userID, category).First(&budget).Error
		switch {
		case err == nil:
			budget.Amount = amount
			budget.Period = period
			return tx.Save(&budget).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			budget = models.Budget{UserID: userID, Category: category, Amount: amount, Period: period}
			return tx.Create(&budget).Error
		default:
			return err
		}
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &budget, nil
}

// GetUserBudgets lists budgets with the spend in each budget's own calendar
// period.
func (s *budgetService) GetUserBudgets(userID string) ([]BudgetWithSpent, error) {
	var budgets []models.Budget
	if err := s.db.Where("user_id = ?", userID).Order("category ASC").Find(&budgets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	out := make([]BudgetWithSpent, 0, len(budgets))
	if len(budgets) == 0 {
		return out, nil
	}

	now := s.now()
	earliest := now
	for _, b := range budgets {
		if start := analytics.PeriodStart(b.Period, now); start.Before(earliest) {
			earliest = start
		}
	}

	var txns []models.Transaction
	if err := s.db.
		Where("user_id = ? AND transaction_type = ? AND date >= ?", userID, models.TransactionTypeExpense, earliest).
		Find(&txns).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	for _, b := range budgets {
		out = append(out, BudgetWithSpent{Budget: b, Spent: analytics.PeriodSpent(txns, b, now)})
	}
	return out, nil
}

// DeleteBudget removes one of the user's budgets.
func (s *budgetService) DeleteBudget(userID, budgetID string) error {
	result := s.db.Where("id = ? AND user_id = ?", budgetID, userID).Delete(&models.Budget{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrBudgetNotFound
	}
	return nil
}
