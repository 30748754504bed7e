package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "financeai/internal/errors"
	"financeai/internal/models"
)

// savingsGoalService handles savings goal business logic.
type savingsGoalService struct {
	db *gorm.DB
}

// NewSavingsGoalService creates a new SavingsGoalServicer.
func NewSavingsGoalService(db *gorm.DB) SavingsGoalServicer {
	return &savingsGoalService{db: db}
}

// CreateGoal creates a goal, already completed if the current amount meets
// the target.
func (s *savingsGoalService) CreateGoal(userID, name string, targetAmount, currentAmount float64, deadline *time.Time) (*models.SavingsGoal, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Name is required")
	}
	if targetAmount < 0 || currentAmount < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Amounts must not be negative")
	}

	goal := &models.SavingsGoal{
		UserID:        userID,
		Name:          name,
		TargetAmount:  targetAmount,
		CurrentAmount: currentAmount,
		Deadline:      utcPtr(deadline),
	}
	goal.MarkIfReached()

	if err := s.db.Create(goal).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return goal, nil
}

// GetUserGoals lists all of the user's goals, completed ones included.
func (s *savingsGoalService) GetUserGoals(userID string) ([]models.SavingsGoal, error) {
	var goals []models.SavingsGoal
	if err := s.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&goals).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return goals, nil
}

// UpdateGoal applies a partial update. Completed is set when the new
// amounts meet the target and is never cleared.
func (s *savingsGoalService) UpdateGoal(userID, goalID string, update GoalUpdate) (*models.SavingsGoal, error) {
	var goal models.SavingsGoal
	if err := s.db.Where("id = ? AND user_id = ?", goalID, userID).First(&goal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGoalNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		if name == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Name must not be blank")
		}
		goal.Name = name
	}
	if update.TargetAmount != nil {
		if *update.TargetAmount < 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Amounts must not be negative")
		}
		goal.TargetAmount = *update.TargetAmount
	}
	if update.CurrentAmount != nil {
		if *update.CurrentAmount < 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Amounts must not be negative")
		}
		goal.CurrentAmount = *update.CurrentAmount
	}
	if update.Deadline != nil {
		goal.Deadline = utcPtr(update.Deadline)
	}
	goal.MarkIfReached()

	if err := s.db.Save(&goal).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &goal, nil
}

// DeleteGoal removes one of the user's goals.
func (s *savingsGoalService) DeleteGoal(userID, goalID string) error {
	result := s.db.Where("id = ? AND user_id = ?", goalID, userID).Delete(&models.SavingsGoal{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrGoalNotFound
	}
	return nil
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
