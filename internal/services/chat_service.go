package services

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"financeai/internal/advisor"
	"financeai/internal/analytics"
	apperrors "financeai/internal/errors"
	"financeai/internal/models"
)

// chatService builds the user's financial context, asks the advisor and
// records the exchange.
type chatService struct {
	db        *gorm.DB
	advisor   *advisor.Advisor
	analytics AnalyticsServicer
}

// NewChatService creates a new ChatServicer.
func NewChatService(db *gorm.DB, adv *advisor.Advisor, analyticsService AnalyticsServicer) ChatServicer {
	return &chatService{db: db, advisor: adv, analytics: analyticsService}
}

// Chat answers message for the user. Advisor failures never surface; only a
// blank message or a storage failure is an error.
func (s *chatService) Chat(ctx context.Context, userID, message string) (*advisor.Reply, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Message is required")
	}

	uc, err := s.userContext(userID)
	if err != nil {
		return nil, err
	}

	reply := s.advisor.Respond(ctx, message, uc)

	entry := &models.ChatHistory{
		UserID:   userID,
		Message:  message,
		Response: reply.Text,
		Source:   reply.Source,
	}
	if err := s.db.WithContext(context.WithoutCancel(ctx)).Create(entry).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return &reply, nil
}

func (s *chatService) userContext(userID string) (advisor.UserContext, error) {
	summary, err := s.analytics.GetSpendingSummary(userID, analytics.PeriodMonth)
	if err != nil {
		return advisor.UserContext{}, err
	}
	budgets, err := s.analytics.GetBudgetAnalysis(userID)
	if err != nil {
		return advisor.UserContext{}, err
	}
	savings, err := s.analytics.GetSavingsProgress(userID)
	if err != nil {
		return advisor.UserContext{}, err
	}

	return advisor.UserContext{
		TotalExpenses:    summary.TotalExpenses,
		TotalIncome:      summary.TotalIncome,
		CategorySpending: summary.CategorySpending,
		Budgets:          budgets.Budgets,
		SavingsGoals:     savings.Goals,
	}, nil
}
