package services

import (
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "financeai/internal/errors"
	"financeai/internal/models"
	"financeai/internal/pagination"
)

// transactionService handles transaction-related business logic.
type transactionService struct {
	db  *gorm.DB
	now func() time.Time
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB) TransactionServicer {
	return &transactionService{db: db, now: clock}
}

// CreateTransaction records an income or expense. Type defaults to expense
// and the date defaults to now.
func (s *transactionService) CreateTransaction(userID string, input TransactionInput) (*models.Transaction, error) {
	category := strings.TrimSpace(input.Category)
	if category == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Category is required")
	}
	if input.Amount < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Amount must not be negative")
	}

	txType := input.Type
	if txType == "" {
		txType = models.TransactionTypeExpense
	}
	if txType != models.TransactionTypeIncome && txType != models.TransactionTypeExpense {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Transaction type must be 'income' or 'expense'")
	}

	date := s.now()
	if input.Date != nil {
		date = input.Date.UTC()
	}

	tx := &models.Transaction{
		UserID:      userID,
		Amount:      input.Amount,
		Category:    category,
		Description: strings.TrimSpace(input.Description),
		Type:        txType,
		Date:        date,
	}
	if err := s.db.Create(tx).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return tx, nil
}

// GetUserTransactions lists a user's transactions newest first.
func (s *transactionService) GetUserTransactions(userID string, filter TransactionFilter) ([]models.Transaction, error) {
	query := s.db.Where("user_id = ?", userID)
	if c := strings.TrimSpace(filter.Category); c != "" {
		query = query.Where("category = ?", c)
	}

	var txns []models.Transaction
	if err := query.
		Order("date DESC").Order("created_at DESC").
		Scopes(pagination.Paginate(filter.Page)).
		Find(&txns).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return txns, nil
}

// DeleteTransaction removes one of the user's transactions.
func (s *transactionService) DeleteTransaction(userID, transactionID string) error {
	result := s.db.Where("id = ? AND user_id = ?", transactionID, userID).Delete(&models.Transaction{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrTransactionNotFound
	}
	return nil
}
