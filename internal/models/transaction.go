package models

import "time"

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Transaction represents a single income or expense record. Transactions are
// immutable once written; they can only be deleted.
type Transaction struct {
	Base
	UserID      string          `gorm:"size:36;not null;index" json:"user_id"`
	Amount      float64         `gorm:"not null" json:"amount"`
	Category    string          `gorm:"size:50;not null" json:"category"`
	Description string          `gorm:"size:200" json:"description"`
	Type        TransactionType `gorm:"column:transaction_type;size:20;not null;default:expense" json:"transaction_type"`
	Date        time.Time       `gorm:"not null;index" json:"date"`
}

// IsExpense reports whether the transaction is an expense.
func (t Transaction) IsExpense() bool { return t.Type == TransactionTypeExpense }

// IsIncome reports whether the transaction is income.
func (t Transaction) IsIncome() bool { return t.Type == TransactionTypeIncome }
