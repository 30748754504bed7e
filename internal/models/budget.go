package models

// BudgetPeriod represents the period type for a budget
type BudgetPeriod string

const (
	BudgetPeriodWeekly  BudgetPeriod = "weekly"
	BudgetPeriodMonthly BudgetPeriod = "monthly"
	BudgetPeriodYearly  BudgetPeriod = "yearly"
)

// Budget is a spending limit for one category. A user has at most one budget
// per category.
type Budget struct {
	Base
	UserID   string       `gorm:"size:36;not null;uniqueIndex:idx_budgets_user_category" json:"user_id"`
	Category string       `gorm:"size:50;not null;uniqueIndex:idx_budgets_user_category" json:"category"`
	Amount   float64      `gorm:"not null" json:"amount"`
	Period   BudgetPeriod `gorm:"size:20;not null;default:monthly" json:"period"`
}
