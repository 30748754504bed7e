package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"financeai/internal/models"
)

// Dashboard is the headline view: all-time balance plus the last 30 days.
type Dashboard struct {
	Balance       float64 `json:"balance"`
	MonthIncome   float64 `json:"month_income"`
	MonthExpenses float64 `json:"month_expenses"`
	GoalsCount    int64   `json:"goals_count"`
}

// BuildDashboard computes the balance over every transaction up to now and
// takes the month figures from the 30-day summary.
func BuildDashboard(txns []models.Transaction, goalsCount int64, now time.Time) Dashboard {
	balance := decimal.Zero
	for _, t := range txns {
		if t.Date.After(now) {
			continue
		}
		switch {
		case t.IsIncome():
			balance = balance.Add(amountOf(t.Amount))
		case t.IsExpense():
			balance = balance.Sub(amountOf(t.Amount))
		}
	}

	month := SpendingSummary(txns, nil, PeriodMonth, now)
	return Dashboard{
		Balance:       Money(balance),
		MonthIncome:   month.TotalIncome,
		MonthExpenses: month.TotalExpenses,
		GoalsCount:    goalsCount,
	}
}
