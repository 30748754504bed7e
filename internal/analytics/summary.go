package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"financeai/internal/models"
)

// Period is a trailing window length for spending summaries.
type Period string

const (
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

// ParsePeriod validates a period name. The empty string selects PeriodMonth.
func ParsePeriod(s string) (Period, bool) {
	switch Period(s) {
	case "":
		return PeriodMonth, true
	case PeriodWeek, PeriodMonth, PeriodYear:
		return Period(s), true
	}
	return "", false
}

// Days returns the trailing window length in days.
func (p Period) Days() int {
	switch p {
	case PeriodWeek:
		return 7
	case PeriodYear:
		return 365
	default:
		return 30
	}
}

// Start returns the first instant of the trailing window ending at now.
func (p Period) Start(now time.Time) time.Time {
	return now.AddDate(0, 0, -p.Days())
}

// BudgetSpend pairs a budget with what was spent in its category during the
// summary window.
type BudgetSpend struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Spent    float64 `json:"spent"`
}

// Summary is the income/expense roll-up over a trailing window.
type Summary struct {
	Period           Period             `json:"period"`
	StartDate        time.Time          `json:"start_date"`
	EndDate          time.Time          `json:"end_date"`
	TotalExpenses    float64            `json:"total_expenses"`
	TotalIncome      float64            `json:"total_income"`
	Expenses         float64            `json:"expenses"`
	Income           float64            `json:"income"`
	NetSavings       float64            `json:"net_savings"`
	CategorySpending map[string]float64 `json:"category_spending"`
	TransactionCount int                `json:"transaction_count"`
	Budgets          []BudgetSpend      `json:"budgets"`
}

// SpendingSummary totals income and expenses within the trailing window of
// period ending at now. Budget spend uses the same window regardless of each
// budget's own period.
func SpendingSummary(txns []models.Transaction, budgets []models.Budget, period Period, now time.Time) Summary {
	start := period.Start(now)

	income, expense := decimal.Zero, decimal.Zero
	byCategory := newCategoryTotals()
	count := 0

	for _, t := range txns {
		if !inWindow(t.Date, start, now) {
			continue
		}
		count++
		switch {
		case t.IsExpense():
			expense = expense.Add(amountOf(t.Amount))
			byCategory.add(t)
		case t.IsIncome():
			income = income.Add(amountOf(t.Amount))
		}
	}

	budgetSpend := make([]BudgetSpend, 0, len(budgets))
	for _, b := range budgets {
		budgetSpend = append(budgetSpend, BudgetSpend{
			Category: b.Category,
			Amount:   b.Amount,
			Spent:    Money(byCategory.get(b.Category)),
		})
	}

	return Summary{
		Period:           period,
		StartDate:        start,
		EndDate:          now,
		TotalExpenses:    Money(expense),
		TotalIncome:      Money(income),
		Expenses:         Money(expense),
		Income:           Money(income),
		NetSavings:       Money(income.Sub(expense)),
		CategorySpending: byCategory.rounded(),
		TransactionCount: count,
		Budgets:          budgetSpend,
	}
}
