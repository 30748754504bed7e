package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"financeai/internal/models"
)

// BudgetStatus classifies spend against a budget.
type BudgetStatus string

const (
	StatusOnTrack  BudgetStatus = "on_track"
	StatusWarning  BudgetStatus = "warning"
	StatusExceeded BudgetStatus = "exceeded"
)

var (
	warningThreshold  = decimal.NewFromInt(80)
	exceededThreshold = decimal.NewFromInt(100)
)

// BudgetLine is one budget's comparison for the current month.
type BudgetLine struct {
	Category   string       `json:"category"`
	Budget     float64      `json:"budget"`
	Spent      float64      `json:"spent"`
	Remaining  float64      `json:"remaining"`
	Percentage float64      `json:"percentage"`
	Status     BudgetStatus `json:"status"`
}

// BudgetAnalysis compares month-to-date spend with each budget.
type BudgetAnalysis struct {
	HasBudgets  bool         `json:"has_budgets"`
	Message     string       `json:"message,omitempty"`
	Budgets     []BudgetLine `json:"budgets,omitempty"`
	TotalBudget float64      `json:"total_budget"`
	TotalSpent  float64      `json:"total_spent"`
	Month       string       `json:"month,omitempty"`
}

// MonthStart returns 00:00 UTC on the first day of now's month.
func MonthStart(now time.Time) time.Time {
	now = now.UTC()
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// AnalyzeBudgets compares expense totals since the start of the current
// calendar month (UTC) against each budget. TotalSpent covers every expense
// category, budgeted or not.
func AnalyzeBudgets(txns []models.Transaction, budgets []models.Budget, now time.Time) BudgetAnalysis {
	if len(budgets) == 0 {
		return BudgetAnalysis{HasBudgets: false, Message: "No budgets set yet"}
	}

	start := MonthStart(now)
	byCategory := newCategoryTotals()
	for _, t := range txns {
		if t.IsExpense() && inWindow(t.Date, start, now) {
			byCategory.add(t)
		}
	}

	lines := make([]BudgetLine, 0, len(budgets))
	totalBudget := decimal.Zero
	for _, b := range budgets {
		amount := amountOf(b.Amount)
		spent := byCategory.get(b.Category)
		totalBudget = totalBudget.Add(amount)

		lines = append(lines, BudgetLine{
			Category:   b.Category,
			Budget:     b.Amount,
			Spent:      Money(spent),
			Remaining:  Money(amount.Sub(spent)),
			Percentage: Percent(spent, amount),
			Status:     classify(spent, amount),
		})
	}

	return BudgetAnalysis{
		HasBudgets:  true,
		Budgets:     lines,
		TotalBudget: Money(totalBudget),
		TotalSpent:  Money(byCategory.sum()),
		Month:       now.UTC().Format("January 2006"),
	}
}

// classify compares the unrounded spend ratio against the thresholds. A
// budget of zero is exceeded by any positive spend.
func classify(spent, amount decimal.Decimal) BudgetStatus {
	if !amount.IsPositive() {
		if spent.IsPositive() {
			return StatusExceeded
		}
		return StatusOnTrack
	}
	ratio := spent.Mul(hundred).Div(amount)
	switch {
	case ratio.GreaterThanOrEqual(exceededThreshold):
		return StatusExceeded
	case ratio.GreaterThanOrEqual(warningThreshold):
		return StatusWarning
	default:
		return StatusOnTrack
	}
}

// PeriodStart returns the first instant of the calendar period containing
// now: Monday 00:00 UTC for weekly, the 1st of the month for monthly and
// January 1st for yearly budgets.
func PeriodStart(period models.BudgetPeriod, now time.Time) time.Time {
	now = now.UTC()
	switch period {
	case models.BudgetPeriodWeekly:
		offset := (int(now.Weekday()) + 6) % 7
		day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		return day.AddDate(0, 0, -offset)
	case models.BudgetPeriodYearly:
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	default:
		return MonthStart(now)
	}
}

// PeriodSpent sums the budget category's expenses within its own calendar
// period. This intentionally differs from the trailing window used by
// SpendingSummary.
func PeriodSpent(txns []models.Transaction, b models.Budget, now time.Time) float64 {
	start := PeriodStart(b.Period, now)
	spent := decimal.Zero
	for _, t := range txns {
		if t.IsExpense() && t.Category == b.Category && inWindow(t.Date, start, now) {
			spent = spent.Add(amountOf(t.Amount))
		}
	}
	return Money(spent)
}
