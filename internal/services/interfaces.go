package services

import (
	"context"
	"time"

	"financeai/internal/advisor"
	"financeai/internal/analytics"
	"financeai/internal/models"
	"financeai/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	Register(username, email, password string) (*models.User, error)
	Authenticate(username, password string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
}

// SessionServicer manages server-side login sessions keyed by an opaque
// cookie token.
type SessionServicer interface {
	CreateSession(userID string) (string, error)
	ResolveSession(rawToken string) (string, error)
	RevokeSession(rawToken string) error
}

// TransactionInput holds the fields accepted when recording a transaction.
type TransactionInput struct {
	Amount      float64
	Category    string
	Description string
	Type        models.TransactionType
	Date        *time.Time
}

// TransactionFilter holds optional filter parameters for listing transactions.
type TransactionFilter struct {
	Category string
	Page     pagination.LimitRequest
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	CreateTransaction(userID string, input TransactionInput) (*models.Transaction, error)
	GetUserTransactions(userID string, filter TransactionFilter) ([]models.Transaction, error)
	DeleteTransaction(userID, transactionID string) error
}

// BudgetWithSpent is a budget plus spend within its own calendar period.
type BudgetWithSpent struct {
	models.Budget
	Spent float64 `json:"spent"`
}

// BudgetServicer defines the contract for budget-related business logic.
type BudgetServicer interface {
	UpsertBudget(userID, category string, amount float64, period models.BudgetPeriod) (*models.Budget, error)
	GetUserBudgets(userID string) ([]BudgetWithSpent, error)
	DeleteBudget(userID, budgetID string) error
}

// GoalUpdate carries the optional fields of a savings goal patch.
type GoalUpdate struct {
	Name          *string
	TargetAmount  *float64
	CurrentAmount *float64
	Deadline      *time.Time
}

// SavingsGoalServicer defines the contract for savings goal business logic.
type SavingsGoalServicer interface {
	CreateGoal(userID, name string, targetAmount, currentAmount float64, deadline *time.Time) (*models.SavingsGoal, error)
	GetUserGoals(userID string) ([]models.SavingsGoal, error)
	UpdateGoal(userID, goalID string, update GoalUpdate) (*models.SavingsGoal, error)
	DeleteGoal(userID, goalID string) error
}

// AnalyticsServicer loads a user's rows and computes read-only views over them.
type AnalyticsServicer interface {
	GetSpendingSummary(userID string, period analytics.Period) (*analytics.Summary, error)
	GetBudgetAnalysis(userID string) (*analytics.BudgetAnalysis, error)
	GetSavingsProgress(userID string) (*analytics.SavingsProgress, error)
	GetSpendingTrends(userID string, months int) ([]analytics.TrendPoint, error)
	GetCategoryInsights(userID string) (*analytics.CategoryInsights, error)
	GetCategorySpending(userID string) ([]analytics.CategoryAmount, error)
	GetPredictions(userID string) (*advisor.Prediction, error)
	GetSuggestions(userID string) ([]advisor.Suggestion, error)
	GetSpendingPatterns(userID string) (*advisor.Patterns, error)
	GetDashboard(userID string) (*analytics.Dashboard, error)
}

// ChatServicer answers advisory chat messages and records the exchange.
type ChatServicer interface {
	Chat(ctx context.Context, userID, message string) (*advisor.Reply, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID, action, resourceType, resourceID, ipAddress string, changes map[string]interface{})
}

// clock returns the current time in UTC. Tests replace it on the service
// structs.
func clock() time.Time {
	return time.Now().UTC()
}
