package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"financeai/internal/advisor"
	"financeai/internal/analytics"
	"financeai/internal/middleware"
	"financeai/internal/models"
	"financeai/internal/services"
	"financeai/internal/validator"
)

const (
	testUserID = "0190b6a4-6f0e-7c3a-8d3e-2f1a9b7c4d5e"
	testItemID = "0190b6a4-7000-7c3a-8d3e-2f1a9b7c4d5f"
)

// --- mock services ---

type mockUserService struct {
	registerFn     func(username, email, password string) (*models.User, error)
	authenticateFn func(username, password string) (*models.User, error)
	getUserByIDFn  func(id string) (*models.User, error)
}

func (m *mockUserService) Register(username, email, password string) (*models.User, error) {
	if m.registerFn != nil {
		return m.registerFn(username, email, password)
	}
	return &models.User{Base: models.Base{ID: testUserID}, Username: username, Email: email}, nil
}

func (m *mockUserService) Authenticate(username, password string) (*models.User, error) {
	if m.authenticateFn != nil {
		return m.authenticateFn(username, password)
	}
	return &models.User{Base: models.Base{ID: testUserID}, Username: username}, nil
}

func (m *mockUserService) GetUserByID(id string) (*models.User, error) {
	if m.getUserByIDFn != nil {
		return m.getUserByIDFn(id)
	}
	return &models.User{Base: models.Base{ID: id}}, nil
}

var _ services.UserServicer = (*mockUserService)(nil)

type mockSessionService struct {
	createFn  func(userID string) (string, error)
	resolveFn func(raw string) (string, error)
	revoked   []string
}

func (m *mockSessionService) CreateSession(userID string) (string, error) {
	if m.createFn != nil {
		return m.createFn(userID)
	}
	return "session-token", nil
}

func (m *mockSessionService) ResolveSession(raw string) (string, error) {
	if m.resolveFn != nil {
		return m.resolveFn(raw)
	}
	return testUserID, nil
}

func (m *mockSessionService) RevokeSession(raw string) error {
	m.revoked = append(m.revoked, raw)
	return nil
}

var _ services.SessionServicer = (*mockSessionService)(nil)

type mockTransactionService struct {
	createTransactionFn   func(userID string, input services.TransactionInput) (*models.Transaction, error)
	getUserTransactionsFn func(userID string, filter services.TransactionFilter) ([]models.Transaction, error)
	deleteTransactionFn   func(userID, transactionID string) error
}

func (m *mockTransactionService) CreateTransaction(userID string, input services.TransactionInput) (*models.Transaction, error) {
	if m.createTransactionFn != nil {
		return m.createTransactionFn(userID, input)
	}
	return &models.Transaction{}, nil
}

func (m *mockTransactionService) GetUserTransactions(userID string, filter services.TransactionFilter) ([]models.Transaction, error) {
	if m.getUserTransactionsFn != nil {
		return m.getUserTransactionsFn(userID, filter)
	}
	return []models.Transaction{}, nil
}

func (m *mockTransactionService) DeleteTransaction(userID, transactionID string) error {
	if m.deleteTransactionFn != nil {
		return m.deleteTransactionFn(userID, transactionID)
	}
	return nil
}

var _ services.TransactionServicer = (*mockTransactionService)(nil)

type mockBudgetService struct {
	upsertBudgetFn   func(userID, category string, amount float64, period models.BudgetPeriod) (*models.Budget, error)
	getUserBudgetsFn func(userID string) ([]services.BudgetWithSpent, error)
	deleteBudgetFn   func(userID, budgetID string) error
}

func (m *mockBudgetService) UpsertBudget(userID, category string, amount float64, period models.BudgetPeriod) (*models.Budget, error) {
	if m.upsertBudgetFn != nil {
		return m.upsertBudgetFn(userID, category, amount, period)
	}
	return &models.Budget{}, nil
}

func (m *mockBudgetService) GetUserBudgets(userID string) ([]services.BudgetWithSpent, error) {
	if m.getUserBudgetsFn != nil {
		return m.getUserBudgetsFn(userID)
	}
	return []services.BudgetWithSpent{}, nil
}

func (m *mockBudgetService) DeleteBudget(userID, budgetID string) error {
	if m.deleteBudgetFn != nil {
		return m.deleteBudgetFn(userID, budgetID)
	}
	return nil
}

var _ services.BudgetServicer = (*mockBudgetService)(nil)

type mockGoalService struct {
	createGoalFn   func(userID, name string, target, current float64, deadline *time.Time) (*models.SavingsGoal, error)
	getUserGoalsFn func(userID string) ([]models.SavingsGoal, error)
	updateGoalFn   func(userID, goalID string, update services.GoalUpdate) (*models.SavingsGoal, error)
	deleteGoalFn   func(userID, goalID string) error
}

func (m *mockGoalService) CreateGoal(userID, name string, target, current float64, deadline *time.Time) (*models.SavingsGoal, error) {
	if m.createGoalFn != nil {
		return m.createGoalFn(userID, name, target, current, deadline)
	}
	return &models.SavingsGoal{}, nil
}

func (m *mockGoalService) GetUserGoals(userID string) ([]models.SavingsGoal, error) {
	if m.getUserGoalsFn != nil {
		return m.getUserGoalsFn(userID)
	}
	return []models.SavingsGoal{}, nil
}

func (m *mockGoalService) UpdateGoal(userID, goalID string, update services.GoalUpdate) (*models.SavingsGoal, error) {
	if m.updateGoalFn != nil {
		return m.updateGoalFn(userID, goalID, update)
	}
	return &models.SavingsGoal{}, nil
}

func (m *mockGoalService) DeleteGoal(userID, goalID string) error {
	if m.deleteGoalFn != nil {
		return m.deleteGoalFn(userID, goalID)
	}
	return nil
}

var _ services.SavingsGoalServicer = (*mockGoalService)(nil)

type mockChatService struct {
	chatFn func(ctx context.Context, userID, message string) (*advisor.Reply, error)
}

func (m *mockChatService) Chat(ctx context.Context, userID, message string) (*advisor.Reply, error) {
	if m.chatFn != nil {
		return m.chatFn(ctx, userID, message)
	}
	return &advisor.Reply{Text: "ok", Source: models.ChatSourceFallback}, nil
}

var _ services.ChatServicer = (*mockChatService)(nil)

type mockAnalyticsService struct {
	summaryFn     func(userID string, period analytics.Period) (*analytics.Summary, error)
	trendsFn      func(userID string, months int) ([]analytics.TrendPoint, error)
	suggestionsFn func(userID string) ([]advisor.Suggestion, error)
	dashboardFn   func(userID string) (*analytics.Dashboard, error)
}

func (m *mockAnalyticsService) GetSpendingSummary(userID string, period analytics.Period) (*analytics.Summary, error) {
	if m.summaryFn != nil {
		return m.summaryFn(userID, period)
	}
	return &analytics.Summary{Period: period}, nil
}

func (m *mockAnalyticsService) GetBudgetAnalysis(string) (*analytics.BudgetAnalysis, error) {
	return &analytics.BudgetAnalysis{Message: "No budgets set yet"}, nil
}

func (m *mockAnalyticsService) GetSavingsProgress(string) (*analytics.SavingsProgress, error) {
	return &analytics.SavingsProgress{Message: "No savings goals set yet"}, nil
}

func (m *mockAnalyticsService) GetSpendingTrends(userID string, months int) ([]analytics.TrendPoint, error) {
	if m.trendsFn != nil {
		return m.trendsFn(userID, months)
	}
	return make([]analytics.TrendPoint, months), nil
}

func (m *mockAnalyticsService) GetCategoryInsights(string) (*analytics.CategoryInsights, error) {
	return &analytics.CategoryInsights{}, nil
}

func (m *mockAnalyticsService) GetCategorySpending(string) ([]analytics.CategoryAmount, error) {
	return []analytics.CategoryAmount{}, nil
}

func (m *mockAnalyticsService) GetPredictions(string) (*advisor.Prediction, error) {
	return &advisor.Prediction{Trend: "insufficient_data", Confidence: "low"}, nil
}

func (m *mockAnalyticsService) GetSuggestions(userID string) ([]advisor.Suggestion, error) {
	if m.suggestionsFn != nil {
		return m.suggestionsFn(userID)
	}
	return []advisor.Suggestion{}, nil
}

func (m *mockAnalyticsService) GetSpendingPatterns(string) (*advisor.Patterns, error) {
	return &advisor.Patterns{}, nil
}

func (m *mockAnalyticsService) GetDashboard(userID string) (*analytics.Dashboard, error) {
	if m.dashboardFn != nil {
		return m.dashboardFn(userID)
	}
	return &analytics.Dashboard{}, nil
}

var _ services.AnalyticsServicer = (*mockAnalyticsService)(nil)

type auditEntry struct {
	userID, action, resourceID string
}

type mockAuditService struct {
	entries []auditEntry
}

func (m *mockAuditService) Log(userID, action, _, resourceID, _ string, _ map[string]interface{}) {
	m.entries = append(m.entries, auditEntry{userID: userID, action: action, resourceID: resourceID})
}

// --- test helpers ---

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

func injectUserID(uid string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDKey, uid)
		c.Next()
	}
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	if result["success"] != false {
		t.Errorf("expected success=false, got %v", result["success"])
	}
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
}

func assertSuccess(t *testing.T, result map[string]interface{}) {
	t.Helper()
	if result["success"] != true {
		t.Errorf("expected success=true, got %v", result["success"])
	}
}
