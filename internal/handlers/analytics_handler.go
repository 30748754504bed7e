package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"financeai/internal/analytics"
	apperrors "financeai/internal/errors"
	"financeai/internal/services"
)

// AnalyticsHandler serves the read-only analytics views.
type AnalyticsHandler struct {
	analyticsService services.AnalyticsServicer
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(analyticsService services.AnalyticsServicer) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// DataResponse wraps an analytics payload.
type DataResponse struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data"`
}

// view runs load for the authenticated user and writes {"success", "data"}.
func view[T any](c *gin.Context, load func(userID string) (T, error)) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	data, err := load(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	respond(c, http.StatusOK, gin.H{"data": data})
}

// GetSummary returns the spending summary
// @Summary     Spending summary
// @Description Income, expenses and category totals over a trailing week, month (30 days) or year
// @Tags        analytics
// @Produce     json
// @Security    BearerAuth
// @Param       period query string false "week, month or year (default month)"
// @Success     200 {object} DataResponse{data=analytics.Summary} "Summary"
// @Failure     400 {object} ErrorResponse "Invalid period"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /analytics/summary [get]
func (h *AnalyticsHandler) GetSummary(c *gin.Context) {
	period, ok := analytics.ParsePeriod(c.Query("period"))
	if !ok {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "period must be one of week, month, year"))
		return
	}
	view(c, func(userID string) (*analytics.Summary, error) {
		return h.analyticsService.GetSpendingSummary(userID, period)
	})
}

// GetBudgetAnalysis returns month-to-date budget status
// @Summary     Budget analysis
// @Tags        analytics
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} DataResponse{data=analytics.BudgetAnalysis} "Budget analysis"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /analytics/budget-analysis [get]
func (h *AnalyticsHandler) GetBudgetAnalysis(c *gin.Context) {
	view(c, h.analyticsService.GetBudgetAnalysis)
}

// GetSavingsProgress returns open goal progress
// @Summary     Savings progress
// @Tags        analytics
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} DataResponse{data=analytics.SavingsProgress} "Savings progress"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /analytics/savings-progress [get]
func (h *AnalyticsHandler) GetSavingsProgress(c *gin.Context) {
	view(c, h.analyticsService.GetSavingsProgress)
}

// GetTrends returns monthly income and expense totals
// @Summary     Spending trends
// @Tags        analytics
// @Produce     json
// @Security    BearerAuth
// @Param       months query int false "Number of months, 1 to 60 (default 6)"
// @Success     200 {object} DataResponse{data=[]analytics.TrendPoint} "Trend points, oldest first"
// @Failure     400 {object} ErrorResponse "Invalid months"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /analytics/trends [get]
func (h *AnalyticsHandler) GetTrends(c *gin.Context) {
	months := analytics.DefaultTrendMonths
	if raw := c.Query("months"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "months must be an integer"))
			return
		}
		months = n
	}
	view(c, func(userID string) ([]analytics.TrendPoint, error) {
		return h.analyticsService.GetSpendingTrends(userID, months)
	})
}

// GetCategoryInsights returns the 30-day category breakdown
// @Summary     Category insights
// @Tags        analytics
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} DataResponse{data=analytics.CategoryInsights} "Category insights"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /analytics/categories [get]
func (h *AnalyticsHandler) GetCategoryInsights(c *gin.Context) {
	view(c, h.analyticsService.GetCategoryInsights)
}

// GetCategorySpending returns chart-ready category totals
// @Summary     Category spending
// @Tags        analytics
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} DataResponse{data=[]analytics.CategoryAmount} "Category totals, largest first"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /analytics/category-spending [get]
func (h *AnalyticsHandler) GetCategorySpending(c *gin.Context) {
	view(c, h.analyticsService.GetCategorySpending)
}

// GetPredictions returns next month's expense forecast
// @Summary     Expense predictions
// @Tags        analytics
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} DataResponse{data=advisor.Prediction} "Prediction"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /analytics/predictions [get]
func (h *AnalyticsHandler) GetPredictions(c *gin.Context) {
	view(c, h.analyticsService.GetPredictions)
}

// GetSuggestions returns suggested savings goals
// @Summary     Savings suggestions
// @Description Three goals sized from the 30-day surplus, or none without a surplus
// @Tags        analytics
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} DataResponse "Suggestions under data.goals"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /analytics/suggestions [get]
func (h *AnalyticsHandler) GetSuggestions(c *gin.Context) {
	view(c, func(userID string) (gin.H, error) {
		goals, err := h.analyticsService.GetSuggestions(userID)
		if err != nil {
			return nil, err
		}
		return gin.H{"goals": goals}, nil
	})
}

// GetPatterns returns all-time spending patterns
// @Summary     Spending patterns
// @Tags        analytics
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} DataResponse{data=advisor.Patterns} "Patterns"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /analytics/patterns [get]
func (h *AnalyticsHandler) GetPatterns(c *gin.Context) {
	view(c, h.analyticsService.GetSpendingPatterns)
}

// GetDashboard returns the headline numbers
// @Summary     Dashboard
// @Description All-time balance, 30-day income and expenses, and the number of goals
// @Tags        dashboard
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} DataResponse{data=analytics.Dashboard} "Dashboard"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dashboard [get]
func (h *AnalyticsHandler) GetDashboard(c *gin.Context) {
	view(c, h.analyticsService.GetDashboard)
}
