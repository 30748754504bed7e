package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"financeai/internal/advisor"
	"financeai/internal/analytics"
	apperrors "financeai/internal/errors"
)

func setupAnalyticsRouter(handler *AnalyticsHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(testUserID))
	auth.GET("/analytics/summary", handler.GetSummary)
	auth.GET("/analytics/budget-analysis", handler.GetBudgetAnalysis)
	auth.GET("/analytics/savings-progress", handler.GetSavingsProgress)
	auth.GET("/analytics/trends", handler.GetTrends)
	auth.GET("/analytics/categories", handler.GetCategoryInsights)
	auth.GET("/analytics/category-spending", handler.GetCategorySpending)
	auth.GET("/analytics/predictions", handler.GetPredictions)
	auth.GET("/analytics/suggestions", handler.GetSuggestions)
	auth.GET("/analytics/patterns", handler.GetPatterns)
	auth.GET("/dashboard", handler.GetDashboard)
	return r
}

func TestAnalyticsHandler_Summary(t *testing.T) {
	t.Run("defaults to month", func(t *testing.T) {
		var got analytics.Period
		svc := &mockAnalyticsService{
			summaryFn: func(_ string, period analytics.Period) (*analytics.Summary, error) {
				got = period
				return &analytics.Summary{Period: period}, nil
			},
		}
		r := setupAnalyticsRouter(NewAnalyticsHandler(svc))

		rec := doRequest(r, "GET", "/analytics/summary", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if got != analytics.PeriodMonth {
			t.Errorf("expected month, got %s", got)
		}
		data := parseJSON(t, rec)["data"].(map[string]interface{})
		if data["period"] != "month" {
			t.Errorf("expected period month, got %v", data["period"])
		}
	})

	t.Run("returns 400 on unknown period", func(t *testing.T) {
		r := setupAnalyticsRouter(NewAnalyticsHandler(&mockAnalyticsService{}))

		rec := doRequest(r, "GET", "/analytics/summary?period=decade", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})
}

func TestAnalyticsHandler_Trends(t *testing.T) {
	t.Run("defaults to six months", func(t *testing.T) {
		r := setupAnalyticsRouter(NewAnalyticsHandler(&mockAnalyticsService{}))

		rec := doRequest(r, "GET", "/analytics/trends", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if data := parseJSON(t, rec)["data"].([]interface{}); len(data) != analytics.DefaultTrendMonths {
			t.Errorf("expected %d points, got %d", analytics.DefaultTrendMonths, len(data))
		}
	})

	t.Run("returns 400 on non-integer months", func(t *testing.T) {
		r := setupAnalyticsRouter(NewAnalyticsHandler(&mockAnalyticsService{}))

		rec := doRequest(r, "GET", "/analytics/trends?months=six", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("surfaces service validation", func(t *testing.T) {
		svc := &mockAnalyticsService{
			trendsFn: func(string, int) ([]analytics.TrendPoint, error) {
				return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "months must be between 1 and 60")
			},
		}
		r := setupAnalyticsRouter(NewAnalyticsHandler(svc))

		rec := doRequest(r, "GET", "/analytics/trends?months=0", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestAnalyticsHandler_Suggestions(t *testing.T) {
	svc := &mockAnalyticsService{
		suggestionsFn: func(string) ([]advisor.Suggestion, error) {
			return []advisor.Suggestion{{Title: "Emergency Fund", Priority: "high"}}, nil
		},
	}
	r := setupAnalyticsRouter(NewAnalyticsHandler(svc))

	rec := doRequest(r, "GET", "/analytics/suggestions", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	data := parseJSON(t, rec)["data"].(map[string]interface{})
	goals := data["goals"].([]interface{})
	if len(goals) != 1 || goals[0].(map[string]interface{})["title"] != "Emergency Fund" {
		t.Errorf("unexpected suggestions: %v", data)
	}
}

func TestAnalyticsHandler_ReadOnlyViews(t *testing.T) {
	r := setupAnalyticsRouter(NewAnalyticsHandler(&mockAnalyticsService{}))

	for _, path := range []string{
		"/analytics/budget-analysis",
		"/analytics/savings-progress",
		"/analytics/categories",
		"/analytics/category-spending",
		"/analytics/predictions",
		"/analytics/patterns",
		"/dashboard",
	} {
		t.Run(path, func(t *testing.T) {
			rec := doRequest(r, "GET", path, "")
			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
			}
			result := parseJSON(t, rec)
			assertSuccess(t, result)
			if _, ok := result["data"]; !ok {
				t.Errorf("expected data key, got %v", result)
			}
		})
	}
}

func TestAnalyticsHandler_DashboardError(t *testing.T) {
	svc := &mockAnalyticsService{
		dashboardFn: func(string) (*analytics.Dashboard, error) {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, errors.New("db down"))
		},
	}
	r := setupAnalyticsRouter(NewAnalyticsHandler(svc))

	rec := doRequest(r, "GET", "/dashboard", "")

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	assertErrorCode(t, parseJSON(t, rec), "INTERNAL_ERROR")
}

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }

func TestHealthHandler(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		r := gin.New()
		r.GET("/health", NewHealthHandler(fakePinger{}).Health)

		rec := doRequest(r, "GET", "/health", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if parseJSON(t, rec)["status"] != "ok" {
			t.Error("expected status ok")
		}
	})

	t.Run("unavailable", func(t *testing.T) {
		r := gin.New()
		r.GET("/health", NewHealthHandler(fakePinger{err: errors.New("refused")}).Health)

		rec := doRequest(r, "GET", "/health", "")

		if rec.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", rec.Code)
		}
	})
}
