// Package router assembles the HTTP API: services, handlers, middleware,
// swagger docs and CORS.
package router

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"financeai/internal/advisor"
	"financeai/internal/config"
	_ "financeai/internal/docs" // Import swagger docs
	"financeai/internal/handlers"
	"financeai/internal/middleware"
	"financeai/internal/services"
)

// Options carries the router's dependencies.
type Options struct {
	Config  *config.Config
	DB      *gorm.DB
	Advisor *advisor.Advisor
	// Health is pinged by /api/health. Defaults to pinging DB.
	Health handlers.Pinger
}

// New builds the gin engine with every route registered.
func New(opts Options) *gin.Engine {
	cfg := opts.Config
	db := opts.DB

	adv := opts.Advisor
	if adv == nil {
		adv = advisor.New(nil)
	}
	health := opts.Health
	if health == nil {
		health = gormPinger{db: db}
	}

	// Services
	userService := services.NewUserService(db)
	sessionService := services.NewSessionService(db, cfg.SessionTTL)
	transactionService := services.NewTransactionService(db)
	budgetService := services.NewBudgetService(db)
	goalService := services.NewSavingsGoalService(db)
	analyticsService := services.NewAnalyticsService(db)
	chatService := services.NewChatService(db, adv, analyticsService)
	auditService := services.NewAuditService(db)

	// Handlers
	authHandler := handlers.NewAuthHandler(userService, sessionService, auditService, handlers.AuthOptions{
		JWTSecret:    cfg.JWTSecret,
		TokenTTL:     cfg.JWTExpirationDur,
		SessionTTL:   cfg.SessionTTL,
		SecureCookie: cfg.SessionCookieSecure,
	})
	transactionHandler := handlers.NewTransactionHandler(transactionService, auditService)
	budgetHandler := handlers.NewBudgetHandler(budgetService, auditService)
	goalHandler := handlers.NewSavingsGoalHandler(goalService, auditService)
	chatHandler := handlers.NewChatHandler(chatService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	healthHandler := handlers.NewHealthHandler(health)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	api.GET("/health", healthHandler.Health)

	// Public auth routes
	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)
	api.POST("/logout", authHandler.Logout)

	// Protected routes
	protected := api.Group("")
	protected.Use(middleware.RequireAuth(sessionService, cfg.JWTSecret))

	protected.GET("/profile", authHandler.GetProfile)

	transactions := protected.Group("/transactions")
	transactions.GET("", transactionHandler.GetUserTransactions)
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	budgets := protected.Group("/budgets")
	budgets.GET("", budgetHandler.GetUserBudgets)
	budgets.POST("", budgetHandler.UpsertBudget)
	budgets.DELETE("/:id", budgetHandler.DeleteBudget)

	goals := protected.Group("/savings-goals")
	goals.GET("", goalHandler.GetUserGoals)
	goals.POST("", goalHandler.CreateGoal)
	goals.PUT("/:id", goalHandler.UpdateGoal)
	goals.DELETE("/:id", goalHandler.DeleteGoal)

	protected.POST("/chat", chatHandler.Chat)

	analyticsRoutes := protected.Group("/analytics")
	analyticsRoutes.GET("/summary", analyticsHandler.GetSummary)
	analyticsRoutes.GET("/budget-analysis", analyticsHandler.GetBudgetAnalysis)
	analyticsRoutes.GET("/savings-progress", analyticsHandler.GetSavingsProgress)
	analyticsRoutes.GET("/trends", analyticsHandler.GetTrends)
	analyticsRoutes.GET("/categories", analyticsHandler.GetCategoryInsights)
	analyticsRoutes.GET("/category-spending", analyticsHandler.GetCategorySpending)
	analyticsRoutes.GET("/predictions", analyticsHandler.GetPredictions)
	analyticsRoutes.GET("/suggestions", analyticsHandler.GetSuggestions)
	analyticsRoutes.GET("/patterns", analyticsHandler.GetPatterns)

	protected.GET("/dashboard", analyticsHandler.GetDashboard)

	return router
}

// WithCORS wraps h with rs/cors for the configured origins. Credentials are
// allowed only for explicit origins, never for the "*" wildcard.
func WithCORS(h http.Handler, allowedOrigins []string) http.Handler {
	wildcard := false
	for _, o := range allowedOrigins {
		if o == "*" {
			wildcard = true
		}
	}

	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Authorization",
			"Content-Type",
			"X-Request-ID",
		},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: !wildcard,
	})
	return c.Handler(h)
}

// gormPinger checks the connection behind a *gorm.DB.
type gormPinger struct {
	db *gorm.DB
}

func (p gormPinger) Ping(ctx context.Context) error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
