package main

import (
	"net/http"

	"easybudget/internal/database"
	"easybudget/internal/handlers"
	"easybudget/internal/middleware"
	"easybudget/internal/services"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// newRouter wires services and handlers over db and registers every route.
func newRouter(db *gorm.DB, env string) *gin.Engine {
	// Initialize services
	registry := services.NewRegistry(database.NewBudgetRepository(db))
	userService := services.NewUserService(db)
	auditService := services.NewAuditService(db)
	budgetService := services.NewBudgetService(registry)
	categoryService := services.NewCategoryService(registry)
	expenseService := services.NewExpenseService(registry)
	fundService := services.NewEmergencyFundService(registry)
	savingsService := services.NewSavingsService(registry)
	debtService := services.NewDebtService(registry)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService, auditService)
	auditHandler := handlers.NewAuditHandler(auditService)
	budgetHandler := handlers.NewBudgetHandler(budgetService, auditService)
	categoryHandler := handlers.NewCategoryHandler(categoryService, auditService)
	expenseHandler := handlers.NewExpenseHandler(expenseService, auditService)
	fundHandler := handlers.NewEmergencyFundHandler(fundService, auditService)
	savingsHandler := handlers.NewSavingsHandler(savingsService, auditService)
	debtHandler := handlers.NewDebtHandler(debtService, auditService)

	// Initialize Gin router
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	// User profile
	protected.GET("/profile", authHandler.GetProfile)
	protected.GET("/audit-logs", auditHandler.GetAuditLogs)

	// Budget routes
	budget := protected.Group("/budget")
	budget.GET("", budgetHandler.GetBudget)
	budget.GET("/summary", budgetHandler.GetSummary)
	budget.PUT("/income", budgetHandler.SetGrossIncome)
	budget.POST("/pay-period", budgetHandler.StartPayPeriod)

	// Category routes
	categories := protected.Group("/categories")
	categories.POST("", categoryHandler.CreateCategory)
	categories.GET("", categoryHandler.GetUserCategories)
	categories.PUT("/:id", categoryHandler.UpdateCategory)
	categories.DELETE("/:id", categoryHandler.DeleteCategory)

	// Expense routes
	expenses := protected.Group("/expenses")
	expenses.POST("", expenseHandler.CreateExpense)
	expenses.GET("", expenseHandler.GetUserExpenses)
	expenses.GET("/:id", expenseHandler.GetExpenseByID)
	expenses.PUT("/:id", expenseHandler.UpdateExpense)
	expenses.DELETE("/:id", expenseHandler.DeleteExpense)

	// Emergency fund routes
	fund := protected.Group("/emergency-fund")
	fund.GET("", fundHandler.GetEmergencyFund)
	fund.POST("/funds", fundHandler.AddFunds)
	fund.PUT("/goal", fundHandler.SetGoal)
	fund.POST("/goal/multiplier", fundHandler.SetGoalFromMultiplier)
	fund.PUT("/contribution", fundHandler.SetContribution)
	fund.POST("/contribution/apply", fundHandler.ApplyContribution)

	// Savings bucket routes
	buckets := protected.Group("/savings-buckets")
	buckets.POST("", savingsHandler.CreateBucket)
	buckets.GET("", savingsHandler.GetUserBuckets)
	buckets.PUT("/:id", savingsHandler.UpdateBucket)
	buckets.DELETE("/:id", savingsHandler.DeleteBucket)
	buckets.POST("/:id/deposit", savingsHandler.Deposit)

	// Debt routes
	debts := protected.Group("/debts")
	debts.POST("", debtHandler.CreateDebt)
	debts.GET("", debtHandler.GetUserDebts)
	debts.POST("/snowball", debtHandler.PlanSnowball)
	debts.PUT("/:id", debtHandler.UpdateDebt)
	debts.DELETE("/:id", debtHandler.DeleteDebt)

	return router
}
