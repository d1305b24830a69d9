package main

import (
	"fmt"
	"os"

	"privfin/internal/config"
	"privfin/internal/database"
	"privfin/internal/handlers"
	"privfin/internal/logger"
	"privfin/internal/middleware"
	"privfin/internal/services"
	"privfin/internal/validation"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "privfin/internal/docs" // Import swagger docs
)

// @title           PrivFin API
// @version         1.0
// @description     PrivFin is a personal finance application. This API manages category budgets with soft deletion and exact decimal amounts.

// @host      localhost:8080
// @BasePath  /api

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(database.NewConfig(appConfig))
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Custom validation tags must be registered before any binding happens
	validation.RegisterTags()

	// Services and handlers
	budgetService := services.NewBudgetService(dbManager.DB())
	budgetHandler := handlers.NewBudgetHandler(budgetService)
	healthHandler := handlers.NewHealthHandler()

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.CORS(appConfig.CORSOrigins))
	router.Use(middleware.ErrorHandler())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	handlers.RegisterSystemRoutes(router, healthHandler)
	handlers.RegisterBudgetRoutes(router.Group("/api/budgets"), budgetHandler)

	log.Infof("Server is running on port %s", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
