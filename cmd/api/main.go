package main

import (
	"fmt"
	"net/http"
	"os"

	"rms/internal/config"
	"rms/internal/database"
	"rms/internal/handlers"
	"rms/internal/logger"
	"rms/internal/middleware"
	"rms/internal/services"
	"rms/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           RMS API
// @version         1.0
// @description     RMS tracks employee access to subscription AI tools: employees request allocations, admins approve or reject them.

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

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Custom binding validators
	validator.Register()

	// Initialize services
	db := dbManager.DB()
	toolService := services.NewAIToolService(db)
	allocationService := services.NewAllocationService(db, toolService)
	auditService := services.NewAuditService(db)

	// Initialize handlers
	toolHandler := handlers.NewAIToolHandler(toolService, auditService)
	allocationHandler := handlers.NewAllocationHandler(allocationService, auditService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

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
		c.JSON(http.StatusOK, gin.H{"status": "OK", "message": "Server is running"})
	})

	// API group
	api := router.Group("/api")

	// AI tool catalog routes
	tools := api.Group("/ai-tools")
	tools.GET("", toolHandler.GetAllTools)
	tools.GET("/:id", toolHandler.GetToolByID)
	tools.POST("", toolHandler.CreateTool)
	tools.PUT("/:id", toolHandler.UpdateTool)
	tools.DELETE("/:id", toolHandler.DeleteTool)

	// Allocation routes
	allocations := api.Group("/allocations")
	allocations.POST("", allocationHandler.CreateAllocation)
	allocations.GET("/pending", allocationHandler.GetPendingRequests)
	allocations.GET("/processed", allocationHandler.GetProcessedRequests)
	allocations.PUT("/:id/approve", allocationHandler.ApproveAllocation)
	allocations.PUT("/:id/reject", allocationHandler.RejectAllocation)
	allocations.GET("/employee/:employeeId", allocationHandler.GetEmployeeAllocations)
	allocations.GET("/employee/:employeeId/active", allocationHandler.GetActiveEmployeeAllocations)
	allocations.GET("/:id", allocationHandler.GetAllocationByID)

	log.Infof("Starting RMS backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
