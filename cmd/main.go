package main

import (
	"stayadmin-service/internal/handler"
	"stayadmin-service/internal/mailer"
	"stayadmin-service/internal/middleware"
	"stayadmin-service/internal/password"
	"stayadmin-service/internal/sweeper"
	"stayadmin-service/pkg/config"
	"stayadmin-service/pkg/database"
	"stayadmin-service/pkg/jwtutil"
	"stayadmin-service/pkg/logger"
	"stayadmin-service/prometheus"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	// Load configuration from .env file and environment variables
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger with config
	logger.InitLogger(cfg)
	log := logger.GetLogger()
	log.Info("Starting admin service...", zap.String("environment", cfg.Server.Env))

	// Initialize database (now includes migrations automatically)
	if err := database.InitDB(cfg); err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	log.Info("Database connection established and migrations completed")

	// Initialize JWT signing
	jwtutil.Initialize(&cfg.JWT)

	// Wire outbound collaborators into the handlers
	handler.Init(mailer.New(&cfg.Mail), password.NewClient(&cfg.Breach))

	// Start the suspension-expiry sweeper
	sw := sweeper.New(cfg.Sweeper.Schedule)
	if err := sw.Start(); err != nil {
		log.Fatal("Failed to start suspension sweeper", zap.Error(err))
	}
	log.Info("Suspension sweeper started", zap.String("schedule", cfg.Sweeper.Schedule))

	// Initialize Echo framework
	e := echo.New()
	e.Validator = handler.NewValidator()

	// Apply global middleware - order matters
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())
	e.Use(middleware.RequestIDMiddleware)
	e.Use(logger.Middleware(log))
	e.Use(prometheus.MetricsMiddleware())

	// Public routes - no authentication required
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", handler.MetricsHandler)

	// Authentication routes
	auth := e.Group("/auth")
	auth.POST("/login", handler.Login)
	auth.POST("/register", handler.Register)

	// Dashboard API - all routes require a valid admin token
	api := e.Group("/api")
	api.Use(middleware.AuthMiddleware)

	// Listings
	api.GET("/listings", handler.ListListings)
	api.GET("/listings/:id", handler.GetListing)
	api.DELETE("/listings/:id", handler.DeleteListing)

	// Accounts
	api.GET("/accounts/landlords", handler.ListLandlords)
	api.GET("/accounts/students", handler.ListStudents)
	api.PATCH("/accounts/:id", handler.UpdateAccount)
	api.DELETE("/accounts/:id", handler.DeleteAccount)
	api.POST("/accounts/:id/verify", handler.VerifyLandlord)
	api.POST("/accounts/:id/reject", handler.RejectProof)
	api.POST("/accounts/:id/suspend", handler.SuspendAccount)
	api.POST("/accounts/:id/unsuspend", handler.UnsuspendAccount)
	api.POST("/accounts/:id/message", handler.MessageUser)

	// Requests and support
	api.GET("/requests", handler.ListRequests)
	api.GET("/feedbacks", handler.ListFeedbacks)

	// Team
	api.GET("/admins", handler.ListAdmins)

	// Dashboard statistics
	api.GET("/stats/overview", handler.StatsOverview)
	api.GET("/stats/timeseries", handler.StatsTimeSeries)

	// Start server
	port := cfg.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		// Fatal skips deferred calls, so stop the sweeper here
		sw.Stop()
		log.Fatal("Failed to start server", zap.Error(err))
	}
}
