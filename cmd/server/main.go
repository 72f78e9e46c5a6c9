package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"recall/config"
	"recall/db"
	"recall/handlers"
	"recall/logging"
	"recall/middleware"
	"recall/models"
	"recall/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger, err := logging.New(cfg.Environment, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	services.DisplayLocation = cfg.Location()
	services.CalendarBaseURL = cfg.CalendarBaseURL

	// The database is only opened when calls are read from SQL
	if cfg.CallSource == config.SourceSQL {
		if err := db.Initialize(db.Options{
			Path:        cfg.DBPath,
			TursoURL:    cfg.TursoDatabaseURL,
			TursoToken:  cfg.TursoAuthToken,
			Environment: cfg.Environment,
		}); err != nil {
			logger.Fatal("Failed to initialize database", zap.Error(err))
		}
		defer db.Close()

		if err := db.DB.Table(cfg.CallTable).AutoMigrate(&models.CallHistoryRow{}); err != nil {
			logger.Fatal("Failed to run migrations", zap.Error(err))
		}

		if cfg.SeedDemoData {
			if _, err := services.SeedDemoCalls(db.DB, cfg.CallTable); err != nil {
				logger.Warn("Failed to seed demo data", zap.Error(err))
			}
		}
	}

	services.Calls, err = services.NewCallSource(cfg, db.DB)
	if err != nil {
		logger.Fatal("Failed to create call source", zap.Error(err))
	}
	logger.Info("Call source ready", zap.String("source", cfg.CallSource), zap.String("table", cfg.CallTable))

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(logging.RequestLogger(logger))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
	}))
	e.Use(echomiddleware.SecureWithConfig(echomiddleware.SecureConfig{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "DENY",
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}))
	e.Use(middleware.CSPNonce())
	e.Use(middleware.CSRF(cfg.Environment == "production"))

	// Static files
	middleware.InitAssetVersions("static")
	e.Static("/static", "static")

	// Public pages
	e.GET("/", handlers.LandingHandler)
	e.GET("/auth", handlers.AuthHandler)
	e.GET("/healthz", handlers.HealthHandler)

	// Dashboard
	dashboard := e.Group("/dashboard")
	{
		dashboard.GET("", handlers.DashboardHandler)
		dashboard.GET("/calls", handlers.DashboardCallsHTMX)
		dashboard.GET("/calls/:id/calendar", handlers.CallbackCalendarRedirectHandler, middleware.CalendarRateLimiter.Middleware())
		dashboard.GET("/calls/:id/calendar.ics", handlers.CallbackICSHandler, middleware.CalendarRateLimiter.Middleware())
		dashboard.GET("/export.xlsx", handlers.ExportCallsHandler, middleware.ExportRateLimiter.Middleware())
	}

	// JSON API
	api := e.Group("/api")
	api.Use(middleware.APIRateLimiter.Middleware())
	{
		api.GET("/calls", handlers.CallsAPIHandler)
	}

	// Start server
	go func() {
		logger.Info("Server starting", zap.String("port", cfg.ServerPort), zap.String("environment", cfg.Environment))
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown failed", zap.Error(err))
	}
}
