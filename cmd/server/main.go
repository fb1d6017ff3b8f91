package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"walletwise/internal/config"
	"walletwise/internal/database"
	"walletwise/internal/handlers"
	"walletwise/internal/middleware"
	"walletwise/internal/repositories"
	"walletwise/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	db, err := database.Initialize(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Repositories
	accountRepo := repositories.NewAccountRepository(db)
	transactionRepo := repositories.NewTransactionRepository(db)
	auditLogRepo := repositories.NewAuditLogRepository(db)
	userRepo := repositories.NewUserRepository(db)
	familyRepo := repositories.NewFamilyRepository(db)

	// Services
	normalizer := services.NewBalanceNormalizer()
	breakerConfig := services.DefaultCircuitBreakerConfig()
	breakerConfig.MaxFailures = cfg.Provider.FailureThreshold
	breakerConfig.ResetTimeout = cfg.Provider.CooldownPeriod
	breaker := services.NewCircuitBreaker(breakerConfig)
	connections := services.NewConnectionService(breaker, logger)
	audit := services.NewAuditRecorder(auditLogRepo, logger)
	metrics := services.NewPrometheusMetrics()
	accountService := services.NewAccountService(accountRepo, transactionRepo, normalizer, connections, audit, metrics, cfg.Provider.SyncStaleAfter, logger)
	tokenService := services.NewTokenService(&cfg.JWT)
	sampleDataService := services.NewSampleDataService(accountRepo, transactionRepo, userRepo, familyRepo, logger)

	// Handlers
	accountHandler := handlers.NewAccountHandler(accountService)
	summaryHandler := handlers.NewAccountSummaryHandler(accountService)
	healthHandler := handlers.NewHealthCheckHandler(db)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RateLimiterWithConfig(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")
	api.Use(middleware.RequireAuth(tokenService))

	api.POST("/accounts", accountHandler.CreateAccount)
	api.GET("/accounts", accountHandler.ListAccounts)
	api.GET("/accounts/summary", summaryHandler.GetSummary)
	api.GET("/accounts/financial-summary", summaryHandler.GetFinancialSummary)
	api.GET("/accounts/:accountId", accountHandler.GetAccount)
	api.PATCH("/accounts/:accountId", accountHandler.UpdateAccount)
	api.DELETE("/accounts/:accountId", accountHandler.DeleteAccount)
	api.GET("/accounts/:accountId/balance", accountHandler.GetAccountBalance)
	api.POST("/accounts/:accountId/hide", accountHandler.HideAccount)
	api.POST("/accounts/:accountId/restore", accountHandler.RestoreAccount)
	api.POST("/accounts/:accountId/sync", accountHandler.SyncAccount)
	api.GET("/accounts/:accountId/deletion-eligibility", accountHandler.GetDeletionEligibility)
	api.GET("/accounts/:accountId/restore-eligibility", accountHandler.GetRestoreEligibility)

	if !cfg.IsProduction() {
		devHandler := handlers.NewDevHandler(sampleDataService)
		api.POST("/dev/seed", devHandler.SeedDemoData)
	}

	// Start server
	go func() {
		addr := cfg.Server.Host + ":" + cfg.Server.Port
		logger.Info("Starting server", "addr", addr, "environment", cfg.Server.Environment)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Error("Server stopped", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Forced shutdown", "error", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
