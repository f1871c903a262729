// @title Resource Planner API
// @version 1.0
// @description Capacity utilization alerts, heatmap and resource allocation management
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@example.com

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name x-api-key
// @description API Key for protected endpoints

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/gti/resource-planner/docs"
	"github.com/gti/resource-planner/internal/cache"
	"github.com/gti/resource-planner/internal/config"
	"github.com/gti/resource-planner/internal/database"
	"github.com/gti/resource-planner/internal/handler"
	"github.com/gti/resource-planner/internal/logger"
	"github.com/gti/resource-planner/internal/metrics"
	"github.com/gti/resource-planner/internal/middleware"
	"github.com/gti/resource-planner/internal/repository"
	"github.com/gti/resource-planner/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.New(logger.Config{}).Fatalf("Failed to load config: %v", err)
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	// Connect to database
	ctx := context.Background()
	db, err := database.New(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Run migrations
	if err := db.RunMigrations(ctx); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed data
	if err := db.SeedData(ctx, time.Now()); err != nil {
		log.Fatalf("Failed to seed data: %v", err)
	}

	payloadCache, closeCache := newPayloadCache(cfg, log)
	defer closeCache()

	// Initialize repositories
	resourceRepo := repository.NewResourceRepository(db.Pool)
	projectRepo := repository.NewProjectRepository(db.Pool)
	allocationRepo := repository.NewAllocationRepository(db.Pool)
	settingsRepo := repository.NewSettingsRepository(db.Pool)

	// Initialize services
	settingsService := service.NewSettingsService(settingsRepo, payloadCache, cfg.DefaultAlertSettings)
	webhookService := service.NewWebhookService(cfg.WebhookDestinationURL, resourceRepo, allocationRepo, settingsService, log, time.Now)
	alertService := service.NewAlertService(resourceRepo, allocationRepo, settingsService, payloadCache, log, time.Now)
	breakdownService := service.NewBreakdownService(resourceRepo, projectRepo, allocationRepo, settingsService, log, time.Now)
	heatmapService := service.NewHeatmapService(resourceRepo, allocationRepo, settingsService, log, time.Now)
	resourceService := service.NewResourceService(resourceRepo, projectRepo, payloadCache)
	allocationService := service.NewAllocationService(allocationRepo, resourceRepo, projectRepo, payloadCache, webhookService)

	sweep := service.NewSweepScheduler(alertService, webhookService, log, time.Now)
	if cfg.SweepSchedule != "" {
		if err := sweep.Start(cfg.SweepSchedule); err != nil {
			log.Fatalf("Failed to start overload sweep: %v", err)
		}
	}

	// Initialize handlers
	dashboardHandler := handler.NewDashboardHandler(alertService, breakdownService)
	heatmapHandler := handler.NewHeatmapHandler(heatmapService)
	apiHandler := handler.NewAPIHandler(resourceService, allocationService, settingsService)

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(echoMiddleware.RequestIDWithConfig(echoMiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLogger(log))
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Use(middleware.Metrics())

	handler.RegisterRoutes(e, cfg.APIKey, dashboardHandler, heatmapHandler, apiHandler)

	e.GET("/healthz", func(c echo.Context) error {
		if err := db.Pool.Ping(c.Request().Context()); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{
				"status": "unavailable",
				"error":  err.Error(),
			})
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	// Swagger API documentation
	e.GET("/api/doc/*", echoSwagger.WrapHandler)

	// Start server in goroutine
	go func() {
		addr := ":" + cfg.Port
		log.Infof("Starting server on %s", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Server shutdown error: %v", err)
	}

	sweep.Stop()
	webhookService.Wait()

	log.Info("Server stopped")
}

// newPayloadCache returns a Redis backed cache when REDIS_URL is set and an
// in-process one otherwise.
func newPayloadCache(cfg *config.Config, log *logger.Logger) (cache.PayloadCache, func()) {
	if cfg.RedisURL == "" {
		log.Info("Alert cache: in-memory")
		return cache.NewMemoryCache(cfg.AlertCacheTTL, time.Now), func() {}
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Fatalf("Invalid REDIS_URL: %v", err)
	}

	client := redis.NewClient(opts)
	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Fatalf("Failed to connect to redis: %v", err)
	}

	log.Info("Alert cache: redis")
	return cache.NewRedisCache(client, "resource-planner:alerts", cfg.AlertCacheTTL), func() {
		_ = client.Close()
	}
}
