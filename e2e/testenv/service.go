package testenv

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"

	"github.com/gti/resource-planner/internal/cache"
	"github.com/gti/resource-planner/internal/handler"
	"github.com/gti/resource-planner/internal/logger"
	"github.com/gti/resource-planner/internal/models"
	"github.com/gti/resource-planner/internal/repository"
	"github.com/gti/resource-planner/internal/service"
)

// Service is the application running in-process on a random port.
type Service struct {
	URL     string
	Webhook *service.WebhookService
	Cache   *cache.MemoryCache

	server *echo.Echo
}

// ServiceConfig holds configuration for starting the service.
type ServiceConfig struct {
	APIKey     string
	WebhookURL string
	// Now pins the clock; nil means time.Now.
	Now service.Clock
}

// DefaultServiceConfig returns default service configuration.
func DefaultServiceConfig() ServiceConfig {
	return ServiceConfig{APIKey: "test-api-key"}
}

// StartService wires repositories over pool into the HTTP API and serves it
// until the returned cleanup is called.
func StartService(ctx context.Context, pool *pgxpool.Pool, cfg ServiceConfig) (*Service, func(), error) {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	log := logger.Nop()

	resources := repository.NewResourceRepository(pool)
	projects := repository.NewProjectRepository(pool)
	allocations := repository.NewAllocationRepository(pool)
	payloadCache := cache.NewMemoryCache(time.Minute, now)

	settings := service.NewSettingsService(repository.NewSettingsRepository(pool), payloadCache, models.DefaultAlertSettings())
	webhook := service.NewWebhookService(cfg.WebhookURL, resources, allocations, settings, log, now)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	handler.RegisterRoutes(e, cfg.APIKey,
		handler.NewDashboardHandler(
			service.NewAlertService(resources, allocations, settings, payloadCache, log, now),
			service.NewBreakdownService(resources, projects, allocations, settings, log, now),
		),
		handler.NewHeatmapHandler(service.NewHeatmapService(resources, allocations, settings, log, now)),
		handler.NewAPIHandler(
			service.NewResourceService(resources, projects, payloadCache),
			service.NewAllocationService(allocations, resources, projects, payloadCache, webhook),
			settings,
		),
	)

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to find available port: %w", err)
	}
	e.Listener = listener

	go func() {
		if err := e.Start(""); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Error("test server stopped")
		}
	}()

	svc := &Service{
		URL:     "http://" + listener.Addr().String(),
		Webhook: webhook,
		Cache:   payloadCache,
		server:  e,
	}

	if err := waitForReady(ctx, svc.URL+"/api/settings/alerts"); err != nil {
		_ = e.Close()
		return nil, nil, err
	}

	cleanup := func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = e.Shutdown(shutdownCtx)
		webhook.Wait()
	}

	return svc, cleanup, nil
}

func waitForReady(ctx context.Context, url string) error {
	client := &http.Client{Timeout: time.Second}
	deadline := time.Now().Add(10 * time.Second)

	for time.Now().Before(deadline) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}
		resp, err := client.Do(req)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}
		time.Sleep(100 * time.Millisecond)
	}

	return fmt.Errorf("service at %s did not become ready", url)
}
