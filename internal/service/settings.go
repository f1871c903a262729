package service

import (
	"context"
	"fmt"

	"github.com/gti/resource-planner/internal/cache"
	"github.com/gti/resource-planner/internal/models"
)

type SettingsService struct {
	store    SettingsStore
	cache    cache.PayloadCache
	defaults models.AlertSettings
}

// NewSettingsService serves stored thresholds, falling back to defaults
// until some have been saved.
func NewSettingsService(store SettingsStore, payloadCache cache.PayloadCache, defaults models.AlertSettings) *SettingsService {
	return &SettingsService{store: store, cache: payloadCache, defaults: defaults}
}

// Get returns the effective alert thresholds
func (s *SettingsService) Get(ctx context.Context) (models.AlertSettings, error) {
	settings, ok, err := s.store.Get(ctx)
	if err != nil {
		return models.AlertSettings{}, fmt.Errorf("failed to load alert settings: %w", err)
	}
	if !ok {
		return s.defaults, nil
	}
	return settings, nil
}

// Update stores new thresholds and drops every cached alert payload
func (s *SettingsService) Update(ctx context.Context, req *models.UpdateAlertSettingsRequest) (models.AlertSettings, error) {
	settings := models.AlertSettings{
		WarningThreshold:          req.WarningThreshold,
		ErrorThreshold:            req.ErrorThreshold,
		CriticalThreshold:         req.CriticalThreshold,
		UnderUtilizationThreshold: req.UnderUtilizationThreshold,
	}

	if err := s.store.Save(ctx, settings); err != nil {
		return models.AlertSettings{}, fmt.Errorf("failed to save alert settings: %w", err)
	}

	if err := s.cache.Invalidate(ctx); err != nil {
		return settings, fmt.Errorf("failed to invalidate alert cache: %w", err)
	}

	return settings, nil
}
