package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gti/resource-planner/internal/cache"
	"github.com/gti/resource-planner/internal/logger"
	"github.com/gti/resource-planner/internal/metrics"
	"github.com/gti/resource-planner/internal/models"
	"github.com/gti/resource-planner/internal/utilization"
)

// PeriodQuery selects the resources and date range of a dashboard request.
// Dates are YYYY-MM-DD; empty or malformed values leave the period open.
type PeriodQuery struct {
	Department string
	StartDate  string
	EndDate    string
}

type AlertService struct {
	resources   ResourceStore
	allocations AllocationStore
	settings    *SettingsService
	cache       cache.PayloadCache
	log         *logger.Logger
	now         Clock
}

func NewAlertService(
	resources ResourceStore,
	allocations AllocationStore,
	settings *SettingsService,
	payloadCache cache.PayloadCache,
	log *logger.Logger,
	now Clock,
) *AlertService {
	if now == nil {
		now = time.Now
	}
	return &AlertService{
		resources:   resources,
		allocations: allocations,
		settings:    settings,
		cache:       payloadCache,
		log:         log,
		now:         now,
	}
}

// GetAlerts returns the categorized alert payload for q, serving it from the
// cache when the same request was computed earlier in the current week.
func (s *AlertService) GetAlerts(ctx context.Context, q PeriodQuery) (*utilization.AlertPayload, error) {
	now := s.now().UTC()
	key := cache.Key(q.Department, q.StartDate, q.EndDate, now)

	cached, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.log.WithError(err).Warn("alert cache read failed, recomputing")
	}
	if ok {
		metrics.RecordAlertPayload(metrics.SourceCache)
		return &cached, nil
	}

	gen, genErr := s.cache.Generation(ctx)

	started := time.Now()
	in, err := s.snapshot(ctx, q, now)
	if err != nil {
		return nil, err
	}

	payload := utilization.ComputeAlerts(in)

	metrics.ObserveAlertComputation(time.Since(started).Seconds())
	metrics.RecordAlertPayload(metrics.SourceComputed)
	for _, c := range utilization.CategoryOrder {
		metrics.SetAlertResources(string(c), payload.Count(c))
	}

	if genErr != nil {
		s.log.WithError(genErr).Warn("alert cache generation unavailable, not caching")
	} else if err := s.cache.Set(ctx, key, gen, payload); err != nil {
		s.log.WithError(err).Warn("alert cache write failed")
	}

	return &payload, nil
}

// snapshot loads everything a computation over q needs. Allocations are
// fetched for the normalized window only.
func (s *AlertService) snapshot(ctx context.Context, q PeriodQuery, now time.Time) (utilization.Input, error) {
	warnMalformedDates(s.log, q.StartDate, q.EndDate)

	settings, err := s.settings.Get(ctx)
	if err != nil {
		return utilization.Input{}, err
	}

	resources, err := s.resources.ListActive(ctx)
	if err != nil {
		return utilization.Input{}, fmt.Errorf("failed to load resources: %w", err)
	}

	scope := utilization.ResolveScope(q.StartDate, q.EndDate, now)
	allocations, err := s.allocations.ListActive(ctx, scope.Window.Start, scope.Window.End)
	if err != nil {
		return utilization.Input{}, fmt.Errorf("failed to load allocations: %w", err)
	}

	return utilization.Input{
		Resources:   resources,
		Allocations: allocations,
		Department:  q.Department,
		StartDate:   q.StartDate,
		EndDate:     q.EndDate,
		Settings:    &settings,
		Now:         now,
	}, nil
}

func warnMalformedDates(log *logger.Logger, dates ...string) {
	for _, d := range dates {
		if d == "" {
			continue
		}
		if _, ok := utilization.ParseDate(d); !ok {
			log.With("date", d).Warn("ignoring malformed date, falling back to an open period")
		}
	}
}

// effectiveSettings is shared by the services that only read thresholds.
func effectiveSettings(ctx context.Context, s *SettingsService) (*models.AlertSettings, error) {
	settings, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	return &settings, nil
}
