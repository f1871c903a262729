package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gti/resource-planner/internal/logger"
	"github.com/gti/resource-planner/internal/utilization"
)

type HeatmapService struct {
	resources   ResourceStore
	allocations AllocationStore
	settings    *SettingsService
	log         *logger.Logger
	now         Clock
}

func NewHeatmapService(
	resources ResourceStore,
	allocations AllocationStore,
	settings *SettingsService,
	log *logger.Logger,
	now Clock,
) *HeatmapService {
	if now == nil {
		now = time.Now
	}
	return &HeatmapService{
		resources:   resources,
		allocations: allocations,
		settings:    settings,
		log:         log,
		now:         now,
	}
}

// DefaultHeatmapWeeks is the span shown when a heatmap request has no period.
const DefaultHeatmapWeeks = 12

// GetHeatmap returns weekly utilization cells for every resource in q.
// Without a usable period it covers DefaultHeatmapWeeks from the current week.
func (s *HeatmapService) GetHeatmap(ctx context.Context, q PeriodQuery) (*utilization.Heatmap, error) {
	now := s.now().UTC()
	warnMalformedDates(s.log, q.StartDate, q.EndDate)

	if !utilization.ResolveScope(q.StartDate, q.EndDate, now).Window.Bounded() {
		monday := utilization.MondayOf(now)
		q.StartDate = monday.Format("2006-01-02")
		q.EndDate = monday.AddDate(0, 0, 7*DefaultHeatmapWeeks-1).Format("2006-01-02")
	}

	settings, err := effectiveSettings(ctx, s.settings)
	if err != nil {
		return nil, err
	}

	resources, err := s.resources.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load resources: %w", err)
	}

	scope := utilization.ResolveScope(q.StartDate, q.EndDate, now)
	allocations, err := s.allocations.ListActive(ctx, scope.Window.Start, scope.Window.End)
	if err != nil {
		return nil, fmt.Errorf("failed to load allocations: %w", err)
	}

	hm := utilization.ComputeHeatmap(utilization.Input{
		Resources:   resources,
		Allocations: allocations,
		Department:  q.Department,
		StartDate:   q.StartDate,
		EndDate:     q.EndDate,
		Settings:    settings,
		Now:         now,
	})
	return &hm, nil
}
