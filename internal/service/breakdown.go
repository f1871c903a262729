package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gti/resource-planner/internal/logger"
	"github.com/gti/resource-planner/internal/utilization"
)

type BreakdownService struct {
	resources   ResourceStore
	projects    ProjectStore
	allocations AllocationStore
	settings    *SettingsService
	log         *logger.Logger
	now         Clock
}

func NewBreakdownService(
	resources ResourceStore,
	projects ProjectStore,
	allocations AllocationStore,
	settings *SettingsService,
	log *logger.Logger,
	now Clock,
) *BreakdownService {
	if now == nil {
		now = time.Now
	}
	return &BreakdownService{
		resources:   resources,
		projects:    projects,
		allocations: allocations,
		settings:    settings,
		log:         log,
		now:         now,
	}
}

// GetBreakdown explains one resource's utilization over [startDate, endDate].
// It returns repository.ErrResourceNotFound for unknown IDs.
func (s *BreakdownService) GetBreakdown(ctx context.Context, resourceID int, startDate, endDate string) (*utilization.Breakdown, error) {
	warnMalformedDates(s.log, startDate, endDate)

	res, err := s.resources.GetByID(ctx, resourceID)
	if err != nil {
		return nil, err
	}

	allocations, err := s.allocations.ListByResource(ctx, resourceID)
	if err != nil {
		return nil, fmt.Errorf("failed to load allocations: %w", err)
	}

	names, err := s.projects.Names(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load projects: %w", err)
	}

	settings, err := effectiveSettings(ctx, s.settings)
	if err != nil {
		return nil, err
	}

	b := utilization.ComputeBreakdown(utilization.BreakdownInput{
		Resource:     *res,
		Allocations:  allocations,
		ProjectNames: names,
		StartDate:    startDate,
		EndDate:      endDate,
		Settings:     settings,
		Now:          s.now().UTC(),
	})
	return &b, nil
}
