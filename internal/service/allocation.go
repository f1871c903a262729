package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/gti/resource-planner/internal/cache"
	"github.com/gti/resource-planner/internal/models"
	"github.com/gti/resource-planner/internal/utilization"
)

// ErrInvalidAllocation wraps every allocation the store must not accept.
var ErrInvalidAllocation = errors.New("invalid allocation")

type AllocationService struct {
	allocations AllocationStore
	resources   ResourceStore
	projects    ProjectStore
	cache       cache.PayloadCache
	webhook     *WebhookService
}

func NewAllocationService(
	allocations AllocationStore,
	resources ResourceStore,
	projects ProjectStore,
	payloadCache cache.PayloadCache,
	webhook *WebhookService,
) *AllocationService {
	return &AllocationService{
		allocations: allocations,
		resources:   resources,
		projects:    projects,
		cache:       payloadCache,
		webhook:     webhook,
	}
}

func (s *AllocationService) ListByResource(ctx context.Context, resourceID int) ([]models.Allocation, error) {
	if _, err := s.resources.GetByID(ctx, resourceID); err != nil {
		return nil, err
	}
	return s.allocations.ListByResource(ctx, resourceID)
}

// Create stores a new allocation and checks its resource for overload
func (s *AllocationService) Create(ctx context.Context, req *models.UpsertAllocationRequest) (*models.Allocation, error) {
	a, err := s.build(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := s.allocations.Create(ctx, a); err != nil {
		return nil, err
	}

	return a, s.afterWrite(ctx, a)
}

// Update replaces allocation id with req
func (s *AllocationService) Update(ctx context.Context, id int, req *models.UpsertAllocationRequest) (*models.Allocation, error) {
	if _, err := s.allocations.GetByID(ctx, id); err != nil {
		return nil, err
	}

	a, err := s.build(ctx, req)
	if err != nil {
		return nil, err
	}
	a.ID = id

	if err := s.allocations.Update(ctx, a); err != nil {
		return nil, err
	}

	return a, s.afterWrite(ctx, a)
}

func (s *AllocationService) Delete(ctx context.Context, id int) error {
	if err := s.allocations.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		return fmt.Errorf("failed to invalidate alert cache: %w", err)
	}
	return nil
}

// build validates req and resolves it into an allocation
func (s *AllocationService) build(ctx context.Context, req *models.UpsertAllocationRequest) (*models.Allocation, error) {
	start, ok := utilization.ParseDate(req.StartDate)
	if !ok {
		return nil, fmt.Errorf("%w: start_date must be YYYY-MM-DD", ErrInvalidAllocation)
	}
	end, ok := utilization.ParseDate(req.EndDate)
	if !ok {
		return nil, fmt.Errorf("%w: end_date must be YYYY-MM-DD", ErrInvalidAllocation)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end_date is before start_date", ErrInvalidAllocation)
	}

	for key := range req.WeeklyHours {
		if _, err := utilization.ParseWeekKey(key); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAllocation, err)
		}
	}

	if _, err := s.resources.GetByID(ctx, req.ResourceID); err != nil {
		return nil, err
	}
	if _, err := s.projects.GetByID(ctx, req.ProjectID); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = models.AllocationStatusActive
	}

	return &models.Allocation{
		ResourceID:          req.ResourceID,
		ProjectID:           req.ProjectID,
		StartDate:           start,
		EndDate:             end,
		Status:              status,
		AllocatedHoursTotal: req.AllocatedHoursTotal,
		WeeklyHours:         req.WeeklyHours,
	}, nil
}

func (s *AllocationService) afterWrite(ctx context.Context, a *models.Allocation) error {
	if err := s.cache.Invalidate(ctx); err != nil {
		return fmt.Errorf("failed to invalidate alert cache: %w", err)
	}

	// Trigger overload alert for the affected resource (in background)
	if a.Status == models.AllocationStatusActive {
		s.webhook.CheckAndAlert(ctx, a.ResourceID, a.StartDate, a.EndDate)
	}
	return nil
}
