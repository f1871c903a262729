package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/gti/resource-planner/internal/cache"
	"github.com/gti/resource-planner/internal/models"
)

// ResourceService manages resources and projects. Every write drops the
// cached alert payloads.
type ResourceService struct {
	resources ResourceStore
	projects  ProjectStore
	cache     cache.PayloadCache
}

func NewResourceService(resources ResourceStore, projects ProjectStore, payloadCache cache.PayloadCache) *ResourceService {
	return &ResourceService{resources: resources, projects: projects, cache: payloadCache}
}

func (s *ResourceService) ListResources(ctx context.Context) ([]models.Resource, error) {
	return s.resources.List(ctx)
}

func (s *ResourceService) GetResource(ctx context.Context, id int) (*models.Resource, error) {
	return s.resources.GetByID(ctx, id)
}

// CreateResource adds a resource; capacity defaults to a 40h week and new
// resources are active unless stated otherwise.
func (s *ResourceService) CreateResource(ctx context.Context, req *models.CreateResourceRequest) (*models.Resource, error) {
	res := &models.Resource{
		Name:                strings.TrimSpace(req.Name),
		Department:          strings.TrimSpace(req.Department),
		Role:                strings.TrimSpace(req.Role),
		WeeklyCapacityHours: models.DefaultWeeklyCapacityHours,
		IsActive:            true,
	}
	if req.WeeklyCapacityHours != nil {
		res.WeeklyCapacityHours = *req.WeeklyCapacityHours
	}
	if req.IsActive != nil {
		res.IsActive = *req.IsActive
	}

	if err := s.resources.Create(ctx, res); err != nil {
		return nil, err
	}
	return res, s.invalidate(ctx)
}

// UpdateResource applies the fields present in req
func (s *ResourceService) UpdateResource(ctx context.Context, id int, req *models.UpdateResourceRequest) (*models.Resource, error) {
	res, err := s.resources.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		res.Name = strings.TrimSpace(*req.Name)
	}
	if req.Department != nil {
		res.Department = strings.TrimSpace(*req.Department)
	}
	if req.Role != nil {
		res.Role = strings.TrimSpace(*req.Role)
	}
	if req.WeeklyCapacityHours != nil {
		res.WeeklyCapacityHours = *req.WeeklyCapacityHours
	}
	if req.IsActive != nil {
		res.IsActive = *req.IsActive
	}

	if err := s.resources.Update(ctx, res); err != nil {
		return nil, err
	}
	return res, s.invalidate(ctx)
}

func (s *ResourceService) DeleteResource(ctx context.Context, id int) error {
	if err := s.resources.Delete(ctx, id); err != nil {
		return err
	}
	return s.invalidate(ctx)
}

func (s *ResourceService) ListProjects(ctx context.Context) ([]models.Project, error) {
	return s.projects.List(ctx)
}

// CreateProject adds a project. Projects only label allocations, so the
// alert cache is left alone.
func (s *ResourceService) CreateProject(ctx context.Context, req *models.CreateProjectRequest) (*models.Project, error) {
	p := &models.Project{Name: strings.TrimSpace(req.Name)}
	if err := s.projects.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ResourceService) invalidate(ctx context.Context) error {
	if err := s.cache.Invalidate(ctx); err != nil {
		return fmt.Errorf("failed to invalidate alert cache: %w", err)
	}
	return nil
}
