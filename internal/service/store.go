package service

import (
	"context"
	"time"

	"github.com/gti/resource-planner/internal/models"
)

// ResourceStore is the persistence the services need for resources.
// *repository.ResourceRepository implements it.
type ResourceStore interface {
	GetByID(ctx context.Context, id int) (*models.Resource, error)
	List(ctx context.Context) ([]models.Resource, error)
	ListActive(ctx context.Context) ([]models.Resource, error)
	Create(ctx context.Context, res *models.Resource) error
	Update(ctx context.Context, res *models.Resource) error
	Delete(ctx context.Context, id int) error
}

type ProjectStore interface {
	GetByID(ctx context.Context, id int) (*models.Project, error)
	List(ctx context.Context) ([]models.Project, error)
	Names(ctx context.Context) (map[int]string, error)
	Create(ctx context.Context, p *models.Project) error
}

type AllocationStore interface {
	GetByID(ctx context.Context, id int) (*models.Allocation, error)
	// ListActive returns active allocations overlapping [from, to]; a zero
	// bound is open.
	ListActive(ctx context.Context, from, to time.Time) ([]models.Allocation, error)
	ListByResource(ctx context.Context, resourceID int) ([]models.Allocation, error)
	Create(ctx context.Context, a *models.Allocation) error
	Update(ctx context.Context, a *models.Allocation) error
	Delete(ctx context.Context, id int) error
}

type SettingsStore interface {
	Get(ctx context.Context) (models.AlertSettings, bool, error)
	Save(ctx context.Context, s models.AlertSettings) error
}

// Clock returns the current time. Services take one so tests can pin "now".
type Clock func() time.Time
