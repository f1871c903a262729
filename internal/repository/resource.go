package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gti/resource-planner/internal/models"
)

var ErrResourceNotFound = errors.New("resource not found")

const resourceColumns = `id, name, department, role, weekly_capacity_hours, is_active, created_at`

type ResourceRepository struct {
	pool *pgxpool.Pool
}

func NewResourceRepository(pool *pgxpool.Pool) *ResourceRepository {
	return &ResourceRepository{pool: pool}
}

func scanResource(row pgx.Row) (models.Resource, error) {
	var r models.Resource
	err := row.Scan(&r.ID, &r.Name, &r.Department, &r.Role, &r.WeeklyCapacityHours, &r.IsActive, &r.CreatedAt)
	return r, err
}

// GetByID retrieves a resource by its ID
func (r *ResourceRepository) GetByID(ctx context.Context, id int) (*models.Resource, error) {
	res, err := scanResource(r.pool.QueryRow(ctx,
		`SELECT `+resourceColumns+` FROM resources WHERE id = $1`, id))

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrResourceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get resource: %w", err)
	}

	return &res, nil
}

// List returns every resource, active or not
func (r *ResourceRepository) List(ctx context.Context) ([]models.Resource, error) {
	return r.list(ctx, `SELECT `+resourceColumns+` FROM resources ORDER BY name, id`)
}

// ListActive returns the resources the capacity engine considers
func (r *ResourceRepository) ListActive(ctx context.Context) ([]models.Resource, error) {
	return r.list(ctx, `SELECT `+resourceColumns+` FROM resources WHERE is_active ORDER BY name, id`)
}

func (r *ResourceRepository) list(ctx context.Context, query string) ([]models.Resource, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list resources: %w", err)
	}
	defer rows.Close()

	resources := []models.Resource{}
	for rows.Next() {
		res, err := scanResource(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan resource: %w", err)
		}
		resources = append(resources, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list resources: %w", err)
	}

	return resources, nil
}

// Create inserts a resource and fills in its ID and creation time
func (r *ResourceRepository) Create(ctx context.Context, res *models.Resource) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO resources (name, department, role, weekly_capacity_hours, is_active)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		res.Name, res.Department, res.Role, res.WeeklyCapacityHours, res.IsActive).Scan(&res.ID, &res.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create resource: %w", err)
	}

	return nil
}

// Update overwrites every mutable field of a resource
func (r *ResourceRepository) Update(ctx context.Context, res *models.Resource) error {
	result, err := r.pool.Exec(ctx,
		`UPDATE resources
		 SET name = $2, department = $3, role = $4, weekly_capacity_hours = $5, is_active = $6
		 WHERE id = $1`,
		res.ID, res.Name, res.Department, res.Role, res.WeeklyCapacityHours, res.IsActive)

	if err != nil {
		return fmt.Errorf("failed to update resource: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrResourceNotFound
	}

	return nil
}

// Delete deletes a resource and, through the foreign key, its allocations
func (r *ResourceRepository) Delete(ctx context.Context, id int) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM resources WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete resource: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrResourceNotFound
	}

	return nil
}
