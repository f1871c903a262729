package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gti/resource-planner/internal/models"
)

var ErrAllocationNotFound = errors.New("allocation not found")

const allocationColumns = `id, resource_id, project_id, start_date, end_date, status, allocated_hours_total, weekly_hours`

type AllocationRepository struct {
	pool *pgxpool.Pool
}

func NewAllocationRepository(pool *pgxpool.Pool) *AllocationRepository {
	return &AllocationRepository{pool: pool}
}

func scanAllocation(row pgx.Row) (models.Allocation, error) {
	var (
		a      models.Allocation
		weekly []byte
	)
	if err := row.Scan(&a.ID, &a.ResourceID, &a.ProjectID, &a.StartDate, &a.EndDate, &a.Status, &a.AllocatedHoursTotal, &weekly); err != nil {
		return a, err
	}

	if len(weekly) > 0 {
		if err := json.Unmarshal(weekly, &a.WeeklyHours); err != nil {
			return a, fmt.Errorf("failed to decode weekly hours of allocation %d: %w", a.ID, err)
		}
	}

	// DATE columns come back at midnight UTC; keep them that way
	a.StartDate = utcDay(a.StartDate)
	a.EndDate = utcDay(a.EndDate)
	return a, nil
}

func utcDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func encodeWeeklyHours(weekly map[string]float64) ([]byte, error) {
	if len(weekly) == 0 {
		return nil, nil
	}
	raw, err := json.Marshal(weekly)
	if err != nil {
		return nil, fmt.Errorf("failed to encode weekly hours: %w", err)
	}
	return raw, nil
}

// nullableDate maps a zero time to SQL NULL
func nullableDate(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	d := utcDay(t)
	return &d
}

// GetByID retrieves an allocation by its ID
func (r *AllocationRepository) GetByID(ctx context.Context, id int) (*models.Allocation, error) {
	a, err := scanAllocation(r.pool.QueryRow(ctx,
		`SELECT `+allocationColumns+` FROM allocations WHERE id = $1`, id))

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrAllocationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get allocation: %w", err)
	}

	return &a, nil
}

// ListActive returns active allocations whose span overlaps [from, to]. A
// zero bound leaves that side open.
func (r *AllocationRepository) ListActive(ctx context.Context, from, to time.Time) ([]models.Allocation, error) {
	return r.list(ctx,
		`SELECT `+allocationColumns+`
		 FROM allocations
		 WHERE status = $1
		   AND ($2::date IS NULL OR end_date >= $2::date)
		   AND ($3::date IS NULL OR start_date <= $3::date)
		 ORDER BY resource_id, start_date, id`,
		models.AllocationStatusActive, nullableDate(from), nullableDate(to))
}

// ListByResource returns every allocation of a resource, whatever its status
func (r *AllocationRepository) ListByResource(ctx context.Context, resourceID int) ([]models.Allocation, error) {
	return r.list(ctx,
		`SELECT `+allocationColumns+` FROM allocations WHERE resource_id = $1 ORDER BY start_date, id`,
		resourceID)
}

func (r *AllocationRepository) list(ctx context.Context, query string, args ...interface{}) ([]models.Allocation, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list allocations: %w", err)
	}
	defer rows.Close()

	allocations := []models.Allocation{}
	for rows.Next() {
		a, err := scanAllocation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan allocation: %w", err)
		}
		allocations = append(allocations, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list allocations: %w", err)
	}

	return allocations, nil
}

// Create inserts an allocation and fills in its ID
func (r *AllocationRepository) Create(ctx context.Context, a *models.Allocation) error {
	weekly, err := encodeWeeklyHours(a.WeeklyHours)
	if err != nil {
		return err
	}

	err = r.pool.QueryRow(ctx,
		`INSERT INTO allocations (resource_id, project_id, start_date, end_date, status, allocated_hours_total, weekly_hours)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		a.ResourceID, a.ProjectID, utcDay(a.StartDate), utcDay(a.EndDate), a.Status, a.AllocatedHoursTotal, weekly).Scan(&a.ID)

	if err != nil {
		return fmt.Errorf("failed to create allocation: %w", err)
	}

	return nil
}

// Update replaces an allocation
func (r *AllocationRepository) Update(ctx context.Context, a *models.Allocation) error {
	weekly, err := encodeWeeklyHours(a.WeeklyHours)
	if err != nil {
		return err
	}

	result, err := r.pool.Exec(ctx,
		`UPDATE allocations
		 SET resource_id = $2, project_id = $3, start_date = $4, end_date = $5,
		     status = $6, allocated_hours_total = $7, weekly_hours = $8
		 WHERE id = $1`,
		a.ID, a.ResourceID, a.ProjectID, utcDay(a.StartDate), utcDay(a.EndDate), a.Status, a.AllocatedHoursTotal, weekly)

	if err != nil {
		return fmt.Errorf("failed to update allocation: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrAllocationNotFound
	}

	return nil
}

// Delete deletes an allocation by ID
func (r *AllocationRepository) Delete(ctx context.Context, id int) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM allocations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete allocation: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrAllocationNotFound
	}

	return nil
}
