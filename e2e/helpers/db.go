// Package helpers provides narrowly-scoped utilities for E2E testing.
package helpers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DBHelper seeds and inspects the test database directly, bypassing the API.
type DBHelper struct {
	pool *pgxpool.Pool
}

func NewDBHelper(pool *pgxpool.Pool) *DBHelper {
	return &DBHelper{pool: pool}
}

// Exec runs a statement that returns no rows.
func (h *DBHelper) Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error) {
	return h.pool.Exec(ctx, sql, args...)
}

// Count returns the number of rows in table.
func (h *DBHelper) Count(ctx context.Context, table string) (int, error) {
	var n int
	err := h.pool.QueryRow(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %s", table)).Scan(&n)
	return n, err
}

// InsertResource adds an active resource and returns its id.
func (h *DBHelper) InsertResource(ctx context.Context, name, department string, capacity float64) (int, error) {
	var id int
	err := h.pool.QueryRow(ctx,
		"INSERT INTO resources (name, department, weekly_capacity_hours) VALUES ($1, $2, $3) RETURNING id",
		name, department, capacity).Scan(&id)
	return id, err
}

// InsertProject adds a project and returns its id.
func (h *DBHelper) InsertProject(ctx context.Context, name string) (int, error) {
	var id int
	err := h.pool.QueryRow(ctx, "INSERT INTO projects (name) VALUES ($1) RETURNING id", name).Scan(&id)
	return id, err
}

// InsertAllocation adds an active allocation. weekly may be nil.
func (h *DBHelper) InsertAllocation(ctx context.Context, resourceID, projectID int, start, end string, total float64, weekly map[string]float64) (int, error) {
	var weeklyJSON []byte
	if weekly != nil {
		var err error
		if weeklyJSON, err = json.Marshal(weekly); err != nil {
			return 0, err
		}
	}

	var id int
	err := h.pool.QueryRow(ctx,
		`INSERT INTO allocations (resource_id, project_id, start_date, end_date, allocated_hours_total, weekly_hours)
		 VALUES ($1, $2, $3::date, $4::date, $5, $6) RETURNING id`,
		resourceID, projectID, start, end, total, weeklyJSON).Scan(&id)
	return id, err
}
