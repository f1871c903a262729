package database

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gti/resource-planner/internal/utilization"
)

// RunMigrations creates the database schema
func (db *DB) RunMigrations(ctx context.Context) error {
	db.log.Info("Running database migrations...")

	schema := `
	CREATE TABLE IF NOT EXISTS resources (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		department TEXT NOT NULL DEFAULT '',
		role TEXT NOT NULL DEFAULT '',
		weekly_capacity_hours DOUBLE PRECISION NOT NULL DEFAULT 40 CHECK (weekly_capacity_hours >= 0),
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS projects (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS allocations (
		id SERIAL PRIMARY KEY,
		resource_id INTEGER NOT NULL REFERENCES resources(id) ON DELETE CASCADE,
		project_id INTEGER NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		start_date DATE NOT NULL,
		end_date DATE NOT NULL,
		status TEXT NOT NULL DEFAULT 'active',
		allocated_hours_total DOUBLE PRECISION NOT NULL DEFAULT 0,
		weekly_hours JSONB,
		CHECK (start_date <= end_date)
	);

	-- Hours are never negative, in the total or in any week of the map
	DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'allocations_hours_non_negative') THEN
			ALTER TABLE allocations ADD CONSTRAINT allocations_hours_non_negative CHECK (
				allocated_hours_total >= 0
				AND (weekly_hours IS NULL OR NOT jsonb_path_exists(weekly_hours, '$.* ? (@ < 0)'))
			);
		END IF;
	END $$;

	CREATE INDEX IF NOT EXISTS idx_allocations_resource ON allocations(resource_id);
	CREATE INDEX IF NOT EXISTS idx_allocations_span ON allocations(start_date, end_date);
	CREATE INDEX IF NOT EXISTS idx_resources_department ON resources(lower(department));

	-- Single-row table; id is pinned to 1
	CREATE TABLE IF NOT EXISTS alert_settings (
		id INTEGER PRIMARY KEY DEFAULT 1 CHECK (id = 1),
		warning_threshold DOUBLE PRECISION NOT NULL,
		error_threshold DOUBLE PRECISION NOT NULL,
		critical_threshold DOUBLE PRECISION NOT NULL,
		under_utilization_threshold DOUBLE PRECISION NOT NULL,
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);
	`

	_, err := db.Pool.Exec(ctx, schema)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	db.log.Info("Database migrations completed successfully")
	return nil
}

// SeedData populates the database with sample data if empty. Allocations are
// laid out around the week of now so the dashboard has something to show.
func (db *DB) SeedData(ctx context.Context, now time.Time) error {
	var count int
	err := db.Pool.QueryRow(ctx, "SELECT COUNT(*) FROM resources").Scan(&count)
	if err != nil {
		return fmt.Errorf("failed to check resource count: %w", err)
	}

	if count > 0 {
		db.log.Info("Database already has data, skipping seed")
		return nil
	}

	db.log.Info("Seeding database with sample data...")

	resources := []struct {
		Name       string
		Department string
		Role       string
		Capacity   float64
	}{
		{"Alice Johnson", "Engineering", "Backend Developer", 40},
		{"Bob Smith", "Engineering", "Frontend Developer", 40},
		{"Charlie Brown", "Design", "Product Designer", 32},
		{"Dana White", "", "QA Engineer", 40},
		{"Evan Park", "Engineering", "Tech Lead", 40},
	}

	resourceIDs := make([]int, len(resources))
	for i, r := range resources {
		err := db.Pool.QueryRow(ctx,
			"INSERT INTO resources (name, department, role, weekly_capacity_hours) VALUES ($1, $2, $3, $4) RETURNING id",
			r.Name, r.Department, r.Role, r.Capacity).Scan(&resourceIDs[i])
		if err != nil {
			return fmt.Errorf("failed to create resource %s: %w", r.Name, err)
		}
	}

	projectNames := []string{"Customer Portal", "Billing Revamp", "Mobile App"}
	projectIDs := make([]int, len(projectNames))
	for i, name := range projectNames {
		err := db.Pool.QueryRow(ctx, "INSERT INTO projects (name) VALUES ($1) RETURNING id", name).Scan(&projectIDs[i])
		if err != nil {
			return fmt.Errorf("failed to create project %s: %w", name, err)
		}
	}

	monday := utilization.MondayOf(now)
	weekKey := func(offset int) string {
		return utilization.WeekKeyOf(monday.AddDate(0, 0, 7*offset)).String()
	}

	allocations := []struct {
		Resource int
		Project  int
		From, To int // week offsets from the current week
		Total    float64
		Weekly   map[string]float64
	}{
		// Alice: overloaded next week (44h of 32 effective)
		{0, 0, 0, 3, 0, map[string]float64{weekKey(0): 24, weekKey(1): 30, weekKey(2): 20, weekKey(3): 16}},
		{0, 1, 1, 1, 0, map[string]float64{weekKey(1): 14}},
		// Bob: even spread, near capacity
		{1, 0, 0, 3, 120, nil},
		// Charlie: light load
		{2, 2, 0, 1, 0, map[string]float64{weekKey(0): 6, weekKey(1): 4}},
		// Dana: over capacity every week
		{3, 1, 0, 2, 0, map[string]float64{weekKey(0): 34, weekKey(1): 34, weekKey(2): 34}},
	}

	for _, a := range allocations {
		start := monday.AddDate(0, 0, 7*a.From)
		end := monday.AddDate(0, 0, 7*a.To+6)

		var weekly []byte
		if a.Weekly != nil {
			weekly, err = json.Marshal(a.Weekly)
			if err != nil {
				return fmt.Errorf("failed to encode weekly hours: %w", err)
			}
		}

		_, err := db.Pool.Exec(ctx,
			`INSERT INTO allocations (resource_id, project_id, start_date, end_date, allocated_hours_total, weekly_hours)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			resourceIDs[a.Resource], projectIDs[a.Project], start, end, a.Total, weekly)
		if err != nil {
			return fmt.Errorf("failed to create allocation: %w", err)
		}
	}

	db.log.Info("Database seeding completed successfully")
	return nil
}
