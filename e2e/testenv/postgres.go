// Package testenv provides ephemeral test infrastructure using testcontainers.
package testenv

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/gti/resource-planner/internal/database"
)

// Every table owned by the migrations. TRUNCATE ... CASCADE makes the order
// irrelevant.
var tables = []string{"allocations", "alert_settings", "projects", "resources"}

// PostgresContainer is a migrated database in a throwaway container.
type PostgresContainer struct {
	Container testcontainers.Container
	DB        *database.DB
	URL       string
}

// PostgresConfig selects the image and credentials of the container.
type PostgresConfig struct {
	Image    string
	Database string
	Username string
	Password string
}

// DefaultPostgresConfig returns the image the migrations are written against.
func DefaultPostgresConfig() PostgresConfig {
	return PostgresConfig{
		Image:    "postgres:16-alpine",
		Database: "resource_planner_test",
		Username: "planner",
		Password: "planner",
	}
}

// StartPostgres runs a container, connects through database.New and applies
// the schema. The returned cleanup closes the pool and removes the container.
func StartPostgres(ctx context.Context, cfg PostgresConfig) (*PostgresContainer, func(), error) {
	container, err := postgres.Run(ctx,
		cfg.Image,
		postgres.WithDatabase(cfg.Database),
		postgres.WithUsername(cfg.Username),
		postgres.WithPassword(cfg.Password),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to start postgres container: %w", err)
	}
	terminate := func() { _ = testcontainers.TerminateContainer(container) }

	url, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		terminate()
		return nil, nil, fmt.Errorf("failed to get connection string: %w", err)
	}

	db, err := database.New(ctx, url, nil)
	if err != nil {
		terminate()
		return nil, nil, err
	}
	if err := db.RunMigrations(ctx); err != nil {
		db.Close()
		terminate()
		return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &PostgresContainer{Container: container, DB: db, URL: url}, func() {
		db.Close()
		terminate()
	}, nil
}

// TruncateAllTables empties every table and restarts the id sequences so
// each test sees ids from 1.
func TruncateAllTables(ctx context.Context, pool *pgxpool.Pool) error {
	stmt := "TRUNCATE TABLE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE"
	if _, err := pool.Exec(ctx, stmt); err != nil {
		return fmt.Errorf("failed to truncate tables: %w", err)
	}
	return nil
}
