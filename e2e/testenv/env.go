// Package testenv provides ephemeral test infrastructure using testcontainers.
//
// A TestEnv bundles a PostgreSQL container (or an external database named by
// TEST_DATABASE_URL), the migrated schema and the HTTP API served in-process.
//
//	func TestMain(m *testing.M) {
//	    env, err := testenv.Setup(context.Background(), testenv.DefaultConfig())
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    code := m.Run()
//	    env.Teardown()
//	    os.Exit(code)
//	}
package testenv

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gti/resource-planner/e2e/helpers"
	"github.com/gti/resource-planner/internal/database"
)

// TestEnv holds all resources for E2E testing.
type TestEnv struct {
	Postgres *PostgresContainer
	Service  *Service
	DB       *helpers.DBHelper
	API      *helpers.APIClient
	Pool     *pgxpool.Pool
	Config   EnvConfig

	cleanupFuncs []func()
}

// EnvConfig holds configuration for the test environment.
type EnvConfig struct {
	Postgres PostgresConfig
	Service  ServiceConfig

	// SkipService skips starting the HTTP API (for repository-only tests).
	SkipService bool

	// ExternalDatabaseURL replaces the container when set.
	ExternalDatabaseURL string
}

// DefaultConfig returns the default test environment configuration.
func DefaultConfig() EnvConfig {
	return EnvConfig{
		Postgres:            DefaultPostgresConfig(),
		Service:             DefaultServiceConfig(),
		ExternalDatabaseURL: os.Getenv("TEST_DATABASE_URL"),
	}
}

// Setup starts the database, migrates it and serves the API against it.
// Always call Teardown when done.
func Setup(ctx context.Context, cfg EnvConfig) (*TestEnv, error) {
	env := &TestEnv{Config: cfg}

	db, err := env.connect(ctx)
	if err != nil {
		env.Teardown()
		return nil, err
	}
	env.Pool = db.Pool

	env.DB = helpers.NewDBHelper(env.Pool)

	if !cfg.SkipService {
		svc, cleanup, err := StartService(ctx, env.Pool, cfg.Service)
		if err != nil {
			env.Teardown()
			return nil, fmt.Errorf("failed to start service: %w", err)
		}
		env.addCleanup(cleanup)
		env.Service = svc

		env.API = helpers.NewAPIClient(svc.URL)
		env.API.SetHeader("x-api-key", cfg.Service.APIKey)
	}

	return env, nil
}

// Teardown releases all test resources in reverse order.
func (env *TestEnv) Teardown() {
	for i := len(env.cleanupFuncs) - 1; i >= 0; i-- {
		env.cleanupFuncs[i]()
	}
}

// CleanupTestData empties every table and drops cached alert payloads.
// Call it at the start of each test for isolation.
func (env *TestEnv) CleanupTestData(ctx context.Context) error {
	if err := TruncateAllTables(ctx, env.Pool); err != nil {
		return err
	}
	if env.Service != nil {
		return env.Service.Cache.Invalidate(ctx)
	}
	return nil
}

// connect migrates the external database when one is configured and starts
// a container otherwise.
func (env *TestEnv) connect(ctx context.Context) (*database.DB, error) {
	if url := env.Config.ExternalDatabaseURL; url != "" {
		db, err := database.New(ctx, url, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to external database: %w", err)
		}
		env.addCleanup(db.Close)
		if err := db.RunMigrations(ctx); err != nil {
			return nil, fmt.Errorf("failed to run migrations on external database: %w", err)
		}
		return db, nil
	}

	pg, cleanup, err := StartPostgres(ctx, env.Config.Postgres)
	if err != nil {
		return nil, fmt.Errorf("failed to start postgres: %w", err)
	}
	env.addCleanup(cleanup)
	env.Postgres = pg
	return pg.DB, nil
}

func (env *TestEnv) addCleanup(fn func()) {
	env.cleanupFuncs = append(env.cleanupFuncs, fn)
}
