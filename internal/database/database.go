package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gti/resource-planner/internal/logger"
)

// DB owns the connection pool shared by every repository.
type DB struct {
	Pool *pgxpool.Pool
	log  *logger.Logger
}

// New connects to databaseURL and verifies the connection.
func New(ctx context.Context, databaseURL string, log *logger.Logger) (*DB, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database url: %w", err)
	}
	cfg.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return Wrap(pool, log), nil
}

// Wrap builds a DB around an existing pool.
func Wrap(pool *pgxpool.Pool, log *logger.Logger) *DB {
	if log == nil {
		log = logger.Nop()
	}
	return &DB{Pool: pool, log: log}
}

func (db *DB) Close() {
	db.Pool.Close()
}
