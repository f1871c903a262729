package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/gti/resource-planner/internal/cache"
	"github.com/gti/resource-planner/internal/config"
	"github.com/gti/resource-planner/internal/database"
	"github.com/gti/resource-planner/internal/logger"
	"github.com/gti/resource-planner/internal/models"
	"github.com/gti/resource-planner/internal/repository"
	"github.com/gti/resource-planner/internal/service"
	"github.com/gti/resource-planner/internal/snapshot"
	"github.com/gti/resource-planner/internal/utilization"
)

type rootOptions struct {
	snapshotPath string
	databaseURL  string
	at           string
	logLevel     string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "capacityctl",
		Short:         "Inspect capacity utilization alerts from the database or a JSON snapshot",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.snapshotPath, "snapshot", "", "Read data from a JSON snapshot file instead of the database")
	cmd.PersistentFlags().StringVar(&opts.databaseURL, "database-url", "", "Postgres URL (defaults to DATABASE_URL)")
	cmd.PersistentFlags().StringVar(&opts.at, "at", "", "Evaluate as of this date (YYYY-MM-DD, defaults to today)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log level")

	cmd.AddCommand(newAlertsCmd(opts))
	cmd.AddCommand(newHeatmapCmd(opts))
	cmd.AddCommand(newWeeksCmd(opts))
	return cmd
}

// clock returns the evaluation time selected by --at
func (o *rootOptions) clock() (service.Clock, error) {
	if o.at == "" {
		return time.Now, nil
	}
	at, ok := utilization.ParseDate(o.at)
	if !ok {
		return nil, fmt.Errorf("invalid --at %q: want YYYY-MM-DD", o.at)
	}
	return func() time.Time { return at }, nil
}

func (o *rootOptions) logger() *logger.Logger {
	return logger.New(logger.Config{Level: o.logLevel, Format: "console", Output: os.Stderr})
}

// stores is the data source behind a command run
type stores struct {
	resources   service.ResourceStore
	projects    service.ProjectStore
	allocations service.AllocationStore
	settings    *service.SettingsService
	cache       cache.PayloadCache
	close       func()
}

func (o *rootOptions) open(ctx context.Context, log *logger.Logger) (*stores, error) {
	// One run computes once, so entries never need to expire.
	runCache := cache.NewMemoryCache(0, time.Now)

	if o.snapshotPath != "" {
		snap, err := snapshot.Load(o.snapshotPath)
		if err != nil {
			return nil, err
		}
		return &stores{
			resources:   snap.Resources(),
			projects:    snap.Projects(),
			allocations: snap.Allocations(),
			settings:    service.NewSettingsService(snap.Settings(), runCache, models.DefaultAlertSettings()),
			cache:       runCache,
			close:       func() {},
		}, nil
	}

	url := o.databaseURL
	if url == "" {
		cfg, err := config.Load()
		if err != nil {
			return nil, err
		}
		url = cfg.DatabaseURL
	}

	db, err := database.New(ctx, url, log)
	if err != nil {
		return nil, err
	}

	return &stores{
		resources:   repository.NewResourceRepository(db.Pool),
		projects:    repository.NewProjectRepository(db.Pool),
		allocations: repository.NewAllocationRepository(db.Pool),
		settings:    service.NewSettingsService(repository.NewSettingsRepository(db.Pool), runCache, models.DefaultAlertSettings()),
		cache:       runCache,
		close:       db.Close,
	}, nil
}
