package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gti/resource-planner/internal/models"
)

type SettingsRepository struct {
	pool *pgxpool.Pool
}

func NewSettingsRepository(pool *pgxpool.Pool) *SettingsRepository {
	return &SettingsRepository{pool: pool}
}

// Get returns the stored alert thresholds. ok is false when none have been
// saved yet.
func (r *SettingsRepository) Get(ctx context.Context) (settings models.AlertSettings, ok bool, err error) {
	err = r.pool.QueryRow(ctx,
		`SELECT warning_threshold, error_threshold, critical_threshold, under_utilization_threshold
		 FROM alert_settings WHERE id = 1`).Scan(
		&settings.WarningThreshold, &settings.ErrorThreshold, &settings.CriticalThreshold, &settings.UnderUtilizationThreshold)

	if errors.Is(err, pgx.ErrNoRows) {
		return models.AlertSettings{}, false, nil
	}
	if err != nil {
		return models.AlertSettings{}, false, fmt.Errorf("failed to get alert settings: %w", err)
	}

	return settings, true, nil
}

// Save creates or replaces the alert thresholds
func (r *SettingsRepository) Save(ctx context.Context, s models.AlertSettings) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO alert_settings (id, warning_threshold, error_threshold, critical_threshold, under_utilization_threshold, updated_at)
		 VALUES (1, $1, $2, $3, $4, NOW())
		 ON CONFLICT (id) DO UPDATE SET
		   warning_threshold = EXCLUDED.warning_threshold,
		   error_threshold = EXCLUDED.error_threshold,
		   critical_threshold = EXCLUDED.critical_threshold,
		   under_utilization_threshold = EXCLUDED.under_utilization_threshold,
		   updated_at = NOW()`,
		s.WarningThreshold, s.ErrorThreshold, s.CriticalThreshold, s.UnderUtilizationThreshold)

	if err != nil {
		return fmt.Errorf("failed to save alert settings: %w", err)
	}

	return nil
}
