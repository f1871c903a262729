package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gti/resource-planner/internal/models"
)

func TestSettingsService_DefaultsUntilSaved(t *testing.T) {
	ctx := context.Background()
	f := newFixture(nil, nil)

	s, err := f.settingsSvc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultAlertSettings(), s)

	updated, err := f.settingsSvc.Update(ctx, &models.UpdateAlertSettingsRequest{
		WarningThreshold:          80,
		ErrorThreshold:            95,
		CriticalThreshold:         110,
		UnderUtilizationThreshold: 40,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, f.cache.Invalidations())

	s, err = f.settingsSvc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, updated, s)
	assert.Equal(t, 110.0, s.CriticalThreshold)
}

func TestSettingsService_StoreError(t *testing.T) {
	f := newFixture(nil, nil)
	f.settings.err = errStoreDown

	_, err := f.settingsSvc.Get(context.Background())

	assert.ErrorIs(t, err, errStoreDown)
}
