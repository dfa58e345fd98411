package postgres

import (
	"context"
	"testing"

	"wearsync/internal/domain/entity"
	"wearsync/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncPreferencesRepository_DefaultsThenSave(t *testing.T) {
	repo := NewSyncPreferencesRepository(newTestDB(t))
	ctx := context.Background()
	deviceID := uuid.New()

	_, err := repo.FindPreferences(ctx, deviceID)
	assert.ErrorIs(t, err, repository.ErrPreferencesNotFound)

	defaults := entity.DefaultSyncPreferences(deviceID, []entity.DataType{entity.DataTypeSteps, entity.DataTypeSleep})
	require.NoError(t, repo.CreateDefaultPreferences(ctx, defaults))

	stored, err := repo.FindPreferences(ctx, deviceID)
	require.NoError(t, err)
	assert.True(t, stored.AutoSyncEnabled)
	assert.Equal(t, entity.DefaultSyncFrequencyMinutes, stored.SyncFrequencyMinutes)
	assert.Equal(t, []entity.DataType{entity.DataTypeSteps, entity.DataTypeSleep}, stored.DataTypesEnabled)

	stored.AutoSyncEnabled = false
	stored.SyncFrequencyMinutes = 15
	require.NoError(t, repo.SavePreferences(ctx, stored))

	// Defaults never overwrite existing preferences.
	require.NoError(t, repo.CreateDefaultPreferences(ctx, entity.DefaultSyncPreferences(deviceID, nil)))

	updated, err := repo.FindPreferences(ctx, deviceID)
	require.NoError(t, err)
	assert.False(t, updated.AutoSyncEnabled)
	assert.Equal(t, 15, updated.SyncFrequencyMinutes)
}

func TestSyncPreferencesRepository_FindAutoSyncPreferences(t *testing.T) {
	repo := NewSyncPreferencesRepository(newTestDB(t))
	ctx := context.Background()

	auto := entity.DefaultSyncPreferences(uuid.New(), nil)
	manual := entity.DefaultSyncPreferences(uuid.New(), nil)
	manual.AutoSyncEnabled = false
	require.NoError(t, repo.SavePreferences(ctx, auto))
	require.NoError(t, repo.SavePreferences(ctx, manual))

	prefs, err := repo.FindAutoSyncPreferences(ctx)
	require.NoError(t, err)
	require.Len(t, prefs, 1)
	assert.Equal(t, auto.DeviceID, prefs[0].DeviceID)

	require.NoError(t, repo.DeletePreferences(ctx, auto.DeviceID))
	prefs, err = repo.FindAutoSyncPreferences(ctx)
	require.NoError(t, err)
	assert.Empty(t, prefs)
}
