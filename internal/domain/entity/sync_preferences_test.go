package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSyncPreferencesUpdate_Apply_MergesOnlySetFields(t *testing.T) {
	prefs := DefaultSyncPreferences(uuid.New(), []DataType{DataTypeSteps, DataTypeHeartRate})

	freq := 15
	notify := true
	SyncPreferencesUpdate{
		SyncFrequencyMinutes: &freq,
		NotifyOnSync:         &notify,
	}.Apply(prefs)

	assert.Equal(t, 15, prefs.SyncFrequencyMinutes)
	assert.True(t, prefs.NotifyOnSync)
	assert.True(t, prefs.AutoSyncEnabled)
	assert.True(t, prefs.NotifyOnError)
	assert.Equal(t, DefaultBackfillDays, prefs.BackfillDays)
	assert.Equal(t, []DataType{DataTypeSteps, DataTypeHeartRate}, prefs.DataTypesEnabled)
}

func TestSyncPreferencesUpdate_Apply_CopiesDataTypes(t *testing.T) {
	prefs := DefaultSyncPreferences(uuid.New(), nil)
	types := []DataType{DataTypeSleep}

	SyncPreferencesUpdate{DataTypesEnabled: &types}.Apply(prefs)
	types[0] = DataTypeSteps

	assert.Equal(t, []DataType{DataTypeSleep}, prefs.DataTypesEnabled)
}

func TestSyncPreferences_IsDue(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	prefs := DefaultSyncPreferences(uuid.New(), nil)

	assert.True(t, prefs.IsDue(nil, now), "never synced")

	recent := now.Add(-30 * time.Minute)
	assert.False(t, prefs.IsDue(&recent, now))

	old := now.Add(-61 * time.Minute)
	assert.True(t, prefs.IsDue(&old, now))

	prefs.AutoSyncEnabled = false
	assert.False(t, prefs.IsDue(nil, now))

	var missing *SyncPreferences
	assert.False(t, missing.IsDue(nil, now))
}
