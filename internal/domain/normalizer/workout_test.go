package normalizer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeWorkout_NilWithoutStartTime(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]any
	}{
		{name: "nil record", raw: nil},
		{name: "empty record", raw: map[string]any{}},
		{name: "unparseable start", raw: map[string]any{"start_time": "yesterday", "type": "run"}},
		{name: "zero epoch", raw: map[string]any{"startTimeInSeconds": float64(0)}},
		{name: "wrong type", raw: map[string]any{"start_time": []any{"2024"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.Nil(t, NormalizeWorkout(tt.raw))
			})
		})
	}
}

func TestNormalizeWorkout_GarminSummary(t *testing.T) {
	raw := map[string]any{
		"summaryId":                        "x-123",
		"activityType":                     "RUNNING",
		"startTimeInSeconds":               float64(1709280000),
		"durationInSeconds":                float64(2400),
		"distanceInMeters":                 float64(7012.4),
		"activeKilocalories":               float64(512),
		"averageHeartRateInBeatsPerMinute": float64(151),
		"maxHeartRateInBeatsPerMinute":     float64(178),
		"totalElevationGainInMeters":       float64(45),
	}

	w := NormalizeWorkout(raw)
	require.NotNil(t, w)

	assert.Equal(t, "x-123", w.ID)
	assert.Equal(t, "running", w.ActivityType)
	assert.Equal(t, time.Unix(1709280000, 0).UTC(), w.StartTime)
	assert.Equal(t, int64(2400), w.DurationSeconds)
	require.NotNil(t, w.EndTime)
	assert.Equal(t, w.StartTime.Add(40*time.Minute), *w.EndTime)
	assert.Equal(t, 7012.4, *w.DistanceMeters)
	assert.Equal(t, 512.0, *w.Calories)
	assert.Equal(t, 151.0, *w.AvgHeartRate)
	assert.Equal(t, 178.0, *w.MaxHeartRate)
	assert.Equal(t, 45.0, *w.ElevationGainMeters)
	assert.Nil(t, w.AvgPowerWatts)
}

func TestNormalizeWorkout_WhoopScoreFields(t *testing.T) {
	w := NormalizeWorkoutJSON([]byte(`{
		"id": 1043, "sport_id": 1,
		"start": "2024-03-01T11:25:44.774Z", "end": "2024-03-01T12:25:44.774Z",
		"score": {"kilojoule": 2092, "average_heart_rate": 123, "max_heart_rate": 146, "distance_meter": 1772.77}
	}`))
	require.NotNil(t, w)

	assert.Equal(t, "1043", w.ID)
	assert.Equal(t, int64(3600), w.DurationSeconds)
	assert.Equal(t, 500.0, *w.Calories)
	assert.Equal(t, 123.0, *w.AvgHeartRate)
	assert.Equal(t, 1772.77, *w.DistanceMeters)
}

func TestNormalizeWorkout_DurationNeverNegative(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]any
	}{
		{
			name: "end before start",
			raw:  map[string]any{"start_time": "2024-03-01T10:00:00Z", "end_time": "2024-03-01T09:00:00Z"},
		},
		{
			name: "negative explicit duration",
			raw:  map[string]any{"start_time": "2024-03-01T10:00:00Z", "duration_seconds": float64(-50)},
		},
		{
			name: "no duration at all",
			raw:  map[string]any{"start_time": "2024-03-01T10:00:00Z"},
		},
		{
			name: "duration past int64 range",
			raw:  map[string]any{"start_time": "2024-03-01T10:00:00Z", "duration_seconds": float64(1e30)},
		},
		{
			name: "duration past time.Duration range",
			raw:  map[string]any{"start_time": "2024-03-01T10:00:00Z", "duration_seconds": float64(1e12)},
		},
		{
			name: "huge millisecond duration",
			raw:  map[string]any{"start_time": "2024-03-01T10:00:00Z", "duration_ms": float64(1e30)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NormalizeWorkout(tt.raw)
			require.NotNil(t, w)
			assert.GreaterOrEqual(t, w.DurationSeconds, int64(0))
			assert.LessOrEqual(t, w.DurationSeconds, int64(maxWorkoutSeconds))
			if w.EndTime != nil {
				assert.False(t, w.EndTime.Before(w.StartTime))
				assert.LessOrEqual(t, w.EndTime.Sub(w.StartTime), time.Duration(maxWorkoutSeconds)*time.Second)
			}
		})
	}
}

func TestNormalizeWorkout_ImplausibleDurationFallsBackToEnd(t *testing.T) {
	w := NormalizeWorkout(map[string]any{
		"start_time":       "2024-03-01T10:00:00Z",
		"end_time":         "2024-03-01T11:30:00Z",
		"duration_seconds": float64(1e12),
	})

	require.NotNil(t, w)
	assert.Equal(t, int64(5400), w.DurationSeconds)
	require.NotNil(t, w.EndTime)
	assert.Equal(t, time.Date(2024, 3, 1, 11, 30, 0, 0, time.UTC), w.EndTime.UTC())
}

func TestNormalizeWorkout_Deterministic(t *testing.T) {
	raw := map[string]any{
		"startTime":    "2024-03-01T06:00:00.000",
		"activityName": "Outdoor Bike",
		"duration":     float64(3600000),
	}

	first := NormalizeWorkout(raw)
	second := NormalizeWorkout(raw)

	require.NotNil(t, first)
	assert.Equal(t, first, second)
	assert.Equal(t, "outdoor_bike", first.ActivityType)
	assert.Equal(t, int64(3600), first.DurationSeconds)
	assert.Contains(t, first.ID, "wk_")
	assert.Empty(t, first.SourceID)
}

func TestNormalizeWorkout_DefaultsActivityType(t *testing.T) {
	w := NormalizeWorkout(map[string]any{"start": "2024-03-01T06:00:00Z"})
	require.NotNil(t, w)
	assert.Equal(t, "other", w.ActivityType)
}

func TestNormalizeWorkoutJSON_InvalidInput(t *testing.T) {
	assert.Nil(t, NormalizeWorkoutJSON([]byte(`not json`)))
	assert.Nil(t, NormalizeWorkoutJSON([]byte(`[1,2,3]`)))
}
