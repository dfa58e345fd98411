package normalizer

import (
	"testing"
	"time"

	"wearsync/internal/domain/entity"
	"wearsync/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func numeric(t *testing.T, s NormalizedSample) float64 {
	t.Helper()
	require.Equal(t, entity.ValueKindNumeric, s.Value.Kind)
	require.NotNil(t, s.Value.Numeric)

	return *s.Value.Numeric
}

func TestNormalize_GoogleFitStepPoints(t *testing.T) {
	raw := []byte(`{
		"dataSourceId": "derived:com.google.step_count.delta",
		"point": [
			{"startTimeNanos": "1709280000000000000", "endTimeNanos": "1709283600000000000", "value": [{"intVal": 1200}]},
			{"startTimeNanos": "1709276400000000000", "endTimeNanos": "1709280000000000000", "value": [{"intVal": 800}]}
		]
	}`)

	samples, err := Normalize(raw, entity.ProviderGoogleFit, entity.DataTypeSteps)
	require.NoError(t, err)
	require.Len(t, samples, 2)

	assert.Equal(t, time.Unix(0, 1709276400000000000).UTC(), samples[0].Timestamp, "sorted by time")
	assert.Equal(t, 800.0, numeric(t, samples[0]))
	assert.Equal(t, 1200.0, numeric(t, samples[1]))
	assert.Equal(t, "count", samples[1].Unit)
	assert.Equal(t, 1.0, samples[1].QualityScore)
	assert.NotEmpty(t, samples[1].Raw)
}

func TestNormalize_GoogleFitSleepSegmentsBecomeMinutes(t *testing.T) {
	raw := []byte(`{"point": [{"startTimeNanos": 1709251200000000000, "endTimeNanos": 1709256600000000000, "value": [{"intVal": 4}]}]}`)

	samples, err := Normalize(raw, entity.ProviderGoogleFit, entity.DataTypeSleep)
	require.NoError(t, err)
	require.Len(t, samples, 1)
	assert.Equal(t, 90.0, numeric(t, samples[0]))
	assert.Equal(t, "min", samples[0].Unit)
}

func TestNormalize_FitbitDateValueSeries(t *testing.T) {
	raw := []byte(`{"activities-steps": [
		{"dateTime": "2024-03-01", "value": "8000"},
		{"dateTime": "2024-03-02", "value": "10500"}
	]}`)

	samples, err := Normalize(raw, entity.ProviderFitbit, entity.DataTypeSteps)
	require.NoError(t, err)
	require.Len(t, samples, 2)

	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), samples[0].Timestamp)
	assert.Equal(t, 8000.0, numeric(t, samples[0]))
	assert.Equal(t, 0.9, samples[0].QualityScore, "date-only timestamps are penalised")
}

func TestNormalize_FitbitDistanceConvertedToMeters(t *testing.T) {
	raw := []byte(`{"activities-distance": [{"dateTime": "2024-03-01", "value": "5.2"}]}`)

	samples, err := Normalize(raw, entity.ProviderFitbit, entity.DataTypeDistance)
	require.NoError(t, err)
	require.Len(t, samples, 1)
	assert.Equal(t, 5200.0, numeric(t, samples[0]))
	assert.Equal(t, "m", samples[0].Unit)
}

func TestNormalize_FitbitWeightWithClockTime(t *testing.T) {
	raw := []byte(`{"weight": [{"date": "2024-03-01", "time": "07:30:00", "weight": 80.5, "bmi": 24.1}]}`)

	samples, err := Normalize(raw, entity.ProviderFitbit, entity.DataTypeWeight)
	require.NoError(t, err)
	require.Len(t, samples, 1)
	assert.Equal(t, time.Date(2024, 3, 1, 7, 30, 0, 0, time.UTC), samples[0].Timestamp)
	assert.Equal(t, 80.5, numeric(t, samples[0]))
	assert.Equal(t, 1.0, samples[0].QualityScore)
}

func TestNormalize_OuraReadinessSummary(t *testing.T) {
	raw := []byte(`{"data": [
		{"id": "r1", "day": "2024-03-01", "score": 82, "timestamp": "2024-03-01T00:00:00+00:00"}
	], "next_token": null}`)

	samples, err := Normalize(raw, entity.ProviderOura, entity.DataTypeReadiness)
	require.NoError(t, err)
	require.Len(t, samples, 1)
	assert.Equal(t, 82.0, numeric(t, samples[0]))
	assert.Equal(t, "score", samples[0].Unit)
	assert.Equal(t, 1.0, samples[0].QualityScore)
}

func TestNormalize_OuraSleepSecondsToMinutes(t *testing.T) {
	raw := []byte(`{"data": [{"day": "2024-03-01", "bedtime_start": "2024-02-29T23:00:00+00:00", "total_sleep_duration": 27000}]}`)

	samples, err := Normalize(raw, entity.ProviderOura, entity.DataTypeSleep)
	require.NoError(t, err)
	require.Len(t, samples, 1)
	assert.Equal(t, 450.0, numeric(t, samples[0]))
}

func TestNormalize_WhoopRecoveryNestedScore(t *testing.T) {
	raw := []byte(`{"records": [{
		"cycle_id": 93845,
		"created_at": "2024-03-01T11:25:44.774Z",
		"score": {"recovery_score": 44, "resting_heart_rate": 64, "hrv_rmssd_milli": 31.8}
	}]}`)

	recovery, err := Normalize(raw, entity.ProviderWhoop, entity.DataTypeRecovery)
	require.NoError(t, err)
	require.Len(t, recovery, 1)
	assert.Equal(t, 44.0, numeric(t, recovery[0]))

	hrv, err := Normalize(raw, entity.ProviderWhoop, entity.DataTypeHRV)
	require.NoError(t, err)
	require.Len(t, hrv, 1)
	assert.Equal(t, 31.8, numeric(t, hrv[0]))
	assert.Equal(t, "ms", hrv[0].Unit)
}

func TestNormalize_SampleListExplicitUnitWins(t *testing.T) {
	raw := []byte(`{"samples": [{"timestamp": 1709280000, "value": 176.4, "unit": "lb"}]}`)

	samples, err := Normalize(raw, entity.ProviderWithings, entity.DataTypeWeight)
	require.NoError(t, err)
	require.Len(t, samples, 1)
	assert.InDelta(t, 80.0134, numeric(t, samples[0]), 0.001)
	assert.Equal(t, "kg", samples[0].Unit)
	assert.Equal(t, time.Unix(1709280000, 0).UTC(), samples[0].Timestamp)
}

func TestNormalize_ImplausibleValueLowersQuality(t *testing.T) {
	raw := []byte(`{"samples": [{"timestamp": "2024-03-01T10:00:00Z", "value": 400}]}`)

	samples, err := Normalize(raw, entity.ProviderGarmin, entity.DataTypeHeartRate)
	require.NoError(t, err)
	require.Len(t, samples, 1)
	assert.Equal(t, 400.0, numeric(t, samples[0]))
	assert.Equal(t, 0.6, samples[0].QualityScore)
}

func TestNormalize_MissingUnitIsInferred(t *testing.T) {
	raw := []byte(`{"data": [{"timestamp": "2024-03-01T10:00:00Z", "value": 55}]}`)

	samples, err := Normalize(raw, entity.ProviderWhoop, entity.DataTypeRestingHeartRate)
	require.NoError(t, err)
	require.Len(t, samples, 1)
	assert.Equal(t, "bpm", samples[0].Unit)
	assert.Equal(t, 0.8, samples[0].QualityScore)
}

func TestNormalize_RecordWithoutValueBecomesStructured(t *testing.T) {
	raw := []byte(`{"data": [{"day": "2024-03-01", "contributors": {"activity_balance": 70}}]}`)

	samples, err := Normalize(raw, entity.ProviderOura, entity.DataTypeReadiness)
	require.NoError(t, err)
	require.Len(t, samples, 1)
	assert.Equal(t, entity.ValueKindStructured, samples[0].Value.Kind)
	assert.True(t, samples[0].Value.IsValid())
	assert.Equal(t, 0.6, samples[0].QualityScore)
}

func TestNormalize_UnknownShapeFallback(t *testing.T) {
	t.Run("with timestamp yields one structured sample", func(t *testing.T) {
		raw := []byte(`{"measured_at": "x", "timestamp": "2024-03-01T08:00:00Z", "reading": {"a": 1}}`)

		samples, err := Normalize(raw, entity.ProviderGoogleFit, entity.DataTypeSteps)
		require.NoError(t, err)
		require.Len(t, samples, 1)
		assert.Equal(t, entity.ValueKindStructured, samples[0].Value.Kind)
		assert.Equal(t, 0.5, samples[0].QualityScore)
	})

	t.Run("without timestamp yields nothing", func(t *testing.T) {
		samples, err := Normalize([]byte(`{"hello": "world"}`), entity.ProviderGoogleFit, entity.DataTypeSteps)
		require.NoError(t, err)
		assert.Empty(t, samples)
	})

	t.Run("unregistered provider", func(t *testing.T) {
		samples, err := Normalize([]byte(`[{"timestamp": "2024-03-01T08:00:00Z"}]`), "myspace", entity.DataTypeSteps)
		require.NoError(t, err)
		assert.Len(t, samples, 1)
	})

	t.Run("null payload", func(t *testing.T) {
		samples, err := Normalize([]byte(`null`), entity.ProviderFitbit, entity.DataTypeSteps)
		require.NoError(t, err)
		assert.Empty(t, samples)
	})
}

func TestNormalize_MalformedJSON(t *testing.T) {
	_, err := Normalize([]byte(`{"point": [`), entity.ProviderGoogleFit, entity.DataTypeSteps)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedPayload))
}

func TestNormalize_WorkoutsCarrySourceID(t *testing.T) {
	raw := []byte(`[
		{"id": 1234567890, "type": "Run", "start_date": "2024-03-01T06:00:00Z", "elapsed_time": 1800, "distance": 5000.5},
		{"type": "Ride"}
	]`)

	samples, err := Normalize(raw, entity.ProviderStrava, entity.DataTypeWorkout)
	require.NoError(t, err)
	require.Len(t, samples, 1, "workout without start time is dropped")

	s := samples[0]
	assert.Equal(t, "1234567890", s.SourceWorkoutID)
	assert.Equal(t, entity.ValueKindStructured, s.Value.Kind)
	assert.Equal(t, "run", s.Value.Structured["activity_type"])
	assert.Equal(t, string(entity.ProviderStrava), s.Value.Structured["provider"])
	assert.NotNil(t, NormalizeWorkoutJSON(s.Raw))
}

func TestCanonicalUnit(t *testing.T) {
	assert.Equal(t, "bpm", CanonicalUnit(entity.DataTypeHeartRate))
	assert.Equal(t, "m", CanonicalUnit(entity.DataTypeDistance))
	assert.Empty(t, CanonicalUnit(entity.DataTypeWorkout))
}
