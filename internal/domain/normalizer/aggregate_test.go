package normalizer

import (
	"testing"
	"time"

	"wearsync/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleAt(ts time.Time, v float64) *entity.WearableHealthData {
	return &entity.WearableHealthData{Timestamp: ts, Value: entity.NumericValue(v)}
}

func TestAggregateDaily_MeanPerUTCDay(t *testing.T) {
	day1 := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	day3 := time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC)
	taipei := time.FixedZone("UTC+8", 8*3600)

	samples := []*entity.WearableHealthData{
		sampleAt(day3.Add(9*time.Hour), 70),
		sampleAt(day1.Add(1*time.Hour), 60),
		sampleAt(day1.Add(23*time.Hour), 80),
		// 2024-03-02 05:00 in UTC+8 is still 2024-03-01 in UTC.
		sampleAt(time.Date(2024, 3, 2, 5, 0, 0, 0, taipei), 100),
		{Timestamp: day1, Value: entity.TextValue("deep")},
		nil,
	}

	got := AggregateDaily(samples)
	require.Len(t, got, 2, "days without samples are omitted")

	assert.Equal(t, entity.DailyValue{Date: "2024-03-01", Value: 80, Count: 3}, got[0])
	assert.Equal(t, entity.DailyValue{Date: "2024-03-03", Value: 70, Count: 1}, got[1])
}

func TestAggregateDaily_MeanIsNotRounded(t *testing.T) {
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	got := AggregateDaily([]*entity.WearableHealthData{
		sampleAt(day.Add(1*time.Hour), 1),
		sampleAt(day.Add(2*time.Hour), 0),
		sampleAt(day.Add(3*time.Hour), 0),
	})

	require.Len(t, got, 1)
	assert.Equal(t, 1.0/3.0, got[0].Value)
	assert.Equal(t, 3, got[0].Count)
}

func TestAggregateDaily_Empty(t *testing.T) {
	assert.Empty(t, AggregateDaily(nil))
}
