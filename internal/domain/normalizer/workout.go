package normalizer

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	"wearsync/internal/domain/entity"
)

var (
	workoutStartKeys        = []string{"start_time", "startTime", "start_date", "start", "start_datetime", "startTimeInSeconds", "startTimeNanos", "startTimeMillis", "start_time_ms"}
	workoutEndKeys          = []string{"end_time", "endTime", "end_date", "end", "end_datetime", "endTimeInSeconds", "endTimeNanos", "endTimeMillis", "end_time_ms"}
	workoutSourceIDKeys     = []string{"id", "activityId", "summaryId", "logId", "workout_id"}
	workoutTypeKeys         = []string{"activity_type", "activityType", "sport_type", "type", "sport", "activityName", "sport_name"}
	workoutDurationSecKeys  = []string{"duration_seconds", "durationInSeconds", "elapsed_time", "moving_time"}
	workoutDurationMsKeys   = []string{"duration_ms", "durationMillis", "activeDuration", "duration"}
	workoutDistanceKeys     = []string{"distance_meters", "distanceInMeters", "distance", "score.distance_meter"}
	workoutCalorieKeys      = []string{"calories", "activeKilocalories", "active_calories"}
	workoutKilojouleKeys    = []string{"score.kilojoule", "kilojoules"}
	workoutAvgHeartRateKeys = []string{"average_heartrate", "averageHeartRateInBeatsPerMinute", "averageHeartRate", "score.average_heart_rate", "avg_hr"}
	workoutMaxHeartRateKeys = []string{"max_heartrate", "maxHeartRateInBeatsPerMinute", "maxHeartRate", "score.max_heart_rate", "max_hr"}
	workoutPowerKeys        = []string{"average_watts", "averagePowerInWatts", "avg_power"}
	workoutCadenceKeys      = []string{"average_cadence", "averageRunCadenceInStepsPerMinute", "averageBikeCadenceInRoundsPerMinute", "avg_cadence"}
	workoutElevationKeys    = []string{"total_elevation_gain", "totalElevationGainInMeters", "elevation_gain", "score.altitude_gain_meter"}
)

// NormalizeWorkout maps a provider workout record onto NormalizedWorkout.
// It returns nil when no start time can be found and never panics.
// The result depends only on raw.
func NormalizeWorkout(raw map[string]any) *entity.NormalizedWorkout {
	if raw == nil {
		return nil
	}

	start, _, ok := firstTime(raw, workoutStartKeys)
	if !ok {
		return nil
	}

	w := &entity.NormalizedWorkout{
		ActivityType: workoutActivityType(raw),
		StartTime:    start,
	}

	if end, _, ok := firstTime(raw, workoutEndKeys); ok && !end.Before(start) {
		w.EndTime = &end
	}

	w.DurationSeconds = workoutDuration(raw, start, w.EndTime)
	if w.EndTime == nil && w.DurationSeconds > 0 {
		end := start.Add(time.Duration(w.DurationSeconds) * time.Second)
		w.EndTime = &end
	}

	w.DistanceMeters = optionalFloat(raw, workoutDistanceKeys...)
	w.Calories = optionalFloat(raw, workoutCalorieKeys...)
	if w.Calories == nil {
		if kj, ok := floatField(raw, workoutKilojouleKeys...); ok {
			kcal := roundTo(kj/4.184, 2)
			w.Calories = &kcal
		}
	}
	w.AvgHeartRate = optionalFloat(raw, workoutAvgHeartRateKeys...)
	w.MaxHeartRate = optionalFloat(raw, workoutMaxHeartRateKeys...)
	w.AvgPowerWatts = optionalFloat(raw, workoutPowerKeys...)
	w.AvgCadence = optionalFloat(raw, workoutCadenceKeys...)
	w.ElevationGainMeters = optionalFloat(raw, workoutElevationKeys...)

	if sourceID, ok := stringField(raw, workoutSourceIDKeys...); ok {
		w.SourceID = sourceID
		w.ID = sourceID
	} else {
		w.ID = syntheticWorkoutID(w.StartTime, w.ActivityType)
	}

	return w
}

// NormalizeWorkoutJSON decodes raw and normalizes it; invalid JSON yields nil.
func NormalizeWorkoutJSON(raw []byte) *entity.NormalizedWorkout {
	var record map[string]any
	if err := decodeJSON(raw, &record); err != nil {
		return nil
	}

	return NormalizeWorkout(record)
}

func workoutActivityType(raw map[string]any) string {
	for _, k := range workoutTypeKeys {
		v, ok := lookup(raw, k)
		if !ok {
			continue
		}
		switch t := v.(type) {
		case string:
			if s := canonicalActivity(t); s != "" {
				return s
			}
		case json.Number:
			return "sport_" + t.String()
		}
	}

	return "other"
}

func canonicalActivity(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer(" ", "_", "-", "_").Replace(s)

	return s
}

// Longest workout accepted; larger durations are treated as unknown.
const maxWorkoutSeconds = 30 * 24 * 60 * 60

// workoutDuration prefers an explicit duration and falls back to end minus start.
func workoutDuration(raw map[string]any, start time.Time, end *time.Time) int64 {
	if seconds, ok := floatField(raw, workoutDurationSecKeys...); ok && plausibleDuration(seconds) {
		return int64(seconds)
	}
	if ms, ok := floatField(raw, workoutDurationMsKeys...); ok && plausibleDuration(ms/1000) {
		return int64(ms / 1000)
	}
	if end != nil {
		if seconds := end.Sub(start).Seconds(); plausibleDuration(seconds) {
			return int64(seconds)
		}
	}

	return 0
}

func plausibleDuration(seconds float64) bool {
	return seconds >= 0 && seconds <= maxWorkoutSeconds
}

func optionalFloat(raw map[string]any, keys ...string) *float64 {
	if f, ok := floatField(raw, keys...); ok {
		return &f
	}

	return nil
}

func syntheticWorkoutID(start time.Time, activity string) string {
	sum := sha256.Sum256([]byte(start.UTC().Format(time.RFC3339Nano) + "|" + activity))

	return "wk_" + hex.EncodeToString(sum[:16])
}
