package entity

import (
	"time"

	"github.com/google/uuid"
)

// ValueKind tags which member of HealthValue is set.
type ValueKind string

const (
	ValueKindNumeric    ValueKind = "numeric"
	ValueKindText       ValueKind = "text"
	ValueKindStructured ValueKind = "structured"
)

// HealthValue holds exactly one of a numeric, text or structured value.
type HealthValue struct {
	Kind       ValueKind      `json:"kind"`
	Numeric    *float64       `json:"numeric,omitempty"`
	Text       *string        `json:"text,omitempty"`
	Structured map[string]any `json:"structured,omitempty"`
}

func NumericValue(v float64) HealthValue {
	return HealthValue{Kind: ValueKindNumeric, Numeric: &v}
}

func TextValue(v string) HealthValue {
	return HealthValue{Kind: ValueKindText, Text: &v}
}

func StructuredValue(v map[string]any) HealthValue {
	return HealthValue{Kind: ValueKindStructured, Structured: v}
}

// IsValid reports whether exactly the member named by Kind is set.
func (v HealthValue) IsValid() bool {
	switch v.Kind {
	case ValueKindNumeric:
		return v.Numeric != nil && v.Text == nil && v.Structured == nil
	case ValueKindText:
		return v.Text != nil && v.Numeric == nil && v.Structured == nil
	case ValueKindStructured:
		return v.Structured != nil && v.Numeric == nil && v.Text == nil
	default:
		return false
	}
}

// WearableHealthData is one canonical health sample.
// Unique by (DeviceID, DataType, Timestamp, SourceWorkoutID).
type WearableHealthData struct {
	ID              uuid.UUID   `json:"id"`
	UserID          uuid.UUID   `json:"user_id"`
	DeviceID        uuid.UUID   `json:"device_id"`
	Provider        ProviderID  `json:"provider"`
	DataType        DataType    `json:"data_type"`
	Timestamp       time.Time   `json:"timestamp"`
	Value           HealthValue `json:"value"`
	Unit            string      `json:"unit"`
	QualityScore    float64     `json:"quality_score"`
	SourceWorkoutID string      `json:"source_workout_id,omitempty"`
	RawData         []byte      `json:"-"`
	SyncedAt        time.Time   `json:"synced_at"`
}

// NormalizedWorkout is a provider independent workout session.
type NormalizedWorkout struct {
	ID                  string     `json:"id"`
	Provider            ProviderID `json:"provider,omitempty"`
	SourceID            string     `json:"source_id,omitempty"`
	ActivityType        string     `json:"activity_type"`
	StartTime           time.Time  `json:"start_time"`
	EndTime             *time.Time `json:"end_time,omitempty"`
	DurationSeconds     int64      `json:"duration_seconds"`
	DistanceMeters      *float64   `json:"distance_meters,omitempty"`
	Calories            *float64   `json:"calories,omitempty"`
	AvgHeartRate        *float64   `json:"avg_heart_rate,omitempty"`
	MaxHeartRate        *float64   `json:"max_heart_rate,omitempty"`
	AvgPowerWatts       *float64   `json:"avg_power_watts,omitempty"`
	AvgCadence          *float64   `json:"avg_cadence,omitempty"`
	ElevationGainMeters *float64   `json:"elevation_gain_meters,omitempty"`
}

// DailyValue is the mean of one UTC day.
type DailyValue struct {
	Date  string  `json:"date"` // YYYY-MM-DD, UTC
	Value float64 `json:"value"`
	Count int     `json:"count"`
}
