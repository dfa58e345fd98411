package normalizer

import (
	"encoding/json"
	"sort"
	"time"

	"wearsync/internal/domain/entity"
	"wearsync/internal/domain/provider"
)

// NormalizedSample is one canonical row produced from a payload.
type NormalizedSample struct {
	Timestamp       time.Time
	Value           entity.HealthValue
	Unit            string
	QualityScore    float64
	SourceWorkoutID string
	Raw             json.RawMessage
}

type valuePath struct {
	path string
	unit string
}

// Candidate value fields per data type, tried in order.
var recordValuePaths = map[entity.DataType][]valuePath{
	entity.DataTypeSteps: {
		{"steps", "count"}, {"totalSteps", "count"}, {"value", ""},
	},
	entity.DataTypeHeartRate: {
		{"bpm", "bpm"}, {"heart_rate", "bpm"}, {"value", ""},
	},
	entity.DataTypeRestingHeartRate: {
		{"score.resting_heart_rate", "bpm"}, {"value.restingHeartRate", "bpm"},
		{"restingHeartRate", "bpm"}, {"resting_heart_rate", "bpm"},
		{"restingHeartRateInBeatsPerMinute", "bpm"}, {"lowest_heart_rate", "bpm"}, {"value", ""},
	},
	entity.DataTypeHRV: {
		{"score.hrv_rmssd_milli", "ms"}, {"value.dailyRmssd", "ms"}, {"average_hrv", "ms"},
		{"lastNightAvg", "ms"}, {"hrv", ""}, {"value", ""},
	},
	entity.DataTypeSleep: {
		{"total_sleep_duration", "s"}, {"score.stage_summary.total_in_bed_time_milli", "ms"},
		{"minutesAsleep", "min"}, {"durationInSeconds", "s"}, {"duration", ""}, {"value", ""},
	},
	entity.DataTypeCalories: {
		{"active_calories", "kcal"}, {"score.kilojoule", "kj"}, {"activeKilocalories", "kcal"},
		{"calories", ""}, {"value", ""},
	},
	entity.DataTypeDistance: {
		{"distanceInMeters", "m"}, {"distance", ""}, {"value", ""},
	},
	entity.DataTypeActiveMinutes: {
		{"activeTimeInSeconds", "s"}, {"minutes", "min"}, {"value", ""},
	},
	entity.DataTypeWeight: {
		{"weight", ""}, {"value", ""},
	},
	entity.DataTypeSpO2: {
		{"spo2_percentage.average", "%"}, {"score.spo2_percentage", "%"}, {"value.avg", "%"},
		{"spo2", ""}, {"value", ""},
	},
	entity.DataTypeReadiness: {
		{"score", "score"}, {"value", ""},
	},
	entity.DataTypeRecovery: {
		{"score.recovery_score", "score"}, {"recovery_score", "score"}, {"score", "score"}, {"value", ""},
	},
}

// Normalize converts one provider payload for dataType into canonical samples.
// Unknown providers and unexpected shapes never fail; only malformed JSON does.
func Normalize(raw []byte, providerID entity.ProviderID, dataType entity.DataType) ([]NormalizedSample, error) {
	var format provider.PayloadFormat
	sourceUnit := ""
	if p, ok := provider.Lookup(providerID); ok {
		format, _ = p.FormatFor(dataType)
		sourceUnit = p.SourceUnit(dataType)
	}
	if dataType == entity.DataTypeWorkout {
		format = provider.FormatWorkoutList
	}

	payload, err := Decode(raw, format)
	if err != nil {
		return nil, err
	}

	n := sampleBuilder{dataType: dataType, sourceUnit: sourceUnit}

	var samples []NormalizedSample
	switch p := payload.(type) {
	case *PointSeries:
		samples = n.fromPointSeries(p)
	case *DateValueSeries:
		samples = n.fromRecords(p.Entries, dateKeys)
	case *DailySummary:
		samples = n.fromRecords(p.Records, timeKeys)
	case *SampleList:
		samples = n.fromRecords(p.Samples, timeKeys)
	case *WorkoutList:
		samples = fromWorkouts(p, providerID)
	case *Unknown:
		samples = n.fromUnknown(p)
	}

	sort.SliceStable(samples, func(i, j int) bool {
		return samples[i].Timestamp.Before(samples[j].Timestamp)
	})

	return samples, nil
}

type sampleBuilder struct {
	dataType   entity.DataType
	sourceUnit string
}

func (b sampleBuilder) numeric(ts time.Time, v float64, unit string, flags qualityFlags, raw json.RawMessage) NormalizedSample {
	if unit == "" {
		unit = b.sourceUnit
	}
	if unit == "" {
		flags.unitInferred = true
		unit = CanonicalUnit(b.dataType)
	}

	converted, canonical, ok := convertToCanonical(b.dataType, v, unit)
	if !ok {
		flags.unitInferred = true
	}
	if !inPlausibleRange(b.dataType, converted) {
		flags.outOfRange = true
	}

	return NormalizedSample{
		Timestamp:    ts,
		Value:        entity.NumericValue(converted),
		Unit:         canonical,
		QualityScore: flags.score(),
		Raw:          raw,
	}
}

func (b sampleBuilder) fromPointSeries(series *PointSeries) []NormalizedSample {
	out := make([]NormalizedSample, 0, len(series.Points))
	for _, p := range series.Points {
		if b.dataType == entity.DataTypeSleep {
			minutes := p.End.Sub(p.Start).Minutes()
			out = append(out, b.numeric(p.Start, minutes, "min", qualityFlags{}, p.Raw))

			continue
		}
		if len(p.Values) == 0 {
			continue
		}

		v := p.Values[0]
		switch {
		case v.Float != nil:
			out = append(out, b.numeric(p.Start, *v.Float, "", qualityFlags{}, p.Raw))
		case v.Int != nil:
			out = append(out, b.numeric(p.Start, float64(*v.Int), "", qualityFlags{}, p.Raw))
		case v.String != nil:
			out = append(out, NormalizedSample{
				Timestamp:    p.Start,
				Value:        entity.TextValue(*v.String),
				Unit:         CanonicalUnit(b.dataType),
				QualityScore: qualityFlags{}.score(),
				Raw:          p.Raw,
			})
		case len(v.Map) > 0:
			structured := make(map[string]any, len(v.Map))
			for k, f := range v.Map {
				structured[k] = f
			}
			out = append(out, NormalizedSample{
				Timestamp:    p.Start,
				Value:        entity.StructuredValue(structured),
				Unit:         CanonicalUnit(b.dataType),
				QualityScore: qualityFlags{unstructured: true}.score(),
				Raw:          p.Raw,
			})
		}
	}

	return out
}

func (b sampleBuilder) fromRecords(records []map[string]any, keys []string) []NormalizedSample {
	out := make([]NormalizedSample, 0, len(records))
	for _, record := range records {
		ts, dateOnly, ok := firstTime(record, keys)
		if !ok {
			continue
		}
		raw, _ := json.Marshal(record)
		flags := qualityFlags{dateOnly: dateOnly}

		if sample, ok := b.fromRecordValue(record, ts, flags, raw); ok {
			out = append(out, sample)

			continue
		}

		flags.unstructured = true
		out = append(out, NormalizedSample{
			Timestamp:    ts,
			Value:        entity.StructuredValue(record),
			Unit:         CanonicalUnit(b.dataType),
			QualityScore: flags.score(),
			Raw:          raw,
		})
	}

	return out
}

func (b sampleBuilder) fromRecordValue(record map[string]any, ts time.Time, flags qualityFlags, raw json.RawMessage) (NormalizedSample, bool) {
	explicitUnit, _ := stringField(record, "unit", "units")

	for _, vp := range recordValuePaths[b.dataType] {
		v, found := lookup(record, vp.path)
		if !found {
			continue
		}
		if f, ok := asFloat(v); ok {
			unit := vp.unit
			if explicitUnit != "" {
				unit = explicitUnit
			}

			return b.numeric(ts, f, unit, flags, raw), true
		}
		if s, ok := v.(string); ok && s != "" {
			return NormalizedSample{
				Timestamp:    ts,
				Value:        entity.TextValue(s),
				Unit:         CanonicalUnit(b.dataType),
				QualityScore: flags.score(),
				Raw:          raw,
			}, true
		}
	}

	return NormalizedSample{}, false
}

func (b sampleBuilder) fromUnknown(p *Unknown) []NormalizedSample {
	var records []map[string]any
	switch v := p.Value.(type) {
	case map[string]any:
		records = []map[string]any{v}
	case []any:
		records, _ = asObjectSlice(v)
	}

	out := make([]NormalizedSample, 0, len(records))
	for _, record := range records {
		ts, dateOnly, ok := firstTime(record, timeKeys)
		if !ok {
			continue
		}
		raw, _ := json.Marshal(record)
		flags := qualityFlags{dateOnly: dateOnly, unknownShape: true}
		out = append(out, NormalizedSample{
			Timestamp:    ts,
			Value:        entity.StructuredValue(record),
			Unit:         CanonicalUnit(b.dataType),
			QualityScore: flags.score(),
			Raw:          raw,
		})
	}

	return out
}

func fromWorkouts(list *WorkoutList, providerID entity.ProviderID) []NormalizedSample {
	out := make([]NormalizedSample, 0, len(list.Workouts))
	for _, raw := range list.Workouts {
		w := NormalizeWorkout(raw)
		if w == nil {
			continue
		}
		w.Provider = providerID

		structured := workoutToMap(w)
		encoded, _ := json.Marshal(raw)
		out = append(out, NormalizedSample{
			Timestamp:       w.StartTime,
			Value:           entity.StructuredValue(structured),
			QualityScore:    qualityFlags{}.score(),
			SourceWorkoutID: w.ID,
			Raw:             encoded,
		})
	}

	return out
}

func workoutToMap(w *entity.NormalizedWorkout) map[string]any {
	encoded, err := json.Marshal(w)
	if err != nil {
		return map[string]any{"id": w.ID}
	}
	var out map[string]any
	if err := json.Unmarshal(encoded, &out); err != nil {
		return map[string]any{"id": w.ID}
	}

	return out
}
