// Package normalizer turns provider payloads into canonical health samples.
//
// Every payload is first decoded into one variant of the closed Payload union
// and then converted by a type switch over that union. Shapes that match no
// known variant become Unknown instead of failing the sync.
package normalizer

import (
	"bytes"
	"encoding/json"
	"sort"
	"strconv"
	"strings"
	"time"

	"wearsync/internal/domain/provider"
	"wearsync/internal/errors"
)

// ErrMalformedPayload is returned when a payload is not valid JSON.
var ErrMalformedPayload = errors.New("malformed provider payload")

// Payload is a decoded provider response.
type Payload interface {
	Format() provider.PayloadFormat
	isPayload()
}

// PointSeries is a dataset of points bounded by nanosecond timestamps.
type PointSeries struct {
	Points []Point
}

type Point struct {
	Start  time.Time
	End    time.Time
	Values []PointValue
	Raw    json.RawMessage
}

// PointValue holds one typed point value; at most one field is set.
type PointValue struct {
	Int    *int64
	Float  *float64
	String *string
	Map    map[string]float64
}

// DateValueSeries is a per-day series keyed by a resource name.
type DateValueSeries struct {
	Resource string
	Entries  []map[string]any
}

// DailySummary is a list of per-day scored records.
type DailySummary struct {
	Records []map[string]any
}

// SampleList is a list of timestamped samples.
type SampleList struct {
	Samples []map[string]any
}

// WorkoutList is a list of workout sessions.
type WorkoutList struct {
	Workouts []map[string]any
}

// Unknown is any payload that matched no known shape.
type Unknown struct {
	Value any
}

func (*PointSeries) Format() provider.PayloadFormat     { return provider.FormatPointSeries }
func (*DateValueSeries) Format() provider.PayloadFormat { return provider.FormatDateValueSeries }
func (*DailySummary) Format() provider.PayloadFormat    { return provider.FormatDailySummary }
func (*SampleList) Format() provider.PayloadFormat      { return provider.FormatSampleList }
func (*WorkoutList) Format() provider.PayloadFormat     { return provider.FormatWorkoutList }
func (*Unknown) Format() provider.PayloadFormat         { return "" }

func (*PointSeries) isPayload()     {}
func (*DateValueSeries) isPayload() {}
func (*DailySummary) isPayload()    {}
func (*SampleList) isPayload()      {}
func (*WorkoutList) isPayload()     {}
func (*Unknown) isPayload()         {}

var (
	dailySummaryKeys = []string{"data", "records"}
	sampleListKeys   = []string{"samples", "data", "series", "measurements", "records"}
	workoutListKeys  = []string{"workouts", "activities", "sessions", "exercises", "records", "data"}
)

// Decode parses raw into the variant expected for format.
// A payload whose shape does not fit format decodes to *Unknown.
func Decode(raw []byte, format provider.PayloadFormat) (Payload, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return &Unknown{}, nil
	}

	var generic any
	if err := decodeJSON(trimmed, &generic); err != nil {
		return nil, errors.Wrap(ErrMalformedPayload, err.Error())
	}

	switch format {
	case provider.FormatPointSeries:
		if p, ok := decodePointSeries(trimmed); ok {
			return p, nil
		}
	case provider.FormatDateValueSeries:
		if p, ok := decodeDateValueSeries(generic); ok {
			return p, nil
		}
	case provider.FormatDailySummary:
		if records, ok := objectList(generic, dailySummaryKeys); ok {
			return &DailySummary{Records: records}, nil
		}
	case provider.FormatSampleList:
		if samples, ok := objectList(generic, sampleListKeys); ok {
			return &SampleList{Samples: samples}, nil
		}
	case provider.FormatWorkoutList:
		if workouts, ok := objectList(generic, workoutListKeys); ok {
			return &WorkoutList{Workouts: workouts}, nil
		}
	}

	return &Unknown{Value: generic}, nil
}

func decodeJSON(raw []byte, out any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	return dec.Decode(out)
}

// flexInt64 accepts both JSON numbers and numeric strings.
type flexInt64 int64

func (f *flexInt64) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*f = 0

		return nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return err
	}
	*f = flexInt64(v)

	return nil
}

type wirePointSeries struct {
	Point []struct {
		StartTimeNanos flexInt64 `json:"startTimeNanos"`
		EndTimeNanos   flexInt64 `json:"endTimeNanos"`
		Value          []struct {
			IntVal    *int64   `json:"intVal"`
			FpVal     *float64 `json:"fpVal"`
			StringVal *string  `json:"stringVal"`
			MapVal    []struct {
				Key   string `json:"key"`
				Value struct {
					FpVal *float64 `json:"fpVal"`
				} `json:"value"`
			} `json:"mapVal"`
		} `json:"value"`
	} `json:"point"`
}

func decodePointSeries(raw []byte) (*PointSeries, bool) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, false
	}
	if _, ok := probe["point"]; !ok {
		return nil, false
	}

	var wire wirePointSeries
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, false
	}

	var rawPoints []json.RawMessage
	_ = json.Unmarshal(probe["point"], &rawPoints)

	series := &PointSeries{Points: make([]Point, 0, len(wire.Point))}
	for i, wp := range wire.Point {
		if wp.StartTimeNanos <= 0 {
			continue
		}
		p := Point{
			Start: time.Unix(0, int64(wp.StartTimeNanos)).UTC(),
			End:   time.Unix(0, int64(wp.EndTimeNanos)).UTC(),
		}
		if wp.EndTimeNanos <= 0 {
			p.End = p.Start
		}
		if i < len(rawPoints) {
			p.Raw = rawPoints[i]
		}
		for _, wv := range wp.Value {
			pv := PointValue{Int: wv.IntVal, Float: wv.FpVal, String: wv.StringVal}
			if len(wv.MapVal) > 0 {
				pv.Map = make(map[string]float64, len(wv.MapVal))
				for _, entry := range wv.MapVal {
					if entry.Value.FpVal != nil {
						pv.Map[entry.Key] = *entry.Value.FpVal
					}
				}
			}
			p.Values = append(p.Values, pv)
		}
		series.Points = append(series.Points, p)
	}

	return series, true
}

func decodeDateValueSeries(generic any) (*DateValueSeries, bool) {
	obj, ok := generic.(map[string]any)
	if !ok {
		return nil, false
	}

	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		entries, ok := asObjectSlice(obj[k])
		if !ok || len(entries) == 0 {
			continue
		}
		if _, _, found := firstTime(entries[0], dateKeys); !found {
			continue
		}

		return &DateValueSeries{Resource: k, Entries: entries}, true
	}

	return nil, false
}

// objectList finds a list of objects either at the top level or under one of keys.
func objectList(generic any, keys []string) ([]map[string]any, bool) {
	if list, ok := asObjectSlice(generic); ok {
		return list, true
	}

	obj, ok := generic.(map[string]any)
	if !ok {
		return nil, false
	}
	for _, k := range keys {
		if list, ok := asObjectSlice(obj[k]); ok {
			return list, true
		}
	}

	return nil, false
}

func asObjectSlice(v any) ([]map[string]any, bool) {
	items, ok := v.([]any)
	if !ok {
		return nil, false
	}

	out := make([]map[string]any, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, false
		}
		out = append(out, m)
	}

	return out, true
}
