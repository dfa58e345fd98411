package normalizer

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// Keys probed, in order, for the time of a record.
var (
	timeKeys = []string{
		"timestamp", "dateTime", "startTime", "start_time", "start", "created_at",
		"startTimeInSeconds", "startTimeNanos", "startTimeMillis",
		"calendarDate", "date", "day", "dateOfSleep",
	}
	dateKeys = []string{"dateTime", "date", "dateOfSleep", "day", "calendarDate"}
)

var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

const dateLayout = "2006-01-02"

// lookup walks a dotted path through nested objects.
func lookup(record map[string]any, path string) (any, bool) {
	var cur any = record
	for _, part := range strings.Split(path, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = m[part]
		if !ok || cur == nil {
			return nil, false
		}
	}

	return cur, true
}

func asFloat(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case float64:
		f = n
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}

	return f, true
}

func floatField(record map[string]any, paths ...string) (float64, bool) {
	for _, p := range paths {
		if v, ok := lookup(record, p); ok {
			if f, ok := asFloat(v); ok {
				return f, true
			}
		}
	}

	return 0, false
}

func stringField(record map[string]any, paths ...string) (string, bool) {
	for _, p := range paths {
		v, ok := lookup(record, p)
		if !ok {
			continue
		}
		switch s := v.(type) {
		case string:
			if strings.TrimSpace(s) != "" {
				return s, true
			}
		case json.Number:
			return s.String(), true
		}
	}

	return "", false
}

// firstTime returns the first parseable time found under keys.
func firstTime(record map[string]any, keys []string) (t time.Time, dateOnly bool, ok bool) {
	for _, k := range keys {
		v, found := lookup(record, k)
		if !found {
			continue
		}
		if t, dateOnly, ok = parseTimeValue(k, v); ok {
			if dateOnly {
				t, dateOnly = withClockTime(record, t)
			}

			return t, dateOnly, true
		}
	}

	return time.Time{}, false, false
}

// withClockTime combines a date with a sibling "time" field such as "07:30:00".
func withClockTime(record map[string]any, date time.Time) (time.Time, bool) {
	clock, ok := stringField(record, "time")
	if !ok {
		return date, true
	}
	parsed, err := time.Parse("15:04:05", clock)
	if err != nil {
		return date, true
	}

	return date.Add(time.Duration(parsed.Hour())*time.Hour +
		time.Duration(parsed.Minute())*time.Minute +
		time.Duration(parsed.Second())*time.Second), false
}

func parseTimeValue(key string, v any) (time.Time, bool, bool) {
	switch x := v.(type) {
	case string:
		if n, err := strconv.ParseInt(x, 10, 64); err == nil {
			t, ok := fromEpoch(key, n)

			return t, false, ok
		}

		return parseTimeString(x)
	case json.Number:
		if n, err := x.Int64(); err == nil {
			t, ok := fromEpoch(key, n)

			return t, false, ok
		}
		if f, err := x.Float64(); err == nil {
			t, ok := fromEpoch(key, int64(f))

			return t, false, ok
		}
	case float64:
		t, ok := fromEpoch(key, int64(x))

		return t, false, ok
	}

	return time.Time{}, false, false
}

func parseTimeString(s string) (time.Time, bool, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), false, true
		}
	}
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t.UTC(), true, true
	}

	return time.Time{}, false, false
}

// fromEpoch interprets n using the key name as a unit hint, then its magnitude.
func fromEpoch(key string, n int64) (time.Time, bool) {
	if n <= 0 {
		return time.Time{}, false
	}

	lk := strings.ToLower(key)
	switch {
	case strings.Contains(lk, "nano"):
		return time.Unix(0, n).UTC(), true
	case strings.Contains(lk, "milli") || strings.HasSuffix(lk, "_ms"):
		return time.UnixMilli(n).UTC(), true
	case strings.Contains(lk, "seconds") || strings.HasSuffix(lk, "_s"):
		return time.Unix(n, 0).UTC(), true
	}

	switch {
	case n > 1e17:
		return time.Unix(0, n).UTC(), true
	case n > 1e14:
		return time.UnixMicro(n).UTC(), true
	case n > 1e11:
		return time.UnixMilli(n).UTC(), true
	default:
		return time.Unix(n, 0).UTC(), true
	}
}
