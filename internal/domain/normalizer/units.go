package normalizer

import (
	"math"
	"strings"

	"wearsync/internal/domain/entity"
)

var canonicalUnits = map[entity.DataType]string{
	entity.DataTypeSteps:            "count",
	entity.DataTypeHeartRate:        "bpm",
	entity.DataTypeRestingHeartRate: "bpm",
	entity.DataTypeHRV:              "ms",
	entity.DataTypeSleep:            "min",
	entity.DataTypeCalories:         "kcal",
	entity.DataTypeDistance:         "m",
	entity.DataTypeActiveMinutes:    "min",
	entity.DataTypeWeight:           "kg",
	entity.DataTypeSpO2:             "%",
	entity.DataTypeReadiness:        "score",
	entity.DataTypeRecovery:         "score",
}

// CanonicalUnit returns the unit stored for dataType. Workouts have none.
func CanonicalUnit(dataType entity.DataType) string {
	return canonicalUnits[dataType]
}

type valueRange struct{ min, max float64 }

var plausibleRanges = map[entity.DataType]valueRange{
	entity.DataTypeSteps:            {0, 100000},
	entity.DataTypeHeartRate:        {25, 250},
	entity.DataTypeRestingHeartRate: {25, 150},
	entity.DataTypeHRV:              {1, 300},
	entity.DataTypeSleep:            {0, 1440},
	entity.DataTypeCalories:         {0, 20000},
	entity.DataTypeDistance:         {0, 1000000},
	entity.DataTypeActiveMinutes:    {0, 1440},
	entity.DataTypeWeight:           {2, 400},
	entity.DataTypeSpO2:             {50, 100},
	entity.DataTypeReadiness:        {0, 100},
	entity.DataTypeRecovery:         {0, 100},
}

func inPlausibleRange(dataType entity.DataType, v float64) bool {
	r, ok := plausibleRanges[dataType]
	if !ok {
		return true
	}

	return v >= r.min && v <= r.max
}

var unitAliases = map[string]string{
	"count": "count", "steps": "count", "step": "count",
	"bpm": "bpm", "beats/min": "bpm", "count/min": "bpm",
	"kcal": "kcal", "cal": "kcal", "calories": "kcal", "kilocalories": "kcal",
	"kj": "kj", "kilojoule": "kj", "kilojoules": "kj",
	"m": "m", "meter": "m", "meters": "m", "metre": "m",
	"km": "km", "kilometer": "km", "kilometers": "km",
	"mi": "mi", "mile": "mi", "miles": "mi",
	"kg": "kg", "kilogram": "kg", "kilograms": "kg",
	"g": "g", "gram": "g", "grams": "g",
	"lb": "lb", "lbs": "lb", "pound": "lb", "pounds": "lb",
	"s": "s", "sec": "s", "second": "s", "seconds": "s",
	"ms": "ms", "milli": "ms", "millis": "ms", "milliseconds": "ms",
	"min": "min", "minute": "min", "minutes": "min",
	"h": "h", "hr": "h", "hour": "h", "hours": "h",
	"%": "%", "percent": "%", "percentage": "%",
	"fraction": "fraction",
	"score": "score",
}

func normalizeUnitName(unit string) string {
	u := strings.ToLower(strings.TrimSpace(unit))
	if alias, ok := unitAliases[u]; ok {
		return alias
	}

	return u
}

var conversionFactors = map[[2]string]float64{
	{"km", "m"}:       1000,
	{"mi", "m"}:       1609.344,
	{"lb", "kg"}:      0.45359237,
	{"g", "kg"}:       0.001,
	{"s", "min"}:      1.0 / 60,
	{"ms", "min"}:     1.0 / 60000,
	{"h", "min"}:      60,
	{"s", "ms"}:       1000,
	{"kj", "kcal"}:    1 / 4.184,
	{"fraction", "%"}: 100,
}

// convertToCanonical converts v from unit into the canonical unit of dataType.
// ok is false when unit is unknown or cannot be converted; v is then returned as is.
func convertToCanonical(dataType entity.DataType, v float64, unit string) (float64, string, bool) {
	canonical := CanonicalUnit(dataType)
	from := normalizeUnitName(unit)
	if from == canonical {
		return v, canonical, true
	}

	factor, ok := conversionFactors[[2]string{from, canonical}]
	if !ok {
		return v, canonical, false
	}

	return roundTo(v*factor, 6), canonical, true
}

func roundTo(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))

	return math.Round(v*p) / p
}

// Quality penalties, applied to a perfect score of 1.
const (
	penaltyUnitInferred = 0.2
	penaltyDateOnly     = 0.1
	penaltyOutOfRange   = 0.4
	penaltyUnstructured = 0.3
	penaltyUnknownShape = 0.5
)

type qualityFlags struct {
	unitInferred bool
	dateOnly     bool
	outOfRange   bool
	unstructured bool
	unknownShape bool
}

func (q qualityFlags) score() float64 {
	s := 1.0
	if q.unitInferred {
		s -= penaltyUnitInferred
	}
	if q.dateOnly {
		s -= penaltyDateOnly
	}
	if q.outOfRange {
		s -= penaltyOutOfRange
	}
	if q.unstructured {
		s -= penaltyUnstructured
	}
	if q.unknownShape {
		s -= penaltyUnknownShape
	}

	return roundTo(math.Max(0, math.Min(1, s)), 2)
}
