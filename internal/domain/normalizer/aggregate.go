package normalizer

import (
	"sort"

	"wearsync/internal/domain/entity"
)

// AggregateDaily averages numeric samples per UTC calendar day.
// Days without samples are omitted and the result is ordered by date.
func AggregateDaily(samples []*entity.WearableHealthData) []entity.DailyValue {
	type bucket struct {
		sum   float64
		count int
	}

	buckets := make(map[string]*bucket)
	for _, s := range samples {
		if s == nil || s.Value.Kind != entity.ValueKindNumeric || s.Value.Numeric == nil {
			continue
		}
		day := s.Timestamp.UTC().Format(dateLayout)
		b, ok := buckets[day]
		if !ok {
			b = &bucket{}
			buckets[day] = b
		}
		b.sum += *s.Value.Numeric
		b.count++
	}

	out := make([]entity.DailyValue, 0, len(buckets))
	for day, b := range buckets {
		out = append(out, entity.DailyValue{
			Date:  day,
			Value: b.sum / float64(b.count),
			Count: b.count,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })

	return out
}
