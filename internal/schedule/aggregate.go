package schedule

import (
	"errors"
	"strings"
)

// ErrEmptyGroupField is returned by Aggregate when no grouping field name
// is given. This is a misuse of the API, unlike malformed entry data,
// which never produces an error.
var ErrEmptyGroupField = errors.New("grouping field name cannot be empty")

// Bucket is the rollup of all entries sharing one value of a grouping
// field. PercentOfDay is computed from the summed minutes against the same
// 12-hour baseline as individual entries, so bucket percentages need not
// sum to 100: a day can be over- or under-booked.
type Bucket struct {
	Key          string
	TotalMinutes int
	PercentOfDay float64
}

// Aggregate partitions entries by the value of the named field and sums
// durations per partition. Values compare by exact string equality; entries
// where the field is unset or blank contribute to no bucket. Buckets come
// back in first-seen order, which is deterministic for a given input
// sequence; callers that need a different order sort the result themselves.
//
// Returns ErrEmptyGroupField if groupBy is blank.
func Aggregate(entries []Entry, groupBy string) ([]Bucket, error) {
	if strings.TrimSpace(groupBy) == "" {
		return nil, ErrEmptyGroupField
	}

	buckets := []Bucket{}
	index := make(map[string]int)

	for _, e := range entries {
		// Blank values are excluded; everything else partitions by exact
		// string equality, whitespace included.
		key := e.Field(groupBy)
		if strings.TrimSpace(key) == "" {
			continue
		}
		i, ok := index[key]
		if !ok {
			i = len(buckets)
			index[key] = i
			buckets = append(buckets, Bucket{Key: key})
		}
		buckets[i].TotalMinutes += e.DurationMinutes
	}

	for i := range buckets {
		buckets[i].PercentOfDay = percentOfBaseline(buckets[i].TotalMinutes)
	}

	return buckets, nil
}

// Total sums the durations of all entries and returns the total alongside
// its share of the baseline.
func Total(entries []Entry) (int, float64) {
	minutes := 0
	for _, e := range entries {
		minutes += e.DurationMinutes
	}
	return minutes, percentOfBaseline(minutes)
}
