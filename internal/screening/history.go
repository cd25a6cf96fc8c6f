package screening

import (
	"sort"
	"time"
)

// History helpers are pure, read-only views over a caller-supplied result
// collection. They never mutate their input and never invent data: an empty
// history stays empty.

// TrendPoint is one assessment in a severity-over-time view.
type TrendPoint struct {
	Timestamp time.Time `json:"timestamp"`
	Score     int       `json:"score"`
	Severity  string    `json:"severity"`
	Color     ColorTag  `json:"color"`
}

// FilterByInstrument keeps results of one instrument, preserving order.
// An empty instrument means no filter.
func FilterByInstrument(results []Result, i Instrument) []Result {
	if i == "" {
		return append([]Result(nil), results...)
	}
	out := make([]Result, 0, len(results))
	for _, r := range results {
		if r.Instrument == i {
			out = append(out, r)
		}
	}
	return out
}

// LastN returns up to n results, most recent first. The sort is stable on
// timestamp descending, so equal timestamps keep their insertion order.
func LastN(results []Result, n int) []Result {
	sorted := append([]Result(nil), results...)
	sort.SliceStable(sorted, func(a, b int) bool {
		return sorted[a].Timestamp.After(sorted[b].Timestamp)
	})
	if n < 0 {
		n = 0
	}
	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}

// Latest returns the most recent result, if any.
func Latest(results []Result) (Result, bool) {
	top := LastN(results, 1)
	if len(top) == 0 {
		return Result{}, false
	}
	return top[0], true
}

// SeverityOverTime projects results onto trend points, oldest first.
func SeverityOverTime(results []Result) []TrendPoint {
	sorted := LastN(results, len(results))
	points := make([]TrendPoint, 0, len(sorted))
	for i := len(sorted) - 1; i >= 0; i-- {
		r := sorted[i]
		points = append(points, TrendPoint{
			Timestamp: r.Timestamp,
			Score:     r.Score,
			Severity:  r.Interpretation.SeverityLabel,
			Color:     r.Interpretation.Color,
		})
	}
	return points
}
