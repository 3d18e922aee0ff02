package services

import (
	"encoding/json"
	"math"
	"sort"
	"strconv"
)

// ProgressSummary is the aggregate view of a student's per-course progress.
type ProgressSummary struct {
	Average   float64 `json:"average"`
	Completed []uint  `json:"completed"`
}

// AggregateProgress folds a student's raw progress map into an average and
// the list of completed course IDs (ascending). The map is free-form state:
// keys that do not parse as course IDs, IDs absent from existing, and values
// that are not numeric are skipped rather than failing the aggregation.
// A course counts as completed at 100 percent or above. The average is
// rounded to two decimals; an empty or fully-skipped map yields zero.
func AggregateProgress(progress map[string]interface{}, existing map[uint]struct{}) ProgressSummary {
	var (
		sum       float64
		count     int
		completed []uint
	)

	for key, raw := range progress {
		id, err := strconv.ParseUint(key, 10, 64)
		if err != nil {
			continue
		}
		courseID := uint(id)
		if _, ok := existing[courseID]; !ok {
			continue
		}

		percent, ok := toPercent(raw)
		if !ok {
			continue
		}

		sum += percent
		count++
		if percent >= 100 {
			completed = append(completed, courseID)
		}
	}

	summary := ProgressSummary{Completed: completed}
	if count > 0 {
		summary.Average = math.Round(sum/float64(count)*100) / 100
	}
	sort.Slice(summary.Completed, func(i, j int) bool {
		return summary.Completed[i] < summary.Completed[j]
	})
	return summary
}

// toPercent coerces the JSON value forms a progress entry can take.
func toPercent(raw interface{}) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
