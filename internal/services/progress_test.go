package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAggregateProgress(t *testing.T) {
	allCourses := map[uint]struct{}{1: {}, 2: {}, 3: {}}

	tests := []struct {
		name          string
		progress      map[string]interface{}
		existing      map[uint]struct{}
		wantAverage   float64
		wantCompleted []uint
	}{
		{
			name:          "empty map",
			progress:      map[string]interface{}{},
			existing:      allCourses,
			wantAverage:   0,
			wantCompleted: nil,
		},
		{
			name:          "nil map",
			progress:      nil,
			existing:      allCourses,
			wantAverage:   0,
			wantCompleted: nil,
		},
		{
			name:          "malformed value skipped",
			progress:      map[string]interface{}{"1": float64(50), "2": float64(100), "3": "bad"},
			existing:      allCourses,
			wantAverage:   75.0,
			wantCompleted: []uint{2},
		},
		{
			name:          "numeric string accepted",
			progress:      map[string]interface{}{"1": "25.5", "2": float64(74.5)},
			existing:      allCourses,
			wantAverage:   50.0,
			wantCompleted: nil,
		},
		{
			name:          "non-numeric key skipped",
			progress:      map[string]interface{}{"abc": float64(90), "1": float64(40)},
			existing:      allCourses,
			wantAverage:   40.0,
			wantCompleted: nil,
		},
		{
			name:          "deleted course skipped",
			progress:      map[string]interface{}{"1": float64(60), "99": float64(100)},
			existing:      allCourses,
			wantAverage:   60.0,
			wantCompleted: nil,
		},
		{
			name:          "completed sorted ascending",
			progress:      map[string]interface{}{"3": float64(100), "1": float64(120), "2": float64(99.9)},
			existing:      allCourses,
			wantAverage:   106.63,
			wantCompleted: []uint{1, 3},
		},
		{
			name:          "average rounded to two decimals",
			progress:      map[string]interface{}{"1": float64(33), "2": float64(33), "3": float64(34)},
			existing:      allCourses,
			wantAverage:   33.33,
			wantCompleted: nil,
		},
		{
			name:          "everything skipped yields zero",
			progress:      map[string]interface{}{"x": "y", "99": float64(50)},
			existing:      allCourses,
			wantAverage:   0,
			wantCompleted: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AggregateProgress(tt.progress, tt.existing)
			assert.Equal(t, tt.wantAverage, got.Average)
			if tt.wantCompleted == nil {
				assert.Empty(t, got.Completed)
			} else {
				assert.Equal(t, tt.wantCompleted, got.Completed)
			}
		})
	}
}

func TestToPercent(t *testing.T) {
	tests := []struct {
		name   string
		raw    interface{}
		want   float64
		wantOK bool
	}{
		{"float", float64(42.5), 42.5, true},
		{"int", 80, 80, true},
		{"numeric string", "99", 99, true},
		{"garbage string", "done", 0, false},
		{"nil", nil, 0, false},
		{"bool", true, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := toPercent(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProgressCourseIDs(t *testing.T) {
	ids := progressCourseIDs(map[string]interface{}{
		"1":   float64(10),
		"2":   "bad",
		"abc": float64(30),
	})
	assert.ElementsMatch(t, []uint{1, 2}, ids)
}
