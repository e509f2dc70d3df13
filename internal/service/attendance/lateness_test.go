package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// Winter date, so local business time equals UTC and instants are easy to
// reason about in the assertions.
const testShiftDate = "2026-01-15"

func shiftTime(t *testing.T, hhmm string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, testShiftDate+"T"+hhmm+":00Z")
	if err != nil {
		t.Fatalf("bad test time %s: %v", hhmm, err)
	}
	return parsed
}

func TestEvaluateLateness_OnTime(t *testing.T) {
	result := EvaluateLateness(shiftTime(t, "09:00"), "09:00", testShiftDate, 5)

	assert.False(t, result.IsLate)
	assert.Equal(t, 0, result.LateMinutes)
	assert.False(t, result.GraceApplied)
}

func TestEvaluateLateness_Early(t *testing.T) {
	result := EvaluateLateness(shiftTime(t, "08:45"), "09:00", testShiftDate, 5)

	assert.False(t, result.IsLate)
	assert.Equal(t, 0, result.LateMinutes)
}

func TestEvaluateLateness_WithinGrace(t *testing.T) {
	// Exactly at the grace boundary is still on time.
	result := EvaluateLateness(shiftTime(t, "09:05"), "09:00", testShiftDate, 5)

	assert.False(t, result.IsLate)
	assert.Equal(t, 0, result.LateMinutes)
	assert.True(t, result.GraceApplied)
}

func TestEvaluateLateness_OneMinutePastGrace(t *testing.T) {
	result := EvaluateLateness(shiftTime(t, "09:06"), "09:00", testShiftDate, 5)

	assert.True(t, result.IsLate)
	// Late minutes count from the scheduled start, not from the grace edge.
	assert.Equal(t, 6, result.LateMinutes)
}

func TestEvaluateLateness_VeryLate(t *testing.T) {
	result := EvaluateLateness(shiftTime(t, "11:30"), "09:00", testShiftDate, 5)

	assert.True(t, result.IsLate)
	assert.Equal(t, 150, result.LateMinutes)
}

func TestEvaluateLateness_ZeroGrace(t *testing.T) {
	onTime := EvaluateLateness(shiftTime(t, "09:00"), "09:00", testShiftDate, 0)
	assert.False(t, onTime.IsLate)

	late := EvaluateLateness(shiftTime(t, "09:01"), "09:00", testShiftDate, 0)
	assert.True(t, late.IsLate)
	assert.Equal(t, 1, late.LateMinutes)
}

func TestEvaluateLateness_NoSchedule(t *testing.T) {
	result := EvaluateLateness(shiftTime(t, "13:00"), "", "", 5)

	assert.False(t, result.IsLate)
	assert.Equal(t, 0, result.LateMinutes)
}

func TestEvaluateLateness_UnparseableSchedule(t *testing.T) {
	result := EvaluateLateness(shiftTime(t, "13:00"), "9am", testShiftDate, 5)

	assert.False(t, result.IsLate)
}

func TestIsNoShow(t *testing.T) {
	tests := []struct {
		name      string
		now       string
		threshold int
		want      bool
	}{
		{"before start", "08:45", 30, false},
		{"at start", "09:00", 30, false},
		{"under threshold", "09:29", 30, false},
		{"at threshold", "09:30", 30, true},
		{"past threshold", "10:15", 30, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsNoShow("09:00", testShiftDate, shiftTime(t, tt.now), tt.threshold)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsNoShow_NoSchedule(t *testing.T) {
	assert.False(t, IsNoShow("", testShiftDate, shiftTime(t, "12:00"), 30))
	assert.False(t, IsNoShow("09:00", "", shiftTime(t, "12:00"), 30))
}
