package compliance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rotaworks/timeclock-backend-go/internal/domain/compliance"
	"github.com/rotaworks/timeclock-backend-go/internal/domain/shift"
	"github.com/rotaworks/timeclock-backend-go/internal/domain/staff"
	"github.com/rotaworks/timeclock-backend-go/internal/pkg/timeutil"
)

func testShift(t *testing.T, staffID, date, start, end string) shift.Shift {
	t.Helper()
	startTime, err := timeutil.ParseLocalTime(start)
	require.NoError(t, err)
	endTime, err := timeutil.ParseLocalTime(end)
	require.NoError(t, err)
	return shift.Shift{
		ID:      staffID + "-" + date + "-" + start,
		StaffID: staffID,
		Date:    date,
		Start:   startTime,
		End:     endTime,
	}
}

func testProfiles() []staff.Profile {
	return []staff.Profile{
		{ID: "staff-1", FullName: "Priya Shah"},
		{ID: "staff-2", FullName: "Sam Okafor"},
	}
}

func TestCheckRestPeriodViolations_ExactMinimumIsCompliant(t *testing.T) {
	shifts := []shift.Shift{
		testShift(t, "staff-1", "2026-01-12", "12:00", "20:00"),
		testShift(t, "staff-1", "2026-01-13", "07:00", "15:00"),
	}

	warnings := CheckRestPeriodViolations(shifts, testProfiles(), 11)

	assert.Empty(t, warnings)
}

func TestCheckRestPeriodViolations_ShortGapFlagged(t *testing.T) {
	// 20:15 to 07:00 next day is 10h45m of rest, reported as 10 whole hours.
	shifts := []shift.Shift{
		testShift(t, "staff-1", "2026-01-12", "12:00", "20:15"),
		testShift(t, "staff-1", "2026-01-13", "07:00", "15:00"),
	}

	warnings := CheckRestPeriodViolations(shifts, testProfiles(), 11)

	require.Len(t, warnings, 1)
	w := warnings[0]
	assert.Equal(t, compliance.KindRestPeriod, w.Kind)
	assert.Equal(t, "staff-1", w.StaffID)
	assert.Equal(t, "Priya Shah", w.StaffName)
	assert.Equal(t, 10, w.RestHours)
	assert.Equal(t, "2026-01-13", w.ShiftDate)
	assert.Equal(t, "2026-01-12 20:15", w.PreviousShiftEnd)
	assert.Equal(t, "2026-01-13 07:00", w.NextShiftStart)
}

func TestCheckRestPeriodViolations_UnsortedInput(t *testing.T) {
	shifts := []shift.Shift{
		testShift(t, "staff-1", "2026-01-13", "07:00", "15:00"),
		testShift(t, "staff-1", "2026-01-12", "12:00", "22:00"),
	}

	warnings := CheckRestPeriodViolations(shifts, testProfiles(), 11)

	require.Len(t, warnings, 1)
	assert.Equal(t, 9, warnings[0].RestHours)
}

func TestCheckRestPeriodViolations_NoCrossStaffPairs(t *testing.T) {
	// Each staff member has a single shift; the short gap only exists when
	// the two lists are wrongly merged.
	shifts := []shift.Shift{
		testShift(t, "staff-1", "2026-01-12", "12:00", "22:00"),
		testShift(t, "staff-2", "2026-01-13", "06:00", "14:00"),
	}

	warnings := CheckRestPeriodViolations(shifts, testProfiles(), 11)

	assert.Empty(t, warnings)
}

func TestCheckRestPeriodViolations_SameDayDoubleShift(t *testing.T) {
	shifts := []shift.Shift{
		testShift(t, "staff-1", "2026-01-12", "18:00", "23:00"),
		testShift(t, "staff-1", "2026-01-12", "06:00", "14:00"),
	}

	warnings := CheckRestPeriodViolations(shifts, testProfiles(), 11)

	require.Len(t, warnings, 1)
	assert.Equal(t, 4, warnings[0].RestHours)
}

func TestCheckRestPeriodViolations_MultipleStaff(t *testing.T) {
	shifts := []shift.Shift{
		testShift(t, "staff-1", "2026-01-12", "12:00", "22:00"),
		testShift(t, "staff-1", "2026-01-13", "06:00", "14:00"),
		testShift(t, "staff-2", "2026-01-12", "14:00", "23:00"),
		testShift(t, "staff-2", "2026-01-13", "06:00", "14:00"),
	}

	warnings := CheckRestPeriodViolations(shifts, testProfiles(), 11)

	require.Len(t, warnings, 2)
	assert.Equal(t, "staff-1", warnings[0].StaffID)
	assert.Equal(t, "staff-2", warnings[1].StaffID)
}

func TestCheckRestPeriodViolations_NoShifts(t *testing.T) {
	assert.Empty(t, CheckRestPeriodViolations(nil, testProfiles(), 11))
}
