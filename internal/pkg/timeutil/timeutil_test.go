package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLocalTime(t *testing.T) {
	cases := []struct {
		input   string
		want    LocalTime
		wantErr bool
	}{
		{"09:00", LocalTime{9, 0}, false},
		{"23:59", LocalTime{23, 59}, false},
		{"07:30:00", LocalTime{7, 30}, false},
		{"00:00", LocalTime{0, 0}, false},
		{"24:00", LocalTime{}, true},
		{"09:60", LocalTime{}, true},
		{"nine", LocalTime{}, true},
		{"", LocalTime{}, true},
	}
	for _, c := range cases {
		got, err := ParseLocalTime(c.input)
		if c.wantErr {
			assert.Error(t, err, "input %q", c.input)
			continue
		}
		require.NoError(t, err, "input %q", c.input)
		assert.Equal(t, c.want, got)
	}
}

func TestLocalTimeString(t *testing.T) {
	assert.Equal(t, "09:05", LocalTime{9, 5}.String())
	assert.Equal(t, "17:00", LocalTime{17, 0}.String())
}

func TestLastSunday(t *testing.T) {
	// 2026: last Sunday of March is the 29th, of October the 25th.
	assert.Equal(t, 29, lastSunday(2026, time.March))
	assert.Equal(t, 25, lastSunday(2026, time.October))
	// 2025: March 30th, October 26th.
	assert.Equal(t, 30, lastSunday(2025, time.March))
	assert.Equal(t, 26, lastSunday(2025, time.October))
}

func TestSummerTimeWindow(t *testing.T) {
	cases := []struct {
		year  int
		month time.Month
		day   int
		want  bool
	}{
		{2026, time.January, 15, false},
		{2026, time.March, 28, false}, // day before transition
		{2026, time.March, 29, true},  // transition day
		{2026, time.July, 1, true},
		{2026, time.October, 24, true},  // day before transition back
		{2026, time.October, 25, false}, // transition day
		{2026, time.December, 25, false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, summerTime(c.year, c.month, c.day),
			"%d-%02d-%02d", c.year, c.month, c.day)
	}
}

func TestShiftInstant(t *testing.T) {
	// Winter: civil time equals UTC.
	got, err := ShiftInstant("2026-01-12", LocalTime{9, 0})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.January, 12, 9, 0, 0, 0, time.UTC), got)

	// Summer: civil 09:00 is 08:00 UTC.
	got, err = ShiftInstant("2026-06-12", LocalTime{9, 0})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.June, 12, 8, 0, 0, 0, time.UTC), got)

	_, err = ShiftInstant("12/06/2026", LocalTime{9, 0})
	assert.Error(t, err)
}

func TestParseShiftInstant(t *testing.T) {
	got, err := ParseShiftInstant("2026-11-02", "22:15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.November, 2, 22, 15, 0, 0, time.UTC), got)

	_, err = ParseShiftInstant("2026-11-02", "late")
	assert.Error(t, err)
}

func TestToLocalRoundTrip(t *testing.T) {
	// 08:00 UTC on a summer date reads as 09:00 local.
	utc := time.Date(2026, time.June, 12, 8, 0, 0, 0, time.UTC)
	local := ToLocal(utc)
	assert.Equal(t, 9, local.Hour())
	assert.Equal(t, "2026-06-12", local.Format(DateLayout))

	// Winter instants pass through unchanged.
	utc = time.Date(2026, time.January, 12, 8, 0, 0, 0, time.UTC)
	assert.Equal(t, 8, ToLocal(utc).Hour())
}

func TestLocalTimeMinutes(t *testing.T) {
	assert.Equal(t, 0, LocalTime{0, 0}.Minutes())
	assert.Equal(t, 570, LocalTime{9, 30}.Minutes())
	assert.True(t, LocalTime{7, 0}.Minutes() < LocalTime{15, 0}.Minutes())
}
