// Package timeutil provides the business-timezone clock used by every
// temporal calculation in the engine. All scheduling data (shift dates and
// times-of-day) is expressed in a single civil timezone; this package
// converts between that civil time and absolute instants so that lateness
// and no-show comparisons are correct regardless of where the server runs.
//
// The reference zone observes summer time from the last Sunday of March to
// the last Sunday of October (+1h inside that window, +0h otherwise). The
// rule is applied directly rather than through the system tzdata so that
// results are identical on minimal containers without a zoneinfo database.
package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// DateLayout is the canonical business date format.
	DateLayout = "2006-01-02"

	baseOffsetSeconds   = 0
	summerOffsetSeconds = 3600
)

// LocalTime is a parsed time-of-day in the business timezone.
// Scheduling strings ("HH:MM" or "HH:MM:SS") are parsed into LocalTime once
// at the data-model edge; calculations never re-parse strings.
type LocalTime struct {
	Hour   int
	Minute int
}

// ParseLocalTime parses "HH:MM" or "HH:MM:SS". Seconds are discarded.
func ParseLocalTime(s string) (LocalTime, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return LocalTime{}, fmt.Errorf("invalid time of day %q", s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return LocalTime{}, fmt.Errorf("invalid hour in %q", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return LocalTime{}, fmt.Errorf("invalid minute in %q", s)
	}

	return LocalTime{Hour: hour, Minute: minute}, nil
}

// String renders the time as "HH:MM".
func (lt LocalTime) String() string {
	return fmt.Sprintf("%02d:%02d", lt.Hour, lt.Minute)
}

// IsZero reports whether lt is the zero value (midnight is a valid
// scheduling time, so callers that need "unset" should use a pointer).
func (lt LocalTime) IsZero() bool {
	return lt.Hour == 0 && lt.Minute == 0
}

// Minutes returns the time-of-day as minutes since midnight, used for
// chronological ordering of same-day shifts.
func (lt LocalTime) Minutes() int {
	return lt.Hour*60 + lt.Minute
}

// lastSunday returns the day of month of the last Sunday in the given month.
func lastSunday(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this month.
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC)
	return last.Day() - int(last.Weekday())
}

// summerTime reports whether the given civil date/time falls inside the
// summer-time window: from the last Sunday of March (inclusive) to the last
// Sunday of October (exclusive).
func summerTime(year int, month time.Month, day int) bool {
	switch {
	case month < time.March || month > time.October:
		return false
	case month > time.March && month < time.October:
		return true
	case month == time.March:
		return day >= lastSunday(year, time.March)
	default: // October
		return day < lastSunday(year, time.October)
	}
}

// offsetSeconds returns the UTC offset of the business zone for the given
// civil date.
func offsetSeconds(year int, month time.Month, day int) int {
	if summerTime(year, month, day) {
		return baseOffsetSeconds + summerOffsetSeconds
	}
	return baseOffsetSeconds
}

// Now returns the current instant in UTC. All stored timestamps are UTC.
func Now() time.Time {
	return time.Now().UTC()
}

// NowLocal returns the current wall-clock time in the business zone.
func NowLocal() time.Time {
	return ToLocal(Now())
}

// Today returns the current business date as "YYYY-MM-DD". Staff and server
// may sit in different zones; the business date is always derived from the
// reference zone.
func Today() string {
	return NowLocal().Format(DateLayout)
}

// ToLocal converts an absolute instant to business-zone wall-clock time.
func ToLocal(t time.Time) time.Time {
	utc := t.UTC()
	// The offset depends on the civil date, which itself depends on the
	// offset. Resolve with the base offset first, then re-check: the two
	// disagree only within an hour of the transition instant, where applying
	// the summer offset is the documented behaviour of the reference zone.
	y, m, d := utc.Date()
	off := offsetSeconds(y, m, d)
	shifted := utc.Add(time.Duration(off) * time.Second)
	y2, m2, d2 := shifted.Date()
	if off2 := offsetSeconds(y2, m2, d2); off2 != off {
		shifted = utc.Add(time.Duration(off2) * time.Second)
	}
	return time.Date(shifted.Year(), shifted.Month(), shifted.Day(),
		shifted.Hour(), shifted.Minute(), shifted.Second(), shifted.Nanosecond(),
		time.FixedZone("business", off))
}

// ShiftInstant converts a (business date, local time-of-day) pair into the
// absolute UTC instant it denotes.
func ShiftInstant(date string, lt LocalTime) (time.Time, error) {
	d, err := time.Parse(DateLayout, strings.TrimSpace(date))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid shift date %q: %w", date, err)
	}

	off := offsetSeconds(d.Year(), d.Month(), d.Day())
	civil := time.Date(d.Year(), d.Month(), d.Day(), lt.Hour, lt.Minute, 0, 0, time.UTC)
	return civil.Add(-time.Duration(off) * time.Second), nil
}

// ParseShiftInstant is ShiftInstant over an unparsed time-of-day string.
func ParseShiftInstant(date, timeOfDay string) (time.Time, error) {
	lt, err := ParseLocalTime(timeOfDay)
	if err != nil {
		return time.Time{}, err
	}
	return ShiftInstant(date, lt)
}
