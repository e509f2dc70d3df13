package attendance

import (
	"time"

	"github.com/rotaworks/timeclock-backend-go/internal/pkg/timeutil"
)

// LatenessResult is the outcome of comparing a clock-in against the
// scheduled shift start.
type LatenessResult struct {
	IsLate       bool
	LateMinutes  int
	GraceApplied bool
}

// EvaluateLateness decides whether a clock-in was late. A missing or
// unparseable schedule means "not late"; absence of a schedule is a valid
// business state, not an error. LateMinutes is uncapped, so a clock-in
// logged hours after the start records the full deviation.
func EvaluateLateness(clockIn time.Time, scheduledStart, shiftDate string, graceMinutes int) LatenessResult {
	if scheduledStart == "" || shiftDate == "" {
		return LatenessResult{}
	}

	scheduled, err := timeutil.ParseShiftInstant(shiftDate, scheduledStart)
	if err != nil {
		return LatenessResult{}
	}

	diffMinutes := int(clockIn.Sub(scheduled).Milliseconds() / 60000)
	if diffMinutes <= graceMinutes {
		return LatenessResult{GraceApplied: diffMinutes > 0}
	}

	return LatenessResult{IsLate: true, LateMinutes: diffMinutes}
}

// IsNoShow reports whether a staff member who has not clocked in counts as
// a no-show: true once now is at least thresholdMinutes past the scheduled
// start. Monotonic in now. Missing inputs mean "no".
func IsNoShow(scheduledStart, shiftDate string, now time.Time, thresholdMinutes int) bool {
	if scheduledStart == "" || shiftDate == "" {
		return false
	}

	scheduled, err := timeutil.ParseShiftInstant(shiftDate, scheduledStart)
	if err != nil {
		return false
	}

	return now.Sub(scheduled) >= time.Duration(thresholdMinutes)*time.Minute
}
