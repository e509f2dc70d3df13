package attendance

import (
	"time"
)

// Status is the attendance state machine state. clocked_out is terminal; a
// new clock-in opens a fresh record rather than reviving a closed one.
type Status string

const (
	StatusClockedIn  Status = "clocked_in"
	StatusOnBreak    Status = "on_break"
	StatusClockedOut Status = "clocked_out"
)

var StatusValues = []string{
	string(StatusClockedIn),
	string(StatusOnBreak),
	string(StatusClockedOut),
}

// Record is one clock-in/clock-out session. At most one non-terminal record
// exists per staff member at any time; the store enforces that uniqueness.
// Records are never deleted, only superseded by a new record after clock-out.
type Record struct {
	ID         string
	StaffID    string
	ClockIn    time.Time
	BreakStart *time.Time
	BreakEnd   *time.Time
	ClockOut   *time.Time
	Status     Status

	// Snapshot of the schedule the lateness decision was made against, kept
	// so the record is auditable after a reschedule.
	ScheduledStart *string
	ShiftDate      *string

	IsLate      bool
	LateMinutes int

	// Override metadata when a manager authorized the clock-in.
	OverrideBy      *string
	OverridePinUsed bool

	// Confidence reported by the face-matching service, when used.
	FaceConfidence *float64

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined for display
	StaffName *string
}

// Terminal reports whether the record has reached its final state.
func (r Record) Terminal() bool {
	return r.Status == StatusClockedOut
}

// QuickActions is the set of transitions currently allowed for a staff
// member, derived from their active record. Front-ends render buttons
// directly from this.
type QuickActions struct {
	CanClockIn    bool `json:"can_clock_in"`
	CanStartBreak bool `json:"can_start_break"`
	CanEndBreak   bool `json:"can_end_break"`
	CanClockOut   bool `json:"can_clock_out"`
}

// DeriveQuickActions computes the allowed transitions. active is nil when
// the staff member has no open session.
func DeriveQuickActions(active *Record) QuickActions {
	if active == nil || active.Status == StatusClockedOut {
		return QuickActions{CanClockIn: true}
	}

	qa := QuickActions{CanClockOut: true}
	switch active.Status {
	case StatusClockedIn:
		qa.CanStartBreak = active.BreakStart == nil
	case StatusOnBreak:
		qa.CanEndBreak = true
	}
	return qa
}
