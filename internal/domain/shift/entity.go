package shift

import (
	"time"

	"github.com/rotaworks/timeclock-backend-go/internal/pkg/timeutil"
)

type Kind string

const (
	KindMorning Kind = "morning"
	KindEvening Kind = "evening"
	KindNight   Kind = "night"
)

// Shift is a published rota entry. Immutable once created except by an
// explicit reschedule, which is handled outside this engine.
type Shift struct {
	ID      string
	StaffID string
	Date    string // business date, YYYY-MM-DD
	Kind    Kind
	Start   timeutil.LocalTime
	End     timeutil.LocalTime

	// Joined for display
	StaffName *string
}

// StartInstant returns the absolute instant the shift is scheduled to begin.
func (s Shift) StartInstant() (time.Time, error) {
	return timeutil.ShiftInstant(s.Date, s.Start)
}

// EndInstant returns the absolute instant the shift is scheduled to end.
func (s Shift) EndInstant() (time.Time, error) {
	return timeutil.ShiftInstant(s.Date, s.End)
}
