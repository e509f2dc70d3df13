package noshow

import "time"

// Record marks a scheduled staff member who never clocked in. At most one
// record exists per (shift id, shift date); the scanner treats an existing
// record as the deduplication gate. Records are resolved, never deleted.
type Record struct {
	ID             string
	StaffID        string
	ShiftID        string
	ShiftDate      string // YYYY-MM-DD
	ScheduledStart string // HH:MM snapshot at detection time
	DetectedAt     time.Time
	Resolved       bool
	ResolvedBy     *string
	ResolvedAt     *time.Time
	Notes          *string

	// Joined for display
	StaffName *string
}
