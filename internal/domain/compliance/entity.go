package compliance

// WarningKind classifies a working-time finding.
type WarningKind string

const (
	// KindRestPeriod flags a gap between consecutive shifts shorter than
	// the regulatory minimum.
	KindRestPeriod WarningKind = "rest_period"
)

// Warning is a derived compliance finding; nothing here is persisted.
type Warning struct {
	Kind      WarningKind `json:"kind"`
	StaffID   string      `json:"staff_id"`
	StaffName string      `json:"staff_name"`
	Message   string      `json:"message"`

	// Offending shift boundary labels, e.g. "2026-02-03 22:00".
	ShiftDate        string `json:"shift_date"`
	PreviousShiftEnd string `json:"previous_shift_end"`
	NextShiftStart   string `json:"next_shift_start"`

	// RestHours is the actual gap in whole hours.
	RestHours int `json:"rest_hours"`
}
