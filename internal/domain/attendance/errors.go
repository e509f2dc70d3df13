package attendance

import "errors"

// Attendance domain errors. Every precondition violation maps to its own
// sentinel so callers can tell the user exactly what was wrong.
var (
	// Clock-in errors
	ErrAlreadyClockedIn   = errors.New("staff member already has an open session")
	ErrInvalidOverridePIN = errors.New("manager override PIN is incorrect")

	// Break errors
	ErrNotClockedIn      = errors.New("no active clocked-in session")
	ErrBreakAlreadyTaken = errors.New("break has already been taken this session")
	ErrNotOnBreak        = errors.New("session is not on break")

	// Clock-out errors
	ErrAlreadyClockedOut = errors.New("session is already clocked out")

	// General errors
	ErrRecordNotFound = errors.New("attendance record not found")
)
