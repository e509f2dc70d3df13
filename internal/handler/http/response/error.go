package response

import (
	"errors"
	"net/http"

	"github.com/rotaworks/timeclock-backend-go/internal/domain/attendance"
	"github.com/rotaworks/timeclock-backend-go/internal/domain/noshow"
	"github.com/rotaworks/timeclock-backend-go/internal/domain/shift"
	"github.com/rotaworks/timeclock-backend-go/internal/domain/staff"
	"github.com/rotaworks/timeclock-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Attendance state machine errors
	case errors.Is(err, attendance.ErrAlreadyClockedIn):
		Conflict(w, "Staff member already has an open session")
	case errors.Is(err, attendance.ErrInvalidOverridePIN):
		Unauthorized(w, "Override PIN is incorrect")
	case errors.Is(err, attendance.ErrNotClockedIn):
		Conflict(w, "No active clocked-in session")
	case errors.Is(err, attendance.ErrBreakAlreadyTaken):
		Conflict(w, "Break has already been taken this session")
	case errors.Is(err, attendance.ErrNotOnBreak):
		Conflict(w, "Session is not on break")
	case errors.Is(err, attendance.ErrAlreadyClockedOut):
		Conflict(w, "Session is already clocked out")
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")

	// Staff directory errors
	case errors.Is(err, staff.ErrStaffNotFound):
		NotFound(w, "Staff member not found")
	case errors.Is(err, staff.ErrNoOverridePIN):
		BadRequest(w, "Manager has no override PIN configured", nil)

	// Shift errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")

	// No-show errors
	case errors.Is(err, noshow.ErrNoShowNotFound):
		NotFound(w, "No-show record not found")
	case errors.Is(err, noshow.ErrAlreadyResolved):
		Conflict(w, "No-show record is already resolved")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
