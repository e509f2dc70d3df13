package attendance

import (
	"github.com/rotaworks/timeclock-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type ClockInRequest struct {
	StaffID        string   `json:"staff_id"`
	FaceConfidence *float64 `json:"face_confidence,omitempty"`

	// Manager override of a failed face match.
	OverrideBy  *string `json:"override_by,omitempty"`
	OverridePIN *string `json:"override_pin,omitempty"`

	// Schedule snapshot for lateness evaluation. Absent schedule is a valid
	// business state, not an error: the clock-in simply isn't late.
	ScheduledStart *string `json:"scheduled_start,omitempty"`
	ShiftDate      *string `json:"shift_date,omitempty"`
	GraceMinutes   *int    `json:"grace_minutes,omitempty"`
}

func (r *ClockInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StaffID) {
		errs = append(errs, validator.ValidationError{
			Field:   "staff_id",
			Message: "staff_id is required",
		})
	}

	if r.FaceConfidence != nil && (*r.FaceConfidence < 0 || *r.FaceConfidence > 1) {
		errs = append(errs, validator.ValidationError{
			Field:   "face_confidence",
			Message: "face_confidence must be between 0 and 1",
		})
	}

	if r.OverrideBy != nil && validator.IsEmpty(*r.OverrideBy) {
		errs = append(errs, validator.ValidationError{
			Field:   "override_by",
			Message: "override_by must not be blank when present",
		})
	}

	if r.OverridePIN != nil && !validator.IsValidOverridePIN(*r.OverridePIN) {
		errs = append(errs, validator.ValidationError{
			Field:   "override_pin",
			Message: "override_pin must be 4-8 digits",
		})
	}

	if r.ScheduledStart != nil && !validator.IsValidClockTime(*r.ScheduledStart) {
		errs = append(errs, validator.ValidationError{
			Field:   "scheduled_start",
			Message: "scheduled_start must be HH:MM",
		})
	}

	if r.ShiftDate != nil {
		if _, ok := validator.IsValidDate(*r.ShiftDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "shift_date",
				Message: "shift_date must be YYYY-MM-DD",
			})
		}
	}

	if r.GraceMinutes != nil && *r.GraceMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "grace_minutes",
			Message: "grace_minutes must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RecordResponse struct {
	ID              string   `json:"id"`
	StaffID         string   `json:"staff_id"`
	StaffName       string   `json:"staff_name,omitempty"`
	ClockInTime     string   `json:"clock_in_time"`
	BreakStartTime  *string  `json:"break_start_time,omitempty"`
	BreakEndTime    *string  `json:"break_end_time,omitempty"`
	ClockOutTime    *string  `json:"clock_out_time,omitempty"`
	Status          string   `json:"status"`
	ScheduledStart  *string  `json:"scheduled_start,omitempty"`
	ShiftDate       *string  `json:"shift_date,omitempty"`
	IsLate          bool     `json:"is_late"`
	LateMinutes     int      `json:"late_minutes"`
	OverrideBy      *string  `json:"override_by,omitempty"`
	OverridePinUsed bool     `json:"override_pin_used,omitempty"`
	FaceConfidence  *float64 `json:"face_confidence,omitempty"`
}

type ListFilter struct {
	Date    *string
	StaffID *string
	Status  *string
}

func (f *ListFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Date != nil {
		if _, ok := validator.IsValidDate(*f.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be YYYY-MM-DD",
			})
		}
	}

	if f.Status != nil && !validator.IsInSlice(*f.Status, StatusValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of clocked_in, on_break, clocked_out",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
