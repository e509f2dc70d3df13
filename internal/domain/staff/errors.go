package staff

import "errors"

// Staff domain errors
var (
	ErrStaffNotFound   = errors.New("staff member not found")
	ErrNoOverridePIN   = errors.New("staff member has no override PIN configured")
	ErrInvalidRate     = errors.New("hourly rate must not be negative")
	ErrUnknownContract = errors.New("unknown contract type")
)
