package staff

import "context"

// Repository defines read access to the external staff directory. Profiles
// are owned elsewhere; this engine only consumes the fields that drive pay,
// tax and override checks.
type Repository interface {
	GetByID(ctx context.Context, id string) (Profile, error)

	// ListActive returns every staff member currently on the roster.
	ListActive(ctx context.Context) ([]Profile, error)

	// GetOverridePINHash returns the bcrypt hash of a manager's override
	// PIN, or ErrNoOverridePIN when none is configured.
	GetOverridePINHash(ctx context.Context, id string) (string, error)

	// ListManagers returns staff who receive no-show notifications.
	ListManagers(ctx context.Context) ([]Profile, error)
}
