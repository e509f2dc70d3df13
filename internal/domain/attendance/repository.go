package attendance

import "context"

// Repository defines data access for attendance records. The store enforces
// the single-open-session invariant with a partial unique index on
// (staff_id) WHERE status != 'clocked_out'.
type Repository interface {
	Create(ctx context.Context, record Record) (Record, error)

	GetByID(ctx context.Context, id string) (Record, error)

	// GetActiveByStaff returns the staff member's non-terminal record, or
	// nil when they have no open session.
	GetActiveByStaff(ctx context.Context, staffID string) (*Record, error)

	// Update persists a transition as a single write. Conflict resolution
	// is the caller's concern; the engine does not retry.
	Update(ctx context.Context, record Record) error

	// ListByDate returns every record whose business date matches,
	// regardless of status. Used by the no-show scanner.
	ListByDate(ctx context.Context, date string) ([]Record, error)

	// List returns records matching the filter, newest first.
	List(ctx context.Context, filter ListFilter) ([]Record, error)

	// ListCompletedByStaff returns clocked-out records for a staff member
	// between two business dates inclusive. Input to the pay calculator.
	ListCompletedByStaff(ctx context.Context, staffID, from, to string) ([]Record, error)
}
