package shift

import "context"

type Repository interface {
	// ListByDate returns all shifts scheduled on a business date.
	ListByDate(ctx context.Context, date string) ([]Shift, error)

	// ListByDateRange returns all shifts between two business dates
	// inclusive, across all staff. Used by the compliance checker.
	ListByDateRange(ctx context.Context, from, to string) ([]Shift, error)

	GetByID(ctx context.Context, id string) (Shift, error)
}
