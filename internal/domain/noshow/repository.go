package noshow

import "context"

type Repository interface {
	// ExistsForShift is the scanner's deduplication gate: true when a
	// record already exists for (shift id, shift date).
	ExistsForShift(ctx context.Context, shiftID, shiftDate string) (bool, error)

	Create(ctx context.Context, record Record) (Record, error)

	GetByID(ctx context.Context, id string) (Record, error)

	ListByDate(ctx context.Context, date string) ([]Record, error)

	// Resolve marks a record reviewed. The record stays on file.
	Resolve(ctx context.Context, id, resolvedBy string, notes *string) error
}
