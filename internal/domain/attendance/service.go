package attendance

import "context"

// Service is the attendance state machine exposed to handlers. Each
// transition is a single read-modify-write against the store; precondition
// violations come back as the sentinel errors in errors.go.
type Service interface {
	ClockIn(ctx context.Context, req ClockInRequest) (RecordResponse, error)
	StartBreak(ctx context.Context, recordID string) (RecordResponse, error)
	EndBreak(ctx context.Context, recordID string) (RecordResponse, error)
	ClockOut(ctx context.Context, recordID string) (RecordResponse, error)

	// QuickActions derives the allowed transitions for a staff member.
	QuickActions(ctx context.Context, staffID string) (QuickActions, error)

	List(ctx context.Context, filter ListFilter) ([]RecordResponse, error)
}
