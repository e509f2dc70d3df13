package compliance

import "context"

type Service interface {
	// CheckRange scans the published rota between two business dates
	// inclusive and returns every working-time warning found.
	CheckRange(ctx context.Context, from, to string) ([]Warning, error)
}
