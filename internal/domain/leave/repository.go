package leave

import (
	"context"

	"github.com/shopspring/decimal"
)

type Repository interface {
	GetByStaffYear(ctx context.Context, staffID string, year int) (Balance, error)

	// AddAccrued credits holiday hours accrued from worked pay.
	AddAccrued(ctx context.Context, staffID string, year int, hours decimal.Decimal) error
}
