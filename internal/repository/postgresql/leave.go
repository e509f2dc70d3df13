package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/rotaworks/timeclock-backend-go/internal/domain/leave"
	"github.com/rotaworks/timeclock-backend-go/internal/pkg/database"
)

type leaveRepository struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.Repository {
	return &leaveRepository{db: db}
}

// GetByStaffYear implements leave.Repository.
func (r *leaveRepository) GetByStaffYear(ctx context.Context, staffID string, year int) (leave.Balance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT staff_id, year, entitlement_hours, accrued_hours, used_hours
		FROM leave_balances
		WHERE staff_id = $1 AND year = $2
	`

	var b leave.Balance
	err := q.QueryRow(ctx, query, staffID, year).Scan(
		&b.StaffID, &b.Year, &b.EntitlementHours, &b.AccruedHours, &b.UsedHours,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			// A missing row is an empty ledger, not an error.
			return leave.Balance{StaffID: staffID, Year: year}, nil
		}
		return leave.Balance{}, fmt.Errorf("failed to get leave balance: %w", err)
	}
	return b, nil
}

// AddAccrued implements leave.Repository.
func (r *leaveRepository) AddAccrued(ctx context.Context, staffID string, year int, hours decimal.Decimal) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_balances (staff_id, year, entitlement_hours, accrued_hours, used_hours)
		VALUES ($1, $2, 0, $3, 0)
		ON CONFLICT (staff_id, year)
		DO UPDATE SET accrued_hours = leave_balances.accrued_hours + EXCLUDED.accrued_hours
	`

	if _, err := q.Exec(ctx, query, staffID, year, hours); err != nil {
		return fmt.Errorf("failed to credit accrued hours: %w", err)
	}
	return nil
}
