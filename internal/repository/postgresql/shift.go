package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/rotaworks/timeclock-backend-go/internal/domain/shift"
	"github.com/rotaworks/timeclock-backend-go/internal/pkg/database"
	"github.com/rotaworks/timeclock-backend-go/internal/pkg/timeutil"
)

type shiftRepository struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.Repository {
	return &shiftRepository{db: db}
}

const shiftColumns = `
	s.id, s.staff_id, s.shift_date, s.kind, s.start_time, s.end_time, st.full_name
`

func scanShift(row pgx.Row) (shift.Shift, error) {
	var sh shift.Shift
	var start, end string

	err := row.Scan(&sh.ID, &sh.StaffID, &sh.Date, &sh.Kind, &start, &end, &sh.StaffName)
	if err != nil {
		return shift.Shift{}, err
	}

	if sh.Start, err = timeutil.ParseLocalTime(start); err != nil {
		return shift.Shift{}, fmt.Errorf("bad start time %q: %w", start, err)
	}
	if sh.End, err = timeutil.ParseLocalTime(end); err != nil {
		return shift.Shift{}, fmt.Errorf("bad end time %q: %w", end, err)
	}
	return sh, nil
}

// ListByDate implements shift.Repository.
func (r *shiftRepository) ListByDate(ctx context.Context, date string) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftColumns + `
		FROM shifts s
		JOIN staff st ON st.id = s.staff_id
		WHERE s.shift_date = $1
		ORDER BY s.start_time, st.full_name
	`

	return r.queryShifts(ctx, q, query, date)
}

// ListByDateRange implements shift.Repository.
func (r *shiftRepository) ListByDateRange(ctx context.Context, from, to string) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftColumns + `
		FROM shifts s
		JOIN staff st ON st.id = s.staff_id
		WHERE s.shift_date BETWEEN $1 AND $2
		ORDER BY s.staff_id, s.shift_date, s.start_time
	`

	return r.queryShifts(ctx, q, query, from, to)
}

// GetByID implements shift.Repository.
func (r *shiftRepository) GetByID(ctx context.Context, id string) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftColumns + `
		FROM shifts s
		JOIN staff st ON st.id = s.staff_id
		WHERE s.id = $1
	`

	sh, err := scanShift(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return shift.Shift{}, shift.ErrShiftNotFound
		}
		return shift.Shift{}, fmt.Errorf("failed to get shift: %w", err)
	}
	return sh, nil
}

func (r *shiftRepository) queryShifts(ctx context.Context, q database.Querier, query string, args ...any) ([]shift.Shift, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	defer rows.Close()

	var shifts []shift.Shift
	for rows.Next() {
		sh, err := scanShift(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts = append(shifts, sh)
	}
	return shifts, rows.Err()
}
