package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/rotaworks/timeclock-backend-go/internal/domain/noshow"
	"github.com/rotaworks/timeclock-backend-go/internal/pkg/database"
)

type noShowRepository struct {
	db *database.DB
}

func NewNoShowRepository(db *database.DB) noshow.Repository {
	return &noShowRepository{db: db}
}

const noShowColumns = `
	n.id, n.staff_id, n.shift_id, n.shift_date, n.scheduled_start, n.detected_at,
	n.resolved, n.resolved_by, n.resolved_at, n.notes, st.full_name
`

func scanNoShow(row pgx.Row) (noshow.Record, error) {
	var rec noshow.Record
	err := row.Scan(
		&rec.ID, &rec.StaffID, &rec.ShiftID, &rec.ShiftDate, &rec.ScheduledStart, &rec.DetectedAt,
		&rec.Resolved, &rec.ResolvedBy, &rec.ResolvedAt, &rec.Notes, &rec.StaffName,
	)
	return rec, err
}

// ExistsForShift implements noshow.Repository.
func (r *noShowRepository) ExistsForShift(ctx context.Context, shiftID, shiftDate string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT EXISTS (SELECT 1 FROM no_show_records WHERE shift_id = $1 AND shift_date = $2)`

	var exists bool
	if err := q.QueryRow(ctx, query, shiftID, shiftDate).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check no-show existence: %w", err)
	}
	return exists, nil
}

// Create implements noshow.Repository.
func (r *noShowRepository) Create(ctx context.Context, record noshow.Record) (noshow.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO no_show_records (
			id, staff_id, shift_id, shift_date, scheduled_start, detected_at, resolved
		) VALUES (
			$1, $2, $3, $4, $5, $6, false
		)
	`

	_, err := q.Exec(ctx, query,
		record.ID,
		record.StaffID,
		record.ShiftID,
		record.ShiftDate,
		record.ScheduledStart,
		record.DetectedAt,
	)
	if err != nil {
		return noshow.Record{}, fmt.Errorf("failed to create no-show record: %w", err)
	}
	return record, nil
}

// GetByID implements noshow.Repository.
func (r *noShowRepository) GetByID(ctx context.Context, id string) (noshow.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + noShowColumns + `
		FROM no_show_records n
		JOIN staff st ON st.id = n.staff_id
		WHERE n.id = $1
	`

	record, err := scanNoShow(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return noshow.Record{}, noshow.ErrNoShowNotFound
		}
		return noshow.Record{}, fmt.Errorf("failed to get no-show record: %w", err)
	}
	return record, nil
}

// ListByDate implements noshow.Repository.
func (r *noShowRepository) ListByDate(ctx context.Context, date string) ([]noshow.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + noShowColumns + `
		FROM no_show_records n
		JOIN staff st ON st.id = n.staff_id
		WHERE n.shift_date = $1
		ORDER BY n.detected_at
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list no-show records: %w", err)
	}
	defer rows.Close()

	var records []noshow.Record
	for rows.Next() {
		record, err := scanNoShow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan no-show record: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// Resolve implements noshow.Repository.
func (r *noShowRepository) Resolve(ctx context.Context, id, resolvedBy string, notes *string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE no_show_records
		SET resolved = true, resolved_by = $2, resolved_at = NOW(), notes = $3
		WHERE id = $1 AND NOT resolved
	`

	tag, err := q.Exec(ctx, query, id, resolvedBy, notes)
	if err != nil {
		return fmt.Errorf("failed to resolve no-show record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		// Either missing or already resolved; disambiguate for the caller.
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return noshow.ErrAlreadyResolved
	}
	return nil
}
