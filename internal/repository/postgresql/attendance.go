package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/rotaworks/timeclock-backend-go/internal/domain/attendance"
	"github.com/rotaworks/timeclock-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	a.id, a.staff_id, a.clock_in, a.break_start, a.break_end, a.clock_out,
	a.status, a.scheduled_start, a.shift_date, a.is_late, a.late_minutes,
	a.override_by, a.override_pin_used, a.face_confidence,
	a.created_at, a.updated_at, st.full_name
`

func scanAttendance(row pgx.Row) (attendance.Record, error) {
	var rec attendance.Record
	err := row.Scan(
		&rec.ID, &rec.StaffID, &rec.ClockIn, &rec.BreakStart, &rec.BreakEnd, &rec.ClockOut,
		&rec.Status, &rec.ScheduledStart, &rec.ShiftDate, &rec.IsLate, &rec.LateMinutes,
		&rec.OverrideBy, &rec.OverridePinUsed, &rec.FaceConfidence,
		&rec.CreatedAt, &rec.UpdatedAt, &rec.StaffName,
	)
	return rec, err
}

// Create implements attendance.Repository.
func (r *attendanceRepository) Create(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_records (
			id, staff_id, clock_in, status, scheduled_start, shift_date,
			is_late, late_minutes, override_by, override_pin_used, face_confidence
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		record.ID,
		record.StaffID,
		record.ClockIn,
		record.Status,
		record.ScheduledStart,
		record.ShiftDate,
		record.IsLate,
		record.LateMinutes,
		record.OverrideBy,
		record.OverridePinUsed,
		record.FaceConfidence,
	).Scan(&record.CreatedAt, &record.UpdatedAt)

	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to create attendance record: %w", err)
	}
	return record, nil
}

// GetByID implements attendance.Repository.
func (r *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records a
		JOIN staff st ON st.id = a.staff_id
		WHERE a.id = $1
	`

	record, err := scanAttendance(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Record{}, attendance.ErrRecordNotFound
		}
		return attendance.Record{}, fmt.Errorf("failed to get attendance record: %w", err)
	}
	return record, nil
}

// GetActiveByStaff implements attendance.Repository.
func (r *attendanceRepository) GetActiveByStaff(ctx context.Context, staffID string) (*attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records a
		JOIN staff st ON st.id = a.staff_id
		WHERE a.staff_id = $1
		  AND a.status != 'clocked_out'
		ORDER BY a.clock_in DESC
		LIMIT 1
	`

	record, err := scanAttendance(q.QueryRow(ctx, query, staffID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get open session: %w", err)
	}
	return &record, nil
}

// Update implements attendance.Repository.
func (r *attendanceRepository) Update(ctx context.Context, record attendance.Record) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_records
		SET break_start = $2, break_end = $3, clock_out = $4, status = $5, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		record.ID,
		record.BreakStart,
		record.BreakEnd,
		record.ClockOut,
		record.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrRecordNotFound
	}
	return nil
}

// ListByDate implements attendance.Repository.
func (r *attendanceRepository) ListByDate(ctx context.Context, date string) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records a
		JOIN staff st ON st.id = a.staff_id
		WHERE a.shift_date = $1 OR (a.shift_date IS NULL AND a.clock_in::date = $1::date)
		ORDER BY a.clock_in
	`

	return r.queryRecords(ctx, q, query, date)
}

// List implements attendance.Repository.
func (r *attendanceRepository) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	var conditions []string
	var args []any

	if filter.Date != nil {
		args = append(args, *filter.Date)
		conditions = append(conditions, fmt.Sprintf("a.clock_in::date = $%d::date", len(args)))
	}
	if filter.StaffID != nil {
		args = append(args, *filter.StaffID)
		conditions = append(conditions, fmt.Sprintf("a.staff_id = $%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		conditions = append(conditions, fmt.Sprintf("a.status = $%d", len(args)))
	}

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records a
		JOIN staff st ON st.id = a.staff_id
	`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY a.clock_in DESC"

	return r.queryRecords(ctx, q, query, args...)
}

// ListCompletedByStaff implements attendance.Repository.
func (r *attendanceRepository) ListCompletedByStaff(ctx context.Context, staffID, from, to string) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records a
		JOIN staff st ON st.id = a.staff_id
		WHERE a.staff_id = $1
		  AND a.status = 'clocked_out'
		  AND a.clock_in::date BETWEEN $2::date AND $3::date
		ORDER BY a.clock_in
	`

	return r.queryRecords(ctx, q, query, staffID, from, to)
}

func (r *attendanceRepository) queryRecords(ctx context.Context, q database.Querier, query string, args ...any) ([]attendance.Record, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		record, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}
