package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/rotaworks/timeclock-backend-go/internal/domain/staff"
	"github.com/rotaworks/timeclock-backend-go/internal/pkg/database"
)

type staffRepository struct {
	db *database.DB
}

func NewStaffRepository(db *database.DB) staff.Repository {
	return &staffRepository{db: db}
}

const staffColumns = `
	id, full_name, hourly_rate, contract_type, tax_code, ni_category,
	department, role, override_pin_hash, created_at, updated_at
`

func scanStaff(row pgx.Row) (staff.Profile, error) {
	var p staff.Profile
	var taxCode, category string

	err := row.Scan(
		&p.ID, &p.FullName, &p.HourlyRate, &p.Contract, &taxCode, &category,
		&p.Department, &p.Role, &p.OverridePINHash, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return staff.Profile{}, err
	}

	p.TaxCode = staff.ParseTaxCode(taxCode)
	p.Category = staff.ParseNICategory(category)
	return p, nil
}

// GetByID implements staff.Repository.
func (r *staffRepository) GetByID(ctx context.Context, id string) (staff.Profile, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + staffColumns + ` FROM staff WHERE id = $1`

	profile, err := scanStaff(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return staff.Profile{}, staff.ErrStaffNotFound
		}
		return staff.Profile{}, fmt.Errorf("failed to get staff member: %w", err)
	}
	return profile, nil
}

// ListActive implements staff.Repository.
func (r *staffRepository) ListActive(ctx context.Context) ([]staff.Profile, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + staffColumns + ` FROM staff WHERE active ORDER BY full_name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	defer rows.Close()

	var profiles []staff.Profile
	for rows.Next() {
		profile, err := scanStaff(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan staff member: %w", err)
		}
		profiles = append(profiles, profile)
	}
	return profiles, rows.Err()
}

// GetOverridePINHash implements staff.Repository.
func (r *staffRepository) GetOverridePINHash(ctx context.Context, id string) (string, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT override_pin_hash FROM staff WHERE id = $1`

	var hash *string
	err := q.QueryRow(ctx, query, id).Scan(&hash)
	if err != nil {
		if err == pgx.ErrNoRows {
			return "", staff.ErrStaffNotFound
		}
		return "", fmt.Errorf("failed to get override PIN: %w", err)
	}
	if hash == nil {
		return "", staff.ErrNoOverridePIN
	}
	return *hash, nil
}

// ListManagers implements staff.Repository.
func (r *staffRepository) ListManagers(ctx context.Context) ([]staff.Profile, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + staffColumns + ` FROM staff WHERE active AND role = 'manager' ORDER BY full_name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list managers: %w", err)
	}
	defer rows.Close()

	var profiles []staff.Profile
	for rows.Next() {
		profile, err := scanStaff(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan staff member: %w", err)
		}
		profiles = append(profiles, profile)
	}
	return profiles, rows.Err()
}
