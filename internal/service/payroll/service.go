package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/rotaworks/timeclock-backend-go/internal/config"
	"github.com/rotaworks/timeclock-backend-go/internal/domain/attendance"
	"github.com/rotaworks/timeclock-backend-go/internal/domain/leave"
	"github.com/rotaworks/timeclock-backend-go/internal/domain/payroll"
	"github.com/rotaworks/timeclock-backend-go/internal/domain/staff"
	"github.com/rotaworks/timeclock-backend-go/internal/pkg/timeutil"
)

type ServiceImpl struct {
	staffRepo      staff.Repository
	attendanceRepo attendance.Repository
	leaveRepo      leave.Repository
	policy         config.PolicyConfig
	tax            config.TaxConfig
	ni             config.NIConfig
}

func NewPayrollService(
	staffRepo staff.Repository,
	attendanceRepo attendance.Repository,
	leaveRepo leave.Repository,
	policy config.PolicyConfig,
	tax config.TaxConfig,
	ni config.NIConfig,
) payroll.Service {
	return &ServiceImpl{
		staffRepo:      staffRepo,
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
		policy:         policy,
		tax:            tax,
		ni:             ni,
	}
}

// GenerateSummaries implements payroll.Service.
func (s *ServiceImpl) GenerateSummaries(ctx context.Context, req payroll.GenerateRequest) ([]payroll.Summary, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	profiles, err := s.selectProfiles(ctx, req.StaffIDs)
	if err != nil {
		return nil, err
	}

	summaries := make([]payroll.Summary, 0, len(profiles))
	for _, profile := range profiles {
		records, err := s.attendanceRepo.ListCompletedByStaff(ctx, profile.ID, req.From, req.To)
		if err != nil {
			return nil, fmt.Errorf("failed to load records for %s: %w", profile.ID, err)
		}
		summaries = append(summaries, GenerateSummary(profile, records, s.policy, s.tax, s.ni))
	}
	return summaries, nil
}

// ApplyAccrual implements payroll.Service. Accrued hours follow the same
// statutory rate as monetary accrual, applied to hours worked instead of
// gross pay. Salaried staff keep their fixed grant and are skipped.
func (s *ServiceImpl) ApplyAccrual(ctx context.Context, req payroll.GenerateRequest) (int, error) {
	summaries, err := s.GenerateSummaries(ctx, req)
	if err != nil {
		return 0, err
	}

	from, err := time.Parse(timeutil.DateLayout, req.From)
	if err != nil {
		return 0, fmt.Errorf("invalid period start: %w", err)
	}
	year := from.Year()

	credited := 0
	for _, summary := range summaries {
		if summary.HolidayAccrual.IsZero() || summary.TotalHoursWorked.IsZero() {
			continue
		}
		hours := summary.TotalHoursWorked.Mul(s.policy.HolidayAccrualRate).Round(2)
		if err := s.leaveRepo.AddAccrued(ctx, summary.StaffID, year, hours); err != nil {
			return credited, fmt.Errorf("failed to credit accrual for %s: %w", summary.StaffID, err)
		}
		credited++
	}
	return credited, nil
}

func (s *ServiceImpl) selectProfiles(ctx context.Context, staffIDs []string) ([]staff.Profile, error) {
	var profiles []staff.Profile

	if len(staffIDs) == 0 {
		active, err := s.staffRepo.ListActive(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list staff: %w", err)
		}
		profiles = active
	} else {
		profiles = make([]staff.Profile, 0, len(staffIDs))
		for _, id := range staffIDs {
			profile, err := s.staffRepo.GetByID(ctx, id)
			if err != nil {
				return nil, err
			}
			profiles = append(profiles, profile)
		}
	}

	for _, profile := range profiles {
		if err := profile.Validate(); err != nil {
			return nil, fmt.Errorf("staff %s: %w", profile.ID, err)
		}
	}
	return profiles, nil
}
