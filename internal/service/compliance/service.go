package compliance

import (
	"context"
	"fmt"

	"github.com/rotaworks/timeclock-backend-go/internal/config"
	"github.com/rotaworks/timeclock-backend-go/internal/domain/compliance"
	"github.com/rotaworks/timeclock-backend-go/internal/domain/shift"
	"github.com/rotaworks/timeclock-backend-go/internal/domain/staff"
)

type ServiceImpl struct {
	shiftRepo shift.Repository
	staffRepo staff.Repository
	policy    config.PolicyConfig
}

func NewComplianceService(shiftRepo shift.Repository, staffRepo staff.Repository, policy config.PolicyConfig) compliance.Service {
	return &ServiceImpl{
		shiftRepo: shiftRepo,
		staffRepo: staffRepo,
		policy:    policy,
	}
}

// CheckRange implements compliance.Service.
func (s *ServiceImpl) CheckRange(ctx context.Context, from, to string) ([]compliance.Warning, error) {
	shifts, err := s.shiftRepo.ListByDateRange(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load shifts: %w", err)
	}

	profiles, err := s.staffRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load staff: %w", err)
	}

	return CheckRestPeriodViolations(shifts, profiles, s.policy.MinRestHours), nil
}
