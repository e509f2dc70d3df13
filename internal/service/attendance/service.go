package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/rotaworks/timeclock-backend-go/internal/config"
	"github.com/rotaworks/timeclock-backend-go/internal/domain/attendance"
	"github.com/rotaworks/timeclock-backend-go/internal/domain/notification"
	"github.com/rotaworks/timeclock-backend-go/internal/domain/staff"
	"github.com/rotaworks/timeclock-backend-go/internal/pkg/timeutil"
)

type ServiceImpl struct {
	attendanceRepo  attendance.Repository
	staffRepo       staff.Repository
	notificationSvc notification.Service
	policy          config.PolicyConfig
}

func NewAttendanceService(
	attendanceRepo attendance.Repository,
	staffRepo staff.Repository,
	notificationSvc notification.Service,
	policy config.PolicyConfig,
) attendance.Service {
	return &ServiceImpl{
		attendanceRepo:  attendanceRepo,
		staffRepo:       staffRepo,
		notificationSvc: notificationSvc,
		policy:          policy,
	}
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.UTC().Format(time.RFC3339)
	return &format
}

// ClockIn implements attendance.Service.
func (s *ServiceImpl) ClockIn(ctx context.Context, req attendance.ClockInRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	active, err := s.attendanceRepo.GetActiveByStaff(ctx, req.StaffID)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to check open session: %w", err)
	}
	if active != nil {
		return attendance.RecordResponse{}, attendance.ErrAlreadyClockedIn
	}

	pinUsed := false
	if req.OverrideBy != nil {
		pinUsed, err = s.verifyOverride(ctx, *req.OverrideBy, req.OverridePIN)
		if err != nil {
			return attendance.RecordResponse{}, err
		}
	}

	now := timeutil.Now()

	grace := s.policy.GraceMinutes
	if req.GraceMinutes != nil {
		grace = *req.GraceMinutes
	}

	var lateness LatenessResult
	if req.ScheduledStart != nil && req.ShiftDate != nil {
		lateness = EvaluateLateness(now, *req.ScheduledStart, *req.ShiftDate, grace)
	}

	record := attendance.Record{
		ID:              uuid.New().String(),
		StaffID:         req.StaffID,
		ClockIn:         now,
		Status:          attendance.StatusClockedIn,
		ScheduledStart:  req.ScheduledStart,
		ShiftDate:       req.ShiftDate,
		IsLate:          lateness.IsLate,
		LateMinutes:     lateness.LateMinutes,
		OverrideBy:      req.OverrideBy,
		OverridePinUsed: pinUsed,
		FaceConfidence:  req.FaceConfidence,
	}

	created, err := s.attendanceRepo.Create(ctx, record)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	if lateness.IsLate {
		s.notifyLateClockIn(ctx, created)
	}

	return mapRecordToResponse(created), nil
}

// verifyOverride checks the manager's PIN against the stored bcrypt hash.
// Returns whether a PIN was actually checked, so the record can carry the
// distinction between a PIN override and a badge-only override.
func (s *ServiceImpl) verifyOverride(ctx context.Context, managerID string, pin *string) (bool, error) {
	if pin == nil {
		return false, nil
	}

	hash, err := s.staffRepo.GetOverridePINHash(ctx, managerID)
	if err != nil {
		return false, fmt.Errorf("failed to load override PIN for %s: %w", managerID, err)
	}

	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(*pin)) != nil {
		return false, attendance.ErrInvalidOverridePIN
	}
	return true, nil
}

// StartBreak implements attendance.Service.
func (s *ServiceImpl) StartBreak(ctx context.Context, recordID string) (attendance.RecordResponse, error) {
	record, err := s.attendanceRepo.GetByID(ctx, recordID)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	if record.Status != attendance.StatusClockedIn {
		if record.Status == attendance.StatusOnBreak {
			return attendance.RecordResponse{}, attendance.ErrBreakAlreadyTaken
		}
		return attendance.RecordResponse{}, attendance.ErrNotClockedIn
	}
	if record.BreakStart != nil {
		return attendance.RecordResponse{}, attendance.ErrBreakAlreadyTaken
	}

	now := timeutil.Now()
	record.BreakStart = &now
	record.Status = attendance.StatusOnBreak

	if err := s.attendanceRepo.Update(ctx, record); err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to start break: %w", err)
	}

	return mapRecordToResponse(record), nil
}

// EndBreak implements attendance.Service.
func (s *ServiceImpl) EndBreak(ctx context.Context, recordID string) (attendance.RecordResponse, error) {
	record, err := s.attendanceRepo.GetByID(ctx, recordID)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	if record.Status != attendance.StatusOnBreak {
		return attendance.RecordResponse{}, attendance.ErrNotOnBreak
	}

	now := timeutil.Now()
	record.BreakEnd = &now
	record.Status = attendance.StatusClockedIn

	if err := s.attendanceRepo.Update(ctx, record); err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to end break: %w", err)
	}

	return mapRecordToResponse(record), nil
}

// ClockOut implements attendance.Service.
func (s *ServiceImpl) ClockOut(ctx context.Context, recordID string) (attendance.RecordResponse, error) {
	record, err := s.attendanceRepo.GetByID(ctx, recordID)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	if record.Status == attendance.StatusClockedOut {
		return attendance.RecordResponse{}, attendance.ErrAlreadyClockedOut
	}

	now := timeutil.Now()
	record.ClockOut = &now
	record.Status = attendance.StatusClockedOut

	if err := s.attendanceRepo.Update(ctx, record); err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to clock out: %w", err)
	}

	return mapRecordToResponse(record), nil
}

// QuickActions implements attendance.Service.
func (s *ServiceImpl) QuickActions(ctx context.Context, staffID string) (attendance.QuickActions, error) {
	active, err := s.attendanceRepo.GetActiveByStaff(ctx, staffID)
	if err != nil {
		return attendance.QuickActions{}, fmt.Errorf("failed to get open session: %w", err)
	}
	return attendance.DeriveQuickActions(active), nil
}

// List implements attendance.Service.
func (s *ServiceImpl) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.RecordResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	records, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, mapRecordToResponse(r))
	}
	return responses, nil
}

func (s *ServiceImpl) notifyLateClockIn(ctx context.Context, record attendance.Record) {
	if s.notificationSvc == nil {
		return
	}

	managers, err := s.staffRepo.ListManagers(ctx)
	if err != nil {
		return
	}
	for _, m := range managers {
		_ = s.notificationSvc.QueueNotification(ctx, notification.CreateNotificationRequest{
			RecipientID: m.ID,
			Type:        notification.TypeLateClockIn,
			Title:       "Late Clock-In",
			Message:     fmt.Sprintf("Staff member clocked in %d minutes late", record.LateMinutes),
			Data: map[string]interface{}{
				"staff_id":     record.StaffID,
				"record_id":    record.ID,
				"late_minutes": record.LateMinutes,
			},
		})
	}
}

// mapRecordToResponse converts a Record entity to RecordResponse.
func mapRecordToResponse(r attendance.Record) attendance.RecordResponse {
	var staffName string
	if r.StaffName != nil {
		staffName = *r.StaffName
	}

	return attendance.RecordResponse{
		ID:              r.ID,
		StaffID:         r.StaffID,
		StaffName:       staffName,
		ClockInTime:     r.ClockIn.UTC().Format(time.RFC3339),
		BreakStartTime:  timePtrToString(r.BreakStart),
		BreakEndTime:    timePtrToString(r.BreakEnd),
		ClockOutTime:    timePtrToString(r.ClockOut),
		Status:          string(r.Status),
		ScheduledStart:  r.ScheduledStart,
		ShiftDate:       r.ShiftDate,
		IsLate:          r.IsLate,
		LateMinutes:     r.LateMinutes,
		OverrideBy:      r.OverrideBy,
		OverridePinUsed: r.OverridePinUsed,
		FaceConfidence:  r.FaceConfidence,
	}
}
