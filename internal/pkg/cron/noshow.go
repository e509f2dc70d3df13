package cron

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/rotaworks/timeclock-backend-go/internal/config"
	"github.com/rotaworks/timeclock-backend-go/internal/domain/attendance"
	"github.com/rotaworks/timeclock-backend-go/internal/domain/noshow"
	"github.com/rotaworks/timeclock-backend-go/internal/domain/notification"
	"github.com/rotaworks/timeclock-backend-go/internal/domain/shift"
	"github.com/rotaworks/timeclock-backend-go/internal/domain/staff"
	"github.com/rotaworks/timeclock-backend-go/internal/pkg/timeutil"
	attendancesvc "github.com/rotaworks/timeclock-backend-go/internal/service/attendance"
)

// NoShowScanner periodically checks today's shifts for staff who never
// clocked in and raises a no-show record for each, at most once per shift.
type NoShowScanner struct {
	shiftRepo       shift.Repository
	attendanceRepo  attendance.Repository
	noShowRepo      noshow.Repository
	staffRepo       staff.Repository
	notificationSvc notification.Service
	policy          config.PolicyConfig

	// Guards against overlapping scans when a run outlasts the interval.
	// Single-instance deployment, so an in-process latch is enough.
	running atomic.Bool

	now func() time.Time
}

func NewNoShowScanner(
	shiftRepo shift.Repository,
	attendanceRepo attendance.Repository,
	noShowRepo noshow.Repository,
	staffRepo staff.Repository,
	notificationSvc notification.Service,
	policy config.PolicyConfig,
) *NoShowScanner {
	return &NoShowScanner{
		shiftRepo:       shiftRepo,
		attendanceRepo:  attendanceRepo,
		noShowRepo:      noShowRepo,
		staffRepo:       staffRepo,
		notificationSvc: notificationSvc,
		policy:          policy,
		now:             timeutil.Now,
	}
}

// Register adds the scan to the scheduler at the configured interval.
func (j *NoShowScanner) Register(scheduler *Scheduler) {
	scheduler.AddJob("no-show-scan", j.policy.NoShowScanInterval, j.DetectNoShows)
}

// DetectNoShows runs one scan. A scan already in flight makes this call a
// no-op. Failures on one shift are logged and do not stop the rest of the
// scan.
func (j *NoShowScanner) DetectNoShows(ctx context.Context) error {
	if !j.running.CompareAndSwap(false, true) {
		slog.Warn("No-show scan skipped, previous scan still running")
		return nil
	}
	defer j.running.Store(false)

	now := j.now()
	today := timeutil.ToLocal(now).Format("2006-01-02")

	shifts, err := j.shiftRepo.ListByDate(ctx, today)
	if err != nil {
		return fmt.Errorf("failed to load today's shifts: %w", err)
	}

	records, err := j.attendanceRepo.ListByDate(ctx, today)
	if err != nil {
		return fmt.Errorf("failed to load today's attendance: %w", err)
	}

	present := make(map[string]struct{}, len(records))
	for _, r := range records {
		present[r.StaffID] = struct{}{}
	}

	detected := 0
	for _, sh := range shifts {
		if _, ok := present[sh.StaffID]; ok {
			continue
		}

		scheduledStart := sh.Start.String()
		if !attendancesvc.IsNoShow(scheduledStart, sh.Date, now, j.policy.NoShowThresholdMinutes) {
			continue
		}

		exists, err := j.noShowRepo.ExistsForShift(ctx, sh.ID, today)
		if err != nil {
			slog.Error("No-show dedup check failed", "shift_id", sh.ID, "error", err)
			continue
		}
		if exists {
			continue
		}

		record := noshow.Record{
			ID:             uuid.New().String(),
			StaffID:        sh.StaffID,
			ShiftID:        sh.ID,
			ShiftDate:      sh.Date,
			ScheduledStart: scheduledStart,
			DetectedAt:     now,
		}
		created, err := j.noShowRepo.Create(ctx, record)
		if err != nil {
			slog.Error("No-show record creation failed", "shift_id", sh.ID, "staff_id", sh.StaffID, "error", err)
			continue
		}

		detected++
		j.notifyManagers(ctx, created)
	}

	if detected > 0 {
		slog.Info("No-show scan finished", "date", today, "detected", detected)
	}
	return nil
}

func (j *NoShowScanner) notifyManagers(ctx context.Context, record noshow.Record) {
	if j.notificationSvc == nil {
		return
	}

	managers, err := j.staffRepo.ListManagers(ctx)
	if err != nil {
		slog.Error("Failed to list managers for no-show notification", "error", err)
		return
	}

	for _, m := range managers {
		err := j.notificationSvc.QueueNotification(ctx, notification.CreateNotificationRequest{
			RecipientID: m.ID,
			Type:        notification.TypeNoShowDetected,
			Title:       "No-Show Detected",
			Message:     fmt.Sprintf("Staff member did not clock in for the %s shift on %s", record.ScheduledStart, record.ShiftDate),
			Data: map[string]interface{}{
				"staff_id":   record.StaffID,
				"shift_id":   record.ShiftID,
				"shift_date": record.ShiftDate,
				"no_show_id": record.ID,
			},
		})
		if err != nil {
			slog.Error("Failed to queue no-show notification", "recipient", m.ID, "error", err)
		}
	}
}
