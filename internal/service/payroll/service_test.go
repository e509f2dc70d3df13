package payroll

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rotaworks/timeclock-backend-go/internal/domain/attendance"
	"github.com/rotaworks/timeclock-backend-go/internal/domain/leave"
	"github.com/rotaworks/timeclock-backend-go/internal/domain/payroll"
	"github.com/rotaworks/timeclock-backend-go/internal/domain/staff"
)

type fakeStaffRepo struct {
	profiles map[string]staff.Profile
}

func (f *fakeStaffRepo) GetByID(_ context.Context, id string) (staff.Profile, error) {
	profile, ok := f.profiles[id]
	if !ok {
		return staff.Profile{}, staff.ErrStaffNotFound
	}
	return profile, nil
}

func (f *fakeStaffRepo) ListActive(_ context.Context) ([]staff.Profile, error) {
	ids := make([]string, 0, len(f.profiles))
	for id := range f.profiles {
		ids = append(ids, id)
	}
	// map order is random; callers that care sort downstream, tests here
	// use single-staff requests for deterministic assertions
	profiles := make([]staff.Profile, 0, len(ids))
	for _, id := range ids {
		profiles = append(profiles, f.profiles[id])
	}
	return profiles, nil
}

func (f *fakeStaffRepo) GetOverridePINHash(_ context.Context, id string) (string, error) {
	return "", staff.ErrNoOverridePIN
}

func (f *fakeStaffRepo) ListManagers(_ context.Context) ([]staff.Profile, error) {
	return nil, nil
}

type fakeAttendanceRepo struct {
	completed map[string][]attendance.Record
}

func (f *fakeAttendanceRepo) Create(_ context.Context, record attendance.Record) (attendance.Record, error) {
	return record, nil
}

func (f *fakeAttendanceRepo) GetByID(_ context.Context, id string) (attendance.Record, error) {
	return attendance.Record{}, attendance.ErrRecordNotFound
}

func (f *fakeAttendanceRepo) GetActiveByStaff(_ context.Context, staffID string) (*attendance.Record, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) Update(_ context.Context, record attendance.Record) error {
	return nil
}

func (f *fakeAttendanceRepo) ListByDate(_ context.Context, date string) ([]attendance.Record, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) List(_ context.Context, filter attendance.ListFilter) ([]attendance.Record, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) ListCompletedByStaff(_ context.Context, staffID, from, to string) ([]attendance.Record, error) {
	return f.completed[staffID], nil
}

type fakeLeaveRepo struct {
	credits map[string]decimal.Decimal
	years   map[string]int
}

func newFakeLeaveRepo() *fakeLeaveRepo {
	return &fakeLeaveRepo{
		credits: make(map[string]decimal.Decimal),
		years:   make(map[string]int),
	}
}

func (f *fakeLeaveRepo) GetByStaffYear(_ context.Context, staffID string, year int) (leave.Balance, error) {
	return leave.Balance{StaffID: staffID, Year: year, AccruedHours: f.credits[staffID]}, nil
}

func (f *fakeLeaveRepo) AddAccrued(_ context.Context, staffID string, year int, hours decimal.Decimal) error {
	f.credits[staffID] = f.credits[staffID].Add(hours)
	f.years[staffID] = year
	return nil
}

func hourlyStaff(id, name string) staff.Profile {
	return staff.Profile{
		ID:         id,
		FullName:   name,
		HourlyRate: decimal.NewFromInt(10),
		Contract:   staff.ContractHourlyAccrual,
		TaxCode:    staff.ParseTaxCode("1257L"),
		Category:   staff.ParseNICategory("A"),
	}
}

func salariedStaff(id, name string) staff.Profile {
	p := hourlyStaff(id, name)
	p.Contract = staff.ContractSalaried
	return p
}

func newTestService(staffRepo *fakeStaffRepo, attendanceRepo *fakeAttendanceRepo, leaveRepo *fakeLeaveRepo) payroll.Service {
	return NewPayrollService(staffRepo, attendanceRepo, leaveRepo, testPolicyConfig(), testTaxConfig(), testNIConfig())
}

func weekOfEightHourDays(t *testing.T) []attendance.Record {
	t.Helper()
	dates := []string{"2026-01-12", "2026-01-13", "2026-01-14", "2026-01-15", "2026-01-16"}
	records := make([]attendance.Record, 0, len(dates))
	for _, date := range dates {
		records = append(records, completedRecord(t, date, "09:00", "17:00"))
	}
	return records
}

func TestGenerateSummaries_SingleStaff(t *testing.T) {
	staffRepo := &fakeStaffRepo{profiles: map[string]staff.Profile{
		"staff-1": hourlyStaff("staff-1", "Ada Brook"),
	}}
	attendanceRepo := &fakeAttendanceRepo{completed: map[string][]attendance.Record{
		"staff-1": weekOfEightHourDays(t),
	}}
	svc := newTestService(staffRepo, attendanceRepo, newFakeLeaveRepo())

	summaries, err := svc.GenerateSummaries(context.Background(), payroll.GenerateRequest{
		From:     "2026-01-12",
		To:       "2026-01-18",
		StaffIDs: []string{"staff-1"},
	})
	require.NoError(t, err)
	require.Len(t, summaries, 1)

	assert.Equal(t, "Ada Brook", summaries[0].StaffName)
	assert.Equal(t, "40.00", summaries[0].TotalHoursWorked.StringFixed(2))
	assert.Equal(t, "400.00", summaries[0].GrossPay.StringFixed(2))
}

func TestGenerateSummaries_UnknownStaff(t *testing.T) {
	staffRepo := &fakeStaffRepo{profiles: map[string]staff.Profile{}}
	svc := newTestService(staffRepo, &fakeAttendanceRepo{}, newFakeLeaveRepo())

	_, err := svc.GenerateSummaries(context.Background(), payroll.GenerateRequest{
		From:     "2026-01-12",
		To:       "2026-01-18",
		StaffIDs: []string{"ghost"},
	})
	assert.ErrorIs(t, err, staff.ErrStaffNotFound)
}

func TestGenerateSummaries_InvalidPeriod(t *testing.T) {
	svc := newTestService(&fakeStaffRepo{}, &fakeAttendanceRepo{}, newFakeLeaveRepo())

	_, err := svc.GenerateSummaries(context.Background(), payroll.GenerateRequest{
		From: "2026-01-18",
		To:   "2026-01-12",
	})
	assert.Error(t, err)
}

func TestGenerateSummaries_NegativeRateRejected(t *testing.T) {
	profile := hourlyStaff("staff-1", "Ada Brook")
	profile.HourlyRate = decimal.NewFromInt(-10)
	staffRepo := &fakeStaffRepo{profiles: map[string]staff.Profile{"staff-1": profile}}
	svc := newTestService(staffRepo, &fakeAttendanceRepo{}, newFakeLeaveRepo())

	_, err := svc.GenerateSummaries(context.Background(), payroll.GenerateRequest{
		From:     "2026-01-12",
		To:       "2026-01-18",
		StaffIDs: []string{"staff-1"},
	})
	assert.ErrorIs(t, err, staff.ErrInvalidRate)
}

func TestGenerateSummaries_UnknownContractRejected(t *testing.T) {
	profile := hourlyStaff("staff-1", "Ada Brook")
	profile.Contract = staff.ContractType("zero_hours")
	staffRepo := &fakeStaffRepo{profiles: map[string]staff.Profile{"staff-1": profile}}
	svc := newTestService(staffRepo, &fakeAttendanceRepo{}, newFakeLeaveRepo())

	_, err := svc.GenerateSummaries(context.Background(), payroll.GenerateRequest{
		From:     "2026-01-12",
		To:       "2026-01-18",
		StaffIDs: []string{"staff-1"},
	})
	assert.ErrorIs(t, err, staff.ErrUnknownContract)
}

func TestApplyAccrual_CreditsHourlyStaff(t *testing.T) {
	staffRepo := &fakeStaffRepo{profiles: map[string]staff.Profile{
		"staff-1": hourlyStaff("staff-1", "Ada Brook"),
	}}
	attendanceRepo := &fakeAttendanceRepo{completed: map[string][]attendance.Record{
		"staff-1": weekOfEightHourDays(t),
	}}
	leaveRepo := newFakeLeaveRepo()
	svc := newTestService(staffRepo, attendanceRepo, leaveRepo)

	credited, err := svc.ApplyAccrual(context.Background(), payroll.GenerateRequest{
		From:     "2026-01-12",
		To:       "2026-01-18",
		StaffIDs: []string{"staff-1"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, credited)

	// 40 hours * 0.1207
	assert.Equal(t, "4.83", leaveRepo.credits["staff-1"].StringFixed(2))
	assert.Equal(t, 2026, leaveRepo.years["staff-1"])
}

func TestApplyAccrual_SkipsSalariedAndIdle(t *testing.T) {
	staffRepo := &fakeStaffRepo{profiles: map[string]staff.Profile{
		"staff-1": salariedStaff("staff-1", "Ada Brook"),
		"staff-2": hourlyStaff("staff-2", "Ben Cole"),
	}}
	attendanceRepo := &fakeAttendanceRepo{completed: map[string][]attendance.Record{
		"staff-1": weekOfEightHourDays(t),
	}}
	leaveRepo := newFakeLeaveRepo()
	svc := newTestService(staffRepo, attendanceRepo, leaveRepo)

	credited, err := svc.ApplyAccrual(context.Background(), payroll.GenerateRequest{
		From:     "2026-01-12",
		To:       "2026-01-18",
		StaffIDs: []string{"staff-1", "staff-2"},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, credited)
	assert.Empty(t, leaveRepo.credits)
}
