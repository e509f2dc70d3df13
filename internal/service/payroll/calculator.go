package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/rotaworks/timeclock-backend-go/internal/config"
	"github.com/rotaworks/timeclock-backend-go/internal/domain/attendance"
	"github.com/rotaworks/timeclock-backend-go/internal/domain/payroll"
	"github.com/rotaworks/timeclock-backend-go/internal/domain/staff"
)

var minutesPerHour = decimal.NewFromInt(60)

// HoursWorked returns the elapsed hours of a completed session, rounded to
// two decimal places. Break time is paid and stays included, so the figure is
// clock-out minus clock-in regardless of any break taken. Open sessions
// contribute zero.
func HoursWorked(record attendance.Record) decimal.Decimal {
	if record.ClockOut == nil {
		return decimal.Zero
	}
	minutes := decimal.NewFromFloat(record.ClockOut.Sub(record.ClockIn).Minutes())
	return minutes.Div(minutesPerHour).Round(2)
}

// breakHours returns the actual break duration when both timestamps are
// present, otherwise the configured default paid break.
func breakHours(record attendance.Record, defaultPaidBreak decimal.Decimal) decimal.Decimal {
	if record.BreakStart == nil || record.BreakEnd == nil {
		return defaultPaidBreak
	}
	minutes := decimal.NewFromFloat(record.BreakEnd.Sub(*record.BreakStart).Minutes())
	return minutes.Div(minutesPerHour).Round(2)
}

// GenerateSummary computes the full payroll figure set for one staff member
// from their completed attendance records. Every monetary field is rounded to
// two decimal places as it is produced, so each field matches what a
// per-field export would show.
func GenerateSummary(
	profile staff.Profile,
	records []attendance.Record,
	policy config.PolicyConfig,
	tax config.TaxConfig,
	ni config.NIConfig,
) payroll.Summary {
	total := decimal.Zero
	paidBreaks := decimal.Zero
	for _, record := range records {
		if record.ClockOut == nil {
			continue
		}
		total = total.Add(HoursWorked(record))
		paidBreaks = paidBreaks.Add(breakHours(record, policy.DefaultPaidBreakHours))
	}
	total = total.Round(2)
	paidBreaks = paidBreaks.Round(2)

	regular := decimal.Min(total, policy.WeeklyOvertimeThreshold)
	overtime := decimal.Max(decimal.Zero, total.Sub(policy.WeeklyOvertimeThreshold))

	overtimePay := overtime.Mul(profile.HourlyRate).Mul(policy.OvertimeMultiplier).Round(2)
	gross := regular.Mul(profile.HourlyRate).Round(2).Add(overtimePay).Round(2)

	// Salaried staff receive a fixed annual grant instead; accrual from pay
	// applies only to the hourly-accrual contract.
	accrual := decimal.Zero
	if profile.Contract == staff.ContractHourlyAccrual {
		accrual = gross.Mul(policy.HolidayAccrualRate).Round(2)
	}

	incomeTax := IncomeTax(gross, profile.TaxCode, tax)
	deduction := NIContribution(gross, profile.Category, ni)
	net := gross.Sub(incomeTax).Sub(deduction).Round(2)

	return payroll.Summary{
		StaffID:          profile.ID,
		StaffName:        profile.FullName,
		TotalHoursWorked: total,
		PaidBreakHours:   paidBreaks,
		RegularHours:     regular,
		OvertimeHours:    overtime,
		HourlyRate:       profile.HourlyRate.Round(2),
		OvertimePay:      overtimePay,
		GrossPay:         gross,
		HolidayAccrual:   accrual,
		TaxCode:          profile.TaxCode,
		Category:         profile.Category,
		IncomeTax:        incomeTax,
		Deduction:        deduction,
		NetPay:           net,
	}
}
