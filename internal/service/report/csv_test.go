package report

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rotaworks/timeclock-backend-go/internal/domain/payroll"
	"github.com/rotaworks/timeclock-backend-go/internal/domain/staff"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func sampleSummary() payroll.Summary {
	return payroll.Summary{
		StaffID:          "staff-1",
		StaffName:        "Priya Shah",
		TotalHoursWorked: d("45"),
		PaidBreakHours:   d("2.5"),
		RegularHours:     d("40"),
		OvertimeHours:    d("5"),
		HourlyRate:       d("10"),
		OvertimePay:      d("75"),
		GrossPay:         d("475"),
		HolidayAccrual:   d("57.33"),
		TaxCode:          staff.ParseTaxCode("BR"),
		Category:         staff.ParseNICategory("A"),
		IncomeTax:        d("95"),
		Deduction:        d("27.96"),
		NetPay:           d("352.04"),
	}
}

func TestExportPayrollCSV_ExactOutput(t *testing.T) {
	var buf strings.Builder
	err := ExportPayrollCSV(&buf, []payroll.Summary{sampleSummary()})
	require.NoError(t, err)

	want := strings.Join([]string{
		"Staff Name,Total Hours,Paid Break Hours,Regular Hours,Overtime Hours,Hourly Rate,Overtime Pay,Gross Pay,Holiday Accrual,Tax Code,Income Tax,Contribution Category,Deduction,Net Pay",
		"Priya Shah,45.00,2.50,40.00,5.00,10.00,75.00,475.00,57.33,BR,95.00,A,27.96,352.04",
		"Total Overtime Pay,75.00",
		"Total Gross Pay,475.00",
		"Total Holiday Accrual,57.33",
		"Total Income Tax,95.00",
		"Total Deduction,27.96",
		"Total Net Pay,352.04",
		"",
	}, "\n")

	assert.Equal(t, want, buf.String())
}

func TestExportPayrollCSV_SkipsZeroHourStaff(t *testing.T) {
	idle := sampleSummary()
	idle.StaffName = "Sam Okafor"
	idle.TotalHoursWorked = decimal.Zero

	var buf strings.Builder
	err := ExportPayrollCSV(&buf, []payroll.Summary{sampleSummary(), idle})
	require.NoError(t, err)

	assert.NotContains(t, buf.String(), "Sam Okafor")
	// Totals only reflect the staff actually reported.
	assert.Contains(t, buf.String(), "Total Gross Pay,475.00\n")
}

func TestExportPayrollCSV_TwoDecimalPlacesRegardlessOfInputPrecision(t *testing.T) {
	s := sampleSummary()
	s.TotalHoursWorked = d("7.005")
	s.GrossPay = d("70.1")

	var buf strings.Builder
	err := ExportPayrollCSV(&buf, []payroll.Summary{s})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), ",7.01,")
	assert.Contains(t, buf.String(), ",70.10,")
}

func TestExportPayrollCSV_EmptyInputStillWritesHeaderAndTotals(t *testing.T) {
	var buf strings.Builder
	err := ExportPayrollCSV(&buf, nil)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "Total Net Pay,0.00", lines[6])
}
