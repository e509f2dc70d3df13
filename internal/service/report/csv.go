package report

import (
	"encoding/csv"
	"io"

	"github.com/shopspring/decimal"

	"github.com/rotaworks/timeclock-backend-go/internal/domain/payroll"
)

// payrollHeader is the fixed column order consumers parse against. Names are
// assumed comma-free so no field ever needs quoting.
var payrollHeader = []string{
	"Staff Name",
	"Total Hours",
	"Paid Break Hours",
	"Regular Hours",
	"Overtime Hours",
	"Hourly Rate",
	"Overtime Pay",
	"Gross Pay",
	"Holiday Accrual",
	"Tax Code",
	"Income Tax",
	"Contribution Category",
	"Deduction",
	"Net Pay",
}

// ExportPayrollCSV writes the payroll report: the fixed header, one row per
// staff member who worked any hours in the period, then the period totals.
// Every numeric field is rendered at exactly two decimal places.
func ExportPayrollCSV(w io.Writer, summaries []payroll.Summary) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(payrollHeader); err != nil {
		return err
	}

	totals := newPayrollTotals()
	for _, s := range summaries {
		if !s.TotalHoursWorked.GreaterThan(decimal.Zero) {
			continue
		}
		totals.add(s)

		row := []string{
			s.StaffName,
			s.TotalHoursWorked.StringFixed(2),
			s.PaidBreakHours.StringFixed(2),
			s.RegularHours.StringFixed(2),
			s.OvertimeHours.StringFixed(2),
			s.HourlyRate.StringFixed(2),
			s.OvertimePay.StringFixed(2),
			s.GrossPay.StringFixed(2),
			s.HolidayAccrual.StringFixed(2),
			s.TaxCode.String(),
			s.IncomeTax.StringFixed(2),
			s.Category.String(),
			s.Deduction.StringFixed(2),
			s.NetPay.StringFixed(2),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	for _, line := range totals.rows() {
		if err := writer.Write(line); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

type payrollTotals struct {
	overtimePay    decimal.Decimal
	grossPay       decimal.Decimal
	holidayAccrual decimal.Decimal
	incomeTax      decimal.Decimal
	deduction      decimal.Decimal
	netPay         decimal.Decimal
}

func newPayrollTotals() *payrollTotals {
	return &payrollTotals{}
}

func (t *payrollTotals) add(s payroll.Summary) {
	t.overtimePay = t.overtimePay.Add(s.OvertimePay)
	t.grossPay = t.grossPay.Add(s.GrossPay)
	t.holidayAccrual = t.holidayAccrual.Add(s.HolidayAccrual)
	t.incomeTax = t.incomeTax.Add(s.IncomeTax)
	t.deduction = t.deduction.Add(s.Deduction)
	t.netPay = t.netPay.Add(s.NetPay)
}

func (t *payrollTotals) rows() [][]string {
	return [][]string{
		{"Total Overtime Pay", t.overtimePay.StringFixed(2)},
		{"Total Gross Pay", t.grossPay.StringFixed(2)},
		{"Total Holiday Accrual", t.holidayAccrual.StringFixed(2)},
		{"Total Income Tax", t.incomeTax.StringFixed(2)},
		{"Total Deduction", t.deduction.StringFixed(2)},
		{"Total Net Pay", t.netPay.StringFixed(2)},
	}
}
