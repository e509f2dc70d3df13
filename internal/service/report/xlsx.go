package report

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/rotaworks/timeclock-backend-go/internal/domain/payroll"
)

const payrollSheet = "Payroll"

// ExportPayrollXLSX writes the same report as ExportPayrollCSV as a
// spreadsheet, with the totals block separated from the data rows.
func ExportPayrollXLSX(w io.Writer, summaries []payroll.Summary) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(payrollSheet)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	if err := f.SetSheetRow(payrollSheet, "A1", &payrollHeader); err != nil {
		return err
	}

	totals := newPayrollTotals()
	rowNo := 2
	for _, s := range summaries {
		if !s.TotalHoursWorked.GreaterThan(decimal.Zero) {
			continue
		}
		totals.add(s)

		row := []interface{}{
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
		cell := fmt.Sprintf("A%d", rowNo)
		if err := f.SetSheetRow(payrollSheet, cell, &row); err != nil {
			return err
		}
		rowNo++
	}

	rowNo++ // blank separator row
	for _, line := range totals.rows() {
		cell := fmt.Sprintf("A%d", rowNo)
		row := []interface{}{line[0], line[1]}
		if err := f.SetSheetRow(payrollSheet, cell, &row); err != nil {
			return err
		}
		rowNo++
	}

	return f.Write(w)
}
