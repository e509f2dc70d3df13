package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/rotaworks/timeclock-backend-go/internal/domain/staff"
)

// Summary is the derived payroll figure set for one staff member over a pay
// period. It is computed, not persisted: every field is already rounded to
// two decimal places so that per-field exports are self-consistent.
type Summary struct {
	StaffID   string
	StaffName string

	TotalHoursWorked decimal.Decimal
	PaidBreakHours   decimal.Decimal
	RegularHours     decimal.Decimal
	OvertimeHours    decimal.Decimal

	HourlyRate     decimal.Decimal
	OvertimePay    decimal.Decimal
	GrossPay       decimal.Decimal
	HolidayAccrual decimal.Decimal

	TaxCode   staff.TaxCode
	Category  staff.NICategory
	IncomeTax decimal.Decimal
	Deduction decimal.Decimal
	NetPay    decimal.Decimal
}
