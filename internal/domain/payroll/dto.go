package payroll

import (
	"github.com/rotaworks/timeclock-backend-go/internal/pkg/validator"
)

// GenerateRequest selects the pay period and optionally narrows to specific
// staff. Empty StaffIDs means the whole roster.
type GenerateRequest struct {
	From     string   `json:"from"`
	To       string   `json:"to"`
	StaffIDs []string `json:"staff_ids,omitempty"`
}

func (r *GenerateRequest) Validate() error {
	var errs validator.ValidationErrors

	from, okFrom := validator.IsValidDate(r.From)
	if !okFrom {
		errs = append(errs, validator.ValidationError{
			Field:   "from",
			Message: "from must be YYYY-MM-DD",
		})
	}
	to, okTo := validator.IsValidDate(r.To)
	if !okTo {
		errs = append(errs, validator.ValidationError{
			Field:   "to",
			Message: "to must be YYYY-MM-DD",
		})
	}
	if okFrom && okTo && to.Before(from) {
		errs = append(errs, validator.ValidationError{
			Field:   "to",
			Message: "to must not be before from",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SummaryResponse is the JSON shape of a Summary; monetary fields are
// fixed-point strings so the two-decimal contract survives serialization.
type SummaryResponse struct {
	StaffID          string `json:"staff_id"`
	StaffName        string `json:"staff_name"`
	TotalHoursWorked string `json:"total_hours_worked"`
	PaidBreakHours   string `json:"paid_break_hours"`
	RegularHours     string `json:"regular_hours"`
	OvertimeHours    string `json:"overtime_hours"`
	HourlyRate       string `json:"hourly_rate"`
	OvertimePay      string `json:"overtime_pay"`
	GrossPay         string `json:"gross_pay"`
	HolidayAccrual   string `json:"holiday_accrual"`
	TaxCode          string `json:"tax_code"`
	Category         string `json:"contribution_category"`
	IncomeTax        string `json:"income_tax"`
	Deduction        string `json:"deduction"`
	NetPay           string `json:"net_pay"`
}

// ToResponse renders every numeric field at exactly two decimal places.
func (s Summary) ToResponse() SummaryResponse {
	return SummaryResponse{
		StaffID:          s.StaffID,
		StaffName:        s.StaffName,
		TotalHoursWorked: s.TotalHoursWorked.StringFixed(2),
		PaidBreakHours:   s.PaidBreakHours.StringFixed(2),
		RegularHours:     s.RegularHours.StringFixed(2),
		OvertimeHours:    s.OvertimeHours.StringFixed(2),
		HourlyRate:       s.HourlyRate.StringFixed(2),
		OvertimePay:      s.OvertimePay.StringFixed(2),
		GrossPay:         s.GrossPay.StringFixed(2),
		HolidayAccrual:   s.HolidayAccrual.StringFixed(2),
		TaxCode:          s.TaxCode.String(),
		Category:         s.Category.String(),
		IncomeTax:        s.IncomeTax.StringFixed(2),
		Deduction:        s.Deduction.StringFixed(2),
		NetPay:           s.NetPay.StringFixed(2),
	}
}
