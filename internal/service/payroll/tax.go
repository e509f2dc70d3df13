package payroll

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rotaworks/timeclock-backend-go/internal/config"
	"github.com/rotaworks/timeclock-backend-go/internal/domain/staff"
)

var (
	ten       = decimal.NewFromInt(10)
	weeksYear = decimal.NewFromInt(52)
)

// IncomeTax computes the weekly income tax for a gross pay figure under the
// staff member's tax code, rounded to two decimal places. Negative or zero
// gross yields zero.
func IncomeTax(gross decimal.Decimal, code staff.TaxCode, cfg config.TaxConfig) decimal.Decimal {
	if gross.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	switch code.Kind {
	case staff.TaxCodeNoTax:
		return decimal.Zero
	case staff.TaxCodeBasicRate:
		return gross.Mul(cfg.BasicRate).Round(2)
	case staff.TaxCodeHigherRate:
		return gross.Mul(cfg.HigherRate).Round(2)
	case staff.TaxCodeAdditionalRate:
		return gross.Mul(cfg.AdditionalRate).Round(2)
	case staff.TaxCodeZeroAllowance:
		return bandedTax(gross, cfg).Round(2)
	}

	allowance := weeklyAllowance(code, cfg)
	taxable := decimal.Max(decimal.Zero, gross.Sub(allowance))
	return bandedTax(taxable, cfg).Round(2)
}

// weeklyAllowance derives the weekly personal allowance from a standard tax
// code's digit run. An absent or unrecognized code borrows the configured
// standard code's allowance.
func weeklyAllowance(code staff.TaxCode, cfg config.TaxConfig) decimal.Decimal {
	digits := code.AllowanceDigits
	if digits == 0 && !strings.HasPrefix(code.Raw, "0") {
		digits = staff.ParseTaxCode(cfg.StandardCode).AllowanceDigits
	}
	return decimal.NewFromInt(int64(digits)).Mul(ten).Div(weeksYear)
}

// bandedTax applies the three ascending rate bands to taxable income.
func bandedTax(taxable decimal.Decimal, cfg config.TaxConfig) decimal.Decimal {
	if taxable.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	tax := decimal.Min(taxable, cfg.WeeklyBasicRateLimit).Mul(cfg.BasicRate)

	if taxable.GreaterThan(cfg.WeeklyBasicRateLimit) {
		higher := decimal.Min(taxable, cfg.WeeklyHigherRateLimit).Sub(cfg.WeeklyBasicRateLimit)
		tax = tax.Add(higher.Mul(cfg.HigherRate))
	}

	if taxable.GreaterThan(cfg.WeeklyHigherRateLimit) {
		tax = tax.Add(taxable.Sub(cfg.WeeklyHigherRateLimit).Mul(cfg.AdditionalRate))
	}

	return tax
}

// NIContribution computes the weekly social-insurance deduction for a gross
// pay figure under the staff member's contribution category, rounded to two
// decimal places. Earnings below the primary threshold attract nothing.
func NIContribution(gross decimal.Decimal, category staff.NICategory, cfg config.NIConfig) decimal.Decimal {
	if gross.LessThanOrEqual(cfg.PrimaryThresholdWeekly) {
		return decimal.Zero
	}

	rates, ok := cfg.Categories[category.String()]
	if !ok {
		rates = cfg.Categories[cfg.StandardCategory]
	}

	main := decimal.Min(gross, cfg.UpperEarningsLimitWeekly).Sub(cfg.PrimaryThresholdWeekly)
	contribution := main.Mul(rates.MainRate)

	if gross.GreaterThan(cfg.UpperEarningsLimitWeekly) {
		upper := gross.Sub(cfg.UpperEarningsLimitWeekly)
		contribution = contribution.Add(upper.Mul(rates.UpperRate))
	}

	return contribution.Round(2)
}
