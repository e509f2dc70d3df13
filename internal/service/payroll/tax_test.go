package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/rotaworks/timeclock-backend-go/internal/domain/staff"
)

func taxOn(gross string, code string) string {
	return IncomeTax(decimal.RequireFromString(gross), staff.ParseTaxCode(code), testTaxConfig()).StringFixed(2)
}

func TestIncomeTax_SpecialCodes(t *testing.T) {
	assert.Equal(t, "95.00", taxOn("475", "BR"))
	assert.Equal(t, "190.00", taxOn("475", "D0"))
	assert.Equal(t, "213.75", taxOn("475", "D1"))
	assert.Equal(t, "0.00", taxOn("475", "NT"))
}

func TestIncomeTax_ZeroAllowanceCode(t *testing.T) {
	// 0T keeps the standard bands but grants no allowance, so the whole
	// gross is taxable at the basic rate here.
	assert.Equal(t, "95.00", taxOn("475", "0T"))
}

func TestIncomeTax_StandardCode(t *testing.T) {
	// 1257L: weekly allowance 12570/52 = 241.73, taxable 233.27 at 20%.
	assert.Equal(t, "46.65", taxOn("475", "1257L"))
}

func TestIncomeTax_AbsentCodeUsesStandardAllowance(t *testing.T) {
	assert.Equal(t, taxOn("475", "1257L"), taxOn("475", ""))
}

func TestIncomeTax_UnrecognizedCodeUsesStandardAllowance(t *testing.T) {
	assert.Equal(t, taxOn("475", "1257L"), taxOn("475", "XYZ"))
}

func TestIncomeTax_HigherBand(t *testing.T) {
	// 1257L on 1000: taxable 758.27, basic band 725 at 20% then the
	// remainder at 40%.
	assert.Equal(t, "158.31", taxOn("1000", "1257L"))
}

func TestIncomeTax_AdditionalBand(t *testing.T) {
	// 0T on 3000: 725 at 20%, up to 2406.54 at 40%, remainder at 45%.
	assert.Equal(t, "1084.67", taxOn("3000", "0T"))
}

func TestIncomeTax_ZeroAndNegativeGrossClampToZero(t *testing.T) {
	assert.Equal(t, "0.00", taxOn("0", "BR"))
	assert.Equal(t, "0.00", taxOn("-50", "1257L"))
}

func niOn(gross string, category string) string {
	return NIContribution(decimal.RequireFromString(gross), staff.ParseNICategory(category), testNIConfig()).StringFixed(2)
}

func TestNIContribution_BelowPrimaryThreshold(t *testing.T) {
	assert.Equal(t, "0.00", niOn("200", "A"))
	assert.Equal(t, "0.00", niOn("242", "A"))
}

func TestNIContribution_MainBand(t *testing.T) {
	// (475 - 242) at 12%.
	assert.Equal(t, "27.96", niOn("475", "A"))
}

func TestNIContribution_AboveUpperLimit(t *testing.T) {
	// (967 - 242) at 12% plus (1000 - 967) at 2%.
	assert.Equal(t, "87.66", niOn("1000", "A"))
}

func TestNIContribution_CategoryTable(t *testing.T) {
	assert.Equal(t, "13.63", niOn("475", "B"))
	assert.Equal(t, "0.00", niOn("475", "C"))
	assert.Equal(t, "4.66", niOn("475", "J"))
}

func TestNIContribution_UnknownCategoryFallsBackToStandard(t *testing.T) {
	assert.Equal(t, niOn("475", "A"), niOn("475", "X"))
	assert.Equal(t, niOn("475", "A"), niOn("475", ""))
}
