package leave

import "github.com/shopspring/decimal"

// Balance is a staff member's leave ledger for one year. Salaried staff get
// a fixed entitlement grant; hourly-accrual staff build AccruedHours from
// the pay calculator's holiday accrual figure.
type Balance struct {
	StaffID          string
	Year             int
	EntitlementHours decimal.Decimal
	AccruedHours     decimal.Decimal
	UsedHours        decimal.Decimal
}

// Available returns the hours still available to take. The ledger
// transaction that prevents this from going negative lives in the store,
// not here.
func (b Balance) Available() decimal.Decimal {
	return b.EntitlementHours.Add(b.AccruedHours).Sub(b.UsedHours)
}
