package leave

// BalanceResponse is the API shape of a leave ledger. Hour figures are
// fixed to two decimal places.
type BalanceResponse struct {
	StaffID          string `json:"staff_id"`
	Year             int    `json:"year"`
	EntitlementHours string `json:"entitlement_hours"`
	AccruedHours     string `json:"accrued_hours"`
	UsedHours        string `json:"used_hours"`
	AvailableHours   string `json:"available_hours"`
}

func (b Balance) ToResponse() BalanceResponse {
	return BalanceResponse{
		StaffID:          b.StaffID,
		Year:             b.Year,
		EntitlementHours: b.EntitlementHours.StringFixed(2),
		AccruedHours:     b.AccruedHours.StringFixed(2),
		UsedHours:        b.UsedHours.StringFixed(2),
		AvailableHours:   b.Available().StringFixed(2),
	}
}
