package staff

import (
	"time"

	"github.com/shopspring/decimal"
)

type ContractType string

const (
	// ContractSalaried staff receive a fixed annual leave grant; they do not
	// accrue holiday from pay.
	ContractSalaried ContractType = "salaried"
	// ContractHourlyAccrual staff accrue statutory holiday as a fraction of
	// gross pay.
	ContractHourlyAccrual ContractType = "hourly_accrual"
)

var ContractTypeValues = []string{
	string(ContractSalaried),
	string(ContractHourlyAccrual),
}

type Profile struct {
	ID              string
	FullName        string
	HourlyRate      decimal.Decimal
	Contract        ContractType
	TaxCode         TaxCode
	Category        NICategory
	Department      string
	Role            string
	OverridePINHash *string // bcrypt hash, set only for staff allowed to authorize overrides
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Validate rejects directory rows whose pay-driving fields would corrupt a
// pay run. The directory is owned upstream, so bad rows surface as errors
// here rather than as wrong money.
func (p Profile) Validate() error {
	if p.HourlyRate.IsNegative() {
		return ErrInvalidRate
	}
	switch p.Contract {
	case ContractSalaried, ContractHourlyAccrual:
		return nil
	default:
		return ErrUnknownContract
	}
}
