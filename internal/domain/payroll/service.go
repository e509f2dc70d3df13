package payroll

import "context"

type Service interface {
	// GenerateSummaries computes payroll figures for the period, one summary
	// per staff member selected by the request.
	GenerateSummaries(ctx context.Context, req GenerateRequest) ([]Summary, error)

	// ApplyAccrual credits holiday hours earned over the period to each
	// hourly-accrual staff member's leave ledger. Returns how many ledgers
	// were credited.
	ApplyAccrual(ctx context.Context, req GenerateRequest) (int, error)
}
