package payroll

import "github.com/shopspring/decimal"

// CompensationPolicy enumerates every allowance and deduction default
// explicitly. Overrides are per-request; the policy itself is fixed at
// construction.
type CompensationPolicy struct {
	// Allowances
	HRARate          decimal.Decimal // fraction of basic
	ConveyanceAmount decimal.Decimal // flat
	MedicalAmount    decimal.Decimal // flat

	// Deductions
	PFRate             decimal.Decimal // fraction of basic, employee and employer each
	IncomeTaxRate      decimal.Decimal // flat simplified fraction of basic
	ProfessionalTaxAmt decimal.Decimal // flat

	// Overtime
	OvertimeMultiplier  decimal.Decimal
	WorkingDaysPerMonth int64
	StandardDayHours    int64
}

// DefaultPolicy returns the standard policy: HRA 40% of basic, flat
// conveyance 1600 and medical 1250, PF 12% each side, income tax at a
// simplified flat 10%, overtime at 1.5x the derived hourly rate.
func DefaultPolicy() CompensationPolicy {
	return CompensationPolicy{
		HRARate:             decimal.NewFromFloat(0.40),
		ConveyanceAmount:    decimal.NewFromInt(1600),
		MedicalAmount:       decimal.NewFromInt(1250),
		PFRate:              decimal.NewFromFloat(0.12),
		IncomeTaxRate:       decimal.NewFromFloat(0.10),
		ProfessionalTaxAmt:  decimal.Zero,
		OvertimeMultiplier:  decimal.NewFromFloat(1.5),
		WorkingDaysPerMonth: 30,
		StandardDayHours:    8,
	}
}
