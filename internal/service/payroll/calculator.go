package payroll

import (
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// Calculator turns a basic salary, an attendance summary and the
// per-period inputs into a payroll breakdown. It is pure: the same
// inputs always produce the same breakdown.
type Calculator struct {
	policy payroll.CompensationPolicy
}

func NewCalculator(policy payroll.CompensationPolicy) *Calculator {
	return &Calculator{policy: policy}
}

// Compute derives the full breakdown. All money figures round to two
// decimal places; net pay is gross minus deductions and may go
// negative when deductions exceed earnings.
func (c *Calculator) Compute(basic decimal.Decimal, overtimeHours decimal.Decimal, input payroll.ComputeInput) payroll.Breakdown {
	earnings := payroll.Earnings{
		Basic:            basic.Round(2),
		HRA:              override(input.HRA, basic.Mul(c.policy.HRARate)).Round(2),
		Conveyance:       override(input.Conveyance, c.policy.ConveyanceAmount).Round(2),
		Medical:          override(input.Medical, c.policy.MedicalAmount).Round(2),
		SpecialAllowance: input.SpecialAllowance.Round(2),
		Bonus:            input.Bonus.Round(2),
		OvertimeAmount:   c.OvertimePay(basic, overtimeHours),
		Reimbursements:   input.Reimbursements.Round(2),
	}

	pf := basic.Mul(c.policy.PFRate).Round(2)
	professionalTax := input.ProfessionalTax
	if professionalTax.IsZero() {
		professionalTax = c.policy.ProfessionalTaxAmt
	}
	deductions := payroll.Deductions{
		IncomeTax:       basic.Mul(c.policy.IncomeTaxRate).Round(2),
		ProfessionalTax: professionalTax.Round(2),
		PFEmployee:      pf,
		PFEmployer:      pf,
		Insurance:       input.Insurance.Round(2),
		LoanRepayment:   input.LoanRepayment.Round(2),
		Other:           input.OtherDeductions.Round(2),
	}

	gross := earnings.Basic.
		Add(earnings.HRA).
		Add(earnings.Conveyance).
		Add(earnings.Medical).
		Add(earnings.SpecialAllowance).
		Add(earnings.Bonus).
		Add(earnings.OvertimeAmount).
		Add(earnings.Reimbursements)

	// PFEmployer is carried for reporting but never reduces net pay.
	total := deductions.IncomeTax.
		Add(deductions.ProfessionalTax).
		Add(deductions.PFEmployee).
		Add(deductions.Insurance).
		Add(deductions.LoanRepayment).
		Add(deductions.Other)

	return payroll.Breakdown{
		Earnings:        earnings,
		Deductions:      deductions,
		GrossEarnings:   gross,
		TotalDeductions: total,
		NetPay:          gross.Sub(total),
	}
}

// OvertimePay prices overtime hours at the derived hourly rate times
// the policy multiplier. The hourly rate is basic over the month's
// working hours (working days times standard day hours).
func (c *Calculator) OvertimePay(basic, overtimeHours decimal.Decimal) decimal.Decimal {
	if !overtimeHours.IsPositive() {
		return decimal.Zero
	}
	monthlyHours := decimal.NewFromInt(c.policy.WorkingDaysPerMonth * c.policy.StandardDayHours)
	hourlyRate := basic.Div(monthlyHours)
	return overtimeHours.Mul(hourlyRate).Mul(c.policy.OvertimeMultiplier).Round(2)
}

func override(value *decimal.Decimal, fallback decimal.Decimal) decimal.Decimal {
	if value != nil {
		return *value
	}
	return fallback
}
