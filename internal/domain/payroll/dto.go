package payroll

import (
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ComputeInput carries the per-period variable figures and the optional
// allowance overrides. Nil override pointers fall back to the policy
// defaults; zero-valued amounts simply contribute nothing.
type ComputeInput struct {
	HRA        *decimal.Decimal
	Conveyance *decimal.Decimal
	Medical    *decimal.Decimal

	SpecialAllowance decimal.Decimal
	Bonus            decimal.Decimal
	Reimbursements   decimal.Decimal

	ProfessionalTax decimal.Decimal
	Insurance       decimal.Decimal
	LoanRepayment   decimal.Decimal
	OtherDeductions decimal.Decimal
}

// Breakdown is the pure computation result: the two component tables
// and the three derived totals.
type Breakdown struct {
	Earnings        Earnings
	Deductions      Deductions
	GrossEarnings   decimal.Decimal
	TotalDeductions decimal.Decimal
	NetPay          decimal.Decimal
}

type GeneratePayrollRequest struct {
	EmployeeID  string `json:"employee_id"`
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`

	Bonus            string `json:"bonus,omitempty"`
	Reimbursements   string `json:"reimbursements,omitempty"`
	SpecialAllowance string `json:"special_allowance,omitempty"`
	ProfessionalTax  string `json:"professional_tax,omitempty"`
	Insurance        string `json:"insurance,omitempty"`
	LoanRepayment    string `json:"loan_repayment,omitempty"`
	OtherDeductions  string `json:"other_deductions,omitempty"`
}

func (r GeneratePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee id is required"})
	}
	start, okStart := validator.IsValidDate(r.PeriodStart)
	if !okStart {
		errs = append(errs, validator.ValidationError{Field: "period_start", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	end, okEnd := validator.IsValidDate(r.PeriodEnd)
	if !okEnd {
		errs = append(errs, validator.ValidationError{Field: "period_end", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "period_end", Message: "must not be before period_start"})
	}

	for field, raw := range map[string]string{
		"bonus":             r.Bonus,
		"reimbursements":    r.Reimbursements,
		"special_allowance": r.SpecialAllowance,
		"professional_tax":  r.ProfessionalTax,
		"insurance":         r.Insurance,
		"loan_repayment":    r.LoanRepayment,
		"other_deductions":  r.OtherDeductions,
	} {
		if raw == "" {
			continue
		}
		if amount, err := decimal.NewFromString(raw); err != nil {
			errs = append(errs, validator.ValidationError{Field: field, Message: "must be a decimal number"})
		} else if amount.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: field, Message: "must not be negative"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdatePaymentStatusRequest struct {
	RecordID string `json:"record_id"`
	Status   string `json:"status"`
}

func (r UpdatePaymentStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RecordID) {
		errs = append(errs, validator.ValidationError{Field: "record_id", Message: "record id is required"})
	}
	if !PaymentStatus(r.Status).Valid() {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "invalid payment status"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PayrollRecordResponse struct {
	ID              string          `json:"id"`
	EmployeeID      string          `json:"employee_id"`
	PeriodStart     string          `json:"period_start"`
	PeriodEnd       string          `json:"period_end"`
	Currency        string          `json:"currency"`
	Earnings        Earnings        `json:"earnings"`
	Deductions      Deductions      `json:"deductions"`
	GrossEarnings   decimal.Decimal `json:"gross_earnings"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	NetPay          decimal.Decimal `json:"net_pay"`
	PaymentStatus   string          `json:"payment_status"`
	PaidAt          *string         `json:"paid_at,omitempty"`
}
