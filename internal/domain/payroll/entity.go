package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "pending"
	PaymentStatusProcessing PaymentStatus = "processing"
	PaymentStatusPaid       PaymentStatus = "paid"
	PaymentStatusFailed     PaymentStatus = "failed"
	PaymentStatusCancelled  PaymentStatus = "cancelled"
)

// paymentTransitions encodes pending -> processing -> paid, with failed
// and cancelled reachable from pending or processing. Paid, failed and
// cancelled are terminal.
var paymentTransitions = map[PaymentStatus][]PaymentStatus{
	PaymentStatusPending:    {PaymentStatusProcessing, PaymentStatusFailed, PaymentStatusCancelled},
	PaymentStatusProcessing: {PaymentStatusPaid, PaymentStatusFailed, PaymentStatusCancelled},
}

// CanTransition reports whether moving from s to next is allowed.
func (s PaymentStatus) CanTransition(next PaymentStatus) bool {
	for _, allowed := range paymentTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusProcessing, PaymentStatusPaid,
		PaymentStatusFailed, PaymentStatusCancelled:
		return true
	}
	return false
}

// Earnings is the per-record earnings breakdown.
type Earnings struct {
	Basic            decimal.Decimal `json:"basic"`
	HRA              decimal.Decimal `json:"hra"`
	Conveyance       decimal.Decimal `json:"conveyance"`
	Medical          decimal.Decimal `json:"medical"`
	SpecialAllowance decimal.Decimal `json:"special_allowance"`
	Bonus            decimal.Decimal `json:"bonus"`
	OvertimeAmount   decimal.Decimal `json:"overtime_amount"`
	Reimbursements   decimal.Decimal `json:"reimbursements"`
}

// Deductions is the per-record deductions breakdown. PFEmployer is
// informational only and excluded from the employee-facing total.
type Deductions struct {
	IncomeTax       decimal.Decimal `json:"income_tax"`
	ProfessionalTax decimal.Decimal `json:"professional_tax"`
	PFEmployee      decimal.Decimal `json:"pf_employee"`
	PFEmployer      decimal.Decimal `json:"pf_employer"`
	Insurance       decimal.Decimal `json:"insurance"`
	LoanRepayment   decimal.Decimal `json:"loan_repayment"`
	Other           decimal.Decimal `json:"other"`
}

// PayrollRecord is one employee's compensation for one pay period. At
// most one record exists per (employee, period); gross and net are
// always recomputed from the breakdowns, never trusted as stored.
type PayrollRecord struct {
	ID         string
	EmployeeID string

	PeriodStart time.Time
	PeriodEnd   time.Time

	Currency string

	Earnings   Earnings
	Deductions Deductions

	GrossEarnings   decimal.Decimal
	TotalDeductions decimal.Decimal
	NetPay          decimal.Decimal

	PaymentStatus PaymentStatus
	PaidAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AttendanceSummary is the attendance input the calculator consumes:
// the worked-day count and overtime hours for the period.
type AttendanceSummary struct {
	EmployeeID         string
	TotalWorkDays      int
	TotalOvertimeHours decimal.Decimal
}
