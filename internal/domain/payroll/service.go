package payroll

import (
	"context"
)

type PayrollService interface {
	// Generate computes the period's breakdown for the employee and
	// persists it; at most one record per (employee, period). New
	// records start in payment status processing.
	Generate(ctx context.Context, req GeneratePayrollRequest) (PayrollRecordResponse, error)

	GetPayrollRecord(ctx context.Context, id string) (PayrollRecordResponse, error)

	ListPayrollRecords(ctx context.Context, employeeID string) ([]PayrollRecordResponse, error)

	// UpdatePaymentStatus advances the record along the payment state
	// machine; disallowed transitions fail with
	// ErrInvalidStatusTransition.
	UpdatePaymentStatus(ctx context.Context, req UpdatePaymentStatusRequest) (PayrollRecordResponse, error)
}
