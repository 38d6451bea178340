package payroll

import (
	"context"
	"time"
)

type PayrollRepository interface {
	// CreatePayrollRecord inserts a record if none exists for the
	// record's (employee, period) key. The insert-if-absent guard lives
	// at the storage boundary; a duplicate returns
	// ErrPayrollRecordAlreadyExists.
	CreatePayrollRecord(ctx context.Context, record PayrollRecord) (PayrollRecord, error)

	GetPayrollRecordByID(ctx context.Context, id string) (PayrollRecord, error)

	GetByEmployeePeriod(ctx context.Context, employeeID string, periodStart, periodEnd time.Time) (PayrollRecord, error)

	ListByEmployee(ctx context.Context, employeeID string) ([]PayrollRecord, error)

	// UpdatePaymentStatus performs a conditional write: the record must
	// still carry expected for the transition to apply, otherwise
	// ErrInvalidStatusTransition.
	UpdatePaymentStatus(ctx context.Context, id string, expected, next PaymentStatus, paidAt *time.Time) (PayrollRecord, error)

	// GetAttendanceSummary aggregates the employee's attendance rows
	// for the period into the calculator's input figures.
	GetAttendanceSummary(ctx context.Context, employeeID string, periodStart, periodEnd time.Time) (AttendanceSummary, error)
}
