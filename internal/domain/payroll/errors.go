package payroll

import "errors"

var (
	ErrPayrollRecordNotFound      = errors.New("payroll record not found")
	ErrPayrollRecordAlreadyExists = errors.New("payroll record already exists for this period")
	ErrInvalidPeriod              = errors.New("period end is before period start")
	ErrInvalidStatusTransition    = errors.New("payment status transition not allowed")
)
