package employee

import (
	"context"
)

type EmployeeService interface {
	// Register mints an employee code via the sequence issuer, seeds the
	// default leave balance and persists the employee.
	Register(ctx context.Context, req RegisterEmployeeRequest) (EmployeeResponse, error)

	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)

	GetEmployeeByCode(ctx context.Context, employeeCode string) (EmployeeResponse, error)

	// UpdateCompensation rewrites the employee's salary profile; the
	// leave balance and employee code are untouched.
	UpdateCompensation(ctx context.Context, id string, req UpdateCompensationRequest) (EmployeeResponse, error)
}
