package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)

	GetByID(ctx context.Context, id string) (Employee, error)

	GetByCode(ctx context.Context, employeeCode string) (Employee, error)

	// UpdateCompensation replaces the compensation fields only; the
	// leave balance is written exclusively by the leave repository's
	// approve command.
	UpdateCompensation(ctx context.Context, id string, profile CompensationProfile) error
}
