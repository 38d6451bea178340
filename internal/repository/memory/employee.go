package memory

import (
	"context"
	"time"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/employee"
	"github.com/google/uuid"
)

type employeeRepository struct {
	store *Store
}

func NewEmployeeRepository(store *Store) employee.EmployeeRepository {
	return &employeeRepository{store: store}
}

func (r *employeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.employeeByCode[emp.EmployeeCode]; exists {
		return employee.Employee{}, employee.ErrEmployeeCodeExists
	}

	now := time.Now().UTC()
	emp.ID = uuid.NewString()
	emp.CreatedAt = now
	emp.UpdatedAt = now

	r.store.employees[emp.ID] = emp
	r.store.employeeByCode[emp.EmployeeCode] = emp.ID
	return emp, nil
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	emp, ok := r.store.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (r *employeeRepository) GetByCode(ctx context.Context, employeeCode string) (employee.Employee, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	id, ok := r.store.employeeByCode[employeeCode]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return r.store.employees[id], nil
}

func (r *employeeRepository) UpdateCompensation(ctx context.Context, id string, profile employee.CompensationProfile) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	emp, ok := r.store.employees[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}

	emp.BasicSalary = profile.BasicSalary
	emp.Currency = profile.Currency
	emp.CompanyName = profile.CompanyName
	emp.FirstName = profile.FirstName
	emp.LastName = profile.LastName
	emp.UpdatedAt = time.Now().UTC()

	r.store.employees[id] = emp
	return nil
}
