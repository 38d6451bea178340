package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/employee"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `
	id, employee_code, company_name, first_name, last_name, email,
	basic_salary, currency, join_date,
	leave_balance_annual, leave_balance_sick, leave_balance_casual, leave_balance_personal,
	created_at, updated_at
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.EmployeeCode, &emp.CompanyName, &emp.FirstName, &emp.LastName, &emp.Email,
		&emp.BasicSalary, &emp.Currency, &emp.JoinDate,
		&emp.LeaveBalance.Annual, &emp.LeaveBalance.Sick, &emp.LeaveBalance.Casual, &emp.LeaveBalance.Personal,
		&emp.CreatedAt, &emp.UpdatedAt,
	)
	return emp, err
}

func (r *employeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			employee_code, company_name, first_name, last_name, email,
			basic_salary, currency, join_date,
			leave_balance_annual, leave_balance_sick, leave_balance_casual, leave_balance_personal
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		emp.EmployeeCode,
		emp.CompanyName,
		emp.FirstName,
		emp.LastName,
		emp.Email,
		emp.BasicSalary,
		emp.Currency,
		emp.JoinDate,
		emp.LeaveBalance.Annual,
		emp.LeaveBalance.Sick,
		emp.LeaveBalance.Casual,
		emp.LeaveBalance.Personal,
	).Scan(&emp.ID, &emp.CreatedAt, &emp.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return employee.Employee{}, employee.ErrEmployeeCodeExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return emp, nil
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`

	emp, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by ID: %w", err)
	}

	return emp, nil
}

func (r *employeeRepository) GetByCode(ctx context.Context, employeeCode string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE employee_code = $1`

	emp, err := scanEmployee(q.QueryRow(ctx, query, employeeCode))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by code: %w", err)
	}

	return emp, nil
}

func (r *employeeRepository) UpdateCompensation(ctx context.Context, id string, profile employee.CompensationProfile) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET basic_salary = $2, currency = $3, company_name = $4,
		    first_name = $5, last_name = $6, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, id,
		profile.BasicSalary, profile.Currency, profile.CompanyName,
		profile.FirstName, profile.LastName,
	)
	if err != nil {
		return fmt.Errorf("failed to update compensation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}
