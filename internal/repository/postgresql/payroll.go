package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/attendance"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/payroll"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

const payrollColumns = `
	id, employee_id, period_start, period_end, currency,
	earn_basic, earn_hra, earn_conveyance, earn_medical,
	earn_special_allowance, earn_bonus, earn_overtime, earn_reimbursements,
	ded_income_tax, ded_professional_tax, ded_pf_employee, ded_pf_employer,
	ded_insurance, ded_loan_repayment, ded_other,
	gross_earnings, total_deductions, net_pay,
	payment_status, paid_at, created_at, updated_at
`

func scanPayrollRecord(row pgx.Row) (payroll.PayrollRecord, error) {
	var rec payroll.PayrollRecord
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.PeriodStart, &rec.PeriodEnd, &rec.Currency,
		&rec.Earnings.Basic, &rec.Earnings.HRA, &rec.Earnings.Conveyance, &rec.Earnings.Medical,
		&rec.Earnings.SpecialAllowance, &rec.Earnings.Bonus, &rec.Earnings.OvertimeAmount, &rec.Earnings.Reimbursements,
		&rec.Deductions.IncomeTax, &rec.Deductions.ProfessionalTax, &rec.Deductions.PFEmployee, &rec.Deductions.PFEmployer,
		&rec.Deductions.Insurance, &rec.Deductions.LoanRepayment, &rec.Deductions.Other,
		&rec.GrossEarnings, &rec.TotalDeductions, &rec.NetPay,
		&rec.PaymentStatus, &rec.PaidAt, &rec.CreatedAt, &rec.UpdatedAt,
	)
	return rec, err
}

// CreatePayrollRecord inserts with ON CONFLICT DO NOTHING on the unique
// (employee_id, period_start, period_end) index, so concurrent runs for
// the same period produce exactly one record.
func (r *payrollRepository) CreatePayrollRecord(ctx context.Context, record payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_records (
			employee_id, period_start, period_end, currency,
			earn_basic, earn_hra, earn_conveyance, earn_medical,
			earn_special_allowance, earn_bonus, earn_overtime, earn_reimbursements,
			ded_income_tax, ded_professional_tax, ded_pf_employee, ded_pf_employer,
			ded_insurance, ded_loan_repayment, ded_other,
			gross_earnings, total_deductions, net_pay, payment_status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
			$13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23
		)
		ON CONFLICT (employee_id, period_start, period_end) DO NOTHING
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		record.EmployeeID, record.PeriodStart, record.PeriodEnd, record.Currency,
		record.Earnings.Basic, record.Earnings.HRA, record.Earnings.Conveyance, record.Earnings.Medical,
		record.Earnings.SpecialAllowance, record.Earnings.Bonus, record.Earnings.OvertimeAmount, record.Earnings.Reimbursements,
		record.Deductions.IncomeTax, record.Deductions.ProfessionalTax, record.Deductions.PFEmployee, record.Deductions.PFEmployer,
		record.Deductions.Insurance, record.Deductions.LoanRepayment, record.Deductions.Other,
		record.GrossEarnings, record.TotalDeductions, record.NetPay, record.PaymentStatus,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.PayrollRecord{}, payroll.ErrPayrollRecordAlreadyExists
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to create payroll record: %w", err)
	}

	return record, nil
}

func (r *payrollRepository) GetPayrollRecordByID(ctx context.Context, id string) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payrollColumns + ` FROM payroll_records WHERE id = $1`

	rec, err := scanPayrollRecord(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to get payroll record by ID: %w", err)
	}

	return rec, nil
}

func (r *payrollRepository) GetByEmployeePeriod(ctx context.Context, employeeID string, periodStart, periodEnd time.Time) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollColumns + `
		FROM payroll_records
		WHERE employee_id = $1 AND period_start = $2 AND period_end = $3
	`

	rec, err := scanPayrollRecord(q.QueryRow(ctx, query, employeeID, periodStart, periodEnd))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to get payroll record by period: %w", err)
	}

	return rec, nil
}

func (r *payrollRepository) ListByEmployee(ctx context.Context, employeeID string) ([]payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollColumns + `
		FROM payroll_records
		WHERE employee_id = $1
		ORDER BY period_start DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll records: %w", err)
	}
	defer rows.Close()

	var result []payroll.PayrollRecord
	for rows.Next() {
		rec, err := scanPayrollRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll record row: %w", err)
		}
		result = append(result, rec)
	}

	return result, rows.Err()
}

// UpdatePaymentStatus is guarded on the record still carrying the
// expected status; a stale expectation matches zero rows.
func (r *payrollRepository) UpdatePaymentStatus(ctx context.Context, id string, expected, next payroll.PaymentStatus, paidAt *time.Time) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_records
		SET payment_status = $3, paid_at = $4, updated_at = NOW()
		WHERE id = $1 AND payment_status = $2
		RETURNING ` + payrollColumns

	rec, err := scanPayrollRecord(q.QueryRow(ctx, query, id, expected, next, paidAt))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.PayrollRecord{}, r.classifyStatusMiss(ctx, id)
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to update payment status: %w", err)
	}

	return rec, nil
}

func (r *payrollRepository) classifyStatusMiss(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	var status payroll.PaymentStatus
	err := q.QueryRow(ctx, `SELECT payment_status FROM payroll_records WHERE id = $1`, id).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.ErrPayrollRecordNotFound
		}
		return fmt.Errorf("failed to check payroll record status: %w", err)
	}
	return payroll.ErrInvalidStatusTransition
}

// GetAttendanceSummary folds the period's attendance rows into the
// calculator inputs. Absent days do not count as worked.
func (r *payrollRepository) GetAttendanceSummary(ctx context.Context, employeeID string, periodStart, periodEnd time.Time) (payroll.AttendanceSummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*) FILTER (WHERE status <> $4),
			COALESCE(SUM(overtime_hours), 0)
		FROM attendances
		WHERE employee_id = $1 AND date >= $2 AND date <= $3
	`

	summary := payroll.AttendanceSummary{EmployeeID: employeeID}
	err := q.QueryRow(ctx, query, employeeID, periodStart, periodEnd, attendance.StatusAbsent).
		Scan(&summary.TotalWorkDays, &summary.TotalOvertimeHours)
	if err != nil {
		return payroll.AttendanceSummary{}, fmt.Errorf("failed to aggregate attendance summary: %w", err)
	}

	return summary, nil
}
