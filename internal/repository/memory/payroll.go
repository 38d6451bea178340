package memory

import (
	"context"
	"sort"
	"time"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/attendance"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/payroll"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type payrollRepository struct {
	store *Store
}

func NewPayrollRepository(store *Store) payroll.PayrollRepository {
	return &payrollRepository{store: store}
}

// CreatePayrollRecord holds the store lock across the existence check
// and the insert, enforcing one record per (employee, period).
func (r *payrollRepository) CreatePayrollRecord(ctx context.Context, record payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	key := periodKey(record.EmployeeID, record.PeriodStart, record.PeriodEnd)
	if _, exists := r.store.payrollByPeriod[key]; exists {
		return payroll.PayrollRecord{}, payroll.ErrPayrollRecordAlreadyExists
	}

	now := time.Now().UTC()
	record.ID = uuid.NewString()
	record.CreatedAt = now
	record.UpdatedAt = now

	r.store.payrolls[record.ID] = record
	r.store.payrollByPeriod[key] = record.ID
	return record, nil
}

func (r *payrollRepository) GetPayrollRecordByID(ctx context.Context, id string) (payroll.PayrollRecord, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	record, ok := r.store.payrolls[id]
	if !ok {
		return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
	}
	return record, nil
}

func (r *payrollRepository) GetByEmployeePeriod(ctx context.Context, employeeID string, periodStart, periodEnd time.Time) (payroll.PayrollRecord, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	id, ok := r.store.payrollByPeriod[periodKey(employeeID, periodStart, periodEnd)]
	if !ok {
		return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
	}
	return r.store.payrolls[id], nil
}

func (r *payrollRepository) ListByEmployee(ctx context.Context, employeeID string) ([]payroll.PayrollRecord, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var result []payroll.PayrollRecord
	for _, record := range r.store.payrolls {
		if record.EmployeeID == employeeID {
			result = append(result, record)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].PeriodStart.Before(result[j].PeriodStart)
	})
	return result, nil
}

// UpdatePaymentStatus is conditional on the record still carrying the
// expected status, mirroring the SQL conditional write.
func (r *payrollRepository) UpdatePaymentStatus(ctx context.Context, id string, expected, next payroll.PaymentStatus, paidAt *time.Time) (payroll.PayrollRecord, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	record, ok := r.store.payrolls[id]
	if !ok {
		return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
	}
	if record.PaymentStatus != expected {
		return payroll.PayrollRecord{}, payroll.ErrInvalidStatusTransition
	}

	record.PaymentStatus = next
	record.PaidAt = paidAt
	record.UpdatedAt = time.Now().UTC()

	r.store.payrolls[id] = record
	return record, nil
}

func (r *payrollRepository) GetAttendanceSummary(ctx context.Context, employeeID string, periodStart, periodEnd time.Time) (payroll.AttendanceSummary, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	summary := payroll.AttendanceSummary{
		EmployeeID:         employeeID,
		TotalOvertimeHours: decimal.Zero,
	}

	for _, att := range r.store.attendances {
		if att.EmployeeID != employeeID {
			continue
		}
		if att.Date.Before(periodStart) || att.Date.After(periodEnd) {
			continue
		}
		if att.Status == attendance.StatusAbsent {
			continue
		}
		summary.TotalWorkDays++
		summary.TotalOvertimeHours = summary.TotalOvertimeHours.Add(att.OvertimeHours)
	}

	return summary, nil
}
