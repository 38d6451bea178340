package payroll_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/attendance"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/employee"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/payroll"
	"github.com/dayflow-hr/dayflow-backend-go/internal/events"
	"github.com/dayflow-hr/dayflow-backend-go/internal/fixtures"
	"github.com/dayflow-hr/dayflow-backend-go/internal/repository/memory"
	payrollservice "github.com/dayflow-hr/dayflow-backend-go/internal/service/payroll"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payrollEnv struct {
	svc            payroll.PayrollService
	attendanceRepo attendance.AttendanceRepository
	employeeID     string
}

func newPayrollEnv(t *testing.T) payrollEnv {
	t.Helper()

	store := memory.NewStore()
	employeeRepo := memory.NewEmployeeRepository(store)
	payrollRepo := memory.NewPayrollRepository(store)
	attendanceRepo := memory.NewAttendanceRepository(store)

	emp, err := employeeRepo.Create(context.Background(), employee.Employee{
		EmployeeCode: "DAJODO20250001",
		CompanyName:  "DayFlow",
		FirstName:    "John",
		LastName:     "Doe",
		BasicSalary:  decimal.NewFromInt(50000),
		Currency:     "INR",
		JoinDate:     time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		LeaveBalance: fixtures.DefaultLeaveBalance(),
	})
	require.NoError(t, err)

	svc := payrollservice.NewPayrollService(
		payrollRepo,
		employeeRepo,
		payrollservice.NewCalculator(payroll.DefaultPolicy()),
		events.NewNoopPublisher(),
		slog.Default(),
	)
	return payrollEnv{svc: svc, attendanceRepo: attendanceRepo, employeeID: emp.ID}
}

func (e payrollEnv) generate(t *testing.T) payroll.PayrollRecordResponse {
	t.Helper()
	resp, err := e.svc.Generate(context.Background(), payroll.GeneratePayrollRequest{
		EmployeeID:  e.employeeID,
		PeriodStart: "2025-03-01",
		PeriodEnd:   "2025-03-31",
	})
	require.NoError(t, err)
	return resp
}

func TestGenerate(t *testing.T) {
	t.Run("standard monthly record", func(t *testing.T) {
		env := newPayrollEnv(t)

		resp := env.generate(t)
		assert.Equal(t, string(payroll.PaymentStatusProcessing), resp.PaymentStatus)
		assert.Equal(t, "INR", resp.Currency)
		assert.True(t, resp.GrossEarnings.Equal(decimal.NewFromInt(72850)), "gross = %s", resp.GrossEarnings)
		assert.True(t, resp.TotalDeductions.Equal(decimal.NewFromInt(11000)), "deductions = %s", resp.TotalDeductions)
		assert.True(t, resp.NetPay.Equal(decimal.NewFromInt(61850)), "net = %s", resp.NetPay)
	})

	t.Run("overtime from attendance flows into pay", func(t *testing.T) {
		env := newPayrollEnv(t)

		day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
		out := day.Add(20*time.Hour + 30*time.Minute)
		_, err := env.attendanceRepo.Create(context.Background(), attendance.Attendance{
			EmployeeID:    env.employeeID,
			Date:          day,
			CheckInTime:   day.Add(9 * time.Hour),
			CheckOutTime:  &out,
			WorkHours:     decimal.NewFromFloat(11.5),
			OvertimeHours: decimal.NewFromFloat(3.5),
			Status:        attendance.StatusPresent,
		})
		require.NoError(t, err)

		resp := env.generate(t)
		assert.True(t, resp.Earnings.OvertimeAmount.Equal(decimal.NewFromFloat(1093.75)),
			"overtime = %s", resp.Earnings.OvertimeAmount)
		assert.True(t, resp.GrossEarnings.Equal(decimal.NewFromFloat(73943.75)), "gross = %s", resp.GrossEarnings)
	})

	t.Run("second generate for same period conflicts", func(t *testing.T) {
		env := newPayrollEnv(t)
		env.generate(t)

		_, err := env.svc.Generate(context.Background(), payroll.GeneratePayrollRequest{
			EmployeeID:  env.employeeID,
			PeriodStart: "2025-03-01",
			PeriodEnd:   "2025-03-31",
		})
		assert.ErrorIs(t, err, payroll.ErrPayrollRecordAlreadyExists)
	})

	t.Run("adjacent period is a separate record", func(t *testing.T) {
		env := newPayrollEnv(t)
		env.generate(t)

		_, err := env.svc.Generate(context.Background(), payroll.GeneratePayrollRequest{
			EmployeeID:  env.employeeID,
			PeriodStart: "2025-04-01",
			PeriodEnd:   "2025-04-30",
		})
		assert.NoError(t, err)

		records, err := env.svc.ListPayrollRecords(context.Background(), env.employeeID)
		require.NoError(t, err)
		assert.Len(t, records, 2)
	})

	t.Run("inverted period fails validation", func(t *testing.T) {
		env := newPayrollEnv(t)

		_, err := env.svc.Generate(context.Background(), payroll.GeneratePayrollRequest{
			EmployeeID:  env.employeeID,
			PeriodStart: "2025-03-31",
			PeriodEnd:   "2025-03-01",
		})
		assert.Error(t, err)
	})

	t.Run("unknown employee fails", func(t *testing.T) {
		env := newPayrollEnv(t)

		_, err := env.svc.Generate(context.Background(), payroll.GeneratePayrollRequest{
			EmployeeID:  "missing",
			PeriodStart: "2025-03-01",
			PeriodEnd:   "2025-03-31",
		})
		assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	})
}

func TestUpdatePaymentStatus(t *testing.T) {
	advance := func(t *testing.T, env payrollEnv, recordID, status string) (payroll.PayrollRecordResponse, error) {
		t.Helper()
		return env.svc.UpdatePaymentStatus(context.Background(), payroll.UpdatePaymentStatusRequest{
			RecordID: recordID,
			Status:   status,
		})
	}

	t.Run("processing to paid stamps payment time", func(t *testing.T) {
		env := newPayrollEnv(t)
		record := env.generate(t)
		assert.Nil(t, record.PaidAt)

		resp, err := advance(t, env, record.ID, "paid")
		require.NoError(t, err)
		assert.Equal(t, string(payroll.PaymentStatusPaid), resp.PaymentStatus)
		assert.NotNil(t, resp.PaidAt)
	})

	t.Run("processing cannot fall back to pending", func(t *testing.T) {
		env := newPayrollEnv(t)
		record := env.generate(t)

		_, err := advance(t, env, record.ID, "pending")
		assert.ErrorIs(t, err, payroll.ErrInvalidStatusTransition)
	})

	t.Run("paid is terminal", func(t *testing.T) {
		env := newPayrollEnv(t)
		record := env.generate(t)

		_, err := advance(t, env, record.ID, "paid")
		require.NoError(t, err)

		_, err = advance(t, env, record.ID, "cancelled")
		assert.ErrorIs(t, err, payroll.ErrInvalidStatusTransition)
	})

	t.Run("processing can be cancelled", func(t *testing.T) {
		env := newPayrollEnv(t)
		record := env.generate(t)

		resp, err := advance(t, env, record.ID, "cancelled")
		require.NoError(t, err)
		assert.Equal(t, string(payroll.PaymentStatusCancelled), resp.PaymentStatus)
	})

	t.Run("unknown record fails", func(t *testing.T) {
		env := newPayrollEnv(t)

		_, err := advance(t, env, "missing", "processing")
		assert.ErrorIs(t, err, payroll.ErrPayrollRecordNotFound)
	})

	t.Run("invalid status fails validation", func(t *testing.T) {
		env := newPayrollEnv(t)
		record := env.generate(t)

		_, err := advance(t, env, record.ID, "done")
		assert.Error(t, err)
	})
}
