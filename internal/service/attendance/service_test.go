package attendance_test

import (
	"context"
	"testing"
	"time"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/attendance"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/employee"
	"github.com/dayflow-hr/dayflow-backend-go/internal/fixtures"
	"github.com/dayflow-hr/dayflow-backend-go/internal/repository/memory"
	attendanceservice "github.com/dayflow-hr/dayflow-backend-go/internal/service/attendance"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (attendance.AttendanceService, string) {
	t.Helper()

	store := memory.NewStore()
	employeeRepo := memory.NewEmployeeRepository(store)
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

	return attendanceservice.NewAttendanceService(attendanceRepo, employeeRepo), emp.ID
}

func TestCheckIn(t *testing.T) {
	t.Run("on time is present", func(t *testing.T) {
		svc, empID := newTestService(t)

		resp, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{
			EmployeeID: empID,
			Date:       "2025-03-10",
			Time:       "09:00",
			Method:     "web",
		})
		require.NoError(t, err)
		assert.Equal(t, string(attendance.StatusPresent), resp.Status)
		assert.Equal(t, "web", resp.Method)
		assert.Equal(t, "2025-03-10", resp.Date)
	})

	t.Run("within grace period is present", func(t *testing.T) {
		svc, empID := newTestService(t)

		resp, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{
			EmployeeID: empID,
			Date:       "2025-03-10",
			Time:       "09:15:00",
		})
		require.NoError(t, err)
		assert.Equal(t, string(attendance.StatusPresent), resp.Status)
	})

	t.Run("after grace period is late", func(t *testing.T) {
		svc, empID := newTestService(t)

		resp, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{
			EmployeeID: empID,
			Date:       "2025-03-10",
			Time:       "09:16",
		})
		require.NoError(t, err)
		assert.Equal(t, string(attendance.StatusLate), resp.Status)
	})

	t.Run("explicit status wins over derivation", func(t *testing.T) {
		svc, empID := newTestService(t)

		halfDay := string(attendance.StatusHalfDay)
		resp, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{
			EmployeeID: empID,
			Date:       "2025-03-10",
			Time:       "09:00",
			Status:     &halfDay,
		})
		require.NoError(t, err)
		assert.Equal(t, halfDay, resp.Status)
	})

	t.Run("empty method defaults to manual", func(t *testing.T) {
		svc, empID := newTestService(t)

		resp, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{
			EmployeeID: empID,
			Date:       "2025-03-10",
			Time:       "09:00",
		})
		require.NoError(t, err)
		assert.Equal(t, "manual", resp.Method)
	})

	t.Run("second check-in on same day conflicts", func(t *testing.T) {
		svc, empID := newTestService(t)

		_, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{
			EmployeeID: empID,
			Date:       "2025-03-10",
			Time:       "09:00",
		})
		require.NoError(t, err)

		_, err = svc.CheckIn(context.Background(), attendance.CheckInRequest{
			EmployeeID: empID,
			Date:       "2025-03-10",
			Time:       "10:00",
		})
		assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
	})

	t.Run("unknown employee fails", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{
			EmployeeID: "missing",
			Date:       "2025-03-10",
			Time:       "09:00",
		})
		assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	})
}

func TestCheckOut(t *testing.T) {
	checkIn := func(t *testing.T, svc attendance.AttendanceService, empID, clock string) {
		t.Helper()
		_, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{
			EmployeeID: empID,
			Date:       "2025-03-10",
			Time:       clock,
		})
		require.NoError(t, err)
	}

	t.Run("standard day with lunch break", func(t *testing.T) {
		svc, empID := newTestService(t)
		checkIn(t, svc, empID, "09:00")

		resp, err := svc.CheckOut(context.Background(), attendance.CheckOutRequest{
			EmployeeID:        empID,
			Date:              "2025-03-10",
			Time:              "18:00",
			TotalBreakMinutes: 60,
		})
		require.NoError(t, err)
		assert.True(t, resp.WorkHours.Equal(decimal.NewFromInt(8)), "work hours = %s", resp.WorkHours)
		assert.True(t, resp.OvertimeHours.IsZero(), "overtime = %s", resp.OvertimeHours)
		assert.Equal(t, "08:00:00", resp.WorkHoursFormatted)
		assert.Equal(t, "00:00:00", resp.OvertimeHoursFormatted)
	})

	t.Run("long day without break accrues overtime", func(t *testing.T) {
		svc, empID := newTestService(t)
		checkIn(t, svc, empID, "09:00")

		resp, err := svc.CheckOut(context.Background(), attendance.CheckOutRequest{
			EmployeeID: empID,
			Date:       "2025-03-10",
			Time:       "20:30",
		})
		require.NoError(t, err)
		assert.True(t, resp.WorkHours.Equal(decimal.NewFromFloat(11.5)), "work hours = %s", resp.WorkHours)
		assert.True(t, resp.OvertimeHours.Equal(decimal.NewFromFloat(3.5)), "overtime = %s", resp.OvertimeHours)
		assert.Equal(t, "11:30:00", resp.WorkHoursFormatted)
		assert.Equal(t, "03:30:00", resp.OvertimeHoursFormatted)
	})

	t.Run("break larger than span floors at zero", func(t *testing.T) {
		svc, empID := newTestService(t)
		checkIn(t, svc, empID, "09:00")

		resp, err := svc.CheckOut(context.Background(), attendance.CheckOutRequest{
			EmployeeID:        empID,
			Date:              "2025-03-10",
			Time:              "09:30",
			TotalBreakMinutes: 120,
		})
		require.NoError(t, err)
		assert.True(t, resp.WorkHours.IsZero())
		assert.True(t, resp.OvertimeHours.IsZero())
		assert.Equal(t, "00:00:00", resp.WorkHoursFormatted)
	})

	t.Run("without check-in fails", func(t *testing.T) {
		svc, empID := newTestService(t)

		_, err := svc.CheckOut(context.Background(), attendance.CheckOutRequest{
			EmployeeID: empID,
			Date:       "2025-03-10",
			Time:       "18:00",
		})
		assert.ErrorIs(t, err, attendance.ErrNotCheckedIn)
	})

	t.Run("before check-in fails", func(t *testing.T) {
		svc, empID := newTestService(t)
		checkIn(t, svc, empID, "09:00")

		_, err := svc.CheckOut(context.Background(), attendance.CheckOutRequest{
			EmployeeID: empID,
			Date:       "2025-03-10",
			Time:       "08:00",
		})
		assert.ErrorIs(t, err, attendance.ErrCheckOutBeforeIn)
	})

	t.Run("second check-out fails", func(t *testing.T) {
		svc, empID := newTestService(t)
		checkIn(t, svc, empID, "09:00")

		_, err := svc.CheckOut(context.Background(), attendance.CheckOutRequest{
			EmployeeID: empID,
			Date:       "2025-03-10",
			Time:       "18:00",
		})
		require.NoError(t, err)

		_, err = svc.CheckOut(context.Background(), attendance.CheckOutRequest{
			EmployeeID: empID,
			Date:       "2025-03-10",
			Time:       "19:00",
		})
		assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)
	})
}

func TestSummarize(t *testing.T) {
	svc, empID := newTestService(t)
	ctx := context.Background()

	days := []struct {
		date     string
		in, out  string
		breakMin int
	}{
		{"2025-03-10", "09:00", "18:00", 60},
		{"2025-03-11", "09:30", "18:30", 60},
		{"2025-03-12", "09:00", "20:30", 0},
	}
	for _, d := range days {
		_, err := svc.CheckIn(ctx, attendance.CheckInRequest{
			EmployeeID: empID, Date: d.date, Time: d.in,
		})
		require.NoError(t, err)
		_, err = svc.CheckOut(ctx, attendance.CheckOutRequest{
			EmployeeID: empID, Date: d.date, Time: d.out, TotalBreakMinutes: d.breakMin,
		})
		require.NoError(t, err)
	}

	summary, err := svc.Summarize(ctx, attendance.SummaryRequest{
		EmployeeID: empID,
		StartDate:  "2025-03-10",
		EndDate:    "2025-03-14",
	})
	require.NoError(t, err)

	assert.Equal(t, 3, summary.TotalDays)
	assert.Equal(t, 2, summary.PresentDays)
	assert.Equal(t, 1, summary.LateDays)
	assert.Equal(t, 0, summary.AbsentDays)
	assert.True(t, summary.TotalWorkHours.Equal(decimal.NewFromFloat(27.5)), "total = %s", summary.TotalWorkHours)
	assert.True(t, summary.TotalOvertimeHours.Equal(decimal.NewFromFloat(3.5)), "overtime = %s", summary.TotalOvertimeHours)
	assert.True(t, summary.AverageWorkHours.Equal(decimal.NewFromFloat(9.17)), "average = %s", summary.AverageWorkHours)
}

func TestSummarizeRejectsInvertedRange(t *testing.T) {
	svc, empID := newTestService(t)

	_, err := svc.Summarize(context.Background(), attendance.SummaryRequest{
		EmployeeID: empID,
		StartDate:  "2025-03-14",
		EndDate:    "2025-03-10",
	})
	assert.Error(t, err)
}
