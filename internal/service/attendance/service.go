package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/attendance"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/employee"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
	}
}

// CheckIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to resolve employee: %w", err)
	}

	date, _ := validator.IsValidDate(req.Date)
	clock, _ := validator.IsValidClockTime(req.Time)
	checkInTime := combine(date, clock)

	method := req.Method
	if method == "" {
		method = "manual"
	}

	status := deriveCheckInStatus(checkInTime)
	if req.Status != nil {
		status = attendance.Status(*req.Status)
	}

	att := attendance.Attendance{
		EmployeeID:             req.EmployeeID,
		Date:                   date,
		CheckInTime:            checkInTime,
		Method:                 method,
		WorkHours:              decimal.Zero,
		OvertimeHours:          decimal.Zero,
		WorkHoursFormatted:     formatHours(0),
		OvertimeHoursFormatted: formatHours(0),
		Status:                 status,
	}

	created, err := s.AttendanceRepository.Create(ctx, att)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return toResponse(created), nil
}

// CheckOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)
	clock, _ := validator.IsValidClockTime(req.Time)
	checkOutTime := combine(date, clock)

	att, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, req.EmployeeID, date)
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.AttendanceResponse{}, attendance.ErrNotCheckedIn
		}
		return attendance.AttendanceResponse{}, err
	}

	if att.CheckOutTime != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedOut
	}
	if checkOutTime.Before(att.CheckInTime) {
		return attendance.AttendanceResponse{}, attendance.ErrCheckOutBeforeIn
	}

	workMinutes, overtimeMinutes := deriveMinutes(att.CheckInTime, checkOutTime, req.TotalBreakMinutes)

	att.CheckOutTime = &checkOutTime
	att.TotalBreakMinutes = req.TotalBreakMinutes
	att.WorkHours = minutesToHours(workMinutes)
	att.OvertimeHours = minutesToHours(overtimeMinutes)
	att.WorkHoursFormatted = formatHours(workMinutes)
	att.OvertimeHoursFormatted = formatHours(overtimeMinutes)

	if err := s.AttendanceRepository.Update(ctx, att); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return toResponse(att), nil
}

// Summarize implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Summarize(ctx context.Context, req attendance.SummaryRequest) (attendance.Summary, error) {
	if err := req.Validate(); err != nil {
		return attendance.Summary{}, err
	}

	start, _ := validator.IsValidDate(req.StartDate)
	end, _ := validator.IsValidDate(req.EndDate)

	records, err := s.AttendanceRepository.ListByEmployeeRange(ctx, req.EmployeeID, start, end)
	if err != nil {
		return attendance.Summary{}, fmt.Errorf("failed to list attendances for summary: %w", err)
	}

	summary := attendance.Summary{
		EmployeeID:         req.EmployeeID,
		StartDate:          req.StartDate,
		EndDate:            req.EndDate,
		TotalWorkHours:     decimal.Zero,
		AverageWorkHours:   decimal.Zero,
		TotalOvertimeHours: decimal.Zero,
	}

	for _, att := range records {
		summary.TotalDays++
		switch att.Status {
		case attendance.StatusPresent:
			summary.PresentDays++
		case attendance.StatusAbsent:
			summary.AbsentDays++
		case attendance.StatusLate:
			summary.LateDays++
		case attendance.StatusHalfDay:
			summary.HalfDays++
		case attendance.StatusOnLeave:
			summary.LeaveDays++
		}
		summary.TotalWorkHours = summary.TotalWorkHours.Add(att.WorkHours)
		summary.TotalOvertimeHours = summary.TotalOvertimeHours.Add(att.OvertimeHours)
	}

	if summary.TotalDays > 0 {
		summary.AverageWorkHours = summary.TotalWorkHours.
			Div(decimal.NewFromInt(int64(summary.TotalDays))).Round(2)
	}

	return summary, nil
}

// GetAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetAttendance(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	att, err := s.AttendanceRepository.GetByID(ctx, id)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return toResponse(att), nil
}

// ListAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListAttendance(ctx context.Context, req attendance.SummaryRequest) ([]attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	start, _ := validator.IsValidDate(req.StartDate)
	end, _ := validator.IsValidDate(req.EndDate)

	records, err := s.AttendanceRepository.ListByEmployeeRange(ctx, req.EmployeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, att := range records {
		responses = append(responses, toResponse(att))
	}
	return responses, nil
}

// deriveCheckInStatus marks a check-in late when it lands after the
// scheduled start plus the grace period. Exactly on the boundary still
// counts as present.
func deriveCheckInStatus(checkIn time.Time) attendance.Status {
	cutoff := time.Date(
		checkIn.Year(), checkIn.Month(), checkIn.Day(),
		attendance.ScheduledStartHour, attendance.GracePeriodMinutes, 0, 0,
		checkIn.Location(),
	)
	if checkIn.After(cutoff) {
		return attendance.StatusLate
	}
	return attendance.StatusPresent
}

// deriveMinutes computes worked and overtime minutes for a completed
// day. Worked time floors at zero when the break exceeds the span, and
// only time past the standard day counts as overtime.
func deriveMinutes(checkIn, checkOut time.Time, breakMinutes int) (work, overtime int) {
	work = int(checkOut.Sub(checkIn).Minutes()) - breakMinutes
	if work < 0 {
		work = 0
	}
	overtime = work - attendance.StandardDayHours*60
	if overtime < 0 {
		overtime = 0
	}
	return work, overtime
}

func minutesToHours(minutes int) decimal.Decimal {
	return decimal.NewFromInt(int64(minutes)).Div(decimal.NewFromInt(60)).Round(2)
}

// formatHours renders a minute count as HH:MM:SS.
func formatHours(minutes int) string {
	return fmt.Sprintf("%02d:%02d:00", minutes/60, minutes%60)
}

func combine(date, clock time.Time) time.Time {
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), clock.Second(), 0,
		time.UTC,
	)
}

func toResponse(att attendance.Attendance) attendance.AttendanceResponse {
	resp := attendance.AttendanceResponse{
		ID:                     att.ID,
		EmployeeID:             att.EmployeeID,
		Date:                   att.Date.Format("2006-01-02"),
		CheckInTime:            att.CheckInTime.Format("2006-01-02 15:04:05"),
		Method:                 att.Method,
		TotalBreakMinutes:      att.TotalBreakMinutes,
		WorkHours:              att.WorkHours,
		OvertimeHours:          att.OvertimeHours,
		WorkHoursFormatted:     att.WorkHoursFormatted,
		OvertimeHoursFormatted: att.OvertimeHoursFormatted,
		Status:                 string(att.Status),
	}
	if att.CheckOutTime != nil {
		out := att.CheckOutTime.Format("2006-01-02 15:04:05")
		resp.CheckOutTime = &out
	}
	return resp
}
