package attendance

import (
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

var validMethods = []string{"manual", "web", "mobile", "biometric"}

type CheckInRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Method     string `json:"method"`

	// Status overrides the derived present/late status when set, e.g.
	// half_day or on_leave entered by an administrator.
	Status *string `json:"status,omitempty"`
}

func (r CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee id is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if _, ok := validator.IsValidClockTime(r.Time); !ok {
		errs = append(errs, validator.ValidationError{Field: "time", Message: "must be a valid time (HH:MM or HH:MM:SS)"})
	}
	if !validator.IsEmpty(r.Method) && !validator.IsInSlice(r.Method, validMethods) {
		errs = append(errs, validator.ValidationError{Field: "method", Message: "must be one of manual, web, mobile, biometric"})
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, ValidStatuses) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "invalid attendance status"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CheckOutRequest struct {
	EmployeeID        string `json:"employee_id"`
	Date              string `json:"date"`
	Time              string `json:"time"`
	TotalBreakMinutes int    `json:"total_break_minutes"`
}

func (r CheckOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee id is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if _, ok := validator.IsValidClockTime(r.Time); !ok {
		errs = append(errs, validator.ValidationError{Field: "time", Message: "must be a valid time (HH:MM or HH:MM:SS)"})
	}
	if r.TotalBreakMinutes < 0 {
		errs = append(errs, validator.ValidationError{Field: "total_break_minutes", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SummaryRequest struct {
	EmployeeID string `json:"employee_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
}

func (r SummaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee id is required"})
	}
	start, okStart := validator.IsValidDate(r.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	end, okEnd := validator.IsValidDate(r.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must not be before start_date"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceResponse struct {
	ID                     string          `json:"id"`
	EmployeeID             string          `json:"employee_id"`
	Date                   string          `json:"date"`
	CheckInTime            string          `json:"check_in_time"`
	CheckOutTime           *string         `json:"check_out_time,omitempty"`
	Method                 string          `json:"method"`
	TotalBreakMinutes      int             `json:"total_break_minutes"`
	WorkHours              decimal.Decimal `json:"work_hours"`
	OvertimeHours          decimal.Decimal `json:"overtime_hours"`
	WorkHoursFormatted     string          `json:"work_hours_formatted"`
	OvertimeHoursFormatted string          `json:"overtime_hours_formatted"`
	Status                 string          `json:"status"`
}

// Summary is the fold over an employee's records for a date range. It
// is what the payroll calculator consumes as attendance input.
type Summary struct {
	EmployeeID string `json:"employee_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`

	TotalDays   int `json:"total_days"`
	PresentDays int `json:"present_days"`
	AbsentDays  int `json:"absent_days"`
	LateDays    int `json:"late_days"`
	HalfDays    int `json:"half_days"`
	LeaveDays   int `json:"leave_days"`

	TotalWorkHours     decimal.Decimal `json:"total_work_hours"`
	AverageWorkHours   decimal.Decimal `json:"average_work_hours"`
	TotalOvertimeHours decimal.Decimal `json:"total_overtime_hours"`
}
