package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusLate    Status = "late"
	StatusHalfDay Status = "half_day"
	StatusOnLeave Status = "on_leave"
)

// Statuses a caller may supply explicitly at check-in.
var ValidStatuses = []string{
	string(StatusPresent),
	string(StatusAbsent),
	string(StatusLate),
	string(StatusHalfDay),
	string(StatusOnLeave),
}

const (
	// Scheduled workday start. Check-ins after start + grace are late.
	ScheduledStartHour = 9
	GracePeriodMinutes = 15
	StandardDayHours   = 8
)

// Attendance is one employee-day record. At most one record exists per
// (employee, date); it is created at check-in and completed at check-out.
type Attendance struct {
	ID         string
	EmployeeID string
	Date       time.Time

	CheckInTime  time.Time
	CheckOutTime *time.Time

	// Method records how the check-in was captured: manual, web,
	// mobile or biometric.
	Method string

	TotalBreakMinutes int

	WorkHours     decimal.Decimal
	OvertimeHours decimal.Decimal

	// HH:MM:SS renderings of the two figures above, kept alongside the
	// decimals for display surfaces.
	WorkHoursFormatted     string
	OvertimeHoursFormatted string

	Status Status

	CreatedAt time.Time
	UpdatedAt time.Time
}
