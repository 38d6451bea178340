package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance records.
type AttendanceRepository interface {
	// Create inserts a new record if none exists for the record's
	// (employee, date) pair. The insert-if-absent guard lives at the
	// storage boundary; a duplicate returns ErrAlreadyCheckedIn.
	Create(ctx context.Context, att Attendance) (Attendance, error)

	GetByID(ctx context.Context, id string) (Attendance, error)

	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (Attendance, error)

	// Update rewrites an existing record (check-out completion).
	Update(ctx context.Context, att Attendance) error

	// ListByEmployeeRange returns records for the employee with
	// startDate <= date <= endDate, ordered by date.
	ListByEmployeeRange(ctx context.Context, employeeID string, startDate, endDate time.Time) ([]Attendance, error)
}
