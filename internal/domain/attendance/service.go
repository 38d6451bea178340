package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// CheckIn creates the day's record; at most one per (employee, date).
	CheckIn(ctx context.Context, req CheckInRequest) (AttendanceResponse, error)

	// CheckOut completes the day's record and derives work/overtime hours.
	CheckOut(ctx context.Context, req CheckOutRequest) (AttendanceResponse, error)

	// Summarize folds the employee's records in the range into totals
	// and averages. Read-only.
	Summarize(ctx context.Context, req SummaryRequest) (Summary, error)

	GetAttendance(ctx context.Context, id string) (AttendanceResponse, error)

	ListAttendance(ctx context.Context, req SummaryRequest) ([]AttendanceResponse, error)
}
