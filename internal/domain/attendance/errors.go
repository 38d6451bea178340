package attendance

import "errors"

// Attendance domain errors
var (
	// Check-in / check-out errors
	ErrAlreadyCheckedIn  = errors.New("attendance record already exists for this date")
	ErrNotCheckedIn      = errors.New("no check-in found for this date")
	ErrAlreadyCheckedOut = errors.New("check-out already recorded")
	ErrCheckOutBeforeIn  = errors.New("check-out time is before check-in time")

	// General errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
)
