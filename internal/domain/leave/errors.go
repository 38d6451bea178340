package leave

import "errors"

var (
	ErrLeaveRequestNotFound  = errors.New("leave request not found")
	ErrLeaveAlreadyProcessed = errors.New("leave request already processed")
	ErrInvalidDateRange      = errors.New("end date is before start date")
	ErrInsufficientBalance   = errors.New("insufficient leave balance")
)
