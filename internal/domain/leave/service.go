package leave

import (
	"context"
)

type LeaveService interface {
	// Apply creates a pending request. Duration is 0.5 for half-day
	// requests, otherwise the Mon-Fri business-day count of the range.
	Apply(ctx context.Context, req ApplyLeaveRequest) (LeaveRequestResponse, error)

	// CheckBalance compares the employee's bucket balance against the
	// requested days.
	CheckBalance(ctx context.Context, req CheckBalanceRequest) (BalanceCheckResponse, error)

	// Approve flips a pending request to approved and debits the
	// balance in one atomic unit.
	Approve(ctx context.Context, req ApproveLeaveRequest) (LeaveRequestResponse, error)

	// Reject flips a pending request to rejected; the balance is untouched.
	Reject(ctx context.Context, req RejectLeaveRequest) (LeaveRequestResponse, error)

	// Cancel withdraws a pending request.
	Cancel(ctx context.Context, requestID, employeeID string) (LeaveRequestResponse, error)

	GetLeaveRequest(ctx context.Context, requestID string) (LeaveRequestResponse, error)

	ListByEmployee(ctx context.Context, employeeID string) ([]LeaveRequestResponse, error)
}
