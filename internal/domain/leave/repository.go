package leave

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// ApproveCommand is the single transactional unit that flips a pending
// request to approved and debits the employee's balance bucket. No
// other code path reaches the balance mutation.
type ApproveCommand struct {
	RequestID  string
	ApproverID string
	ApprovedAt time.Time
}

// StatusCommand covers the reject and cancel transitions; both are
// guarded on the request still being pending and leave the balance
// untouched.
type StatusCommand struct {
	RequestID   string
	Status      LeaveRequestStatus
	ActorID     string
	Reason      *string
	ProcessedAt time.Time
}

type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)

	GetByID(ctx context.Context, id string) (LeaveRequest, error)

	ListByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error)

	// SumApprovedDays totals the approved durations for the employee's
	// bucket within the calendar year.
	SumApprovedDays(ctx context.Context, employeeID, bucket string, year int) (decimal.Decimal, error)

	// Approve executes the status flip and the balance debit as one
	// atomic unit. A request no longer pending returns
	// ErrLeaveAlreadyProcessed; concurrent approvals of the same
	// request succeed at most once.
	Approve(ctx context.Context, cmd ApproveCommand) (LeaveRequest, error)

	// UpdateStatus performs the reject or cancel transition, guarded on
	// status = pending.
	UpdateStatus(ctx context.Context, cmd StatusCommand) (LeaveRequest, error)
}
