package leave

import (
	"time"

	"github.com/shopspring/decimal"
)

type LeaveRequestStatus string

const (
	LeaveRequestStatusPending   LeaveRequestStatus = "pending"
	LeaveRequestStatusApproved  LeaveRequestStatus = "approved"
	LeaveRequestStatusRejected  LeaveRequestStatus = "rejected"
	LeaveRequestStatusCancelled LeaveRequestStatus = "cancelled"
)

// Known leave types. Other values are accepted and drain the casual
// bucket (see BalanceBucket).
const (
	TypeAnnual   = "annual"
	TypeSick     = "sick"
	TypePersonal = "personal"
	TypeCasual   = "casual"
)

// BalanceBucket is the single canonical mapping from leave type to the
// balance bucket it drains. Every code path that touches a balance goes
// through this function.
func BalanceBucket(leaveType string) string {
	switch leaveType {
	case TypeAnnual:
		return TypeAnnual
	case TypeSick:
		return TypeSick
	case TypePersonal:
		return TypePersonal
	default:
		return TypeCasual
	}
}

// LeaveRequest entity. Terminal once approved, rejected or cancelled.
type LeaveRequest struct {
	ID         string
	EmployeeID string
	LeaveType  string

	StartDate time.Time
	EndDate   time.Time

	// HalfDay requests always have a duration of 0.5 days.
	HalfDay bool

	// TotalDays is the business-day duration debited on approval.
	TotalDays decimal.Decimal

	Reason string

	Status          LeaveRequestStatus
	ApprovedBy      *string
	ApprovedAt      *time.Time
	RejectionReason *string
	CancelledAt     *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
