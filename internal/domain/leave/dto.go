package leave

import (
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type ApplyLeaveRequest struct {
	EmployeeID string `json:"employee_id"`
	LeaveType  string `json:"leave_type"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	HalfDay    bool   `json:"half_day"`
	Reason     string `json:"reason"`
}

func (r ApplyLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee id is required"})
	}
	if validator.IsEmpty(r.LeaveType) {
		errs = append(errs, validator.ValidationError{Field: "leave_type", Message: "leave type is required"})
	}
	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CheckBalanceRequest struct {
	EmployeeID    string `json:"employee_id"`
	LeaveType     string `json:"leave_type"`
	RequestedDays string `json:"requested_days"`
}

func (r CheckBalanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee id is required"})
	}
	if validator.IsEmpty(r.LeaveType) {
		errs = append(errs, validator.ValidationError{Field: "leave_type", Message: "leave type is required"})
	}
	if days, err := decimal.NewFromString(r.RequestedDays); err != nil {
		errs = append(errs, validator.ValidationError{Field: "requested_days", Message: "must be a decimal number"})
	} else if days.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "requested_days", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// BalanceCheckResponse reports whether requested days fit the current
// balance. The balance is already usage-adjusted because approvals
// debit it directly; UsedDays is informational.
type BalanceCheckResponse struct {
	EmployeeID       string          `json:"employee_id"`
	LeaveType        string          `json:"leave_type"`
	Bucket           string          `json:"bucket"`
	AvailableBalance decimal.Decimal `json:"available_balance"`
	UsedDays         decimal.Decimal `json:"used_days"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
	Sufficient       bool            `json:"sufficient"`
}

type ApproveLeaveRequest struct {
	RequestID  string `json:"request_id"`
	ApproverID string `json:"approver_id"`
}

type RejectLeaveRequest struct {
	RequestID  string `json:"request_id"`
	ApproverID string `json:"approver_id"`
	Reason     string `json:"reason"`
}

func (r RejectLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RequestID) {
		errs = append(errs, validator.ValidationError{Field: "request_id", Message: "request id is required"})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "rejection reason is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LeaveRequestResponse struct {
	ID              string          `json:"id"`
	EmployeeID      string          `json:"employee_id"`
	LeaveType       string          `json:"leave_type"`
	StartDate       string          `json:"start_date"`
	EndDate         string          `json:"end_date"`
	HalfDay         bool            `json:"half_day"`
	TotalDays       decimal.Decimal `json:"total_days"`
	Reason          string          `json:"reason,omitempty"`
	Status          string          `json:"status"`
	ApprovedBy      *string         `json:"approved_by,omitempty"`
	ApprovedAt      *string         `json:"approved_at,omitempty"`
	RejectionReason *string         `json:"rejection_reason,omitempty"`
	CancelledAt     *string         `json:"cancelled_at,omitempty"`
}
