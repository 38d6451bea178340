package events

import "time"

const (
	TopicLeaveApproved    = "leave.approved"
	TopicPayrollGenerated = "payroll.generated"
	TopicEmployeeIssued   = "employee.issued"
)

// LeaveApproved is emitted after a leave request flips to approved and
// the balance debit has committed.
type LeaveApproved struct {
	RequestID  string    `json:"request_id"`
	EmployeeID string    `json:"employee_id"`
	LeaveType  string    `json:"leave_type"`
	Bucket     string    `json:"bucket"`
	TotalDays  string    `json:"total_days"`
	ApprovedBy string    `json:"approved_by"`
	ApprovedAt time.Time `json:"approved_at"`
}

// PayrollGenerated is emitted after a payroll record is created.
type PayrollGenerated struct {
	RecordID    string    `json:"record_id"`
	EmployeeID  string    `json:"employee_id"`
	PeriodStart time.Time `json:"period_start"`
	PeriodEnd   time.Time `json:"period_end"`
	NetPay      string    `json:"net_pay"`
	Currency    string    `json:"currency"`
}

// EmployeeIssued is emitted when a new employee code is issued.
type EmployeeIssued struct {
	EmployeeCode string `json:"employee_code"`
	Company      string `json:"company"`
	JoinYear     int    `json:"join_year"`
	Sequence     int64  `json:"sequence"`
}
