package fixtures

import (
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/employee"
	"github.com/shopspring/decimal"
)

// DefaultLeaveBalance is the opening balance granted to every newly
// registered employee.
func DefaultLeaveBalance() employee.LeaveBalance {
	return employee.LeaveBalance{
		Annual:   decimal.NewFromInt(12),
		Sick:     decimal.NewFromInt(10),
		Casual:   decimal.NewFromInt(8),
		Personal: decimal.NewFromInt(5),
	}
}
