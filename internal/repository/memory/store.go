package memory

import (
	"sync"
	"time"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/attendance"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/employee"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/leave"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/payroll"
)

// Store is the shared in-memory state behind the memory repositories.
// One mutex guards everything, so the cross-entity approve command and
// the insert-if-absent guards are atomic exactly like their SQL
// counterparts.
type Store struct {
	mu sync.Mutex

	employees      map[string]employee.Employee // by ID
	employeeByCode map[string]string            // code -> ID

	attendances     map[string]attendance.Attendance // by ID
	attendanceByDay map[string]string                // employeeID|date -> ID

	leaveRequests map[string]leave.LeaveRequest // by ID

	payrolls        map[string]payroll.PayrollRecord // by ID
	payrollByPeriod map[string]string                // employeeID|start|end -> ID

	counters map[string]int64
}

func NewStore() *Store {
	return &Store{
		employees:       make(map[string]employee.Employee),
		employeeByCode:  make(map[string]string),
		attendances:     make(map[string]attendance.Attendance),
		attendanceByDay: make(map[string]string),
		leaveRequests:   make(map[string]leave.LeaveRequest),
		payrolls:        make(map[string]payroll.PayrollRecord),
		payrollByPeriod: make(map[string]string),
		counters:        make(map[string]int64),
	}
}

func dayKey(employeeID string, date time.Time) string {
	return employeeID + "|" + date.Format("2006-01-02")
}

func periodKey(employeeID string, start, end time.Time) string {
	return employeeID + "|" + start.Format("2006-01-02") + "|" + end.Format("2006-01-02")
}
