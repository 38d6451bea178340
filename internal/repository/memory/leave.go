package memory

import (
	"context"
	"time"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/employee"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/leave"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type leaveRequestRepository struct {
	store *Store
}

func NewLeaveRequestRepository(store *Store) leave.LeaveRequestRepository {
	return &leaveRequestRepository{store: store}
}

func (r *leaveRequestRepository) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	now := time.Now().UTC()
	request.ID = uuid.NewString()
	request.CreatedAt = now
	request.UpdatedAt = now

	r.store.leaveRequests[request.ID] = request
	return request, nil
}

func (r *leaveRequestRepository) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	request, ok := r.store.leaveRequests[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return request, nil
}

func (r *leaveRequestRepository) ListByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var result []leave.LeaveRequest
	for _, request := range r.store.leaveRequests {
		if request.EmployeeID == employeeID {
			result = append(result, request)
		}
	}
	return result, nil
}

func (r *leaveRequestRepository) SumApprovedDays(ctx context.Context, employeeID, bucket string, year int) (decimal.Decimal, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	total := decimal.Zero
	for _, request := range r.store.leaveRequests {
		if request.EmployeeID != employeeID || request.Status != leave.LeaveRequestStatusApproved {
			continue
		}
		if leave.BalanceBucket(request.LeaveType) != bucket {
			continue
		}
		if request.StartDate.Year() != year {
			continue
		}
		total = total.Add(request.TotalDays)
	}
	return total, nil
}

// Approve performs the status flip and the balance debit under one
// lock. The status guard makes a second concurrent approval observe
// approved and fail instead of double-debiting.
func (r *leaveRequestRepository) Approve(ctx context.Context, cmd leave.ApproveCommand) (leave.LeaveRequest, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	request, ok := r.store.leaveRequests[cmd.RequestID]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	if request.Status != leave.LeaveRequestStatusPending {
		return leave.LeaveRequest{}, leave.ErrLeaveAlreadyProcessed
	}

	emp, ok := r.store.employees[request.EmployeeID]
	if !ok {
		return leave.LeaveRequest{}, employee.ErrEmployeeNotFound
	}

	approvedAt := cmd.ApprovedAt
	request.Status = leave.LeaveRequestStatusApproved
	request.ApprovedBy = &cmd.ApproverID
	request.ApprovedAt = &approvedAt
	request.UpdatedAt = time.Now().UTC()

	debit(&emp.LeaveBalance, leave.BalanceBucket(request.LeaveType), request.TotalDays)
	emp.UpdatedAt = request.UpdatedAt

	r.store.leaveRequests[request.ID] = request
	r.store.employees[emp.ID] = emp
	return request, nil
}

func (r *leaveRequestRepository) UpdateStatus(ctx context.Context, cmd leave.StatusCommand) (leave.LeaveRequest, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	request, ok := r.store.leaveRequests[cmd.RequestID]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	if request.Status != leave.LeaveRequestStatusPending {
		return leave.LeaveRequest{}, leave.ErrLeaveAlreadyProcessed
	}

	processedAt := cmd.ProcessedAt
	request.Status = cmd.Status
	request.UpdatedAt = time.Now().UTC()

	switch cmd.Status {
	case leave.LeaveRequestStatusRejected:
		request.ApprovedBy = &cmd.ActorID
		request.ApprovedAt = &processedAt
		request.RejectionReason = cmd.Reason
	case leave.LeaveRequestStatusCancelled:
		request.CancelledAt = &processedAt
	}

	r.store.leaveRequests[request.ID] = request
	return request, nil
}

// debit subtracts days from the named bucket, floored at zero.
func debit(balance *employee.LeaveBalance, bucket string, days decimal.Decimal) {
	apply := func(current decimal.Decimal) decimal.Decimal {
		next := current.Sub(days)
		if next.IsNegative() {
			return decimal.Zero
		}
		return next
	}

	switch bucket {
	case leave.TypeAnnual:
		balance.Annual = apply(balance.Annual)
	case leave.TypeSick:
		balance.Sick = apply(balance.Sick)
	case leave.TypePersonal:
		balance.Personal = apply(balance.Personal)
	default:
		balance.Casual = apply(balance.Casual)
	}
}
