package leave

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/employee"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/leave"
	"github.com/dayflow-hr/dayflow-backend-go/internal/events"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type LeaveServiceImpl struct {
	leave.LeaveRequestRepository
	employee.EmployeeRepository
	publisher events.Publisher
	logger    *slog.Logger
}

func NewLeaveService(
	leaveRepo leave.LeaveRequestRepository,
	employeeRepo employee.EmployeeRepository,
	publisher events.Publisher,
	logger *slog.Logger,
) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveRequestRepository: leaveRepo,
		EmployeeRepository:     employeeRepo,
		publisher:              publisher,
		logger:                 logger,
	}
}

// Apply implements leave.LeaveService.
func (s *LeaveServiceImpl) Apply(ctx context.Context, req leave.ApplyLeaveRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	start, _ := validator.IsValidDate(req.StartDate)
	end, _ := validator.IsValidDate(req.EndDate)
	if end.Before(start) {
		return leave.LeaveRequestResponse{}, leave.ErrInvalidDateRange
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to resolve employee: %w", err)
	}

	totalDays := BusinessDays(start, end)
	if req.HalfDay {
		totalDays = decimal.NewFromFloat(0.5)
	}

	request := leave.LeaveRequest{
		EmployeeID: req.EmployeeID,
		LeaveType:  req.LeaveType,
		StartDate:  start,
		EndDate:    end,
		HalfDay:    req.HalfDay,
		TotalDays:  totalDays,
		Reason:     req.Reason,
		Status:     leave.LeaveRequestStatusPending,
	}

	created, err := s.LeaveRequestRepository.Create(ctx, request)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	return toResponse(created), nil
}

// CheckBalance implements leave.LeaveService. The stored balance is
// already usage-adjusted because approvals debit it directly, so
// sufficiency compares the requested days against it as-is.
func (s *LeaveServiceImpl) CheckBalance(ctx context.Context, req leave.CheckBalanceRequest) (leave.BalanceCheckResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.BalanceCheckResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return leave.BalanceCheckResponse{}, fmt.Errorf("failed to resolve employee: %w", err)
	}

	requested, _ := decimal.NewFromString(req.RequestedDays)
	bucket := leave.BalanceBucket(req.LeaveType)
	available := emp.LeaveBalance.Bucket(bucket)

	used, err := s.LeaveRequestRepository.SumApprovedDays(ctx, req.EmployeeID, bucket, time.Now().UTC().Year())
	if err != nil {
		return leave.BalanceCheckResponse{}, fmt.Errorf("failed to sum approved days: %w", err)
	}

	return leave.BalanceCheckResponse{
		EmployeeID:       req.EmployeeID,
		LeaveType:        req.LeaveType,
		Bucket:           bucket,
		AvailableBalance: available,
		UsedDays:         used,
		RemainingBalance: available.Sub(requested),
		Sufficient:       available.GreaterThanOrEqual(requested),
	}, nil
}

// Approve implements leave.LeaveService. The status flip and the
// balance debit happen as one repository command; the sufficiency check
// here is advisory and rejects obviously uncovered requests up front.
func (s *LeaveServiceImpl) Approve(ctx context.Context, req leave.ApproveLeaveRequest) (leave.LeaveRequestResponse, error) {
	request, err := s.LeaveRequestRepository.GetByID(ctx, req.RequestID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	if request.Status != leave.LeaveRequestStatusPending {
		return leave.LeaveRequestResponse{}, leave.ErrLeaveAlreadyProcessed
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, request.EmployeeID)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to resolve employee: %w", err)
	}

	bucket := leave.BalanceBucket(request.LeaveType)
	if emp.LeaveBalance.Bucket(bucket).LessThan(request.TotalDays) {
		return leave.LeaveRequestResponse{}, leave.ErrInsufficientBalance
	}

	approved, err := s.LeaveRequestRepository.Approve(ctx, leave.ApproveCommand{
		RequestID:  req.RequestID,
		ApproverID: req.ApproverID,
		ApprovedAt: time.Now().UTC(),
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	event := events.LeaveApproved{
		RequestID:  approved.ID,
		EmployeeID: approved.EmployeeID,
		LeaveType:  approved.LeaveType,
		Bucket:     bucket,
		TotalDays:  approved.TotalDays.String(),
		ApprovedBy: req.ApproverID,
	}
	if approved.ApprovedAt != nil {
		event.ApprovedAt = *approved.ApprovedAt
	}
	if err := s.publisher.Publish(ctx, events.TopicLeaveApproved, event); err != nil {
		s.logger.WarnContext(ctx, "failed to publish leave approved event",
			slog.String("request_id", approved.ID), slog.Any("error", err))
	}

	return toResponse(approved), nil
}

// Reject implements leave.LeaveService.
func (s *LeaveServiceImpl) Reject(ctx context.Context, req leave.RejectLeaveRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	reason := req.Reason
	rejected, err := s.LeaveRequestRepository.UpdateStatus(ctx, leave.StatusCommand{
		RequestID:   req.RequestID,
		Status:      leave.LeaveRequestStatusRejected,
		ActorID:     req.ApproverID,
		Reason:      &reason,
		ProcessedAt: time.Now().UTC(),
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	return toResponse(rejected), nil
}

// Cancel implements leave.LeaveService. Only the requesting employee
// may withdraw, and only while the request is still pending.
func (s *LeaveServiceImpl) Cancel(ctx context.Context, requestID, employeeID string) (leave.LeaveRequestResponse, error) {
	request, err := s.LeaveRequestRepository.GetByID(ctx, requestID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	if request.EmployeeID != employeeID {
		return leave.LeaveRequestResponse{}, leave.ErrLeaveRequestNotFound
	}

	cancelled, err := s.LeaveRequestRepository.UpdateStatus(ctx, leave.StatusCommand{
		RequestID:   requestID,
		Status:      leave.LeaveRequestStatusCancelled,
		ActorID:     employeeID,
		ProcessedAt: time.Now().UTC(),
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	return toResponse(cancelled), nil
}

// GetLeaveRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) GetLeaveRequest(ctx context.Context, requestID string) (leave.LeaveRequestResponse, error) {
	request, err := s.LeaveRequestRepository.GetByID(ctx, requestID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	return toResponse(request), nil
}

// ListByEmployee implements leave.LeaveService.
func (s *LeaveServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequestResponse, error) {
	requests, err := s.LeaveRequestRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	responses := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, toResponse(request))
	}
	return responses, nil
}

// BusinessDays counts the Monday through Friday days in the inclusive
// range. Weekend-only ranges count zero.
func BusinessDays(start, end time.Time) decimal.Decimal {
	days := int64(0)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		switch d.Weekday() {
		case time.Saturday, time.Sunday:
		default:
			days++
		}
	}
	return decimal.NewFromInt(days)
}

func toResponse(request leave.LeaveRequest) leave.LeaveRequestResponse {
	resp := leave.LeaveRequestResponse{
		ID:              request.ID,
		EmployeeID:      request.EmployeeID,
		LeaveType:       request.LeaveType,
		StartDate:       request.StartDate.Format("2006-01-02"),
		EndDate:         request.EndDate.Format("2006-01-02"),
		HalfDay:         request.HalfDay,
		TotalDays:       request.TotalDays,
		Reason:          request.Reason,
		Status:          string(request.Status),
		ApprovedBy:      request.ApprovedBy,
		RejectionReason: request.RejectionReason,
	}
	if request.ApprovedAt != nil {
		at := request.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &at
	}
	if request.CancelledAt != nil {
		at := request.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &at
	}
	return resp
}
