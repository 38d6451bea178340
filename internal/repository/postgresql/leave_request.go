package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/leave"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type leaveRequestRepository struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepository{db: db}
}

const leaveRequestColumns = `
	id, employee_id, leave_type, start_date, end_date, half_day,
	total_days, reason, status, approved_by, approved_at,
	rejection_reason, cancelled_at, created_at, updated_at
`

func scanLeaveRequest(row pgx.Row) (leave.LeaveRequest, error) {
	var req leave.LeaveRequest
	err := row.Scan(
		&req.ID, &req.EmployeeID, &req.LeaveType, &req.StartDate, &req.EndDate, &req.HalfDay,
		&req.TotalDays, &req.Reason, &req.Status, &req.ApprovedBy, &req.ApprovedAt,
		&req.RejectionReason, &req.CancelledAt, &req.CreatedAt, &req.UpdatedAt,
	)
	return req, err
}

func (r *leaveRequestRepository) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (
			employee_id, leave_type, start_date, end_date, half_day,
			total_days, reason, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		request.EmployeeID,
		request.LeaveType,
		request.StartDate,
		request.EndDate,
		request.HalfDay,
		request.TotalDays,
		request.Reason,
		request.Status,
	).Scan(&request.ID, &request.CreatedAt, &request.UpdatedAt)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return request, nil
}

func (r *leaveRequestRepository) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveRequestColumns + ` FROM leave_requests WHERE id = $1`

	req, err := scanLeaveRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request by ID: %w", err)
	}

	return req, nil
}

func (r *leaveRequestRepository) ListByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests
		WHERE employee_id = $1
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var result []leave.LeaveRequest
	for rows.Next() {
		req, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request row: %w", err)
		}
		result = append(result, req)
	}

	return result, rows.Err()
}

func (r *leaveRequestRepository) SumApprovedDays(ctx context.Context, employeeID, bucket string, year int) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	// Bucket membership mirrors leave.BalanceBucket: the casual bucket
	// absorbs every type that is not annual, sick or personal.
	query := `
		SELECT COALESCE(SUM(total_days), 0)
		FROM leave_requests
		WHERE employee_id = $1
		  AND status = 'approved'
		  AND EXTRACT(YEAR FROM start_date) = $3
		  AND CASE
		        WHEN leave_type IN ('annual', 'sick', 'personal') THEN leave_type
		        ELSE 'casual'
		      END = $2
	`

	var total decimal.Decimal
	if err := q.QueryRow(ctx, query, employeeID, bucket, year).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum approved leave days: %w", err)
	}

	return total, nil
}

// Approve flips the request to approved and debits the matching balance
// bucket inside one transaction. The UPDATE is guarded on
// status = 'pending', so a second approval of the same request affects
// zero rows and maps to ErrLeaveAlreadyProcessed.
func (r *leaveRequestRepository) Approve(ctx context.Context, cmd leave.ApproveCommand) (leave.LeaveRequest, error) {
	var approved leave.LeaveRequest

	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		query := `
			UPDATE leave_requests
			SET status = 'approved', approved_by = $2, approved_at = $3, updated_at = NOW()
			WHERE id = $1 AND status = 'pending'
			RETURNING ` + leaveRequestColumns + `
		`

		req, err := scanLeaveRequest(tx.QueryRow(ctx, query, cmd.RequestID, cmd.ApproverID, cmd.ApprovedAt))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return r.classifyApproveMiss(ctx, tx, cmd.RequestID)
			}
			return fmt.Errorf("failed to approve leave request: %w", err)
		}

		bucket := leave.BalanceBucket(req.LeaveType)
		column, err := balanceColumn(bucket)
		if err != nil {
			return err
		}

		// Balances floor at zero rather than going negative.
		debit := fmt.Sprintf(`
			UPDATE employees
			SET %s = GREATEST(%s - $2, 0), updated_at = NOW()
			WHERE id = $1
		`, column, column)

		tag, err := tx.Exec(ctx, debit, req.EmployeeID, req.TotalDays)
		if err != nil {
			return fmt.Errorf("failed to debit leave balance: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("failed to debit leave balance: employee %s not found", req.EmployeeID)
		}

		approved = req
		return nil
	})
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	return approved, nil
}

// classifyApproveMiss distinguishes a missing request from one already
// processed after the guarded UPDATE matched nothing.
func (r *leaveRequestRepository) classifyApproveMiss(ctx context.Context, tx pgx.Tx, requestID string) error {
	var status leave.LeaveRequestStatus
	err := tx.QueryRow(ctx, `SELECT status FROM leave_requests WHERE id = $1`, requestID).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.ErrLeaveRequestNotFound
		}
		return fmt.Errorf("failed to check leave request status: %w", err)
	}
	return leave.ErrLeaveAlreadyProcessed
}

func (r *leaveRequestRepository) UpdateStatus(ctx context.Context, cmd leave.StatusCommand) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	var query string
	var args []any
	switch cmd.Status {
	case leave.LeaveRequestStatusRejected:
		query = `
			UPDATE leave_requests
			SET status = 'rejected', approved_by = $2, approved_at = $3,
			    rejection_reason = $4, updated_at = NOW()
			WHERE id = $1 AND status = 'pending'
			RETURNING ` + leaveRequestColumns
		args = []any{cmd.RequestID, cmd.ActorID, cmd.ProcessedAt, cmd.Reason}
	case leave.LeaveRequestStatusCancelled:
		query = `
			UPDATE leave_requests
			SET status = 'cancelled', cancelled_at = $2, updated_at = NOW()
			WHERE id = $1 AND status = 'pending'
			RETURNING ` + leaveRequestColumns
		args = []any{cmd.RequestID, cmd.ProcessedAt}
	default:
		return leave.LeaveRequest{}, fmt.Errorf("unsupported status transition to %q", cmd.Status)
	}

	req, err := scanLeaveRequest(q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, r.classifyStatusMiss(ctx, cmd.RequestID)
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to update leave request status: %w", err)
	}

	return req, nil
}

func (r *leaveRequestRepository) classifyStatusMiss(ctx context.Context, requestID string) error {
	q := GetQuerier(ctx, r.db)

	var status leave.LeaveRequestStatus
	err := q.QueryRow(ctx, `SELECT status FROM leave_requests WHERE id = $1`, requestID).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.ErrLeaveRequestNotFound
		}
		return fmt.Errorf("failed to check leave request status: %w", err)
	}
	return leave.ErrLeaveAlreadyProcessed
}

// balanceColumn maps a canonical bucket to its employees column. The
// bucket is never caller input, so an unknown value is a programming
// error rather than a user one.
func balanceColumn(bucket string) (string, error) {
	switch bucket {
	case leave.TypeAnnual:
		return "leave_balance_annual", nil
	case leave.TypeSick:
		return "leave_balance_sick", nil
	case leave.TypePersonal:
		return "leave_balance_personal", nil
	case leave.TypeCasual:
		return "leave_balance_casual", nil
	default:
		return "", fmt.Errorf("unknown balance bucket %q", bucket)
	}
}
