package payroll

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/employee"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/payroll"
	"github.com/dayflow-hr/dayflow-backend-go/internal/events"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type PayrollServiceImpl struct {
	payroll.PayrollRepository
	employee.EmployeeRepository
	calculator *Calculator
	publisher  events.Publisher
	logger     *slog.Logger
}

func NewPayrollService(
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	calculator *Calculator,
	publisher events.Publisher,
	logger *slog.Logger,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		PayrollRepository:  payrollRepo,
		EmployeeRepository: employeeRepo,
		calculator:         calculator,
		publisher:          publisher,
		logger:             logger,
	}
}

// Generate implements payroll.PayrollService.
func (s *PayrollServiceImpl) Generate(ctx context.Context, req payroll.GeneratePayrollRequest) (payroll.PayrollRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	start, _ := validator.IsValidDate(req.PeriodStart)
	end, _ := validator.IsValidDate(req.PeriodEnd)

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return payroll.PayrollRecordResponse{}, fmt.Errorf("failed to resolve employee: %w", err)
	}

	summary, err := s.PayrollRepository.GetAttendanceSummary(ctx, req.EmployeeID, start, end)
	if err != nil {
		return payroll.PayrollRecordResponse{}, fmt.Errorf("failed to aggregate attendance: %w", err)
	}

	breakdown := s.calculator.Compute(
		emp.BasicSalary,
		summary.TotalOvertimeHours,
		payroll.ComputeInput{
			SpecialAllowance: parseAmount(req.SpecialAllowance),
			Bonus:            parseAmount(req.Bonus),
			Reimbursements:   parseAmount(req.Reimbursements),
			ProfessionalTax:  parseAmount(req.ProfessionalTax),
			Insurance:        parseAmount(req.Insurance),
			LoanRepayment:    parseAmount(req.LoanRepayment),
			OtherDeductions:  parseAmount(req.OtherDeductions),
		},
	)

	record := payroll.PayrollRecord{
		EmployeeID:      req.EmployeeID,
		PeriodStart:     start,
		PeriodEnd:       end,
		Currency:        emp.Currency,
		Earnings:        breakdown.Earnings,
		Deductions:      breakdown.Deductions,
		GrossEarnings:   breakdown.GrossEarnings,
		TotalDeductions: breakdown.TotalDeductions,
		NetPay:          breakdown.NetPay,
		PaymentStatus:   payroll.PaymentStatusProcessing,
	}

	created, err := s.PayrollRepository.CreatePayrollRecord(ctx, record)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	event := events.PayrollGenerated{
		RecordID:    created.ID,
		EmployeeID:  created.EmployeeID,
		PeriodStart: created.PeriodStart,
		PeriodEnd:   created.PeriodEnd,
		NetPay:      created.NetPay.String(),
		Currency:    created.Currency,
	}
	if err := s.publisher.Publish(ctx, events.TopicPayrollGenerated, event); err != nil {
		s.logger.WarnContext(ctx, "failed to publish payroll generated event",
			slog.String("record_id", created.ID), slog.Any("error", err))
	}

	return toResponse(created), nil
}

// GetPayrollRecord implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetPayrollRecord(ctx context.Context, id string) (payroll.PayrollRecordResponse, error) {
	record, err := s.PayrollRepository.GetPayrollRecordByID(ctx, id)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}
	return toResponse(record), nil
}

// ListPayrollRecords implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListPayrollRecords(ctx context.Context, employeeID string) ([]payroll.PayrollRecordResponse, error) {
	records, err := s.PayrollRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll records: %w", err)
	}

	responses := make([]payroll.PayrollRecordResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, toResponse(record))
	}
	return responses, nil
}

// UpdatePaymentStatus implements payroll.PayrollService.
func (s *PayrollServiceImpl) UpdatePaymentStatus(ctx context.Context, req payroll.UpdatePaymentStatusRequest) (payroll.PayrollRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	record, err := s.PayrollRepository.GetPayrollRecordByID(ctx, req.RecordID)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	next := payroll.PaymentStatus(req.Status)
	if !record.PaymentStatus.CanTransition(next) {
		return payroll.PayrollRecordResponse{}, payroll.ErrInvalidStatusTransition
	}

	var paidAt *time.Time
	if next == payroll.PaymentStatusPaid {
		now := time.Now().UTC()
		paidAt = &now
	}

	// The repository re-checks the expected status, so a concurrent
	// transition loses cleanly instead of double-applying.
	updated, err := s.PayrollRepository.UpdatePaymentStatus(ctx, req.RecordID, record.PaymentStatus, next, paidAt)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	return toResponse(updated), nil
}

// parseAmount converts an optional request money field. Validation has
// already rejected malformed values; empty means zero.
func parseAmount(raw string) decimal.Decimal {
	if raw == "" {
		return decimal.Zero
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero
	}
	return amount
}

func toResponse(record payroll.PayrollRecord) payroll.PayrollRecordResponse {
	resp := payroll.PayrollRecordResponse{
		ID:              record.ID,
		EmployeeID:      record.EmployeeID,
		PeriodStart:     record.PeriodStart.Format("2006-01-02"),
		PeriodEnd:       record.PeriodEnd.Format("2006-01-02"),
		Currency:        record.Currency,
		Earnings:        record.Earnings,
		Deductions:      record.Deductions,
		GrossEarnings:   record.GrossEarnings,
		TotalDeductions: record.TotalDeductions,
		NetPay:          record.NetPay,
		PaymentStatus:   string(record.PaymentStatus),
	}
	if record.PaidAt != nil {
		at := record.PaidAt.Format(time.RFC3339)
		resp.PaidAt = &at
	}
	return resp
}
