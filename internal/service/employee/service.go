package employee

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/employee"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/sequence"
	"github.com/dayflow-hr/dayflow-backend-go/internal/events"
	"github.com/dayflow-hr/dayflow-backend-go/internal/fixtures"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
	sequenceService sequence.SequenceService
	publisher       events.Publisher
	logger          *slog.Logger
}

func NewEmployeeService(
	employeeRepo employee.EmployeeRepository,
	sequenceService sequence.SequenceService,
	publisher events.Publisher,
	logger *slog.Logger,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		EmployeeRepository: employeeRepo,
		sequenceService:    sequenceService,
		publisher:          publisher,
		logger:             logger,
	}
}

// Register implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Register(ctx context.Context, req employee.RegisterEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	joinDate, _ := validator.IsValidDate(req.JoinDate)
	basicSalary, _ := decimal.NewFromString(req.BasicSalary)

	issued, err := s.sequenceService.Issue(ctx, sequence.IssueRequest{
		Company:   req.CompanyName,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		JoinYear:  joinDate.Year(),
	})
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to issue employee code: %w", err)
	}

	emp := employee.Employee{
		EmployeeCode: issued.EmployeeCode,
		CompanyName:  req.CompanyName,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		BasicSalary:  basicSalary,
		Currency:     req.Currency,
		JoinDate:     joinDate,
		LeaveBalance: fixtures.DefaultLeaveBalance(),
	}

	created, err := s.EmployeeRepository.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	event := events.EmployeeIssued{
		EmployeeCode: created.EmployeeCode,
		Company:      created.CompanyName,
		JoinYear:     joinDate.Year(),
		Sequence:     issued.Sequence,
	}
	if err := s.publisher.Publish(ctx, events.TopicEmployeeIssued, event); err != nil {
		s.logger.WarnContext(ctx, "failed to publish employee issued event",
			slog.String("employee_code", created.EmployeeCode), slog.Any("error", err))
	}

	return toResponse(created), nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toResponse(emp), nil
}

// GetEmployeeByCode implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployeeByCode(ctx context.Context, employeeCode string) (employee.EmployeeResponse, error) {
	emp, err := s.EmployeeRepository.GetByCode(ctx, employeeCode)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toResponse(emp), nil
}

// UpdateCompensation implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateCompensation(ctx context.Context, id string, req employee.UpdateCompensationRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	profile := emp.CompensationProfile()
	profile.BasicSalary, _ = decimal.NewFromString(req.BasicSalary)
	profile.Currency = req.Currency

	if err := s.EmployeeRepository.UpdateCompensation(ctx, id, profile); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp.BasicSalary = profile.BasicSalary
	emp.Currency = profile.Currency
	return toResponse(emp), nil
}

func toResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:           emp.ID,
		EmployeeCode: emp.EmployeeCode,
		CompanyName:  emp.CompanyName,
		FirstName:    emp.FirstName,
		LastName:     emp.LastName,
		Email:        emp.Email,
		BasicSalary:  emp.BasicSalary,
		Currency:     emp.Currency,
		JoinDate:     emp.JoinDate.Format("2006-01-02"),
		LeaveBalance: employee.LeaveBalanceResponse{
			Annual:   emp.LeaveBalance.Annual,
			Sick:     emp.LeaveBalance.Sick,
			Casual:   emp.LeaveBalance.Casual,
			Personal: emp.LeaveBalance.Personal,
		},
	}
}
