package employee_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/employee"
	"github.com/dayflow-hr/dayflow-backend-go/internal/events"
	"github.com/dayflow-hr/dayflow-backend-go/internal/repository/memory"
	employeeservice "github.com/dayflow-hr/dayflow-backend-go/internal/service/employee"
	sequenceservice "github.com/dayflow-hr/dayflow-backend-go/internal/service/sequence"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() employee.EmployeeService {
	store := memory.NewStore()
	return employeeservice.NewEmployeeService(
		memory.NewEmployeeRepository(store),
		sequenceservice.NewSequenceService(memory.NewCounterRepository(store)),
		events.NewNoopPublisher(),
		slog.Default(),
	)
}

func register(t *testing.T, svc employee.EmployeeService, first, last string) employee.EmployeeResponse {
	t.Helper()
	resp, err := svc.Register(context.Background(), employee.RegisterEmployeeRequest{
		CompanyName: "DayFlow",
		FirstName:   first,
		LastName:    last,
		BasicSalary: "50000",
		Currency:    "INR",
		JoinDate:    "2025-01-15",
	})
	require.NoError(t, err)
	return resp
}

func TestRegister(t *testing.T) {
	t.Run("mints the employee code and seeds balances", func(t *testing.T) {
		svc := newTestService()

		resp := register(t, svc, "John", "Doe")
		assert.Equal(t, "DAJODO20250001", resp.EmployeeCode)
		assert.True(t, resp.BasicSalary.Equal(decimal.NewFromInt(50000)))
		assert.True(t, resp.LeaveBalance.Annual.Equal(decimal.NewFromInt(12)))
		assert.True(t, resp.LeaveBalance.Sick.Equal(decimal.NewFromInt(10)))
		assert.True(t, resp.LeaveBalance.Casual.Equal(decimal.NewFromInt(8)))
		assert.True(t, resp.LeaveBalance.Personal.Equal(decimal.NewFromInt(5)))
	})

	t.Run("codes stay unique across registrations", func(t *testing.T) {
		svc := newTestService()

		first := register(t, svc, "John", "Doe")
		second := register(t, svc, "John", "Doe")
		assert.NotEqual(t, first.EmployeeCode, second.EmployeeCode)
		assert.Equal(t, "DAJODO20250002", second.EmployeeCode)
	})

	t.Run("negative salary fails validation", func(t *testing.T) {
		svc := newTestService()

		_, err := svc.Register(context.Background(), employee.RegisterEmployeeRequest{
			CompanyName: "DayFlow",
			FirstName:   "John",
			LastName:    "Doe",
			BasicSalary: "-100",
			Currency:    "INR",
			JoinDate:    "2025-01-15",
		})
		assert.Error(t, err)
	})
}

func TestGetEmployee(t *testing.T) {
	svc := newTestService()
	created := register(t, svc, "John", "Doe")

	byID, err := svc.GetEmployee(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.EmployeeCode, byID.EmployeeCode)

	byCode, err := svc.GetEmployeeByCode(context.Background(), created.EmployeeCode)
	require.NoError(t, err)
	assert.Equal(t, created.ID, byCode.ID)

	_, err = svc.GetEmployee(context.Background(), "missing")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestUpdateCompensation(t *testing.T) {
	svc := newTestService()
	created := register(t, svc, "John", "Doe")

	updated, err := svc.UpdateCompensation(context.Background(), created.ID, employee.UpdateCompensationRequest{
		BasicSalary: "62000",
		Currency:    "INR",
	})
	require.NoError(t, err)
	assert.True(t, updated.BasicSalary.Equal(decimal.NewFromInt(62000)))
	assert.Equal(t, created.EmployeeCode, updated.EmployeeCode)
	assert.True(t, updated.LeaveBalance.Annual.Equal(decimal.NewFromInt(12)))
}
