package http

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/payroll"
	"github.com/dayflow-hr/dayflow-backend-go/internal/events"
	"github.com/dayflow-hr/dayflow-backend-go/internal/repository/memory"
	attendanceService "github.com/dayflow-hr/dayflow-backend-go/internal/service/attendance"
	employeeService "github.com/dayflow-hr/dayflow-backend-go/internal/service/employee"
	leaveService "github.com/dayflow-hr/dayflow-backend-go/internal/service/leave"
	payrollService "github.com/dayflow-hr/dayflow-backend-go/internal/service/payroll"
	sequenceService "github.com/dayflow-hr/dayflow-backend-go/internal/service/sequence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() http.Handler {
	store := memory.NewStore()
	employeeRepo := memory.NewEmployeeRepository(store)
	attendanceRepo := memory.NewAttendanceRepository(store)
	leaveRepo := memory.NewLeaveRequestRepository(store)
	payrollRepo := memory.NewPayrollRepository(store)
	counterRepo := memory.NewCounterRepository(store)

	publisher := events.NewNoopPublisher()
	logger := slog.Default()

	sequenceSvc := sequenceService.NewSequenceService(counterRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, sequenceSvc, publisher, logger)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, employeeRepo, publisher, logger)
	payrollSvc := payrollService.NewPayrollService(
		payrollRepo, employeeRepo,
		payrollService.NewCalculator(payroll.DefaultPolicy()),
		publisher, logger,
	)

	return NewRouter(
		"test",
		NewEmployeeHandler(employeeSvc),
		NewAttendanceHandler(attendanceSvc),
		NewLeaveHandler(leaveSvc),
		NewPayrollHandler(payrollSvc),
	)
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any) (int, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
	return rec.Code, env
}

func registerTestEmployee(t *testing.T, router http.Handler) (id, code string) {
	t.Helper()

	status, env := doJSON(t, router, http.MethodPost, "/api/v1/employees", map[string]any{
		"company_name": "DayFlow",
		"first_name":   "John",
		"last_name":    "Doe",
		"basic_salary": "50000",
		"currency":     "INR",
		"join_date":    "2025-01-15",
	})
	require.Equal(t, http.StatusCreated, status)

	var data struct {
		ID           string `json:"id"`
		EmployeeCode string `json:"employee_code"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	return data.ID, data.EmployeeCode
}

func TestEmployeeEndpoints(t *testing.T) {
	router := newTestRouter()

	id, code := registerTestEmployee(t, router)
	assert.Equal(t, "DAJODO20250001", code)

	status, env := doJSON(t, router, http.MethodGet, "/api/v1/employees/"+id, nil)
	assert.Equal(t, http.StatusOK, status)
	assert.True(t, env.Success)

	status, _ = doJSON(t, router, http.MethodGet, "/api/v1/employees/code/"+code, nil)
	assert.Equal(t, http.StatusOK, status)

	status, env = doJSON(t, router, http.MethodGet, "/api/v1/employees/missing", nil)
	assert.Equal(t, http.StatusNotFound, status)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)

	status, _ = doJSON(t, router, http.MethodPut, "/api/v1/employees/"+id+"/compensation", map[string]any{
		"basic_salary": "60000",
		"currency":     "INR",
	})
	assert.Equal(t, http.StatusOK, status)
}

func TestAttendanceEndpoints(t *testing.T) {
	router := newTestRouter()
	id, _ := registerTestEmployee(t, router)

	checkIn := map[string]any{
		"employee_id": id,
		"date":        "2025-03-10",
		"time":        "09:00",
		"method":      "web",
	}
	status, _ := doJSON(t, router, http.MethodPost, "/api/v1/attendance/check-in", checkIn)
	assert.Equal(t, http.StatusCreated, status)

	// Same day again conflicts.
	status, env := doJSON(t, router, http.MethodPost, "/api/v1/attendance/check-in", checkIn)
	assert.Equal(t, http.StatusConflict, status)
	require.NotNil(t, env.Error)
	assert.Equal(t, "CONFLICT", env.Error.Code)

	status, env = doJSON(t, router, http.MethodPost, "/api/v1/attendance/check-out", map[string]any{
		"employee_id":         id,
		"date":                "2025-03-10",
		"time":                "18:00",
		"total_break_minutes": 60,
	})
	assert.Equal(t, http.StatusOK, status)

	var att struct {
		WorkHoursFormatted string `json:"work_hours_formatted"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &att))
	assert.Equal(t, "08:00:00", att.WorkHoursFormatted)

	status, _ = doJSON(t, router, http.MethodGet,
		"/api/v1/attendance/summary?employee_id="+id+"&start_date=2025-03-01&end_date=2025-03-31", nil)
	assert.Equal(t, http.StatusOK, status)

	// Malformed date fails validation.
	status, env = doJSON(t, router, http.MethodPost, "/api/v1/attendance/check-in", map[string]any{
		"employee_id": id,
		"date":        "03/10/2025",
		"time":        "09:00",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	assert.Contains(t, env.Error.Details, "date")
}

func TestLeaveEndpoints(t *testing.T) {
	router := newTestRouter()
	id, _ := registerTestEmployee(t, router)

	status, env := doJSON(t, router, http.MethodPost, "/api/v1/leaves", map[string]any{
		"employee_id": id,
		"leave_type":  "annual",
		"start_date":  "2025-01-06",
		"end_date":    "2025-01-10",
		"reason":      "family trip",
	})
	require.Equal(t, http.StatusCreated, status)

	var created struct {
		ID        string `json:"id"`
		TotalDays string `json:"total_days"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, "5", created.TotalDays)

	status, _ = doJSON(t, router, http.MethodPost, "/api/v1/leaves/"+created.ID+"/approve", map[string]any{
		"approver_id": "manager-1",
	})
	assert.Equal(t, http.StatusOK, status)

	// A second approval conflicts.
	status, _ = doJSON(t, router, http.MethodPost, "/api/v1/leaves/"+created.ID+"/approve", map[string]any{
		"approver_id": "manager-2",
	})
	assert.Equal(t, http.StatusConflict, status)

	status, env = doJSON(t, router, http.MethodGet,
		"/api/v1/leaves/balance?employee_id="+id+"&leave_type=annual&requested_days=10", nil)
	assert.Equal(t, http.StatusOK, status)

	var balance struct {
		AvailableBalance string `json:"available_balance"`
		Sufficient       bool   `json:"sufficient"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &balance))
	assert.Equal(t, "7", balance.AvailableBalance)
	assert.False(t, balance.Sufficient)
}

func TestPayrollEndpoints(t *testing.T) {
	router := newTestRouter()
	id, _ := registerTestEmployee(t, router)

	generate := map[string]any{
		"employee_id":  id,
		"period_start": "2025-03-01",
		"period_end":   "2025-03-31",
	}
	status, env := doJSON(t, router, http.MethodPost, "/api/v1/payrolls", generate)
	require.Equal(t, http.StatusCreated, status)

	var record struct {
		ID     string `json:"id"`
		NetPay string `json:"net_pay"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &record))
	assert.Equal(t, "61850", record.NetPay)

	// Regenerating the same period conflicts.
	status, _ = doJSON(t, router, http.MethodPost, "/api/v1/payrolls", generate)
	assert.Equal(t, http.StatusConflict, status)

	status, _ = doJSON(t, router, http.MethodPatch, "/api/v1/payrolls/"+record.ID+"/status", map[string]any{
		"status": "paid",
	})
	assert.Equal(t, http.StatusOK, status)

	// Paid is terminal.
	status, _ = doJSON(t, router, http.MethodPatch, "/api/v1/payrolls/"+record.ID+"/status", map[string]any{
		"status": "pending",
	})
	assert.Equal(t, http.StatusConflict, status)
}
