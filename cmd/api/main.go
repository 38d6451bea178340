package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/dayflow-hr/dayflow-backend-go/internal/config"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/attendance"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/employee"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/leave"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/payroll"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/sequence"
	"github.com/dayflow-hr/dayflow-backend-go/internal/events"
	kafkaEvents "github.com/dayflow-hr/dayflow-backend-go/internal/events/kafka"
	appHTTP "github.com/dayflow-hr/dayflow-backend-go/internal/handler/http"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/database"
	"github.com/dayflow-hr/dayflow-backend-go/internal/repository/memory"
	"github.com/dayflow-hr/dayflow-backend-go/internal/repository/postgresql"
	redisRepo "github.com/dayflow-hr/dayflow-backend-go/internal/repository/redis"
	attendanceService "github.com/dayflow-hr/dayflow-backend-go/internal/service/attendance"
	employeeService "github.com/dayflow-hr/dayflow-backend-go/internal/service/employee"
	leaveService "github.com/dayflow-hr/dayflow-backend-go/internal/service/leave"
	payrollService "github.com/dayflow-hr/dayflow-backend-go/internal/service/payroll"
	sequenceService "github.com/dayflow-hr/dayflow-backend-go/internal/service/sequence"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.App.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	var (
		employeeRepo   employee.EmployeeRepository
		attendanceRepo attendance.AttendanceRepository
		leaveRepo      leave.LeaveRequestRepository
		payrollRepo    payroll.PayrollRepository
		counterRepo    sequence.CounterRepository
	)

	switch cfg.App.StorageBackend {
	case "postgres":
		db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
		if err != nil {
			log.Fatal("Failed to connect to database: ", err)
		}
		employeeRepo = postgresql.NewEmployeeRepository(db)
		attendanceRepo = postgresql.NewAttendanceRepository(db)
		leaveRepo = postgresql.NewLeaveRequestRepository(db)
		payrollRepo = postgresql.NewPayrollRepository(db)
		counterRepo = postgresql.NewCounterRepository(db)
	case "memory":
		store := memory.NewStore()
		employeeRepo = memory.NewEmployeeRepository(store)
		attendanceRepo = memory.NewAttendanceRepository(store)
		leaveRepo = memory.NewLeaveRequestRepository(store)
		payrollRepo = memory.NewPayrollRepository(store)
		counterRepo = memory.NewCounterRepository(store)
	default:
		log.Fatal("Unsupported storage backend: ", cfg.App.StorageBackend)
	}

	// The counter backend is selectable independently of storage, so a
	// memory deployment can still issue codes through Redis.
	switch cfg.App.SequenceBackend {
	case "redis":
		rdb, err := database.NewRedis(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Fatal("Failed to connect to Redis: ", err)
		}
		counterRepo = redisRepo.NewCounterRepository(rdb)
	case "postgres", "memory":
		// Already wired with the storage backend above.
	default:
		log.Fatal("Unsupported sequence backend: ", cfg.App.SequenceBackend)
	}

	var publisher events.Publisher = events.NewNoopPublisher()
	if cfg.Kafka.Enabled {
		publisher = kafkaEvents.NewPublisher(cfg.Kafka.Brokers)
	}

	sequenceSvc := sequenceService.NewSequenceService(counterRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, sequenceSvc, publisher, logger)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, employeeRepo, publisher, logger)
	payrollSvc := payrollService.NewPayrollService(
		payrollRepo,
		employeeRepo,
		payrollService.NewCalculator(payroll.DefaultPolicy()),
		publisher,
		logger,
	)

	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)

	router := appHTTP.NewRouter(
		cfg.App.Env,
		employeeHandler,
		attendanceHandler,
		leaveHandler,
		payrollHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
