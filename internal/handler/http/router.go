package http

import (
	"log/slog"
	"os"

	"github.com/dayflow-hr/dayflow-backend-go/internal/handler/http/middleware"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(
	env string,
	employeeHandler EmployeeHandler,
	attendanceHandler AttendanceHandler,
	leaveHandler LeaveHandler,
	payrollHandler PayrollHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "dayflow-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))
	r.Use(middleware.Metrics)

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/employees", func(r chi.Router) {
			r.Post("/", employeeHandler.Register)
			r.Get("/{id}", employeeHandler.Get)
			r.Get("/code/{code}", employeeHandler.GetByCode)
			r.Put("/{id}/compensation", employeeHandler.UpdateCompensation)
		})

		r.Route("/attendance", func(r chi.Router) {
			r.Post("/check-in", attendanceHandler.CheckIn)
			r.Post("/check-out", attendanceHandler.CheckOut)
			r.Get("/summary", attendanceHandler.Summary)
			r.Get("/", attendanceHandler.List)
			r.Get("/{id}", attendanceHandler.Get)
		})

		r.Route("/leaves", func(r chi.Router) {
			r.Post("/", leaveHandler.Apply)
			r.Get("/", leaveHandler.ListByEmployee)
			r.Get("/balance", leaveHandler.CheckBalance)
			r.Get("/{id}", leaveHandler.Get)
			r.Post("/{id}/approve", leaveHandler.Approve)
			r.Post("/{id}/reject", leaveHandler.Reject)
			r.Post("/{id}/cancel", leaveHandler.Cancel)
		})

		r.Route("/payrolls", func(r chi.Router) {
			r.Post("/", payrollHandler.Generate)
			r.Get("/", payrollHandler.ListByEmployee)
			r.Get("/{id}", payrollHandler.Get)
			r.Patch("/{id}/status", payrollHandler.UpdatePaymentStatus)
		})
	})
	return r
}
