package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/rotaworks/timeclock-backend-go/internal/config"
	"github.com/rotaworks/timeclock-backend-go/internal/handler/http/middleware"
)

func NewRouter(
	cfg *config.Config,
	tokenAuth *jwtauth.JWTAuth,
	attendanceHandler AttendanceHandler,
	payrollHandler PayrollHandler,
	complianceHandler ComplianceHandler,
	noShowHandler NoShowHandler,
	leaveHandler LeaveHandler,
	notificationHandler NotificationHandler,
) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "timeclock-backend"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.App.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
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

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(tokenAuth))
			r.Use(middleware.AuthRequired(tokenAuth))

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/clock-in", attendanceHandler.ClockIn)
				r.Post("/{id}/break/start", attendanceHandler.StartBreak)
				r.Post("/{id}/break/end", attendanceHandler.EndBreak)
				r.Post("/{id}/clock-out", attendanceHandler.ClockOut)
				r.Get("/staff/{staffID}/quick-actions", attendanceHandler.QuickActions)
				r.Get("/", attendanceHandler.List)
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Post("/summaries", payrollHandler.Generate)
				r.Post("/accrual/apply", payrollHandler.ApplyAccrual)
				r.Get("/export/csv", payrollHandler.ExportCSV)
				r.Get("/export/xlsx", payrollHandler.ExportXLSX)
			})

			r.Get("/leave/{staffID}/balance", leaveHandler.Balance)

			r.Get("/compliance/rest-periods", complianceHandler.CheckRestPeriods)

			r.Route("/no-shows", func(r chi.Router) {
				r.Post("/scan", noShowHandler.TriggerScan)
				r.Get("/", noShowHandler.List)
				r.Post("/{id}/resolve", noShowHandler.Resolve)
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", notificationHandler.List)
				r.Post("/{id}/read", notificationHandler.MarkRead)
				r.Get("/stream", notificationHandler.Stream)
			})
		})
	})

	return r
}
