package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/jwtauth/v5"

	"github.com/rotaworks/timeclock-backend-go/internal/config"
	appHTTP "github.com/rotaworks/timeclock-backend-go/internal/handler/http"
	"github.com/rotaworks/timeclock-backend-go/internal/pkg/cron"
	"github.com/rotaworks/timeclock-backend-go/internal/pkg/database"
	"github.com/rotaworks/timeclock-backend-go/internal/pkg/sse"
	"github.com/rotaworks/timeclock-backend-go/internal/repository/postgresql"
	attendanceService "github.com/rotaworks/timeclock-backend-go/internal/service/attendance"
	complianceService "github.com/rotaworks/timeclock-backend-go/internal/service/compliance"
	notificationService "github.com/rotaworks/timeclock-backend-go/internal/service/notification"
	payrollService "github.com/rotaworks/timeclock-backend-go/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), cfg.Database.MaxConns, cfg.Database.MinConns)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	staffRepo := postgresql.NewStaffRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	noShowRepo := postgresql.NewNoShowRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)

	hub := sse.NewHub()
	notifSvc := notificationService.NewNotificationService(notificationRepo, hub, notificationService.Config{})
	defer notifSvc.Stop()

	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, staffRepo, notifSvc, cfg.Policy)
	payrollSvc := payrollService.NewPayrollService(staffRepo, attendanceRepo, leaveRepo, cfg.Policy, cfg.Tax, cfg.NI)
	complianceSvc := complianceService.NewComplianceService(shiftRepo, staffRepo, cfg.Policy)

	scanner := cron.NewNoShowScanner(shiftRepo, attendanceRepo, noShowRepo, staffRepo, notifSvc, cfg.Policy)
	scheduler := cron.NewScheduler()
	scanner.Register(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	tokenAuth := jwtauth.New("HS256", []byte(cfg.JWT.Secret), nil)

	router := appHTTP.NewRouter(
		cfg,
		tokenAuth,
		appHTTP.NewAttendanceHandler(attendanceSvc),
		appHTTP.NewPayrollHandler(payrollSvc),
		appHTTP.NewComplianceHandler(complianceSvc),
		appHTTP.NewNoShowHandler(scanner, noShowRepo),
		appHTTP.NewLeaveHandler(leaveRepo),
		appHTTP.NewNotificationHandler(notificationRepo, hub),
	)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		slog.Info("Server listening", "port", cfg.App.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down...")
	if err := server.Close(); err != nil {
		slog.Error("Server close failed", "error", err)
	}
}
