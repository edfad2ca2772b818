package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	"hotelier-backend/internal/config"
	"hotelier-backend/internal/jobs"
	"hotelier-backend/internal/logger"
	"hotelier-backend/internal/repository/postgres"
	"hotelier-backend/internal/scheduler"
	"hotelier-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'mark-no-show-bookings', 'all-nightly')")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Hotelier Cronjob Runner...", "log_level", cfg.Log.Level)

	// Initialize Database
	logger.Info("Connecting to database...", "host", cfg.Database.Host, "port", cfg.Database.Port)
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Services
	emailService := service.NewEmailService(cfg.Email.APIKey, cfg.Email.From, cfg.Email.FromName)

	billingService := service.NewBillingService(
		store.InvoiceRepository,
		store.PaymentRepository,
		store.BookingRepository,
		store.GuestRepository,
		emailService,
	)

	housekeepingService := service.NewHousekeepingService(
		store.HousekeepingRepository,
		store.RoomRepository,
	)

	bookingService := service.NewBookingService(
		store.BookingRepository,
		store.GuestRepository,
		store.RoomRepository,
		housekeepingService,
		billingService,
		emailService,
		int32(cfg.Billing.TaxRateBps),
		int32(cfg.Billing.DefaultDueDays),
	)

	jobServices := &jobs.Services{
		Email:        emailService,
		Billing:      billingService,
		Booking:      bookingService,
		Housekeeping: housekeepingService,
	}

	// Initialize Job Runner
	jobRunner := jobs.NewJobRunner(db, store, jobServices, cfg)

	// Check if running a single job
	if *runOnce != "" {
		logger.Info("Running job once", "job", *runOnce)
		runJobOnce(jobRunner, *runOnce)
		logger.Info("Job execution completed", "job", *runOnce)
		return
	}

	// Initialize Scheduler
	cronScheduler := scheduler.NewScheduler(jobRunner)

	// Start scheduler
	cronScheduler.Start()
	logger.Info("Cronjob scheduler is running. Press Ctrl+C to stop.")

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down cronjob scheduler...")
	cronScheduler.Stop()
	logger.Info("Cronjob scheduler stopped. Goodbye!")
}

// runJobOnce runs a specific job once and exits
func runJobOnce(jobRunner *jobs.JobRunner, jobName string) {
	switch jobName {
	case "mark-no-show-bookings":
		jobRunner.MarkNoShowBookings()
	case "send-overdue-reminders":
		jobRunner.SendOverdueInvoiceReminders()
	case "reconcile-invoices":
		jobRunner.ReconcileAllInvoices()
	case "schedule-housekeeping":
		jobRunner.ScheduleDailyHousekeeping()
	case "all-nightly":
		jobRunner.RunAllNightlyJobs()
	default:
		logger.Error("Unknown job name", "job", jobName)
		fmt.Printf("Available jobs:\n")
		fmt.Printf("  - mark-no-show-bookings\n")
		fmt.Printf("  - send-overdue-reminders\n")
		fmt.Printf("  - reconcile-invoices\n")
		fmt.Printf("  - schedule-housekeeping\n")
		fmt.Printf("  - all-nightly\n")
		os.Exit(1)
	}
}
