package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"

	httpapi "hotelier-backend/internal/api/http"
	"hotelier-backend/internal/config"
	"hotelier-backend/internal/logger"
	"hotelier-backend/internal/repository/postgres"
	"hotelier-backend/internal/security"
	"hotelier-backend/internal/service"

	_ "github.com/lib/pq"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Hotelier Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
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

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry)

	// Initialize Email Service
	emailSvc := service.NewEmailService(cfg.Email.APIKey, cfg.Email.From, cfg.Email.FromName)

	// Initialize Services
	authSvc := service.NewAuthService(store.StaffRepository, tokenManager)
	guestSvc := service.NewGuestService(store.GuestRepository, store.BookingRepository)
	roomSvc := service.NewRoomService(store.RoomRepository)
	billingSvc := service.NewBillingService(
		store.InvoiceRepository,
		store.PaymentRepository,
		store.BookingRepository,
		store.GuestRepository,
		emailSvc,
	)
	housekeepingSvc := service.NewHousekeepingService(store.HousekeepingRepository, store.RoomRepository)
	maintenanceSvc := service.NewMaintenanceService(store.MaintenanceRepository, store.RoomRepository)
	bookingSvc := service.NewBookingService(
		store.BookingRepository,
		store.GuestRepository,
		store.RoomRepository,
		housekeepingSvc,
		billingSvc,
		emailSvc,
		int32(cfg.Billing.TaxRateBps),
		int32(cfg.Billing.DefaultDueDays),
	)
	reportSvc := service.NewReportService(store.RoomRepository, store.BookingRepository, store.InvoiceRepository)

	// Set up HTTP router
	router := httpapi.NewRouter(httpapi.Services{
		Auth:         authSvc,
		Guest:        guestSvc,
		Room:         roomSvc,
		Booking:      bookingSvc,
		Billing:      billingSvc,
		Housekeeping: housekeepingSvc,
		Maintenance:  maintenanceSvc,
		Report:       reportSvc,
	}, tokenManager)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
