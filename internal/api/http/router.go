package http

import (
	"net/http"

	"hotelier-backend/internal/domain"
	"hotelier-backend/internal/security"
	"hotelier-backend/internal/service"

	"github.com/gorilla/mux"
)

// Services bundles everything the router needs to wire handlers.
type Services struct {
	Auth         service.AuthService
	Guest        service.GuestService
	Room         service.RoomService
	Booking      service.BookingService
	Billing      service.BillingService
	Housekeeping service.HousekeepingService
	Maintenance  service.MaintenanceService
	Report       service.ReportService
}

// NewRouter builds the full API router. Everything under /api/v1 except
// the auth endpoints requires a valid access token.
func NewRouter(svcs Services, tokens security.TokenManager) *mux.Router {
	router := mux.NewRouter()
	router.Use(LoggingMiddleware)

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")

	authHandler := NewAuthHandler(svcs.Auth)
	router.HandleFunc("/api/v1/auth/login", authHandler.Login).Methods("POST")
	router.HandleFunc("/api/v1/auth/refresh", authHandler.Refresh).Methods("POST")

	api := router.PathPrefix("/api/v1").Subrouter()
	api.Use(AuthMiddleware(tokens))

	guestHandler := NewGuestHandler(svcs.Guest)
	api.HandleFunc("/guests", guestHandler.List).Methods("GET")
	api.HandleFunc("/guests", guestHandler.Create).Methods("POST")
	api.HandleFunc("/guests/categorized", guestHandler.Categorize).Methods("GET")
	api.HandleFunc("/guests/{id}", guestHandler.Get).Methods("GET")
	api.HandleFunc("/guests/{id}", guestHandler.Update).Methods("PUT")
	api.HandleFunc("/guests/{id}", RequireRole(domain.StaffRoleManager, guestHandler.Delete)).Methods("DELETE")
	api.HandleFunc("/guests/{id}/bookings", guestHandler.Bookings).Methods("GET")
	api.HandleFunc("/guests/{id}/presence", guestHandler.Presence).Methods("GET")

	roomHandler := NewRoomHandler(svcs.Room)
	api.HandleFunc("/rooms", roomHandler.List).Methods("GET")
	api.HandleFunc("/rooms", RequireRole(domain.StaffRoleManager, roomHandler.Create)).Methods("POST")
	api.HandleFunc("/rooms/available", roomHandler.ListAvailable).Methods("GET")
	api.HandleFunc("/rooms/{id}", roomHandler.Get).Methods("GET")
	api.HandleFunc("/rooms/{id}", RequireRole(domain.StaffRoleManager, roomHandler.Update)).Methods("PUT")
	api.HandleFunc("/rooms/{id}/status", roomHandler.UpdateStatus).Methods("PUT")

	bookingHandler := NewBookingHandler(svcs.Booking)
	api.HandleFunc("/bookings", bookingHandler.List).Methods("GET")
	api.HandleFunc("/bookings", bookingHandler.Create).Methods("POST")
	api.HandleFunc("/bookings/{id}", bookingHandler.Get).Methods("GET")
	api.HandleFunc("/bookings/{id}", bookingHandler.Update).Methods("PUT")
	api.HandleFunc("/bookings/{id}/check-in", bookingHandler.CheckIn).Methods("POST")
	api.HandleFunc("/bookings/{id}/check-out", bookingHandler.CheckOut).Methods("POST")
	api.HandleFunc("/bookings/{id}/cancel", bookingHandler.Cancel).Methods("POST")

	billingHandler := NewBillingHandler(svcs.Billing)
	api.HandleFunc("/invoices", billingHandler.ListInvoices).Methods("GET")
	api.HandleFunc("/invoices", billingHandler.CreateInvoice).Methods("POST")
	api.HandleFunc("/invoices/{id}", billingHandler.GetInvoice).Methods("GET")
	api.HandleFunc("/invoices/{id}/pay", billingHandler.MarkInvoicePaid).Methods("POST")
	api.HandleFunc("/invoices/{id}/void", RequireRole(domain.StaffRoleManager, billingHandler.VoidInvoice)).Methods("POST")
	api.HandleFunc("/invoices/{id}/payments", billingHandler.ListPayments).Methods("GET")
	api.HandleFunc("/invoices/{id}/payments", billingHandler.CreatePayment).Methods("POST")
	api.HandleFunc("/bookings/{id}/invoices", billingHandler.ListBookingInvoices).Methods("GET")
	api.HandleFunc("/payments/{id}/status", billingHandler.UpdatePaymentStatus).Methods("PUT")
	api.HandleFunc("/payments/{id}/refund", RequireRole(domain.StaffRoleManager, billingHandler.Refund)).Methods("POST")
	api.HandleFunc("/payments/{id}", RequireRole(domain.StaffRoleManager, billingHandler.DeletePayment)).Methods("DELETE")

	housekeepingHandler := NewHousekeepingHandler(svcs.Housekeeping)
	api.HandleFunc("/housekeeping", housekeepingHandler.List).Methods("GET")
	api.HandleFunc("/housekeeping", housekeepingHandler.Create).Methods("POST")
	api.HandleFunc("/housekeeping/{id}", housekeepingHandler.Get).Methods("GET")
	api.HandleFunc("/housekeeping/{id}/status", housekeepingHandler.UpdateStatus).Methods("PUT")
	api.HandleFunc("/housekeeping/{id}/assign", housekeepingHandler.Assign).Methods("PUT")

	maintenanceHandler := NewMaintenanceHandler(svcs.Maintenance)
	api.HandleFunc("/maintenance", maintenanceHandler.List).Methods("GET")
	api.HandleFunc("/maintenance", maintenanceHandler.Open).Methods("POST")
	api.HandleFunc("/maintenance/{id}", maintenanceHandler.Get).Methods("GET")
	api.HandleFunc("/maintenance/{id}/status", maintenanceHandler.UpdateStatus).Methods("PUT")
	api.HandleFunc("/maintenance/{id}/priority", maintenanceHandler.UpdatePriority).Methods("PUT")

	reportHandler := NewReportHandler(svcs.Report)
	api.HandleFunc("/reports/occupancy", reportHandler.Occupancy).Methods("GET")
	api.HandleFunc("/reports/revenue", RequireRole(domain.StaffRoleManager, reportHandler.Revenue)).Methods("GET")
	api.HandleFunc("/reports/movements", reportHandler.Movements).Methods("GET")

	return router
}
