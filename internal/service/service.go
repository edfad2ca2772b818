package service

import (
	"context"
	"time"

	"hotelier-backend/internal/domain"
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, string, *domain.StaffUser, error) // access, refresh
	Refresh(ctx context.Context, refreshToken string) (string, string, error)
}

type GuestService interface {
	CreateGuest(ctx context.Context, guest *domain.Guest) (*domain.Guest, error)
	GetGuest(ctx context.Context, id int32) (*domain.Guest, error)
	UpdateGuest(ctx context.Context, guest *domain.Guest) (*domain.Guest, error)
	DeleteGuest(ctx context.Context, id int32) error
	ListGuests(ctx context.Context, query string, page, pageSize int32) ([]domain.Guest, int32, error)
	ListGuestBookings(ctx context.Context, guestID int32) ([]domain.Booking, error)
	CategorizeGuests(ctx context.Context) (*domain.GuestBuckets, error)
	GetGuestPresence(ctx context.Context, guestID int32) (domain.GuestPresence, error)
}

type RoomService interface {
	CreateRoom(ctx context.Context, room *domain.Room) (*domain.Room, error)
	GetRoom(ctx context.Context, id int32) (*domain.Room, error)
	UpdateRoom(ctx context.Context, room *domain.Room) (*domain.Room, error)
	UpdateRoomStatus(ctx context.Context, id int32, status domain.RoomStatus) (*domain.Room, error)
	ListRooms(ctx context.Context, status domain.RoomStatus, page, pageSize int32) ([]domain.Room, int32, error)
	ListAvailableRooms(ctx context.Context, checkIn, checkOut time.Time) ([]domain.Room, error)
}

type BookingService interface {
	CreateBooking(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetBooking(ctx context.Context, id int32) (*domain.Booking, error)
	UpdateBooking(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	ListBookings(ctx context.Context, status domain.BookingStatus, page, pageSize int32) ([]domain.Booking, int32, error)
	CheckIn(ctx context.Context, bookingID int32) (*domain.Booking, error)
	CheckOut(ctx context.Context, bookingID int32) (*domain.Booking, error)
	CancelBooking(ctx context.Context, bookingID int32, reason string) (*domain.Booking, error)
}

type BillingService interface {
	CreateInvoice(ctx context.Context, bookingID, amountCents, taxCents int32, dueDate *time.Time, draft bool) (*domain.Invoice, error)
	GetInvoice(ctx context.Context, id int32) (*domain.Invoice, *domain.InvoiceTotals, error)
	ListInvoices(ctx context.Context, status domain.InvoiceStatus, page, pageSize int32) ([]domain.Invoice, int32, error)
	ListInvoicesForBooking(ctx context.Context, bookingID int32) ([]domain.Invoice, error)
	MarkInvoicePaid(ctx context.Context, id int32) (*domain.Invoice, error)
	VoidInvoice(ctx context.Context, id int32) (*domain.Invoice, error)
	ReconcileInvoiceStatus(ctx context.Context, invoiceID int32) error

	CreatePayment(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)
	UpdatePaymentStatus(ctx context.Context, paymentID int32, status domain.PaymentStatus) (*domain.Payment, error)
	ProcessRefund(ctx context.Context, paymentID int32, refundCents *int32) (*domain.Payment, error)
	DeletePayment(ctx context.Context, paymentID int32) error
	ListPayments(ctx context.Context, invoiceID int32) ([]domain.Payment, error)
}

type HousekeepingService interface {
	CreateTask(ctx context.Context, task *domain.HousekeepingTask, actor string) (*domain.HousekeepingTask, error)
	GetTask(ctx context.Context, id int32) (*domain.HousekeepingTask, error)
	UpdateTaskStatus(ctx context.Context, id int32, status domain.HousekeepingStatus, actor, note string) (*domain.HousekeepingTask, error)
	AssignTask(ctx context.Context, id int32, assignee, actor string) (*domain.HousekeepingTask, error)
	ListTasks(ctx context.Context, status domain.HousekeepingStatus, scheduledFor *time.Time, page, pageSize int32) ([]domain.HousekeepingTask, int32, error)
}

type MaintenanceService interface {
	OpenRequest(ctx context.Context, req *domain.MaintenanceRequest, takeRoomOffline bool) (*domain.MaintenanceRequest, error)
	GetRequest(ctx context.Context, id int32) (*domain.MaintenanceRequest, error)
	UpdateRequestStatus(ctx context.Context, id int32, status domain.MaintenanceStatus, actor, note string) (*domain.MaintenanceRequest, error)
	UpdateRequestPriority(ctx context.Context, id int32, priority domain.MaintenancePriority, actor string) (*domain.MaintenanceRequest, error)
	ListRequests(ctx context.Context, status domain.MaintenanceStatus, page, pageSize int32) ([]domain.MaintenanceRequest, int32, error)
}

type ReportService interface {
	OccupancySummary(ctx context.Context) (*OccupancyReport, error)
	RevenueSummary(ctx context.Context, from, to time.Time) (*RevenueReport, error)
	DailyMovements(ctx context.Context) (*MovementsReport, error)
}

type EmailService interface {
	SendBookingConfirmation(ctx context.Context, to, guestName, roomNumber string, checkIn, checkOut time.Time) error
	SendPaymentReceipt(ctx context.Context, to, guestName, invoiceNumber string, amountCents int32) error
	SendOverdueInvoiceReminder(ctx context.Context, to, guestName, invoiceNumber string, remainingCents int32, dueDate time.Time) error
}

// OccupancyReport summarizes the current room inventory
type OccupancyReport struct {
	TotalRooms    int32                       `json:"total_rooms"`
	ByStatus      map[domain.RoomStatus]int32 `json:"by_status"`
	OccupancyRate float64                     `json:"occupancy_rate"`
}

// RevenueReport summarizes invoiced revenue over a period
type RevenueReport struct {
	From             time.Time `json:"from"`
	To               time.Time `json:"to"`
	PaidCents        int64     `json:"paid_cents"`
	OutstandingCents int64     `json:"outstanding_cents"`
}

// MovementsReport counts today's arrivals and departures
type MovementsReport struct {
	Date       time.Time `json:"date"`
	Arrivals   int32     `json:"arrivals"`
	Departures int32     `json:"departures"`
	InHouse    int32     `json:"in_house"`
}
