package repository

import (
	"context"
	"time"

	"hotelier-backend/internal/domain"
)

type GuestRepository interface {
	Create(ctx context.Context, guest *domain.Guest) error
	GetByID(ctx context.Context, id int32) (*domain.Guest, error)
	Update(ctx context.Context, guest *domain.Guest) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context, page, pageSize int32) ([]domain.Guest, int32, error)
	ListAll(ctx context.Context) ([]domain.Guest, error)
	Search(ctx context.Context, query string, page, pageSize int32) ([]domain.Guest, int32, error)
}

type RoomRepository interface {
	Create(ctx context.Context, room *domain.Room) error
	GetByID(ctx context.Context, id int32) (*domain.Room, error)
	GetByNumber(ctx context.Context, number string) (*domain.Room, error)
	Update(ctx context.Context, room *domain.Room) error
	UpdateStatus(ctx context.Context, id int32, status domain.RoomStatus) error
	List(ctx context.Context, status domain.RoomStatus, page, pageSize int32) ([]domain.Room, int32, error)
	ListAvailable(ctx context.Context, checkIn, checkOut time.Time) ([]domain.Room, error)
	CountByStatus(ctx context.Context) (map[domain.RoomStatus]int32, error)
}

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id int32) (*domain.Booking, error)
	Update(ctx context.Context, booking *domain.Booking) error
	List(ctx context.Context, status domain.BookingStatus, page, pageSize int32) ([]domain.Booking, int32, error)
	ListAll(ctx context.Context) ([]domain.Booking, error)
	ListByGuest(ctx context.Context, guestID int32) ([]domain.Booking, error)
	ListConfirmedBefore(ctx context.Context, checkInBefore time.Time) ([]domain.Booking, error)
}

type InvoiceRepository interface {
	Create(ctx context.Context, invoice *domain.Invoice) error
	GetByID(ctx context.Context, id int32) (*domain.Invoice, error)
	GetByNumber(ctx context.Context, number string) (*domain.Invoice, error)
	UpdateStatus(ctx context.Context, id int32, status domain.InvoiceStatus) error
	List(ctx context.Context, status domain.InvoiceStatus, page, pageSize int32) ([]domain.Invoice, int32, error)
	ListByBooking(ctx context.Context, bookingID int32) ([]domain.Invoice, error)
	ListOverdue(ctx context.Context, asOf time.Time) ([]domain.Invoice, error)
	ListIDsByStatuses(ctx context.Context, statuses []domain.InvoiceStatus) ([]int32, error)
	RevenueSummary(ctx context.Context, from, to time.Time) (paidCents, outstandingCents int64, err error)
}

type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) error
	GetByID(ctx context.Context, id int32) (*domain.Payment, error)
	Update(ctx context.Context, payment *domain.Payment) error
	Delete(ctx context.Context, id int32) error
	ListByInvoice(ctx context.Context, invoiceID int32) ([]domain.Payment, error)
	ListCompletedByInvoice(ctx context.Context, invoiceID int32) ([]domain.Payment, error)
}

type HousekeepingRepository interface {
	Create(ctx context.Context, task *domain.HousekeepingTask) error
	GetByID(ctx context.Context, id int32) (*domain.HousekeepingTask, error)
	Update(ctx context.Context, task *domain.HousekeepingTask) error
	List(ctx context.Context, status domain.HousekeepingStatus, scheduledFor *time.Time, page, pageSize int32) ([]domain.HousekeepingTask, int32, error)
	ExistsForRoomAndDate(ctx context.Context, roomID int32, date time.Time) (bool, error)
}

type MaintenanceRepository interface {
	Create(ctx context.Context, req *domain.MaintenanceRequest) error
	GetByID(ctx context.Context, id int32) (*domain.MaintenanceRequest, error)
	Update(ctx context.Context, req *domain.MaintenanceRequest) error
	List(ctx context.Context, status domain.MaintenanceStatus, page, pageSize int32) ([]domain.MaintenanceRequest, int32, error)
}

type StaffRepository interface {
	Create(ctx context.Context, user *domain.StaffUser) error
	GetByID(ctx context.Context, id int32) (*domain.StaffUser, error)
	GetByEmail(ctx context.Context, email string) (*domain.StaffUser, error)
	Update(ctx context.Context, user *domain.StaffUser) error
}
