package unit

import (
	"context"
	"time"

	"hotelier-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockGuestRepo
type MockGuestRepo struct {
	mock.Mock
}

func (m *MockGuestRepo) Create(ctx context.Context, guest *domain.Guest) error {
	args := m.Called(ctx, guest)
	return args.Error(0)
}
func (m *MockGuestRepo) GetByID(ctx context.Context, id int32) (*domain.Guest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Guest), args.Error(1)
}
func (m *MockGuestRepo) Update(ctx context.Context, guest *domain.Guest) error {
	args := m.Called(ctx, guest)
	return args.Error(0)
}
func (m *MockGuestRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockGuestRepo) List(ctx context.Context, page, pageSize int32) ([]domain.Guest, int32, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]domain.Guest), args.Get(1).(int32), args.Error(2)
}
func (m *MockGuestRepo) ListAll(ctx context.Context) ([]domain.Guest, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Guest), args.Error(1)
}
func (m *MockGuestRepo) Search(ctx context.Context, query string, page, pageSize int32) ([]domain.Guest, int32, error) {
	args := m.Called(ctx, query, page, pageSize)
	return args.Get(0).([]domain.Guest), args.Get(1).(int32), args.Error(2)
}

// MockRoomRepo
type MockRoomRepo struct {
	mock.Mock
}

func (m *MockRoomRepo) Create(ctx context.Context, room *domain.Room) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}
func (m *MockRoomRepo) GetByID(ctx context.Context, id int32) (*domain.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}
func (m *MockRoomRepo) GetByNumber(ctx context.Context, number string) (*domain.Room, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}
func (m *MockRoomRepo) Update(ctx context.Context, room *domain.Room) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}
func (m *MockRoomRepo) UpdateStatus(ctx context.Context, id int32, status domain.RoomStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockRoomRepo) List(ctx context.Context, status domain.RoomStatus, page, pageSize int32) ([]domain.Room, int32, error) {
	args := m.Called(ctx, status, page, pageSize)
	return args.Get(0).([]domain.Room), args.Get(1).(int32), args.Error(2)
}
func (m *MockRoomRepo) ListAvailable(ctx context.Context, checkIn, checkOut time.Time) ([]domain.Room, error) {
	args := m.Called(ctx, checkIn, checkOut)
	return args.Get(0).([]domain.Room), args.Error(1)
}
func (m *MockRoomRepo) CountByStatus(ctx context.Context) (map[domain.RoomStatus]int32, error) {
	args := m.Called(ctx)
	return args.Get(0).(map[domain.RoomStatus]int32), args.Error(1)
}

// MockBookingRepo
type MockBookingRepo struct {
	mock.Mock
}

func (m *MockBookingRepo) Create(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}
func (m *MockBookingRepo) GetByID(ctx context.Context, id int32) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) Update(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}
func (m *MockBookingRepo) List(ctx context.Context, status domain.BookingStatus, page, pageSize int32) ([]domain.Booking, int32, error) {
	args := m.Called(ctx, status, page, pageSize)
	return args.Get(0).([]domain.Booking), args.Get(1).(int32), args.Error(2)
}
func (m *MockBookingRepo) ListAll(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) ListByGuest(ctx context.Context, guestID int32) ([]domain.Booking, error) {
	args := m.Called(ctx, guestID)
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) ListConfirmedBefore(ctx context.Context, checkInBefore time.Time) ([]domain.Booking, error) {
	args := m.Called(ctx, checkInBefore)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

// MockInvoiceRepo
type MockInvoiceRepo struct {
	mock.Mock
}

func (m *MockInvoiceRepo) Create(ctx context.Context, invoice *domain.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}
func (m *MockInvoiceRepo) GetByID(ctx context.Context, id int32) (*domain.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}
func (m *MockInvoiceRepo) GetByNumber(ctx context.Context, number string) (*domain.Invoice, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}
func (m *MockInvoiceRepo) UpdateStatus(ctx context.Context, id int32, status domain.InvoiceStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockInvoiceRepo) List(ctx context.Context, status domain.InvoiceStatus, page, pageSize int32) ([]domain.Invoice, int32, error) {
	args := m.Called(ctx, status, page, pageSize)
	return args.Get(0).([]domain.Invoice), args.Get(1).(int32), args.Error(2)
}
func (m *MockInvoiceRepo) ListByBooking(ctx context.Context, bookingID int32) ([]domain.Invoice, error) {
	args := m.Called(ctx, bookingID)
	return args.Get(0).([]domain.Invoice), args.Error(1)
}
func (m *MockInvoiceRepo) ListOverdue(ctx context.Context, asOf time.Time) ([]domain.Invoice, error) {
	args := m.Called(ctx, asOf)
	return args.Get(0).([]domain.Invoice), args.Error(1)
}
func (m *MockInvoiceRepo) ListIDsByStatuses(ctx context.Context, statuses []domain.InvoiceStatus) ([]int32, error) {
	args := m.Called(ctx, statuses)
	return args.Get(0).([]int32), args.Error(1)
}
func (m *MockInvoiceRepo) RevenueSummary(ctx context.Context, from, to time.Time) (int64, int64, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(int64), args.Get(1).(int64), args.Error(2)
}

// MockPaymentRepo
type MockPaymentRepo struct {
	mock.Mock
}

func (m *MockPaymentRepo) Create(ctx context.Context, payment *domain.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}
func (m *MockPaymentRepo) GetByID(ctx context.Context, id int32) (*domain.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}
func (m *MockPaymentRepo) Update(ctx context.Context, payment *domain.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}
func (m *MockPaymentRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockPaymentRepo) ListByInvoice(ctx context.Context, invoiceID int32) ([]domain.Payment, error) {
	args := m.Called(ctx, invoiceID)
	return args.Get(0).([]domain.Payment), args.Error(1)
}
func (m *MockPaymentRepo) ListCompletedByInvoice(ctx context.Context, invoiceID int32) ([]domain.Payment, error) {
	args := m.Called(ctx, invoiceID)
	return args.Get(0).([]domain.Payment), args.Error(1)
}

// MockHousekeepingRepo
type MockHousekeepingRepo struct {
	mock.Mock
}

func (m *MockHousekeepingRepo) Create(ctx context.Context, task *domain.HousekeepingTask) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}
func (m *MockHousekeepingRepo) GetByID(ctx context.Context, id int32) (*domain.HousekeepingTask, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HousekeepingTask), args.Error(1)
}
func (m *MockHousekeepingRepo) Update(ctx context.Context, task *domain.HousekeepingTask) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}
func (m *MockHousekeepingRepo) List(ctx context.Context, status domain.HousekeepingStatus, scheduledFor *time.Time, page, pageSize int32) ([]domain.HousekeepingTask, int32, error) {
	args := m.Called(ctx, status, scheduledFor, page, pageSize)
	return args.Get(0).([]domain.HousekeepingTask), args.Get(1).(int32), args.Error(2)
}
func (m *MockHousekeepingRepo) ExistsForRoomAndDate(ctx context.Context, roomID int32, date time.Time) (bool, error) {
	args := m.Called(ctx, roomID, date)
	return args.Bool(0), args.Error(1)
}

// MockMaintenanceRepo
type MockMaintenanceRepo struct {
	mock.Mock
}

func (m *MockMaintenanceRepo) Create(ctx context.Context, req *domain.MaintenanceRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
func (m *MockMaintenanceRepo) GetByID(ctx context.Context, id int32) (*domain.MaintenanceRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MaintenanceRequest), args.Error(1)
}
func (m *MockMaintenanceRepo) Update(ctx context.Context, req *domain.MaintenanceRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
func (m *MockMaintenanceRepo) List(ctx context.Context, status domain.MaintenanceStatus, page, pageSize int32) ([]domain.MaintenanceRequest, int32, error) {
	args := m.Called(ctx, status, page, pageSize)
	return args.Get(0).([]domain.MaintenanceRequest), args.Get(1).(int32), args.Error(2)
}

// MockStaffRepo
type MockStaffRepo struct {
	mock.Mock
}

func (m *MockStaffRepo) Create(ctx context.Context, user *domain.StaffUser) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockStaffRepo) GetByID(ctx context.Context, id int32) (*domain.StaffUser, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StaffUser), args.Error(1)
}
func (m *MockStaffRepo) GetByEmail(ctx context.Context, email string) (*domain.StaffUser, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StaffUser), args.Error(1)
}
func (m *MockStaffRepo) Update(ctx context.Context, user *domain.StaffUser) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendBookingConfirmation(ctx context.Context, to, guestName, roomNumber string, checkIn, checkOut time.Time) error {
	args := m.Called(ctx, to, guestName, roomNumber, checkIn, checkOut)
	return args.Error(0)
}
func (m *MockEmailService) SendPaymentReceipt(ctx context.Context, to, guestName, invoiceNumber string, amountCents int32) error {
	args := m.Called(ctx, to, guestName, invoiceNumber, amountCents)
	return args.Error(0)
}
func (m *MockEmailService) SendOverdueInvoiceReminder(ctx context.Context, to, guestName, invoiceNumber string, remainingCents int32, dueDate time.Time) error {
	args := m.Called(ctx, to, guestName, invoiceNumber, remainingCents, dueDate)
	return args.Error(0)
}
