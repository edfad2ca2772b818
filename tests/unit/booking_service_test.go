package unit

import (
	"context"
	"testing"
	"time"

	"hotelier-backend/internal/domain"
	"hotelier-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type bookingFixture struct {
	bookingRepo      *MockBookingRepo
	guestRepo        *MockGuestRepo
	roomRepo         *MockRoomRepo
	housekeepingRepo *MockHousekeepingRepo
	invoiceRepo      *MockInvoiceRepo
	paymentRepo      *MockPaymentRepo
	emailSvc         *MockEmailService
	svc              service.BookingService
}

func newBookingFixture() *bookingFixture {
	f := &bookingFixture{
		bookingRepo:      new(MockBookingRepo),
		guestRepo:        new(MockGuestRepo),
		roomRepo:         new(MockRoomRepo),
		housekeepingRepo: new(MockHousekeepingRepo),
		invoiceRepo:      new(MockInvoiceRepo),
		paymentRepo:      new(MockPaymentRepo),
		emailSvc:         new(MockEmailService),
	}
	housekeepingSvc := service.NewHousekeepingService(f.housekeepingRepo, f.roomRepo)
	billingSvc := service.NewBillingService(f.invoiceRepo, f.paymentRepo, f.bookingRepo, f.guestRepo, f.emailSvc)
	f.svc = service.NewBookingService(f.bookingRepo, f.guestRepo, f.roomRepo, housekeepingSvc, billingSvc, f.emailSvc, 1000, 14)
	return f
}

func TestBookingService_CreateBooking(t *testing.T) {
	ctx := context.Background()
	checkIn := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, 4, 4, 0, 0, 0, 0, time.UTC)

	t.Run("Success", func(t *testing.T) {
		f := newBookingFixture()
		room := &domain.Room{ID: 2, Number: "204", Capacity: 2, RatePerNightCents: 15000, Status: domain.RoomStatusAvailable}

		f.guestRepo.On("GetByID", ctx, int32(1)).Return(&domain.Guest{ID: 1, FirstName: "Alice", LastName: "Martin", Email: "alice@example.com"}, nil)
		f.roomRepo.On("GetByID", ctx, int32(2)).Return(room, nil)
		f.roomRepo.On("ListAvailable", ctx, checkIn, checkOut).Return([]domain.Room{*room}, nil)
		f.bookingRepo.On("Create", ctx, mock.AnythingOfType("*domain.Booking")).Return(nil)
		f.emailSvc.On("SendBookingConfirmation", ctx, "alice@example.com", "Alice Martin", "204", checkIn, checkOut).Return(nil)

		booking, err := f.svc.CreateBooking(ctx, &domain.Booking{
			GuestID:  1,
			RoomID:   2,
			CheckIn:  checkIn,
			CheckOut: checkOut,
			Adults:   2,
		})
		assert.NoError(t, err)
		assert.Equal(t, domain.BookingStatusConfirmed, booking.Status)
		// 3 nights at 15000 cents
		assert.Equal(t, int32(45000), booking.TotalCents)
		f.emailSvc.AssertExpectations(t)
	})

	t.Run("RoomAlreadyBooked", func(t *testing.T) {
		f := newBookingFixture()
		room := &domain.Room{ID: 2, Number: "204", Capacity: 2, Status: domain.RoomStatusAvailable}

		f.guestRepo.On("GetByID", ctx, int32(1)).Return(&domain.Guest{ID: 1}, nil)
		f.roomRepo.On("GetByID", ctx, int32(2)).Return(room, nil)
		f.roomRepo.On("ListAvailable", ctx, checkIn, checkOut).Return([]domain.Room{}, nil)

		_, err := f.svc.CreateBooking(ctx, &domain.Booking{GuestID: 1, RoomID: 2, CheckIn: checkIn, CheckOut: checkOut, Adults: 1})
		assert.ErrorIs(t, err, domain.ErrInvalidState)
	})

	t.Run("PartyExceedsCapacity", func(t *testing.T) {
		f := newBookingFixture()
		room := &domain.Room{ID: 2, Number: "204", Capacity: 2, Status: domain.RoomStatusAvailable}

		f.guestRepo.On("GetByID", ctx, int32(1)).Return(&domain.Guest{ID: 1}, nil)
		f.roomRepo.On("GetByID", ctx, int32(2)).Return(room, nil)

		_, err := f.svc.CreateBooking(ctx, &domain.Booking{GuestID: 1, RoomID: 2, CheckIn: checkIn, CheckOut: checkOut, Adults: 2, Children: 1})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("MissingDatesRejected", func(t *testing.T) {
		f := newBookingFixture()

		_, err := f.svc.CreateBooking(ctx, &domain.Booking{GuestID: 1, RoomID: 2, Adults: 1})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("RoomOutOfServiceRejected", func(t *testing.T) {
		f := newBookingFixture()
		room := &domain.Room{ID: 2, Number: "204", Capacity: 2, Status: domain.RoomStatusOutOfService}

		f.guestRepo.On("GetByID", ctx, int32(1)).Return(&domain.Guest{ID: 1}, nil)
		f.roomRepo.On("GetByID", ctx, int32(2)).Return(room, nil)

		_, err := f.svc.CreateBooking(ctx, &domain.Booking{GuestID: 1, RoomID: 2, CheckIn: checkIn, CheckOut: checkOut, Adults: 1})
		assert.ErrorIs(t, err, domain.ErrInvalidState)
	})
}

func TestBookingService_CheckIn(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		f := newBookingFixture()

		f.bookingRepo.On("GetByID", ctx, int32(1)).Return(&domain.Booking{ID: 1, RoomID: 2, Status: domain.BookingStatusConfirmed}, nil)
		f.bookingRepo.On("Update", ctx, mock.AnythingOfType("*domain.Booking")).Return(nil)
		f.roomRepo.On("UpdateStatus", ctx, int32(2), domain.RoomStatusOccupied).Return(nil)

		booking, err := f.svc.CheckIn(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, domain.BookingStatusCheckedIn, booking.Status)
		f.roomRepo.AssertCalled(t, "UpdateStatus", ctx, int32(2), domain.RoomStatusOccupied)
	})

	t.Run("OnlyConfirmedCanCheckIn", func(t *testing.T) {
		f := newBookingFixture()

		f.bookingRepo.On("GetByID", ctx, int32(1)).Return(&domain.Booking{ID: 1, Status: domain.BookingStatusCancelled}, nil)

		_, err := f.svc.CheckIn(ctx, 1)
		assert.ErrorIs(t, err, domain.ErrInvalidState)
	})
}

func TestBookingService_CheckOut(t *testing.T) {
	ctx := context.Background()

	t.Run("FlagsRoomAndIssuesInvoice", func(t *testing.T) {
		f := newBookingFixture()
		booking := &domain.Booking{ID: 1, GuestID: 5, RoomID: 2, Status: domain.BookingStatusCheckedIn, TotalCents: 45000}

		f.bookingRepo.On("GetByID", ctx, int32(1)).Return(booking, nil)
		f.bookingRepo.On("Update", ctx, mock.AnythingOfType("*domain.Booking")).Return(nil)
		f.roomRepo.On("GetByID", ctx, int32(2)).Return(&domain.Room{ID: 2, Status: domain.RoomStatusOccupied}, nil)
		f.roomRepo.On("UpdateStatus", ctx, int32(2), domain.RoomStatusCleaning).Return(nil)
		f.housekeepingRepo.On("Create", ctx, mock.AnythingOfType("*domain.HousekeepingTask")).Return(nil)
		f.invoiceRepo.On("ListByBooking", ctx, int32(1)).Return([]domain.Invoice{}, nil)
		f.invoiceRepo.On("Create", ctx, mock.AnythingOfType("*domain.Invoice")).Return(nil)

		result, err := f.svc.CheckOut(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, domain.BookingStatusCheckedOut, result.Status)
		f.roomRepo.AssertCalled(t, "UpdateStatus", ctx, int32(2), domain.RoomStatusCleaning)
		f.housekeepingRepo.AssertCalled(t, "Create", ctx, mock.AnythingOfType("*domain.HousekeepingTask"))
		f.invoiceRepo.AssertCalled(t, "Create", ctx, mock.AnythingOfType("*domain.Invoice"))
	})

	t.Run("ExistingInvoiceNotDuplicated", func(t *testing.T) {
		f := newBookingFixture()
		booking := &domain.Booking{ID: 1, GuestID: 5, RoomID: 2, Status: domain.BookingStatusCheckedIn, TotalCents: 45000}

		f.bookingRepo.On("GetByID", ctx, int32(1)).Return(booking, nil)
		f.bookingRepo.On("Update", ctx, mock.AnythingOfType("*domain.Booking")).Return(nil)
		f.roomRepo.On("GetByID", ctx, int32(2)).Return(&domain.Room{ID: 2, Status: domain.RoomStatusOccupied}, nil)
		f.roomRepo.On("UpdateStatus", ctx, int32(2), domain.RoomStatusCleaning).Return(nil)
		f.housekeepingRepo.On("Create", ctx, mock.AnythingOfType("*domain.HousekeepingTask")).Return(nil)
		f.invoiceRepo.On("ListByBooking", ctx, int32(1)).Return([]domain.Invoice{
			{ID: 9, BookingID: 1, Status: domain.InvoiceStatusUnpaid},
		}, nil)

		_, err := f.svc.CheckOut(ctx, 1)
		assert.NoError(t, err)
		f.invoiceRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("OnlyCheckedInCanCheckOut", func(t *testing.T) {
		f := newBookingFixture()

		f.bookingRepo.On("GetByID", ctx, int32(1)).Return(&domain.Booking{ID: 1, Status: domain.BookingStatusConfirmed}, nil)

		_, err := f.svc.CheckOut(ctx, 1)
		assert.ErrorIs(t, err, domain.ErrInvalidState)
	})
}

func TestBookingService_CancelBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		f := newBookingFixture()

		f.bookingRepo.On("GetByID", ctx, int32(1)).Return(&domain.Booking{ID: 1, Status: domain.BookingStatusConfirmed}, nil)
		f.bookingRepo.On("Update", ctx, mock.AnythingOfType("*domain.Booking")).Return(nil)

		booking, err := f.svc.CancelBooking(ctx, 1, "guest request")
		assert.NoError(t, err)
		assert.Equal(t, domain.BookingStatusCancelled, booking.Status)
		assert.Contains(t, booking.Notes, "guest request")
	})

	t.Run("CheckedInCannotCancel", func(t *testing.T) {
		f := newBookingFixture()

		f.bookingRepo.On("GetByID", ctx, int32(1)).Return(&domain.Booking{ID: 1, Status: domain.BookingStatusCheckedIn}, nil)

		_, err := f.svc.CancelBooking(ctx, 1, "")
		assert.ErrorIs(t, err, domain.ErrInvalidState)
	})
}
