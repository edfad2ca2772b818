package service

import (
	"context"
	"fmt"
	"time"

	"hotelier-backend/internal/domain"
	"hotelier-backend/internal/logger"
	"hotelier-backend/internal/repository"
	"hotelier-backend/internal/utils"
)

type bookingService struct {
	bookingRepo     repository.BookingRepository
	guestRepo       repository.GuestRepository
	roomRepo        repository.RoomRepository
	housekeepingSvc HousekeepingService
	billingSvc      BillingService
	emailSvc        EmailService
	taxRateBps      int32
	defaultDueDays  int32
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	guestRepo repository.GuestRepository,
	roomRepo repository.RoomRepository,
	housekeepingSvc HousekeepingService,
	billingSvc BillingService,
	emailSvc EmailService,
	taxRateBps, defaultDueDays int32,
) BookingService {
	return &bookingService{
		bookingRepo:     bookingRepo,
		guestRepo:       guestRepo,
		roomRepo:        roomRepo,
		housekeepingSvc: housekeepingSvc,
		billingSvc:      billingSvc,
		emailSvc:        emailSvc,
		taxRateBps:      taxRateBps,
		defaultDueDays:  defaultDueDays,
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if !booking.HasValidDates() {
		return nil, fmt.Errorf("%w: booking check-in and check-out dates are required", domain.ErrValidation)
	}
	nights, err := utils.NightsBetween(booking.CheckIn, booking.CheckOut)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	if booking.Adults < 1 {
		return nil, fmt.Errorf("%w: a booking needs at least one adult", domain.ErrValidation)
	}

	guest, err := s.guestRepo.GetByID(ctx, booking.GuestID)
	if err != nil {
		return nil, err
	}
	room, err := s.roomRepo.GetByID(ctx, booking.RoomID)
	if err != nil {
		return nil, err
	}
	if room.Status == domain.RoomStatusOutOfService || room.Status == domain.RoomStatusMaintenance {
		return nil, fmt.Errorf("%w: room %s is not bookable", domain.ErrInvalidState, room.Number)
	}
	if booking.Adults+booking.Children > room.Capacity {
		return nil, fmt.Errorf("%w: party exceeds room capacity of %d", domain.ErrValidation, room.Capacity)
	}

	available, err := s.roomRepo.ListAvailable(ctx, booking.CheckIn, booking.CheckOut)
	if err != nil {
		return nil, err
	}
	if !containsRoom(available, room.ID) {
		return nil, fmt.Errorf("%w: room %s is already booked for those dates", domain.ErrInvalidState, room.Number)
	}

	booking.Status = domain.BookingStatusConfirmed
	if booking.TotalCents == 0 {
		booking.TotalCents = nights * room.RatePerNightCents
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}

	if guest.Email != "" {
		if err := s.emailSvc.SendBookingConfirmation(ctx, guest.Email, guest.FullName(), room.Number, booking.CheckIn, booking.CheckOut); err != nil {
			logger.Warn("Failed to send booking confirmation", "booking_id", booking.ID, "error", err)
		}
	}

	return booking, nil
}

func (s *bookingService) GetBooking(ctx context.Context, id int32) (*domain.Booking, error) {
	return s.bookingRepo.GetByID(ctx, id)
}

func (s *bookingService) UpdateBooking(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	existing, err := s.bookingRepo.GetByID(ctx, booking.ID)
	if err != nil {
		return nil, err
	}
	if existing.Status == domain.BookingStatusCancelled || existing.Status == domain.BookingStatusCheckedOut {
		return nil, fmt.Errorf("%w: a %s booking cannot be modified", domain.ErrInvalidState, existing.Status)
	}
	if !booking.HasValidDates() {
		return nil, fmt.Errorf("%w: booking check-in and check-out dates are required", domain.ErrValidation)
	}
	if _, err := utils.NightsBetween(booking.CheckIn, booking.CheckOut); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *bookingService) ListBookings(ctx context.Context, status domain.BookingStatus, page, pageSize int32) ([]domain.Booking, int32, error) {
	return s.bookingRepo.List(ctx, status, page, pageSize)
}

// CheckIn moves a confirmed booking to CHECKED_IN and marks its room
// occupied.
func (s *bookingService) CheckIn(ctx context.Context, id int32) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.Status != domain.BookingStatusConfirmed {
		return nil, fmt.Errorf("%w: only a confirmed booking can check in, booking is %s", domain.ErrInvalidState, booking.Status)
	}

	booking.Status = domain.BookingStatusCheckedIn
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}
	if err := s.roomRepo.UpdateStatus(ctx, booking.RoomID, domain.RoomStatusOccupied); err != nil {
		logger.Warn("Failed to mark room occupied after check-in", "booking_id", id, "room_id", booking.RoomID, "error", err)
	}
	return booking, nil
}

// CheckOut moves a checked-in booking to CHECKED_OUT, flags the room for
// cleaning with a same-day housekeeping task, and issues the stay
// invoice if the booking does not have one yet.
func (s *bookingService) CheckOut(ctx context.Context, id int32) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.Status != domain.BookingStatusCheckedIn {
		return nil, fmt.Errorf("%w: only a checked-in booking can check out, booking is %s", domain.ErrInvalidState, booking.Status)
	}

	booking.Status = domain.BookingStatusCheckedOut
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}

	if err := s.roomRepo.UpdateStatus(ctx, booking.RoomID, domain.RoomStatusCleaning); err != nil {
		logger.Warn("Failed to mark room for cleaning after check-out", "booking_id", id, "room_id", booking.RoomID, "error", err)
	}

	task := &domain.HousekeepingTask{
		RoomID:       booking.RoomID,
		Status:       domain.HousekeepingStatusPending,
		ScheduledFor: utils.DateOnly(time.Now()),
		Notes:        "Turnover clean after check-out",
	}
	if _, err := s.housekeepingSvc.CreateTask(ctx, task, "system"); err != nil {
		logger.Warn("Failed to schedule turnover cleaning", "booking_id", id, "room_id", booking.RoomID, "error", err)
	}

	if err := s.issueStayInvoice(ctx, booking); err != nil {
		logger.Warn("Failed to issue stay invoice at check-out", "booking_id", id, "error", err)
	}

	return booking, nil
}

func (s *bookingService) CancelBooking(ctx context.Context, id int32, reason string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.Status != domain.BookingStatusConfirmed {
		return nil, fmt.Errorf("%w: only a confirmed booking can be cancelled, booking is %s", domain.ErrInvalidState, booking.Status)
	}

	booking.Status = domain.BookingStatusCancelled
	if reason != "" {
		if booking.Notes != "" {
			booking.Notes += "\n"
		}
		booking.Notes += "Cancelled: " + reason
	}
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// issueStayInvoice creates the invoice for a completed stay unless one
// already exists for the booking.
func (s *bookingService) issueStayInvoice(ctx context.Context, booking *domain.Booking) error {
	invoices, err := s.billingSvc.ListInvoicesForBooking(ctx, booking.ID)
	if err != nil {
		return err
	}
	for _, inv := range invoices {
		if inv.Status != domain.InvoiceStatusVoid {
			return nil
		}
	}

	tax := int32(int64(booking.TotalCents) * int64(s.taxRateBps) / 10000)
	due := utils.DateOnly(time.Now()).AddDate(0, 0, int(s.defaultDueDays))
	_, err = s.billingSvc.CreateInvoice(ctx, booking.ID, booking.TotalCents, tax, &due, false)
	return err
}

func containsRoom(rooms []domain.Room, id int32) bool {
	for _, r := range rooms {
		if r.ID == id {
			return true
		}
	}
	return false
}
