package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hotelier-backend/internal/domain"
	"hotelier-backend/internal/repository"
	"hotelier-backend/internal/utils"
)

type guestService struct {
	guestRepo   repository.GuestRepository
	bookingRepo repository.BookingRepository
}

func NewGuestService(guestRepo repository.GuestRepository, bookingRepo repository.BookingRepository) GuestService {
	return &guestService{guestRepo: guestRepo, bookingRepo: bookingRepo}
}

func (s *guestService) CreateGuest(ctx context.Context, guest *domain.Guest) (*domain.Guest, error) {
	if err := validateGuest(guest); err != nil {
		return nil, err
	}
	if err := s.guestRepo.Create(ctx, guest); err != nil {
		return nil, err
	}
	return guest, nil
}

func (s *guestService) GetGuest(ctx context.Context, id int32) (*domain.Guest, error) {
	return s.guestRepo.GetByID(ctx, id)
}

func (s *guestService) UpdateGuest(ctx context.Context, guest *domain.Guest) (*domain.Guest, error) {
	if err := validateGuest(guest); err != nil {
		return nil, err
	}
	if _, err := s.guestRepo.GetByID(ctx, guest.ID); err != nil {
		return nil, err
	}
	if err := s.guestRepo.Update(ctx, guest); err != nil {
		return nil, err
	}
	return guest, nil
}

func (s *guestService) DeleteGuest(ctx context.Context, id int32) error {
	return s.guestRepo.Delete(ctx, id)
}

func (s *guestService) ListGuests(ctx context.Context, query string, page, pageSize int32) ([]domain.Guest, int32, error) {
	if strings.TrimSpace(query) != "" {
		return s.guestRepo.Search(ctx, query, page, pageSize)
	}
	return s.guestRepo.List(ctx, page, pageSize)
}

func (s *guestService) ListGuestBookings(ctx context.Context, guestID int32) ([]domain.Booking, error) {
	if _, err := s.guestRepo.GetByID(ctx, guestID); err != nil {
		return nil, err
	}
	return s.bookingRepo.ListByGuest(ctx, guestID)
}

func (s *guestService) CategorizeGuests(ctx context.Context) (*domain.GuestBuckets, error) {
	guests, err := s.guestRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	bookings, err := s.bookingRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	buckets := CategorizeGuests(guests, bookings, time.Now())
	return &buckets, nil
}

func (s *guestService) GetGuestPresence(ctx context.Context, guestID int32) (domain.GuestPresence, error) {
	if _, err := s.guestRepo.GetByID(ctx, guestID); err != nil {
		return "", err
	}
	bookings, err := s.bookingRepo.ListByGuest(ctx, guestID)
	if err != nil {
		return "", err
	}
	return GuestPresence(bookings, time.Now()), nil
}

// CategorizeGuests sorts guests into the three front-desk buckets for a
// given day. All comparisons are date-only; the time of day never
// changes a bucket. Bookings with a missing check-in or check-out date
// are skipped. A guest appears at most once per bucket, but may appear
// in several buckets through distinct bookings, except that a booking
// departing today goes only to the departing bucket even while the
// guest is still checked in.
func CategorizeGuests(guests []domain.Guest, bookings []domain.Booking, now time.Time) domain.GuestBuckets {
	today := utils.DateOnly(now)

	byID := make(map[int32]domain.Guest, len(guests))
	for _, g := range guests {
		byID[g.ID] = g
	}

	buckets := domain.GuestBuckets{
		Current:   []domain.GuestWithBooking{},
		Arriving:  []domain.GuestWithBooking{},
		Departing: []domain.GuestWithBooking{},
	}
	seenCurrent := make(map[int32]bool)
	seenArriving := make(map[int32]bool)
	seenDeparting := make(map[int32]bool)

	for _, b := range bookings {
		guest, ok := byID[b.GuestID]
		if !ok || !b.HasValidDates() {
			continue
		}

		checkIn := utils.DateOnly(b.CheckIn)
		checkOut := utils.DateOnly(b.CheckOut)
		entry := domain.GuestWithBooking{Guest: guest, Booking: b}

		switch b.Status {
		case domain.BookingStatusCheckedIn:
			if checkOut.Equal(today) {
				if !seenDeparting[guest.ID] {
					seenDeparting[guest.ID] = true
					buckets.Departing = append(buckets.Departing, entry)
				}
			} else if !seenCurrent[guest.ID] {
				seenCurrent[guest.ID] = true
				buckets.Current = append(buckets.Current, entry)
			}
		case domain.BookingStatusCheckedOut:
			if checkOut.Equal(today) && !seenDeparting[guest.ID] {
				seenDeparting[guest.ID] = true
				buckets.Departing = append(buckets.Departing, entry)
			}
		case domain.BookingStatusConfirmed:
			if !checkIn.Before(today) && !seenArriving[guest.ID] {
				seenArriving[guest.ID] = true
				buckets.Arriving = append(buckets.Arriving, entry)
			}
		}
	}

	return buckets
}

// GuestPresence summarizes a guest's relationship to the hotel from
// their booking history. Checked-in wins over everything, a future
// confirmed stay wins over history, and any other usable booking,
// however it ended, makes the guest a past guest.
func GuestPresence(bookings []domain.Booking, now time.Time) domain.GuestPresence {
	today := utils.DateOnly(now)

	hasUpcoming := false
	hasAny := false
	for _, b := range bookings {
		if !b.HasValidDates() {
			continue
		}
		hasAny = true
		switch b.Status {
		case domain.BookingStatusCheckedIn:
			return domain.GuestPresenceCheckedIn
		case domain.BookingStatusConfirmed:
			if !utils.DateOnly(b.CheckIn).Before(today) {
				hasUpcoming = true
			}
		}
	}
	if hasUpcoming {
		return domain.GuestPresenceUpcoming
	}
	if hasAny {
		return domain.GuestPresencePastGuest
	}
	return domain.GuestPresenceNoBookings
}

func validateGuest(guest *domain.Guest) error {
	if strings.TrimSpace(guest.FirstName) == "" || strings.TrimSpace(guest.LastName) == "" {
		return fmt.Errorf("%w: guest first and last name are required", domain.ErrValidation)
	}
	return nil
}
