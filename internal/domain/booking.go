package domain

import "time"

type BookingStatus string

const (
	BookingStatusConfirmed  BookingStatus = "CONFIRMED"
	BookingStatusCheckedIn  BookingStatus = "CHECKED_IN"
	BookingStatusCheckedOut BookingStatus = "CHECKED_OUT"
	BookingStatusCancelled  BookingStatus = "CANCELLED"
	BookingStatusNoShow     BookingStatus = "NO_SHOW"
)

type Booking struct {
	ID         int32         `json:"id"`
	GuestID    int32         `json:"guest_id"`
	RoomID     int32         `json:"room_id"`
	CheckIn    time.Time     `json:"check_in"`
	CheckOut   time.Time     `json:"check_out"`
	Status     BookingStatus `json:"status"`
	Adults     int32         `json:"adults"`
	Children   int32         `json:"children"`
	TotalCents int32         `json:"total_cents"`
	Notes      string        `json:"notes"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

// HasValidDates reports whether both stay dates are populated. Bookings
// arrive from an external store that may contain partially-populated
// records; a zero date marks the booking as non-matching for
// categorization rather than an error.
func (b *Booking) HasValidDates() bool {
	return !b.CheckIn.IsZero() && !b.CheckOut.IsZero()
}
