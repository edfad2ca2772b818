package domain

import "time"

type Guest struct {
	ID         int32     `json:"id"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Address    string    `json:"address"`
	IDDocument string    `json:"id_document"`
	Notes      string    `json:"notes"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (g *Guest) FullName() string {
	if g.FirstName == "" {
		return g.LastName
	}
	if g.LastName == "" {
		return g.FirstName
	}
	return g.FirstName + " " + g.LastName
}

// GuestPresence is the derived display status of a guest. It is computed
// fresh from the guest's bookings on every pass and never persisted.
type GuestPresence string

const (
	GuestPresenceCheckedIn  GuestPresence = "checked-in"
	GuestPresenceUpcoming   GuestPresence = "upcoming"
	GuestPresencePastGuest  GuestPresence = "past-guest"
	GuestPresenceNoBookings GuestPresence = "no-bookings"
)

// GuestWithBooking pairs a guest with one representative booking for a
// categorization bucket.
type GuestWithBooking struct {
	Guest   Guest   `json:"guest"`
	Booking Booking `json:"booking"`
}

// GuestBuckets is the output of a categorization pass. A guest appears at
// most once per bucket but may appear in several buckets via different
// bookings.
type GuestBuckets struct {
	Current   []GuestWithBooking `json:"current_guests"`
	Arriving  []GuestWithBooking `json:"arriving_guests"`
	Departing []GuestWithBooking `json:"departing_guests"`
}
