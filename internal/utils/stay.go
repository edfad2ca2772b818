package utils

import (
	"fmt"
	"time"
)

// DateOnly truncates a timestamp to midnight in its own location. All
// same-day comparisons in the categorizer and the stay calculator operate
// on date-only values.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether two timestamps fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// NightsBetween returns the number of nights between check-in and
// check-out. A stay from the 2nd to the 4th is 2 nights: the checkout day
// is not charged.
func NightsBetween(checkIn, checkOut time.Time) (int32, error) {
	in := DateOnly(checkIn).UTC()
	out := DateOnly(checkOut).UTC()

	nights := int32(out.Sub(in).Hours() / 24)
	if nights < 1 {
		return 0, fmt.Errorf("check-out must be at least one day after check-in")
	}
	return nights, nil
}

// StayCostBreakdown provides a detailed stay cost breakdown
type StayCostBreakdown struct {
	Nights            int32
	RatePerNightCents int32
	TotalCents        int32
}

// CalculateStayCost computes the total cost of a stay from the room's
// nightly rate.
func CalculateStayCost(checkIn, checkOut time.Time, ratePerNightCents int32) (int32, error) {
	nights, err := NightsBetween(checkIn, checkOut)
	if err != nil {
		return 0, err
	}
	return nights * ratePerNightCents, nil
}

// CalculateStayCostWithBreakdown returns the nightly breakdown alongside
// the total.
func CalculateStayCostWithBreakdown(checkIn, checkOut time.Time, ratePerNightCents int32) (StayCostBreakdown, error) {
	nights, err := NightsBetween(checkIn, checkOut)
	if err != nil {
		return StayCostBreakdown{}, err
	}
	return StayCostBreakdown{
		Nights:            nights,
		RatePerNightCents: ratePerNightCents,
		TotalCents:        nights * ratePerNightCents,
	}, nil
}
