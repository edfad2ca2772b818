package domain

import "time"

type RoomType string

const (
	RoomTypeSingle RoomType = "SINGLE"
	RoomTypeDouble RoomType = "DOUBLE"
	RoomTypeTwin   RoomType = "TWIN"
	RoomTypeSuite  RoomType = "SUITE"
	RoomTypeDeluxe RoomType = "DELUXE"
)

type RoomStatus string

const (
	RoomStatusAvailable    RoomStatus = "AVAILABLE"
	RoomStatusOccupied     RoomStatus = "OCCUPIED"
	RoomStatusCleaning     RoomStatus = "CLEANING"
	RoomStatusMaintenance  RoomStatus = "MAINTENANCE"
	RoomStatusOutOfService RoomStatus = "OUT_OF_SERVICE"
)

type Room struct {
	ID                int32      `json:"id"`
	Number            string     `json:"number"`
	Type              RoomType   `json:"type"`
	Floor             int32      `json:"floor"`
	Capacity          int32      `json:"capacity"`
	RatePerNightCents int32      `json:"rate_per_night_cents"`
	Status            RoomStatus `json:"status"`
	Notes             string     `json:"notes"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}
