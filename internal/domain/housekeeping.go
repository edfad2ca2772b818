package domain

import "time"

type HousekeepingStatus string

const (
	HousekeepingStatusPending    HousekeepingStatus = "PENDING"
	HousekeepingStatusInProgress HousekeepingStatus = "IN_PROGRESS"
	HousekeepingStatusCompleted  HousekeepingStatus = "COMPLETED"
	HousekeepingStatusSkipped    HousekeepingStatus = "SKIPPED"
)

// HistoryEntry is an append-only audit record carried by housekeeping
// tasks and maintenance requests. Stored as a JSONB array; appending never
// rewrites prior entries.
type HistoryEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Actor     string    `json:"actor"`
	Action    string    `json:"action"`
	Note      string    `json:"note,omitempty"`
}

type HousekeepingTask struct {
	ID           int32              `json:"id"`
	RoomID       int32              `json:"room_id"`
	AssignedTo   string             `json:"assigned_to"`
	Status       HousekeepingStatus `json:"status"`
	ScheduledFor time.Time          `json:"scheduled_for"`
	Notes        string             `json:"notes"`
	History      []HistoryEntry     `json:"history"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}
