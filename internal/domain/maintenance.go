package domain

import "time"

type MaintenancePriority string

const (
	MaintenancePriorityLow    MaintenancePriority = "LOW"
	MaintenancePriorityMedium MaintenancePriority = "MEDIUM"
	MaintenancePriorityHigh   MaintenancePriority = "HIGH"
	MaintenancePriorityUrgent MaintenancePriority = "URGENT"
)

type MaintenanceStatus string

const (
	MaintenanceStatusOpen       MaintenanceStatus = "OPEN"
	MaintenanceStatusInProgress MaintenanceStatus = "IN_PROGRESS"
	MaintenanceStatusResolved   MaintenanceStatus = "RESOLVED"
	MaintenanceStatusClosed     MaintenanceStatus = "CLOSED"
)

type MaintenanceRequest struct {
	ID          int32               `json:"id"`
	RoomID      int32               `json:"room_id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Priority    MaintenancePriority `json:"priority"`
	Status      MaintenanceStatus   `json:"status"`
	ReportedBy  string              `json:"reported_by"`
	History     []HistoryEntry      `json:"history"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}
