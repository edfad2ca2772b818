package domain

import "time"

type StaffRole string

const (
	StaffRoleAdmin   StaffRole = "ADMIN"
	StaffRoleManager StaffRole = "MANAGER"
	StaffRoleStaff   StaffRole = "STAFF"
)

type StaffUser struct {
	ID           int32     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         StaffRole `json:"role"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
