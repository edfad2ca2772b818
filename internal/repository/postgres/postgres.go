package postgres

import (
	"database/sql"
	"errors"

	"hotelier-backend/internal/domain"
	"hotelier-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.GuestRepository
	repository.RoomRepository
	repository.BookingRepository
	repository.InvoiceRepository
	repository.PaymentRepository
	repository.HousekeepingRepository
	repository.MaintenanceRepository
	repository.StaffRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		GuestRepository:        NewGuestRepository(db),
		RoomRepository:         NewRoomRepository(db),
		BookingRepository:      NewBookingRepository(db),
		InvoiceRepository:      NewInvoiceRepository(db),
		PaymentRepository:      NewPaymentRepository(db),
		HousekeepingRepository: NewHousekeepingRepository(db),
		MaintenanceRepository:  NewMaintenanceRepository(db),
		StaffRepository:        NewStaffRepository(db),
	}
}

// mapNotFound translates sql.ErrNoRows into the domain error taxonomy so
// callers never need to know about database/sql sentinels.
func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}
