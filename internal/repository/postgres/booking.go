package postgres

import (
	"context"
	"database/sql"
	"time"

	"hotelier-backend/internal/domain"
	"hotelier-backend/internal/logger"
	"hotelier-backend/internal/repository"
)

type bookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

const bookingColumns = `id, guest_id, room_id, check_in, check_out, status, adults, children,
	       total_cents, COALESCE(notes, ''), created_at, updated_at`

func (r *bookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	logger.EnterMethod("bookingRepository.Create", "guestID", booking.GuestID, "roomID", booking.RoomID)

	query := `
		INSERT INTO bookings (
			guest_id, room_id, check_in, check_out, status, adults, children,
			total_cents, notes, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at
	`
	now := time.Now()
	err := r.db.QueryRowContext(ctx, query,
		booking.GuestID, booking.RoomID, booking.CheckIn, booking.CheckOut,
		booking.Status, booking.Adults, booking.Children, booking.TotalCents,
		nullString(booking.Notes), now, now,
	).Scan(&booking.ID, &booking.CreatedAt, &booking.UpdatedAt)

	if err != nil {
		logger.ExitMethodWithError("bookingRepository.Create", err, "guestID", booking.GuestID)
		return err
	}

	logger.ExitMethod("bookingRepository.Create", "bookingID", booking.ID)
	return nil
}

func (r *bookingRepository) GetByID(ctx context.Context, id int32) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking := &domain.Booking{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&booking.ID, &booking.GuestID, &booking.RoomID, &booking.CheckIn, &booking.CheckOut,
		&booking.Status, &booking.Adults, &booking.Children, &booking.TotalCents,
		&booking.Notes, &booking.CreatedAt, &booking.UpdatedAt,
	)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return booking, nil
}

func (r *bookingRepository) Update(ctx context.Context, booking *domain.Booking) error {
	logger.EnterMethod("bookingRepository.Update", "bookingID", booking.ID, "status", booking.Status)

	query := `
		UPDATE bookings SET
			guest_id = $1,
			room_id = $2,
			check_in = $3,
			check_out = $4,
			status = $5,
			adults = $6,
			children = $7,
			total_cents = $8,
			notes = $9,
			updated_at = $10
		WHERE id = $11
	`

	result, err := r.db.ExecContext(ctx, query,
		booking.GuestID, booking.RoomID, booking.CheckIn, booking.CheckOut,
		booking.Status, booking.Adults, booking.Children, booking.TotalCents,
		nullString(booking.Notes), time.Now(), booking.ID,
	)
	if err != nil {
		logger.ExitMethodWithError("bookingRepository.Update", err, "bookingID", booking.ID)
		return err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return domain.ErrNotFound
	}

	logger.ExitMethod("bookingRepository.Update", "bookingID", booking.ID)
	return nil
}

func (r *bookingRepository) List(ctx context.Context, status domain.BookingStatus, page, pageSize int32) ([]domain.Booking, int32, error) {
	offset := (page - 1) * pageSize

	query := `SELECT ` + bookingColumns + ` FROM bookings`
	countQuery := `SELECT count(*) FROM bookings`
	args := []interface{}{}

	if status != "" {
		query += ` WHERE status = $1 ORDER BY check_in DESC LIMIT $2 OFFSET $3`
		countQuery += ` WHERE status = $1`
		args = append(args, status)
	} else {
		query += ` ORDER BY check_in DESC LIMIT $1 OFFSET $2`
	}

	var count int32
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	args = append(args, pageSize, offset)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	bookings, err := scanBookings(rows)
	if err != nil {
		return nil, 0, err
	}
	return bookings, count, nil
}

func (r *bookingRepository) ListAll(ctx context.Context) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings ORDER BY check_in DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanBookings(rows)
}

func (r *bookingRepository) ListByGuest(ctx context.Context, guestID int32) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE guest_id = $1 ORDER BY check_in DESC`

	rows, err := r.db.QueryContext(ctx, query, guestID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanBookings(rows)
}

func (r *bookingRepository) ListConfirmedBefore(ctx context.Context, checkInBefore time.Time) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings
		WHERE status = $1 AND check_in < $2 ORDER BY check_in ASC`

	rows, err := r.db.QueryContext(ctx, query, domain.BookingStatusConfirmed, checkInBefore)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanBookings(rows)
}

func scanBookings(rows *sql.Rows) ([]domain.Booking, error) {
	bookings := []domain.Booking{}
	for rows.Next() {
		var b domain.Booking
		err := rows.Scan(
			&b.ID, &b.GuestID, &b.RoomID, &b.CheckIn, &b.CheckOut,
			&b.Status, &b.Adults, &b.Children, &b.TotalCents,
			&b.Notes, &b.CreatedAt, &b.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}
