package postgres

import (
	"context"
	"database/sql"
	"time"

	"hotelier-backend/internal/domain"
	"hotelier-backend/internal/repository"
)

type roomRepository struct {
	db *sql.DB
}

func NewRoomRepository(db *sql.DB) repository.RoomRepository {
	return &roomRepository{db: db}
}

const roomColumns = `id, number, type, floor, capacity, rate_per_night_cents, status,
	       COALESCE(notes, ''), created_at, updated_at`

func (r *roomRepository) Create(ctx context.Context, room *domain.Room) error {
	query := `
		INSERT INTO rooms (
			number, type, floor, capacity, rate_per_night_cents, status, notes,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query,
		room.Number, room.Type, room.Floor, room.Capacity, room.RatePerNightCents,
		room.Status, nullString(room.Notes), now, now,
	).Scan(&room.ID, &room.CreatedAt, &room.UpdatedAt)
}

func (r *roomRepository) GetByID(ctx context.Context, id int32) (*domain.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE id = $1`

	room := &domain.Room{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&room.ID, &room.Number, &room.Type, &room.Floor, &room.Capacity,
		&room.RatePerNightCents, &room.Status, &room.Notes, &room.CreatedAt, &room.UpdatedAt,
	)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return room, nil
}

func (r *roomRepository) GetByNumber(ctx context.Context, number string) (*domain.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE number = $1`

	room := &domain.Room{}
	err := r.db.QueryRowContext(ctx, query, number).Scan(
		&room.ID, &room.Number, &room.Type, &room.Floor, &room.Capacity,
		&room.RatePerNightCents, &room.Status, &room.Notes, &room.CreatedAt, &room.UpdatedAt,
	)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return room, nil
}

func (r *roomRepository) Update(ctx context.Context, room *domain.Room) error {
	query := `
		UPDATE rooms SET
			number = $1,
			type = $2,
			floor = $3,
			capacity = $4,
			rate_per_night_cents = $5,
			status = $6,
			notes = $7,
			updated_at = $8
		WHERE id = $9
	`

	result, err := r.db.ExecContext(ctx, query,
		room.Number, room.Type, room.Floor, room.Capacity, room.RatePerNightCents,
		room.Status, nullString(room.Notes), time.Now(), room.ID,
	)
	if err != nil {
		return err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *roomRepository) UpdateStatus(ctx context.Context, id int32, status domain.RoomStatus) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE rooms SET status = $1, updated_at = $2 WHERE id = $3`,
		status, time.Now(), id,
	)
	if err != nil {
		return err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *roomRepository) List(ctx context.Context, status domain.RoomStatus, page, pageSize int32) ([]domain.Room, int32, error) {
	offset := (page - 1) * pageSize

	query := `SELECT ` + roomColumns + ` FROM rooms`
	countQuery := `SELECT count(*) FROM rooms`
	args := []interface{}{}

	if status != "" {
		query += ` WHERE status = $1 ORDER BY number ASC LIMIT $2 OFFSET $3`
		countQuery += ` WHERE status = $1`
		args = append(args, status)
	} else {
		query += ` ORDER BY number ASC LIMIT $1 OFFSET $2`
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

	rooms, err := scanRooms(rows)
	if err != nil {
		return nil, 0, err
	}
	return rooms, count, nil
}

// ListAvailable returns rooms with no overlapping active booking in the
// requested window and a workable physical status.
func (r *roomRepository) ListAvailable(ctx context.Context, checkIn, checkOut time.Time) ([]domain.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms
		WHERE status NOT IN ('MAINTENANCE', 'OUT_OF_SERVICE')
		  AND id NOT IN (
			SELECT room_id FROM bookings
			WHERE status IN ('CONFIRMED', 'CHECKED_IN')
			  AND check_in < $2 AND check_out > $1
		  )
		ORDER BY number ASC`

	rows, err := r.db.QueryContext(ctx, query, checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRooms(rows)
}

func (r *roomRepository) CountByStatus(ctx context.Context) (map[domain.RoomStatus]int32, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT status, count(*) FROM rooms GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[domain.RoomStatus]int32)
	for rows.Next() {
		var status domain.RoomStatus
		var count int32
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}
	return counts, rows.Err()
}

func scanRooms(rows *sql.Rows) ([]domain.Room, error) {
	rooms := []domain.Room{}
	for rows.Next() {
		var room domain.Room
		err := rows.Scan(
			&room.ID, &room.Number, &room.Type, &room.Floor, &room.Capacity,
			&room.RatePerNightCents, &room.Status, &room.Notes, &room.CreatedAt, &room.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, room)
	}
	return rooms, rows.Err()
}
