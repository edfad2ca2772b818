package postgres

import (
	"context"
	"database/sql"
	"time"

	"hotelier-backend/internal/domain"
	"hotelier-backend/internal/logger"
	"hotelier-backend/internal/repository"
)

type guestRepository struct {
	db *sql.DB
}

func NewGuestRepository(db *sql.DB) repository.GuestRepository {
	return &guestRepository{db: db}
}

const guestColumns = `id, first_name, last_name, COALESCE(email, ''), COALESCE(phone, ''),
	       COALESCE(address, ''), COALESCE(id_document, ''), COALESCE(notes, ''),
	       created_at, updated_at`

func (r *guestRepository) Create(ctx context.Context, guest *domain.Guest) error {
	logger.EnterMethod("guestRepository.Create", "email", guest.Email)

	query := `
		INSERT INTO guests (
			first_name, last_name, email, phone, address, id_document, notes,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`
	now := time.Now()
	err := r.db.QueryRowContext(ctx, query,
		guest.FirstName, guest.LastName, nullString(guest.Email), nullString(guest.Phone),
		nullString(guest.Address), nullString(guest.IDDocument), nullString(guest.Notes),
		now, now,
	).Scan(&guest.ID, &guest.CreatedAt, &guest.UpdatedAt)

	if err != nil {
		logger.ExitMethodWithError("guestRepository.Create", err, "email", guest.Email)
		return err
	}

	logger.ExitMethod("guestRepository.Create", "guestID", guest.ID)
	return nil
}

func (r *guestRepository) GetByID(ctx context.Context, id int32) (*domain.Guest, error) {
	query := `SELECT ` + guestColumns + ` FROM guests WHERE id = $1`

	guest := &domain.Guest{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&guest.ID, &guest.FirstName, &guest.LastName, &guest.Email, &guest.Phone,
		&guest.Address, &guest.IDDocument, &guest.Notes, &guest.CreatedAt, &guest.UpdatedAt,
	)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return guest, nil
}

func (r *guestRepository) Update(ctx context.Context, guest *domain.Guest) error {
	logger.EnterMethod("guestRepository.Update", "guestID", guest.ID)

	query := `
		UPDATE guests SET
			first_name = $1,
			last_name = $2,
			email = $3,
			phone = $4,
			address = $5,
			id_document = $6,
			notes = $7,
			updated_at = $8
		WHERE id = $9
	`

	result, err := r.db.ExecContext(ctx, query,
		guest.FirstName, guest.LastName, nullString(guest.Email), nullString(guest.Phone),
		nullString(guest.Address), nullString(guest.IDDocument), nullString(guest.Notes),
		time.Now(), guest.ID,
	)
	if err != nil {
		logger.ExitMethodWithError("guestRepository.Update", err, "guestID", guest.ID)
		return err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return domain.ErrNotFound
	}

	logger.ExitMethod("guestRepository.Update", "guestID", guest.ID)
	return nil
}

func (r *guestRepository) Delete(ctx context.Context, id int32) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM guests WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *guestRepository) List(ctx context.Context, page, pageSize int32) ([]domain.Guest, int32, error) {
	offset := (page - 1) * pageSize

	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM guests`).Scan(&count); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + guestColumns + ` FROM guests ORDER BY last_name ASC, first_name ASC LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	guests, err := scanGuests(rows)
	if err != nil {
		return nil, 0, err
	}
	return guests, count, nil
}

func (r *guestRepository) ListAll(ctx context.Context) ([]domain.Guest, error) {
	query := `SELECT ` + guestColumns + ` FROM guests ORDER BY last_name ASC, first_name ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanGuests(rows)
}

func (r *guestRepository) Search(ctx context.Context, query string, page, pageSize int32) ([]domain.Guest, int32, error) {
	offset := (page - 1) * pageSize
	pattern := "%" + query + "%"

	where := ` WHERE first_name ILIKE $1 OR last_name ILIKE $1 OR email ILIKE $1 OR phone ILIKE $1`

	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM guests`+where, pattern).Scan(&count); err != nil {
		return nil, 0, err
	}

	listQuery := `SELECT ` + guestColumns + ` FROM guests` + where +
		` ORDER BY last_name ASC, first_name ASC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, listQuery, pattern, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	guests, err := scanGuests(rows)
	if err != nil {
		return nil, 0, err
	}
	return guests, count, nil
}

func scanGuests(rows *sql.Rows) ([]domain.Guest, error) {
	guests := []domain.Guest{}
	for rows.Next() {
		var g domain.Guest
		err := rows.Scan(
			&g.ID, &g.FirstName, &g.LastName, &g.Email, &g.Phone,
			&g.Address, &g.IDDocument, &g.Notes, &g.CreatedAt, &g.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		guests = append(guests, g)
	}
	return guests, rows.Err()
}
