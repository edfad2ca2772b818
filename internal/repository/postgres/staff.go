package postgres

import (
	"context"
	"database/sql"
	"time"

	"hotelier-backend/internal/domain"
	"hotelier-backend/internal/repository"
)

type staffRepository struct {
	db *sql.DB
}

func NewStaffRepository(db *sql.DB) repository.StaffRepository {
	return &staffRepository{db: db}
}

const staffColumns = `id, name, email, password_hash, role, active, created_at, updated_at`

func (r *staffRepository) Create(ctx context.Context, user *domain.StaffUser) error {
	query := `
		INSERT INTO staff_users (name, email, password_hash, role, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query,
		user.Name, user.Email, user.PasswordHash, user.Role, user.Active, now, now,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
}

func (r *staffRepository) GetByID(ctx context.Context, id int32) (*domain.StaffUser, error) {
	query := `SELECT ` + staffColumns + ` FROM staff_users WHERE id = $1`

	user := &domain.StaffUser{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.Role,
		&user.Active, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return user, nil
}

func (r *staffRepository) GetByEmail(ctx context.Context, email string) (*domain.StaffUser, error) {
	query := `SELECT ` + staffColumns + ` FROM staff_users WHERE email = $1`

	user := &domain.StaffUser{}
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.Role,
		&user.Active, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return user, nil
}

func (r *staffRepository) Update(ctx context.Context, user *domain.StaffUser) error {
	query := `
		UPDATE staff_users SET
			name = $1,
			email = $2,
			password_hash = $3,
			role = $4,
			active = $5,
			updated_at = $6
		WHERE id = $7
	`

	result, err := r.db.ExecContext(ctx, query,
		user.Name, user.Email, user.PasswordHash, user.Role, user.Active,
		time.Now(), user.ID,
	)
	if err != nil {
		return err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
