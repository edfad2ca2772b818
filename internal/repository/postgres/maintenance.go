package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"hotelier-backend/internal/domain"
	"hotelier-backend/internal/repository"
)

type maintenanceRepository struct {
	db *sql.DB
}

func NewMaintenanceRepository(db *sql.DB) repository.MaintenanceRepository {
	return &maintenanceRepository{db: db}
}

const maintenanceColumns = `id, room_id, title, COALESCE(description, ''), priority, status,
	       COALESCE(reported_by, ''), COALESCE(history, '[]'), created_at, updated_at`

func (r *maintenanceRepository) Create(ctx context.Context, req *domain.MaintenanceRequest) error {
	history, err := marshalHistory(req.History)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO maintenance_requests (
			room_id, title, description, priority, status, reported_by, history,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query,
		req.RoomID, req.Title, nullString(req.Description), req.Priority, req.Status,
		nullString(req.ReportedBy), history, now, now,
	).Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt)
}

func (r *maintenanceRepository) GetByID(ctx context.Context, id int32) (*domain.MaintenanceRequest, error) {
	query := `SELECT ` + maintenanceColumns + ` FROM maintenance_requests WHERE id = $1`

	req := &domain.MaintenanceRequest{}
	var history []byte
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&req.ID, &req.RoomID, &req.Title, &req.Description, &req.Priority, &req.Status,
		&req.ReportedBy, &history, &req.CreatedAt, &req.UpdatedAt,
	)
	if err != nil {
		return nil, mapNotFound(err)
	}
	if err := json.Unmarshal(history, &req.History); err != nil {
		return nil, fmt.Errorf("failed to decode request history: %w", err)
	}
	return req, nil
}

func (r *maintenanceRepository) Update(ctx context.Context, req *domain.MaintenanceRequest) error {
	history, err := marshalHistory(req.History)
	if err != nil {
		return err
	}

	query := `
		UPDATE maintenance_requests SET
			room_id = $1,
			title = $2,
			description = $3,
			priority = $4,
			status = $5,
			reported_by = $6,
			history = $7,
			updated_at = $8
		WHERE id = $9
	`

	result, err := r.db.ExecContext(ctx, query,
		req.RoomID, req.Title, nullString(req.Description), req.Priority, req.Status,
		nullString(req.ReportedBy), history, time.Now(), req.ID,
	)
	if err != nil {
		return err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *maintenanceRepository) List(ctx context.Context, status domain.MaintenanceStatus, page, pageSize int32) ([]domain.MaintenanceRequest, int32, error) {
	offset := (page - 1) * pageSize

	query := `SELECT ` + maintenanceColumns + ` FROM maintenance_requests`
	countQuery := `SELECT count(*) FROM maintenance_requests`
	args := []interface{}{}

	if status != "" {
		query += ` WHERE status = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
		countQuery += ` WHERE status = $1`
		args = append(args, status)
	} else {
		query += ` ORDER BY created_at DESC LIMIT $1 OFFSET $2`
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

	reqs := []domain.MaintenanceRequest{}
	for rows.Next() {
		var req domain.MaintenanceRequest
		var history []byte
		err := rows.Scan(
			&req.ID, &req.RoomID, &req.Title, &req.Description, &req.Priority, &req.Status,
			&req.ReportedBy, &history, &req.CreatedAt, &req.UpdatedAt,
		)
		if err != nil {
			return nil, 0, err
		}
		if err := json.Unmarshal(history, &req.History); err != nil {
			return nil, 0, fmt.Errorf("failed to decode request history: %w", err)
		}
		reqs = append(reqs, req)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return reqs, count, nil
}
