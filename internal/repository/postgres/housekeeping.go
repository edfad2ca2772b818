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

type housekeepingRepository struct {
	db *sql.DB
}

func NewHousekeepingRepository(db *sql.DB) repository.HousekeepingRepository {
	return &housekeepingRepository{db: db}
}

const housekeepingColumns = `id, room_id, COALESCE(assigned_to, ''), status, scheduled_for,
	       COALESCE(notes, ''), COALESCE(history, '[]'), created_at, updated_at`

func (r *housekeepingRepository) Create(ctx context.Context, task *domain.HousekeepingTask) error {
	history, err := marshalHistory(task.History)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO housekeeping_tasks (
			room_id, assigned_to, status, scheduled_for, notes, history,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query,
		task.RoomID, nullString(task.AssignedTo), task.Status, task.ScheduledFor,
		nullString(task.Notes), history, now, now,
	).Scan(&task.ID, &task.CreatedAt, &task.UpdatedAt)
}

func (r *housekeepingRepository) GetByID(ctx context.Context, id int32) (*domain.HousekeepingTask, error) {
	query := `SELECT ` + housekeepingColumns + ` FROM housekeeping_tasks WHERE id = $1`

	task := &domain.HousekeepingTask{}
	var history []byte
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&task.ID, &task.RoomID, &task.AssignedTo, &task.Status, &task.ScheduledFor,
		&task.Notes, &history, &task.CreatedAt, &task.UpdatedAt,
	)
	if err != nil {
		return nil, mapNotFound(err)
	}
	if err := json.Unmarshal(history, &task.History); err != nil {
		return nil, fmt.Errorf("failed to decode task history: %w", err)
	}
	return task, nil
}

func (r *housekeepingRepository) Update(ctx context.Context, task *domain.HousekeepingTask) error {
	history, err := marshalHistory(task.History)
	if err != nil {
		return err
	}

	query := `
		UPDATE housekeeping_tasks SET
			room_id = $1,
			assigned_to = $2,
			status = $3,
			scheduled_for = $4,
			notes = $5,
			history = $6,
			updated_at = $7
		WHERE id = $8
	`

	result, err := r.db.ExecContext(ctx, query,
		task.RoomID, nullString(task.AssignedTo), task.Status, task.ScheduledFor,
		nullString(task.Notes), history, time.Now(), task.ID,
	)
	if err != nil {
		return err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *housekeepingRepository) List(ctx context.Context, status domain.HousekeepingStatus, scheduledFor *time.Time, page, pageSize int32) ([]domain.HousekeepingTask, int32, error) {
	offset := (page - 1) * pageSize

	where := ""
	args := []interface{}{}
	argIndex := 1

	if status != "" {
		where = fmt.Sprintf(" WHERE status = $%d", argIndex)
		args = append(args, status)
		argIndex++
	}
	if scheduledFor != nil {
		if where == "" {
			where = fmt.Sprintf(" WHERE scheduled_for = $%d", argIndex)
		} else {
			where += fmt.Sprintf(" AND scheduled_for = $%d", argIndex)
		}
		args = append(args, *scheduledFor)
		argIndex++
	}

	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM housekeeping_tasks`+where, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + housekeepingColumns + ` FROM housekeeping_tasks` + where +
		fmt.Sprintf(" ORDER BY scheduled_for DESC, id ASC LIMIT $%d OFFSET $%d", argIndex, argIndex+1)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	tasks := []domain.HousekeepingTask{}
	for rows.Next() {
		var task domain.HousekeepingTask
		var history []byte
		err := rows.Scan(
			&task.ID, &task.RoomID, &task.AssignedTo, &task.Status, &task.ScheduledFor,
			&task.Notes, &history, &task.CreatedAt, &task.UpdatedAt,
		)
		if err != nil {
			return nil, 0, err
		}
		if err := json.Unmarshal(history, &task.History); err != nil {
			return nil, 0, fmt.Errorf("failed to decode task history: %w", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return tasks, count, nil
}

func (r *housekeepingRepository) ExistsForRoomAndDate(ctx context.Context, roomID int32, date time.Time) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(
		SELECT 1 FROM housekeeping_tasks
		WHERE room_id = $1 AND scheduled_for = $2 AND status NOT IN ('COMPLETED', 'SKIPPED')
	)`
	err := r.db.QueryRowContext(ctx, query, roomID, date).Scan(&exists)
	return exists, err
}

func marshalHistory(history []domain.HistoryEntry) ([]byte, error) {
	if history == nil {
		history = []domain.HistoryEntry{}
	}
	data, err := json.Marshal(history)
	if err != nil {
		return nil, fmt.Errorf("failed to encode history: %w", err)
	}
	return data, nil
}
