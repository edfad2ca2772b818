package service

import (
	"context"
	"fmt"
	"time"

	"hotelier-backend/internal/domain"
	"hotelier-backend/internal/repository"
)

type housekeepingService struct {
	taskRepo repository.HousekeepingRepository
	roomRepo repository.RoomRepository
}

func NewHousekeepingService(taskRepo repository.HousekeepingRepository, roomRepo repository.RoomRepository) HousekeepingService {
	return &housekeepingService{taskRepo: taskRepo, roomRepo: roomRepo}
}

func (s *housekeepingService) CreateTask(ctx context.Context, task *domain.HousekeepingTask, actor string) (*domain.HousekeepingTask, error) {
	if task.ScheduledFor.IsZero() {
		return nil, fmt.Errorf("%w: housekeeping task needs a scheduled date", domain.ErrValidation)
	}
	if _, err := s.roomRepo.GetByID(ctx, task.RoomID); err != nil {
		return nil, err
	}

	if task.Status == "" {
		task.Status = domain.HousekeepingStatusPending
	}
	task.History = append(task.History, domain.HistoryEntry{
		Timestamp: time.Now(),
		Actor:     actor,
		Action:    "created",
	})
	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *housekeepingService) GetTask(ctx context.Context, id int32) (*domain.HousekeepingTask, error) {
	return s.taskRepo.GetByID(ctx, id)
}

// UpdateTaskStatus moves a task through its lifecycle and appends the
// change to the task history. Completing a task returns its room to
// AVAILABLE when the room was in CLEANING.
func (s *housekeepingService) UpdateTaskStatus(ctx context.Context, id int32, status domain.HousekeepingStatus, actor, note string) (*domain.HousekeepingTask, error) {
	switch status {
	case domain.HousekeepingStatusPending, domain.HousekeepingStatusInProgress,
		domain.HousekeepingStatusCompleted, domain.HousekeepingStatusSkipped:
	default:
		return nil, fmt.Errorf("%w: unknown housekeeping status %q", domain.ErrValidation, status)
	}

	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if task.Status == domain.HousekeepingStatusCompleted || task.Status == domain.HousekeepingStatusSkipped {
		return nil, fmt.Errorf("%w: a %s task cannot change status", domain.ErrInvalidState, task.Status)
	}

	task.Status = status
	task.History = append(task.History, domain.HistoryEntry{
		Timestamp: time.Now(),
		Actor:     actor,
		Action:    "status:" + string(status),
		Note:      note,
	})
	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, err
	}

	if status == domain.HousekeepingStatusCompleted {
		if room, err := s.roomRepo.GetByID(ctx, task.RoomID); err == nil && room.Status == domain.RoomStatusCleaning {
			_ = s.roomRepo.UpdateStatus(ctx, task.RoomID, domain.RoomStatusAvailable)
		}
	}

	return task, nil
}

func (s *housekeepingService) AssignTask(ctx context.Context, id int32, assignee, actor string) (*domain.HousekeepingTask, error) {
	if assignee == "" {
		return nil, fmt.Errorf("%w: assignee is required", domain.ErrValidation)
	}
	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if task.Status == domain.HousekeepingStatusCompleted || task.Status == domain.HousekeepingStatusSkipped {
		return nil, fmt.Errorf("%w: a %s task cannot be reassigned", domain.ErrInvalidState, task.Status)
	}

	task.AssignedTo = assignee
	task.History = append(task.History, domain.HistoryEntry{
		Timestamp: time.Now(),
		Actor:     actor,
		Action:    "assigned:" + assignee,
	})
	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *housekeepingService) ListTasks(ctx context.Context, status domain.HousekeepingStatus, scheduledFor *time.Time, page, pageSize int32) ([]domain.HousekeepingTask, int32, error) {
	return s.taskRepo.List(ctx, status, scheduledFor, page, pageSize)
}
