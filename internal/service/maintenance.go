package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hotelier-backend/internal/domain"
	"hotelier-backend/internal/logger"
	"hotelier-backend/internal/repository"
)

type maintenanceService struct {
	requestRepo repository.MaintenanceRepository
	roomRepo    repository.RoomRepository
}

func NewMaintenanceService(requestRepo repository.MaintenanceRepository, roomRepo repository.RoomRepository) MaintenanceService {
	return &maintenanceService{requestRepo: requestRepo, roomRepo: roomRepo}
}

// OpenRequest files a maintenance request against a room. With
// takeRoomOffline the room is moved to MAINTENANCE so it stops showing
// up in availability searches.
func (s *maintenanceService) OpenRequest(ctx context.Context, req *domain.MaintenanceRequest, takeRoomOffline bool) (*domain.MaintenanceRequest, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("%w: maintenance request needs a title", domain.ErrValidation)
	}
	if _, err := s.roomRepo.GetByID(ctx, req.RoomID); err != nil {
		return nil, err
	}

	if req.Priority == "" {
		req.Priority = domain.MaintenancePriorityMedium
	}
	req.Status = domain.MaintenanceStatusOpen
	req.History = append(req.History, domain.HistoryEntry{
		Timestamp: time.Now(),
		Actor:     req.ReportedBy,
		Action:    "opened",
	})
	if err := s.requestRepo.Create(ctx, req); err != nil {
		return nil, err
	}

	if takeRoomOffline {
		if err := s.roomRepo.UpdateStatus(ctx, req.RoomID, domain.RoomStatusMaintenance); err != nil {
			logger.Warn("Failed to take room offline for maintenance", "request_id", req.ID, "room_id", req.RoomID, "error", err)
		}
	}
	return req, nil
}

func (s *maintenanceService) GetRequest(ctx context.Context, id int32) (*domain.MaintenanceRequest, error) {
	return s.requestRepo.GetByID(ctx, id)
}

// UpdateRequestStatus advances a request and records who moved it.
// Resolving or closing a request brings a room that was held in
// MAINTENANCE back to AVAILABLE.
func (s *maintenanceService) UpdateRequestStatus(ctx context.Context, id int32, status domain.MaintenanceStatus, actor, note string) (*domain.MaintenanceRequest, error) {
	switch status {
	case domain.MaintenanceStatusOpen, domain.MaintenanceStatusInProgress,
		domain.MaintenanceStatusResolved, domain.MaintenanceStatusClosed:
	default:
		return nil, fmt.Errorf("%w: unknown maintenance status %q", domain.ErrValidation, status)
	}

	req, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Status == domain.MaintenanceStatusClosed {
		return nil, fmt.Errorf("%w: a closed request cannot change status", domain.ErrInvalidState)
	}

	req.Status = status
	req.History = append(req.History, domain.HistoryEntry{
		Timestamp: time.Now(),
		Actor:     actor,
		Action:    "status:" + string(status),
		Note:      note,
	})
	if err := s.requestRepo.Update(ctx, req); err != nil {
		return nil, err
	}

	if status == domain.MaintenanceStatusResolved || status == domain.MaintenanceStatusClosed {
		if room, err := s.roomRepo.GetByID(ctx, req.RoomID); err == nil && room.Status == domain.RoomStatusMaintenance {
			_ = s.roomRepo.UpdateStatus(ctx, req.RoomID, domain.RoomStatusAvailable)
		}
	}

	return req, nil
}

func (s *maintenanceService) UpdateRequestPriority(ctx context.Context, id int32, priority domain.MaintenancePriority, actor string) (*domain.MaintenanceRequest, error) {
	switch priority {
	case domain.MaintenancePriorityLow, domain.MaintenancePriorityMedium,
		domain.MaintenancePriorityHigh, domain.MaintenancePriorityUrgent:
	default:
		return nil, fmt.Errorf("%w: unknown maintenance priority %q", domain.ErrValidation, priority)
	}

	req, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	req.Priority = priority
	req.History = append(req.History, domain.HistoryEntry{
		Timestamp: time.Now(),
		Actor:     actor,
		Action:    "priority:" + string(priority),
	})
	if err := s.requestRepo.Update(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *maintenanceService) ListRequests(ctx context.Context, status domain.MaintenanceStatus, page, pageSize int32) ([]domain.MaintenanceRequest, int32, error) {
	return s.requestRepo.List(ctx, status, page, pageSize)
}
