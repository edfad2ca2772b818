package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hotelier-backend/internal/domain"
	"hotelier-backend/internal/repository"
)

type roomService struct {
	roomRepo repository.RoomRepository
}

func NewRoomService(roomRepo repository.RoomRepository) RoomService {
	return &roomService{roomRepo: roomRepo}
}

func (s *roomService) CreateRoom(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	if err := validateRoom(room); err != nil {
		return nil, err
	}
	if room.Status == "" {
		room.Status = domain.RoomStatusAvailable
	}
	if err := s.roomRepo.Create(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *roomService) GetRoom(ctx context.Context, id int32) (*domain.Room, error) {
	return s.roomRepo.GetByID(ctx, id)
}

func (s *roomService) UpdateRoom(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	if err := validateRoom(room); err != nil {
		return nil, err
	}
	if _, err := s.roomRepo.GetByID(ctx, room.ID); err != nil {
		return nil, err
	}
	if err := s.roomRepo.Update(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *roomService) UpdateRoomStatus(ctx context.Context, id int32, status domain.RoomStatus) (*domain.Room, error) {
	switch status {
	case domain.RoomStatusAvailable, domain.RoomStatusOccupied, domain.RoomStatusCleaning,
		domain.RoomStatusMaintenance, domain.RoomStatusOutOfService:
	default:
		return nil, fmt.Errorf("%w: unknown room status %q", domain.ErrValidation, status)
	}

	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.roomRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	room.Status = status
	return room, nil
}

func (s *roomService) ListRooms(ctx context.Context, status domain.RoomStatus, page, pageSize int32) ([]domain.Room, int32, error) {
	return s.roomRepo.List(ctx, status, page, pageSize)
}

func (s *roomService) ListAvailableRooms(ctx context.Context, checkIn, checkOut time.Time) ([]domain.Room, error) {
	if checkIn.IsZero() || checkOut.IsZero() {
		return nil, fmt.Errorf("%w: check-in and check-out dates are required", domain.ErrValidation)
	}
	if !checkOut.After(checkIn) {
		return nil, fmt.Errorf("%w: check-out must be after check-in", domain.ErrValidation)
	}
	return s.roomRepo.ListAvailable(ctx, checkIn, checkOut)
}

func validateRoom(room *domain.Room) error {
	if strings.TrimSpace(room.Number) == "" {
		return fmt.Errorf("%w: room number is required", domain.ErrValidation)
	}
	if room.Capacity <= 0 {
		return fmt.Errorf("%w: room capacity must be positive", domain.ErrValidation)
	}
	if room.RatePerNightCents < 0 {
		return fmt.Errorf("%w: room rate must not be negative", domain.ErrValidation)
	}
	return nil
}
