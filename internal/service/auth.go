package service

import (
	"context"
	"errors"
	"fmt"

	"hotelier-backend/internal/domain"
	"hotelier-backend/internal/logger"
	"hotelier-backend/internal/repository"
	"hotelier-backend/internal/security"

	"golang.org/x/crypto/bcrypt"
)

type authService struct {
	staffRepo repository.StaffRepository
	tokens    security.TokenManager
}

func NewAuthService(staffRepo repository.StaffRepository, tokens security.TokenManager) AuthService {
	return &authService{staffRepo: staffRepo, tokens: tokens}
}

func (s *authService) Login(ctx context.Context, email, password string) (string, string, *domain.StaffUser, error) {
	staff, err := s.staffRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", "", nil, domain.ErrInvalidCredentials
		}
		return "", "", nil, err
	}
	if !staff.Active {
		return "", "", nil, domain.ErrAccountDisabled
	}
	if err := bcrypt.CompareHashAndPassword([]byte(staff.PasswordHash), []byte(password)); err != nil {
		return "", "", nil, domain.ErrInvalidCredentials
	}

	access, err := s.tokens.GenerateAccessToken(staff.ID, staff.Email, string(staff.Role))
	if err != nil {
		return "", "", nil, fmt.Errorf("generating access token: %w", err)
	}
	refresh, err := s.tokens.GenerateRefreshToken(staff.ID, staff.Email)
	if err != nil {
		return "", "", nil, fmt.Errorf("generating refresh token: %w", err)
	}

	logger.Info("Staff login", "staff_id", staff.ID, "email", staff.Email)
	return access, refresh, staff, nil
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (string, string, error) {
	claims, err := s.tokens.ValidateToken(refreshToken)
	if err != nil {
		return "", "", domain.ErrInvalidCredentials
	}
	if claims.Type != security.TokenTypeRefresh {
		return "", "", domain.ErrInvalidCredentials
	}

	staff, err := s.staffRepo.GetByID(ctx, claims.StaffID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", "", domain.ErrInvalidCredentials
		}
		return "", "", err
	}
	if !staff.Active {
		return "", "", domain.ErrAccountDisabled
	}

	access, err := s.tokens.GenerateAccessToken(staff.ID, staff.Email, string(staff.Role))
	if err != nil {
		return "", "", fmt.Errorf("generating access token: %w", err)
	}
	refresh, err := s.tokens.GenerateRefreshToken(staff.ID, staff.Email)
	if err != nil {
		return "", "", fmt.Errorf("generating refresh token: %w", err)
	}
	return access, refresh, nil
}
