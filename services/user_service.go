package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/galacticos-fc/clubsite/models"
	"github.com/galacticos-fc/clubsite/repositories"
)

// UserService is the admin-side profile manager: listing accounts, changing
// roles and flipping the rating authorization flag.
type UserService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	SetRole(ctx context.Context, userID int, role string) error
	SetRatingAuthorization(ctx context.Context, userID int, authorized bool) error
	DeleteUser(ctx context.Context, userID int) error
}

type userService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	for i := range users {
		users[i].PasswordHash = ""
	}
	return users, nil
}

func (s *userService) SetRole(ctx context.Context, userID int, role string) error {
	parsed, ok := models.ParseUserRole(role)
	if !ok {
		return ErrInvalidRole
	}
	if err := s.userRepo.UpdateRole(ctx, userID, parsed); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to update role for user %d: %w", userID, err)
	}
	return nil
}

func (s *userService) SetRatingAuthorization(ctx context.Context, userID int, authorized bool) error {
	if err := s.userRepo.UpdateRatingAuthorization(ctx, userID, authorized); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to update rating authorization for user %d: %w", userID, err)
	}
	return nil
}

func (s *userService) DeleteUser(ctx context.Context, userID int) error {
	if err := s.userRepo.Delete(ctx, userID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to delete user %d: %w", userID, err)
	}
	return nil
}
