package services

import (
	"context"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"github.com/SAP-F-2025/drive-schedule-service/internal/models"
	"github.com/SAP-F-2025/drive-schedule-service/internal/repositories"
)

type userService struct {
	repo   repositories.Repository
	db     *gorm.DB
	logger *slog.Logger
}

func NewUserService(repo repositories.Repository, db *gorm.DB, logger *slog.Logger) UserService {
	return &userService{
		repo:   repo,
		db:     db,
		logger: logger,
	}
}

func (s *userService) List(ctx context.Context) ([]*models.UserResponse, error) {
	s.logger.Debug("Listing users")

	users, err := s.repo.User().List(ctx, nil, repositories.UserFilters{})
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	out := make([]*models.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, models.NewUserResponse(u))
	}
	return out, nil
}
