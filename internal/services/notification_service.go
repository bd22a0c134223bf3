package services

import (
	"context"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"github.com/SAP-F-2025/drive-schedule-service/internal/events"
	"github.com/SAP-F-2025/drive-schedule-service/internal/models"
	"github.com/SAP-F-2025/drive-schedule-service/internal/repositories"
	"github.com/SAP-F-2025/drive-schedule-service/internal/validator"
)

type notificationService struct {
	repo      repositories.Repository
	db        *gorm.DB
	logger    *slog.Logger
	validator *validator.Validator
	emitter   *EventEmitter
}

func NewNotificationService(repo repositories.Repository, db *gorm.DB, logger *slog.Logger, validator *validator.Validator, emitter *EventEmitter) NotificationService {
	return &notificationService{
		repo:      repo,
		db:        db,
		logger:    logger,
		validator: validator,
		emitter:   emitter,
	}
}

// Create stores an unread notification stamped with the current time
func (s *notificationService) Create(ctx context.Context, req *CreateNotificationRequest) (*models.Notification, error) {
	s.logger.Info("Creating notification", "user_id", req.UserID)

	if errs := s.validator.GetBusinessValidator().ValidateNotificationCreate(req); len(errs) > 0 {
		return nil, NewValidationError(errs)
	}

	notification := &models.Notification{
		UserID:  req.UserID,
		Message: req.Message,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.repo.Notification().Create(ctx, tx, notification)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}
	s.repo.Notification().InvalidateUserCache(ctx, notification.UserID)

	s.emitter.Emit(ctx, events.NotificationCreated, events.NotificationCreatedEvent{
		NotificationID: notification.ID,
		UserID:         notification.UserID,
		Message:        notification.Message,
	})

	return notification, nil
}

func (s *notificationService) ListByUser(ctx context.Context, userID string) ([]*models.Notification, error) {
	notifications, err := s.repo.Notification().GetByUser(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}
