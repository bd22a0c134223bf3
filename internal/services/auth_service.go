package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"github.com/SAP-F-2025/drive-schedule-service/internal/events"
	"github.com/SAP-F-2025/drive-schedule-service/internal/models"
	"github.com/SAP-F-2025/drive-schedule-service/internal/repositories"
	"github.com/SAP-F-2025/drive-schedule-service/internal/validator"
)

// authService registers learners and checks login credentials. Passwords are
// stored and compared as plain text.
type authService struct {
	repo      repositories.Repository
	db        *gorm.DB
	logger    *slog.Logger
	validator *validator.Validator
	emitter   *EventEmitter
}

func NewAuthService(repo repositories.Repository, db *gorm.DB, logger *slog.Logger, validator *validator.Validator, emitter *EventEmitter) AuthService {
	return &authService{
		repo:      repo,
		db:        db,
		logger:    logger,
		validator: validator,
		emitter:   emitter,
	}
}

func (s *authService) Register(ctx context.Context, req *RegisterRequest) (*models.UserResponse, error) {
	s.logger.Info("Registering user", "email", req.Email)

	if errs := s.validator.GetBusinessValidator().ValidateRegister(req); len(errs) > 0 {
		return nil, NewValidationError(errs)
	}

	user := &models.User{
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
		Role:      models.RoleLearner,
		AvatarURL: req.AvatarURL,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := s.repo.User().ExistsByEmail(ctx, tx, req.Email)
		if err != nil {
			return fmt.Errorf("failed to check email: %w", err)
		}
		if exists {
			return ErrDuplicateEmail
		}

		if err := s.repo.User().Create(ctx, tx, user); err != nil {
			// A concurrent registration can pass the check above and still
			// lose the race on the unique index.
			if repositories.IsDuplicateError(err) {
				return ErrDuplicateEmail
			}
			return fmt.Errorf("failed to create user: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			s.logger.Warn("Registration rejected, email already registered", "email", req.Email)
		}
		return nil, err
	}
	s.repo.User().InvalidateCache(ctx)

	s.logger.Info("User registered", "user_id", user.ID)
	s.emitter.Emit(ctx, events.UserRegistered, events.UserRegisteredEvent{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   string(user.Role),
	})

	return models.NewUserResponse(user), nil
}

func (s *authService) Login(ctx context.Context, req *LoginRequest) (*models.LoginResponse, error) {
	s.logger.Info("Login attempt", "email", req.Email, "role", req.Role)

	if errs := s.validator.GetBusinessValidator().ValidateLogin(req); len(errs) > 0 {
		return nil, NewValidationError(errs)
	}

	user, err := s.repo.User().FindByCredentials(ctx, nil, req.Email, req.Password, req.Role)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			s.logger.Warn("Login rejected", "email", req.Email, "role", req.Role)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up credentials: %w", err)
	}

	return &models.LoginResponse{
		Status:  "success",
		Message: fmt.Sprintf("Welcome back, %s!", user.Name),
		ID:      user.ID,
		Name:    user.Name,
		Role:    user.Role,
	}, nil
}
