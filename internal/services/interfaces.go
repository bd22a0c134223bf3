package services

import (
	"context"
	"io"

	"github.com/SAP-F-2025/drive-schedule-service/internal/models"
	"github.com/SAP-F-2025/drive-schedule-service/internal/validator"
)

// ===== REQUEST DTOs =====

// Use business validator types
type RegisterRequest = validator.RegisterRequest
type LoginRequest = validator.LoginRequest
type CreateVehicleRequest = validator.CreateVehicleRequest
type CreateSessionRequest = validator.CreateSessionRequest
type CreateNotificationRequest = validator.CreateNotificationRequest

// ===== SERVICE INTERFACES =====

type AuthService interface {
	// Register creates a learner account. The role is never taken from input.
	Register(ctx context.Context, req *RegisterRequest) (*models.UserResponse, error)
	// Login succeeds only when email, password and role all match one user
	Login(ctx context.Context, req *LoginRequest) (*models.LoginResponse, error)
}

type UserService interface {
	List(ctx context.Context) ([]*models.UserResponse, error)
}

type VehicleService interface {
	Create(ctx context.Context, req *CreateVehicleRequest) (*models.Vehicle, error)
	List(ctx context.Context) ([]*models.Vehicle, error)
}

type SessionService interface {
	Create(ctx context.Context, req *CreateSessionRequest) (*models.SessionResponse, error)
	List(ctx context.Context) ([]*models.SessionResponse, error)
}

type NotificationService interface {
	Create(ctx context.Context, req *CreateNotificationRequest) (*models.Notification, error)
	ListByUser(ctx context.Context, userID string) ([]*models.Notification, error)
}

type ExportService interface {
	// ExportSessions writes every session as an xlsx workbook
	ExportSessions(ctx context.Context, w io.Writer) error
}

// ===== SERVICE MANAGER =====

type ServiceManager interface {
	// Core service getters
	Auth() AuthService
	User() UserService
	Vehicle() VehicleService
	Session() SessionService
	Notification() NotificationService
	Export() ExportService

	// Health and lifecycle
	Initialize(ctx context.Context) error
	HealthCheck(ctx context.Context) error
	Shutdown(ctx context.Context) error
}
