package repositories

import (
	"context"

	"github.com/SAP-F-2025/drive-schedule-service/internal/models"
	"gorm.io/gorm"
)

// ===== SHARED FILTER STRUCTS =====

type VehicleFilters struct {
	Status *models.VehicleStatus `json:"status"`
}

type SessionFilters struct {
	TeacherID *string               `json:"teacher_id"`
	LearnerID *string               `json:"learner_id"`
	VehicleID *string               `json:"vehicle_id"`
	Status    *models.SessionStatus `json:"status"`
	Type      *models.SessionType   `json:"type"`
}

type NotificationFilters struct {
	UserID *string `json:"user_id"`
	Read   *bool   `json:"read"`
}

// ===== REPOSITORY INTERFACES =====

type VehicleRepository interface {
	Create(ctx context.Context, tx *gorm.DB, vehicle *models.Vehicle) error
	GetByID(ctx context.Context, tx *gorm.DB, id string) (*models.Vehicle, error)
	List(ctx context.Context, tx *gorm.DB, filters VehicleFilters) ([]*models.Vehicle, error)

	// InvalidateCache drops cached vehicle listings. Creates made inside a
	// transaction leave the cache alone; callers invoke this after commit.
	InvalidateCache(ctx context.Context)
}

type SessionRepository interface {
	// Create inserts the session row and one session_learners link per entry
	// of session.Learners. Learner rows themselves are never written.
	Create(ctx context.Context, tx *gorm.DB, session *models.Session) error
	GetByID(ctx context.Context, tx *gorm.DB, id string) (*models.Session, error)
	List(ctx context.Context, tx *gorm.DB, filters SessionFilters) ([]*models.Session, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, tx *gorm.DB, notification *models.Notification) error
	List(ctx context.Context, tx *gorm.DB, filters NotificationFilters) ([]*models.Notification, error)
	GetByUser(ctx context.Context, tx *gorm.DB, userID string) ([]*models.Notification, error)

	// InvalidateUserCache drops the cached inbox of userID once a
	// transactional create has committed.
	InvalidateUserCache(ctx context.Context, userID string)
}
