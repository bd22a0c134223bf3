package postgres

import (
	"context"

	"github.com/SAP-F-2025/drive-schedule-service/internal/models"
	"github.com/SAP-F-2025/drive-schedule-service/internal/repositories"
	"gorm.io/gorm"
)

// SessionPostgreSQL stores sessions and their learner links. Sessions are
// never cached: their projections must reflect the current relation state.
type SessionPostgreSQL struct {
	db *gorm.DB
}

func NewSessionPostgreSQL(db *gorm.DB) repositories.SessionRepository {
	return &SessionPostgreSQL{db: db}
}

// Create writes the session row plus its session_learners links. Teacher,
// vehicle and learner rows are referenced, never upserted.
func (s *SessionPostgreSQL) Create(ctx context.Context, tx *gorm.DB, session *models.Session) error {
	err := pickDB(s.db, tx).WithContext(ctx).
		Omit("Teacher", "Vehicle", "Learners.*").
		Create(session).Error
	if err != nil {
		return handleDBError(err, "create session")
	}
	return nil
}

// GetByID retrieves a session with teacher and learners resolved
func (s *SessionPostgreSQL) GetByID(ctx context.Context, tx *gorm.DB, id string) (*models.Session, error) {
	var session models.Session
	err := pickDB(s.db, tx).WithContext(ctx).
		Preload("Teacher").
		Preload("Learners").
		First(&session, "id = ?", id).Error
	if err != nil {
		return nil, handleDBError(err, "get session by id")
	}
	return &session, nil
}

// List retrieves sessions ordered by creation time with relations preloaded
func (s *SessionPostgreSQL) List(ctx context.Context, tx *gorm.DB, filters repositories.SessionFilters) ([]*models.Session, error) {
	sessions := make([]*models.Session, 0)

	query := pickDB(s.db, tx).WithContext(ctx).Model(&models.Session{})
	query = ApplySessionFilters(query, filters)

	err := query.
		Preload("Teacher").
		Preload("Learners").
		Order("created_at ASC, id ASC").
		Find(&sessions).Error
	if err != nil {
		return nil, handleDBError(err, "list sessions")
	}
	return sessions, nil
}
