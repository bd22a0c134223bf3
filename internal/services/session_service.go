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

type sessionService struct {
	repo      repositories.Repository
	db        *gorm.DB
	logger    *slog.Logger
	validator *validator.Validator
	emitter   *EventEmitter
}

func NewSessionService(repo repositories.Repository, db *gorm.DB, logger *slog.Logger, validator *validator.Validator, emitter *EventEmitter) SessionService {
	return &sessionService{
		repo:      repo,
		db:        db,
		logger:    logger,
		validator: validator,
		emitter:   emitter,
	}
}

// Create schedules a session. Learner ids are resolved in one query: unknown
// ids are dropped and duplicates collapse. Teacher and vehicle ids are stored
// as given.
func (s *sessionService) Create(ctx context.Context, req *CreateSessionRequest) (*models.SessionResponse, error) {
	s.logger.Info("Creating session", "teacher_id", req.TeacherID, "learner_count", len(req.LearnerIDs), "type", req.Type)

	if errs := s.validator.GetBusinessValidator().ValidateSessionCreate(req); len(errs) > 0 {
		return nil, NewValidationError(errs)
	}

	session := &models.Session{
		TeacherID:       req.TeacherID,
		Start:           req.Start.Time,
		End:             req.End.Time,
		Status:          models.SessionScheduled,
		RequiresVehicle: *req.RequiresVehicle,
		VehicleID:       req.VehicleID,
		Type:            req.Type,
		Capacity:        req.Capacity,
	}

	var created *models.Session
	err := s.withTx(ctx, func(tx *gorm.DB) error {
		learners, err := s.repo.User().GetByIDs(ctx, tx, req.LearnerIDs)
		if err != nil {
			return fmt.Errorf("failed to resolve learners: %w", err)
		}
		if dropped := countUnresolved(req.LearnerIDs, learners); dropped > 0 {
			s.logger.Warn("Dropping unknown learner ids", "dropped", dropped, "requested", len(req.LearnerIDs))
		}
		session.Learners = learners

		if err := s.repo.Session().Create(ctx, tx, session); err != nil {
			return fmt.Errorf("failed to create session: %w", err)
		}

		created, err = s.repo.Session().GetByID(ctx, tx, session.ID)
		if err != nil {
			return fmt.Errorf("failed to reload session: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	response := ProjectSession(created)

	s.logger.Info("Session created", "session_id", response.ID, "learners", len(response.LearnerIDs))
	s.emitter.Emit(ctx, events.SessionCreated, events.SessionCreatedEvent{
		SessionID:       response.ID,
		TeacherID:       response.TeacherID,
		LearnerIDs:      response.LearnerIDs,
		Start:           response.Start,
		End:             response.End,
		Type:            string(response.Type),
		RequiresVehicle: response.RequiresVehicle,
		VehicleID:       response.VehicleID,
	})

	return response, nil
}

func (s *sessionService) List(ctx context.Context) ([]*models.SessionResponse, error) {
	sessions, err := s.repo.Session().List(ctx, nil, repositories.SessionFilters{})
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return ProjectSessions(sessions), nil
}

// withTx executes a function within a transaction
func (s *sessionService) withTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return s.db.WithContext(ctx).Transaction(fn)
}

// countUnresolved returns how many distinct requested ids found no user
func countUnresolved(requested []string, resolved []*models.User) int {
	found := make(map[string]struct{}, len(resolved))
	for _, u := range resolved {
		found[u.ID] = struct{}{}
	}

	missing := make(map[string]struct{})
	for _, id := range requested {
		if _, ok := found[id]; !ok {
			missing[id] = struct{}{}
		}
	}
	return len(missing)
}
