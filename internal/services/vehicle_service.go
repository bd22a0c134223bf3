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

type vehicleService struct {
	repo      repositories.Repository
	db        *gorm.DB
	logger    *slog.Logger
	validator *validator.Validator
	emitter   *EventEmitter
}

func NewVehicleService(repo repositories.Repository, db *gorm.DB, logger *slog.Logger, validator *validator.Validator, emitter *EventEmitter) VehicleService {
	return &vehicleService{
		repo:      repo,
		db:        db,
		logger:    logger,
		validator: validator,
		emitter:   emitter,
	}
}

func (s *vehicleService) Create(ctx context.Context, req *CreateVehicleRequest) (*models.Vehicle, error) {
	s.logger.Info("Creating vehicle", "plate", req.Plate)

	if errs := s.validator.GetBusinessValidator().ValidateVehicleCreate(req); len(errs) > 0 {
		return nil, NewValidationError(errs)
	}

	vehicle := &models.Vehicle{
		Name:   req.Name,
		Plate:  req.Plate,
		Status: req.Status,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.repo.Vehicle().Create(ctx, tx, vehicle)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create vehicle: %w", err)
	}
	s.repo.Vehicle().InvalidateCache(ctx)

	s.logger.Info("Vehicle created", "vehicle_id", vehicle.ID, "status", vehicle.Status)
	s.emitter.Emit(ctx, events.VehicleCreated, events.VehicleCreatedEvent{
		VehicleID: vehicle.ID,
		Name:      vehicle.Name,
		Plate:     vehicle.Plate,
		Status:    string(vehicle.Status),
	})

	return vehicle, nil
}

func (s *vehicleService) List(ctx context.Context) ([]*models.Vehicle, error) {
	vehicles, err := s.repo.Vehicle().List(ctx, nil, repositories.VehicleFilters{})
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	return vehicles, nil
}
