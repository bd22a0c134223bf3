package validator

import (
	"github.com/SAP-F-2025/drive-schedule-service/internal/models"
)

// RegisterRequest has no role field: registrations are always learners
type RegisterRequest struct {
	Name      string  `json:"name" validate:"required,max=255"`
	Email     string  `json:"email" validate:"required,email,max=255"`
	Password  string  `json:"password" validate:"required,max=255"`
	AvatarURL *string `json:"avatarUrl" validate:"omitempty,max=2048"`
}

type LoginRequest struct {
	Email    string          `json:"email" validate:"required,email"`
	Password string          `json:"password" validate:"required"`
	Role     models.UserRole `json:"role" validate:"required,user_role"`
}

// CreateVehicleRequest defaults Status to active when omitted
type CreateVehicleRequest struct {
	Name   string               `json:"name" validate:"required,max=255"`
	Plate  string               `json:"plate" validate:"required,max=50"`
	Status models.VehicleStatus `json:"status" validate:"omitempty,vehicle_status"`
}

type CreateSessionRequest struct {
	TeacherID       string             `json:"teacherId" validate:"required"`
	LearnerIDs      []string           `json:"learnerIds"`
	Start           Timestamp          `json:"start" validate:"required"`
	End             Timestamp          `json:"end" validate:"required"`
	RequiresVehicle *bool              `json:"requiresVehicle" validate:"required"`
	VehicleID       *string            `json:"vehicleId"`
	Type            models.SessionType `json:"type" validate:"required,session_type"`
	Capacity        *int               `json:"capacity"`
}

type CreateNotificationRequest struct {
	UserID  string `json:"userId" validate:"required"`
	Message string `json:"message" validate:"required"`
}
