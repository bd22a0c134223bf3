package events

import (
	"time"

	"github.com/google/uuid"
)

// Event types emitted after a successful commit
const (
	UserRegistered      = "user.registered"
	VehicleCreated      = "vehicle.created"
	SessionCreated      = "session.created"
	NotificationCreated = "notification.created"
)

const EventVersion = "1.0"

// Event is the envelope written to the broker
type Event struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	Source    string      `json:"source"`
	Version   string      `json:"version"`
	Timestamp time.Time   `json:"timestamp"`
	Data      interface{} `json:"data"`
}

func NewEvent(eventType, source string, data interface{}) *Event {
	return &Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Source:    source,
		Version:   EventVersion,
		Timestamp: time.Now().UTC(),
		Data:      data,
	}
}

// ===== PAYLOADS =====

type UserRegisteredEvent struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

type VehicleCreatedEvent struct {
	VehicleID string `json:"vehicleId"`
	Name      string `json:"name"`
	Plate     string `json:"plate"`
	Status    string `json:"status"`
}

type SessionCreatedEvent struct {
	SessionID       string    `json:"sessionId"`
	TeacherID       string    `json:"teacherId"`
	LearnerIDs      []string  `json:"learnerIds"`
	Start           time.Time `json:"start"`
	End             time.Time `json:"end"`
	Type            string    `json:"type"`
	RequiresVehicle bool      `json:"requiresVehicle"`
	VehicleID       *string   `json:"vehicleId,omitempty"`
}

type NotificationCreatedEvent struct {
	NotificationID string `json:"notificationId"`
	UserID         string `json:"userId"`
	Message        string `json:"message"`
}
