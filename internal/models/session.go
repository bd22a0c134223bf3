package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SessionStatus string

const (
	SessionScheduled SessionStatus = "scheduled"
	SessionCompleted SessionStatus = "completed"
	SessionCancelled SessionStatus = "cancelled"
)

func (s SessionStatus) IsValid() bool {
	switch s {
	case SessionScheduled, SessionCompleted, SessionCancelled:
		return true
	}
	return false
}

type SessionType string

const (
	SessionTheory    SessionType = "theory"
	SessionPractical SessionType = "practical"
)

func (t SessionType) IsValid() bool {
	switch t {
	case SessionTheory, SessionPractical:
		return true
	}
	return false
}

// Session is a scheduled lesson. Teacher name and learner names are never
// stored here; they are resolved through the relations at read time.
type Session struct {
	ID                 string        `json:"id" gorm:"primaryKey;size:36"`
	TeacherID          string        `json:"teacherId" gorm:"not null;size:36;index"`
	Start              time.Time     `json:"start" gorm:"column:start_at;not null;index"`
	End                time.Time     `json:"end" gorm:"column:end_at;not null"`
	Status             SessionStatus `json:"status" gorm:"not null;size:20;index"`
	CreatedAt          time.Time     `json:"createdAt"`
	CancellationReason *string       `json:"cancellationReason" gorm:"size:500"`
	RequiresVehicle    bool          `json:"requiresVehicle" gorm:"not null"`
	VehicleID          *string       `json:"vehicleId" gorm:"size:36;index"`
	Type               SessionType   `json:"type" gorm:"not null;size:20"`
	Capacity           *int          `json:"capacity"`

	// Relations
	Teacher  *User    `json:"-" gorm:"foreignKey:TeacherID"`
	Vehicle  *Vehicle `json:"-" gorm:"foreignKey:VehicleID"`
	Learners []*User  `json:"-" gorm:"many2many:session_learners;joinForeignKey:SessionID;joinReferences:UserID"`
}

func (Session) TableName() string {
	return "sessions"
}

func (s *Session) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.Status == "" {
		s.Status = SessionScheduled
	}
	return nil
}
