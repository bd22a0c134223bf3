package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VehicleStatus string

const (
	VehicleActive      VehicleStatus = "active"
	VehicleMaintenance VehicleStatus = "maintenance"
	VehicleRetired     VehicleStatus = "retired"
)

func (s VehicleStatus) IsValid() bool {
	switch s {
	case VehicleActive, VehicleMaintenance, VehicleRetired:
		return true
	}
	return false
}

type Vehicle struct {
	ID     string        `json:"id" gorm:"primaryKey;size:36"`
	Name   string        `json:"name" gorm:"not null;size:100"`
	Plate  string        `json:"plate" gorm:"uniqueIndex;not null;size:32"`
	Status VehicleStatus `json:"status" gorm:"not null;size:20;index"`
}

func (Vehicle) TableName() string {
	return "vehicles"
}

func (v *Vehicle) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	if v.Status == "" {
		v.Status = VehicleActive
	}
	return nil
}
