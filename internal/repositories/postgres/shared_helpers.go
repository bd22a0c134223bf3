package postgres

import (
	"errors"
	"fmt"

	"github.com/SAP-F-2025/drive-schedule-service/internal/repositories"
	"gorm.io/gorm"
)

// handleDBError is a package-level helper for handling database errors.
// gorm's sentinel errors are translated into the repository taxonomy so
// callers never import gorm to classify a failure.
func handleDBError(err error, operation string) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s failed: %w", operation, repositories.ErrNotFound)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%s failed: %w", operation, repositories.ErrDuplicate)
	}

	return fmt.Errorf("%s failed: %w", operation, err)
}

// pickDB returns the transaction DB if provided, otherwise the default DB
func pickDB(db, tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return db
}

// ApplySessionFilters applies equality filters to session queries
func ApplySessionFilters(query *gorm.DB, filters repositories.SessionFilters) *gorm.DB {
	if filters.TeacherID != nil {
		query = query.Where("teacher_id = ?", *filters.TeacherID)
	}
	if filters.VehicleID != nil {
		query = query.Where("vehicle_id = ?", *filters.VehicleID)
	}
	if filters.Status != nil {
		query = query.Where("status = ?", *filters.Status)
	}
	if filters.Type != nil {
		query = query.Where("type = ?", *filters.Type)
	}
	if filters.LearnerID != nil {
		enrolled := query.Session(&gorm.Session{NewDB: true}).
			Table("session_learners").
			Select("session_id").
			Where("user_id = ?", *filters.LearnerID)
		query = query.Where("id IN (?)", enrolled)
	}
	return query
}

// ApplyNotificationFilters applies equality filters to notification queries
func ApplyNotificationFilters(query *gorm.DB, filters repositories.NotificationFilters) *gorm.DB {
	if filters.UserID != nil {
		query = query.Where("user_id = ?", *filters.UserID)
	}
	if filters.Read != nil {
		query = query.Where("is_read = ?", *filters.Read)
	}
	return query
}
