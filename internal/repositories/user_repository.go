package repositories

import (
	"context"

	"github.com/SAP-F-2025/drive-schedule-service/internal/models"
	"gorm.io/gorm"
)

// UserFilters defines equality filters for user queries
type UserFilters struct {
	Email *string          // Exact, case-sensitive match
	Role  *models.UserRole // Filter by role
}

// UserRepository interface for user operations
type UserRepository interface {
	Create(ctx context.Context, tx *gorm.DB, user *models.User) error

	// Basic read operations
	GetByID(ctx context.Context, tx *gorm.DB, id string) (*models.User, error)
	GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*models.User, error)
	// GetByIDs returns the users whose id is in ids. Unknown ids are skipped
	// and duplicates collapse to a single row.
	GetByIDs(ctx context.Context, tx *gorm.DB, ids []string) ([]*models.User, error)

	// List operations
	List(ctx context.Context, tx *gorm.DB, filters UserFilters) ([]*models.User, error)

	// Validation and checks
	ExistsByEmail(ctx context.Context, tx *gorm.DB, email string) (bool, error)
	FindByCredentials(ctx context.Context, tx *gorm.DB, email, password string, role models.UserRole) (*models.User, error)

	// Cache maintenance. Creates made inside a transaction leave the cache
	// alone; callers invalidate after commit.
	InvalidateCache(ctx context.Context)
}
