package postgres

import (
	"context"
	"fmt"

	"github.com/SAP-F-2025/drive-schedule-service/internal/cache"
	"github.com/SAP-F-2025/drive-schedule-service/internal/models"
	"github.com/SAP-F-2025/drive-schedule-service/internal/repositories"
	"gorm.io/gorm"
)

type UserPostgreSQL struct {
	db           *gorm.DB
	cacheManager *cache.CacheManager
}

func NewUserPostgreSQL(db *gorm.DB, cacheManager *cache.CacheManager) repositories.UserRepository {
	return &UserPostgreSQL{
		db:           db,
		cacheManager: cacheManager,
	}
}

// Create inserts a user. Outside a transaction cached listings are dropped
// right away; inside one the caller invalidates after commit.
func (u *UserPostgreSQL) Create(ctx context.Context, tx *gorm.DB, user *models.User) error {
	if err := pickDB(u.db, tx).WithContext(ctx).Create(user).Error; err != nil {
		return handleDBError(err, "create user")
	}
	if tx == nil {
		u.InvalidateCache(ctx)
	}
	return nil
}

func (u *UserPostgreSQL) InvalidateCache(ctx context.Context) {
	cache.InvalidateUserCache(ctx, u.cacheManager)
}

// GetByID retrieves a user by ID. Reads outside a transaction go through the
// cache; cached copies never carry the password.
func (u *UserPostgreSQL) GetByID(ctx context.Context, tx *gorm.DB, id string) (*models.User, error) {
	fetch := func() (interface{}, error) {
		var user models.User
		if err := pickDB(u.db, tx).WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
			return nil, handleDBError(err, "get user by id")
		}
		return &user, nil
	}

	if tx != nil || !u.cacheManager.User.Enabled() {
		user, err := fetch()
		if err != nil {
			return nil, err
		}
		return user.(*models.User), nil
	}

	var user models.User
	if err := u.cacheManager.User.CacheOrExecute(ctx, "id:"+id, &user, cache.UserCacheConfig.TTL, fetch); err != nil {
		return nil, err
	}
	return &user, nil
}

func (u *UserPostgreSQL) GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*models.User, error) {
	var user models.User
	if err := pickDB(u.db, tx).WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, handleDBError(err, "get user by email")
	}
	return &user, nil
}

func (u *UserPostgreSQL) GetByIDs(ctx context.Context, tx *gorm.DB, ids []string) ([]*models.User, error) {
	users := make([]*models.User, 0, len(ids))
	if len(ids) == 0 {
		return users, nil
	}

	if err := pickDB(u.db, tx).WithContext(ctx).Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, handleDBError(err, "get users by ids")
	}
	return users, nil
}

// List retrieves users matching the filters, cached per filter combination
func (u *UserPostgreSQL) List(ctx context.Context, tx *gorm.DB, filters repositories.UserFilters) ([]*models.User, error) {
	fetch := func() (interface{}, error) {
		users := make([]*models.User, 0)
		query := pickDB(u.db, tx).WithContext(ctx).Model(&models.User{})
		if filters.Email != nil {
			query = query.Where("email = ?", *filters.Email)
		}
		if filters.Role != nil {
			query = query.Where("role = ?", *filters.Role)
		}
		if err := query.Order("name ASC, id ASC").Find(&users).Error; err != nil {
			return nil, handleDBError(err, "list users")
		}
		return users, nil
	}

	if tx != nil {
		users, err := fetch()
		if err != nil {
			return nil, err
		}
		return users.([]*models.User), nil
	}

	var users []*models.User
	if err := u.cacheManager.User.CacheOrExecute(ctx, userListKey(filters), &users, cache.UserCacheConfig.TTL, fetch); err != nil {
		return nil, err
	}
	return users, nil
}

func (u *UserPostgreSQL) ExistsByEmail(ctx context.Context, tx *gorm.DB, email string) (bool, error) {
	var count int64
	if err := pickDB(u.db, tx).WithContext(ctx).Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, handleDBError(err, "check user email")
	}
	return count > 0, nil
}

// FindByCredentials matches email, password and role in a single predicate
func (u *UserPostgreSQL) FindByCredentials(ctx context.Context, tx *gorm.DB, email, password string, role models.UserRole) (*models.User, error) {
	var user models.User
	err := pickDB(u.db, tx).WithContext(ctx).
		Where("email = ? AND password = ? AND role = ?", email, password, role).
		First(&user).Error
	if err != nil {
		return nil, handleDBError(err, "find user by credentials")
	}
	return &user, nil
}

func userListKey(filters repositories.UserFilters) string {
	key := "list:all"
	if filters.Email != nil {
		key += fmt.Sprintf(":email=%s", *filters.Email)
	}
	if filters.Role != nil {
		key += fmt.Sprintf(":role=%s", *filters.Role)
	}
	return key
}
