package postgres

import (
	"context"

	"github.com/SAP-F-2025/drive-schedule-service/internal/cache"
	"github.com/SAP-F-2025/drive-schedule-service/internal/models"
	"github.com/SAP-F-2025/drive-schedule-service/internal/repositories"
	"gorm.io/gorm"
)

type NotificationPostgreSQL struct {
	db           *gorm.DB
	cacheManager *cache.CacheManager
}

func NewNotificationPostgreSQL(db *gorm.DB, cacheManager *cache.CacheManager) repositories.NotificationRepository {
	return &NotificationPostgreSQL{
		db:           db,
		cacheManager: cacheManager,
	}
}

func (n *NotificationPostgreSQL) Create(ctx context.Context, tx *gorm.DB, notification *models.Notification) error {
	if err := pickDB(n.db, tx).WithContext(ctx).Create(notification).Error; err != nil {
		return handleDBError(err, "create notification")
	}
	if tx == nil {
		n.InvalidateUserCache(ctx, notification.UserID)
	}
	return nil
}

func (n *NotificationPostgreSQL) InvalidateUserCache(ctx context.Context, userID string) {
	cache.InvalidateNotificationCache(ctx, n.cacheManager, userID)
}

func (n *NotificationPostgreSQL) List(ctx context.Context, tx *gorm.DB, filters repositories.NotificationFilters) ([]*models.Notification, error) {
	notifications := make([]*models.Notification, 0)

	query := pickDB(n.db, tx).WithContext(ctx).Model(&models.Notification{})
	query = ApplyNotificationFilters(query, filters)

	if err := query.Order("sent_at ASC, id ASC").Find(&notifications).Error; err != nil {
		return nil, handleDBError(err, "list notifications")
	}
	return notifications, nil
}

// GetByUser returns every notification owned by userID, oldest first
func (n *NotificationPostgreSQL) GetByUser(ctx context.Context, tx *gorm.DB, userID string) ([]*models.Notification, error) {
	filters := repositories.NotificationFilters{UserID: &userID}
	if tx != nil {
		return n.List(ctx, tx, filters)
	}

	var notifications []*models.Notification
	err := n.cacheManager.Notification.CacheOrExecute(ctx, "user:"+userID, &notifications, cache.NotificationCacheConfig.TTL, func() (interface{}, error) {
		return n.List(ctx, nil, filters)
	})
	if err != nil {
		return nil, err
	}
	return notifications, nil
}
