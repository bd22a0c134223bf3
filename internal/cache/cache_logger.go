package cache

import (
	"context"
	"log/slog"
)

// SafeInvalidatePattern safely invalidates cache pattern with logging
func SafeInvalidatePattern(ctx context.Context, helper *CacheHelper, pattern string) {
	if err := helper.InvalidatePattern(ctx, pattern); err != nil {
		slog.ErrorContext(ctx, "Failed to invalidate cache pattern",
			"error", err,
			"pattern", pattern)
	}
}

// SafeDelete safely deletes cache keys with logging
func SafeDelete(ctx context.Context, helper *CacheHelper, keys ...string) {
	if err := helper.Delete(ctx, keys...); err != nil {
		slog.ErrorContext(ctx, "Failed to delete cache keys",
			"error", err,
			"keys", keys)
	}
}

// InvalidateUserCache drops every cached user listing
func InvalidateUserCache(ctx context.Context, cm *CacheManager) {
	SafeInvalidatePattern(ctx, cm.User, "list:*")
}

// InvalidateVehicleCache drops every cached vehicle listing
func InvalidateVehicleCache(ctx context.Context, cm *CacheManager) {
	SafeInvalidatePattern(ctx, cm.Vehicle, "list:*")
}

// InvalidateNotificationCache drops the cached inbox of one user
func InvalidateNotificationCache(ctx context.Context, cm *CacheManager, userID string) {
	SafeDelete(ctx, cm.Notification, "user:"+userID)
}

// InvalidateAll drops every cached listing and inbox
func InvalidateAll(ctx context.Context, cm *CacheManager) {
	InvalidateUserCache(ctx, cm)
	InvalidateVehicleCache(ctx, cm)
	SafeInvalidatePattern(ctx, cm.Notification, "user:*")
}
