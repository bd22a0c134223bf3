package postgres

import (
	"context"

	"github.com/SAP-F-2025/drive-schedule-service/internal/cache"
	"github.com/SAP-F-2025/drive-schedule-service/internal/models"
	"github.com/SAP-F-2025/drive-schedule-service/internal/repositories"
	"gorm.io/gorm"
)

type VehiclePostgreSQL struct {
	db           *gorm.DB
	cacheManager *cache.CacheManager
}

func NewVehiclePostgreSQL(db *gorm.DB, cacheManager *cache.CacheManager) repositories.VehicleRepository {
	return &VehiclePostgreSQL{
		db:           db,
		cacheManager: cacheManager,
	}
}

func (v *VehiclePostgreSQL) Create(ctx context.Context, tx *gorm.DB, vehicle *models.Vehicle) error {
	if err := pickDB(v.db, tx).WithContext(ctx).Create(vehicle).Error; err != nil {
		return handleDBError(err, "create vehicle")
	}
	if tx == nil {
		v.InvalidateCache(ctx)
	}
	return nil
}

func (v *VehiclePostgreSQL) InvalidateCache(ctx context.Context) {
	cache.InvalidateVehicleCache(ctx, v.cacheManager)
}

func (v *VehiclePostgreSQL) GetByID(ctx context.Context, tx *gorm.DB, id string) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	if err := pickDB(v.db, tx).WithContext(ctx).First(&vehicle, "id = ?", id).Error; err != nil {
		return nil, handleDBError(err, "get vehicle by id")
	}
	return &vehicle, nil
}

func (v *VehiclePostgreSQL) List(ctx context.Context, tx *gorm.DB, filters repositories.VehicleFilters) ([]*models.Vehicle, error) {
	fetch := func() (interface{}, error) {
		vehicles := make([]*models.Vehicle, 0)
		query := pickDB(v.db, tx).WithContext(ctx).Model(&models.Vehicle{})
		if filters.Status != nil {
			query = query.Where("status = ?", *filters.Status)
		}
		if err := query.Order("name ASC, id ASC").Find(&vehicles).Error; err != nil {
			return nil, handleDBError(err, "list vehicles")
		}
		return vehicles, nil
	}

	if tx != nil {
		vehicles, err := fetch()
		if err != nil {
			return nil, err
		}
		return vehicles.([]*models.Vehicle), nil
	}

	key := "list:all"
	if filters.Status != nil {
		key = "list:status:" + string(*filters.Status)
	}

	var vehicles []*models.Vehicle
	if err := v.cacheManager.Vehicle.CacheOrExecute(ctx, key, &vehicles, cache.VehicleCacheConfig.TTL, fetch); err != nil {
		return nil, err
	}
	return vehicles, nil
}
