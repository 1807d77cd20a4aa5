package repository

import (
	"errors"

	"github.com/fresh-groceries/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CourierLocationRepository 骑手位置数据访问接口
type CourierLocationRepository interface {
	Upsert(location *models.CourierLocation) error
	GetByCourier(courierID uint) (*models.CourierLocation, error)
}

// GormCourierLocationRepository GORM 实现
type GormCourierLocationRepository struct {
	db *gorm.DB
}

// NewCourierLocationRepository 创建骑手位置仓库
func NewCourierLocationRepository(db *gorm.DB) *GormCourierLocationRepository {
	return &GormCourierLocationRepository{db: db}
}

// Upsert 写入或覆盖骑手最新位置
func (r *GormCourierLocationRepository) Upsert(location *models.CourierLocation) error {
	if location == nil {
		return nil
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "courier_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"lat", "lng", "updated_at"}),
	}).Create(location).Error
}

// GetByCourier 获取骑手最新位置
func (r *GormCourierLocationRepository) GetByCourier(courierID uint) (*models.CourierLocation, error) {
	var location models.CourierLocation
	if err := r.db.Where("courier_id = ?", courierID).First(&location).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &location, nil
}
