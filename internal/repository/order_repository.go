package repository

import (
	"errors"
	"time"

	"github.com/fresh-groceries/internal/constants"
	"github.com/fresh-groceries/internal/models"

	"gorm.io/gorm"
)

// OrderRepository 订单数据访问接口
type OrderRepository interface {
	Create(order *models.Order, items []models.OrderItem) error
	GetByID(id uint) (*models.Order, error)
	List(filter OrderListFilter) ([]models.Order, int64, error)
	ClaimUnassigned(id, courierID uint) (bool, error)
	UpdateStatus(id uint, status constants.OrderStatus) (int64, error)
	TransitionStatus(id uint, from []constants.OrderStatus, to constants.OrderStatus) (bool, error)
	CountItemsByProduct(productID uint) (int64, error)
	WithTx(tx *gorm.DB) *GormOrderRepository
}

// GormOrderRepository GORM 实现
type GormOrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository 创建订单仓库
func NewOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// WithTx 绑定事务
func (r *GormOrderRepository) WithTx(tx *gorm.DB) *GormOrderRepository {
	if tx == nil {
		return r
	}
	return &GormOrderRepository{db: tx}
}

func (r *GormOrderRepository) withItems(query *gorm.DB) *gorm.DB {
	return query.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("id asc")
	}).Preload("Items.Product")
}

// Create 创建订单与订单项
func (r *GormOrderRepository) Create(order *models.Order, items []models.OrderItem) error {
	if err := r.db.Omit("Items").Create(order).Error; err != nil {
		return err
	}
	for i := range items {
		items[i].OrderID = order.ID
	}
	if len(items) > 0 {
		if err := r.db.Omit("Product").Create(&items).Error; err != nil {
			return err
		}
	}
	order.Items = items
	return nil
}

// GetByID 根据 ID 获取订单（含订单项）
func (r *GormOrderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	if err := r.withItems(r.db).First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// List 按条件分页查询订单，按创建时间倒序
func (r *GormOrderRepository) List(filter OrderListFilter) ([]models.Order, int64, error) {
	query := r.db.Model(&models.Order{})
	if filter.UserID != 0 {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.CourierID != 0 {
		query = query.Where("courier_id = ?", filter.CourierID)
	}
	if filter.Unassigned {
		query = query.Where("courier_id IS NULL")
	}
	if len(filter.Statuses) > 0 {
		query = query.Where("status IN ?", filter.Statuses)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []models.Order
	query = applyPagination(query, filter.Page, filter.PageSize, filter.Offset)
	if err := r.withItems(newestFirst(query)).Find(&orders).Error; err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// ClaimUnassigned 骑手抢单：仅当订单未分配且处于 created 时写入，单条 UPDATE 完成比较与设置
func (r *GormOrderRepository) ClaimUnassigned(id, courierID uint) (bool, error) {
	result := r.db.Model(&models.Order{}).
		Where("id = ? AND courier_id IS NULL AND status = ?", id, constants.OrderStatusCreated).
		Updates(map[string]interface{}{
			"courier_id": courierID,
			"status":     constants.OrderStatusAccepted,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

// UpdateStatus 无条件覆盖订单状态，返回受影响行数
func (r *GormOrderRepository) UpdateStatus(id uint, status constants.OrderStatus) (int64, error) {
	result := r.db.Model(&models.Order{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	})
	return result.RowsAffected, result.Error
}

// TransitionStatus 仅当当前状态属于 from 时更新为 to
func (r *GormOrderRepository) TransitionStatus(id uint, from []constants.OrderStatus, to constants.OrderStatus) (bool, error) {
	if len(from) == 0 {
		return false, nil
	}
	result := r.db.Model(&models.Order{}).
		Where("id = ? AND status IN ?", id, from).
		Updates(map[string]interface{}{
			"status":     to,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

// CountItemsByProduct 统计引用某商品的订单项
func (r *GormOrderRepository) CountItemsByProduct(productID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.OrderItem{}).Where("product_id = ?", productID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
