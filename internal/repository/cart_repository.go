package repository

import (
	"errors"
	"time"

	"github.com/fresh-groceries/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CartRepository 购物车数据访问接口
type CartRepository interface {
	ListByUser(userID uint) ([]models.CartItem, error)
	ListByUserForUpdate(userID uint) ([]models.CartItem, error)
	GetByIDAndUser(id, userID uint) (*models.CartItem, error)
	AddQuantity(userID, productID uint, quantity int) (*models.CartItem, error)
	UpdateQuantity(id, userID uint, quantity int) (int64, error)
	DeleteByIDAndUser(id, userID uint) (int64, error)
	ClearByUser(userID uint, itemIDs ...uint) (int64, error)
	CountByProduct(productID uint) (int64, error)
	WithTx(tx *gorm.DB) *GormCartRepository
}

// GormCartRepository GORM 实现
type GormCartRepository struct {
	db *gorm.DB
}

// NewCartRepository 创建购物车仓库
func NewCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// WithTx 绑定事务
func (r *GormCartRepository) WithTx(tx *gorm.DB) *GormCartRepository {
	if tx == nil {
		return r
	}
	return &GormCartRepository{db: tx}
}

// ListByUser 获取用户购物车项（含商品信息）
func (r *GormCartRepository) ListByUser(userID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := r.db.Preload("Product").Preload("Product.Category").
		Where("user_id = ?", userID).Order("id asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ListByUserForUpdate 下单事务内加锁读取购物车，同一用户并发下单时串行化
func (r *GormCartRepository) ListByUserForUpdate(userID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).Preload("Product").
		Where("user_id = ?", userID).Order("id asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// GetByIDAndUser 获取属于指定用户的购物车项
func (r *GormCartRepository) GetByIDAndUser(id, userID uint) (*models.CartItem, error) {
	var item models.CartItem
	if err := r.db.Preload("Product").Where("id = ? AND user_id = ?", id, userID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// AddQuantity 添加购物车项，已存在则累加数量
// 使用 ON CONFLICT 保证同一 (user, product) 并发添加不会产生重复行
func (r *GormCartRepository) AddQuantity(userID, productID uint, quantity int) (*models.CartItem, error) {
	now := time.Now()
	item := models.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}
	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity":   gorm.Expr("cart_items.quantity + ?", quantity),
			"updated_at": now,
		}),
	}).Create(&item).Error
	if err != nil {
		return nil, err
	}

	var saved models.CartItem
	if err := r.db.Preload("Product").Where("user_id = ? AND product_id = ?", userID, productID).First(&saved).Error; err != nil {
		return nil, err
	}
	return &saved, nil
}

// UpdateQuantity 修改购物车项数量，返回受影响行数
func (r *GormCartRepository) UpdateQuantity(id, userID uint, quantity int) (int64, error) {
	result := r.db.Model(&models.CartItem{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]interface{}{
			"quantity":   quantity,
			"updated_at": time.Now(),
		})
	return result.RowsAffected, result.Error
}

// DeleteByIDAndUser 删除购物车项，返回受影响行数
func (r *GormCartRepository) DeleteByIDAndUser(id, userID uint) (int64, error) {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.CartItem{})
	return result.RowsAffected, result.Error
}

// ClearByUser 清空购物车；给出 itemIDs 时只删除这些项，返回受影响行数
func (r *GormCartRepository) ClearByUser(userID uint, itemIDs ...uint) (int64, error) {
	query := r.db.Where("user_id = ?", userID)
	if len(itemIDs) > 0 {
		query = query.Where("id IN ?", itemIDs)
	}
	result := query.Delete(&models.CartItem{})
	return result.RowsAffected, result.Error
}

// CountByProduct 统计引用某商品的购物车项
func (r *GormCartRepository) CountByProduct(productID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.CartItem{}).Where("product_id = ?", productID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
