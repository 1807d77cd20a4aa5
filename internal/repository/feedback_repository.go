package repository

import (
	"errors"

	"github.com/fresh-groceries/internal/models"

	"gorm.io/gorm"
)

// FeedbackRepository 订单评价数据访问接口
type FeedbackRepository interface {
	Create(feedback *models.Feedback) error
	GetByOrderID(orderID uint) (*models.Feedback, error)
}

// GormFeedbackRepository GORM 实现
type GormFeedbackRepository struct {
	db *gorm.DB
}

// NewFeedbackRepository 创建评价仓库
func NewFeedbackRepository(db *gorm.DB) *GormFeedbackRepository {
	return &GormFeedbackRepository{db: db}
}

// Create 创建评价
func (r *GormFeedbackRepository) Create(feedback *models.Feedback) error {
	return r.db.Create(feedback).Error
}

// GetByOrderID 获取订单评价
func (r *GormFeedbackRepository) GetByOrderID(orderID uint) (*models.Feedback, error) {
	var feedback models.Feedback
	if err := r.db.Where("order_id = ?", orderID).First(&feedback).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &feedback, nil
}
