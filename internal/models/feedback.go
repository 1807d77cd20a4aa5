package models

import "time"

// Feedback 订单评价（每个订单至多一条）
type Feedback struct {
	ID        uint      `gorm:"primarykey" json:"id"`                         // 主键
	UserID    uint      `gorm:"index;not null" json:"user_id"`                // 评价用户ID
	OrderID   uint      `gorm:"uniqueIndex;not null" json:"order_id"`         // 订单ID
	Rating    int       `gorm:"not null" json:"rating"`                       // 评分 1-5
	Comment   string    `gorm:"type:varchar(1000);default:''" json:"comment"` // 评价内容
	CreatedAt time.Time `gorm:"index" json:"created_at"`                      // 创建时间
}

// TableName 指定表名
func (Feedback) TableName() string {
	return "feedbacks"
}
