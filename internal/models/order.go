package models

import (
	"time"

	"github.com/fresh-groceries/internal/constants"
)

// Order 订单表
type Order struct {
	ID            uint                  `gorm:"primarykey" json:"id"`                                     // 主键
	UserID        uint                  `gorm:"index;not null" json:"user_id"`                            // 下单用户ID
	CourierID     *uint                 `gorm:"index" json:"courier_id"`                                  // 骑手ID（未接单为空）
	Status        constants.OrderStatus `gorm:"type:varchar(20);index;not null" json:"status"`            // 订单状态
	TotalPrice    Money                 `gorm:"type:decimal(20,2);not null;default:0" json:"total_price"` // 订单总价（创建时计算，不再重算）
	PaymentMethod string                `gorm:"type:varchar(50);not null" json:"payment_method"`          // 支付方式
	Address       string                `gorm:"type:varchar(500);not null" json:"address"`                // 收货地址
	CreatedAt     time.Time             `gorm:"index" json:"created_at"`                                  // 创建时间
	UpdatedAt     time.Time             `gorm:"index" json:"updated_at"`                                  // 更新时间

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items"` // 订单项
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}
