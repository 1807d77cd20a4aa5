package models

import "time"

// OrderItem 订单项表（下单时的价格快照）
type OrderItem struct {
	ID        uint      `gorm:"primarykey" json:"id"`                               // 主键
	OrderID   uint      `gorm:"index;not null" json:"order_id"`                     // 订单ID
	ProductID uint      `gorm:"index;not null" json:"product_id"`                   // 商品ID
	Quantity  int       `gorm:"not null" json:"quantity"`                           // 数量
	Price     Money     `gorm:"type:decimal(20,2);not null;default:0" json:"price"` // 成交单价
	CreatedAt time.Time `json:"created_at"`                                         // 创建时间

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"` // 商品信息（仅展示）
}

// TableName 指定表名
func (OrderItem) TableName() string {
	return "order_items"
}

// LineTotal 行小计
func (i OrderItem) LineTotal() Money {
	return i.Price.MulInt(i.Quantity)
}
