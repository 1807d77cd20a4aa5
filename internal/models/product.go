package models

import (
	"time"

	"gorm.io/gorm"
)

// Product 商品表
type Product struct {
	ID             uint           `gorm:"primarykey" json:"id"`                               // 主键
	Name           string         `gorm:"type:varchar(200);not null;index" json:"name"`       // 商品名称
	Price          Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price"` // 标价
	DiscountPrice  *Money         `gorm:"type:decimal(20,2)" json:"discount_price"`           // 折扣价（为空表示无折扣）
	Stock          int            `gorm:"not null;default:0" json:"stock"`                    // 库存
	ExpirationDate *time.Time     `json:"expiration_date"`                                    // 保质期截止
	CategoryID     uint           `gorm:"not null;index" json:"category_id"`                  // 分类ID
	SupplierID     *uint          `gorm:"index" json:"supplier_id"`                           // 供应商ID
	FarmerID       *uint          `gorm:"index" json:"farmer_id"`                             // 农户ID（商品归属）
	ImageURL       string         `gorm:"type:varchar(500);default:''" json:"image_url"`      // 图片地址
	CreatedAt      time.Time      `gorm:"index" json:"created_at"`                            // 创建时间
	UpdatedAt      time.Time      `json:"updated_at"`                                         // 更新时间
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`                                     // 软删除时间

	// 关联
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"` // 分类信息
	Supplier *Supplier `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"` // 供应商信息
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}

// EffectivePrice 下单时采用的单价：折扣价大于 0 时取折扣价，否则取标价
func (p Product) EffectivePrice() Money {
	if p.DiscountPrice != nil && p.DiscountPrice.IsPositive() {
		return *p.DiscountPrice
	}
	return p.Price
}
