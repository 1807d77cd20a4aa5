package models

import "time"

// Supplier 供应商表
type Supplier struct {
	ID        uint      `gorm:"primarykey" json:"id"`                   // 主键
	Name      string    `gorm:"type:varchar(200);not null" json:"name"` // 供应商名称
	CreatedAt time.Time `gorm:"index" json:"created_at"`                // 创建时间
	UpdatedAt time.Time `json:"updated_at"`                             // 更新时间
}

// TableName 指定表名
func (Supplier) TableName() string {
	return "suppliers"
}
