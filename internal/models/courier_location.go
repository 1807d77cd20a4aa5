package models

import "time"

// CourierLocation 骑手最新位置（每个骑手一行，原地覆盖）
type CourierLocation struct {
	CourierID uint      `gorm:"primarykey;autoIncrement:false" json:"courier_id"` // 骑手ID
	Lat       float64   `gorm:"not null" json:"lat"`                              // 纬度
	Lng       float64   `gorm:"not null" json:"lng"`                              // 经度
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`                       // 上报时间
}

// TableName 指定表名
func (CourierLocation) TableName() string {
	return "courier_locations"
}
