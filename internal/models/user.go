package models

import (
	"time"

	"github.com/fresh-groceries/internal/constants"

	"gorm.io/gorm"
)

// User 用户表（普通用户、农户、骑手、管理员共用）
type User struct {
	ID           uint           `gorm:"primarykey" json:"id"`                                       // 主键
	Name         string         `gorm:"type:varchar(120);not null;default:''" json:"name"`          // 姓名
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`                          // 邮箱
	Phone        string         `gorm:"type:varchar(32);default:''" json:"phone"`                   // 手机号
	PasswordHash string         `gorm:"not null" json:"-"`                                          // 密码哈希（不返回给前端）
	Address      string         `gorm:"type:varchar(500);default:''" json:"address"`                // 默认收货地址
	Role         constants.Role `gorm:"type:varchar(20);not null;default:'user';index" json:"role"` // 角色
	TokenVersion uint64         `gorm:"not null;default:0" json:"-"`                                // Token 版本（用于全量失效）
	LastLoginAt  *time.Time     `json:"last_login_at"`                                              // 最后登录时间
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`                                    // 创建时间
	UpdatedAt    time.Time      `gorm:"index" json:"updated_at"`                                    // 更新时间
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`                                             // 软删除时间
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}
