package service

import "github.com/fresh-groceries/internal/constants"

// Actor 当前操作者身份（由鉴权中间件解析）
type Actor struct {
	UserID uint
	Role   constants.Role
}

// IsAdmin 是否管理员
func (a Actor) IsAdmin() bool {
	return a.Role == constants.RoleAdmin
}
