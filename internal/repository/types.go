package repository

import "github.com/fresh-groceries/internal/constants"

// ProductListFilter 查询商品列表的过滤条件
type ProductListFilter struct {
	Page       int
	PageSize   int
	Offset     int
	CategoryID uint
	FarmerID   uint
	Search     string
}

// OrderListFilter 查询订单列表的过滤条件
type OrderListFilter struct {
	Page       int
	PageSize   int
	Offset     int
	UserID     uint
	CourierID  uint
	Statuses   []constants.OrderStatus
	Unassigned bool // 仅返回未分配骑手的订单
}

// UserListFilter 查询用户列表的过滤条件
type UserListFilter struct {
	Page     int
	PageSize int
	Offset   int
	Role     constants.Role
	Search   string
}
