package constants

// Role 用户角色
type Role string

// 用户角色常量
const (
	RoleUser    Role = "user"
	RoleFarmer  Role = "farmer"
	RoleCourier Role = "courier"
	RoleAdmin   Role = "admin"
)

// AllRoles 全部角色（用于校验与策略初始化）
var AllRoles = []Role{RoleUser, RoleFarmer, RoleCourier, RoleAdmin}

// IsValid 判断角色是否合法
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleFarmer, RoleCourier, RoleAdmin:
		return true
	default:
		return false
	}
}

func (r Role) String() string {
	return string(r)
}

// OrderStatus 订单状态
type OrderStatus string

// 订单状态常量
const (
	OrderStatusCreated   OrderStatus = "created"
	OrderStatusAccepted  OrderStatus = "accepted"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusOnTheWay  OrderStatus = "on_the_way"
	OrderStatusDelivered OrderStatus = "delivered"
	// OrderStatusCancelled 已定义但当前没有接口触发
	OrderStatusCancelled OrderStatus = "cancelled"
)

// IsValid 判断订单状态是否合法
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusCreated,
		OrderStatusAccepted,
		OrderStatusPreparing,
		OrderStatusOnTheWay,
		OrderStatusDelivered,
		OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal 是否为终态
func (s OrderStatus) IsTerminal() bool {
	switch s {
	case OrderStatusDelivered, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

func (s OrderStatus) String() string {
	return string(s)
}

// FarmerVisibleStatuses 农户备货队列可见的订单状态
var FarmerVisibleStatuses = []OrderStatus{
	OrderStatusCreated,
	OrderStatusAccepted,
	OrderStatusPreparing,
}

// 队列名称
const (
	QueueDefault  = "default"
	QueueCritical = "critical"
)

// 异步任务类型
const (
	TaskOrderCreated       = "order:created"
	TaskOrderStatusChanged = "order:status_changed"
)

// 验证码场景
const (
	CaptchaSceneLogin    = "login"
	CaptchaSceneRegister = "register"
)

// 鉴权上下文键
const (
	ContextKeyUserID    = "user_id"
	ContextKeyUserEmail = "user_email"
	ContextKeyUserRole  = "user_role"
)
