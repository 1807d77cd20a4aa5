package queue

import (
	"encoding/json"
	"time"

	"github.com/fresh-groceries/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskOrderCreated 订单创建通知任务
	TaskOrderCreated = constants.TaskOrderCreated
	// TaskOrderStatusChanged 订单状态变更通知任务
	TaskOrderStatusChanged = constants.TaskOrderStatusChanged
)

// OrderCreatedPayload 订单创建任务载荷
type OrderCreatedPayload struct {
	OrderID    uint      `json:"order_id"`
	UserID     uint      `json:"user_id"`
	TotalPrice string    `json:"total_price"`
	ItemCount  int       `json:"item_count"`
	CreatedAt  time.Time `json:"created_at"`
}

// OrderStatusChangedPayload 订单状态变更任务载荷
type OrderStatusChangedPayload struct {
	OrderID   uint                  `json:"order_id"`
	From      constants.OrderStatus `json:"from,omitempty"`
	To        constants.OrderStatus `json:"to"`
	ActorID   uint                  `json:"actor_id"`
	ActorRole constants.Role        `json:"actor_role"`
	ChangedAt time.Time             `json:"changed_at"`
}

// NewOrderCreatedTask 创建订单创建通知任务
func NewOrderCreatedTask(payload OrderCreatedPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderCreated, body), nil
}

// NewOrderStatusChangedTask 创建订单状态变更通知任务
func NewOrderStatusChangedTask(payload OrderStatusChangedPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderStatusChanged, body), nil
}
