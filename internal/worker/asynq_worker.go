package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fresh-groceries/internal/constants"
	"github.com/fresh-groceries/internal/logger"
	"github.com/fresh-groceries/internal/provider"
	"github.com/fresh-groceries/internal/queue"
	"github.com/fresh-groceries/internal/repository"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskOrderCreated, c.handleOrderCreated)
	mux.HandleFunc(queue.TaskOrderStatusChanged, c.handleOrderStatusChanged)
}

// handleOrderCreated 新订单进入骑手抢单池
func (c *Consumer) handleOrderCreated(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_order_created_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.OrderCreatedPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_order_created_unmarshal_failed", "error", err)
		return fmt.Errorf("decode order created payload: %v: %w", err, asynq.SkipRetry)
	}
	if payload.OrderID == 0 {
		logger.Debugw("worker_order_created_skip_invalid_payload", "order_id", payload.OrderID)
		return nil
	}

	order, err := c.OrderRepo.GetByID(payload.OrderID)
	if err != nil {
		logger.Warnw("worker_order_created_fetch_order_failed", "order_id", payload.OrderID, "error", err)
		return err
	}
	if order == nil {
		logger.Debugw("worker_order_created_skip_order_not_found", "order_id", payload.OrderID)
		return nil
	}
	if order.CourierID != nil || order.Status != constants.OrderStatusCreated {
		logger.Debugw("worker_order_created_already_claimed",
			"order_id", order.ID,
			"status", order.Status,
		)
		return nil
	}

	logger.Infow("worker_order_dispatch_open",
		"order_id", order.ID,
		"user_id", order.UserID,
		"total_price", order.TotalPrice.String(),
		"item_count", len(order.Items),
		"address", order.Address,
	)
	return nil
}

// handleOrderStatusChanged 状态变更通知；送达后提示用户评价
func (c *Consumer) handleOrderStatusChanged(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_order_status_changed_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.OrderStatusChangedPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_order_status_changed_unmarshal_failed", "error", err)
		return fmt.Errorf("decode order status payload: %v: %w", err, asynq.SkipRetry)
	}
	if payload.OrderID == 0 || !payload.To.IsValid() {
		logger.Debugw("worker_order_status_changed_skip_invalid_payload", "order_id", payload.OrderID, "to", payload.To)
		return nil
	}

	order, err := c.OrderRepo.GetByID(payload.OrderID)
	if err != nil {
		logger.Warnw("worker_order_status_changed_fetch_order_failed", "order_id", payload.OrderID, "error", err)
		return err
	}
	if order == nil {
		logger.Debugw("worker_order_status_changed_skip_order_not_found", "order_id", payload.OrderID)
		return nil
	}
	if order.Status != payload.To {
		// 任务排队期间订单已再次变更，以最新的那条通知为准
		logger.Debugw("worker_order_status_changed_superseded",
			"order_id", order.ID,
			"event_to", payload.To,
			"current", order.Status,
		)
		return nil
	}

	logger.Infow("worker_order_status_notified",
		"order_id", order.ID,
		"user_id", order.UserID,
		"from", payload.From,
		"to", payload.To,
		"actor_id", payload.ActorID,
		"actor_role", payload.ActorRole,
	)
	if order.Status == constants.OrderStatusDelivered {
		c.inviteFeedback(order.ID, order.UserID)
	}
	return nil
}

func (c *Consumer) inviteFeedback(orderID, userID uint) {
	if c.FeedbackRepo == nil {
		return
	}
	existing, err := c.FeedbackRepo.GetByOrderID(orderID)
	if err != nil {
		logger.Warnw("worker_feedback_lookup_failed", "order_id", orderID, "error", err)
		return
	}
	if existing != nil {
		return
	}
	logger.Infow("worker_feedback_invite", "order_id", orderID, "user_id", userID)
}

// reportDispatchBacklog 统计待抢单数量，返回积压总数
func (c *Consumer) reportDispatchBacklog() int64 {
	if c == nil || c.OrderService == nil {
		return 0
	}
	orders, total, err := c.OrderService.UnassignedOrders(repository.Pagination{Page: 1, PageSize: 1})
	if err != nil {
		logger.Warnw("worker_dispatch_backlog_query_failed", "error", err)
		return 0
	}
	if total == 0 {
		return 0
	}
	fields := []interface{}{"total", total}
	if len(orders) > 0 {
		fields = append(fields, "latest_order_id", orders[0].ID, "latest_created_at", orders[0].CreatedAt)
	}
	logger.Warnw("worker_dispatch_backlog", fields...)
	return total
}
