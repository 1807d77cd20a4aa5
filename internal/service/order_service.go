package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/fresh-groceries/internal/constants"
	"github.com/fresh-groceries/internal/logger"
	"github.com/fresh-groceries/internal/models"
	"github.com/fresh-groceries/internal/queue"
	"github.com/fresh-groceries/internal/repository"

	"github.com/hibiken/asynq"
	"gorm.io/gorm"
)

// OrderEventPublisher 订单事件投递
type OrderEventPublisher interface {
	EnqueueOrderCreated(payload queue.OrderCreatedPayload, opts ...asynq.Option) error
	EnqueueOrderStatusChanged(payload queue.OrderStatusChangedPayload, opts ...asynq.Option) error
}

// OrderService 订单服务
type OrderService struct {
	orderRepo repository.OrderRepository
	cartRepo  repository.CartRepository
	userRepo  repository.UserRepository
	events    OrderEventPublisher
}

// NewOrderService 创建订单服务
func NewOrderService(orderRepo repository.OrderRepository, cartRepo repository.CartRepository, userRepo repository.UserRepository, events OrderEventPublisher) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		cartRepo:  cartRepo,
		userRepo:  userRepo,
		events:    events,
	}
}

// CreateOrderInput 下单参数
type CreateOrderInput struct {
	UserID        uint
	Address       string
	PaymentMethod string
}

// Create 将购物车转为订单，价格按下单时的有效单价快照
func (s *OrderService) Create(input CreateOrderInput) (*models.Order, error) {
	paymentMethod := strings.TrimSpace(input.PaymentMethod)
	if paymentMethod == "" {
		return nil, ErrPaymentMethodInvalid
	}
	address, err := s.resolveAddress(input.UserID, input.Address)
	if err != nil {
		return nil, err
	}

	var order *models.Order
	err = models.DB.Transaction(func(tx *gorm.DB) error {
		cartRepo := s.cartRepo.WithTx(tx)
		items, err := cartRepo.ListByUserForUpdate(input.UserID)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			return ErrEmptyCart
		}

		total := models.ZeroMoney()
		orderItems := make([]models.OrderItem, 0, len(items))
		itemIDs := make([]uint, 0, len(items))
		for _, item := range items {
			itemIDs = append(itemIDs, item.ID)
			if item.Product == nil {
				return ErrProductNotFound
			}
			price := item.Product.EffectivePrice()
			total = total.Add(price.MulInt(item.Quantity))
			orderItems = append(orderItems, models.OrderItem{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				Price:     price,
			})
		}

		created := &models.Order{
			UserID:        input.UserID,
			Status:        constants.OrderStatusCreated,
			TotalPrice:    total,
			PaymentMethod: paymentMethod,
			Address:       address,
		}
		if err := s.orderRepo.WithTx(tx).Create(created, orderItems); err != nil {
			return fmt.Errorf("%w: %v", ErrOrderCreateFailed, err)
		}
		// 只删除本次读到的购物车项；数量不符说明已被并发下单消费
		cleared, err := cartRepo.ClearByUser(input.UserID, itemIDs...)
		if err != nil {
			return err
		}
		if cleared != int64(len(itemIDs)) {
			return ErrCartChanged
		}
		order = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Infow("order_created", "order_id", order.ID, "user_id", order.UserID, "total_price", order.TotalPrice.String(), "items", len(order.Items))
	s.publishCreated(order)

	full, err := s.orderRepo.GetByID(order.ID)
	if err != nil || full == nil {
		return order, nil
	}
	return full, nil
}

func (s *OrderService) resolveAddress(userID uint, address string) (string, error) {
	address = strings.TrimSpace(address)
	if address != "" {
		return address, nil
	}
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return "", err
	}
	if user == nil || strings.TrimSpace(user.Address) == "" {
		return "", ErrOrderAddressRequired
	}
	return strings.TrimSpace(user.Address), nil
}

// AssignToCourier 骑手抢单，并发调用时只有一个成功
func (s *OrderService) AssignToCourier(orderID, courierID uint) (*models.Order, error) {
	claimed, err := s.orderRepo.ClaimUnassigned(orderID, courierID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOrderUpdateFailed, err)
	}
	if !claimed {
		order, err := s.orderRepo.GetByID(orderID)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrOrderFetchFailed, err)
		}
		if order == nil {
			return nil, ErrOrderNotFound
		}
		logger.Debugw("order_claim_conflict", "order_id", orderID, "courier_id", courierID)
		return nil, ErrOrderNotAvailable
	}

	s.publishStatusChanged(orderID, constants.OrderStatusCreated, constants.OrderStatusAccepted, Actor{UserID: courierID, Role: constants.RoleCourier})
	return s.mustGet(orderID)
}

// UnassignedOrders 待抢订单：未分配骑手且处于 created
func (s *OrderService) UnassignedOrders(pager repository.Pagination) ([]models.Order, int64, error) {
	return s.orderRepo.List(repository.OrderListFilter{
		Page:       pager.Page,
		PageSize:   pager.PageSize,
		Offset:     pager.Offset,
		Unassigned: true,
		Statuses:   []constants.OrderStatus{constants.OrderStatusCreated},
	})
}

// SetStatus 骑手修改自己订单的状态，任意合法状态均可写入
func (s *OrderService) SetStatus(actor Actor, orderID uint, status constants.OrderStatus) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOrderFetchFailed, err)
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if order.CourierID == nil || *order.CourierID != actor.UserID {
		return nil, ErrOrderForbidden
	}
	if !status.IsValid() {
		return nil, ErrOrderStatusInvalid
	}

	if _, err := s.orderRepo.UpdateStatus(orderID, status); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOrderUpdateFailed, err)
	}
	if order.Status != status && !isTransitionAllowed(order.Status, status) {
		logger.Infow("order_status_off_graph", "order_id", orderID, "from", order.Status, "to", status, "courier_id", actor.UserID)
	}
	s.publishStatusChanged(orderID, order.Status, status, actor)
	return s.mustGet(orderID)
}

// Prepare 农户开始备货
func (s *OrderService) Prepare(actor Actor, orderID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOrderFetchFailed, err)
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if !isTransitionAllowed(order.Status, constants.OrderStatusPreparing) {
		return nil, ErrOrderCannotPrepare
	}
	ok, err := s.orderRepo.TransitionStatus(orderID, sourceStatusesFor(constants.OrderStatusPreparing), constants.OrderStatusPreparing)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOrderUpdateFailed, err)
	}
	if !ok {
		return nil, ErrOrderCannotPrepare
	}
	s.publishStatusChanged(orderID, order.Status, constants.OrderStatusPreparing, actor)
	return s.mustGet(orderID)
}

// GetForViewer 查看订单：本人、管理员与骑手可见
func (s *OrderService) GetForViewer(viewer Actor, orderID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOrderFetchFailed, err)
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if !canViewOrder(viewer, order) {
		return nil, ErrOrderForbidden
	}
	return order, nil
}

func canViewOrder(viewer Actor, order *models.Order) bool {
	if order.UserID == viewer.UserID {
		return true
	}
	switch viewer.Role {
	case constants.RoleAdmin, constants.RoleCourier:
		return true
	default:
		return false
	}
}

// ListByUser 用户自己的订单
func (s *OrderService) ListByUser(userID uint, pager repository.Pagination) ([]models.Order, int64, error) {
	return s.orderRepo.List(repository.OrderListFilter{
		Page:     pager.Page,
		PageSize: pager.PageSize,
		Offset:   pager.Offset,
		UserID:   userID,
	})
}

// ListByCourier 骑手已接订单
func (s *OrderService) ListByCourier(courierID uint, pager repository.Pagination) ([]models.Order, int64, error) {
	return s.orderRepo.List(repository.OrderListFilter{
		Page:      pager.Page,
		PageSize:  pager.PageSize,
		Offset:    pager.Offset,
		CourierID: courierID,
	})
}

// ListFarmerQueue 农户备货队列
func (s *OrderService) ListFarmerQueue(pager repository.Pagination) ([]models.Order, int64, error) {
	return s.orderRepo.List(repository.OrderListFilter{
		Page:     pager.Page,
		PageSize: pager.PageSize,
		Offset:   pager.Offset,
		Statuses: constants.FarmerVisibleStatuses,
	})
}

// AdminOrderFilter 管理端订单筛选
type AdminOrderFilter struct {
	Page     int
	PageSize int
	Offset   int
	Status   constants.OrderStatus
	UserID   uint
}

// ListAll 管理端全部订单
func (s *OrderService) ListAll(filter AdminOrderFilter) ([]models.Order, int64, error) {
	query := repository.OrderListFilter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		Offset:   filter.Offset,
		UserID:   filter.UserID,
	}
	if filter.Status != "" {
		if !filter.Status.IsValid() {
			return nil, 0, ErrOrderStatusInvalid
		}
		query.Statuses = []constants.OrderStatus{filter.Status}
	}
	return s.orderRepo.List(query)
}

func (s *OrderService) mustGet(orderID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOrderFetchFailed, err)
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

func (s *OrderService) publishCreated(order *models.Order) {
	if s.events == nil || order == nil {
		return
	}
	err := s.events.EnqueueOrderCreated(queue.OrderCreatedPayload{
		OrderID:    order.ID,
		UserID:     order.UserID,
		TotalPrice: order.TotalPrice.String(),
		ItemCount:  len(order.Items),
		CreatedAt:  order.CreatedAt,
	})
	if err != nil {
		logger.Warnw("order_created_enqueue_failed", "order_id", order.ID, "error", err)
	}
}

func (s *OrderService) publishStatusChanged(orderID uint, from, to constants.OrderStatus, actor Actor) {
	if s.events == nil {
		return
	}
	err := s.events.EnqueueOrderStatusChanged(queue.OrderStatusChangedPayload{
		OrderID:   orderID,
		From:      from,
		To:        to,
		ActorID:   actor.UserID,
		ActorRole: actor.Role,
		ChangedAt: time.Now(),
	})
	if err != nil {
		logger.Warnw("order_status_changed_enqueue_failed", "order_id", orderID, "to", to, "error", err)
	}
}
