package public

import (
	handlershared "github.com/fresh-groceries/internal/http/handlers/shared"
	"github.com/fresh-groceries/internal/http/response"
	"github.com/fresh-groceries/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateOrderRequest 下单请求，地址为空时使用用户默认地址
type CreateOrderRequest struct {
	Address       string `json:"address"`
	PaymentMethod string `json:"payment_method"`
}

// CreateOrder 将购物车结算为订单
func (h *Handler) CreateOrder(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	order, err := h.OrderService.Create(service.CreateOrderInput{
		UserID:        actor.UserID,
		Address:       req.Address,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		respondOrderCreateError(c, err)
		return
	}
	handlershared.RequestLog(c).Infow("order_created", "order_id", order.ID, "user_id", actor.UserID, "total_price", order.TotalPrice.String())
	response.Success(c, order)
}

// ListOrders 当前用户订单列表
func (h *Handler) ListOrders(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	pager := handlershared.ParsePagination(c)
	orders, total, err := h.OrderService.ListByUser(actor.UserID, pager)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	response.SuccessWithPage(c, orders, response.BuildPagination(pager.Page, pager.PageSize, total))
}

// GetOrder 订单详情（下单人、管理员、骑手可见）
func (h *Handler) GetOrder(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	order, err := h.OrderService.GetForViewer(actor, id)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	response.Success(c, order)
}
