package staff

import (
	"strings"

	"github.com/fresh-groceries/internal/constants"
	handlershared "github.com/fresh-groceries/internal/http/handlers/shared"
	"github.com/fresh-groceries/internal/http/response"

	"github.com/gin-gonic/gin"
)

// UpdateOrderStatusRequest 配送状态更新请求，status 也可通过查询参数传入
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// ReportLocationRequest 位置上报请求
type ReportLocationRequest struct {
	Lat *float64 `json:"lat" binding:"required"`
	Lng *float64 `json:"lng" binding:"required"`
}

// AvailableOrders 可抢订单列表
func (h *Handler) AvailableOrders(c *gin.Context) {
	if _, ok := handlershared.CurrentActor(c); !ok {
		return
	}
	pager := handlershared.ParsePagination(c)
	orders, total, err := h.CourierService.AvailableOrders(pager)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	response.SuccessWithPage(c, orders, response.BuildPagination(pager.Page, pager.PageSize, total))
}

// AcceptOrder 抢单
func (h *Handler) AcceptOrder(c *gin.Context) {
	actor, ok := handlershared.CurrentActor(c)
	if !ok {
		return
	}
	orderID, ok := handlershared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	order, err := h.CourierService.Accept(actor.UserID, orderID)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	handlershared.RequestLog(c).Infow("courier_order_accepted", "order_id", order.ID, "courier_id", actor.UserID)
	response.Success(c, order)
}

// MyOrders 骑手已接订单
func (h *Handler) MyOrders(c *gin.Context) {
	actor, ok := handlershared.CurrentActor(c)
	if !ok {
		return
	}
	pager := handlershared.ParsePagination(c)
	orders, total, err := h.CourierService.MyOrders(actor.UserID, pager)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	response.SuccessWithPage(c, orders, response.BuildPagination(pager.Page, pager.PageSize, total))
}

// UpdateOrderStatus 更新配送状态
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	actor, ok := handlershared.CurrentActor(c)
	if !ok {
		return
	}
	orderID, ok := handlershared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	raw := strings.TrimSpace(c.Query("status"))
	if raw == "" {
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			handlershared.RespondError(c, response.CodeBadRequest, "error.bad_request", nil)
			return
		}
		raw = strings.TrimSpace(req.Status)
	}
	if raw == "" {
		handlershared.RespondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	status := constants.OrderStatus(strings.ToLower(raw))
	order, err := h.CourierService.UpdateStatus(actor.UserID, actor.Role, orderID, status)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	response.Success(c, order)
}

// ReportLocation 上报骑手位置
func (h *Handler) ReportLocation(c *gin.Context) {
	actor, ok := handlershared.CurrentActor(c)
	if !ok {
		return
	}
	var req ReportLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Lat == nil || req.Lng == nil {
		handlershared.RespondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	location, err := h.CourierService.ReportLocation(actor.UserID, *req.Lat, *req.Lng)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	response.Success(c, location)
}

// GetLocation 查看自己最新位置
func (h *Handler) GetLocation(c *gin.Context) {
	actor, ok := handlershared.CurrentActor(c)
	if !ok {
		return
	}
	location, err := h.CourierService.GetLocation(actor.UserID)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	response.Success(c, location)
}
