package staff

import (
	handlershared "github.com/fresh-groceries/internal/http/handlers/shared"
	"github.com/fresh-groceries/internal/http/response"

	"github.com/gin-gonic/gin"
)

// FarmerOrders 待备货订单
func (h *Handler) FarmerOrders(c *gin.Context) {
	if _, ok := handlershared.CurrentActor(c); !ok {
		return
	}
	pager := handlershared.ParsePagination(c)
	orders, total, err := h.FarmerService.PendingOrders(pager)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	response.SuccessWithPage(c, orders, response.BuildPagination(pager.Page, pager.PageSize, total))
}

// FarmerProducts 农户自己的商品
func (h *Handler) FarmerProducts(c *gin.Context) {
	actor, ok := handlershared.CurrentActor(c)
	if !ok {
		return
	}
	pager := handlershared.ParsePagination(c)
	products, total, err := h.FarmerService.MyProducts(actor.UserID, pager)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	response.SuccessWithPage(c, products, response.BuildPagination(pager.Page, pager.PageSize, total))
}

// PrepareOrder 开始备货
func (h *Handler) PrepareOrder(c *gin.Context) {
	actor, ok := handlershared.CurrentActor(c)
	if !ok {
		return
	}
	orderID, ok := handlershared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	order, err := h.FarmerService.Prepare(actor.UserID, actor.Role, orderID)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	handlershared.RequestLog(c).Infow("farmer_order_preparing", "order_id", order.ID, "farmer_id", actor.UserID)
	response.Success(c, order)
}
