package admin

import (
	"strings"

	"github.com/fresh-groceries/internal/constants"
	handlershared "github.com/fresh-groceries/internal/http/handlers/shared"
	"github.com/fresh-groceries/internal/http/response"
	"github.com/fresh-groceries/internal/service"

	"github.com/gin-gonic/gin"
)

// AdminListOrders 全部订单列表
func (h *Handler) AdminListOrders(c *gin.Context) {
	pager := handlershared.ParsePagination(c)
	userID, ok := handlershared.ParseOptionalUintQuery(c, "user_id")
	if !ok {
		return
	}

	orders, total, err := h.OrderService.ListAll(service.AdminOrderFilter{
		Page:     pager.Page,
		PageSize: pager.PageSize,
		Offset:   pager.Offset,
		Status:   constants.OrderStatus(strings.ToLower(strings.TrimSpace(c.Query("status")))),
		UserID:   userID,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}
	response.SuccessWithPage(c, orders, response.BuildPagination(pager.Page, pager.PageSize, total))
}
