package public

import (
	"github.com/fresh-groceries/internal/http/response"
	"github.com/fresh-groceries/internal/service"

	"github.com/gin-gonic/gin"
)

// SubmitFeedbackRequest 订单评价请求
type SubmitFeedbackRequest struct {
	OrderID uint   `json:"order_id" binding:"required"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// SubmitFeedback 提交订单评价
func (h *Handler) SubmitFeedback(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req SubmitFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	feedback, err := h.FeedbackService.Submit(service.SubmitFeedbackInput{
		UserID:  actor.UserID,
		OrderID: req.OrderID,
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}
	response.Success(c, feedback)
}

// GetOrderFeedback 查看订单评价
func (h *Handler) GetOrderFeedback(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	feedback, err := h.FeedbackService.GetForOrder(actor, id)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	response.Success(c, feedback)
}
