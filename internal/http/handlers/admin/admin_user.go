package admin

import (
	"strings"

	"github.com/fresh-groceries/internal/constants"
	handlershared "github.com/fresh-groceries/internal/http/handlers/shared"
	"github.com/fresh-groceries/internal/http/response"
	"github.com/fresh-groceries/internal/repository"

	"github.com/gin-gonic/gin"
)

// SetUserRoleRequest 修改角色请求
type SetUserRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// GetAdminUsers 用户列表，可按角色过滤
func (h *Handler) GetAdminUsers(c *gin.Context) {
	pager := handlershared.ParsePagination(c)
	users, total, err := h.UserAuthService.ListUsers(repository.UserListFilter{
		Page:     pager.Page,
		PageSize: pager.PageSize,
		Offset:   pager.Offset,
		Role:     constants.Role(strings.ToLower(strings.TrimSpace(c.Query("role")))),
		Search:   strings.TrimSpace(c.Query("search")),
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}
	response.SuccessWithPage(c, users, response.BuildPagination(pager.Page, pager.PageSize, total))
}

// SetUserRole 修改用户角色，旧 token 立即失效
func (h *Handler) SetUserRole(c *gin.Context) {
	userID, ok := handlershared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req SetUserRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	role := constants.Role(strings.ToLower(strings.TrimSpace(req.Role)))
	user, err := h.UserAuthService.SetUserRole(userID, role)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	requestLog(c).Infow("admin_user_role_updated",
		"operator_user_id", currentAdminID(c),
		"user_id", user.ID,
		"role", user.Role,
	)
	response.Success(c, user)
}
