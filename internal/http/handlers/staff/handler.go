package staff

import (
	handlershared "github.com/fresh-groceries/internal/http/handlers/shared"
	"github.com/fresh-groceries/internal/provider"

	"github.com/gin-gonic/gin"
)

// Handler 骑手与农户接口处理器
// 路由层已通过角色门禁，这里只处理业务
type Handler struct {
	*provider.Container
}

// New 创建骑手/农户处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}

func respondDomainError(c *gin.Context, err error) {
	handlershared.RespondDomainError(c, err)
}
