package admin

import (
	handlershared "github.com/fresh-groceries/internal/http/handlers/shared"
	"github.com/fresh-groceries/internal/http/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func requestLog(c *gin.Context) *zap.SugaredLogger {
	return handlershared.RequestLog(c)
}

func respondError(c *gin.Context, code int, key string, err error) {
	handlershared.RespondError(c, code, key, err)
}

func respondDomainError(c *gin.Context, err error) {
	handlershared.RespondDomainError(c, err)
}

// 策略维护失败按参数错误返回，原因只写日志
func respondAuthzError(c *gin.Context, err error) {
	requestLog(c).Warnw("admin_authz_request_rejected", "error", err)
	respondError(c, response.CodeBadRequest, "error.bad_request", nil)
}
