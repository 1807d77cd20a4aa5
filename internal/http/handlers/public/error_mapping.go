package public

import (
	handlershared "github.com/fresh-groceries/internal/http/handlers/shared"
	"github.com/fresh-groceries/internal/http/response"
	"github.com/fresh-groceries/internal/service"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, code int, key string, err error) {
	handlershared.RespondError(c, code, key, err)
}

// 登录失败统一返回凭证错误，避免暴露账号是否存在
var loginErrorRules = []handlershared.MappedError{
	{Target: service.ErrInvalidEmail, Code: response.CodeUnauthorized, Key: "error.invalid_credentials"},
	{Target: service.ErrUserNotFound, Code: response.CodeUnauthorized, Key: "error.invalid_credentials"},
}

var orderCreateErrorRules = []handlershared.MappedError{
	{Target: service.ErrUserNotFound, Code: response.CodeUnauthorized, Key: "error.user_gone"},
}

func respondDomainError(c *gin.Context, err error) {
	handlershared.RespondDomainError(c, err)
}

func respondLoginError(c *gin.Context, err error) {
	rules := handlershared.ConcatMappedErrors(loginErrorRules, handlershared.DomainErrorRules)
	handlershared.RespondWithMappedError(c, err, rules, response.CodeInternal, "error.internal")
}

func respondOrderCreateError(c *gin.Context, err error) {
	rules := handlershared.ConcatMappedErrors(orderCreateErrorRules, handlershared.DomainErrorRules)
	handlershared.RespondWithMappedError(c, err, rules, response.CodeInternal, "error.internal")
}
