package shared

import (
	"errors"

	"github.com/fresh-groceries/internal/http/response"
	"github.com/fresh-groceries/internal/i18n"
	"github.com/fresh-groceries/internal/logger"
	"github.com/fresh-groceries/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLog 提供携带 request_id 的日志实例。
func RequestLog(c *gin.Context) *zap.SugaredLogger {
	if c == nil {
		return logger.S()
	}
	if requestID, ok := c.Get("request_id"); ok {
		if id, ok := requestID.(string); ok && id != "" {
			return logger.SW("request_id", id)
		}
	}
	return logger.S()
}

// RespondError 返回国际化错误响应，并在有原始错误时记录日志。
func RespondError(c *gin.Context, code int, key string, err error) {
	RespondErrorWithMsg(c, code, i18n.T(i18n.ResolveLocale(c), key), err)
}

// RespondErrorWithMsg 返回自定义消息错误响应，并在有原始错误时记录日志。
// 401/403/404/429 使用真实 HTTP 状态码，其余业务错误保持 HTTP 200。
func RespondErrorWithMsg(c *gin.Context, code int, msg string, err error) {
	if err != nil {
		RequestLog(c).Errorw("handler_error",
			"code", code,
			"message", msg,
			"error", err,
		)
	}
	response.Fail(c, code, msg)
}

// MappedError 定义业务错误到接口错误响应的映射关系。
type MappedError struct {
	Target error
	Code   int
	Key    string
}

// RespondWithMappedError 按规则表翻译业务错误，未命中时记录原始错误并使用兜底响应。
func RespondWithMappedError(c *gin.Context, err error, rules []MappedError, fallbackCode int, fallbackKey string) {
	if key, args, ok := service.PasswordPolicyViolation(err); ok {
		RespondErrorWithMsg(c, response.CodeBadRequest, i18n.Sprintf(i18n.ResolveLocale(c), key, args...), nil)
		return
	}
	for _, rule := range rules {
		if errors.Is(err, rule.Target) {
			RespondError(c, rule.Code, rule.Key, nil)
			return
		}
	}
	RespondError(c, fallbackCode, fallbackKey, err)
}

// ConcatMappedErrors 合并多组映射规则。
func ConcatMappedErrors(groups ...[]MappedError) []MappedError {
	total := 0
	for _, group := range groups {
		total += len(group)
	}
	result := make([]MappedError, 0, total)
	for _, group := range groups {
		result = append(result, group...)
	}
	return result
}

// DomainErrorRules 各端通用的业务错误映射
var DomainErrorRules = []MappedError{
	{Target: service.ErrInvalidToken, Code: response.CodeUnauthorized, Key: "error.token_invalid"},
	{Target: service.ErrInvalidCredentials, Code: response.CodeUnauthorized, Key: "error.invalid_credentials"},
	{Target: service.ErrUserDisabled, Code: response.CodeUnauthorized, Key: "error.user_gone"},
	{Target: service.ErrOrderForbidden, Code: response.CodeForbidden, Key: "error.order_forbidden"},
	{Target: service.ErrNotFound, Code: response.CodeNotFound, Key: "error.not_found"},
	{Target: service.ErrUserNotFound, Code: response.CodeNotFound, Key: "error.user_not_found"},
	{Target: service.ErrProductNotFound, Code: response.CodeNotFound, Key: "error.product_not_found"},
	{Target: service.ErrCategoryNotFound, Code: response.CodeNotFound, Key: "error.category_not_found"},
	{Target: service.ErrSupplierNotFound, Code: response.CodeNotFound, Key: "error.supplier_not_found"},
	{Target: service.ErrCartItemNotFound, Code: response.CodeNotFound, Key: "error.cart_item_not_found"},
	{Target: service.ErrOrderNotFound, Code: response.CodeNotFound, Key: "error.order_not_found"},
	{Target: service.ErrCourierLocationNotFound, Code: response.CodeNotFound, Key: "error.courier_location_not_found"},
	{Target: service.ErrFeedbackNotFound, Code: response.CodeNotFound, Key: "error.feedback_not_found"},
	{Target: service.ErrInvalidID, Code: response.CodeBadRequest, Key: "error.id_invalid"},
	{Target: service.ErrInvalidEmail, Code: response.CodeBadRequest, Key: "error.email_invalid"},
	{Target: service.ErrNameRequired, Code: response.CodeBadRequest, Key: "error.name_required"},
	{Target: service.ErrInvalidPassword, Code: response.CodeBadRequest, Key: "error.password_old_invalid"},
	{Target: service.ErrRoleInvalid, Code: response.CodeBadRequest, Key: "error.role_invalid"},
	{Target: service.ErrCaptchaRequired, Code: response.CodeBadRequest, Key: "error.captcha_required"},
	{Target: service.ErrCaptchaInvalid, Code: response.CodeBadRequest, Key: "error.captcha_invalid"},
	{Target: service.ErrCaptchaDisabled, Code: response.CodeBadRequest, Key: "error.captcha_disabled"},
	{Target: service.ErrProductPriceInvalid, Code: response.CodeBadRequest, Key: "error.product_price_invalid"},
	{Target: service.ErrProductStockInvalid, Code: response.CodeBadRequest, Key: "error.product_stock_invalid"},
	{Target: service.ErrInvalidCartQuantity, Code: response.CodeBadRequest, Key: "error.cart_quantity_invalid"},
	{Target: service.ErrEmptyCart, Code: response.CodeBadRequest, Key: "error.cart_empty"},
	{Target: service.ErrCartChanged, Code: response.CodeConflict, Key: "error.cart_changed"},
	{Target: service.ErrOrderNotAvailable, Code: response.CodeBadRequest, Key: "error.order_not_available"},
	{Target: service.ErrOrderCannotPrepare, Code: response.CodeBadRequest, Key: "error.order_cannot_prepare"},
	{Target: service.ErrOrderStatusInvalid, Code: response.CodeBadRequest, Key: "error.order_status_invalid"},
	{Target: service.ErrOrderAddressRequired, Code: response.CodeBadRequest, Key: "error.order_address_required"},
	{Target: service.ErrPaymentMethodInvalid, Code: response.CodeBadRequest, Key: "error.payment_method_required"},
	{Target: service.ErrCourierLocationInvalid, Code: response.CodeBadRequest, Key: "error.courier_location_invalid"},
	{Target: service.ErrFeedbackNotAllowed, Code: response.CodeBadRequest, Key: "error.feedback_not_allowed"},
	{Target: service.ErrFeedbackRatingInvalid, Code: response.CodeBadRequest, Key: "error.feedback_rating_invalid"},
	{Target: service.ErrEmailExists, Code: response.CodeConflict, Key: "error.email_exists"},
	{Target: service.ErrCategoryExists, Code: response.CodeConflict, Key: "error.category_exists"},
	{Target: service.ErrFeedbackExists, Code: response.CodeConflict, Key: "error.feedback_exists"},
	{Target: service.ErrProductInUse, Code: response.CodeConflict, Key: "error.product_in_use"},
}

// RespondDomainError 使用通用规则翻译业务错误。
func RespondDomainError(c *gin.Context, err error) {
	RespondWithMappedError(c, err, DomainErrorRules, response.CodeInternal, "error.internal")
}
