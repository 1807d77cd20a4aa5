package service

import "errors"

// 通用错误
var (
	ErrNotFound    = errors.New("not found")
	ErrInvalidID   = errors.New("invalid id")
	ErrInvalidPage = errors.New("invalid pagination")
)

// 认证与用户
var (
	ErrInvalidToken       = errors.New("invalid token")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidEmail       = errors.New("invalid email")
	ErrEmailExists        = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserDisabled       = errors.New("user no longer exists")
	ErrInvalidPassword    = errors.New("invalid old password")
	ErrWeakPassword       = errors.New("password does not satisfy policy")
	ErrRoleInvalid        = errors.New("invalid role")
	ErrNameRequired       = errors.New("name is required")
)

// 验证码
var (
	ErrCaptchaRequired = errors.New("captcha required")
	ErrCaptchaInvalid  = errors.New("captcha invalid")
	ErrCaptchaDisabled = errors.New("captcha disabled")
)

// 商品目录
var (
	ErrProductNotFound     = errors.New("product not found")
	ErrProductPriceInvalid = errors.New("product price invalid")
	ErrProductStockInvalid = errors.New("product stock invalid")
	ErrProductInUse        = errors.New("product is referenced by carts or orders")
	ErrCategoryNotFound    = errors.New("category not found")
	ErrCategoryExists      = errors.New("category already exists")
	ErrSupplierNotFound    = errors.New("supplier not found")
	ErrProductFetchFailed  = errors.New("product fetch failed")
	ErrProductCreateFailed = errors.New("product create failed")
	ErrProductUpdateFailed = errors.New("product update failed")
	ErrProductDeleteFailed = errors.New("product delete failed")
)

// 购物车
var (
	ErrCartItemNotFound    = errors.New("item not found")
	ErrInvalidCartQuantity = errors.New("cart quantity must be at least 1")
	ErrCartChanged         = errors.New("cart changed during checkout")
)

// 订单
var (
	ErrEmptyCart            = errors.New("cart is empty")
	ErrOrderNotFound        = errors.New("order not found")
	ErrOrderForbidden       = errors.New("not authorized for this order")
	ErrOrderNotAvailable    = errors.New("order not available or already assigned")
	ErrOrderCannotPrepare   = errors.New("order cannot be prepared in current state")
	ErrOrderStatusInvalid   = errors.New("order status invalid")
	ErrOrderAddressRequired = errors.New("delivery address required")
	ErrPaymentMethodInvalid = errors.New("payment method required")
	ErrOrderCreateFailed    = errors.New("order create failed")
	ErrOrderFetchFailed     = errors.New("order fetch failed")
	ErrOrderUpdateFailed    = errors.New("order update failed")
)

// 骑手位置
var (
	ErrCourierLocationInvalid  = errors.New("courier location out of range")
	ErrCourierLocationNotFound = errors.New("courier location not found")
)

// 评价
var (
	ErrFeedbackNotFound      = errors.New("feedback not found")
	ErrFeedbackExists        = errors.New("feedback already submitted")
	ErrFeedbackNotAllowed    = errors.New("feedback allowed only for delivered orders")
	ErrFeedbackRatingInvalid = errors.New("rating must be between 1 and 5")
)
