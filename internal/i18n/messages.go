package i18n

var messages = map[string]map[string]string{
	LocaleEN: {
		"common.success": "success",

		"error.bad_request":        "Invalid request",
		"error.id_invalid":         "Invalid id",
		"error.unauthorized":       "Not authenticated",
		"error.forbidden":          "Not enough permissions",
		"error.not_found":          "Not found",
		"error.route_not_found":    "Route not found",
		"error.internal":           "Internal server error",
		"error.rate_limited":       "Too many requests, retry in %d seconds",
		"error.login_rate_limited": "Too many login attempts, retry in %d seconds",
		"error.authz_unavailable":  "Authorization service unavailable",

		"error.auth_header_missing": "Missing authorization header",
		"error.auth_header_invalid": "Authorization header must be a bearer token",
		"error.token_invalid":       "Could not validate credentials",
		"error.token_revoked":       "Token has been revoked",
		"error.user_gone":           "User no longer exists",

		"error.invalid_credentials":      "Incorrect email or password",
		"error.email_invalid":            "Invalid email",
		"error.email_exists":             "Email already registered",
		"error.name_required":            "Name is required",
		"error.password_old_invalid":     "Old password is incorrect",
		"error.password_required":        "Password is required",
		"error.password_min_length":      "Password must be at least %d characters",
		"error.password_require_upper":   "Password must contain an uppercase letter",
		"error.password_require_lower":   "Password must contain a lowercase letter",
		"error.password_require_number":  "Password must contain a digit",
		"error.password_require_special": "Password must contain a special character",
		"error.role_invalid":             "Invalid role",
		"error.user_not_found":           "User not found",

		"error.captcha_required": "Captcha is required",
		"error.captcha_invalid":  "Captcha is invalid or expired",
		"error.captcha_disabled": "Captcha is disabled",

		"error.product_not_found":     "Product not found",
		"error.product_price_invalid": "Price must be positive and discount below price",
		"error.product_stock_invalid": "Stock cannot be negative",
		"error.product_in_use":        "Product is referenced by carts or orders",
		"error.category_not_found":    "Category not found",
		"error.category_exists":       "Category already exists",
		"error.supplier_not_found":    "Supplier not found",

		"error.cart_item_not_found":   "Item not found",
		"error.cart_quantity_invalid": "Quantity must be at least 1",
		"error.cart_changed":          "Cart changed during checkout, please retry",

		"error.cart_empty":              "Cart is empty",
		"error.order_not_found":         "Order not found",
		"error.order_forbidden":         "Not authorized",
		"error.order_not_available":     "Order not available or already assigned",
		"error.order_cannot_prepare":    "Order cannot be prepared in its current state",
		"error.order_status_invalid":    "Invalid order status",
		"error.order_address_required":  "Delivery address is required",
		"error.payment_method_required": "Payment method is required",

		"error.courier_location_invalid":   "Latitude must be within [-90, 90] and longitude within [-180, 180]",
		"error.courier_location_not_found": "Location not reported yet",

		"error.feedback_not_found":      "Feedback not found",
		"error.feedback_exists":         "Feedback already submitted for this order",
		"error.feedback_not_allowed":    "Feedback is allowed only for delivered orders",
		"error.feedback_rating_invalid": "Rating must be between 1 and 5",
	},
	LocaleZhCN: {
		"common.success": "成功",

		"error.bad_request":        "请求参数错误",
		"error.id_invalid":         "ID 无效",
		"error.unauthorized":       "未登录",
		"error.forbidden":          "权限不足",
		"error.not_found":          "资源不存在",
		"error.route_not_found":    "接口不存在",
		"error.internal":           "服务器内部错误",
		"error.rate_limited":       "请求过于频繁，请 %d 秒后重试",
		"error.login_rate_limited": "登录尝试过多，请 %d 秒后重试",
		"error.authz_unavailable":  "授权服务不可用",

		"error.auth_header_missing": "缺少认证信息",
		"error.auth_header_invalid": "认证信息必须为 Bearer Token",
		"error.token_invalid":       "登录凭证无效",
		"error.token_revoked":       "登录凭证已失效",
		"error.user_gone":           "用户不存在",

		"error.invalid_credentials":      "邮箱或密码错误",
		"error.email_invalid":            "邮箱格式错误",
		"error.email_exists":             "邮箱已注册",
		"error.name_required":            "名称不能为空",
		"error.password_old_invalid":     "原密码错误",
		"error.password_required":        "密码不能为空",
		"error.password_min_length":      "密码长度至少 %d 位",
		"error.password_require_upper":   "密码需包含大写字母",
		"error.password_require_lower":   "密码需包含小写字母",
		"error.password_require_number":  "密码需包含数字",
		"error.password_require_special": "密码需包含特殊字符",
		"error.role_invalid":             "角色无效",
		"error.user_not_found":           "用户不存在",

		"error.captcha_required": "请填写验证码",
		"error.captcha_invalid":  "验证码错误或已过期",
		"error.captcha_disabled": "验证码未启用",

		"error.product_not_found":     "商品不存在",
		"error.product_price_invalid": "价格须大于 0 且折扣价低于标价",
		"error.product_stock_invalid": "库存不能为负数",
		"error.product_in_use":        "商品已被购物车或订单引用",
		"error.category_not_found":    "分类不存在",
		"error.category_exists":       "分类已存在",
		"error.supplier_not_found":    "供应商不存在",

		"error.cart_item_not_found":   "购物车项不存在",
		"error.cart_quantity_invalid": "数量至少为 1",
		"error.cart_changed":          "购物车已变更，请重试",

		"error.cart_empty":              "购物车为空",
		"error.order_not_found":         "订单不存在",
		"error.order_forbidden":         "无权访问该订单",
		"error.order_not_available":     "订单不可接或已被接单",
		"error.order_cannot_prepare":    "订单当前状态不可备货",
		"error.order_status_invalid":    "订单状态无效",
		"error.order_address_required":  "请填写收货地址",
		"error.payment_method_required": "请选择支付方式",

		"error.courier_location_invalid":   "纬度须在 [-90, 90]，经度须在 [-180, 180]",
		"error.courier_location_not_found": "尚未上报位置",

		"error.feedback_not_found":      "评价不存在",
		"error.feedback_exists":         "该订单已评价",
		"error.feedback_not_allowed":    "仅已送达订单可评价",
		"error.feedback_rating_invalid": "评分须在 1 到 5 之间",
	},
}
