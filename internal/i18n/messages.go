package i18n

var messages = map[string]map[string]string{
	LocaleEN: {
		"error.bad_request":             "Invalid request",
		"error.internal":                "Internal server error",
		"error.not_found":               "Resource not found",
		"error.product_not_found":       "Product not found",
		"error.product_id_invalid":      "Invalid product id",
		"error.category_not_found":      "Category not found",
		"error.cart_empty":              "Your cart is empty",
		"error.quantity_invalid":        "Invalid quantity",
		"error.checkout_not_started":    "Checkout has not been started",
		"error.checkout_step_invalid":   "This action is not available at the current checkout step",
		"error.payment_method_invalid":  "Unsupported payment method",
		"error.session_invalid":         "Session is invalid or expired",
		"error.session_unavailable":     "Session service unavailable",
		"error.rate_limited":            "Too many requests, please retry in %d seconds",
		"error.rate_limit_unavailable":  "Rate limiter unavailable",
		"error.checkout_submit_limited": "Too many order attempts, please retry in %d seconds",
		"message.order_placed":          "Order placed successfully! This is a demo.",
		"message.cart_updated":          "Cart updated",
		"message.checkout_discarded":    "Checkout discarded",
		"message.session_issued":        "Session created",
	},
	LocaleZH: {
		"error.bad_request":             "请求参数错误",
		"error.internal":                "服务器内部错误",
		"error.not_found":               "资源不存在",
		"error.product_not_found":       "商品不存在",
		"error.product_id_invalid":      "商品 ID 无效",
		"error.category_not_found":      "分类不存在",
		"error.cart_empty":              "购物车为空",
		"error.quantity_invalid":        "数量无效",
		"error.checkout_not_started":    "尚未开始结算",
		"error.checkout_step_invalid":   "当前结算步骤不允许该操作",
		"error.payment_method_invalid":  "不支持的支付方式",
		"error.session_invalid":         "会话无效或已过期",
		"error.session_unavailable":     "会话服务不可用",
		"error.rate_limited":            "请求过于频繁，请 %d 秒后重试",
		"error.rate_limit_unavailable":  "限流服务不可用",
		"error.checkout_submit_limited": "下单过于频繁，请 %d 秒后重试",
		"message.order_placed":          "下单成功！（演示订单）",
		"message.cart_updated":          "购物车已更新",
		"message.checkout_discarded":    "已放弃结算",
		"message.session_issued":        "会话已创建",
	},
}
