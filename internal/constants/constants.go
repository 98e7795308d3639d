package constants

// 商品列表排序常量
const (
	SortFeatured  = "featured"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortRating    = "rating"
	SortName      = "name"
)

// 商品列表筛选默认值
const (
	CategoryAll = "all"
)

// 商品角标常量
const (
	BadgeBestSeller = "Best Seller"
	BadgeNew        = "New"
	BadgeSale       = "Sale"
	BadgePopular    = "Popular"
	BadgeGaming     = "Gaming"
)

// 结算步骤常量
const (
	CheckoutStepShipping = 1
	CheckoutStepPayment  = 2
	CheckoutStepReview   = 3
)

// 支付方式常量（仅模拟，不接入真实支付）
const (
	PaymentMethodCard   = "card"
	PaymentMethodPaypal = "paypal"
)

// 结算草稿默认值
const (
	CheckoutDefaultCountry = "US"
)

// 空状态恢复动作
const (
	RecoveryReturnHome       = "return_home"
	RecoveryContinueShopping = "continue_shopping"
	RecoveryResetFilters     = "reset_filters"
)

// 订单提示文案
const (
	OrderPlacedMessage = "Order placed successfully! This is a demo."
	OrderNoPrefix      = "EB"
)

// 队列常量
const (
	QueueDefault    = "default"
	TaskOrderPlaced = "order:placed"
)

// 会话常量
const (
	SessionContextKey  = "session"
	SessionTokenHeader = "X-Session-Token"
	SessionCookieName  = "eb_session"
)
