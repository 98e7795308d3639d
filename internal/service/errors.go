package service

import (
	"errors"

	"github.com/everbuy/internal/checkout"
	"github.com/everbuy/internal/session"
)

var (
	// ErrProductNotFound 商品不存在
	ErrProductNotFound = errors.New("product not found")
	// ErrCategoryNotFound 分类不存在
	ErrCategoryNotFound = errors.New("category not found")
	// ErrEmptyCart 购物车为空
	ErrEmptyCart = checkout.ErrEmptyCart
	// ErrCheckoutNotStarted 尚未开始结算
	ErrCheckoutNotStarted = errors.New("checkout not started")
	// ErrCheckoutStepInvalid 当前步骤不允许该操作
	ErrCheckoutStepInvalid = checkout.ErrStepInvalid
	// ErrPaymentMethodInvalid 支付方式无效
	ErrPaymentMethodInvalid = checkout.ErrPaymentMethodInvalid
	// ErrInvalidQuantity 数量无效
	ErrInvalidQuantity = errors.New("invalid quantity")
	// ErrSessionInvalid 会话无效
	ErrSessionInvalid = session.ErrTokenInvalid
	// ErrPricingConfigInvalid 价格配置无效
	ErrPricingConfigInvalid = errors.New("pricing config invalid")
)
