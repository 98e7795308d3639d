package public

import (
	"errors"

	"github.com/everbuy/internal/constants"
	handlershared "github.com/everbuy/internal/http/handlers/shared"
	"github.com/everbuy/internal/http/response"
	"github.com/everbuy/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError 定义业务错误到接口错误响应的映射关系。
type mappedHandlerError struct {
	target   error
	code     int
	key      string
	recovery string
}

// mapHandlerError 将业务错误转换为 AppError；已是 AppError 时原样返回
func mapHandlerError(err error, rules []mappedHandlerError, fallbackCode int, fallbackKey string) *response.AppError {
	if appErr, ok := response.AsAppError(err); ok {
		return appErr
	}
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			appErr := response.NewAppError(rule.code, rule.key, nil)
			if rule.recovery != "" {
				appErr = appErr.WithRecovery(rule.recovery)
			}
			return appErr
		}
	}
	return response.NewAppError(fallbackCode, fallbackKey, err)
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackKey string) {
	handlershared.RespondAppError(c, mapHandlerError(err, rules, fallbackCode, fallbackKey))
}

func concatMappedHandlerErrors(groups ...[]mappedHandlerError) []mappedHandlerError {
	total := 0
	for _, group := range groups {
		total += len(group)
	}
	result := make([]mappedHandlerError, 0, total)
	for _, group := range groups {
		result = append(result, group...)
	}
	return result
}

var productErrorRules = []mappedHandlerError{
	{target: service.ErrProductNotFound, code: response.CodeNotFound, key: "error.product_not_found", recovery: constants.RecoveryReturnHome},
}

var cartErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidQuantity, code: response.CodeBadRequest, key: "error.quantity_invalid"},
}

var checkoutErrorRules = []mappedHandlerError{
	{target: service.ErrEmptyCart, code: response.CodeBadRequest, key: "error.cart_empty", recovery: constants.RecoveryContinueShopping},
	{target: service.ErrCheckoutNotStarted, code: response.CodeNotFound, key: "error.checkout_not_started"},
	{target: service.ErrCheckoutStepInvalid, code: response.CodeBadRequest, key: "error.checkout_step_invalid"},
	{target: service.ErrPaymentMethodInvalid, code: response.CodeBadRequest, key: "error.payment_method_invalid"},
}

func respondProductError(c *gin.Context, err error) {
	respondWithMappedError(c, err, productErrorRules, response.CodeInternal, "error.internal")
}

func respondCartError(c *gin.Context, err error) {
	respondWithMappedError(c, err, concatMappedHandlerErrors(productErrorRules, cartErrorRules), response.CodeInternal, "error.internal")
}

func respondCheckoutError(c *gin.Context, err error) {
	respondWithMappedError(c, err, checkoutErrorRules, response.CodeInternal, "error.internal")
}
