package public

import (
	"errors"
	"fmt"
	"testing"

	"github.com/everbuy/internal/constants"
	"github.com/everbuy/internal/http/response"
	"github.com/everbuy/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapHandlerErrorRules(t *testing.T) {
	appErr := mapHandlerError(fmt.Errorf("load: %w", service.ErrEmptyCart), checkoutErrorRules, response.CodeInternal, "error.internal")
	require.NotNil(t, appErr)
	assert.Equal(t, response.CodeBadRequest, appErr.Code)
	assert.Equal(t, "error.cart_empty", appErr.Key)
	assert.Equal(t, constants.RecoveryContinueShopping, appErr.Data()["recovery"])
	assert.Nil(t, appErr.Err)

	appErr = mapHandlerError(service.ErrCheckoutNotStarted, checkoutErrorRules, response.CodeInternal, "error.internal")
	assert.Equal(t, response.CodeNotFound, appErr.Code)
	assert.Nil(t, appErr.Data())
}

func TestMapHandlerErrorFallbackKeepsCause(t *testing.T) {
	cause := errors.New("boom")
	appErr := mapHandlerError(cause, productErrorRules, response.CodeInternal, "error.internal")
	assert.Equal(t, response.CodeInternal, appErr.Code)
	assert.Equal(t, "error.internal", appErr.Key)
	assert.ErrorIs(t, appErr, cause)
}

func TestMapHandlerErrorPassesAppErrorThrough(t *testing.T) {
	bindErr := response.NewAppError(response.CodeBadRequest, "error.quantity_invalid", nil)
	appErr := mapHandlerError(bindErr, cartErrorRules, response.CodeInternal, "error.internal")
	assert.Same(t, bindErr, appErr)
}
