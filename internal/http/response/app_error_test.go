package response

import (
	"errors"
	"fmt"
	"testing"
)

func TestAppErrorMessageAndUnwrap(t *testing.T) {
	cause := errors.New("db down")
	appErr := NewAppError(CodeInternal, "error.internal", cause)
	if appErr.Error() != "error.internal: db down" {
		t.Fatalf("unexpected error text: %q", appErr.Error())
	}
	if !errors.Is(appErr, cause) {
		t.Fatalf("expected cause to be unwrapped")
	}

	wrapped := WrapError(CodeBadRequest, "Invalid quantity", nil)
	if wrapped.Error() != "Invalid quantity" {
		t.Fatalf("unexpected wrapped text: %q", wrapped.Error())
	}
}

func TestAppErrorWithRecoveryCopies(t *testing.T) {
	base := NewAppError(CodeNotFound, "error.product_not_found", nil)
	hinted := base.WithRecovery("return_home")

	if base.Data() != nil {
		t.Fatalf("base error should carry no data, got %v", base.Data())
	}
	data := hinted.Data()
	if data == nil || data["recovery"] != "return_home" {
		t.Fatalf("expected recovery data, got %v", data)
	}
	if hinted.Code != CodeNotFound || hinted.Key != base.Key {
		t.Fatalf("recovery copy lost fields: %+v", hinted)
	}
}

func TestAsAppErrorThroughWrapping(t *testing.T) {
	appErr := NewAppError(CodeBadRequest, "error.bad_request", nil)
	got, ok := AsAppError(fmt.Errorf("bind: %w", appErr))
	if !ok || got != appErr {
		t.Fatalf("expected wrapped app error, got %v %v", got, ok)
	}
	if _, ok := AsAppError(errors.New("plain")); ok {
		t.Fatalf("plain error is not an app error")
	}
	if _, ok := AsAppError(nil); ok {
		t.Fatalf("nil is not an app error")
	}
}
