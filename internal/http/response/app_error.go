package response

import (
	"errors"

	"github.com/gin-gonic/gin"
)

// AppError 接口错误：业务码、i18n key、可选恢复建议与原始错误
type AppError struct {
	Code     int
	Key      string
	Message  string // 为空时由 Key 本地化得到
	Recovery string
	Err      error
}

func (e *AppError) Error() string {
	text := e.Message
	if text == "" {
		text = e.Key
	}
	if e.Err == nil {
		return text
	}
	return text + ": " + e.Err.Error()
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError 以 i18n key 创建接口错误
func NewAppError(code int, key string, err error) *AppError {
	return &AppError{Code: code, Key: key, Err: err}
}

// WrapError 以已本地化消息包装错误
func WrapError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// WithRecovery 返回附带恢复建议的副本
func (e *AppError) WithRecovery(hint string) *AppError {
	clone := *e
	clone.Recovery = hint
	return &clone
}

// Data 错误响应附加数据；无恢复建议时为 nil
func (e *AppError) Data() gin.H {
	if e.Recovery == "" {
		return nil
	}
	return gin.H{"recovery": e.Recovery}
}

// AsAppError 从错误链中取出 AppError
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr != nil {
		return appErr, true
	}
	return nil, false
}
