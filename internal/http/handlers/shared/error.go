package shared

import (
	"github.com/everbuy/internal/http/response"
	"github.com/everbuy/internal/i18n"
	"github.com/everbuy/internal/logger"

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

// RespondAppError 本地化并输出 AppError，有原始错误时记录日志。
func RespondAppError(c *gin.Context, appErr *response.AppError) {
	if appErr == nil {
		appErr = response.NewAppError(response.CodeInternal, "error.internal", nil)
	}
	msg := appErr.Message
	if msg == "" {
		msg = i18n.T(i18n.ResolveLocale(c), appErr.Key)
	}
	if appErr.Err != nil {
		RequestLog(c).Errorw("handler_error",
			"code", appErr.Code,
			"key", appErr.Key,
			"message", msg,
			"error", appErr.Err,
		)
	}
	if data := appErr.Data(); data != nil {
		response.ErrorWithData(c, appErr.Code, msg, data)
		return
	}
	response.Error(c, appErr.Code, msg)
}

// RespondError 返回国际化错误响应。
func RespondError(c *gin.Context, code int, key string, err error) {
	RespondAppError(c, response.NewAppError(code, key, err))
}
