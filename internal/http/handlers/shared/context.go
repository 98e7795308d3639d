package shared

import (
	"strconv"
	"strings"

	"github.com/everbuy/internal/constants"
	"github.com/everbuy/internal/http/response"
	"github.com/everbuy/internal/session"

	"github.com/gin-gonic/gin"
)

// CurrentSession 从上下文读取会话并统一处理错误响应。
func CurrentSession(c *gin.Context) (*session.Session, bool) {
	value, exists := c.Get(constants.SessionContextKey)
	if !exists {
		RespondError(c, response.CodeUnauthorized, "error.session_invalid", nil)
		return nil, false
	}
	sess, ok := value.(*session.Session)
	if !ok || sess == nil {
		RespondError(c, response.CodeInternal, "error.session_unavailable", nil)
		return nil, false
	}
	return sess, true
}

// ParseUintParam 解析路径中的正整数 ID。
func ParseUintParam(c *gin.Context, name, invalidKey string) (uint, bool) {
	raw := strings.TrimSpace(c.Param(name))
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		RespondError(c, response.CodeBadRequest, invalidKey, nil)
		return 0, false
	}
	return uint(id), true
}
