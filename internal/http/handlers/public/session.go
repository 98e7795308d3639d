package public

import (
	"net/http"
	"strings"
	"time"

	"github.com/everbuy/internal/constants"
	"github.com/everbuy/internal/http/response"
	"github.com/everbuy/internal/i18n"

	"github.com/gin-gonic/gin"
)

// CreateSession 显式签发新会话（会丢弃请求携带的旧令牌）
func (h *Handler) CreateSession(c *gin.Context) {
	if h.Sessions == nil {
		respondError(c, response.CodeInternal, "error.session_unavailable", nil)
		return
	}
	sess, token, expiresAt, err := h.Sessions.Issue()
	if err != nil {
		respondError(c, response.CodeInternal, "error.session_unavailable", err)
		return
	}
	cookieName := constants.SessionCookieName
	if h.Config != nil && strings.TrimSpace(h.Config.Session.CookieName) != "" {
		cookieName = strings.TrimSpace(h.Config.Session.CookieName)
	}
	secure := h.Config != nil && h.Config.Server.Mode == "release"
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cookieName, token, int(time.Until(expiresAt).Seconds()), "/", "", secure, true)
	c.Writer.Header().Set(constants.SessionTokenHeader, token)

	msg := i18n.T(i18n.ResolveLocale(c), "message.session_issued")
	response.SuccessWithMsg(c, msg, gin.H{
		"session_id": sess.ID,
		"token":      token,
		"expires_at": expiresAt,
	})
}
