package public

import (
	handlershared "github.com/everbuy/internal/http/handlers/shared"
	"github.com/everbuy/internal/session"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, code int, key string, err error) {
	handlershared.RespondError(c, code, key, err)
}

func currentSession(c *gin.Context) (*session.Session, bool) {
	return handlershared.CurrentSession(c)
}

func parseProductID(c *gin.Context, name string) (uint, bool) {
	return handlershared.ParseUintParam(c, name, "error.product_id_invalid")
}
