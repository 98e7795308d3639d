package public

import "github.com/everbuy/internal/provider"

// Handler 前台接口处理器入口
// 说明：商品目录、购物车与结算流程均在此处理，购物车与结算状态归属会话。
type Handler struct {
	*provider.Container
}

// New 创建前台处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
