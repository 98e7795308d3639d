package public

import (
	"github.com/everbuy/internal/cart"
	"github.com/everbuy/internal/http/response"
	"github.com/everbuy/internal/http/validate"
	"github.com/everbuy/internal/models"

	"github.com/gin-gonic/gin"
)

// CartItemRequest 加入购物车请求，quantity 缺省为 1
type CartItemRequest struct {
	ProductID uint `json:"product_id" binding:"required,gt=0"`
	Quantity  *int `json:"quantity" binding:"omitempty,cartqty"`
}

// CartQuantityRequest 修改数量请求，<= 0 删除该行
type CartQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required,cartqty"`
}

// CartResponse 购物车响应
type CartResponse struct {
	Items     []cart.LineItem `json:"items"`
	Total     models.Money    `json:"total"`
	ItemCount int             `json:"item_count"`
	Version   uint64          `json:"version"`
	Empty     bool            `json:"empty"`
}

func newCartResponse(state cart.State) CartResponse {
	items := state.Items
	if items == nil {
		items = []cart.LineItem{}
	}
	return CartResponse{
		Items:     items,
		Total:     state.Total,
		ItemCount: state.ItemCount,
		Version:   state.Version,
		Empty:     state.IsEmpty(),
	}
}

func cartBindError(err error) *response.AppError {
	if validate.HasTag(err, validate.TagCartQuantity) {
		return response.NewAppError(response.CodeBadRequest, "error.quantity_invalid", nil)
	}
	return response.NewAppError(response.CodeBadRequest, "error.bad_request", nil)
}

// GetCart 获取购物车
func (h *Handler) GetCart(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	response.Success(c, newCartResponse(h.CartService.Get(sess.Cart)))
}

// AddCartItem 加入购物车；已存在的商品累加数量
func (h *Handler) AddCartItem(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	var req CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondCartError(c, cartBindError(err))
		return
	}
	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}
	state, err := h.CartService.Add(sess.Cart, req.ProductID, quantity)
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, newCartResponse(state))
}

// UpdateCartItem 修改购物车行数量
func (h *Handler) UpdateCartItem(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	productID, ok := parseProductID(c, "product_id")
	if !ok {
		return
	}
	var req CartQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondCartError(c, cartBindError(err))
		return
	}
	state, err := h.CartService.UpdateQuantity(sess.Cart, productID, *req.Quantity)
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, newCartResponse(state))
}

// DeleteCartItem 删除购物车行
func (h *Handler) DeleteCartItem(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	productID, ok := parseProductID(c, "product_id")
	if !ok {
		return
	}
	response.Success(c, newCartResponse(h.CartService.Remove(sess.Cart, productID)))
}

// ClearCart 清空购物车
func (h *Handler) ClearCart(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	response.Success(c, newCartResponse(h.CartService.Clear(sess.Cart)))
}
