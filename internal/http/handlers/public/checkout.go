package public

import (
	"github.com/everbuy/internal/checkout"
	"github.com/everbuy/internal/http/response"
	"github.com/everbuy/internal/i18n"

	"github.com/gin-gonic/gin"
)

// BeginCheckout 进入结算，重新创建草稿
func (h *Handler) BeginCheckout(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	view, err := h.CheckoutService.Begin(sess)
	if err != nil {
		respondCheckoutError(c, err)
		return
	}
	response.Success(c, view)
}

// GetCheckout 当前步骤、草稿与订单汇总
func (h *Handler) GetCheckout(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	view, err := h.CheckoutService.Current(sess)
	if err != nil {
		respondCheckoutError(c, err)
		return
	}
	response.Success(c, view)
}

// UpdateCheckoutDraft 局部更新草稿字段
func (h *Handler) UpdateCheckoutDraft(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	var patch checkout.DraftPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	view, err := h.CheckoutService.UpdateDraft(sess, patch)
	if err != nil {
		respondCheckoutError(c, err)
		return
	}
	response.Success(c, view)
}

// NextCheckoutStep 下一步
func (h *Handler) NextCheckoutStep(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	view, err := h.CheckoutService.Next(sess)
	if err != nil {
		respondCheckoutError(c, err)
		return
	}
	response.Success(c, view)
}

// PrevCheckoutStep 上一步
func (h *Handler) PrevCheckoutStep(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	view, err := h.CheckoutService.Back(sess)
	if err != nil {
		respondCheckoutError(c, err)
		return
	}
	response.Success(c, view)
}

// SubmitCheckout 模拟下单
func (h *Handler) SubmitCheckout(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	confirmation, err := h.CheckoutService.Submit(sess)
	if err != nil {
		respondCheckoutError(c, err)
		return
	}
	msg := i18n.T(i18n.ResolveLocale(c), "message.order_placed")
	response.SuccessWithMsg(c, msg, confirmation)
}

// DiscardCheckout 离开结算页，丢弃草稿
func (h *Handler) DiscardCheckout(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	discarded := h.CheckoutService.Discard(sess)
	msg := i18n.T(i18n.ResolveLocale(c), "message.checkout_discarded")
	response.SuccessWithMsg(c, msg, gin.H{"discarded": discarded})
}
