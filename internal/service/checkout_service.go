package service

import (
	"fmt"
	"time"

	"github.com/everbuy/internal/checkout"
	"github.com/everbuy/internal/config"
	"github.com/everbuy/internal/logger"
	"github.com/everbuy/internal/metrics"
	"github.com/everbuy/internal/queue"
	"github.com/everbuy/internal/session"

	"github.com/hibiken/asynq"
)

// OrderPublisher 下单通知投递
type OrderPublisher interface {
	EnqueueOrderPlaced(payload queue.OrderPlacedPayload, opts ...asynq.Option) error
}

// CheckoutService 结算流程服务
type CheckoutService struct {
	pricing   checkout.Pricing
	publisher OrderPublisher
	now       func() time.Time
}

// NewCheckoutService 创建结算服务
func NewCheckoutService(pricing checkout.Pricing, publisher OrderPublisher) *CheckoutService {
	return &CheckoutService{
		pricing:   pricing,
		publisher: publisher,
		now:       time.Now,
	}
}

// PricingFromConfig 从配置构造价格规则
func PricingFromConfig(cfg config.CheckoutConfig) (checkout.Pricing, error) {
	threshold, shipping, taxRate, err := cfg.Decimals()
	if err != nil {
		return checkout.Pricing{}, fmt.Errorf("%w: %v", ErrPricingConfigInvalid, err)
	}
	return checkout.Pricing{
		FreeShippingThreshold: threshold,
		FlatShipping:          shipping,
		TaxRate:               taxRate,
	}, nil
}

// Pricing 当前价格规则
func (s *CheckoutService) Pricing() checkout.Pricing {
	return s.pricing
}

// Begin 开始结算，重新创建草稿
func (s *CheckoutService) Begin(sess *session.Session) (*checkout.View, error) {
	state := sess.Cart.State()
	flow, err := checkout.Begin(state, s.now())
	if err != nil {
		return nil, err
	}
	sess.SetCheckout(flow)
	metrics.CheckoutTransitions.WithLabelValues("begin").Inc()
	logger.Debugw("checkout_started", "session_id", sess.ID, "item_count", state.ItemCount)
	return s.view(sess, flow)
}

// Current 当前结算视图
func (s *CheckoutService) Current(sess *session.Session) (*checkout.View, error) {
	flow, err := s.flow(sess)
	if err != nil {
		return nil, err
	}
	return s.view(sess, flow)
}

// UpdateDraft 更新草稿字段
func (s *CheckoutService) UpdateDraft(sess *session.Session, patch checkout.DraftPatch) (*checkout.View, error) {
	flow, err := s.activeFlow(sess)
	if err != nil {
		return nil, err
	}
	if _, err := flow.UpdateDraft(patch); err != nil {
		return nil, err
	}
	return s.view(sess, flow)
}

// Next 下一步
func (s *CheckoutService) Next(sess *session.Session) (*checkout.View, error) {
	flow, err := s.activeFlow(sess)
	if err != nil {
		return nil, err
	}
	flow.Next()
	metrics.CheckoutTransitions.WithLabelValues("next").Inc()
	return s.view(sess, flow)
}

// Back 上一步
func (s *CheckoutService) Back(sess *session.Session) (*checkout.View, error) {
	flow, err := s.activeFlow(sess)
	if err != nil {
		return nil, err
	}
	flow.Back()
	metrics.CheckoutTransitions.WithLabelValues("back").Inc()
	return s.view(sess, flow)
}

// Submit 模拟下单；成功后丢弃草稿，购物车保持不变
func (s *CheckoutService) Submit(sess *session.Session) (*checkout.OrderConfirmation, error) {
	flow, err := s.flow(sess)
	if err != nil {
		return nil, err
	}
	confirmation, err := flow.Submit(sess.Cart.State(), s.pricing, s.now())
	if err != nil {
		return nil, err
	}
	sess.DropCheckout()
	metrics.CheckoutTransitions.WithLabelValues("submit").Inc()
	metrics.OrdersPlaced.Inc()
	logger.Infow("checkout_submitted",
		"session_id", sess.ID,
		"order_no", confirmation.OrderNo,
		"final_total", confirmation.Summary.FinalTotal.String(),
	)
	s.publish(sess, confirmation)
	return confirmation, nil
}

// Discard 离开结算页，丢弃草稿
func (s *CheckoutService) Discard(sess *session.Session) bool {
	dropped := sess.DropCheckout()
	if dropped {
		metrics.CheckoutTransitions.WithLabelValues("discard").Inc()
	}
	return dropped
}

func (s *CheckoutService) flow(sess *session.Session) (*checkout.Flow, error) {
	flow := sess.Checkout()
	if flow == nil {
		return nil, ErrCheckoutNotStarted
	}
	return flow, nil
}

// activeFlow 要求结算已开始且购物车非空；购物车为空时草稿保留
func (s *CheckoutService) activeFlow(sess *session.Session) (*checkout.Flow, error) {
	flow, err := s.flow(sess)
	if err != nil {
		return nil, err
	}
	if sess.Cart.State().IsEmpty() {
		return nil, ErrEmptyCart
	}
	return flow, nil
}

func (s *CheckoutService) view(sess *session.Session, flow *checkout.Flow) (*checkout.View, error) {
	view, err := flow.View(sess.Cart.State(), s.pricing)
	if err != nil {
		return nil, err
	}
	return &view, nil
}

func (s *CheckoutService) publish(sess *session.Session, confirmation *checkout.OrderConfirmation) {
	if s.publisher == nil {
		return
	}
	summary := confirmation.Summary
	lines := make([]queue.OrderPlacedLine, 0, len(summary.Items))
	for _, item := range summary.Items {
		lines = append(lines, queue.OrderPlacedLine{
			ProductID: item.ID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			LineTotal: item.LineTotal.String(),
		})
	}
	payload := queue.OrderPlacedPayload{
		OrderNo:       confirmation.OrderNo,
		SessionID:     sess.ID,
		Email:         confirmation.Draft.Email,
		PaymentMethod: confirmation.Draft.PaymentMethod,
		Subtotal:      summary.Subtotal.String(),
		ShippingCost:  summary.ShippingCost.String(),
		Tax:           summary.Tax.String(),
		FinalTotal:    summary.FinalTotal.String(),
		Items:         lines,
		PlacedAt:      confirmation.PlacedAt.Unix(),
	}
	if err := s.publisher.EnqueueOrderPlaced(payload); err != nil {
		logger.Warnw("checkout_order_enqueue_failed", "order_no", confirmation.OrderNo, "error", err)
	}
}
