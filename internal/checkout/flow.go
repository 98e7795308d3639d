package checkout

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/everbuy/internal/cart"
	"github.com/everbuy/internal/constants"

	"github.com/google/uuid"
)

var (
	// ErrEmptyCart 购物车为空
	ErrEmptyCart = errors.New("cart is empty")
	// ErrStepInvalid 当前步骤不允许该操作
	ErrStepInvalid = errors.New("checkout step invalid")
	// ErrPaymentMethodInvalid 支付方式无效
	ErrPaymentMethodInvalid = errors.New("payment method invalid")
)

var stepTitles = map[int]string{
	constants.CheckoutStepShipping: "Shipping",
	constants.CheckoutStepPayment:  "Payment",
	constants.CheckoutStepReview:   "Review",
}

// Flow 三步结算状态机：Shipping → Payment → Review
type Flow struct {
	mu        sync.Mutex
	step      int
	draft     Draft
	startedAt time.Time
}

// View 结算页视图
type View struct {
	CurrentStep int        `json:"current_step"`
	Steps       []StepInfo `json:"steps"`
	Draft       Draft      `json:"draft"`
	Summary     Summary    `json:"summary"`
	StartedAt   time.Time  `json:"started_at"`
}

// OrderConfirmation 模拟下单结果
type OrderConfirmation struct {
	OrderNo  string    `json:"order_no"`
	Message  string    `json:"message"`
	Summary  Summary   `json:"summary"`
	Draft    Draft     `json:"-"`
	PlacedAt time.Time `json:"placed_at"`
}

// Begin 开始结算；空购物车不允许进入
func Begin(state cart.State, now time.Time) (*Flow, error) {
	if state.IsEmpty() {
		return nil, ErrEmptyCart
	}
	return &Flow{
		step:      constants.CheckoutStepShipping,
		draft:     NewDraft(),
		startedAt: now,
	}, nil
}

// Step 当前步骤
func (f *Flow) Step() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.step
}

// Draft 当前草稿副本
func (f *Flow) Draft() Draft {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

// Next 前进一步，已在 Review 时不变
func (f *Flow) Next() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.step < constants.CheckoutStepReview {
		f.step++
	}
	return f.step
}

// Back 后退一步，已在 Shipping 时不变
func (f *Flow) Back() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.step > constants.CheckoutStepShipping {
		f.step--
	}
	return f.step
}

// UpdateDraft 局部更新草稿
func (f *Flow) UpdateDraft(patch DraftPatch) (Draft, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	next, err := f.draft.apply(patch)
	if err != nil {
		return f.draft, err
	}
	f.draft = next
	return f.draft, nil
}

// Steps 步骤进度列表
func (f *Flow) Steps() []StepInfo {
	return buildSteps(f.Step())
}

// View 组装结算页数据
func (f *Flow) View(state cart.State, pricing Pricing) (View, error) {
	if state.IsEmpty() {
		return View{}, ErrEmptyCart
	}
	f.mu.Lock()
	step := f.step
	draft := f.draft
	startedAt := f.startedAt
	f.mu.Unlock()
	return View{
		CurrentStep: step,
		Steps:       buildSteps(step),
		Draft:       draft,
		Summary:     pricing.Quote(state),
		StartedAt:   startedAt,
	}, nil
}

// Submit 在 Review 步骤模拟下单，不修改购物车
func (f *Flow) Submit(state cart.State, pricing Pricing, now time.Time) (*OrderConfirmation, error) {
	if state.IsEmpty() {
		return nil, ErrEmptyCart
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.step != constants.CheckoutStepReview {
		return nil, ErrStepInvalid
	}
	return &OrderConfirmation{
		OrderNo:  GenerateOrderNo(now),
		Message:  constants.OrderPlacedMessage,
		Summary:  pricing.Quote(state),
		Draft:    f.draft,
		PlacedAt: now,
	}, nil
}

// GenerateOrderNo 生成订单号：EB-YYYYMMDD-XXXXXXXX
func GenerateOrderNo(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("%s-%s-%s", constants.OrderNoPrefix, now.Format("20060102"), suffix)
}

func buildSteps(current int) []StepInfo {
	steps := make([]StepInfo, 0, len(stepTitles))
	for n := constants.CheckoutStepShipping; n <= constants.CheckoutStepReview; n++ {
		steps = append(steps, StepInfo{
			Number:    n,
			Title:     stepTitles[n],
			Completed: current > n,
			Current:   current == n,
		})
	}
	return steps
}
