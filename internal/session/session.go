package session

import (
	"sync"
	"time"

	"github.com/everbuy/internal/cart"
	"github.com/everbuy/internal/checkout"
)

// Session 浏览器会话，独占一个购物车与至多一个结算流程
type Session struct {
	ID        string
	Cart      *cart.Store
	CreatedAt time.Time

	mu          sync.Mutex
	checkout    *checkout.Flow
	lastSeen    time.Time
	unsubscribe func()
}

func newSession(id string, now time.Time) *Session {
	return &Session{
		ID:        id,
		Cart:      cart.NewStore(),
		CreatedAt: now,
		lastSeen:  now,
	}
}

// Checkout 当前结算流程，未开始时返回 nil
func (s *Session) Checkout() *checkout.Flow {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.checkout
}

// SetCheckout 替换结算流程
func (s *Session) SetCheckout(flow *checkout.Flow) {
	s.mu.Lock()
	s.checkout = flow
	s.mu.Unlock()
}

// DropCheckout 丢弃结算草稿，返回之前是否存在
func (s *Session) DropCheckout() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	existed := s.checkout != nil
	s.checkout = nil
	return existed
}

// LastSeen 最近访问时间
func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	if now.After(s.lastSeen) {
		s.lastSeen = now
	}
	s.mu.Unlock()
}

func (s *Session) close() {
	s.mu.Lock()
	unsubscribe := s.unsubscribe
	s.unsubscribe = nil
	s.checkout = nil
	s.mu.Unlock()
	if unsubscribe != nil {
		unsubscribe()
	}
}
