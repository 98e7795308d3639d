package cart

import (
	"errors"
	"sync"

	"github.com/everbuy/internal/models"

	"github.com/shopspring/decimal"
)

// ErrLineLimitExceeded 合并后单行数量超过上限
var ErrLineLimitExceeded = errors.New("cart line quantity limit exceeded")

// LineItem 购物车行
type LineItem struct {
	ID       uint         `json:"id"`
	Name     string       `json:"name"`
	Price    models.Money `json:"price"`
	Image    string       `json:"image"`
	Quantity int          `json:"quantity"`
}

// LineTotal 行小计
func (i LineItem) LineTotal() models.Money {
	return models.NewMoneyFromDecimal(i.Price.Times(i.Quantity))
}

// State 购物车快照
type State struct {
	Items     []LineItem   `json:"items"`
	Total     models.Money `json:"total"`
	ItemCount int          `json:"item_count"`
	Version   uint64       `json:"version"`
}

// IsEmpty 是否为空
func (s State) IsEmpty() bool {
	return len(s.Items) == 0
}

// Listener 购物车变更监听
type Listener func(State)

type subscription struct {
	id       uint64
	listener Listener
}

// Store 会话级购物车
// 每个会话独占一个 Store，所有变更都会同步推送给订阅者。
type Store struct {
	mu        sync.Mutex
	items     []LineItem
	total     decimal.Decimal
	count     int
	version   uint64
	nextSubID uint64
	subs      []subscription
}

// NewStore 创建空购物车
func NewStore() *Store {
	return &Store{total: decimal.Zero}
}

// AddItem 加入商品；已存在则数量 +1
func (s *Store) AddItem(product models.Product) State {
	return s.AddItems(product, 1)
}

// AddItems 等价于连续调用 n 次 AddItem
func (s *Store) AddItems(product models.Product, n int) State {
	state, _ := s.AddItemsWithin(product, n, 0)
	return state
}

// AddItemsWithin 同 AddItems，合并后数量超过 limit 时不做变更；limit <= 0 不限制
func (s *Store) AddItemsWithin(product models.Product, n, limit int) (State, error) {
	if n < 1 {
		n = 1
	}
	var err error
	state := s.mutate(func() bool {
		current := 0
		idx := s.indexOf(product.ID)
		if idx >= 0 {
			current = s.items[idx].Quantity
		}
		if limit > 0 && current+n > limit {
			err = ErrLineLimitExceeded
			return false
		}
		if idx >= 0 {
			s.items[idx].Quantity += n
			return true
		}
		s.items = append(s.items, LineItem{
			ID:       product.ID,
			Name:     product.Name,
			Price:    product.Price,
			Image:    product.Image,
			Quantity: n,
		})
		return true
	})
	return state, err
}

// RemoveItem 删除购物车行；不存在时不做任何变更
func (s *Store) RemoveItem(id uint) State {
	return s.mutate(func() bool {
		return s.removeLocked(id)
	})
}

// UpdateQuantity 设置数量；quantity <= 0 等价于删除
func (s *Store) UpdateQuantity(id uint, quantity int) State {
	return s.mutate(func() bool {
		if quantity <= 0 {
			return s.removeLocked(id)
		}
		idx := s.indexOf(id)
		if idx < 0 || s.items[idx].Quantity == quantity {
			return false
		}
		s.items[idx].Quantity = quantity
		return true
	})
}

// Clear 清空购物车
func (s *Store) Clear() State {
	return s.mutate(func() bool {
		if len(s.items) == 0 {
			return false
		}
		s.items = nil
		return true
	})
}

// State 当前快照
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Subscribe 订阅变更，返回取消订阅函数
func (s *Store) Subscribe(listener Listener) func() {
	if listener == nil {
		return func() {}
	}
	s.mu.Lock()
	s.nextSubID++
	id := s.nextSubID
	s.subs = append(s.subs, subscription{id: id, listener: listener})
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			for i, sub := range s.subs {
				if sub.id == id {
					s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
					return
				}
			}
		})
	}
}

// mutate 在锁内执行变更并重算合计，锁外通知订阅者
func (s *Store) mutate(fn func() bool) State {
	s.mu.Lock()
	changed := fn()
	if changed {
		s.recalculateLocked()
		s.version++
	}
	state := s.snapshotLocked()
	var listeners []Listener
	if changed {
		listeners = make([]Listener, 0, len(s.subs))
		for _, sub := range s.subs {
			listeners = append(listeners, sub.listener)
		}
	}
	s.mu.Unlock()

	for _, listener := range listeners {
		listener(cloneState(state))
	}
	return state
}

func (s *Store) removeLocked(id uint) bool {
	idx := s.indexOf(id)
	if idx < 0 {
		return false
	}
	s.items = append(s.items[:idx], s.items[idx+1:]...)
	return true
}

func (s *Store) indexOf(id uint) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) recalculateLocked() {
	total := decimal.Zero
	count := 0
	for _, item := range s.items {
		total = total.Add(item.Price.Times(item.Quantity))
		count += item.Quantity
	}
	s.total = total
	s.count = count
}

func (s *Store) snapshotLocked() State {
	items := make([]LineItem, len(s.items))
	copy(items, s.items)
	return State{
		Items:     items,
		Total:     models.NewMoneyFromDecimal(s.total),
		ItemCount: s.count,
		Version:   s.version,
	}
}

func cloneState(state State) State {
	items := make([]LineItem, len(state.Items))
	copy(items, state.Items)
	state.Items = items
	return state
}
