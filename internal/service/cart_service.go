package service

import (
	"errors"

	"github.com/everbuy/internal/cart"
	"github.com/everbuy/internal/metrics"
)

// MaxLineQuantity 单行数量上限
const MaxLineQuantity = 99

// CartService 购物车服务：将目录查询绑定到会话购物车
type CartService struct {
	products *ProductService
}

// NewCartService 创建购物车服务
func NewCartService(products *ProductService) *CartService {
	return &CartService{products: products}
}

// Get 当前购物车
func (s *CartService) Get(store *cart.Store) cart.State {
	return store.State()
}

// Add 加入购物车，quantity <= 0 视为 1；合并后单行不得超过 MaxLineQuantity
func (s *CartService) Add(store *cart.Store, productID uint, quantity int) (cart.State, error) {
	if quantity > MaxLineQuantity {
		return store.State(), ErrInvalidQuantity
	}
	product, err := s.products.GetByID(productID)
	if err != nil {
		return store.State(), err
	}
	state, err := store.AddItemsWithin(*product, quantity, MaxLineQuantity)
	if errors.Is(err, cart.ErrLineLimitExceeded) {
		return state, ErrInvalidQuantity
	}
	metrics.CartOperations.WithLabelValues("add").Inc()
	return state, nil
}

// UpdateQuantity 修改数量，<= 0 删除
func (s *CartService) UpdateQuantity(store *cart.Store, productID uint, quantity int) (cart.State, error) {
	if quantity > MaxLineQuantity {
		return store.State(), ErrInvalidQuantity
	}
	metrics.CartOperations.WithLabelValues("update").Inc()
	return store.UpdateQuantity(productID, quantity), nil
}

// Remove 删除购物车行
func (s *CartService) Remove(store *cart.Store, productID uint) cart.State {
	metrics.CartOperations.WithLabelValues("remove").Inc()
	return store.RemoveItem(productID)
}

// Clear 清空购物车
func (s *CartService) Clear(store *cart.Store) cart.State {
	metrics.CartOperations.WithLabelValues("clear").Inc()
	return store.Clear()
}
