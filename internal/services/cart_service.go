package services

import (
	"sync"

	"go.uber.org/zap"

	"skilz-store/internal/models"
)

// CartService is the single authoritative cart for the active session. One
// logical writer mutates it, any number of views read it; every mutation is
// delivered to subscribers synchronously, before the mutating call returns,
// so all observers see the latest state with no staleness window.
//
// None of the mutations fail: invalid product ids are ignored and
// out-of-range quantities are clamped to [1, stock].
type CartService struct {
	mu      sync.RWMutex
	items   []models.CartItem
	subs    map[int]func(models.CartSnapshot)
	nextSub int
	logger  *zap.Logger
}

func NewCartService(logger *zap.Logger) *CartService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CartService{
		subs:   make(map[int]func(models.CartSnapshot)),
		logger: logger,
	}
}

// Subscribe registers an observer that receives a snapshot after every
// mutation. The returned func removes the subscription.
func (s *CartService) Subscribe(fn func(models.CartSnapshot)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// AddToCart inserts the product or, if already present, accumulates its
// quantity. The resulting quantity is clamped to [1, stock]. Products with
// no stock at all cannot be added.
func (s *CartService) AddToCart(product models.Product, quantity int) {
	s.mu.Lock()
	if product.StockCount < 1 {
		s.mu.Unlock()
		return
	}
	found := false
	for i, item := range s.items {
		if item.Product.ID == product.ID {
			s.items[i].Quantity = clampQuantity(item.Quantity+quantity, product.StockCount)
			found = true
			break
		}
	}
	if !found {
		s.items = append(s.items, models.CartItem{
			Product:  product,
			Quantity: clampQuantity(quantity, product.StockCount),
		})
	}
	s.logger.Debug("cart add",
		zap.Int("product_id", product.ID),
		zap.Int("quantity", quantity),
	)
	s.notifyAndUnlock()
}

// RemoveFromCart deletes the item with the given product id. Absent ids
// are a no-op.
func (s *CartService) RemoveFromCart(productID int) {
	s.mu.Lock()
	for i, item := range s.items {
		if item.Product.ID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.logger.Debug("cart remove", zap.Int("product_id", productID))
			s.notifyAndUnlock()
			return
		}
	}
	s.mu.Unlock()
}

// UpdateQuantity sets the absolute quantity for an existing item, clamped
// to [1, stock]. Driving the quantity below one clamps at one; removal is
// a separate explicit action. Absent ids are a no-op.
func (s *CartService) UpdateQuantity(productID, quantity int) {
	s.mu.Lock()
	for i, item := range s.items {
		if item.Product.ID == productID {
			s.items[i].Quantity = clampQuantity(quantity, item.Product.StockCount)
			s.notifyAndUnlock()
			return
		}
	}
	s.mu.Unlock()
}

// ClearCart empties the cart unconditionally.
func (s *CartService) ClearCart() {
	s.mu.Lock()
	s.items = nil
	s.logger.Debug("cart cleared")
	s.notifyAndUnlock()
}

// Snapshot returns the current cart state with derived totals.
func (s *CartService) Snapshot() models.CartSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Items returns a copy of the current cart items.
func (s *CartService) Items() []models.CartItem {
	return s.Snapshot().Items
}

// TotalPrice is the sum of price times quantity over all items, recomputed
// on every read.
func (s *CartService) TotalPrice() float64 {
	return s.Snapshot().TotalPrice
}

// ItemCount is the total selected quantity, the number shown on the header
// badge.
func (s *CartService) ItemCount() int {
	return s.Snapshot().ItemCount
}

func (s *CartService) snapshotLocked() models.CartSnapshot {
	snap := models.CartSnapshot{
		Items: make([]models.CartItem, len(s.items)),
	}
	copy(snap.Items, s.items)
	for _, item := range s.items {
		snap.TotalPrice += item.Subtotal()
		snap.ItemCount += item.Quantity
	}
	return snap
}

// notifyAndUnlock snapshots the cart, releases the write lock and delivers
// the snapshot to every subscriber on the calling goroutine. Delivery
// outside the lock lets subscribers re-read the cart without deadlocking.
func (s *CartService) notifyAndUnlock() {
	snap := s.snapshotLocked()
	subs := make([]func(models.CartSnapshot), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
}

func clampQuantity(quantity, stock int) int {
	if quantity < 1 {
		return 1
	}
	if quantity > stock {
		return stock
	}
	return quantity
}
