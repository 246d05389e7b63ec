package services

import (
	"encoding/json"
	"sync"

	"veltora/internal/domain"
	applog "veltora/internal/log"
	"veltora/internal/repos"
)

// CartStateKey is the KV key the cart store owns. Nothing else reads or
// writes it.
const CartStateKey = "veltora-cart"

// CartStore is the authoritative record of the cart and wishlist. It is
// constructed once at startup and handed to whoever needs it; consumers
// observe changes through Subscribe. Every mutation replaces the affected
// slice, persists the full envelope, then notifies subscribers, so
// observers never see a half-applied update.
type CartStore struct {
	mu       sync.Mutex
	items    []domain.CartItem
	wishlist []domain.Product
	kv       *repos.KVRepo

	subMu   sync.Mutex
	subs    map[int]func(domain.CartState)
	nextSub int
}

// NewCartStore loads the persisted envelope. A missing or malformed blob
// yields an empty store; startup never fails on bad state.
func NewCartStore(kv *repos.KVRepo) *CartStore {
	s := &CartStore{kv: kv, subs: make(map[int]func(domain.CartState))}
	blob, ok, err := kv.Get(CartStateKey)
	if err != nil {
		applog.Error(nil, "cart.load.fail", err, nil)
		return s
	}
	if !ok {
		return s
	}
	var state domain.CartState
	if err := json.Unmarshal([]byte(blob), &state); err != nil {
		applog.Error(nil, "cart.load.corrupt", err, nil)
		return s
	}
	s.items = state.Items
	s.wishlist = state.Wishlist
	return s
}

// Subscribe registers fn to run after every mutation with a snapshot of
// the new state. The returned function unsubscribes.
func (s *CartStore) Subscribe(fn func(domain.CartState)) (unsubscribe func()) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subs, id)
	}
}

// persistAndNotify writes the full envelope and fans the snapshot out to
// subscribers. Called with s.mu held; a storage failure is logged and the
// in-memory state stays authoritative.
func (s *CartStore) persistAndNotify() {
	state := s.snapshotLocked()
	blob, err := json.Marshal(state)
	if err != nil {
		applog.Error(nil, "cart.persist.marshal.fail", err, nil)
	} else if err := s.kv.Set(CartStateKey, string(blob)); err != nil {
		applog.Error(nil, "cart.persist.fail", err, nil)
	}

	s.subMu.Lock()
	fns := make([]func(domain.CartState), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()
	for _, fn := range fns {
		fn(state)
	}
}

func (s *CartStore) snapshotLocked() domain.CartState {
	items := make([]domain.CartItem, len(s.items))
	copy(items, s.items)
	wishlist := make([]domain.Product, len(s.wishlist))
	copy(wishlist, s.wishlist)
	return domain.CartState{Items: items, Wishlist: wishlist}
}

// Snapshot returns a copy of the current state.
func (s *CartStore) Snapshot() domain.CartState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Items returns a copy of the cart line items.
func (s *CartStore) Items() []domain.CartItem {
	return s.Snapshot().Items
}

// Wishlist returns a copy of the wishlist.
func (s *CartStore) Wishlist() []domain.Product {
	return s.Snapshot().Wishlist
}

// AddToCart increments the line item for the product, or appends a new
// one with quantity 1. Existing order is preserved; new items append.
func (s *CartStore) AddToCart(p domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	found := false
	next := make([]domain.CartItem, len(s.items))
	for i, it := range s.items {
		if it.ID == p.ID {
			it.Quantity++
			found = true
		}
		next[i] = it
	}
	if !found {
		next = append(next, domain.CartItem{Product: p, Quantity: 1})
	}
	s.items = next
	s.persistAndNotify()
}

// RemoveFromCart drops the line item with the given product id; no-op if
// absent.
func (s *CartStore) RemoveFromCart(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]domain.CartItem, 0, len(s.items))
	for _, it := range s.items {
		if it.ID != productID {
			next = append(next, it)
		}
	}
	s.items = next
	s.persistAndNotify()
}

// UpdateQuantity sets a line item's quantity exactly; zero or negative
// removes the item.
func (s *CartStore) UpdateQuantity(productID string, quantity int) {
	if quantity <= 0 {
		s.RemoveFromCart(productID)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]domain.CartItem, len(s.items))
	for i, it := range s.items {
		if it.ID == productID {
			it.Quantity = quantity
		}
		next[i] = it
	}
	s.items = next
	s.persistAndNotify()
}

// ClearCart empties the cart; the wishlist is untouched.
func (s *CartStore) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.persistAndNotify()
}

// CartCount is the total unit count across line items, not the distinct
// product count. A missing quantity counts as 1.
func (s *CartStore) CartCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, it := range s.items {
		q := it.Quantity
		if q <= 0 {
			q = 1
		}
		total += q
	}
	return total
}

// CartTotal is the pre-tax, pre-shipping subtotal.
func (s *CartStore) CartTotal() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, it := range s.items {
		q := it.Quantity
		if q <= 0 {
			q = 1
		}
		total += it.Price * q
	}
	return total
}

// ToggleWishlist removes the product if present, otherwise appends it.
func (s *CartStore) ToggleWishlist(p domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	exists := false
	for _, w := range s.wishlist {
		if w.ID == p.ID {
			exists = true
			break
		}
	}
	if exists {
		next := make([]domain.Product, 0, len(s.wishlist))
		for _, w := range s.wishlist {
			if w.ID != p.ID {
				next = append(next, w)
			}
		}
		s.wishlist = next
	} else {
		next := make([]domain.Product, len(s.wishlist), len(s.wishlist)+1)
		copy(next, s.wishlist)
		s.wishlist = append(next, p)
	}
	s.persistAndNotify()
}

// IsInWishlist reports wishlist membership.
func (s *CartStore) IsInWishlist(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, w := range s.wishlist {
		if w.ID == productID {
			return true
		}
	}
	return false
}

// WishlistCount is the number of wishlist entries.
func (s *CartStore) WishlistCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.wishlist)
}
