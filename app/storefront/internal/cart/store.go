package cart

import (
	"math"
	"sync"
)

const (
	// MaxQuantity caps one line item; larger adds saturate here.
	MaxQuantity int64 = 9999
	// MaxPrice caps a unit price so price x quantity stays far from int64 overflow.
	MaxPrice int64 = 1_000_000_000
)

// Product is what a view hands over when the shopper adds something to the cart.
// The cart copies it, it never keeps a reference to the caller's record.
type Product struct {
	ID       string
	Name     string
	Price    int64
	ImageURL string
}

type LineItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	ImageURL string `json:"imageUrl"`
	Quantity int64  `json:"quantity"`
}

type Snapshot struct {
	Items      []LineItem `json:"items"`
	Count      int64      `json:"cartCount"`
	TotalPrice int64      `json:"totalPrice"`
}

// Store is the in-memory cart of one shopper scope.
// Line items are unique by id and always carry quantity >= 1.
type Store struct {
	mu     sync.Mutex
	items  []LineItem
	index  map[string]int
	nextID int
	subs   map[int]func(Snapshot)
}

func NewStore() *Store {
	return &Store{
		index: make(map[string]int),
		subs:  make(map[int]func(Snapshot)),
	}
}

// Add inserts the product or bumps the quantity of the existing line item.
// Quantities saturate at MaxQuantity.
func (s *Store) Add(p Product, quantity int64) {
	quantity = clampQuantity(quantity)

	s.mu.Lock()
	if i, ok := s.index[p.ID]; ok {
		// both operands are <= MaxQuantity, the sum cannot overflow
		s.items[i].Quantity = min(s.items[i].Quantity+quantity, MaxQuantity)
	} else {
		s.index[p.ID] = len(s.items)
		s.items = append(s.items, LineItem{
			ID:       p.ID,
			Name:     p.Name,
			Price:    clampPrice(p.Price),
			ImageURL: p.ImageURL,
			Quantity: quantity,
		})
	}
	s.unlockAndNotify(true)
}

func (s *Store) Remove(id string) {
	s.mu.Lock()
	s.unlockAndNotify(s.removeLocked(id))
}

// UpdateQuantity sets the quantity of an existing line item; anything below 1 removes it.
func (s *Store) UpdateQuantity(id string, quantity int64) {
	s.mu.Lock()
	if quantity < 1 {
		s.unlockAndNotify(s.removeLocked(id))
		return
	}
	quantity = min(quantity, MaxQuantity)

	i, ok := s.index[id]
	if !ok || s.items[i].Quantity == quantity {
		s.mu.Unlock()
		return
	}
	s.items[i].Quantity = quantity
	s.unlockAndNotify(true)
}

// Deduct takes the given line quantities out of the cart, dropping lines that reach zero.
// Lines the cart does not hold are skipped.
func (s *Store) Deduct(lines []LineItem) {
	s.mu.Lock()
	changed := false
	for _, line := range lines {
		i, ok := s.index[line.ID]
		if !ok || line.Quantity < 1 {
			continue
		}
		changed = true
		if s.items[i].Quantity <= line.Quantity {
			s.removeLocked(line.ID)
			continue
		}
		s.items[i].Quantity -= line.Quantity
	}
	s.unlockAndNotify(changed)
}

func (s *Store) Clear() {
	s.mu.Lock()
	changed := len(s.items) > 0
	s.items = nil
	s.index = make(map[string]int)
	s.unlockAndNotify(changed)
}

func (s *Store) Items() []LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyItemsLocked()
}

func (s *Store) Count() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var count int64
	for _, item := range s.items {
		count = addSat(count, item.Quantity)
	}
	return count
}

func (s *Store) TotalPrice() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total int64
	for _, item := range s.items {
		total = addSat(total, item.Price*item.Quantity)
	}
	return total
}

func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Subscribe registers fn to be called with a fresh snapshot after every change.
func (s *Store) Subscribe(fn func(Snapshot)) (cancel func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *Store) removeLocked(id string) bool {
	i, ok := s.index[id]
	if !ok {
		return false
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	delete(s.index, id)
	for j := i; j < len(s.items); j++ {
		s.index[s.items[j].ID] = j
	}
	return true
}

func (s *Store) snapshotLocked() Snapshot {
	snap := Snapshot{Items: s.copyItemsLocked()}
	for _, item := range s.items {
		snap.Count = addSat(snap.Count, item.Quantity)
		snap.TotalPrice = addSat(snap.TotalPrice, item.Price*item.Quantity)
	}
	return snap
}

func (s *Store) copyItemsLocked() []LineItem {
	items := make([]LineItem, len(s.items))
	copy(items, s.items)
	return items
}

func clampQuantity(q int64) int64 {
	return min(max(q, 1), MaxQuantity)
}

func clampPrice(p int64) int64 {
	return min(max(p, 0), MaxPrice)
}

// addSat adds two non-negative values, sticking at math.MaxInt64 instead of wrapping.
func addSat(a, b int64) int64 {
	if a > math.MaxInt64-b {
		return math.MaxInt64
	}
	return a + b
}

// unlockAndNotify releases the lock before calling subscribers so they may read the store.
func (s *Store) unlockAndNotify(changed bool) {
	if !changed || len(s.subs) == 0 {
		s.mu.Unlock()
		return
	}
	snap := s.snapshotLocked()
	subs := make([]func(Snapshot), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
}
