package service

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/walterflo/pizzeria-service/internal/metrics"
)

// CartStore keeps the live visitor carts in memory.
//
// Carts are session-scoped by design: they expire after a TTL of inactivity
// and the store evicts the least recently used cart when at capacity.
// Nothing is ever written to disk.
type CartStore struct {
	mu       sync.Mutex
	capacity int
	ttl      time.Duration
	carts    map[string]*cartEntry
	head     *cartEntry
	tail     *cartEntry
	stopCh   chan struct{}
	stopOnce sync.Once
}

// cartEntry is one stored cart with its expiry, linked into the LRU list.
type cartEntry struct {
	id        string
	cart      *Cart
	expiresAt time.Time
	prev      *cartEntry
	next      *cartEntry
}

// NewCartStore creates a store holding at most capacity carts, each expiring
// ttl after its last access. A background goroutine sweeps expired carts.
func NewCartStore(capacity int, ttl time.Duration) *CartStore {
	s := &CartStore{
		capacity: capacity,
		ttl:      ttl,
		carts:    make(map[string]*cartEntry, capacity),
		stopCh:   make(chan struct{}),
	}
	go s.sweep()
	return s
}

// Create allocates a new empty cart and returns its session ID.
func (s *CartStore) Create() (string, *Cart) {
	id := uuid.New().String()
	cart := NewCart()

	s.mu.Lock()
	entry := &cartEntry{
		id:        id,
		cart:      cart,
		expiresAt: time.Now().Add(s.ttl),
	}
	s.carts[id] = entry
	s.addToFront(entry)
	if len(s.carts) > s.capacity {
		s.removeTail()
		metrics.RecordCartStoreOperation("evict", "capacity")
	}
	size := len(s.carts)
	s.mu.Unlock()

	metrics.RecordCartStoreOperation("create", "success")
	metrics.SetActiveCarts(size)
	return id, cart
}

// Get returns the cart for the given session ID if it exists and has not
// expired. A hit refreshes both the TTL and the LRU position.
func (s *CartStore) Get(id string) (*Cart, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.carts[id]
	if !ok {
		metrics.RecordCartStoreOperation("get", "miss")
		return nil, false
	}
	if time.Now().After(entry.expiresAt) {
		s.removeEntry(entry)
		metrics.RecordCartStoreOperation("get", "expired")
		metrics.SetActiveCarts(len(s.carts))
		return nil, false
	}

	entry.expiresAt = time.Now().Add(s.ttl)
	s.moveToFront(entry)
	metrics.RecordCartStoreOperation("get", "hit")
	return entry.cart, true
}

// Remove deletes the cart for the given session ID, if present.
func (s *CartStore) Remove(id string) {
	s.mu.Lock()
	if entry, ok := s.carts[id]; ok {
		s.removeEntry(entry)
	}
	size := len(s.carts)
	s.mu.Unlock()

	metrics.SetActiveCarts(size)
}

// Len returns the number of live carts.
func (s *CartStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.carts)
}

// Stop shuts down the background sweeper.
func (s *CartStore) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopCh)
	})
}

// sweep periodically drops expired carts.
func (s *CartStore) sweep() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.dropExpired()
		case <-s.stopCh:
			return
		}
	}
}

// dropExpired removes every cart past its expiry.
func (s *CartStore) dropExpired() {
	s.mu.Lock()
	now := time.Now()
	for _, entry := range s.carts {
		if now.After(entry.expiresAt) {
			s.removeEntry(entry)
			metrics.RecordCartStoreOperation("evict", "expired")
		}
	}
	size := len(s.carts)
	s.mu.Unlock()

	metrics.SetActiveCarts(size)
}

// removeEntry unlinks an entry from both the map and the LRU list. Caller
// holds the lock.
func (s *CartStore) removeEntry(entry *cartEntry) {
	delete(s.carts, entry.id)
	s.unlink(entry)
}

func (s *CartStore) moveToFront(entry *cartEntry) {
	if entry == s.head {
		return
	}
	s.unlink(entry)
	s.addToFront(entry)
}

func (s *CartStore) addToFront(entry *cartEntry) {
	entry.prev = nil
	entry.next = s.head
	if s.head != nil {
		s.head.prev = entry
	}
	s.head = entry
	if s.tail == nil {
		s.tail = entry
	}
}

func (s *CartStore) unlink(entry *cartEntry) {
	if entry.prev != nil {
		entry.prev.next = entry.next
	} else {
		s.head = entry.next
	}
	if entry.next != nil {
		entry.next.prev = entry.prev
	} else {
		s.tail = entry.prev
	}
}

// removeTail evicts the least recently used cart. Caller holds the lock.
func (s *CartStore) removeTail() {
	if s.tail == nil {
		return
	}
	delete(s.carts, s.tail.id)
	s.unlink(s.tail)
}
