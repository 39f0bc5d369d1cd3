package impl

import (
	"sync"

	"gymtrack/internal/domain/nutrition"

	"github.com/google/uuid"
)

// BasketStore keeps one in-memory selection basket per user.
// Work on a single user's basket is serialized; different users do not block each other.
// Only non-empty baskets outlive the call that touched them.
type BasketStore struct {
	mu      sync.Mutex
	baskets map[uuid.UUID]*lockedBasket
}

type lockedBasket struct {
	mu     sync.Mutex
	basket *nutrition.Basket
	// refs counts callers between acquire and release, guarded by BasketStore.mu.
	refs int
}

// NewBasketStore creates an empty store.
func NewBasketStore() *BasketStore {
	return &BasketStore{baskets: make(map[uuid.UUID]*lockedBasket)}
}

// With runs fn while holding the user's basket lock, creating the basket on first use.
// A basket left empty is dropped once no other caller holds it.
func (s *BasketStore) With(userID uuid.UUID, fn func(b *nutrition.Basket) error) error {
	entry := s.acquire(userID)
	defer s.release(userID, entry)

	entry.mu.Lock()
	defer entry.mu.Unlock()

	return fn(entry.basket)
}

func (s *BasketStore) acquire(userID uuid.UUID) *lockedBasket {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.baskets[userID]
	if !ok {
		entry = &lockedBasket{basket: nutrition.NewBasket()}
		s.baskets[userID] = entry
	}
	entry.refs++

	return entry
}

func (s *BasketStore) release(userID uuid.UUID, entry *lockedBasket) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry.refs--
	// With no refs left nobody can be inside entry.mu, so reading the basket is safe.
	if entry.refs == 0 && entry.basket.Len() == 0 {
		delete(s.baskets, userID)
	}
}

func (s *BasketStore) size() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.baskets)
}
