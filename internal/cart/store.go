package cart

import "sync"

// Store holds the live cart of each session, keyed by user ID. Carts exist
// only in memory; they are never persisted. Access to one cart is serialized
// through Do so a session's mutations apply in the order issued.
type Store struct {
	mu    sync.Mutex
	carts map[int64]*Cart
}

// NewStore creates an empty cart store.
func NewStore() *Store {
	return &Store{carts: make(map[int64]*Cart)}
}

// Do runs fn against the user's cart, creating an empty cart on first use.
// The store lock is held for the duration of fn.
func (s *Store) Do(userID int64, fn func(*Cart) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.carts[userID]
	if !ok {
		c = New()
		s.carts[userID] = c
	}
	return fn(c)
}

// Drop removes the user's cart, if any.
func (s *Store) Drop(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, userID)
}
