// Package memory provides an in-memory tokenstore.Store, used in tests and
// as the fallback when the durable store cannot be opened.
package memory

import (
	"sync"

	"github.com/ananidze/tradesync/pkg/tokenstore"
)

type Store struct {
	mu    sync.RWMutex
	slots map[tokenstore.Slot]string
}

func New() *Store {
	return &Store{slots: make(map[tokenstore.Slot]string)}
}

func (s *Store) Get(slot tokenstore.Slot) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	token, ok := s.slots[slot]
	return token, ok
}

func (s *Store) Set(slot tokenstore.Slot, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[slot] = token
}

func (s *Store) Clear(slot tokenstore.Slot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.slots, slot)
}

func (s *Store) ClearAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.slots, tokenstore.SlotSession)
	delete(s.slots, tokenstore.SlotPendingChallenge)
}
