package services

import (
	"log"
	"sync"

	"github.com/arulmigu/tiruchendur-assist-backend/internal/models"
)

// StateStore holds per-user dialogue state keyed by user identifier.
// The dialogue engine only sees this interface so the backing store can
// be swapped for a persistent one without touching transition logic.
type StateStore interface {
	Get(userID string) (*models.UserState, bool)
	Put(state *models.UserState)
	Delete(userID string)
	Count() int
}

// MemoryStateStore keeps user states in a mutex-guarded map
type MemoryStateStore struct {
	mu     sync.RWMutex
	states map[string]*models.UserState
}

// NewMemoryStateStore creates an empty in-memory state store
func NewMemoryStateStore() *MemoryStateStore {
	return &MemoryStateStore{
		states: make(map[string]*models.UserState),
	}
}

func (s *MemoryStateStore) Get(userID string) (*models.UserState, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, exists := s.states[userID]
	return state, exists
}

func (s *MemoryStateStore) Put(state *models.UserState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[state.UserID] = state
}

func (s *MemoryStateStore) Delete(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.states[userID]; exists {
		delete(s.states, userID)
		log.Printf("Session ended for %s", userID)
	}
}

// Count returns the number of active conversations (for monitoring)
func (s *MemoryStateStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.states)
}
