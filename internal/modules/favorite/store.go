package favorite

import (
	"sort"
	"sync"
)

// Store keeps each client's liked listings in memory only. The source app
// held the liked set in component state and never persisted it; restarting
// the service forgets every like, and that is intended.
type Store struct {
	mu    sync.RWMutex
	liked map[string]map[int64]bool
}

func NewStore() *Store {
	return &Store{
		liked: make(map[string]map[int64]bool),
	}
}

// Toggle flips the liked flag and returns the new state. Toggling twice
// always restores the original state.
func (s *Store) Toggle(clientID string, listingID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	set, ok := s.liked[clientID]
	if !ok {
		set = make(map[int64]bool)
		s.liked[clientID] = set
	}

	if set[listingID] {
		delete(set, listingID)
		if len(set) == 0 {
			delete(s.liked, clientID)
		}
		return false
	}
	set[listingID] = true
	return true
}

func (s *Store) IsLiked(clientID string, listingID int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.liked[clientID][listingID]
}

// List returns the client's liked listing ids in ascending order.
func (s *Store) List(clientID string) []int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	set := s.liked[clientID]
	out := make([]int64, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
