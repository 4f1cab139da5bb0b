package booking

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session is one client's open wizard. A client has at most one; opening a
// wizard for another listing replaces it with a fresh draft.
type Session struct {
	ID        string    `json:"id"`
	ClientID  string    `json:"-"`
	Wizard    *Wizard   `json:"wizard"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Store holds wizard sessions in memory only, mirroring the source where the
// draft lived in component state and vanished with the modal. Sessions idle
// past the TTL are dropped lazily on access.
type Store struct {
	mu       sync.Mutex
	byClient map[string]*Session
	ttl      time.Duration
	now      func() time.Time
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		byClient: make(map[string]*Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (s *Store) Open(clientID string, listing Listing) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	sess := &Session{
		ID:        uuid.NewString(),
		ClientID:  clientID,
		Wizard:    NewWizard(listing),
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.byClient[clientID] = sess
	return sess
}

func (s *Store) Get(clientID string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.byClient[clientID]
	if !ok {
		return nil, false
	}
	if s.now().Sub(sess.UpdatedAt) > s.ttl {
		delete(s.byClient, clientID)
		return nil, false
	}
	sess.UpdatedAt = s.now()
	return sess, true
}

// Close discards the session and its draft entirely.
func (s *Store) Close(clientID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.byClient, clientID)
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.byClient)
}
