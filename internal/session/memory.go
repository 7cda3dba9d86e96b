package session

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	sess    Session
	expires time.Time
}

// MemoryStore keeps sessions in process. It is used when Redis is not
// configured; sessions do not survive a restart.
type MemoryStore struct {
	mu    sync.Mutex
	items map[string]entry
	now   func() time.Time
}

func NewMemoryStore(now func() time.Time) *MemoryStore {
	if now == nil {
		now = time.Now
	}
	return &MemoryStore{
		items: make(map[string]entry),
		now:   now,
	}
}

func (s *MemoryStore) Save(_ context.Context, token string, sess Session, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.evictExpired()
	s.items[token] = entry{sess: sess, expires: s.now().Add(ttl)}
	return nil
}

func (s *MemoryStore) Get(_ context.Context, token string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.items[token]
	if !ok {
		return nil, ErrNotFound
	}
	if !s.now().Before(e.expires) {
		delete(s.items, token)
		return nil, ErrNotFound
	}
	sess := e.sess
	return &sess, nil
}

func (s *MemoryStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.items, token)
	return nil
}

// caller holds mu
func (s *MemoryStore) evictExpired() {
	now := s.now()
	for k, e := range s.items {
		if !now.Before(e.expires) {
			delete(s.items, k)
		}
	}
}

var _ Store = (*MemoryStore)(nil)
