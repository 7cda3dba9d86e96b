package memstore

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/BruksfildServices01/barber-frontdesk/internal/domain/frontdesk"
)

// Store keeps the current front desk snapshot in memory. Readers load the
// published pointer without locking; writers are serialized by mu.
type Store struct {
	mu      sync.Mutex
	current atomic.Pointer[frontdesk.Snapshot]
}

func New(initial frontdesk.Snapshot) *Store {
	s := &Store{}
	initial.Version = 1
	s.current.Store(&initial)
	return s
}

func (s *Store) Snapshot(ctx context.Context) (frontdesk.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return frontdesk.Snapshot{}, err
	}
	return *s.current.Load(), nil
}

func (s *Store) Update(
	ctx context.Context,
	fn frontdesk.UpdateFunc,
) (frontdesk.Snapshot, error) {

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return frontdesk.Snapshot{}, err
	}

	cur := s.current.Load()
	next, err := fn(*cur)
	if err != nil {
		return frontdesk.Snapshot{}, err
	}

	next.Version = cur.Version + 1
	s.current.Store(&next)
	return next, nil
}

var _ frontdesk.Repository = (*Store)(nil)
