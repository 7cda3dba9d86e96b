package memstore

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-frontdesk/internal/domain/employee"
	"github.com/BruksfildServices01/barber-frontdesk/internal/domain/frontdesk"
)

func TestStore_UpdatePublishesNewVersion(t *testing.T) {
	ctx := context.Background()
	s := New(frontdesk.Snapshot{})

	before, err := s.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), before.Version)

	after, err := s.Update(ctx, func(snap frontdesk.Snapshot) (frontdesk.Snapshot, error) {
		list, _, err := employee.Add(snap.Employees, "Ana", time.Unix(1, 0))
		if err != nil {
			return snap, err
		}
		snap.Employees = list
		return snap, nil
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(2), after.Version)
	assert.Len(t, after.Employees, 1)

	assert.Empty(t, before.Employees, "earlier snapshot is untouched")

	cur, err := s.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, after.Version, cur.Version)
}

func TestStore_FailedUpdateKeepsSnapshot(t *testing.T) {
	ctx := context.Background()
	s := New(frontdesk.Snapshot{})

	boom := errors.New("boom")
	_, err := s.Update(ctx, func(snap frontdesk.Snapshot) (frontdesk.Snapshot, error) {
		snap.Employees = []employee.Employee{{ID: "x", Name: "X"}}
		return snap, boom
	})
	require.ErrorIs(t, err, boom)

	cur, _ := s.Snapshot(ctx)
	assert.Equal(t, uint64(1), cur.Version)
	assert.Empty(t, cur.Employees)
}

func TestStore_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := New(frontdesk.Snapshot{})

	_, err := s.Snapshot(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = s.Update(ctx, func(snap frontdesk.Snapshot) (frontdesk.Snapshot, error) {
		return snap, nil
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStore_ConcurrentWritersAreSerialized(t *testing.T) {
	ctx := context.Background()
	s := New(frontdesk.Snapshot{})

	const writers = 50
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := s.Update(ctx, func(snap frontdesk.Snapshot) (frontdesk.Snapshot, error) {
				list, _, err := employee.Add(snap.Employees, "Emp", time.Unix(int64(i), 0))
				if err != nil {
					return snap, err
				}
				snap.Employees = list
				return snap, nil
			})
			assert.NoError(t, err)
		}(i)
		_, _ = s.Snapshot(ctx)
	}
	wg.Wait()

	cur, _ := s.Snapshot(ctx)
	assert.Len(t, cur.Employees, writers)
	assert.Equal(t, uint64(writers+1), cur.Version)
}
