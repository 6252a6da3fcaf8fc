// Package inmem keeps client states in process memory. States are lost on
// restart.
package inmem

import (
	"context"
	"time"

	"github.com/puzpuzpuz/xsync/v3"

	"github.com/sirius-scholar/scholar"
)

type entry struct {
	data    []byte
	touched time.Time
}

type Store struct {
	states *xsync.MapOf[string, entry]
	now    func() time.Time
}

var _ scholar.StateStore = (*Store)(nil)

func NewStore() *Store {
	return &Store{
		states: xsync.NewMapOf[string, entry](),
		now:    time.Now,
	}
}

func (s *Store) Get(_ context.Context, id string) ([]byte, error) {
	var data []byte
	s.states.Compute(id, func(e entry, loaded bool) (entry, bool) {
		if !loaded {
			return e, true
		}
		e.touched = s.now()
		data = e.data
		return e, false
	})
	return data, nil
}

func (s *Store) Put(_ context.Context, id string, data []byte) error {
	s.states.Store(id, entry{
		data:    append([]byte(nil), data...),
		touched: s.now(),
	})
	return nil
}

func (s *Store) Delete(_ context.Context, id string) error {
	s.states.Delete(id)
	return nil
}

func (s *Store) Sweep(_ context.Context, idle time.Duration) (int, error) {
	deadline := s.now().Add(-idle)

	n := 0
	s.states.Range(func(id string, e entry) bool {
		if e.touched.Before(deadline) {
			s.states.Delete(id)
			n++
		}
		return true
	})
	return n, nil
}

// Len returns the number of stored states.
func (s *Store) Len() int {
	return s.states.Size()
}
