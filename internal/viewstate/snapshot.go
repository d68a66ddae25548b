// Package viewstate coordinates rapid reloads of a rendered view.
package viewstate

import (
	"context"
	"sync"
)

// Snapshot holds the latest committed aggregate for one view. Each Refresh
// gets a sequence number and cancels the previous in-flight load; only the
// most recently issued request may commit its result, so a slow early
// response can never overwrite a newer one. The zero value is ready to use.
type Snapshot[T any] struct {
	mu     sync.Mutex
	seq    uint64
	cancel context.CancelFunc
	value  T
	valid  bool
}

// Refresh runs load and commits its result if no newer Refresh was issued in
// the meantime. On load failure the previously committed value is returned
// alongside the error, leaving the view stale but valid. Superseded calls
// return the latest committed value without error.
func (s *Snapshot[T]) Refresh(ctx context.Context, load func(context.Context) (T, error)) (T, error) {
	loadCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.cancel = cancel
	s.seq++
	seq := s.seq
	s.mu.Unlock()

	value, err := load(loadCtx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		return s.value, err
	}
	if seq != s.seq {
		return s.value, nil
	}
	s.value = value
	s.valid = true

	return value, nil
}

// Latest returns the last committed value and whether one exists.
func (s *Snapshot[T]) Latest() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.value, s.valid
}
