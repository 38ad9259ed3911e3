package service

import (
	"context"
	"sync"
)

// Result is the last value committed to a Slot.
type Result[T any] struct {
	Value T
	Err   error
}

// Slot holds the latest result of one kind of fetch. Each fetch takes a
// token; starting a new fetch cancels the previous one, and a result whose
// token is no longer current is discarded.
type Slot[T any] struct {
	name string

	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc
	last   Result[T]
	filled bool
}

func NewSlot[T any](name string) *Slot[T] {
	return &Slot[T]{name: name}
}

func (s *Slot[T]) Name() string { return s.name }

// Begin starts a fetch. The returned context is cancelled when a newer
// fetch begins or this one commits.
func (s *Slot[T]) Begin(ctx context.Context) (context.Context, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
	}
	s.gen++
	fetchCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	return fetchCtx, s.gen
}

// Commit stores the outcome if token is still current and reports whether
// it did.
func (s *Slot[T]) Commit(token uint64, v T, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if token != s.gen {
		return false
	}
	s.last = Result[T]{Value: v, Err: err}
	s.filled = true
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	return true
}

// Current returns the last committed result, if any.
func (s *Slot[T]) Current() (Result[T], bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last, s.filled
}
