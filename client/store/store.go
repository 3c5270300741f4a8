// Package store holds fetched collections in memory for screens to read.
package store

import (
	"context"
	"net/url"
	"sync"
)

type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusReady   Status = "ready"
	StatusError   Status = "error"
)

// Fetcher loads the full collection, typically Resource[T].List.
type Fetcher[T any] func(ctx context.Context, filter url.Values) ([]T, error)

// Store caches one collection. A refresh replaces the whole snapshot on
// success; on failure the previous items stay visible and only the
// status flips to error. Each refresh gets a sequence number so a slow
// earlier response can never overwrite a later one.
type Store[T any] struct {
	mu     sync.Mutex
	fetch  Fetcher[T]
	items  []T
	status Status
	err    error
	seq    uint64
}

func New[T any](fetch Fetcher[T]) *Store[T] {
	return &Store[T]{fetch: fetch, status: StatusIdle}
}

// Refresh fetches the collection and installs the result, unless a
// newer Refresh was dispatched while this one was in flight.
func (s *Store[T]) Refresh(ctx context.Context, filter url.Values) error {
	s.mu.Lock()
	s.seq++
	seq := s.seq
	s.status = StatusLoading
	s.mu.Unlock()

	items, err := s.fetch(ctx, filter)

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.seq {
		// Superseded by a later dispatch.
		return err
	}
	if err != nil {
		s.status = StatusError
		s.err = err
		return err
	}
	s.items = items
	s.status = StatusReady
	s.err = nil
	return nil
}

// Items returns a copy of the current snapshot.
func (s *Store[T]) Items() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store[T]) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

func (s *Store[T]) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *Store[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}
