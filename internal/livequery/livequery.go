// Package livequery keeps a local, ordered view of a document query in sync
// with the store. A Live describes the query; each Open yields one
// subscription that must be released by its owner.
package livequery

import (
	"context"
	"errors"
	"iter"
	"sync"

	"gin-booking/internal/infra/docstore"
	"gin-booking/internal/pkg/errs"
)

var ErrReleased = errors.New("live query released")

// Mapper turns one document into a record. Mapping failures fail the subscription.
type Mapper[T any] func(docstore.Document) (T, error)

type State int

const (
	StateLoading State = iota
	StateLive
	StateFailed
	StateReleased
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateLive:
		return "live"
	case StateFailed:
		return "failed"
	case StateReleased:
		return "released"
	default:
		return "unknown"
	}
}

type Live[T any] struct {
	store  docstore.Store
	query  docstore.Query
	mapper Mapper[T]
	// order applied to each snapshot in process instead of by the store
	order *docstore.Order
}

func New[T any](store docstore.Store, query docstore.Query, mapper Mapper[T]) *Live[T] {
	return &Live[T]{store: store, query: query, mapper: mapper}
}

// Map derives a live query over the same documents with an extra projection.
func Map[T, U any](l *Live[T], fn func(T) U) *Live[U] {
	mapped := New(l.store, l.query, func(doc docstore.Document) (U, error) {
		item, err := l.mapper(doc)
		if err != nil {
			var zero U
			return zero, err
		}
		return fn(item), nil
	})
	mapped.order = l.order
	return mapped
}

// SortedLocally orders every snapshot by field after it arrives. Used for
// filtered queries whose server-side ordering would need a composite index.
func (l *Live[T]) SortedLocally(field string, dir docstore.Direction) *Live[T] {
	sorted := *l
	sorted.order = &docstore.Order{Field: field, Direction: dir}
	return &sorted
}

func (l *Live[T]) Query() docstore.Query {
	return l.query
}

// Open starts a fresh subscription. Calling it again after a failure restarts the query.
func (l *Live[T]) Open(ctx context.Context) (*Subscription[T], error) {
	listener, err := l.store.Listen(ctx, l.query)
	if err != nil {
		return nil, errs.Wrapf(err, "open live query %s", l.query.Key())
	}
	return &Subscription[T]{
		query:    l.query,
		listener: listener,
		mapper:   l.mapper,
		order:    l.order,
	}, nil
}

type Subscription[T any] struct {
	query    docstore.Query
	listener docstore.Listener
	mapper   Mapper[T]
	order    *docstore.Order

	mu    sync.Mutex
	state State
	err   error
	once  sync.Once
}

func (s *Subscription[T]) Query() docstore.Query {
	return s.query
}

func (s *Subscription[T]) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Err is the failure that stopped the subscription, if any.
func (s *Subscription[T]) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Next blocks until the store reports the next full result set. After a
// failure it keeps returning that failure; after Release it returns ErrReleased.
func (s *Subscription[T]) Next() ([]T, error) {
	s.mu.Lock()
	switch s.state {
	case StateReleased:
		s.mu.Unlock()
		return nil, ErrReleased
	case StateFailed:
		err := s.err
		s.mu.Unlock()
		return nil, err
	}
	s.mu.Unlock()

	docs, err := s.listener.Next()
	if err == nil {
		var items []T
		items, err = s.mapAll(docs)
		if err == nil {
			s.mu.Lock()
			defer s.mu.Unlock()
			if s.state == StateReleased {
				return nil, ErrReleased
			}
			s.state = StateLive
			return items, nil
		}
	}

	s.mu.Lock()
	if s.state == StateReleased {
		s.mu.Unlock()
		return nil, ErrReleased
	}
	s.state = StateFailed
	s.err = errs.Wrapf(err, "live query %s", s.query.Key())
	failure := s.err
	s.mu.Unlock()

	s.listener.Stop()
	return nil, failure
}

func (s *Subscription[T]) mapAll(docs []docstore.Document) ([]T, error) {
	if s.order != nil {
		docstore.Sort(docs, *s.order)
	}
	items := make([]T, 0, len(docs))
	for _, doc := range docs {
		item, err := s.mapper(doc)
		if err != nil {
			return nil, errs.Wrapf(err, "map document %s", doc.ID)
		}
		items = append(items, item)
	}
	return items, nil
}

// All yields snapshots until the subscription fails or is released. A
// failure is yielded once as the final element.
func (s *Subscription[T]) All() iter.Seq2[[]T, error] {
	return func(yield func([]T, error) bool) {
		for {
			items, err := s.Next()
			if errors.Is(err, ErrReleased) {
				return
			}
			if !yield(items, err) || err != nil {
				return
			}
		}
	}
}

// Release stops the underlying listener. It is safe to call more than once
// and from another goroutine while Next is blocked.
func (s *Subscription[T]) Release() {
	s.once.Do(func() {
		s.mu.Lock()
		s.state = StateReleased
		s.mu.Unlock()
		s.listener.Stop()
	})
}
