// Package memstore is an in-process docstore.Store used for local runs and tests.
package memstore

import (
	"context"
	"maps"
	"sync"

	"gin-booking/internal/infra/docstore"
	"gin-booking/internal/pkg/clock"

	"github.com/google/uuid"
)

type Store struct {
	mu          sync.RWMutex
	collections map[string]map[string]map[string]any
	listeners   map[string]map[*listener]struct{}
	clock       clock.Clock
}

var _ docstore.Store = (*Store)(nil)

func New(clk clock.Clock) *Store {
	return &Store{
		collections: make(map[string]map[string]map[string]any),
		listeners:   make(map[string]map[*listener]struct{}),
		clock:       clk,
	}
}

func (s *Store) Get(_ context.Context, collection, id string) (docstore.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	fields, ok := s.collections[collection][id]
	if !ok {
		return docstore.Document{}, docstore.ErrNotFound
	}
	return docstore.Document{ID: id, Fields: maps.Clone(fields)}, nil
}

func (s *Store) Query(_ context.Context, q docstore.Query) ([]docstore.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.query(q), nil
}

func (s *Store) query(q docstore.Query) []docstore.Document {
	docs := make([]docstore.Document, 0, len(s.collections[q.Collection]))
	for id, fields := range s.collections[q.Collection] {
		docs = append(docs, docstore.Document{ID: id, Fields: maps.Clone(fields)})
	}
	return docstore.Apply(q, docs)
}

func (s *Store) Add(ctx context.Context, collection string, fields map[string]any) (string, error) {
	id := uuid.NewString()
	if err := s.Create(ctx, collection, id, fields); err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) Create(_ context.Context, collection, id string, fields map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.collections[collection][id]; ok {
		return docstore.ErrAlreadyExists
	}
	s.put(collection, id, docstore.ResolveServerTimestamps(fields, s.clock.Now()))
	return nil
}

func (s *Store) Set(_ context.Context, collection, id string, fields map[string]any, opts ...docstore.SetOption) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	resolved := docstore.ResolveServerTimestamps(fields, s.clock.Now())
	if existing, ok := s.collections[collection][id]; ok && docstore.HasMerge(opts) {
		merged := maps.Clone(existing)
		maps.Copy(merged, resolved)
		resolved = merged
	}
	s.put(collection, id, resolved)
	return nil
}

func (s *Store) Update(_ context.Context, collection, id string, fields map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.collections[collection][id]
	if !ok {
		return docstore.ErrNotFound
	}
	merged := maps.Clone(existing)
	maps.Copy(merged, docstore.ResolveServerTimestamps(fields, s.clock.Now()))
	s.put(collection, id, merged)
	return nil
}

func (s *Store) Delete(_ context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.collections[collection][id]; !ok {
		return nil
	}
	delete(s.collections[collection], id)
	s.notify(collection)
	return nil
}

func (s *Store) Listen(ctx context.Context, q docstore.Query) (docstore.Listener, error) {
	l := &listener{
		store:  s,
		query:  q,
		signal: make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
	// initial snapshot
	l.signal <- struct{}{}

	s.mu.Lock()
	if s.listeners[q.Collection] == nil {
		s.listeners[q.Collection] = make(map[*listener]struct{})
	}
	s.listeners[q.Collection][l] = struct{}{}
	s.mu.Unlock()

	go func() {
		select {
		case <-ctx.Done():
			l.Stop()
		case <-l.done:
		}
	}()
	return l, nil
}

// ListenerCount reports the number of open listeners on a collection.
func (s *Store) ListenerCount(collection string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.listeners[collection])
}

// must hold s.mu
func (s *Store) put(collection, id string, fields map[string]any) {
	if s.collections[collection] == nil {
		s.collections[collection] = make(map[string]map[string]any)
	}
	s.collections[collection][id] = fields
	s.notify(collection)
}

// must hold s.mu; signals coalesce so a slow reader only sees the latest state
func (s *Store) notify(collection string) {
	for l := range s.listeners[collection] {
		select {
		case l.signal <- struct{}{}:
		default:
		}
	}
}

func (s *Store) unregister(l *listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.listeners[l.query.Collection], l)
}

type listener struct {
	store  *Store
	query  docstore.Query
	signal chan struct{}
	done   chan struct{}
	once   sync.Once
}

func (l *listener) Next() ([]docstore.Document, error) {
	select {
	case <-l.done:
		return nil, docstore.ErrListenerClosed
	default:
	}

	select {
	case <-l.done:
		return nil, docstore.ErrListenerClosed
	case <-l.signal:
		l.store.mu.RLock()
		defer l.store.mu.RUnlock()
		return l.store.query(l.query), nil
	}
}

func (l *listener) Stop() {
	l.once.Do(func() {
		close(l.done)
		l.store.unregister(l)
	})
}
