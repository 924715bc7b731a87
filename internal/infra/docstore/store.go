// Package docstore is the document database port: collections of keyed
// documents with point reads, ordered queries, merge-writes and realtime
// listeners. Adapters live in the subpackages.
package docstore

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrNotFound       = errors.New("document not found")
	ErrAlreadyExists  = errors.New("document already exists")
	ErrListenerClosed = errors.New("listener closed")
)

type serverTimestamp struct{}

// ServerTimestamp is replaced by the store's clock when the write is applied.
var ServerTimestamp = serverTimestamp{}

func IsServerTimestamp(v any) bool {
	_, ok := v.(serverTimestamp)
	return ok
}

type Direction int

const (
	Asc Direction = iota
	Desc
)

func (d Direction) String() string {
	if d == Desc {
		return "desc"
	}
	return "asc"
}

// Filter is an equality filter on a top-level field.
type Filter struct {
	Field string
	Value any
}

type Order struct {
	Field     string
	Direction Direction
}

// Query describes a collection read. Documents lacking the order field are
// excluded, matching Firestore.
type Query struct {
	Collection string
	Where      *Filter
	OrderBy    *Order
}

func NewQuery(collection string) Query {
	return Query{Collection: collection}
}

func (q Query) WhereEqual(field string, value any) Query {
	q.Where = &Filter{Field: field, Value: value}
	return q
}

func (q Query) Ordered(field string, dir Direction) Query {
	q.OrderBy = &Order{Field: field, Direction: dir}
	return q
}

// Key identifies the query for subscription bookkeeping.
func (q Query) Key() string {
	key := q.Collection
	if q.Where != nil {
		key += fmt.Sprintf("|%s==%v", q.Where.Field, q.Where.Value)
	}
	if q.OrderBy != nil {
		key += fmt.Sprintf("|%s %s", q.OrderBy.Field, q.OrderBy.Direction)
	}
	return key
}

type SetOption int

const (
	// Merge writes only the given top-level fields and keeps the rest.
	Merge SetOption = iota + 1
)

func HasMerge(opts []SetOption) bool {
	for _, o := range opts {
		if o == Merge {
			return true
		}
	}
	return false
}

// Listener delivers the full current result set of a query on every change.
// The first call to Next returns the initial snapshot.
type Listener interface {
	Next() ([]Document, error)
	Stop()
}

type Store interface {
	Get(ctx context.Context, collection, id string) (Document, error)
	Query(ctx context.Context, q Query) ([]Document, error)
	// Add stores the fields under a generated id.
	Add(ctx context.Context, collection string, fields map[string]any) (string, error)
	// Create fails with ErrAlreadyExists when the id is taken.
	Create(ctx context.Context, collection, id string, fields map[string]any) error
	Set(ctx context.Context, collection, id string, fields map[string]any, opts ...SetOption) error
	// Update merges fields into an existing document and fails with ErrNotFound otherwise.
	Update(ctx context.Context, collection, id string, fields map[string]any) error
	Delete(ctx context.Context, collection, id string) error
	// Listen stops when ctx is done or Stop is called.
	Listen(ctx context.Context, q Query) (Listener, error)
}
