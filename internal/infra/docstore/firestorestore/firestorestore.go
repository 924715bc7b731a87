// Package firestorestore adapts Cloud Firestore to docstore.Store.
package firestorestore

import (
	"context"
	"errors"

	"gin-booking/internal/infra/docstore"
	"gin-booking/internal/pkg/errs"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Store struct {
	client *firestore.Client
}

var _ docstore.Store = (*Store)(nil)

func New(client *firestore.Client) *Store {
	return &Store{client: client}
}

func (s *Store) Get(ctx context.Context, collection, id string) (docstore.Document, error) {
	snap, err := s.client.Collection(collection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return docstore.Document{}, docstore.ErrNotFound
		}
		return docstore.Document{}, errs.Wrapf(err, "get %s/%s", collection, id)
	}
	return toDocument(snap), nil
}

func (s *Store) Query(ctx context.Context, q docstore.Query) ([]docstore.Document, error) {
	snaps, err := s.build(q).Documents(ctx).GetAll()
	if err != nil {
		return nil, errs.Wrapf(err, "query %s", q.Key())
	}
	return toDocuments(snaps), nil
}

func (s *Store) build(q docstore.Query) firestore.Query {
	query := s.client.Collection(q.Collection).Query
	if q.Where != nil {
		query = query.Where(q.Where.Field, "==", q.Where.Value)
	}
	if q.OrderBy != nil {
		dir := firestore.Asc
		if q.OrderBy.Direction == docstore.Desc {
			dir = firestore.Desc
		}
		query = query.OrderBy(q.OrderBy.Field, dir)
	}
	return query
}

func (s *Store) Add(ctx context.Context, collection string, fields map[string]any) (string, error) {
	ref, _, err := s.client.Collection(collection).Add(ctx, toFirestore(fields))
	if err != nil {
		return "", errs.Wrapf(err, "add to %s", collection)
	}
	return ref.ID, nil
}

func (s *Store) Create(ctx context.Context, collection, id string, fields map[string]any) error {
	_, err := s.client.Collection(collection).Doc(id).Create(ctx, toFirestore(fields))
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return docstore.ErrAlreadyExists
		}
		return errs.Wrapf(err, "create %s/%s", collection, id)
	}
	return nil
}

func (s *Store) Set(ctx context.Context, collection, id string, fields map[string]any, opts ...docstore.SetOption) error {
	var setOpts []firestore.SetOption
	if docstore.HasMerge(opts) {
		setOpts = append(setOpts, firestore.MergeAll)
	}
	if _, err := s.client.Collection(collection).Doc(id).Set(ctx, toFirestore(fields), setOpts...); err != nil {
		return errs.Wrapf(err, "set %s/%s", collection, id)
	}
	return nil
}

func (s *Store) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	updates := make([]firestore.Update, 0, len(fields))
	for k, v := range toFirestore(fields) {
		updates = append(updates, firestore.Update{Path: k, Value: v})
	}
	if _, err := s.client.Collection(collection).Doc(id).Update(ctx, updates); err != nil {
		if status.Code(err) == codes.NotFound {
			return docstore.ErrNotFound
		}
		return errs.Wrapf(err, "update %s/%s", collection, id)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, collection, id string) error {
	if _, err := s.client.Collection(collection).Doc(id).Delete(ctx); err != nil {
		return errs.Wrapf(err, "delete %s/%s", collection, id)
	}
	return nil
}

func (s *Store) Listen(ctx context.Context, q docstore.Query) (docstore.Listener, error) {
	return &listener{it: s.build(q).Snapshots(ctx)}, nil
}

type listener struct {
	it *firestore.QuerySnapshotIterator
}

func (l *listener) Next() ([]docstore.Document, error) {
	snap, err := l.it.Next()
	if err != nil {
		if errors.Is(err, iterator.Done) || status.Code(err) == codes.Canceled {
			return nil, docstore.ErrListenerClosed
		}
		return nil, errs.Wrap(err, "query snapshot")
	}
	snaps, err := snap.Documents.GetAll()
	if err != nil {
		return nil, errs.Wrap(err, "read query snapshot")
	}
	return toDocuments(snaps), nil
}

func (l *listener) Stop() {
	l.it.Stop()
}

func toDocument(snap *firestore.DocumentSnapshot) docstore.Document {
	return docstore.Document{ID: snap.Ref.ID, Fields: snap.Data()}
}

func toDocuments(snaps []*firestore.DocumentSnapshot) []docstore.Document {
	docs := make([]docstore.Document, 0, len(snaps))
	for _, snap := range snaps {
		docs = append(docs, toDocument(snap))
	}
	return docs
}

func toFirestore(fields map[string]any) map[string]any {
	out := docstore.CopyFields(fields)
	for k, v := range out {
		if docstore.IsServerTimestamp(v) {
			out[k] = firestore.ServerTimestamp
		}
	}
	return out
}
