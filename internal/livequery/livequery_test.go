//go:build unit

package livequery_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"gin-booking/internal/infra/docstore"
	"gin-booking/internal/infra/docstore/memstore"
	"gin-booking/internal/livequery"
	"gin-booking/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	ID     string
	Status string
}

func mapRow(doc docstore.Document) (row, error) {
	return row{ID: doc.ID, Status: doc.Text("status")}, nil
}

func newStore() *memstore.Store {
	return memstore.New(clock.NewMockClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)))
}

// failingStore wraps a store and makes its listeners fail after the first snapshot.
type failingStore struct {
	docstore.Store
	cause error
}

func (f failingStore) Listen(ctx context.Context, q docstore.Query) (docstore.Listener, error) {
	inner, err := f.Store.Listen(ctx, q)
	if err != nil {
		return nil, err
	}
	return &failingListener{inner: inner, cause: f.cause}, nil
}

type failingListener struct {
	inner   docstore.Listener
	cause   error
	calls   int
	stopped bool
}

func (l *failingListener) Next() ([]docstore.Document, error) {
	l.calls++
	if l.calls > 1 {
		return nil, l.cause
	}
	return l.inner.Next()
}

func (l *failingListener) Stop() {
	l.stopped = true
	l.inner.Stop()
}

func TestSubscription(t *testing.T) {
	ctx := context.Background()
	q := docstore.NewQuery("transactions").Ordered("createdAt", docstore.Desc)

	t.Run("each snapshot replaces the whole list without duplicates", func(t *testing.T) {
		store := newStore()
		id, err := store.Add(ctx, "transactions", map[string]any{"status": "pending", "createdAt": docstore.ServerTimestamp})
		require.NoError(t, err)

		sub, err := livequery.New(store, q, mapRow).Open(ctx)
		require.NoError(t, err)
		defer sub.Release()
		assert.Equal(t, livequery.StateLoading, sub.State())

		first, err := sub.Next()
		require.NoError(t, err)
		assert.Equal(t, []row{{ID: id, Status: "pending"}}, first)
		assert.Equal(t, livequery.StateLive, sub.State())

		require.NoError(t, store.Update(ctx, "transactions", id, map[string]any{"status": "accepted"}))

		second, err := sub.Next()
		require.NoError(t, err)
		assert.Equal(t, []row{{ID: id, Status: "accepted"}}, second)
	})

	t.Run("a listener error stops further updates", func(t *testing.T) {
		cause := errors.New("permission denied")
		store := failingStore{Store: newStore(), cause: cause}

		sub, err := livequery.New(store, q, mapRow).Open(ctx)
		require.NoError(t, err)
		defer sub.Release()

		_, err = sub.Next()
		require.NoError(t, err)

		_, err = sub.Next()
		assert.ErrorIs(t, err, cause)
		assert.Equal(t, livequery.StateFailed, sub.State())

		_, err = sub.Next()
		assert.ErrorIs(t, err, cause, "failure is sticky until reopened")
	})

	t.Run("mapping errors fail the subscription", func(t *testing.T) {
		store := newStore()
		_, err := store.Add(ctx, "transactions", map[string]any{"status": "pending", "createdAt": docstore.ServerTimestamp})
		require.NoError(t, err)

		bad := errors.New("bad document")
		sub, err := livequery.New(store, q, func(docstore.Document) (row, error) { return row{}, bad }).Open(ctx)
		require.NoError(t, err)
		defer sub.Release()

		_, err = sub.Next()
		assert.ErrorIs(t, err, bad)
		assert.Equal(t, 0, store.ListenerCount("transactions"))
	})

	t.Run("release unblocks a pending Next and frees the listener", func(t *testing.T) {
		store := newStore()
		sub, err := livequery.New(store, q, mapRow).Open(ctx)
		require.NoError(t, err)
		_, err = sub.Next()
		require.NoError(t, err)

		done := make(chan error, 1)
		go func() {
			_, err := sub.Next()
			done <- err
		}()

		sub.Release()
		sub.Release()

		select {
		case err := <-done:
			assert.ErrorIs(t, err, livequery.ErrReleased)
		case <-time.After(time.Second):
			t.Fatal("Next did not return after Release")
		}
		assert.Equal(t, livequery.StateReleased, sub.State())
		assert.Equal(t, 0, store.ListenerCount("transactions"))
	})

	t.Run("All yields until released and can be reopened", func(t *testing.T) {
		store := newStore()
		live := livequery.New(store, q, mapRow)

		sub, err := live.Open(ctx)
		require.NoError(t, err)

		count := 0
		for items, err := range sub.All() {
			require.NoError(t, err)
			assert.Empty(t, items)
			count++
			sub.Release()
		}
		assert.Equal(t, 1, count)

		again, err := live.Open(ctx)
		require.NoError(t, err)
		defer again.Release()
		items, err := again.Next()
		require.NoError(t, err)
		assert.Empty(t, items)
	})
}

type countingReleaser struct{ released int }

func (c *countingReleaser) Release() { c.released++ }

func TestTracker(t *testing.T) {
	tracker := livequery.NewTracker(slog.New(slog.DiscardHandler))
	key := livequery.Key{Owner: "u1/transactions", Query: "transactions|createdAt desc"}

	first := &countingReleaser{}
	second := &countingReleaser{}

	tracker.Mount(key, first)
	assert.Equal(t, 1, tracker.Active())

	tracker.Mount(key, second)
	assert.Equal(t, 1, tracker.Active(), "one subscription per screen and query")
	assert.Equal(t, 1, first.released)

	tracker.Unmount(key, first)
	assert.Equal(t, 1, tracker.Active(), "stale unmount keeps the newer subscription")

	tracker.Unmount(key, second)
	assert.Equal(t, 0, tracker.Active())
	assert.Equal(t, 1, second.released)

	other := &countingReleaser{}
	tracker.Mount(livequery.Key{Owner: "u2/appointments", Query: "q"}, other)
	tracker.ReleaseAll()
	assert.Equal(t, 0, tracker.Active())
	assert.Equal(t, 1, other.released)
}

func TestSortedLocally(t *testing.T) {
	ctx := context.Background()
	store := newStore()
	for id, rank := range map[string]int{"a": 2, "b": 3, "c": 1} {
		require.NoError(t, store.Create(ctx, "transactions", id, map[string]any{"userId": "u2", "rank": rank}))
	}
	require.NoError(t, store.Create(ctx, "transactions", "other", map[string]any{"userId": "u9", "rank": 9}))

	live := livequery.New(store, docstore.NewQuery("transactions").WhereEqual("userId", "u2"), mapRow).
		SortedLocally("rank", docstore.Desc)
	assert.Nil(t, live.Query().OrderBy)

	sub, err := live.Open(ctx)
	require.NoError(t, err)
	defer sub.Release()

	items, err := sub.Next()
	require.NoError(t, err)
	assert.Equal(t, []row{{ID: "b"}, {ID: "a"}, {ID: "c"}}, items)

	require.NoError(t, store.Update(ctx, "transactions", "c", map[string]any{"rank": 5}))
	items, err = sub.Next()
	require.NoError(t, err)
	assert.Equal(t, []row{{ID: "c"}, {ID: "b"}, {ID: "a"}}, items)

	mapped := livequery.Map(live, func(r row) string { return r.ID })
	msub, err := mapped.Open(ctx)
	require.NoError(t, err)
	defer msub.Release()
	ids, err := msub.Next()
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "b", "a"}, ids)
}
