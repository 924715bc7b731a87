//go:build unit

package memstore_test

import (
	"context"
	"testing"
	"time"

	"gin-booking/internal/infra/docstore"
	"gin-booking/internal/infra/docstore/memstore"
	"gin-booking/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type MemStoreTestSuite struct {
	suite.Suite
	ctx   context.Context
	clock *clock.MockClock
	store *memstore.Store
}

func (s *MemStoreTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.clock = clock.NewMockClock(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))
	s.store = memstore.New(s.clock)
}

func TestMemStoreSuite(t *testing.T) {
	suite.Run(t, new(MemStoreTestSuite))
}

func (s *MemStoreTestSuite) TestGet() {
	s.Run("missing document returns ErrNotFound", func() {
		_, err := s.store.Get(s.ctx, "admins", "nobody")
		s.ErrorIs(err, docstore.ErrNotFound)
	})

	s.Run("returns a copy of the stored fields", func() {
		require.NoError(s.T(), s.store.Set(s.ctx, "admins", "u1", map[string]any{"displayName": "Boss"}))

		doc, err := s.store.Get(s.ctx, "admins", "u1")
		s.Require().NoError(err)
		doc.Fields["displayName"] = "changed"

		again, err := s.store.Get(s.ctx, "admins", "u1")
		s.Require().NoError(err)
		s.Equal("Boss", again.Text("displayName"))
	})
}

func (s *MemStoreTestSuite) TestWrites() {
	s.Run("server timestamp resolves to the store clock", func() {
		id, err := s.store.Add(s.ctx, "transactions", map[string]any{"status": "pending", "createdAt": docstore.ServerTimestamp})
		s.Require().NoError(err)
		s.NotEmpty(id)

		doc, err := s.store.Get(s.ctx, "transactions", id)
		s.Require().NoError(err)
		s.Equal(s.clock.Now(), *doc.Time("createdAt"))
	})

	s.Run("create rejects an existing id", func() {
		s.Require().NoError(s.store.Create(s.ctx, "account_emails", "a@example.com", map[string]any{"uid": "u1"}))
		err := s.store.Create(s.ctx, "account_emails", "a@example.com", map[string]any{"uid": "u2"})
		s.ErrorIs(err, docstore.ErrAlreadyExists)
	})

	s.Run("merge set keeps other fields", func() {
		s.Require().NoError(s.store.Set(s.ctx, "customers", "u2", map[string]any{"name": "Old", "email": "c@example.com"}))
		s.Require().NoError(s.store.Set(s.ctx, "customers", "u2", map[string]any{"name": "New"}, docstore.Merge))

		doc, err := s.store.Get(s.ctx, "customers", "u2")
		s.Require().NoError(err)
		s.Equal("New", doc.Text("name"))
		s.Equal("c@example.com", doc.Text("email"))
	})

	s.Run("plain set replaces the document", func() {
		s.Require().NoError(s.store.Set(s.ctx, "customers", "u3", map[string]any{"name": "A", "email": "a@example.com"}))
		s.Require().NoError(s.store.Set(s.ctx, "customers", "u3", map[string]any{"name": "B"}))

		doc, err := s.store.Get(s.ctx, "customers", "u3")
		s.Require().NoError(err)
		s.False(doc.Has("email"))
	})

	s.Run("update of a missing document returns ErrNotFound", func() {
		err := s.store.Update(s.ctx, "transactions", "missing", map[string]any{"status": "accepted"})
		s.ErrorIs(err, docstore.ErrNotFound)
	})

	s.Run("delete is a no-op for missing documents", func() {
		s.NoError(s.store.Delete(s.ctx, "services", "missing"))
	})
}

func (s *MemStoreTestSuite) TestListen() {
	q := docstore.NewQuery("services").Ordered("name", docstore.Asc)

	s.Run("delivers the initial snapshot and every change", func() {
		_, err := s.store.Add(s.ctx, "services", map[string]any{"name": "Wash", "price": 10.0})
		s.Require().NoError(err)

		l, err := s.store.Listen(s.ctx, q)
		s.Require().NoError(err)
		defer l.Stop()

		docs, err := l.Next()
		s.Require().NoError(err)
		s.Len(docs, 1)

		_, err = s.store.Add(s.ctx, "services", map[string]any{"name": "Oil Change", "price": 29.99})
		s.Require().NoError(err)

		docs, err = l.Next()
		s.Require().NoError(err)
		s.Require().Len(docs, 2)
		s.Equal("Oil Change", docs[0].Text("name"))
	})

	s.Run("stop ends the listener and unregisters it", func() {
		l, err := s.store.Listen(s.ctx, q)
		s.Require().NoError(err)
		s.Equal(1, s.store.ListenerCount("services"))

		l.Stop()
		l.Stop()

		_, err = l.Next()
		s.ErrorIs(err, docstore.ErrListenerClosed)
		s.Equal(0, s.store.ListenerCount("services"))
	})

	s.Run("context cancellation stops the listener", func() {
		ctx, cancel := context.WithCancel(s.ctx)
		l, err := s.store.Listen(ctx, q)
		s.Require().NoError(err)
		_, err = l.Next()
		s.Require().NoError(err)

		cancel()

		assert.Eventually(s.T(), func() bool {
			return s.store.ListenerCount("services") == 0
		}, time.Second, 10*time.Millisecond)
		_, err = l.Next()
		s.ErrorIs(err, docstore.ErrListenerClosed)
	})

	s.Run("writes to other collections do not wake the listener", func() {
		l, err := s.store.Listen(s.ctx, q)
		s.Require().NoError(err)
		defer l.Stop()
		_, err = l.Next()
		s.Require().NoError(err)

		s.Require().NoError(s.store.Set(s.ctx, "admins", "u1", map[string]any{}))

		got := make(chan struct{})
		go func() {
			_, _ = l.Next()
			close(got)
		}()
		select {
		case <-got:
			s.Fail("listener woke up for an unrelated collection")
		case <-time.After(50 * time.Millisecond):
		}
	})
}
