//go:build unit

package repository_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"gin-booking/internal/domain/identity"
	"gin-booking/internal/domain/service"
	"gin-booking/internal/domain/transaction"
	"gin-booking/internal/infra"
	"gin-booking/internal/infra/docstore"
	"gin-booking/internal/infra/docstore/memstore"
	"gin-booking/internal/infra/repository"
	"gin-booking/internal/pkg/clock"
	docstoremock "gin-booking/tests/mock/docstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var discard = slog.New(slog.DiscardHandler)

// =============================================================================
// Error mapping
// =============================================================================

func TestRepository_ErrorKinds(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		storeErr   error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "not found", storeErr: docstore.ErrNotFound, expectKind: infra.KindNotFound},
		{name: "already exists", storeErr: docstore.ErrAlreadyExists, expectKind: infra.KindDuplicateKey},
		{name: "backend failure", storeErr: errors.New("connection reset"), expectKind: infra.KindStoreFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := docstoremock.NewMockStore(ctrl)
			repo := repository.NewServiceRepository(store, discard)

			store.EXPECT().Get(ctx, "services", "s1").Return(docstore.Document{}, tc.storeErr)

			_, err := repo.Get(ctx, "s1")
			require.Error(t, err)
			assert.True(t, infra.IsKind(err, tc.expectKind))
			assert.ErrorIs(t, err, tc.storeErr)
		})
	}
}

func TestAdminRepository_Exists(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name      string
		storeErr  error
		expect    bool
		expectErr bool
	}{
		{name: "document present", storeErr: nil, expect: true},
		{name: "document missing", storeErr: docstore.ErrNotFound, expect: false},
		{name: "read failure", storeErr: errors.New("unavailable"), expect: false, expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := docstoremock.NewMockStore(ctrl)
			repo := repository.NewAdminRepository(store, discard)

			store.EXPECT().Get(ctx, "admins", "u1").
				Return(docstore.Document{ID: "u1", Fields: map[string]any{}}, tc.storeErr)

			ok, err := repo.Exists(ctx, "u1")
			assert.Equal(t, tc.expect, ok)
			if tc.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// =============================================================================
// Behaviour over the in-memory store
// =============================================================================

type RepositoryTestSuite struct {
	suite.Suite
	ctx          context.Context
	clock        *clock.MockClock
	store        *memstore.Store
	services     *repository.ServiceRepository
	transactions *repository.TransactionRepository
	customers    *repository.CustomerRepository
	admins       *repository.AdminRepository
	accounts     *repository.AccountRepository
}

func (s *RepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.clock = clock.NewMockClock(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))
	s.store = memstore.New(s.clock)
	s.services = repository.NewServiceRepository(s.store, discard)
	s.transactions = repository.NewTransactionRepository(s.store, discard)
	s.customers = repository.NewCustomerRepository(s.store, discard)
	s.admins = repository.NewAdminRepository(s.store, discard)
	s.accounts = repository.NewAccountRepository(s.store, discard)
}

func TestRepositorySuite(t *testing.T) {
	suite.Run(t, new(RepositoryTestSuite))
}

func (s *RepositoryTestSuite) TestServices() {
	for _, in := range [][3]string{{"Massage", "60 minutes", "30"}, {"Facial", "Deep clean", "25.5"}} {
		svc, err := service.NewService(in[0], in[1], in[2])
		s.Require().NoError(err)
		_, err = s.services.Create(s.ctx, svc)
		s.Require().NoError(err)
	}

	s.Run("list is ordered by name", func() {
		list, err := s.services.List(s.ctx)
		s.Require().NoError(err)
		s.Require().Len(list, 2)
		s.Equal("Facial", list[0].Name().String())
		s.Equal(25.5, list[0].Price().Value())
		s.Equal("Massage", list[1].Name().String())
	})

	s.Run("update writes only the changed fields", func() {
		list, err := s.services.List(s.ctx)
		s.Require().NoError(err)
		id := list[0].ID()

		price := "40"
		changes, err := service.Patch{Price: &price}.Validate()
		s.Require().NoError(err)
		s.Require().NoError(s.services.Update(s.ctx, id, changes))

		got, err := s.services.Get(s.ctx, id)
		s.Require().NoError(err)
		s.Equal("Facial", got.Name().String())
		s.Equal(40.0, got.Price().Value())
	})

	s.Run("update of a deleted service is not found", func() {
		list, err := s.services.List(s.ctx)
		s.Require().NoError(err)
		id := list[1].ID()
		s.Require().NoError(s.services.Delete(s.ctx, id))

		name := "Gone"
		changes, err := service.Patch{Name: &name}.Validate()
		s.Require().NoError(err)
		err = s.services.Update(s.ctx, id, changes)
		s.True(repository.IsNotFound(err))
	})
}

func (s *RepositoryTestSuite) TestTransactions() {
	place := func(uid, serviceName string) string {
		tx, err := transaction.NewPending(transaction.Order{
			Customer:    &identity.Identity{UID: uid, Email: uid + "@example.com"},
			ServiceID:   "svc-" + serviceName,
			ServiceName: serviceName,
			Price:       10,
		})
		s.Require().NoError(err)
		id, err := s.transactions.Create(s.ctx, tx)
		s.Require().NoError(err)
		s.clock.Add(time.Minute)
		return id
	}

	first := place("u1", "Massage")
	place("u2", "Facial")
	last := place("u1", "Nails")

	s.Run("all transactions newest first", func() {
		list, err := s.transactions.ListAll(s.ctx)
		s.Require().NoError(err)
		s.Require().Len(list, 3)
		s.Equal(last, list[0].ID())
		s.Equal(first, list[2].ID())
		s.Equal(transaction.StatusPending, list[0].Status())
		s.NotNil(list[0].CreatedAt())
	})

	s.Run("by user filters on the customer", func() {
		list, err := s.transactions.ListByUser(s.ctx, "u1")
		s.Require().NoError(err)
		s.Require().Len(list, 2)
		s.Equal("Nails", list[0].ServiceName())
		s.Equal("Massage", list[1].ServiceName())
		s.Equal("u1@example.com", list[0].UserEmail())
		s.Equal(transaction.FallbackUserName, list[0].UserName())
	})

	s.Run("status change is persisted", func() {
		s.Require().NoError(s.transactions.SetStatus(s.ctx, first, transaction.StatusAccepted))
		got, err := s.transactions.Get(s.ctx, first)
		s.Require().NoError(err)
		s.Equal(transaction.StatusAccepted, got.Status())
	})

	s.Run("watch by user sees new orders", func() {
		sub, err := s.transactions.WatchByUser("u2").Open(s.ctx)
		s.Require().NoError(err)
		defer sub.Release()

		items, err := sub.Next()
		s.Require().NoError(err)
		s.Len(items, 1)

		place("u2", "Pedicure")
		items, err = sub.Next()
		s.Require().NoError(err)
		s.Require().Len(items, 2)
		s.Equal("Pedicure", items[0].ServiceName())
	})
}

func (s *RepositoryTestSuite) TestProfiles() {
	s.Run("customer create and rename", func() {
		s.Require().NoError(s.customers.Create(s.ctx, "u1", "Lan", "lan@example.com"))
		s.Require().NoError(s.customers.UpdateName(s.ctx, "u1", "Lan Nguyen"))

		p, err := s.customers.Get(s.ctx, "u1")
		s.Require().NoError(err)
		s.Equal("Lan Nguyen", p.Name())
		s.Equal("lan@example.com", p.Email())
		s.Equal(s.clock.Now(), *p.CreatedAt())
	})

	s.Run("missing customer is not found", func() {
		_, err := s.customers.Get(s.ctx, "nobody")
		s.True(repository.IsNotFound(err))
	})

	s.Run("admin display name creates the record", func() {
		ok, err := s.admins.Exists(s.ctx, "a1")
		s.Require().NoError(err)
		s.False(ok)

		s.Require().NoError(s.admins.SetDisplayName(s.ctx, "a1", "Boss"))
		ok, err = s.admins.Exists(s.ctx, "a1")
		s.Require().NoError(err)
		s.True(ok)

		p, err := s.admins.Get(s.ctx, "a1")
		s.Require().NoError(err)
		s.Equal("Boss", p.DisplayName())
	})
}

func (s *RepositoryTestSuite) TestAccounts() {
	acc := repository.Account{UID: "u1", Email: " Lan@Example.com ", PasswordHash: "hash", DisplayName: "Lan"}
	s.Require().NoError(s.accounts.Create(s.ctx, acc))

	s.Run("email lookup is case insensitive", func() {
		got, err := s.accounts.FindByEmail(s.ctx, "LAN@example.com")
		s.Require().NoError(err)
		s.Equal("u1", got.UID)
		s.Equal("lan@example.com", got.Email)
	})

	s.Run("duplicate email is rejected", func() {
		err := s.accounts.Create(s.ctx, repository.Account{UID: "u2", Email: "lan@example.com"})
		s.True(repository.IsDuplicate(err))
	})

	s.Run("password change bumps the session generation", func() {
		s.Require().NoError(s.accounts.SetPassword(s.ctx, "u1", "new-hash"))
		got, err := s.accounts.Get(s.ctx, "u1")
		s.Require().NoError(err)
		s.Equal("new-hash", got.PasswordHash)
		s.Equal(int64(1), got.SessionGeneration)

		s.Require().NoError(s.accounts.BumpGeneration(s.ctx, "u1"))
		got, err = s.accounts.Get(s.ctx, "u1")
		s.Require().NoError(err)
		s.Equal(int64(2), got.SessionGeneration)
	})
}

func TestTransactionRepository_UserQueriesSortInProcess(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	store := docstoremock.NewMockStore(ctrl)
	repo := repository.NewTransactionRepository(store, discard)

	at := func(day int) time.Time { return time.Date(2025, 3, day, 9, 0, 0, 0, time.UTC) }
	store.EXPECT().Query(ctx, filterOnlyQuery{field: "userId", value: "u2"}).Return([]docstore.Document{
		{ID: "t1", Fields: map[string]any{"userId": "u2", "createdAt": at(1)}},
		{ID: "t3", Fields: map[string]any{"userId": "u2", "createdAt": at(3)}},
		{ID: "t2", Fields: map[string]any{"userId": "u2", "createdAt": at(2)}},
	}, nil)

	list, err := repo.ListByUser(ctx, "u2")
	require.NoError(t, err)
	ids := make([]string, 0, len(list))
	for _, tx := range list {
		ids = append(ids, tx.ID())
	}
	assert.Equal(t, []string{"t3", "t2", "t1"}, ids)

	live := repo.WatchByUser("u2")
	assert.Nil(t, live.Query().OrderBy)
}

// filterOnlyQuery matches a query with a single equality filter and no server-side ordering.
type filterOnlyQuery struct {
	field string
	value any
}

func (m filterOnlyQuery) Matches(x any) bool {
	q, ok := x.(docstore.Query)
	return ok && q.OrderBy == nil && q.Where != nil && q.Where.Field == m.field && q.Where.Value == m.value
}

func (m filterOnlyQuery) String() string {
	return "query on " + m.field + " without orderBy"
}
