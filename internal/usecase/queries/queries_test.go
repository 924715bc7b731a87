//go:build unit

package queries_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"gin-booking/internal/domain/admin"
	"gin-booking/internal/domain/identity"
	"gin-booking/internal/infra"
	"gin-booking/internal/infra/docstore/memstore"
	"gin-booking/internal/infra/repository"
	"gin-booking/internal/pkg/clock"
	"gin-booking/internal/pkg/errs"
	"gin-booking/internal/usecase/access"
	"gin-booking/internal/usecase/commands"
	"gin-booking/internal/usecase/queries"
	sharedmock "gin-booking/tests/mock/shared"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var discard = slog.New(slog.DiscardHandler)

type QueriesTestSuite struct {
	suite.Suite
	ctx   context.Context
	clock *clock.MockClock
	store *memstore.Store

	admins       *repository.AdminRepository
	customers    *repository.CustomerRepository
	services     *repository.ServiceRepository
	transactions *repository.TransactionRepository
}

func (s *QueriesTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.clock = clock.NewMockClock(time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC))
	s.store = memstore.New(s.clock)
	s.admins = repository.NewAdminRepository(s.store, discard)
	s.customers = repository.NewCustomerRepository(s.store, discard)
	s.services = repository.NewServiceRepository(s.store, discard)
	s.transactions = repository.NewTransactionRepository(s.store, discard)

	s.Require().NoError(s.admins.SetDisplayName(s.ctx, "u1", "Boss"))
	s.Require().NoError(s.customers.Create(s.ctx, "u2", "Lan", "lan@example.com"))
}

func TestQueriesSuite(t *testing.T) {
	suite.Run(t, new(QueriesTestSuite))
}

func (s *QueriesTestSuite) TestServiceCatalog() {
	cmds := commands.NewServiceCommands(s.services)
	q := queries.NewServiceQueries(s.services)

	res, err := cmds.CreateService(s.ctx, commands.CreateServiceRequest{Name: "Oil Change", Description: "Basic", Price: "29.99"})
	s.Require().NoError(err)
	_, err = cmds.CreateService(s.ctx, commands.CreateServiceRequest{Name: "Brake Check", Description: "Pads", Price: "15"})
	s.Require().NoError(err)

	list, err := q.ListServices(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal("Brake Check", list[0].Name)
	s.Equal(&queries.ServiceView{ID: res.ServiceID, Name: "Oil Change", Description: "Basic", Price: 29.99}, list[1])

	s.Require().NoError(cmds.DeleteService(s.ctx, res.ServiceID))
	_, err = q.GetService(s.ctx, res.ServiceID)
	s.ErrorIs(err, errs.ErrServiceNotFound)
}

// An order placed by a customer shows up pending, and the admin decision
// reaches an open subscription as a replacement of the same row.
func (s *QueriesTestSuite) TestOrderReviewFlow() {
	svc, err := commands.NewServiceCommands(s.services).
		CreateService(s.ctx, commands.CreateServiceRequest{Name: "Oil Change", Description: "Basic", Price: "29.99"})
	s.Require().NoError(err)

	txq := queries.NewTransactionQueries(s.transactions)
	sub, err := txq.WatchTransactions().Open(s.ctx)
	s.Require().NoError(err)
	defer sub.Release()

	initial, err := sub.Next()
	s.Require().NoError(err)
	s.Empty(initial)

	u2 := &identity.Identity{UID: "u2", Email: "lan@example.com"}
	placed, err := commands.NewOrderCommands(s.services, s.customers, s.transactions, discard).
		PlaceOrder(s.ctx, u2, svc.ServiceID)
	s.Require().NoError(err)

	pending, err := sub.Next()
	s.Require().NoError(err)
	want := &queries.TransactionView{
		ID:          placed.TransactionID,
		UserID:      "u2",
		UserName:    "Lan",
		UserEmail:   "lan@example.com",
		ServiceID:   svc.ServiceID,
		ServiceName: "Oil Change",
		Price:       29.99,
		Status:      "pending",
	}
	s.Empty(cmp.Diff([]*queries.TransactionView{want}, pending, cmpopts.IgnoreFields(queries.TransactionView{}, "CreatedAt")))
	s.Require().NotNil(pending[0].CreatedAt)

	s.Require().NoError(commands.NewTransactionCommands(s.transactions).SetStatus(s.ctx, placed.TransactionID, "accepted"))

	decided, err := sub.Next()
	s.Require().NoError(err)
	s.Require().Len(decided, 1)
	s.Equal(placed.TransactionID, decided[0].ID)
	s.Equal("accepted", decided[0].Status)

	mine, err := txq.ListAppointments(s.ctx, "u2")
	s.Require().NoError(err)
	s.Len(mine, 1)

	others, err := txq.ListAppointments(s.ctx, "u3")
	s.Require().NoError(err)
	s.Empty(others)
}

func (s *QueriesTestSuite) TestAppointmentsNewestFirst() {
	u2 := &identity.Identity{UID: "u2"}
	svc, err := commands.NewServiceCommands(s.services).
		CreateService(s.ctx, commands.CreateServiceRequest{Name: "Wash", Description: "Outside", Price: "5"})
	s.Require().NoError(err)
	orders := commands.NewOrderCommands(s.services, s.customers, s.transactions, discard)

	first, err := orders.PlaceOrder(s.ctx, u2, svc.ServiceID)
	s.Require().NoError(err)
	s.clock.Add(time.Minute)
	second, err := orders.PlaceOrder(s.ctx, u2, svc.ServiceID)
	s.Require().NoError(err)

	list, err := queries.NewTransactionQueries(s.transactions).ListAppointments(s.ctx, "u2")
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal(second.TransactionID, list[0].ID)
	s.Equal(first.TransactionID, list[1].ID)
}

func (s *QueriesTestSuite) TestCustomers() {
	q := queries.NewCustomerQueries(s.customers)

	sub, err := q.WatchCustomers().Open(s.ctx)
	s.Require().NoError(err)
	defer sub.Release()

	list, err := sub.Next()
	s.Require().NoError(err)
	s.Require().Len(list, 1)
	s.Equal("Lan", list[0].Name)

	s.Require().NoError(s.customers.UpdateName(s.ctx, "u2", "Lan Anh"))
	list, err = sub.Next()
	s.Require().NoError(err)
	s.Equal("Lan Anh", list[0].Name)
}

func (s *QueriesTestSuite) TestProfiles() {
	q := queries.NewProfileQueries(s.customers, s.admins)

	s.Run("customer", func() {
		p, err := q.GetCustomerProfile(s.ctx, &identity.Identity{UID: "u2"})
		s.Require().NoError(err)
		s.Equal("lan@example.com", p.Email)
	})

	s.Run("signed out", func() {
		_, err := q.GetCustomerProfile(s.ctx, nil)
		s.ErrorIs(err, errs.ErrLoginRequired)
		_, err = q.GetAdminProfile(s.ctx, nil)
		s.ErrorIs(err, errs.ErrLoginRequired)
	})

	s.Run("missing profile", func() {
		_, err := q.GetCustomerProfile(s.ctx, &identity.Identity{UID: "ghost"})
		s.ErrorIs(err, errs.ErrProfileNotFound)
	})

	s.Run("admin", func() {
		p, err := q.GetAdminProfile(s.ctx, &identity.Identity{UID: "u1", Email: "boss@example.com"})
		s.Require().NoError(err)
		s.Equal(&queries.AdminProfileView{UID: "u1", DisplayName: "Boss", Email: "boss@example.com"}, p)
	})
}

func TestAdminProfileFallsBackToAccountName(t *testing.T) {
	ctrl := gomock.NewController(t)
	admins := sharedmock.NewMockAdminRepository(ctrl)
	admins.EXPECT().Get(gomock.Any(), "u1").Return(admin.Reconstruct("u1", ""), nil)

	p, err := queries.NewProfileQueries(sharedmock.NewMockCustomerRepository(ctrl), admins).
		GetAdminProfile(context.Background(), &identity.Identity{UID: "u1", DisplayName: "Boss"})
	if err != nil {
		t.Fatalf("GetAdminProfile: %v", err)
	}
	if p.DisplayName != "Boss" {
		t.Errorf("DisplayName = %q, want %q", p.DisplayName, "Boss")
	}
}

func TestAdminProfileStoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	admins := sharedmock.NewMockAdminRepository(ctrl)
	cause := infra.RepositoryError{Kind: infra.KindStoreFailure}
	admins.EXPECT().Get(gomock.Any(), "u1").Return(nil, cause)

	_, err := queries.NewProfileQueries(sharedmock.NewMockCustomerRepository(ctrl), admins).
		GetAdminProfile(context.Background(), &identity.Identity{UID: "u1"})
	if !infra.IsKind(err, infra.KindStoreFailure) {
		t.Errorf("err = %v, want store failure", err)
	}
}

func (s *QueriesTestSuite) TestSessionSnapshot() {
	q := queries.NewSessionQueries(access.NewSessions(access.NewRoleResolver(s.admins, discard), discard))

	cases := []struct {
		name  string
		who   *identity.Identity
		state access.State
		root  access.Screen
	}{
		{name: "signed out", who: nil, state: access.StateUnauthenticated, root: access.ScreenLogin},
		{name: "admin", who: &identity.Identity{UID: "u1"}, state: access.StateAdmin, root: access.ScreenAdminServices},
		{name: "customer", who: &identity.Identity{UID: "u2"}, state: access.StateCustomer, root: access.ScreenCustomerServices},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			snap, err := q.Current(s.ctx, tc.who)
			s.Require().NoError(err)
			s.Equal(tc.state, snap.State)
			s.Equal([]access.Screen{tc.root}, snap.Stack)
		})
	}
}
