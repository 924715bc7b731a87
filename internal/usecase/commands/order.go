package commands

import (
	"context"
	"log/slog"

	"gin-booking/internal/domain/customer"
	"gin-booking/internal/domain/identity"
	"gin-booking/internal/domain/service"
	"gin-booking/internal/domain/transaction"
	"gin-booking/internal/infra"
	"gin-booking/internal/pkg/errs"
	"gin-booking/internal/usecase/shared"

	"golang.org/x/sync/errgroup"
)

type OrderCommands interface {
	PlaceOrder(ctx context.Context, customer *identity.Identity, serviceID string) (*PlaceOrderResult, error)
}

type PlaceOrderResult struct {
	TransactionID string
}

type orderCommandsImpl struct {
	services     shared.ServiceRepository
	customers    shared.CustomerRepository
	transactions shared.TransactionRepository
	logger       *slog.Logger
}

func NewOrderCommands(
	services shared.ServiceRepository,
	customers shared.CustomerRepository,
	transactions shared.TransactionRepository,
	logger *slog.Logger,
) OrderCommands {
	return &orderCommandsImpl{
		services:     services,
		customers:    customers,
		transactions: transactions,
		logger:       logger,
	}
}

// PlaceOrder creates one pending transaction. Without an identity nothing is
// read or written and ErrLoginRequired is returned. Repeated calls create
// repeated transactions.
func (uc *orderCommandsImpl) PlaceOrder(ctx context.Context, who *identity.Identity, serviceID string) (*PlaceOrderResult, error) {
	if who.IsZero() {
		return nil, errs.ErrLoginRequired
	}

	var (
		profile *customer.Profile
		svc     *service.Service
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := uc.customers.Get(gctx, who.UID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				// the order still goes through with fallback name and email
				return nil
			}
			return err
		}
		profile = p
		return nil
	})
	g.Go(func() error {
		s, err := uc.services.Get(gctx, serviceID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrServiceNotFound
			}
			return err
		}
		svc = s
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	order := transaction.Order{
		Customer:    who,
		ServiceID:   svc.ID(),
		ServiceName: svc.Name().String(),
		Price:       svc.Price().Value(),
	}
	if profile != nil {
		order.ProfileName = profile.Name()
		order.ProfileEmail = profile.Email()
	}

	tx, err := transaction.NewPending(order)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	id, err := uc.transactions.Create(ctx, tx)
	if err != nil {
		return nil, err
	}
	uc.logger.Info("order placed", "transaction_id", id, "uid", who.UID, "service_id", serviceID)
	return &PlaceOrderResult{TransactionID: id}, nil
}
