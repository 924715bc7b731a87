package components

import (
	"gin-booking/internal/infra/repository"
	"gin-booking/internal/usecase/access"
	"gin-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repository.NewAdminRepository,
			fx.As(new(shared.AdminRepository)),
			fx.As(new(access.AdminChecker)),
		),
		fx.Annotate(
			repository.NewCustomerRepository,
			fx.As(new(shared.CustomerRepository)),
		),
		fx.Annotate(
			repository.NewServiceRepository,
			fx.As(new(shared.ServiceRepository)),
		),
		fx.Annotate(
			repository.NewTransactionRepository,
			fx.As(new(shared.TransactionRepository)),
		),
	),
)
