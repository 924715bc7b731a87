package components

import (
	"gin-booking/internal/usecase/access"
	"gin-booking/internal/usecase/commands"
	"gin-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseAccessModule,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseAccessModule = fx.Module("usecase/access",
	fx.Provide(
		fx.Annotate(
			access.NewRoleResolver,
			fx.As(new(access.Resolver)),
		),
		access.NewSessions,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewServiceCommands,
		commands.NewTransactionCommands,
		commands.NewOrderCommands,
		commands.NewProfileCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewSessionQueries,
		queries.NewServiceQueries,
		queries.NewTransactionQueries,
		queries.NewCustomerQueries,
		queries.NewProfileQueries,
	),
)
