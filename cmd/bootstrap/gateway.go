package bootstrap

import (
	"context"
	"log/slog"

	"gin-booking/internal/infra/docstore"
	"gin-booking/internal/infra/gateway/firebaseauth"
	"gin-booking/internal/infra/gateway/localauth"
	"gin-booking/internal/infra/mailer"
	"gin-booking/internal/infra/repository"
	"gin-booking/internal/pkg/config"
	"gin-booking/internal/pkg/errs"
	"gin-booking/internal/pkg/jwt"
	"gin-booking/internal/usecase/shared"

	firebase "firebase.google.com/go/v4"
	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		NewCredentialGateway,
		func(g shared.CredentialGateway) shared.TokenVerifier { return g },
	),
)

func NewCredentialGateway(
	cfg config.Config,
	app *firebase.App,
	store docstore.Store,
	tokens *jwt.Service,
	logger *slog.Logger,
) (shared.CredentialGateway, error) {
	switch cfg.Auth.Driver {
	case config.AuthDriverFirebase:
		client, err := app.Auth(context.Background())
		if err != nil {
			return nil, errs.Wrap(err, "open firebase auth client")
		}
		return firebaseauth.New(client, cfg.Firebase.AuthBaseURL, cfg.Firebase.APIKey, logger), nil

	case config.AuthDriverLocal:
		accounts := repository.NewAccountRepository(store, logger)
		return localauth.New(accounts, tokens, mailer.New(cfg.Mail, logger), cfg.Auth.ResetURL, logger), nil
	}
	return nil, errs.Newf("unknown auth driver %q", cfg.Auth.Driver)
}
