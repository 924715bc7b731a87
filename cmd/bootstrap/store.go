package bootstrap

import (
	"context"
	"log/slog"

	"gin-booking/internal/infra/db"
	"gin-booking/internal/infra/docstore"
	"gin-booking/internal/infra/docstore/firestorestore"
	"gin-booking/internal/infra/docstore/memstore"
	"gin-booking/internal/infra/docstore/pgstore"
	"gin-booking/internal/pkg/clock"
	"gin-booking/internal/pkg/config"
	"gin-booking/internal/pkg/errs"

	firebase "firebase.google.com/go/v4"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		clock.NewRealClock,
		NewFirebaseApp,
		NewStore,
	),
)

// NewFirebaseApp returns nil when neither the store nor the gateway runs on Firebase.
func NewFirebaseApp(cfg config.Config) (*firebase.App, error) {
	if cfg.Store.Driver != config.StoreDriverFirestore && cfg.Auth.Driver != config.AuthDriverFirebase {
		return nil, nil
	}

	var opts []option.ClientOption
	if cfg.Firebase.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Firebase.CredentialsFile))
	}

	app, err := firebase.NewApp(context.Background(), &firebase.Config{ProjectID: cfg.Firebase.ProjectID}, opts...)
	if err != nil {
		return nil, errs.Wrap(err, "init firebase app")
	}
	return app, nil
}

func NewStore(lc fx.Lifecycle, cfg config.Config, app *firebase.App, clk clock.Clock, logger *slog.Logger) (docstore.Store, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverMemory:
		logger.Warn("using in-memory document store, data is lost on restart")
		return memstore.New(clk), nil

	case config.StoreDriverPostgres:
		return newPostgresStore(lc, cfg, clk, logger)

	case config.StoreDriverFirestore:
		client, err := app.Firestore(context.Background())
		if err != nil {
			return nil, errs.Wrap(err, "open firestore client")
		}
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return client.Close()
			},
		})
		return firestorestore.New(client), nil
	}
	return nil, errs.Newf("unknown store driver %q", cfg.Store.Driver)
}

func newPostgresStore(lc fx.Lifecycle, cfg config.Config, clk clock.Clock, logger *slog.Logger) (docstore.Store, error) {
	ctx := context.Background()
	pool, cleanup, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	if err := pgstore.EnsureSchema(ctx, pool); err != nil {
		cleanup()
		return nil, err
	}

	store := pgstore.New(pool, clk, logger)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			store.Close()
			cleanup()
			return nil
		},
	})
	return store, nil
}
