package bootstrap

import (
	"gin-booking/internal/pkg/config"
	"gin-booking/internal/pkg/errs"
	"gin-booking/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config) (*jwt.Service, error) {
	tokenDuration, err := cfg.JWT.TokenDuration()
	if err != nil {
		return nil, errs.Wrap(err, "invalid JWT_DURATION")
	}

	resetDuration, err := cfg.JWT.ResetDuration()
	if err != nil {
		return nil, errs.Wrap(err, "invalid JWT_RESET_TTL")
	}

	return jwt.NewService(cfg.JWT.Secret, tokenDuration, resetDuration), nil
}
