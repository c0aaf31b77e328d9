package config_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"herbverse/internal/config"
	"herbverse/internal/infra"
	"herbverse/pkg/utils"
)

var Module = fx.Provide(
	config.NewConfig,
	infra.NewLogger,
	provideSugaredLogger,
	provideTokenService)

func provideSugaredLogger(logger *zap.Logger) *zap.SugaredLogger {
	return logger.Sugar()
}

func provideTokenService(cfg *config.Config) *utils.TokenService {
	return utils.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
}
