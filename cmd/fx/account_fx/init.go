package account_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"herbverse/internal/config"
	"herbverse/internal/services"
)

var Module = fx.Options(
	fx.Provide(
		services.NewAccountService,
		services.NewPersonalizationService,
		services.NewUserAdminService),
	fx.Invoke(seedAdmin))

// seedAdmin creates the bootstrap administrator when SEED_ADMIN_EMAIL is set.
func seedAdmin(lc fx.Lifecycle, cfg *config.Config, accountService services.AccountServiceInterface, logger *zap.SugaredLogger) {
	if cfg.SeedAdminEmail == "" {
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Infow("seeding admin account", "email", cfg.SeedAdminEmail)
			return accountService.EnsureAdmin(ctx, cfg.SeedAdminName, cfg.SeedAdminEmail, cfg.SeedAdminPassword)
		},
	})
}
