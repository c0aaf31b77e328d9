package db_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"herbverse/internal/config"
	"herbverse/internal/infra"
	"herbverse/internal/repositories"
	"herbverse/internal/repositories/memory"
)

var Module = fx.Provide(provideRepositories)

type Repositories struct {
	fx.Out

	Accounts repositories.AccountRepository
	Plants   repositories.PlantRepository
	Tours    repositories.TourRepository
}

// provideRepositories picks the store backend named by STORE_DRIVER.
func provideRepositories(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) (Repositories, error) {
	if cfg.StoreDriver == config.StoreDriverMemory {
		logger.Info("using in-memory store")
		store := memory.NewStore()
		return Repositories{
			Accounts: memory.NewAccountRepository(store),
			Plants:   memory.NewPlantRepository(store),
			Tours:    memory.NewTourRepository(store),
		}, nil
	}

	db, err := infra.InitPostgresql(cfg, logger)
	if err != nil {
		return Repositories{}, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.ClosePostgresql(db, logger)
			return nil
		},
	})

	return Repositories{
		Accounts: repositories.NewAccountRepository(db),
		Plants:   repositories.NewPlantRepository(db),
		Tours:    repositories.NewTourRepository(db),
	}, nil
}
