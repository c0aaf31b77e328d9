package upload_fx

import (
	"context"

	"go.uber.org/fx"
	"herbverse/internal/services"
)

var Module = fx.Options(
	fx.Provide(services.NewUploadService),
	fx.Invoke(ensureUploadDirs))

func ensureUploadDirs(lc fx.Lifecycle, uploadService services.UploadServiceInterface) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return uploadService.EnsureDirs()
		},
	})
}
