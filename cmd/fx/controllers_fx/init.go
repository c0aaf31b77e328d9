package controllers_fx

import (
	"go.uber.org/fx"
	"herbverse/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewPlantsController),
	fx.Provide(controllers.NewToursController),
	fx.Provide(controllers.NewAdminController),
	fx.Provide(controllers.NewUploadController))
