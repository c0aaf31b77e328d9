// Package app_fx assembles every feature module behind the HTTP router. The
// binary adds the server on top; tests populate the router directly.
package app_fx

import (
	"go.uber.org/fx"
	"herbverse/cmd/fx/account_fx"
	"herbverse/cmd/fx/config_fx"
	"herbverse/cmd/fx/controllers_fx"
	"herbverse/cmd/fx/db_fx"
	"herbverse/cmd/fx/plant_fx"
	"herbverse/cmd/fx/tour_fx"
	"herbverse/cmd/fx/upload_fx"
	"herbverse/internal/api"
)

var Module = fx.Options(
	config_fx.Module,
	db_fx.Module,
	account_fx.Module,
	plant_fx.Module,
	tour_fx.Module,
	upload_fx.Module,
	controllers_fx.Module,
	fx.Provide(api.NewRouter))
