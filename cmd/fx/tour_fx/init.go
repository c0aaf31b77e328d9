package tour_fx

import (
	"go.uber.org/fx"
	"herbverse/internal/services"
)

var Module = fx.Provide(services.NewTourService)
