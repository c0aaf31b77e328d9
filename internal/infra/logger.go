package infra

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"herbverse/internal/config"
)

// NewLogger builds the process logger and installs it as zap's global.
func NewLogger(cfg *config.Config) (*zap.Logger, error) {
	var (
		logger *zap.Logger
		err    error
	)
	if cfg.IsProduction() {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, errors.Wrap(err, "build logger")
	}

	zap.ReplaceGlobals(logger)
	return logger, nil
}
