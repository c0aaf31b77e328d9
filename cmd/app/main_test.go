package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/fx"
	"herbverse/cmd/fx/app_fx"
)

func TestDependencyGraph(t *testing.T) {
	err := fx.ValidateApp(
		app_fx.Module,
		fx.Invoke(StartServer),
	)
	assert.NoError(t, err)
}
