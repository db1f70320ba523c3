package engine

import (
	"image"

	"github.com/spaghettifunk/pointillist/engine/core"
)

type Game struct {
	ApplicationConfig *ApplicationConfig
	// Metrics is filled in by the engine before FnBoot runs.
	Metrics      *core.Metrics
	State        interface{}
	FnBoot       Boot
	FnInitialize Initialize
	FnUpdate     Update
	FnRender     Render
	FnOnResize   OnResize
	FnShutdown   Shutdown
}

type Boot func() error
type Initialize func() error
type Update func(deltaTime float64) error
type Render func(deltaTime float64) (*image.RGBA, error)
type OnResize func(width uint32, height uint32) error
type Shutdown func() error
