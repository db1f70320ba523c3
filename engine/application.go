package engine

import (
	"github.com/spaghettifunk/pointillist/engine/core"
	"github.com/spaghettifunk/pointillist/engine/platform"
)

type ApplicationConfig struct {
	// Window starting width, if applicable.
	StartWidth uint32
	// Window starting height, if applicable.
	StartHeight uint32
	// The application name used in windowing, if applicable.
	Name     string
	LogLevel core.LogLevel
	// Run without a window when enabled.
	Headless bool
	// Frame rate and frame limit of the headless runner.
	HeadlessConfig platform.HeadlessConfig
}
