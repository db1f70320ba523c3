package engine

import (
	"context"
	"fmt"
	"image"

	"github.com/spaghettifunk/pointillist/engine/core"
	"github.com/spaghettifunk/pointillist/engine/platform"
)

type Stage uint8

const (
	// Engine is in an uninitialized state
	EngineStageUninitialized Stage = iota
	// Engine is currently booting up
	EngineStageBooting
	// Engine completed boot process and is ready to be initialized
	EngineStageBootComplete
	// Engine is currently initializing
	EngineStageInitializing
	// Engine initialization is complete
	EngineStageInitialized
	// Engine is currently running
	EngineStageRunning
	// Engine is in the process of shutting down
	EngineStageShuttingDown
)

type Engine struct {
	currentStage Stage
	gameInstance *Game
	isRunning    bool
	width        uint32
	height       uint32
	clock        *core.Clock
	metrics      *core.Metrics
	lastTime     float64
	frame        *image.RGBA
}

func New(g *Game) (*Engine, error) {
	if g == nil || g.ApplicationConfig == nil {
		return nil, fmt.Errorf("game and application config are required")
	}
	if g.FnUpdate == nil || g.FnRender == nil {
		return nil, fmt.Errorf("game must provide update and render functions")
	}

	metrics := core.NewMetrics()
	g.Metrics = metrics

	return &Engine{
		currentStage: EngineStageUninitialized,
		gameInstance: g,
		clock:        core.NewClock(),
		metrics:      metrics,
		width:        g.ApplicationConfig.StartWidth,
		height:       g.ApplicationConfig.StartHeight,
	}, nil
}

func (e *Engine) Stage() Stage {
	return e.currentStage
}

func (e *Engine) Initialize() error {
	e.currentStage = EngineStageBooting
	core.SetLogLevel(e.gameInstance.ApplicationConfig.LogLevel)

	// initialize events
	if !core.EventSystemInitialize() {
		return fmt.Errorf("failed to initialize the event system")
	}

	// register some events
	core.EventRegister(core.EVENT_CODE_APPLICATION_QUIT, e, e.onEvent)

	if e.gameInstance.FnBoot != nil {
		if err := e.gameInstance.FnBoot(); err != nil {
			core.LogError("game boot failed: %s", err)
			return err
		}
	}
	e.currentStage = EngineStageBootComplete

	e.currentStage = EngineStageInitializing
	if e.gameInstance.FnInitialize != nil {
		if err := e.gameInstance.FnInitialize(); err != nil {
			return err
		}
	}

	if e.gameInstance.FnOnResize != nil {
		if err := e.gameInstance.FnOnResize(e.width, e.height); err != nil {
			return err
		}
	}
	e.currentStage = EngineStageInitialized
	return nil
}

// Run drives the game until the window closes, the frame limit is reached,
// a quit event is fired or ctx is cancelled.
func (e *Engine) Run(ctx context.Context) error {
	if e.currentStage != EngineStageInitialized {
		return fmt.Errorf("%w: engine must be initialized before running", core.ErrNotInitialized)
	}
	e.currentStage = EngineStageRunning
	e.isRunning = true

	e.clock.Start()
	e.clock.Update()
	e.lastTime = e.clock.Elapsed()

	cfg := e.gameInstance.ApplicationConfig
	if cfg.Headless {
		return platform.RunHeadless(ctx, e, cfg.HeadlessConfig)
	}
	return platform.RunWindow(ctx, e, platform.WindowConfig{
		Title:  cfg.Name,
		Width:  int(e.width),
		Height: int(e.height),
	})
}

// Step runs one frame: update, then render.
func (e *Engine) Step() error {
	if !e.isRunning {
		return platform.ErrStop
	}

	// Update clock and get delta time.
	e.clock.Update()
	var currentTime float64 = e.clock.Elapsed()
	var delta float64 = (currentTime - e.lastTime)

	if err := e.gameInstance.FnUpdate(delta); err != nil {
		core.LogError("Game update failed, shutting down: %s", err)
		e.isRunning = false
		return err
	}

	// Call the game's render routine.
	frame, err := e.gameInstance.FnRender(delta)
	if err != nil {
		core.LogError("Game render failed, shutting down: %s", err)
		e.isRunning = false
		return err
	}
	e.frame = frame

	e.clock.Update()
	e.metrics.Update(e.clock.Elapsed() - currentTime)

	// Update last time
	e.lastTime = currentTime
	return nil
}

// Frame returns the image produced by the last frame.
func (e *Engine) Frame() *image.RGBA {
	return e.frame
}

func (e *Engine) Shutdown() error {
	e.currentStage = EngineStageShuttingDown
	e.isRunning = false
	e.clock.Stop()

	var err error
	if e.gameInstance.FnShutdown != nil {
		err = e.gameInstance.FnShutdown()
	}
	core.EventUnregister(core.EVENT_CODE_APPLICATION_QUIT, e)
	if serr := core.EventSystemShutdown(); serr != nil && err == nil {
		err = serr
	}
	e.currentStage = EngineStageUninitialized
	return err
}

func (e *Engine) onEvent(event core.EventContext) bool {
	switch event.Type {
	case core.EVENT_CODE_APPLICATION_QUIT:
		core.LogInfo("EVENT_CODE_APPLICATION_QUIT received, shutting down.")
		e.isRunning = false
		return true
	}
	return false
}
