package testbed

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"
	"sync"

	"github.com/spaghettifunk/pointillist/engine"
	"github.com/spaghettifunk/pointillist/engine/config"
	"github.com/spaghettifunk/pointillist/engine/core"
	"github.com/spaghettifunk/pointillist/engine/hand"
	"github.com/spaghettifunk/pointillist/engine/platform"
	"github.com/spaghettifunk/pointillist/engine/renderer"
	"github.com/spaghettifunk/pointillist/engine/scene"
	"github.com/spaghettifunk/pointillist/engine/systems"
)

type HandsGame struct {
	*engine.Game
}

type gameState struct {
	cfg        *config.Config
	configPath string

	jobs      *systems.JobSystem
	generator *hand.Generator
	scene     *scene.Scene
	renderer  *renderer.PointRenderer
	watcher   *config.Watcher

	// written by event listeners, which can run off the frame goroutine
	mutex            sync.Mutex
	pendingMirror    bool
	pendingSnapshot  bool
	pendingSettings  *config.Render
	snapshotsWritten int
}

// NewHandsGame builds the pointillist hands scene from cfg. configPath is
// watched for render setting changes when it exists.
func NewHandsGame(cfg *config.Config, configPath string) (*HandsGame, error) {
	level, err := core.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	tg := &HandsGame{
		Game: &engine.Game{
			ApplicationConfig: &engine.ApplicationConfig{
				StartWidth:  uint32(cfg.Window.Width),
				StartHeight: uint32(cfg.Window.Height),
				Name:        cfg.Window.Title,
				LogLevel:    level,
				Headless:    cfg.Headless.Enabled,
				HeadlessConfig: platform.HeadlessConfig{
					Hz:    cfg.Headless.Hz,
					Ticks: cfg.Headless.Ticks,
				},
			},
			State: &gameState{
				cfg:        cfg,
				configPath: configPath,
			},
		},
	}

	tg.FnBoot = tg.Boot
	tg.FnInitialize = tg.Initialize
	tg.FnUpdate = tg.Update
	tg.FnRender = tg.Render
	tg.FnOnResize = tg.OnResize
	tg.FnShutdown = tg.Shutdown

	return tg, nil
}

func (g *HandsGame) state() *gameState {
	return g.State.(*gameState)
}

func (g *HandsGame) Boot() error {
	core.LogInfo("booting hands scene (seed=%d)...", g.state().cfg.Seed)
	state := g.state()

	jobs, err := systems.NewJobSystem(2, 2)
	if err != nil {
		return err
	}
	state.jobs = jobs
	state.generator = hand.NewGenerator(state.cfg.Seed)

	r, err := renderer.NewPointRenderer(state.cfg.Window.Width, state.cfg.Window.Height, state.cfg.Render.Settings())
	if err != nil {
		return err
	}
	state.renderer = r

	if state.configPath != "" {
		if _, err := os.Stat(state.configPath); err == nil {
			w, err := config.NewWatcher(state.configPath, state.cfg.Render)
			if err != nil {
				core.LogWarn("config hot reload disabled: %s", err)
			} else {
				state.watcher = w
			}
		} else if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}

// Initialize generates both hands in parallel and places them in the scene.
func (g *HandsGame) Initialize() error {
	state := g.state()
	if state.generator == nil {
		return fmt.Errorf("%w: hands scene was not booted", core.ErrNotInitialized)
	}

	tasks := make([]systems.JobTask, 0, 2)
	for _, isLeft := range []bool{true, false} {
		isLeft := isLeft
		tasks = append(tasks, systems.JobTask{
			Name: fmt.Sprintf("hand.generate(left=%t)", isLeft),
			OnStart: func() error {
				_, err := state.generator.Hand(isLeft)
				return err
			},
		})
	}
	if err := state.jobs.RunAll(tasks...); err != nil {
		return err
	}

	s, err := scene.New(state.generator)
	if err != nil {
		return err
	}
	s.RotationStep = state.cfg.Render.RotationStep
	state.scene = s
	core.LogInfo("scene ready: %d hands, %d points", len(s.Nodes), s.PointCount())

	core.EventRegister(core.EVENT_CODE_MIRROR_TOGGLED, g, g.onEvent)
	core.EventRegister(core.EVENT_CODE_SNAPSHOT_REQUESTED, g, g.onEvent)
	core.EventRegister(core.EVENT_CODE_SETTINGS_CHANGED, g, g.onEvent)
	return nil
}

func (g *HandsGame) Update(deltaTime float64) error {
	state := g.state()

	state.mutex.Lock()
	mirror := state.pendingMirror
	settings := state.pendingSettings
	state.pendingMirror = false
	state.pendingSettings = nil
	state.mutex.Unlock()

	if settings != nil {
		state.renderer.SetSettings(settings.Settings())
		state.scene.RotationStep = settings.RotationStep
		state.cfg.Render = *settings
	}
	if mirror {
		if err := state.scene.ToggleMirror(); err != nil {
			return err
		}
	}

	state.scene.Update()
	return nil
}

func (g *HandsGame) Render(deltaTime float64) (*image.RGBA, error) {
	state := g.state()

	sources := make([]renderer.PointSource, 0, len(state.scene.Nodes))
	for _, n := range state.scene.Nodes {
		sources = append(sources, n)
	}
	frame := state.renderer.Render(sources...)

	if state.renderer.Settings().ShowHUD && g.Metrics != nil {
		renderer.DrawHUD(frame,
			fmt.Sprintf("FPS: %5.1f (%4.1fms)", g.Metrics.FPS(), g.Metrics.FrameTime()),
			fmt.Sprintf("Points: %d (%d on screen)", state.scene.PointCount(), state.renderer.PointsDrawn()),
			"[M] mirror  [S] snapshot  [Esc] quit",
		)
	}

	state.mutex.Lock()
	snapshot := state.pendingSnapshot
	state.pendingSnapshot = false
	state.mutex.Unlock()
	if snapshot {
		if err := g.writeSnapshot(frame); err != nil {
			core.LogError("snapshot failed: %s", err)
		}
	}
	return frame, nil
}

func (g *HandsGame) OnResize(width uint32, height uint32) error {
	return g.state().renderer.OnResize(int(width), int(height))
}

// Shutdown writes a final snapshot when a snapshot path is configured and
// none was taken while running.
func (g *HandsGame) Shutdown() error {
	state := g.state()

	core.EventUnregister(core.EVENT_CODE_MIRROR_TOGGLED, g)
	core.EventUnregister(core.EVENT_CODE_SNAPSHOT_REQUESTED, g)
	core.EventUnregister(core.EVENT_CODE_SETTINGS_CHANGED, g)

	var err error
	if state.cfg.Snapshot != "" && state.snapshotsWritten == 0 && state.renderer != nil && state.scene != nil {
		err = g.writeSnapshot(state.renderer.Frame())
	}
	if state.watcher != nil {
		if werr := state.watcher.Close(); werr != nil && err == nil {
			err = werr
		}
	}
	if state.jobs != nil {
		if jerr := state.jobs.Shutdown(); jerr != nil && err == nil {
			err = jerr
		}
	}
	return err
}

// Scene exposes the running scene, nil before Initialize.
func (g *HandsGame) Scene() *scene.Scene {
	return g.state().scene
}

func (g *HandsGame) writeSnapshot(frame *image.RGBA) error {
	state := g.state()
	path := state.cfg.Snapshot
	if path == "" {
		path = "pointillist.png"
	}
	if state.snapshotsWritten > 0 {
		path = numbered(path, state.snapshotsWritten)
	}
	if err := renderer.WriteSnapshot(path, frame); err != nil {
		return err
	}
	state.snapshotsWritten++
	return nil
}

func (g *HandsGame) onEvent(context core.EventContext) bool {
	state := g.state()
	state.mutex.Lock()
	defer state.mutex.Unlock()

	switch context.Type {
	case core.EVENT_CODE_MIRROR_TOGGLED:
		state.pendingMirror = !state.pendingMirror
	case core.EVENT_CODE_SNAPSHOT_REQUESTED:
		state.pendingSnapshot = true
	case core.EVENT_CODE_SETTINGS_CHANGED:
		rs, ok := context.Data.(config.Render)
		if !ok {
			core.LogError("wrong event associated with the event type `%d`", context.Type)
			return false
		}
		state.pendingSettings = &rs
	default:
		return false
	}
	return true
}
