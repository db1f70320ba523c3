package engine

import (
	"context"
	"errors"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/pointillist/engine/core"
	"github.com/spaghettifunk/pointillist/engine/platform"
)

type recorder struct {
	calls   []string
	updates int
	renders int
	quitAt  int
	failAt  int
}

func newRecordingGame(r *recorder, ticks uint64) *Game {
	frame := image.NewRGBA(image.Rect(0, 0, 4, 4))
	return &Game{
		ApplicationConfig: &ApplicationConfig{
			StartWidth:     4,
			StartHeight:    4,
			Name:           "test",
			LogLevel:       core.ErrorLevel,
			Headless:       true,
			HeadlessConfig: platform.HeadlessConfig{Hz: 1000, Ticks: ticks},
		},
		FnBoot:       func() error { r.calls = append(r.calls, "boot"); return nil },
		FnInitialize: func() error { r.calls = append(r.calls, "initialize"); return nil },
		FnOnResize: func(w, h uint32) error {
			r.calls = append(r.calls, "resize")
			return nil
		},
		FnUpdate: func(float64) error {
			r.updates++
			if r.quitAt > 0 && r.updates == r.quitAt {
				core.EventFire(core.EventContext{Type: core.EVENT_CODE_APPLICATION_QUIT})
			}
			if r.failAt > 0 && r.updates == r.failAt {
				return errors.New("update failed")
			}
			return nil
		},
		FnRender: func(float64) (*image.RGBA, error) {
			r.renders++
			return frame, nil
		},
		FnShutdown: func() error { r.calls = append(r.calls, "shutdown"); return nil },
	}
}

func TestNewRequiresCallbacks(t *testing.T) {
	_, err := New(nil)
	assert.Error(t, err)
	_, err = New(&Game{ApplicationConfig: &ApplicationConfig{}})
	assert.Error(t, err)
}

func TestLifecycle(t *testing.T) {
	r := &recorder{}
	g := newRecordingGame(r, 5)
	e, err := New(g)
	require.NoError(t, err)
	assert.NotNil(t, g.Metrics)

	assert.ErrorIs(t, e.Run(context.Background()), core.ErrNotInitialized)

	require.NoError(t, e.Initialize())
	assert.Equal(t, EngineStageInitialized, e.Stage())
	assert.Equal(t, []string{"boot", "initialize", "resize"}, r.calls)

	require.NoError(t, e.Run(context.Background()))
	assert.Equal(t, 5, r.updates)
	assert.Equal(t, 5, r.renders)
	assert.NotNil(t, e.Frame())

	require.NoError(t, e.Shutdown())
	assert.Equal(t, "shutdown", r.calls[len(r.calls)-1])
	assert.Equal(t, EngineStageUninitialized, e.Stage())
}

func TestQuitEventStopsRun(t *testing.T) {
	r := &recorder{quitAt: 2}
	e, err := New(newRecordingGame(r, 0))
	require.NoError(t, err)
	require.NoError(t, e.Initialize())
	defer e.Shutdown()

	require.NoError(t, e.Run(context.Background()))
	assert.Equal(t, 2, r.updates)
}

func TestUpdateErrorStopsRun(t *testing.T) {
	r := &recorder{failAt: 3}
	e, err := New(newRecordingGame(r, 0))
	require.NoError(t, err)
	require.NoError(t, e.Initialize())
	defer e.Shutdown()

	assert.Error(t, e.Run(context.Background()))
	assert.Equal(t, 3, r.updates)
	assert.Equal(t, 2, r.renders)
}
