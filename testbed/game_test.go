package testbed

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/pointillist/engine"
	"github.com/spaghettifunk/pointillist/engine/config"
	"github.com/spaghettifunk/pointillist/engine/core"
	"github.com/spaghettifunk/pointillist/engine/hand"
)

func headlessConfig(t *testing.T, ticks uint64) *config.Config {
	cfg := config.Default()
	cfg.LogLevel = "error"
	cfg.Window.Width = 160
	cfg.Window.Height = 90
	cfg.Headless.Enabled = true
	cfg.Headless.Hz = 1000
	cfg.Headless.Ticks = ticks
	cfg.Snapshot = filepath.Join(t.TempDir(), "hands.png")
	return cfg
}

func TestHeadlessRunWritesSnapshot(t *testing.T) {
	cfg := headlessConfig(t, 3)
	g, err := NewHandsGame(cfg, "")
	require.NoError(t, err)

	e, err := engine.New(g.Game)
	require.NoError(t, err)
	require.NoError(t, e.Initialize())

	s := g.Scene()
	require.NotNil(t, s)
	assert.Equal(t, 2*hand.PointCount(), s.PointCount())
	assert.Equal(t, 2, s.Generator().Builds())

	require.NoError(t, e.Run(context.Background()))
	assert.InDelta(t, 0.03, s.Nodes[0].Angle(), 1e-5)
	assert.InDelta(t, -0.03, s.Nodes[1].Angle(), 1e-5)
	assert.Equal(t, 2, s.Generator().Builds())

	require.NoError(t, e.Shutdown())
	_, err = os.Stat(cfg.Snapshot)
	require.NoError(t, err)

	frame := e.Frame()
	require.NotNil(t, frame)
	lit := 0
	for i := 0; i < len(frame.Pix); i += 4 {
		if frame.Pix[i] > 0 {
			lit++
		}
	}
	assert.Greater(t, lit, 0)
}

func TestEventsAreAppliedOnUpdate(t *testing.T) {
	cfg := headlessConfig(t, 0)
	g, err := NewHandsGame(cfg, "")
	require.NoError(t, err)

	e, err := engine.New(g.Game)
	require.NoError(t, err)
	require.NoError(t, e.Initialize())
	defer e.Shutdown()

	s := g.Scene()
	require.True(t, s.Nodes[0].IsLeft())

	core.EventFire(core.EventContext{Type: core.EVENT_CODE_MIRROR_TOGGLED})
	rs := cfg.Render
	rs.RotationStep = 0.5
	rs.ShowHUD = false
	core.EventFire(core.EventContext{Type: core.EVENT_CODE_SETTINGS_CHANGED, Data: rs})

	require.NoError(t, g.Update(0))
	assert.False(t, s.Nodes[0].IsLeft())
	assert.True(t, s.Nodes[1].IsLeft())
	assert.InDelta(t, 0.5, s.Nodes[0].Angle(), 1e-6)
	assert.Equal(t, 2, s.Generator().Builds())

	core.EventFire(core.EventContext{Type: core.EVENT_CODE_SNAPSHOT_REQUESTED})
	_, err = g.Render(0)
	require.NoError(t, err)
	_, err = os.Stat(cfg.Snapshot)
	assert.NoError(t, err)
}

func TestNumbered(t *testing.T) {
	assert.Equal(t, "shots/hands-0002.png", numbered("shots/hands.png", 2))
	assert.Equal(t, "out-0001", numbered("out", 1))
}
