package core

import (
	"bytes"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventRegisterFire(t *testing.T) {
	require.True(t, EventSystemInitialize())
	defer EventSystemShutdown()
	assert.False(t, EventSystemInitialize())

	type listener struct{ name string }
	first, second := &listener{"first"}, &listener{"second"}

	var got []string
	require.True(t, EventRegister(EVENT_CODE_MIRROR_TOGGLED, first, func(ctx EventContext) bool {
		got = append(got, "first")
		return false
	}))
	require.True(t, EventRegister(EVENT_CODE_MIRROR_TOGGLED, second, func(ctx EventContext) bool {
		got = append(got, "second")
		return true
	}))
	assert.False(t, EventRegister(EVENT_CODE_MIRROR_TOGGLED, first, nil), "duplicate listener")

	assert.True(t, EventFire(EventContext{Type: EVENT_CODE_MIRROR_TOGGLED}))
	assert.Equal(t, []string{"first", "second"}, got)

	assert.True(t, EventUnregister(EVENT_CODE_MIRROR_TOGGLED, second))
	assert.False(t, EventFire(EventContext{Type: EVENT_CODE_MIRROR_TOGGLED}))
	assert.False(t, EventFire(EventContext{Type: EVENT_CODE_APPLICATION_QUIT}))
}

func TestClock(t *testing.T) {
	now := time.Unix(100, 0)
	c := &Clock{now: func() time.Time { return now }}

	c.Update()
	assert.Zero(t, c.Elapsed(), "not started")

	c.Start()
	now = now.Add(1500 * time.Millisecond)
	c.Update()
	assert.InDelta(t, 1.5, c.Elapsed(), 1e-9)

	c.Stop()
	now = now.Add(time.Second)
	c.Update()
	assert.InDelta(t, 1.5, c.Elapsed(), 1e-9)
}

func TestMetrics(t *testing.T) {
	m := NewMetrics()
	for i := 0; i < 120; i++ {
		m.Update(1.0 / 60.0)
	}
	assert.InDelta(t, 60, m.FPS(), 1)
	assert.InDelta(t, 1000.0/60.0, m.FrameTime(), 1e-6)
}

func TestParseLogLevel(t *testing.T) {
	lvl, err := ParseLogLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, DebugLevel, lvl)

	_, err = ParseLogLevel("loud")
	assert.Error(t, err)
}

func TestLogErrorKeepsPercentSigns(t *testing.T) {
	var buf bytes.Buffer
	SetLogOutput(&buf)
	defer SetLogOutput(os.Stderr)

	err := errors.New("opacity 150% out of range")
	LogError("%s", err)
	assert.Contains(t, buf.String(), "opacity 150% out of range")
	assert.NotContains(t, buf.String(), "%!")
}
