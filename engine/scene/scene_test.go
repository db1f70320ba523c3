package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/pointillist/engine/hand"
)

func TestNewScene(t *testing.T) {
	gen := hand.NewGenerator(7)
	s, err := New(gen)
	require.NoError(t, err)
	require.Len(t, s.Nodes, 2)

	left, right := s.Nodes[0], s.Nodes[1]
	assert.True(t, left.IsLeft())
	assert.False(t, right.IsLeft())
	assert.Equal(t, float32(-HandOffset), left.Transform.Position.X)
	assert.Equal(t, HandOffset, right.Transform.Position.X)
	assert.Equal(t, float32(1), left.Direction)
	assert.Equal(t, float32(-1), right.Direction)
	assert.NotEqual(t, left.ID, right.ID)

	assert.Equal(t, 2*hand.PointCount(), s.PointCount())
	assert.Len(t, left.Positions(), 3*hand.PointCount())
	assert.Len(t, right.Colors(), 3*hand.PointCount())
}

func TestUpdateNeverRegenerates(t *testing.T) {
	gen := hand.NewGenerator(7)
	s, err := New(gen)
	require.NoError(t, err)
	require.Equal(t, 2, gen.Builds())

	before := &s.Nodes[0].Positions()[0]
	for i := 0; i < 100; i++ {
		s.Update()
	}

	assert.Equal(t, 2, gen.Builds())
	assert.Same(t, before, &s.Nodes[0].Positions()[0])
	assert.InDelta(t, 1.0, s.Nodes[0].Angle(), 1e-4)
	assert.InDelta(t, -1.0, s.Nodes[1].Angle(), 1e-4)
}

func TestToggleMirrorReusesBuffers(t *testing.T) {
	gen := hand.NewGenerator(7)
	s, err := New(gen)
	require.NoError(t, err)

	leftBuf := &s.Nodes[0].Positions()[0]
	rightBuf := &s.Nodes[1].Positions()[0]

	require.NoError(t, s.ToggleMirror())
	assert.False(t, s.Nodes[0].IsLeft())
	assert.True(t, s.Nodes[1].IsLeft())
	assert.Same(t, rightBuf, &s.Nodes[0].Positions()[0])
	assert.Same(t, leftBuf, &s.Nodes[1].Positions()[0])
	assert.Equal(t, 2, gen.Builds())
}

func TestWorldMatrixFollowsRotation(t *testing.T) {
	gen := hand.NewGenerator(7)
	node, err := NewHandNode(gen, true, HandPosition(true), 1)
	require.NoError(t, err)

	world := node.World()
	assert.InDelta(t, -HandOffset, world.Data[12], 1e-6)

	node.Update(0.5)
	world = node.World()
	assert.InDelta(t, -HandOffset, world.Data[12], 1e-6)
	assert.NotEqual(t, float32(1), world.Data[5])
}
