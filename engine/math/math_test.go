package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = float32(1e-5)

func TestVec3Basics(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(-1, 0.5, 2)

	assert.Equal(t, NewVec3(0, 2.5, 5), a.Add(b))
	assert.Equal(t, NewVec3(2, 1.5, 1), a.Sub(b))
	assert.Equal(t, float32(-1+1+6), a.Dot(b))
	assert.Equal(t, NewVec3(-1, 2, 3), a.MirrorX(-1))
	assert.InDelta(t, 1.0, float64(a.Normalize().Length()), 1e-6)
	assert.Equal(t, NewVec3Zero(), NewVec3Zero().Normalize())

	x := NewVec3Right()
	y := NewVec3Up()
	assert.True(t, x.Cross(y).Compare(NewVec3(0, 0, 1), tol))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0, Clamp(-3, 0, 10))
	assert.Equal(t, 10, Clamp(42, 0, 10))
	assert.Equal(t, float32(0.5), Saturate(0.5))
	assert.Equal(t, float32(1), Saturate(1.7))
	assert.Equal(t, float32(0), Saturate(-0.2))
}

func TestQuaternionMatchesEulerX(t *testing.T) {
	angle := DegToRad(90)
	q := NewQuatFromAxisAngle(NewVec3Right(), angle, true)

	p := NewVec3(0, 1, 0)
	fromQuat := p.Transform(q.ToMat4())
	fromEuler := p.Transform(NewMat4EulerX(angle))

	assert.True(t, fromQuat.Compare(NewVec3(0, 0, 1), tol), "got %+v", fromQuat)
	assert.True(t, fromQuat.Compare(fromEuler, tol))
}

func TestTransformOrder(t *testing.T) {
	tr := TransformFromPosition(NewVec3(2, 0, 0))
	tr.Rotate(NewQuatFromAxisAngle(NewVec3Right(), DegToRad(90), true))

	// rotate first, then translate
	got := NewVec3(0, 1, 0).Transform(tr.GetWorld())
	assert.True(t, got.Compare(NewVec3(2, 0, 1), tol), "got %+v", got)
	assert.False(t, tr.IsDirty)

	var nilTransform *Transform
	assert.Equal(t, NewMat4Identity(), nilTransform.GetWorld())
}

func TestLookAtPerspective(t *testing.T) {
	view := NewMat4LookAt(NewVec3(0, 0, 5), NewVec3Zero(), NewVec3Up())
	proj := NewMat4Perspective(DegToRad(60), 1, 0.1, 100)
	vp := view.Mul(proj)

	center := NewVec3Zero().TransformHomogeneous(vp)
	require.Greater(t, center.W, float32(0))
	assert.InDelta(t, 0, float64(center.X/center.W), 1e-6)
	assert.InDelta(t, 0, float64(center.Y/center.W), 1e-6)

	right := NewVec3(1, 0, 0).TransformHomogeneous(vp)
	assert.Greater(t, right.X/right.W, float32(0))

	up := NewVec3(0, 1, 0).TransformHomogeneous(vp)
	assert.Greater(t, up.Y/up.W, float32(0))
}

func TestRandomIsSeeded(t *testing.T) {
	a := NewRandom(7)
	b := NewRandom(7)
	for i := 0; i < 100; i++ {
		va := a.Float32()
		require.Equal(t, va, b.Float32())
		require.GreaterOrEqual(t, va, float32(0))
		require.Less(t, va, float32(1))
	}

	assert.NotEqual(t, DeriveSeed(1, 0), DeriveSeed(1, 1))
	assert.Equal(t, DeriveSeed(9, 3), DeriveSeed(9, 3))
}

func TestIsFinite(t *testing.T) {
	var zero float32
	assert.True(t, IsFinite(1.5))
	assert.False(t, IsFinite(zero/zero))
	assert.False(t, IsFinite(1/zero))
}
