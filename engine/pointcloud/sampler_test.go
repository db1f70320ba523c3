package pointcloud

import (
	"errors"
	stdmath "math"
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/pointillist/engine/core"
	"github.com/spaghettifunk/pointillist/engine/math"
)

func seeded(seed uint64) math.Random {
	return math.NewRandom(seed)
}

// nearestNeighbourGaps returns, for every unit direction, the angle to its
// closest neighbour.
func nearestNeighbourGaps(dirs []math.Vec3) []float64 {
	gaps := make([]float64, len(dirs))
	for i, a := range dirs {
		best := stdmath.Inf(1)
		for j, b := range dirs {
			if i == j {
				continue
			}
			d := stdmath.Max(-1, stdmath.Min(1, float64(a.Dot(b))))
			best = stdmath.Min(best, stdmath.Acos(d))
		}
		gaps[i] = best
	}
	return gaps
}

func gapStats(gaps []float64) (minOverMean, cv float64) {
	mean, lo := 0.0, stdmath.Inf(1)
	for _, g := range gaps {
		mean += g
		lo = stdmath.Min(lo, g)
	}
	mean /= float64(len(gaps))
	variance := 0.0
	for _, g := range gaps {
		variance += (g - mean) * (g - mean)
	}
	variance /= float64(len(gaps))
	return lo / mean, stdmath.Sqrt(variance) / mean
}

func TestBufferValidate(t *testing.T) {
	b := NewBuffer(2)
	b.Append(math.NewVec3(1, 2, 3), 0.5)
	b.Append(math.NewVec3(-1, 0, 0), 1)
	require.NoError(t, b.Validate())
	assert.Equal(t, 2, b.Len())

	p, c := b.Point(1)
	assert.Equal(t, math.NewVec3(-1, 0, 0), p)
	assert.Equal(t, float32(1), c)

	ext := b.Bounds()
	assert.Equal(t, math.NewVec3(-1, 0, 0), ext.Min)
	assert.Equal(t, math.NewVec3(1, 2, 3), ext.Max)

	var zero float32
	tests := []struct {
		name   string
		mutate func(b *Buffer)
		want   error
	}{
		{"mismatch", func(b *Buffer) { b.Colors = b.Colors[:3] }, core.ErrBufferMismatch},
		{"nan", func(b *Buffer) { b.Positions[4] = zero / zero }, core.ErrNonFinite},
		{"range", func(b *Buffer) { b.Colors[0], b.Colors[1], b.Colors[2] = 1.5, 1.5, 1.5 }, core.ErrColorRange},
		{"greyscale", func(b *Buffer) { b.Colors[5] = 0.2 }, core.ErrNotGreyscale},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Buffer{
				Positions: append([]float32(nil), b.Positions...),
				Colors:    append([]float32(nil), b.Colors...),
			}
			tt.mutate(c)
			assert.True(t, errors.Is(c.Validate(), tt.want), "got %v", c.Validate())
		})
	}
}

func TestJointStaysInsideRadius(t *testing.T) {
	center := math.NewVec3(0.3, -0.2, 0.1)
	b := SampleJoint(seeded(1), center, 1, 2000, 1)
	require.Equal(t, 2000, b.Len())
	require.NoError(t, b.Validate())

	for i := 0; i < b.Len(); i++ {
		p, _ := b.Point(i)
		assert.LessOrEqual(t, p.Distance(center), float32(1+1e-5))
	}
}

func TestJointFlattenSquashesYZ(t *testing.T) {
	b := SampleJoint(seeded(2), math.NewVec3Zero(), 0.5, 1000, 0.5)
	ext := b.Bounds()
	assert.LessOrEqual(t, ext.Max.Y, float32(0.25+1e-5))
	assert.LessOrEqual(t, ext.Max.Z, float32(0.25+1e-5))
	assert.Greater(t, ext.Max.X, float32(0.3))
}

func TestJointLatticeHasLowDiscrepancy(t *testing.T) {
	const n = 400
	b := SampleJoint(seeded(3), math.NewVec3Zero(), 1, n, 1)
	dirs := make([]math.Vec3, 0, n)
	for i := 0; i < b.Len(); i++ {
		p, _ := b.Point(i)
		dirs = append(dirs, p.Normalize())
	}
	minOverMean, cv := gapStats(nearestNeighbourGaps(dirs))
	assert.Greater(t, minOverMean, 0.7)
	assert.Less(t, cv, 0.1)

	// The same statistic on independent random directions is far worse.
	rng := seeded(3)
	random := make([]math.Vec3, n)
	for i := range random {
		theta, phi := randomSphereAngles(rng)
		random[i] = sphericalDirection(phi, theta)
	}
	randomMin, randomCV := gapStats(nearestNeighbourGaps(random))
	assert.Less(t, randomMin, minOverMean)
	assert.Greater(t, randomCV, 0.3)
}

func TestJointDirectionsIgnoreRandomness(t *testing.T) {
	a := SampleJoint(seeded(4), math.NewVec3Zero(), 1, 200, 1)
	b := SampleJoint(seeded(5), math.NewVec3Zero(), 1, 200, 1)
	for i := 0; i < a.Len(); i++ {
		pa, _ := a.Point(i)
		pb, _ := b.Point(i)
		assert.True(t, pa.Normalize().Compare(pb.Normalize(), 1e-4), "point %d", i)
	}
}

func TestSegmentUniformCylinder(t *testing.T) {
	const (
		count  = 20000
		radius = 0.3
		bins   = 4
	)
	b := SampleSegment(seeded(6), math.NewVec3Zero(), math.NewVec3(2, 0, 0), radius, radius, count, 0)
	require.Equal(t, count, b.Len())
	require.NoError(t, b.Validate())

	var sumSq [bins]float64
	var n [bins]int
	total := 0.0
	for i := 0; i < b.Len(); i++ {
		p, _ := b.Point(i)
		spread := float64(p.Y*p.Y + p.Z*p.Z)
		require.LessOrEqual(t, math32.Sqrt(p.Y*p.Y+p.Z*p.Z), float32(radius+1e-5))
		bin := min(int(p.X/2*bins), bins-1)
		sumSq[bin] += spread
		n[bin]++
		total += spread
	}
	overall := stdmath.Sqrt(total / count)
	for i := 0; i < bins; i++ {
		require.Greater(t, n[i], count/bins/2)
		rms := stdmath.Sqrt(sumSq[i] / float64(n[i]))
		assert.InEpsilon(t, overall, rms, 0.05, "bin %d", i)
	}
}

func TestSegmentTaperAndCurl(t *testing.T) {
	s := Segment{
		Start:       math.NewVec3Zero(),
		End:         math.NewVec3(1, 0, 0),
		StartRadius: 0.2,
		EndRadius:   0.1,
		Count:       10000,
		Curvature:   -0.1,
	}
	assert.InDelta(t, 0.2, float64(s.RadiusAt(0)), 1e-6)
	assert.InDelta(t, 0.1, float64(s.RadiusAt(1)), 1e-6)
	// (1-t)^0.6 sits above the linear taper
	assert.Greater(t, s.RadiusAt(0.5), float32(0.15))

	b := Sample(seeded(7), s)
	sumZ, n := 0.0, 0
	for i := 0; i < b.Len(); i++ {
		p, _ := b.Point(i)
		if p.X > 0.4 && p.X < 0.8 {
			sumZ += float64(p.Z)
			n++
		}
	}
	require.NotZero(t, n)
	assert.Less(t, sumZ/float64(n), -0.03)
}

func TestPalmMirror(t *testing.T) {
	left := SamplePalm(seeded(8), 1, 0)
	right := SamplePalm(seeded(8), -1, 0)
	require.Equal(t, DefaultPalmCount, left.Len())
	require.Equal(t, DefaultPalmCount, right.Len())
	require.NoError(t, left.Validate())

	for i := 0; i < left.Len(); i++ {
		pl, cl := left.Point(i)
		pr, cr := right.Point(i)
		require.Equal(t, pl.X, -pr.X)
		require.Equal(t, pl.Y, pr.Y)
		require.Equal(t, pl.Z, pr.Z)
		require.Equal(t, cl, cr)
	}

	ext := left.Bounds()
	assert.GreaterOrEqual(t, ext.Min.X, float32(-0.905-1e-5))
	assert.LessOrEqual(t, ext.Max.X, float32(0.545+1e-5))
	assert.Equal(t, math.NewVec3(0.18, 0, 0), Palm{Sign: -1}.Center())
}

func TestWrist(t *testing.T) {
	w := Wrist{Sign: -1}
	assert.Equal(t, DefaultWristCount, w.PointCount())
	assert.Equal(t, float32(1), w.Fade(0))
	assert.Equal(t, float32(1), w.Fade(0.29))
	assert.InDelta(t, 0.125, float64(w.Fade(0.65)), 1e-6)
	assert.InDelta(t, 0, float64(w.Fade(1)), 1e-6)

	b := Sample(seeded(9), w)
	require.Equal(t, DefaultWristCount, b.Len())
	require.NoError(t, b.Validate())

	ext := b.Bounds()
	// right hand wrist runs along +x
	assert.GreaterOrEqual(t, ext.Min.X, w.Start().X-1e-5)
	assert.LessOrEqual(t, ext.Max.X, w.End().X+1e-5)
	assert.LessOrEqual(t, ext.Max.Y, float32(0.34*0.9+1e-5))
}

func TestSampleWristCount(t *testing.T) {
	b := SampleWrist(seeded(3), 1, 250)
	require.Equal(t, 250, b.Len())
	require.NoError(t, b.Validate())
	ext := b.Bounds()
	assert.LessOrEqual(t, ext.Max.X, float32(-0.75+1e-5))
}
