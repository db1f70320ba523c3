package pointcloud

import (
	"github.com/chewxy/math32"

	"github.com/spaghettifunk/pointillist/engine/math"
)

const (
	DefaultWristCount = 3500

	wristStart     = -0.75
	wristLength    = 0.7
	wristRadius    = 0.34
	wristTaper     = 0.2
	wristFadeStart = 0.3
)

// Wrist is a truncated cone running from the base of the palm out along
// -x (mirrored by Sign) that fades into the forearm.
type Wrist struct {
	Sign float32
	// Count defaults to DefaultWristCount when zero.
	Count int
}

func (w Wrist) PointCount() int {
	if w.Count == 0 {
		return DefaultWristCount
	}
	return w.Count
}

// Start returns the centre of the cone where it meets the palm.
func (w Wrist) Start() math.Vec3 {
	return math.NewVec3(wristStart*w.Sign, 0, 0)
}

// End returns the centre of the far, forearm end of the cone.
func (w Wrist) End() math.Vec3 {
	return math.NewVec3((wristStart-wristLength)*w.Sign, 0, 0)
}

// Center returns the midpoint of the cone axis.
func (w Wrist) Center() math.Vec3 {
	return math.NewVec3((wristStart-wristLength*0.5)*w.Sign, 0, 0)
}

// Fade returns the intensity multiplier at parameter t: 1 up to 30% of the
// length, then a cubic fall-off to 0.
func (w Wrist) Fade(t float32) float32 {
	if t < wristFadeStart {
		return 1
	}
	f := 1 - (t-wristFadeStart)/(1-wristFadeStart)
	return f * f * f
}

func (w Wrist) Sample(rng math.Random, dst *Buffer) {
	for i := 0; i < w.PointCount(); i++ {
		t := rng.Float32()
		depth := wristStart - t*wristLength
		radius := wristRadius * (1 - t*wristTaper)
		theta, phi := randomSphereAngles(rng)
		r := math32.Pow(rng.Float32(), 0.4) * radius

		sinPhi := math32.Sin(phi)
		pos := math.NewVec3(
			depth*w.Sign,
			r*sinPhi*math32.Cos(theta)*0.9,
			r*sinPhi*math32.Sin(theta)*0.75,
		)
		normal := math.NewVec3(
			sinPhi*math32.Cos(theta),
			sinPhi*math32.Sin(theta)*0.9,
			math32.Cos(phi)*0.75,
		)
		light := Shade(pos, normal)
		intensity := math32.Min(1, light*(0.4+rng.Float32()*0.2)*w.Fade(t))
		dst.Append(pos, intensity)
	}
}

// SampleWrist samples the wrist into a new buffer.
func SampleWrist(rng math.Random, sign float32, count int) *Buffer {
	return Sample(rng, Wrist{Sign: sign, Count: count})
}
