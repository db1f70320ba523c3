package pointcloud

import (
	"github.com/chewxy/math32"

	"github.com/spaghettifunk/pointillist/engine/math"
)

const (
	DefaultPalmCount = 12000

	palmWidth     = 1.45
	palmHeight    = 1.05
	palmOffsetX   = -0.18
	palmThickness = 0.2
)

// Palm is a flattened, slightly bowed elliptical disc in the x-y plane.
type Palm struct {
	// Sign multiplies every x coordinate: +1 for a left hand, -1 for a right.
	Sign float32
	// Count defaults to DefaultPalmCount when zero.
	Count int
}

func (p Palm) PointCount() int {
	if p.Count == 0 {
		return DefaultPalmCount
	}
	return p.Count
}

// Center returns the palm origin in model space.
func (p Palm) Center() math.Vec3 {
	return math.NewVec3(palmOffsetX*p.Sign, 0, 0)
}

func (p Palm) Sample(rng math.Random, dst *Buffer) {
	for i := 0; i < p.PointCount(); i++ {
		u := rng.Float32()
		v := rng.Float32()
		palmX := (u-0.5)*palmWidth + palmOffsetX
		palmY := (v - 0.5) * palmHeight
		// thinner toward the top and bottom edges
		depthFactor := 1 - math32.Abs(palmY)*0.35
		curvature := math32.Sin(v*math.K_PI) * 0.1 * (1 + u*0.3)

		theta, phi := randomSphereAngles(rng)
		depthRadius := math32.Pow(rng.Float32(), 0.4) * palmThickness * depthFactor

		sinPhi := math32.Sin(phi)
		pos := math.NewVec3(
			palmX*p.Sign,
			palmY+sinPhi*math32.Cos(theta)*depthRadius*0.75,
			sinPhi*math32.Sin(theta)*depthRadius+curvature,
		)
		normal := math.NewVec3(
			sinPhi*math32.Cos(theta),
			sinPhi*math32.Sin(theta)*0.75,
			math32.Cos(phi)+curvature*2,
		)
		light := Shade(pos, normal)
		palmDepth := depthRadius / (palmThickness * depthFactor)
		intensity := math32.Min(1, light*(0.5+palmDepth*0.3)+rng.Float32()*0.2)
		dst.Append(pos, intensity)
	}
}

// SamplePalm samples the palm into a new buffer.
func SamplePalm(rng math.Random, sign float32, count int) *Buffer {
	return Sample(rng, Palm{Sign: sign, Count: count})
}
