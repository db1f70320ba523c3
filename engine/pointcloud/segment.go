package pointcloud

import (
	"github.com/chewxy/math32"

	"github.com/spaghettifunk/pointillist/engine/math"
)

// Segment is a tapered capsule between two joints. Its cross section is
// laid out in the (y, z) plane, so it assumes the axis runs mostly along x.
type Segment struct {
	Start, End             math.Vec3
	StartRadius, EndRadius float32
	Count                  int
	// Curvature bows the segment along z; negative values curl it down.
	Curvature float32
}

func (s Segment) PointCount() int { return s.Count }

// RadiusAt returns the cross section radius at parameter t in [0, 1].
// The taper (1-t)^0.6 keeps the radius near EndRadius for most of the
// length.
func (s Segment) RadiusAt(t float32) float32 {
	radiusFactor := math32.Pow(1-t, 0.6)
	return s.EndRadius + (s.StartRadius-s.EndRadius)*radiusFactor
}

// Sample draws t uniformly along the axis; density is uniform in t rather
// than in arc length.
func (s Segment) Sample(rng math.Random, dst *Buffer) {
	axis := s.End.Sub(s.Start)
	for i := 0; i < s.Count; i++ {
		t := rng.Float32()
		radius := s.RadiusAt(t)
		layerDepth := math32.Pow(rng.Float32(), 0.4)
		layerRadius := layerDepth * radius
		theta, phi := randomSphereAngles(rng)

		sinPhi := math32.Sin(phi)
		radialY := layerRadius * sinPhi * math32.Cos(theta)
		radialZ := layerRadius * sinPhi * math32.Sin(theta)
		curveOffset := math32.Sin(t*math.K_PI) * s.Curvature * t * (1 + rng.Float32()*0.2)

		p := s.Start.Add(axis.MulScalar(t))
		p.Y += radialY
		p.Z += radialZ + curveOffset

		// Normal straight from the sampling angles, ignoring the axis.
		normal := math.NewVec3(math32.Cos(theta)*sinPhi, math32.Sin(theta)*sinPhi, math32.Cos(phi))
		light := Shade(p, normal)
		depthVariation := 0.15 + layerDepth*0.25
		intensity := math32.Min(1, light*depthVariation+rng.Float32()*0.15)
		dst.Append(p, intensity)
	}
}

// SampleSegment samples a single finger segment into a new buffer.
func SampleSegment(rng math.Random, start, end math.Vec3, startRadius, endRadius float32, count int, curvature float32) *Buffer {
	return Sample(rng, Segment{
		Start:       start,
		End:         end,
		StartRadius: startRadius,
		EndRadius:   endRadius,
		Count:       count,
		Curvature:   curvature,
	})
}
