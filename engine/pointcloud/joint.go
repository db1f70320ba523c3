package pointcloud

import (
	"github.com/chewxy/math32"

	"github.com/spaghettifunk/pointillist/engine/math"
)

// goldenAngle is the Fibonacci lattice azimuth step, π(1+√5).
var goldenAngle = math.K_PI * (1 + math32.Sqrt(5))

// Joint is a sphere, optionally squashed along y and z, placed at a
// knuckle.
type Joint struct {
	Center math.Vec3
	Radius float32
	Count  int
	// Flatten scales the y and z axes. Zero means 1.
	Flatten float32
}

func (j Joint) PointCount() int { return j.Count }

// Sample spreads the points over a Fibonacci lattice so that directions
// cover the sphere evenly, and pushes the radial distance toward the
// surface with r = radius * u^0.35.
func (j Joint) Sample(rng math.Random, dst *Buffer) {
	flatten := j.Flatten
	if flatten == 0 {
		flatten = 1
	}
	n := float32(j.Count)
	for i := 0; i < j.Count; i++ {
		index := float32(i) + 0.5
		phi := math32.Acos(1 - 2*index/n)
		theta := goldenAngle * index
		r := math32.Pow(rng.Float32(), 0.35) * j.Radius

		dir := sphericalDirection(phi, theta)
		dir.Y *= flatten
		dir.Z *= flatten
		p := j.Center.Add(dir.MulScalar(r))

		var depthFactor float32
		if j.Radius > 0 {
			depthFactor = r / j.Radius
		}
		light := Shade(p, dir)
		intensity := math32.Min(1, light*(0.6+depthFactor*0.25)+rng.Float32()*0.15)
		dst.Append(p, intensity)
	}
}

// SampleJoint samples a single joint into a new buffer.
func SampleJoint(rng math.Random, center math.Vec3, radius float32, count int, flatten float32) *Buffer {
	return Sample(rng, Joint{Center: center, Radius: radius, Count: count, Flatten: flatten})
}
