package pointcloud

import (
	"github.com/chewxy/math32"

	"github.com/spaghettifunk/pointillist/engine/math"
)

// Primitive is one sampled volume of a hand.
type Primitive interface {
	// Sample appends exactly PointCount points to dst.
	Sample(rng math.Random, dst *Buffer)
	PointCount() int
}

// Sample runs a single primitive into a fresh buffer.
func Sample(rng math.Random, p Primitive) *Buffer {
	b := NewBuffer(p.PointCount())
	p.Sample(rng, b)
	return b
}

// sphericalDirection returns the unit vector for polar angle phi and
// azimuth theta.
func sphericalDirection(phi, theta float32) math.Vec3 {
	sinPhi := math32.Sin(phi)
	return math.NewVec3(
		sinPhi*math32.Cos(theta),
		sinPhi*math32.Sin(theta),
		math32.Cos(phi),
	)
}

// randomSphereAngles draws theta uniform in [0, 2π) and phi with a cosine
// distribution so that (phi, theta) is uniform over the sphere.
func randomSphereAngles(rng math.Random) (theta, phi float32) {
	theta = rng.Float32() * math.K_PI_2
	phi = math32.Acos(2*rng.Float32() - 1)
	return theta, phi
}
