package pointcloud

import (
	"github.com/chewxy/math32"

	"github.com/spaghettifunk/pointillist/engine/math"
)

// lightDir is the fixed key light (0.4, 0.6, 0.7), normalised.
var lightDir = math.NewVec3(0.4, 0.6, 0.7).Normalize()

const (
	ambientLight    = 0.25
	diffuseWeight   = 0.55
	occlusionWeight = 0.2
	occlusionBase   = 0.3
	occlusionDepth  = 0.35
	rimThreshold    = 1.3
	rimBoost        = 1.2
)

// Shade returns the light intensity in [0, 1] of a point at position whose
// approximate surface normal is normal. Depth stands in for ambient
// occlusion: points with larger z are treated as less occluded, and points
// far out on the x axis get a rim boost.
func Shade(position, normal math.Vec3) float32 {
	diffuse := math32.Max(0, normal.Dot(lightDir))
	ao := occlusionBase + position.Z*occlusionDepth
	edge := float32(1)
	if math32.Abs(position.X) > rimThreshold {
		edge = rimBoost
	}
	base := ambientLight + diffuse*diffuseWeight + ao*occlusionWeight
	return math32.Min(1, base*edge)
}
