package hand

import (
	"fmt"

	"github.com/spaghettifunk/pointillist/engine/math"
	"github.com/spaghettifunk/pointillist/engine/pointcloud"
)

// AnchorSpec is one joint of a finger chain in local, left-handed
// coordinates, together with the sphere sampled around it.
type AnchorSpec struct {
	Name     string
	Position math.Vec3
	Radius   float32
	Count    int
	// Flatten squashes the joint along y and z. Zero means round.
	Flatten float32
}

// LinkSpec describes the segment between two consecutive anchors.
type LinkSpec struct {
	StartRadius float32
	EndRadius   float32
	Count       int
	Curvature   float32
}

// FingerSpec is an anchor chain from base to tip. Links[i] joins
// Anchors[i] and Anchors[i+1].
type FingerSpec struct {
	Name    string
	Anchors []AnchorSpec
	Links   []LinkSpec
}

// Fingers is the fixed hand topology, in emission order. Radii and point
// counts shrink from base to tip. The thumb curls up (positive curvature)
// while the other fingers curl down.
var Fingers = []FingerSpec{
	{
		Name: "thumb",
		Anchors: []AnchorSpec{
			{Name: "base", Position: math.NewVec3(-0.36, 0.54, 0.06), Radius: 0.19, Count: 550, Flatten: 0.88},
			{Name: "mid", Position: math.NewVec3(-0.06, 0.82, 0.14), Radius: 0.165, Count: 500, Flatten: 0.92},
			{Name: "tip", Position: math.NewVec3(0.22, 1.02, 0.18), Radius: 0.11, Count: 420, Flatten: 1},
		},
		Links: []LinkSpec{
			{StartRadius: 0.18, EndRadius: 0.16, Count: 2200, Curvature: 0.025},
			{StartRadius: 0.16, EndRadius: 0.12, Count: 1900, Curvature: 0.035},
		},
	},
	{
		Name: "index",
		Anchors: []AnchorSpec{
			{Name: "base", Position: math.NewVec3(0.52, 0.4, 0.025), Radius: 0.17, Count: 580},
			{Name: "k1", Position: math.NewVec3(0.98, 0.35, 0.0), Radius: 0.15, Count: 480},
			{Name: "k2", Position: math.NewVec3(1.4, 0.31, -0.01), Radius: 0.13, Count: 420},
			{Name: "tip", Position: math.NewVec3(1.78, 0.28, -0.02), Radius: 0.09, Count: 360},
		},
		Links: []LinkSpec{
			{StartRadius: 0.155, EndRadius: 0.145, Count: 2400, Curvature: -0.012},
			{StartRadius: 0.14, EndRadius: 0.125, Count: 2200, Curvature: -0.012},
			{StartRadius: 0.12, EndRadius: 0.095, Count: 2000, Curvature: -0.012},
		},
	},
	{
		Name: "middle",
		Anchors: []AnchorSpec{
			{Name: "base", Position: math.NewVec3(0.52, 0.14, 0.025), Radius: 0.17, Count: 560},
			{Name: "k1", Position: math.NewVec3(1.02, 0.12, -0.035), Radius: 0.145, Count: 460},
			{Name: "k2", Position: math.NewVec3(1.43, 0.1, -0.12), Radius: 0.125, Count: 400},
			{Name: "tip", Position: math.NewVec3(1.7, 0.08, -0.23), Radius: 0.085, Count: 340},
		},
		Links: []LinkSpec{
			{StartRadius: 0.155, EndRadius: 0.14, Count: 2300, Curvature: -0.025},
			{StartRadius: 0.135, EndRadius: 0.12, Count: 2100, Curvature: -0.035},
			{StartRadius: 0.115, EndRadius: 0.09, Count: 1800, Curvature: -0.045},
		},
	},
	{
		Name: "ring",
		Anchors: []AnchorSpec{
			{Name: "base", Position: math.NewVec3(0.5, -0.14, 0.025), Radius: 0.16, Count: 520},
			{Name: "k1", Position: math.NewVec3(0.95, -0.16, -0.07), Radius: 0.135, Count: 440},
			{Name: "k2", Position: math.NewVec3(1.29, -0.18, -0.2), Radius: 0.115, Count: 380},
			{Name: "tip", Position: math.NewVec3(1.5, -0.2, -0.38), Radius: 0.075, Count: 320},
		},
		Links: []LinkSpec{
			{StartRadius: 0.145, EndRadius: 0.13, Count: 2100, Curvature: -0.035},
			{StartRadius: 0.125, EndRadius: 0.11, Count: 1900, Curvature: -0.055},
			{StartRadius: 0.105, EndRadius: 0.08, Count: 1600, Curvature: -0.07},
		},
	},
	{
		Name: "pinky",
		Anchors: []AnchorSpec{
			{Name: "base", Position: math.NewVec3(0.46, -0.38, 0.025), Radius: 0.14, Count: 480},
			{Name: "k1", Position: math.NewVec3(0.81, -0.41, -0.09), Radius: 0.115, Count: 400},
			{Name: "k2", Position: math.NewVec3(1.07, -0.44, -0.26), Radius: 0.095, Count: 340},
			{Name: "tip", Position: math.NewVec3(1.23, -0.46, -0.45), Radius: 0.065, Count: 300},
		},
		Links: []LinkSpec{
			{StartRadius: 0.125, EndRadius: 0.11, Count: 1800, Curvature: -0.045},
			{StartRadius: 0.105, EndRadius: 0.09, Count: 1600, Curvature: -0.065},
			{StartRadius: 0.085, EndRadius: 0.065, Count: 1400, Curvature: -0.085},
		},
	},
}

// PointCount is the number of points in one hand: palm, wrist and every
// joint and link of every finger.
func PointCount() int {
	total := pointcloud.DefaultPalmCount + pointcloud.DefaultWristCount
	for _, f := range Fingers {
		for _, a := range f.Anchors {
			total += a.Count
		}
		for _, l := range f.Links {
			total += l.Count
		}
	}
	return total
}

// ValidateSkeleton checks that every finger has exactly one link between
// each pair of consecutive anchors.
func ValidateSkeleton(fingers []FingerSpec) error {
	for _, f := range fingers {
		if len(f.Anchors) < 2 {
			return fmt.Errorf("finger %q: %d anchors, need at least 2", f.Name, len(f.Anchors))
		}
		if len(f.Links) != len(f.Anchors)-1 {
			return fmt.Errorf("finger %q: %d links for %d anchors", f.Name, len(f.Links), len(f.Anchors))
		}
	}
	return nil
}
