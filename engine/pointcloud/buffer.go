// Package pointcloud samples shaded point clouds over simple anatomical
// primitives: spheres for joints, tapered capsules for finger segments, a
// flattened disc for the palm and a truncated cone for the wrist.
//
// Every sampler appends to a Buffer and draws its randomness from an
// injected math.Random, so a seeded generator reproduces a cloud exactly.
package pointcloud

import (
	"fmt"

	"github.com/spaghettifunk/pointillist/engine/core"
	"github.com/spaghettifunk/pointillist/engine/math"
)

// Buffer is an ordered point cloud stored as two parallel flat arrays,
// three floats per point each, ready to be handed to a renderer.
type Buffer struct {
	Positions []float32
	Colors    []float32
}

// NewBuffer returns an empty buffer with room for capacity points.
func NewBuffer(capacity int) *Buffer {
	return &Buffer{
		Positions: make([]float32, 0, 3*capacity),
		Colors:    make([]float32, 0, 3*capacity),
	}
}

// Len returns the number of points.
func (b *Buffer) Len() int {
	return len(b.Positions) / 3
}

// Append adds one greyscale point.
func (b *Buffer) Append(p math.Vec3, intensity float32) {
	b.Positions = append(b.Positions, p.X, p.Y, p.Z)
	b.Colors = append(b.Colors, intensity, intensity, intensity)
}

// Point returns the position and intensity of point i.
func (b *Buffer) Point(i int) (math.Vec3, float32) {
	j := 3 * i
	return math.NewVec3(b.Positions[j], b.Positions[j+1], b.Positions[j+2]), b.Colors[j]
}

// Slice returns a view over points [from, to). The view shares memory with b.
func (b *Buffer) Slice(from, to int) *Buffer {
	return &Buffer{
		Positions: b.Positions[3*from : 3*to : 3*to],
		Colors:    b.Colors[3*from : 3*to : 3*to],
	}
}

// Bounds returns the axis aligned extents of the cloud.
func (b *Buffer) Bounds() math.Extents3D {
	if b.Len() == 0 {
		return math.Extents3D{}
	}
	first, _ := b.Point(0)
	ext := math.Extents3D{Min: first, Max: first}
	for i := 1; i < b.Len(); i++ {
		p, _ := b.Point(i)
		ext.Min = math.NewVec3(min(ext.Min.X, p.X), min(ext.Min.Y, p.Y), min(ext.Min.Z, p.Z))
		ext.Max = math.NewVec3(max(ext.Max.X, p.X), max(ext.Max.Y, p.Y), max(ext.Max.Z, p.Z))
	}
	return ext
}

// Validate checks the buffer invariants: matching lengths, a multiple of
// three floats, finite coordinates and greyscale colours in [0, 1].
func (b *Buffer) Validate() error {
	if len(b.Positions) != len(b.Colors) || len(b.Positions)%3 != 0 {
		return fmt.Errorf("%d positions, %d colours: %w", len(b.Positions), len(b.Colors), core.ErrBufferMismatch)
	}
	for i := 0; i < len(b.Positions); i += 3 {
		for k := 0; k < 3; k++ {
			if !math.IsFinite(b.Positions[i+k]) {
				return fmt.Errorf("point %d: %w", i/3, core.ErrNonFinite)
			}
			c := b.Colors[i+k]
			if !math.IsFinite(c) || c < 0 || c > 1 {
				return fmt.Errorf("point %d: %v: %w", i/3, c, core.ErrColorRange)
			}
		}
		if b.Colors[i] != b.Colors[i+1] || b.Colors[i] != b.Colors[i+2] {
			return fmt.Errorf("point %d: %w", i/3, core.ErrNotGreyscale)
		}
	}
	return nil
}
