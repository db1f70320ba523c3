// Package hand assembles a complete point cloud hand from the samplers in
// engine/pointcloud, following the fixed skeleton in Fingers.
package hand

import (
	"fmt"

	"github.com/spaghettifunk/pointillist/engine/core"
	"github.com/spaghettifunk/pointillist/engine/math"
	"github.com/spaghettifunk/pointillist/engine/pointcloud"
)

// MirrorSign is the factor applied to the x coordinate of every local
// anchor. The skeleton tables are authored for the left hand.
func MirrorSign(isLeft bool) float32 {
	if isLeft {
		return 1
	}
	return -1
}

// Anchor is a named joint centre in model space, e.g. "index.k1".
type Anchor struct {
	Name     string
	Position math.Vec3
	Radius   float32
}

// Span is the half-open range of points emitted by one primitive.
type Span struct {
	Name       string
	Start, End int
}

// Hand is the generated cloud of one hand. The buffers are shared with
// every consumer and must not be modified.
type Hand struct {
	IsLeft     bool
	Buffer     *pointcloud.Buffer
	Anchors    []Anchor
	Primitives []Span
}

func (h *Hand) Positions() []float32 { return h.Buffer.Positions }
func (h *Hand) Colors() []float32    { return h.Buffer.Colors }
func (h *Hand) Len() int             { return h.Buffer.Len() }

// Part returns a read-only view over the points of the named primitive.
func (h *Hand) Part(name string) (*pointcloud.Buffer, bool) {
	for _, s := range h.Primitives {
		if s.Name == name {
			return h.Buffer.Slice(s.Start, s.End), true
		}
	}
	return nil, false
}

// Anchor looks up a named anchor.
func (h *Hand) Anchor(name string) (Anchor, bool) {
	for _, a := range h.Anchors {
		if a.Name == name {
			return a, true
		}
	}
	return Anchor{}, false
}

type builder struct {
	rng  math.Random
	hand *Hand
}

func (b *builder) emit(name string, p pointcloud.Primitive) {
	start := b.hand.Buffer.Len()
	p.Sample(b.rng, b.hand.Buffer)
	b.hand.Primitives = append(b.hand.Primitives, Span{Name: name, Start: start, End: b.hand.Buffer.Len()})
}

func (b *builder) anchor(name string, position math.Vec3, radius float32) {
	b.hand.Anchors = append(b.hand.Anchors, Anchor{Name: name, Position: position, Radius: radius})
}

// Build generates one hand. Primitives are emitted palm, wrist, then each
// finger of Fingers in order, each finger alternating joint and segment
// from base to tip.
func Build(rng math.Random, isLeft bool) (*Hand, error) {
	if err := ValidateSkeleton(Fingers); err != nil {
		return nil, err
	}
	sign := MirrorSign(isLeft)
	b := &builder{
		rng: rng,
		hand: &Hand{
			IsLeft: isLeft,
			Buffer: pointcloud.NewBuffer(PointCount()),
		},
	}

	palm := pointcloud.Palm{Sign: sign}
	b.anchor("palm.center", palm.Center(), 0)
	b.emit("palm", palm)

	wrist := pointcloud.Wrist{Sign: sign}
	b.anchor("wrist.start", wrist.Start(), 0)
	b.anchor("wrist.center", wrist.Center(), 0)
	b.anchor("wrist.end", wrist.End(), 0)
	b.emit("wrist", wrist)

	for _, f := range Fingers {
		centers := make([]math.Vec3, len(f.Anchors))
		for i, a := range f.Anchors {
			centers[i] = a.Position.MirrorX(sign)
			b.anchor(f.Name+"."+a.Name, centers[i], a.Radius)
		}
		for i, a := range f.Anchors {
			b.emit(f.Name+"."+a.Name, pointcloud.Joint{
				Center:  centers[i],
				Radius:  a.Radius,
				Count:   a.Count,
				Flatten: a.Flatten,
			})
			if i == len(f.Links) {
				break
			}
			l := f.Links[i]
			b.emit(f.Name+"."+a.Name+"-"+f.Anchors[i+1].Name, pointcloud.Segment{
				Start:       centers[i],
				End:         centers[i+1],
				StartRadius: l.StartRadius,
				EndRadius:   l.EndRadius,
				Count:       l.Count,
				Curvature:   l.Curvature,
			})
		}
	}

	h := b.hand
	if h.Len() != PointCount() {
		return nil, fmt.Errorf("built %d points, expected %d: %w", h.Len(), PointCount(), core.ErrPointCount)
	}
	if err := h.Buffer.Validate(); err != nil {
		return nil, fmt.Errorf("invalid hand (left=%t): %w", isLeft, err)
	}
	return h, nil
}
