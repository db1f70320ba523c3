package scene

import (
	"github.com/spaghettifunk/pointillist/engine/core"
	"github.com/spaghettifunk/pointillist/engine/hand"
	"github.com/spaghettifunk/pointillist/engine/math"
)

// HandOffset is the distance of each hand from the origin along X.
const HandOffset float32 = 1.81

// HandPosition is the world placement of a hand of the given handedness.
func HandPosition(isLeft bool) math.Vec3 {
	if isLeft {
		return math.NewVec3(-HandOffset, 0, 0)
	}
	return math.NewVec3(HandOffset, 0, 0)
}

// Scene holds the mirrored pair of hands.
type Scene struct {
	Nodes        []*HandNode
	RotationStep float32

	generator *hand.Generator
}

// New places the left hand at -HandOffset turning in the positive direction
// and the right hand at +HandOffset turning in the negative one.
func New(generator *hand.Generator) (*Scene, error) {
	left, err := NewHandNode(generator, true, HandPosition(true), 1)
	if err != nil {
		return nil, err
	}
	right, err := NewHandNode(generator, false, HandPosition(false), -1)
	if err != nil {
		return nil, err
	}
	return &Scene{
		Nodes:        []*HandNode{left, right},
		RotationStep: DefaultRotationStep,
		generator:    generator,
	}, nil
}

// Update advances every node by one frame.
func (s *Scene) Update() {
	for _, n := range s.Nodes {
		n.Update(s.RotationStep)
	}
}

// ToggleMirror swaps the handedness of every node.
func (s *Scene) ToggleMirror() error {
	for _, n := range s.Nodes {
		if err := n.SetLeft(!n.IsLeft()); err != nil {
			return err
		}
	}
	core.LogDebug("mirrored %d hands", len(s.Nodes))
	return nil
}

// PointCount is the number of points across every node.
func (s *Scene) PointCount() int {
	total := 0
	for _, n := range s.Nodes {
		total += n.Hand().Len()
	}
	return total
}

func (s *Scene) Generator() *hand.Generator {
	return s.generator
}
