package scene

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/spaghettifunk/pointillist/engine/hand"
	"github.com/spaghettifunk/pointillist/engine/math"
)

// DefaultRotationStep is the angle, in radians, a hand turns about its local
// X axis on every frame.
const DefaultRotationStep float32 = 0.01

/**
 * @brief A hand placed in the world. The point buffers are owned by the
 * generator and never modified; only the transform changes per frame.
 */
type HandNode struct {
	/** @brief Unique identifier of the node. */
	ID uuid.UUID
	/** @brief +1 turns counter clockwise about X, -1 clockwise. */
	Direction float32
	/** @brief World placement and orientation. */
	Transform *math.Transform

	generator *hand.Generator
	hand      *hand.Hand
	angle     float32
}

// NewHandNode places the hand of the given handedness at position. The hand
// is fetched from the generator, which builds it only the first time.
func NewHandNode(generator *hand.Generator, isLeft bool, position math.Vec3, direction float32) (*HandNode, error) {
	h, err := generator.Hand(isLeft)
	if err != nil {
		return nil, fmt.Errorf("failed to create hand node: %w", err)
	}
	return &HandNode{
		ID:        uuid.New(),
		Direction: direction,
		Transform: math.TransformFromPosition(position),
		generator: generator,
		hand:      h,
	}, nil
}

func (n *HandNode) IsLeft() bool {
	return n.hand.IsLeft
}

// SetLeft swaps the node to the other handedness. Point buffers are reused
// from the generator when they already exist.
func (n *HandNode) SetLeft(isLeft bool) error {
	if n.hand.IsLeft == isLeft {
		return nil
	}
	h, err := n.generator.Hand(isLeft)
	if err != nil {
		return err
	}
	n.hand = h
	return nil
}

// Update turns the node by one rotation step in its own direction.
func (n *HandNode) Update(step float32) {
	n.angle += n.Direction * step
	n.Transform.SetRotation(math.NewQuatFromAxisAngle(math.NewVec3Right(), n.angle, true))
}

// Angle returns the accumulated rotation about X in radians.
func (n *HandNode) Angle() float32 {
	return n.angle
}

func (n *HandNode) Hand() *hand.Hand {
	return n.hand
}

// Positions returns the flat xyz buffer. Callers must not modify it.
func (n *HandNode) Positions() []float32 {
	return n.hand.Positions()
}

// Colors returns the flat rgb buffer. Callers must not modify it.
func (n *HandNode) Colors() []float32 {
	return n.hand.Colors()
}

func (n *HandNode) World() math.Mat4 {
	return n.Transform.GetWorld()
}
