package renderer

import (
	"github.com/spaghettifunk/pointillist/engine/math"
)

/**
 * @brief A perspective camera that looks at a fixed target.
 */
type Camera struct {
	/**
	 * @brief The position of this camera.
	 * NOTE: Set IsDirty after changing it so the view matrix is rebuilt.
	 */
	Position math.Vec3
	/** @brief The point the camera looks at. */
	Target math.Vec3
	/** @brief Vertical field of view in radians. */
	FOV float32
	/** @brief Near and far clipping distances. */
	Near, Far float32
	/** @brief Internal flag used to determine when the view matrix needs to be rebuilt. */
	IsDirty bool
	/**
	 * @brief The view matrix of this camera.
	 * NOTE: IMPORTANT: Do not get this directly, use GetView() instead
	 * so the view matrix is recalculated when needed.
	 */
	ViewMatrix math.Mat4
}

const (
	DefaultFOVDegrees float32 = 55
	DefaultNear       float32 = 0.1
	DefaultFar        float32 = 1000
)

// DefaultCameraPosition frames both hands from above and in front.
var DefaultCameraPosition = math.NewVec3(0, 3, 3)

func NewCamera() *Camera {
	camera := &Camera{}
	camera.Reset()
	return camera
}

func (c *Camera) Reset() {
	c.Position = DefaultCameraPosition
	c.Target = math.NewVec3Zero()
	c.FOV = math.DegToRad(DefaultFOVDegrees)
	c.Near = DefaultNear
	c.Far = DefaultFar
	c.IsDirty = true
	c.ViewMatrix = math.NewMat4Identity()
}

func (c *Camera) GetView() math.Mat4 {
	if c.IsDirty {
		c.ViewMatrix = math.NewMat4LookAt(c.Position, c.Target, math.NewVec3Up())
		c.IsDirty = false
	}
	return c.ViewMatrix
}

func (c *Camera) GetProjection(aspect float32) math.Mat4 {
	return math.NewMat4Perspective(c.FOV, aspect, c.Near, c.Far)
}
