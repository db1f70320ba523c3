package renderer

import (
	"fmt"
	"image"
	"image/color"

	"github.com/spaghettifunk/pointillist/engine/core"
	"github.com/spaghettifunk/pointillist/engine/math"
)

// PointSource is anything that exposes a point cloud in local space and a
// world matrix to place it.
type PointSource interface {
	Positions() []float32
	Colors() []float32
	World() math.Mat4
}

/**
 * @brief Software point sprite renderer. Points are projected with the
 * camera and accumulated additively over a black background.
 */
type PointRenderer struct {
	Camera *Camera

	settings Settings
	width    int
	height   int
	accum    []float32
	frame    *image.RGBA
	drawn    int
}

func NewPointRenderer(width, height int, settings Settings) (*PointRenderer, error) {
	r := &PointRenderer{
		Camera:   NewCamera(),
		settings: settings,
	}
	if err := r.OnResize(width, height); err != nil {
		return nil, err
	}
	return r, nil
}

// OnResize reallocates the frame for the new size.
func (r *PointRenderer) OnResize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid framebuffer size %dx%d", width, height)
	}
	if width == r.width && height == r.height {
		return nil
	}
	r.width = width
	r.height = height
	r.accum = make([]float32, width*height*3)
	r.frame = image.NewRGBA(image.Rect(0, 0, width, height))
	core.LogDebug("point renderer resized to %dx%d", width, height)
	return nil
}

func (r *PointRenderer) Settings() Settings {
	return r.settings
}

func (r *PointRenderer) SetSettings(s Settings) {
	r.settings = s
}

func (r *PointRenderer) Size() (int, int) {
	return r.width, r.height
}

// Frame returns the last rendered image. It is reused by the next call to
// Render.
func (r *PointRenderer) Frame() *image.RGBA {
	return r.frame
}

// PointsDrawn reports how many points landed on screen in the last frame.
func (r *PointRenderer) PointsDrawn() int {
	return r.drawn
}

func (r *PointRenderer) viewProjection() math.Mat4 {
	aspect := float32(r.width) / float32(r.height)
	return r.Camera.GetView().Mul(r.Camera.GetProjection(aspect))
}

// Project maps a world space point to pixel coordinates. The returned w is
// the distance along the view direction; ok is false when the point is
// clipped.
func (r *PointRenderer) Project(world math.Vec3) (x, y, w float32, ok bool) {
	return r.project(world, r.viewProjection())
}

func (r *PointRenderer) project(p math.Vec3, mvp math.Mat4) (x, y, w float32, ok bool) {
	clip := p.TransformHomogeneous(mvp)
	if clip.W <= 0 || clip.Z < -clip.W || clip.Z > clip.W {
		return 0, 0, 0, false
	}
	ndcX := clip.X / clip.W
	ndcY := clip.Y / clip.W
	x = (ndcX*0.5 + 0.5) * float32(r.width)
	y = (1 - (ndcY*0.5 + 0.5)) * float32(r.height)
	return x, y, clip.W, true
}

// spriteSize returns the sprite edge in pixels for a point at clip depth w.
func (r *PointRenderer) spriteSize(w float32) float32 {
	if !r.settings.SizeAttenuation {
		return r.settings.PointSize
	}
	return r.settings.PointSize * float32(r.height) * 0.5 / w
}

// Render clears the frame and draws every source.
func (r *PointRenderer) Render(sources ...PointSource) *image.RGBA {
	for i := range r.accum {
		r.accum[i] = 0
	}
	r.drawn = 0

	vp := r.viewProjection()
	for _, src := range sources {
		r.drawSource(src, src.World().Mul(vp))
	}
	r.resolve()
	return r.frame
}

func (r *PointRenderer) drawSource(src PointSource, mvp math.Mat4) {
	positions := src.Positions()
	colors := src.Colors()
	n := len(positions) / 3
	if len(colors) < n*3 {
		core.LogWarn("skipping point source with %d positions and %d colors", len(positions), len(colors))
		return
	}

	for i := 0; i < n; i++ {
		p := math.NewVec3(positions[i*3], positions[i*3+1], positions[i*3+2])
		x, y, w, ok := r.project(p, mvp)
		if !ok {
			continue
		}
		size := r.spriteSize(w)
		alpha := r.settings.Opacity
		if size < 1 {
			// sub pixel sprites deposit their covered area
			alpha *= size * size
			size = 1
		}
		if r.splat(x, y, size, colors[i*3]*alpha, colors[i*3+1]*alpha, colors[i*3+2]*alpha) {
			r.drawn++
		}
	}
}

func (r *PointRenderer) splat(x, y, size, cr, cg, cb float32) bool {
	half := size * 0.5
	x0 := int(x - half + 0.5)
	y0 := int(y - half + 0.5)
	x1 := int(x + half + 0.5)
	y1 := int(y + half + 0.5)
	if x1 == x0 {
		x1++
	}
	if y1 == y0 {
		y1++
	}
	x0 = math.Clamp(x0, 0, r.width)
	x1 = math.Clamp(x1, 0, r.width)
	y0 = math.Clamp(y0, 0, r.height)
	y1 = math.Clamp(y1, 0, r.height)
	if x0 >= x1 || y0 >= y1 {
		return false
	}
	for py := y0; py < y1; py++ {
		row := py * r.width * 3
		for px := x0; px < x1; px++ {
			o := row + px*3
			r.accum[o] += cr
			r.accum[o+1] += cg
			r.accum[o+2] += cb
		}
	}
	return true
}

func (r *PointRenderer) resolve() {
	for py := 0; py < r.height; py++ {
		for px := 0; px < r.width; px++ {
			o := (py*r.width + px) * 3
			r.frame.SetRGBA(px, py, color.RGBA{
				R: toByte(r.accum[o]),
				G: toByte(r.accum[o+1]),
				B: toByte(r.accum[o+2]),
				A: 0xff,
			})
		}
	}
}

func toByte(v float32) uint8 {
	return uint8(math.Saturate(v)*255 + 0.5)
}
