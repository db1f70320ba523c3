package renderer

// Settings control how points are drawn. They can change between frames.
type Settings struct {
	// World space point size. With SizeAttenuation it shrinks with distance
	// like a perspective sprite, otherwise it is a size in pixels.
	PointSize       float32
	SizeAttenuation bool
	// Alpha of every point; colors are added, never blended over.
	Opacity float32
	ShowHUD bool
}

func DefaultSettings() Settings {
	return Settings{
		PointSize:       0.008,
		SizeAttenuation: true,
		Opacity:         0.95,
		ShowHUD:         true,
	}
}
