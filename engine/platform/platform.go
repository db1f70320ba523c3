package platform

import (
	"errors"
	"image"
)

// ErrStop is returned by a Host step to end the frame loop cleanly.
var ErrStop = errors.New("platform: stop requested")

// Host is driven once per frame by one of the runners.
type Host interface {
	// Step advances and renders one frame.
	Step() error
	// Frame returns the image produced by the last Step.
	Frame() *image.RGBA
}
