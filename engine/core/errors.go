package core

import (
	"errors"
)

var (
	ErrBufferMismatch = errors.New("position and colour buffers disagree on point count")
	ErrNonFinite      = errors.New("point coordinate is not finite")
	ErrColorRange     = errors.New("colour channel outside [0, 1]")
	ErrNotGreyscale   = errors.New("colour channels differ")
	ErrPointCount     = errors.New("generated point count does not match the skeleton")
	ErrNotInitialized = errors.New("engine not initialized")
)
