package renderer

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/spaghettifunk/pointillist/engine/core"
)

// WriteSnapshot encodes img as PNG at path, creating parent directories.
func WriteSnapshot(path string, img image.Image) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create snapshot directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create snapshot: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	core.LogInfo("snapshot written to %s", path)
	return nil
}
