package platform

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spaghettifunk/pointillist/engine/core"
)

// HeadlessConfig controls the no-window runner.
type HeadlessConfig struct {
	Hz    int
	Ticks uint64
}

// RunHeadless steps host on a ticker without opening a window. It returns
// after cfg.Ticks frames when Ticks is non zero, when the host asks to stop,
// or when ctx is cancelled.
func RunHeadless(ctx context.Context, host Host, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	core.LogInfo("running headless at %d Hz (ticks=%d)", cfg.Hz, cfg.Ticks)

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if err := host.Step(); err != nil {
				if errors.Is(err, ErrStop) {
					return nil
				}
				return err
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}
