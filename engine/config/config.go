package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/spaghettifunk/pointillist/engine/core"
	"github.com/spaghettifunk/pointillist/engine/renderer"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Window struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
}

type Headless struct {
	Enabled bool   `toml:"enabled"`
	Hz      int    `toml:"hz"`
	Ticks   uint64 `toml:"ticks"`
}

// Render settings are the only part reloaded while running.
type Render struct {
	PointSize       float32 `toml:"point_size"`
	SizeAttenuation bool    `toml:"size_attenuation"`
	Opacity         float32 `toml:"opacity"`
	RotationStep    float32 `toml:"rotation_step"`
	ShowHUD         bool    `toml:"show_hud"`
}

type Config struct {
	LogLevel string   `toml:"log_level"`
	Seed     uint64   `toml:"seed"`
	Snapshot string   `toml:"snapshot"`
	Window   Window   `toml:"window"`
	Headless Headless `toml:"headless"`
	Render   Render   `toml:"render"`
}

func Default() *Config {
	rs := renderer.DefaultSettings()
	return &Config{
		LogLevel: "info",
		Seed:     1,
		Window: Window{
			Title:  "Pointillist Hands",
			Width:  1280,
			Height: 720,
		},
		Headless: Headless{
			Hz: 60,
		},
		Render: Render{
			PointSize:       rs.PointSize,
			SizeAttenuation: rs.SizeAttenuation,
			Opacity:         rs.Opacity,
			RotationStep:    0.01,
			ShowHUD:         rs.ShowHUD,
		},
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		core.LogWarn("config file %s not found, using defaults", path)
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if _, err := core.ParseLogLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}
	if c.Headless.Hz <= 0 {
		return fmt.Errorf("%w: headless hz %d", ErrInvalidConfig, c.Headless.Hz)
	}
	return c.Render.Validate()
}

func (r Render) Validate() error {
	if r.PointSize <= 0 {
		return fmt.Errorf("%w: point_size %v", ErrInvalidConfig, r.PointSize)
	}
	if r.Opacity < 0 || r.Opacity > 1 {
		return fmt.Errorf("%w: opacity %v", ErrInvalidConfig, r.Opacity)
	}
	return nil
}

// Settings converts the render section for the point renderer.
func (r Render) Settings() renderer.Settings {
	return renderer.Settings{
		PointSize:       r.PointSize,
		SizeAttenuation: r.SizeAttenuation,
		Opacity:         r.Opacity,
		ShowHUD:         r.ShowHUD,
	}
}
