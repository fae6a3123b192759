package gridmenu

import (
	"os"
	"time"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"gopkg.in/yaml.v3"
)

// CueConfig configures the generated touch cue tone.
type CueConfig struct {
	Frequency  float64       `yaml:"frequency"`
	Duration   time.Duration `yaml:"duration"`
	Volume     float64       `yaml:"volume"`
	SampleRate int           `yaml:"sample_rate"`
}

// Config configures a menu window. LoadConfig overlays a YAML file on top of
// DefaultConfig.
type Config struct {
	Title   string `yaml:"title"`
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	ShowFPS bool   `yaml:"show_fps"`

	// Initial grid.
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`

	ResizeWindow   time.Duration    `yaml:"resize_window"`
	DragDeadZone   float64          `yaml:"drag_dead_zone"`
	BoxSize        float64          `yaml:"box_size"`
	Projection     DeviceProjection `yaml:"projection"`
	FrameQueueSize int              `yaml:"frame_queue_size"`

	// MouseDevice emulates the 3D pointer with the mouse: cursor position is
	// the pointer, the wheel moves it through the touch plane.
	MouseDevice bool `yaml:"mouse_device"`

	Cue CueConfig `yaml:"cue"`

	// Script is an optional YAML script path replayed at startup.
	Script        string `yaml:"script"`
	ScreenshotDir string `yaml:"screenshot_dir"`

	LogLevel string `yaml:"log_level"`
	// Debug logs per-frame timing stats.
	Debug bool `yaml:"debug"`
}

// DefaultConfig returns the stock menu: a 3×3 grid on a 960×640 window with
// a 200ms resize debounce.
func DefaultConfig() Config {
	return Config{
		Title:          "Grid Menu",
		Width:          960,
		Height:         640,
		Rows:           3,
		Cols:           3,
		ResizeWindow:   DefaultResizeWindow,
		DragDeadZone:   DefaultDragDeadZone,
		BoxSize:        DefaultBoxSize,
		Projection:     DefaultProjection,
		FrameQueueSize: DefaultFrameQueueSize,
		MouseDevice:    true,
		Cue: CueConfig{
			Frequency:  880,
			Duration:   120 * time.Millisecond,
			Volume:     0.5,
			SampleRate: 44100,
		},
		ScreenshotDir: "screenshots",
		LogLevel:      "info",
	}
}

// ParseConfig overlays YAML data on DefaultConfig and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.New("parsing config failed").
			WithType(ErrTypeConfig).
			Wrap(err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads a YAML config file. See ParseConfig.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.New("reading config file failed").
			WithType(ErrTypeConfig).
			WithTag("path", path).
			Wrap(err)
	}
	return ParseConfig(data)
}

// Validate checks that the configuration can drive a session.
func (c Config) Validate() error {
	invalid := func(field string, v any) error {
		return errors.New("invalid config value").
			WithType(ErrTypeConfig).
			WithTag("field", field).
			WithTag("value", v)
	}

	switch {
	case c.Width <= 0:
		return invalid("width", c.Width)
	case c.Height <= 0:
		return invalid("height", c.Height)
	case c.Rows < 0:
		return invalid("rows", c.Rows)
	case c.Cols < 0:
		return invalid("cols", c.Cols)
	case c.ResizeWindow < 0:
		return invalid("resize_window", c.ResizeWindow)
	case c.DragDeadZone < 0:
		return invalid("drag_dead_zone", c.DragDeadZone)
	case c.BoxSize <= 0:
		return invalid("box_size", c.BoxSize)
	case c.Projection.ScaleX == 0 || c.Projection.ScaleY == 0:
		return invalid("projection", c.Projection)
	case c.Cue.Volume < 0 || c.Cue.Volume > 1:
		return invalid("cue.volume", c.Cue.Volume)
	case c.Cue.SampleRate <= 0:
		return invalid("cue.sample_rate", c.Cue.SampleRate)
	}
	return nil
}

// SessionConfig derives the session part of the configuration.
func (c Config) SessionConfig() SessionConfig {
	return SessionConfig{
		Width:        float64(c.Width),
		Height:       float64(c.Height),
		Rows:         c.Rows,
		Cols:         c.Cols,
		ResizeWindow: c.ResizeWindow,
		Projection:   c.Projection,
	}
}
