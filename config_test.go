package gridmenu

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aukilabs/go-tooling/pkg/errors"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig invalid: %v", err)
	}
	if cfg.Rows != 3 || cfg.Cols != 3 {
		t.Errorf("default grid = %dx%d, want 3x3", cfg.Rows, cfg.Cols)
	}
	if cfg.ResizeWindow != 200*time.Millisecond {
		t.Errorf("ResizeWindow = %v", cfg.ResizeWindow)
	}
}

func TestParseConfigOverlaysDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
width: 1280
rows: 4
resize_window: 50ms
projection:
  scale_x: 3
  scale_y: -2
cue:
  volume: 0.25
`))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 1280 || cfg.Height != 640 {
		t.Errorf("size = %dx%d, want 1280x640", cfg.Width, cfg.Height)
	}
	if cfg.Rows != 4 || cfg.Cols != 3 {
		t.Errorf("grid = %dx%d, want 4x3", cfg.Rows, cfg.Cols)
	}
	if cfg.ResizeWindow != 50*time.Millisecond {
		t.Errorf("ResizeWindow = %v, want 50ms", cfg.ResizeWindow)
	}
	if cfg.Projection.ScaleX != 3 || cfg.Projection.ScaleY != -2 || cfg.Projection.OffsetY != 150 {
		t.Errorf("Projection = %+v", cfg.Projection)
	}
	if cfg.Cue.Volume != 0.25 || cfg.Cue.Frequency != 880 {
		t.Errorf("Cue = %+v", cfg.Cue)
	}

	sc := cfg.SessionConfig()
	if sc.Width != 1280 || sc.Rows != 4 || sc.ResizeWindow != 50*time.Millisecond {
		t.Errorf("SessionConfig = %+v", sc)
	}
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"malformed", "width: [1, 2"},
		{"wrong type", "width: wide"},
		{"zero height", "height: 0"},
		{"negative rows", "rows: -1"},
		{"zero box", "box_size: 0"},
		{"flat projection", "projection: {scale_x: 0, scale_y: 1}"},
		{"loud cue", "cue: {volume: 2}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.yaml))
			if !errors.IsType(err, ErrTypeConfig) {
				t.Errorf("err = %v, want type %s", err, ErrTypeConfig)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.yaml")
	if err := os.WriteFile(path, []byte("title: Test\ncols: 5\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Title != "Test" || cfg.Cols != 5 {
		t.Errorf("cfg = %+v", cfg)
	}

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.IsType(err, ErrTypeConfig) {
		t.Errorf("missing file err = %v, want type %s", err, ErrTypeConfig)
	}
}
