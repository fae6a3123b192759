package gridmenu

import (
	"math"
	"testing"

	"github.com/aukilabs/go-tooling/pkg/errors"
)

func TestNewViewport(t *testing.T) {
	tests := []struct {
		name    string
		w, h    float64
		wantErr bool
	}{
		{"valid", 800, 600, false},
		{"zero width", 0, 600, true},
		{"negative height", 800, -1, true},
		{"nan width", math.NaN(), 600, true},
		{"infinite height", 800, math.Inf(1), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewViewport(tt.w, tt.h)
			if tt.wantErr {
				if !errors.IsType(err, ErrTypeInvalidDimension) {
					t.Errorf("err = %v, want type %s", err, ErrTypeInvalidDimension)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestViewportResizeScalesEachAxis(t *testing.T) {
	vp, _ := NewViewport(800, 600)
	s := NewPointStore(Vec2{400, 300}, Vec2{100, 60})

	if err := vp.Resize(s, 400, 900); err != nil {
		t.Fatal(err)
	}
	if vp.Width != 400 || vp.Height != 900 {
		t.Errorf("viewport = %vx%v, want 400x900", vp.Width, vp.Height)
	}
	want := []Vec2{{200, 450}, {50, 90}}
	for i, got := range s.Positions() {
		if got != want[i] {
			t.Errorf("point %d = %v, want %v", i, got, want[i])
		}
	}
}

func TestViewportResizeRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		w, h float64
	}{
		{"zero width", 0, 600},
		{"nan width", math.NaN(), 600},
		{"infinite height", 800, math.Inf(1)},
		{"negative infinite width", math.Inf(-1), 600},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vp, _ := NewViewport(800, 600)
			s := NewPointStore(Vec2{400, 300})

			err := vp.Resize(s, tt.w, tt.h)
			if !errors.IsType(err, ErrTypeInvalidDimension) {
				t.Fatalf("err = %v, want type %s", err, ErrTypeInvalidDimension)
			}
			if vp.Width != 800 || vp.Height != 600 {
				t.Errorf("viewport changed to %vx%v", vp.Width, vp.Height)
			}
			if got := s.Positions()[0]; got != (Vec2{400, 300}) {
				t.Errorf("point changed to %v", got)
			}
		})
	}
}

func TestViewportClip(t *testing.T) {
	vp, _ := NewViewport(100, 50)
	c := vp.Clip()
	if c.X != -1 || c.Y != -1 || c.MaxX() != 101 || c.MaxY() != 51 {
		t.Errorf("Clip = %+v", c)
	}
}
