package gridmenu

import (
	"math"
	"testing"

	"github.com/aukilabs/go-tooling/pkg/errors"
)

func TestFormatCoordinate(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{1, "1"},
		{0.25, "0.25"},
		{1.0 / 3, "0.333333"},
		{2.0 / 3, "0.666666"},
		{12.3456789, "12.34567"},
		{123456789.5, "123456789"},
		{-1.0 / 3, "-0.33333"},
	}
	for _, tt := range tests {
		if got := formatCoordinate(tt.in); got != tt.want {
			t.Errorf("formatCoordinate(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestExportCoordinates(t *testing.T) {
	got := ExportCoordinates([]Vec2{{200, 300}, {100, 150}}, 800, 600)
	want := "x,y\n0.25,0.5\n0.125,0.25\n"
	if got != want {
		t.Errorf("ExportCoordinates = %q, want %q", got, want)
	}
	if got := ExportCoordinates(nil, 800, 600); got != "x,y\n" {
		t.Errorf("empty export = %q", got)
	}
}

func TestCoordinatesRoundTrip(t *testing.T) {
	const w, h = 937.0, 611.0
	pts := append(GenerateGrid(3, 7, w, h), Vec2{1, 1}, Vec2{w - 0.001, h / 3})

	got, err := ImportCoordinates(ExportCoordinates(pts, w, h), w, h)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(pts) {
		t.Fatalf("len = %d, want %d", len(got), len(pts))
	}
	for i := range pts {
		if math.Abs(got[i].X-pts[i].X) > 1e-6*w || math.Abs(got[i].Y-pts[i].Y) > 1e-6*h {
			t.Errorf("point %d = %v, want %v", i, got[i], pts[i])
		}
	}
}

func TestImportCoordinatesRescales(t *testing.T) {
	text := ExportCoordinates([]Vec2{{400, 300}}, 800, 600)
	got, err := ImportCoordinates(text, 1600, 900)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0] != (Vec2{800, 450}) {
		t.Errorf("got %v, want [(800,450)]", got)
	}
}

func TestImportCoordinatesLenient(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []Vec2
	}{
		{"header only", "x,y\n", []Vec2{}},
		{"no trailing newline", "x,y\n0.5,0.5", []Vec2{{50, 100}}},
		{"columns swapped", "y,x\n0.25,0.5", []Vec2{{50, 50}}},
		{"extra column", "id,x,y\na,0.1,0.2\n", []Vec2{{10, 40}}},
		{"spaces", "x, y\n0.1, 0.2\n", []Vec2{{10, 40}}},
		{"blank lines", "x,y\n\n0.1,0.2\n\n", []Vec2{{10, 40}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ImportCoordinates(tt.text, 100, 200)
			if err != nil {
				t.Fatal(err)
			}
			if got == nil {
				t.Fatal("got nil slice")
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if math.Abs(got[i].X-tt.want[i].X) > 1e-9 || math.Abs(got[i].Y-tt.want[i].Y) > 1e-9 {
					t.Errorf("point %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestImportCoordinatesErrors(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		w, h     float64
		wantType string
	}{
		{"empty", "", 100, 100, ErrTypeParse},
		{"whitespace", "\n\n", 100, 100, ErrTypeParse},
		{"missing header", "a,b\n0.1,0.2\n", 100, 100, ErrTypeParse},
		{"missing field", "x,y\n0.1\n", 100, 100, ErrTypeParse},
		{"bad x", "x,y\nfoo,0.2\n", 100, 100, ErrTypeParse},
		{"bad y", "x,y\n0.1,bar\n", 100, 100, ErrTypeParse},
		{"nan x", "x,y\nNaN,0.5\n", 100, 100, ErrTypeParse},
		{"inf y", "x,y\n0.5,+Inf\n", 100, 100, ErrTypeParse},
		{"infinity x", "x,y\n-Infinity,0.5\n", 100, 100, ErrTypeParse},
		{"bad quote", "x,y\n0.1,\"0.2\n", 100, 100, ErrTypeParse},
		{"zero width", "x,y\n0.1,0.2\n", 0, 100, ErrTypeInvalidDimension},
		{"nan height", "x,y\n0.1,0.2\n", 100, math.NaN(), ErrTypeInvalidDimension},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ImportCoordinates(tt.text, tt.w, tt.h)
			if !errors.IsType(err, tt.wantType) {
				t.Fatalf("err = %v (type %q), want type %q", err, errors.Type(err), tt.wantType)
			}
			if got != nil {
				t.Errorf("got %v alongside an error", got)
			}
		})
	}
}
