package gridmenu

import (
	"image/color"
	"math"
)

// Vec2 is a 2D vector in surface-pixel coordinates. The origin is the
// top-left corner of the surface with Y increasing downward.
type Vec2 struct {
	X, Y float64
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Dist returns the Euclidean distance between v and o.
func (v Vec2) Dist(o Vec2) float64 {
	dx := v.X - o.X
	dy := v.Y - o.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// RectFromBounds returns the rectangle spanning [minX,minY]–[maxX,maxY].
func RectFromBounds(minX, minY, maxX, maxY float64) Rect {
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// MaxX returns the right edge.
func (r Rect) MaxX() float64 { return r.X + r.Width }

// MaxY returns the bottom edge.
func (r Rect) MaxY() float64 { return r.Y + r.Height }

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// extend returns the smallest rectangle containing both r and p.
func (r Rect) extend(p Vec2) Rect {
	minX, minY := math.Min(r.X, p.X), math.Min(r.Y, p.Y)
	maxX, maxY := math.Max(r.MaxX(), p.X), math.Max(r.MaxY(), p.Y)
	return RectFromBounds(minX, minY, maxX, maxY)
}

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// toRGBA converts to a premultiplied color.RGBA for ebiten.
func (c Color) toRGBA() color.RGBA {
	clamp := func(v float64) uint8 {
		if v <= 0 {
			return 0
		}
		if v >= 1 {
			return 255
		}
		return uint8(v*255 + 0.5)
	}
	return color.RGBA{
		R: clamp(c.R * c.A),
		G: clamp(c.G * c.A),
		B: clamp(c.B * c.A),
		A: clamp(c.A),
	}
}

// lerp blends c toward o by t in [0, 1].
func (c Color) lerp(o Color, t float64) Color {
	return Color{
		R: c.R + (o.R-c.R)*t,
		G: c.G + (o.G-c.G)*t,
		B: c.B + (o.B-c.B)*t,
		A: c.A + (o.A-c.A)*t,
	}
}

// Palette colors.
var (
	ColorBackground = Color{R: 1, G: 1, B: 1, A: 1}
	ColorStroke     = Color{R: 0.133, G: 0.133, B: 0.133, A: 1} // #222
	ColorHover      = Color{R: 1, G: 0.733, B: 0.333, A: 1}     // #fb5
	ColorTouch      = Color{R: 0.2, G: 0.8, B: 0.067, A: 1}     // #3c1
	ColorBox        = Color{R: 0.9, G: 0.9, B: 0.9, A: 1}
)
