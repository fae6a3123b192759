package gridmenu

import (
	"fmt"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	strokeWidth     = 1
	cursorRadius    = 18
	hoverFadeSecs   = 0.15
	debugCharWidth  = 6
	debugLineHeight = 16
)

var whitePixel *ebiten.Image

// ensureWhitePixel lazily creates the 1x1 white image used for untextured
// triangles. Created on first draw so importing the package needs no GPU.
func ensureWhitePixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(ColorBackground.toRGBA())
	}
	return whitePixel
}

// buildPolygonFan generates vertices and indices for a fan-triangulated
// convex polygon tinted with c. N vertices, 3*(N-2) indices. Proximity cells
// are always convex, so a fan from vertex 0 covers them exactly.
func buildPolygonFan(points []Vec2, c Color) ([]ebiten.Vertex, []uint16) {
	n := len(points)
	if n < 3 {
		return nil, nil
	}

	verts := make([]ebiten.Vertex, n)
	inds := make([]uint16, (n-2)*3)

	// Premultiplied vertex color.
	r := float32(c.R * c.A)
	g := float32(c.G * c.A)
	b := float32(c.B * c.A)
	a := float32(c.A)
	for i, p := range points {
		verts[i] = ebiten.Vertex{
			DstX:   float32(p.X),
			DstY:   float32(p.Y),
			SrcX:   0.5,
			SrcY:   0.5,
			ColorR: r,
			ColorG: g,
			ColorB: b,
			ColorA: a,
		}
	}

	for i := 0; i < n-2; i++ {
		inds[i*3+0] = 0
		inds[i*3+1] = uint16(i + 1)
		inds[i*3+2] = uint16(i + 2)
	}
	return verts, inds
}

// fillCell paints one proximity cell.
func fillCell(dst *ebiten.Image, cell []Vec2, c Color) {
	verts, inds := buildPolygonFan(cell, c)
	if verts == nil {
		return
	}
	dst.DrawTriangles(verts, inds, ensureWhitePixel(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// strokeCell outlines one proximity cell.
func strokeCell(dst *ebiten.Image, cell []Vec2, c Color) {
	clr := c.toRGBA()
	for i := range cell {
		a := cell[i]
		b := cell[(i+1)%len(cell)]
		vector.StrokeLine(dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), strokeWidth, clr, true)
	}
}

// drawBox paints a point's grab box with its index label.
func drawBox(dst *ebiten.Image, p Vec2, index int, size float64, fill Color) {
	x := float32(p.X - size/2)
	y := float32(p.Y - size/2)
	vector.DrawFilledRect(dst, x, y, float32(size), float32(size), fill.toRGBA(), false)
	vector.StrokeRect(dst, x, y, float32(size), float32(size), strokeWidth, ColorStroke.toRGBA(), false)

	label := strconv.Itoa(index)
	ebitenutil.DebugPrintAt(dst, label,
		int(p.X)-len(label)*debugCharWidth/2, int(p.Y)-debugLineHeight/2)
}

// drawCursor paints the pointer indicator: a ring at the projected position
// with an inner disc sized by the intensity percentage.
func drawCursor(dst *ebiten.Image, pos Vec2, intensity float64, touching bool) {
	c := ColorHover
	if touching {
		c = ColorTouch
	}
	x, y := float32(pos.X), float32(pos.Y)
	vector.StrokeCircle(dst, x, y, cursorRadius, strokeWidth, ColorStroke.toRGBA(), true)
	if r := float32(cursorRadius * intensity / 100); r > 0 {
		vector.DrawFilledCircle(dst, x, y, r, c.toRGBA(), true)
	}
}

// drawStats prints FPS and TPS in the top-left corner.
func drawStats(dst *ebiten.Image) {
	ebitenutil.DebugPrint(dst, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
}

// hoverFade eases the hover highlight in whenever the hovered cell changes.
type hoverFade struct {
	tween *gween.Tween
	alpha float64
}

// restart begins a new fade from transparent.
func (f *hoverFade) restart() {
	f.tween = gween.New(0, 1, hoverFadeSecs, ease.OutQuad)
	f.alpha = 0
}

// update advances the fade by dt seconds.
func (f *hoverFade) update(dt float32) {
	if f.tween == nil {
		f.alpha = 1
		return
	}
	v, done := f.tween.Update(dt)
	f.alpha = float64(v)
	if done {
		f.tween = nil
		f.alpha = 1
	}
}
