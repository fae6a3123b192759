package gridmenu

import (
	"math"
	"math/rand"
	"testing"
)

// polygonContains reports whether p lies inside or on the convex polygon.
func polygonContains(poly []Vec2, p Vec2) bool {
	sign := 0.0
	for i := range poly {
		a := poly[i]
		b := poly[(i+1)%len(poly)]
		cross := (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
		if math.Abs(cross) < 1e-9 {
			continue
		}
		if sign == 0 {
			sign = cross
		} else if (cross > 0) != (sign > 0) {
			return false
		}
	}
	return true
}

func polygonArea(poly []Vec2) float64 {
	a := 0.0
	for i := range poly {
		p, q := poly[i], poly[(i+1)%len(poly)]
		a += p.X*q.Y - q.X*p.Y
	}
	return math.Abs(a) / 2
}

func TestBisectorPartitionerSinglePoint(t *testing.T) {
	clip := Rect{X: -1, Y: -1, Width: 102, Height: 52}
	cells := (&BisectorPartitioner{}).Partition([]Vec2{{50, 25}}, clip)
	if len(cells) != 1 {
		t.Fatalf("cells = %d", len(cells))
	}
	if got := polygonArea(cells[0]); math.Abs(got-102*52) > 1e-9 {
		t.Errorf("area = %v, want the whole clip", got)
	}
}

func TestBisectorPartitionerTwoPoints(t *testing.T) {
	clip := Rect{Width: 100, Height: 100}
	cells := (&BisectorPartitioner{}).Partition([]Vec2{{25, 50}, {75, 50}}, clip)

	for i, cell := range cells {
		if got := polygonArea(cell); math.Abs(got-5000) > 1e-9 {
			t.Errorf("cell %d area = %v, want 5000", i, got)
		}
		for _, v := range cell {
			if i == 0 && v.X > 50+1e-9 || i == 1 && v.X < 50-1e-9 {
				t.Errorf("cell %d vertex %v crosses the bisector", i, v)
			}
		}
	}
}

func TestBisectorPartitionerCoversClip(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	clip := Rect{X: -1, Y: -1, Width: 802, Height: 602}
	pts := make([]Vec2, 30)
	for i := range pts {
		pts[i] = Vec2{rng.Float64() * 800, rng.Float64() * 600}
	}

	cells := (&BisectorPartitioner{}).Partition(pts, clip)
	if len(cells) != len(pts) {
		t.Fatalf("cells = %d, want %d", len(cells), len(pts))
	}

	total := 0.0
	for i, cell := range cells {
		if !polygonContains(cell, pts[i]) {
			t.Errorf("cell %d does not contain its point %v", i, pts[i])
		}
		total += polygonArea(cell)
	}
	if want := clip.Width * clip.Height; math.Abs(total-want) > 1e-6*want {
		t.Errorf("total area = %v, want %v", total, want)
	}
}

func TestBisectorPartitionerCellsAgreeWithIndex(t *testing.T) {
	pts := GenerateGrid(3, 3, 900, 600)
	vp := Viewport{Width: 900, Height: 600}
	cells := (&BisectorPartitioner{}).Partition(pts, vp.Clip())
	idx := BuildIndex(pts, vp.Extent())

	rng := rand.New(rand.NewSource(4))
	for k := 0; k < 200; k++ {
		q := Vec2{rng.Float64() * 900, rng.Float64() * 600}
		n, _ := idx.Nearest(q)
		if !polygonContains(cells[n.Index], q) {
			t.Errorf("%v is nearest to %d but outside its cell", q, n.Index)
		}
	}
}

func TestBisectorPartitionerCoincident(t *testing.T) {
	clip := Rect{Width: 10, Height: 10}
	cells := (&BisectorPartitioner{}).Partition([]Vec2{{5, 5}, {5, 5}}, clip)
	if polygonArea(cells[0]) != 100 || polygonArea(cells[1]) != 100 {
		t.Errorf("coincident cells = %v", cells)
	}
}

func TestPartitionFunc(t *testing.T) {
	var called bool
	var p Partitioner = PartitionFunc(func(points []Vec2, clip Rect) [][]Vec2 {
		called = true
		return make([][]Vec2, len(points))
	})
	if cells := p.Partition([]Vec2{{1, 1}}, Rect{}); !called || len(cells) != 1 {
		t.Error("PartitionFunc did not forward")
	}
}
