package gridmenu

// Partitioner computes proximity regions: for each input point, the polygon
// of surface positions closer to it than to any other point, clipped to clip.
// The result is aligned by index with points.
type Partitioner interface {
	Partition(points []Vec2, clip Rect) [][]Vec2
}

// PartitionFunc adapts a plain function to the Partitioner interface.
type PartitionFunc func(points []Vec2, clip Rect) [][]Vec2

// Partition calls f.
func (f PartitionFunc) Partition(points []Vec2, clip Rect) [][]Vec2 {
	return f(points, clip)
}

// BisectorPartitioner builds each cell by clipping the clip rectangle with
// the perpendicular bisector half-plane of every other point. Cost is
// O(n²) per rebuild, fine for menu-sized point sets. Coincident points do
// not clip each other and end up with identical cells.
type BisectorPartitioner struct {
	buf []Vec2
}

// Partition implements Partitioner.
func (bp *BisectorPartitioner) Partition(points []Vec2, clip Rect) [][]Vec2 {
	cells := make([][]Vec2, len(points))
	for i, p := range points {
		cell := []Vec2{
			{clip.X, clip.Y},
			{clip.MaxX(), clip.Y},
			{clip.MaxX(), clip.MaxY()},
			{clip.X, clip.MaxY()},
		}
		for j, q := range points {
			if j == i || q == p {
				continue
			}
			// Keep the side of the bisector nearer p: n·v <= c.
			n := q.Sub(p)
			c := (q.X*q.X + q.Y*q.Y - p.X*p.X - p.Y*p.Y) / 2
			cell = bp.clipHalfPlane(cell, n, c)
			if len(cell) == 0 {
				break
			}
		}
		cells[i] = cell
	}
	return cells
}

// clipHalfPlane runs one Sutherland–Hodgman pass keeping {v : n·v <= c}.
func (bp *BisectorPartitioner) clipHalfPlane(poly []Vec2, n Vec2, c float64) []Vec2 {
	bp.buf = bp.buf[:0]
	side := func(v Vec2) float64 { return n.X*v.X + n.Y*v.Y - c }

	for k := range poly {
		cur := poly[k]
		prev := poly[(k+len(poly)-1)%len(poly)]
		sc, sp := side(cur), side(prev)

		if sc <= 0 {
			if sp > 0 {
				bp.buf = append(bp.buf, intersect(prev, cur, sp, sc))
			}
			bp.buf = append(bp.buf, cur)
		} else if sp <= 0 {
			bp.buf = append(bp.buf, intersect(prev, cur, sp, sc))
		}
	}

	out := make([]Vec2, len(bp.buf))
	copy(out, bp.buf)
	return out
}

// intersect returns the point on segment a→b where the signed side value
// crosses zero, given the side values sa and sb at the endpoints.
func intersect(a, b Vec2, sa, sb float64) Vec2 {
	t := sa / (sa - sb)
	return Vec2{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
}
