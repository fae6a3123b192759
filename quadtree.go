package gridmenu

import "math"

const (
	quadLeafCapacity = 4  // entries held by a leaf before it splits
	quadMaxDepth     = 16 // leaves at this depth never split (coincident points)
)

// Neighbor is the result of a nearest-point query.
type Neighbor struct {
	Pos      Vec2
	Index    int // index into the point slice the index was built from
	Distance float64
}

type quadEntry struct {
	pos   Vec2
	index int
}

type quadNode struct {
	bounds   Rect
	entries  []quadEntry // leaf only
	children *[4]*quadNode
}

// SpatialIndex is an immutable quad-region tree over a snapshot of point
// positions. Build a new one whenever the points or the extent change; a
// stale index answers for the snapshot it was built from.
type SpatialIndex struct {
	root *quadNode
	n    int
}

// BuildIndex builds an index over points. extent is the nominal surface
// area; points outside it widen the root region so every point is indexed.
func BuildIndex(points []Vec2, extent Rect) *SpatialIndex {
	idx := &SpatialIndex{n: len(points)}
	if len(points) == 0 {
		return idx
	}

	bounds := extent
	for _, p := range points {
		if !bounds.Contains(p.X, p.Y) {
			bounds = bounds.extend(p)
		}
	}
	// Square the root so quadrants stay square.
	side := math.Max(bounds.Width, bounds.Height)
	if side <= 0 {
		side = 1
	}
	idx.root = &quadNode{bounds: Rect{X: bounds.X, Y: bounds.Y, Width: side, Height: side}}

	for i, p := range points {
		idx.root.insert(quadEntry{pos: p, index: i}, 0)
	}
	return idx
}

// Len returns the number of indexed points.
func (idx *SpatialIndex) Len() int {
	return idx.n
}

// quadrant returns which child of n contains p:
// 0 top-left, 1 top-right, 2 bottom-left, 3 bottom-right.
func (n *quadNode) quadrant(p Vec2) int {
	mx := n.bounds.X + n.bounds.Width/2
	my := n.bounds.Y + n.bounds.Height/2
	q := 0
	if p.X >= mx {
		q |= 1
	}
	if p.Y >= my {
		q |= 2
	}
	return q
}

func (n *quadNode) insert(e quadEntry, depth int) {
	if n.children == nil {
		if len(n.entries) < quadLeafCapacity || depth >= quadMaxDepth {
			n.entries = append(n.entries, e)
			return
		}
		n.split(depth)
	}
	n.children[n.quadrant(e.pos)].insert(e, depth+1)
}

func (n *quadNode) split(depth int) {
	hw := n.bounds.Width / 2
	hh := n.bounds.Height / 2
	x, y := n.bounds.X, n.bounds.Y
	n.children = &[4]*quadNode{
		{bounds: Rect{X: x, Y: y, Width: hw, Height: hh}},
		{bounds: Rect{X: x + hw, Y: y, Width: hw, Height: hh}},
		{bounds: Rect{X: x, Y: y + hh, Width: hw, Height: hh}},
		{bounds: Rect{X: x + hw, Y: y + hh, Width: hw, Height: hh}},
	}
	entries := n.entries
	n.entries = nil
	for _, e := range entries {
		n.children[n.quadrant(e.pos)].insert(e, depth+1)
	}
}

// outside reports whether the node's box lies entirely outside the square
// of half-side r centred on q.
func (n *quadNode) outside(q Vec2, r float64) bool {
	b := n.bounds
	return b.X > q.X+r || b.MaxX() < q.X-r || b.Y > q.Y+r || b.MaxY() < q.Y-r
}

// Nearest returns the indexed point closest to q by Euclidean distance.
// It reports false when the index is empty. Among points at equal distance
// the first one reached by the traversal wins; the traversal order depends
// only on the built tree and q, so results are reproducible.
func (idx *SpatialIndex) Nearest(q Vec2) (Neighbor, bool) {
	if idx.root == nil {
		return Neighbor{}, false
	}

	var (
		best  = math.Inf(1)
		found Neighbor
		ok    bool
	)

	stack := make([]*quadNode, 1, 4*quadMaxDepth)
	stack[0] = idx.root
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if n.outside(q, best) {
			continue
		}

		if n.children == nil {
			for _, e := range n.entries {
				if d := q.Dist(e.pos); d < best {
					best = d
					found = Neighbor{Pos: e.pos, Index: e.index, Distance: d}
					ok = true
				}
			}
			continue
		}

		// Push the remaining quadrants in reverse so the one holding q is
		// popped first and the others follow in fixed order.
		first := n.quadrant(q)
		for i := 3; i >= 0; i-- {
			if i != first {
				stack = append(stack, n.children[i])
			}
		}
		stack = append(stack, n.children[first])
	}
	return found, ok
}
