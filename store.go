package gridmenu

import "github.com/google/uuid"

// Point is a menu item. Its position in the PointStore is its index; the
// index of every later point shifts when a point is inserted or removed.
// ID stays stable across drags and resizes for as long as the point lives.
type Point struct {
	ID  uuid.UUID
	Pos Vec2
}

// PointStore is the ordered collection of menu item positions. Insertion
// order is display order. Duplicate positions are legal.
//
// PointStore is not safe for concurrent use; all mutation happens on the
// session's control thread.
type PointStore struct {
	points []Point
}

// NewPointStore creates a store holding the given positions in order.
func NewPointStore(positions ...Vec2) *PointStore {
	s := &PointStore{}
	s.ReplaceAll(positions)
	return s
}

// Len returns the number of points.
func (s *PointStore) Len() int {
	return len(s.points)
}

// At returns the point at index i.
func (s *PointStore) At(i int) (Point, error) {
	if i < 0 || i >= len(s.points) {
		return Point{}, outOfRange(i, len(s.points))
	}
	return s.points[i], nil
}

// Add appends a point and returns it with its newly assigned ID.
func (s *PointStore) Add(pos Vec2) Point {
	p := Point{ID: uuid.New(), Pos: pos}
	s.points = append(s.points, p)
	return p
}

// RemoveAt deletes the point at index i and returns it. Points after i are
// renumbered. An out-of-range index leaves the store unchanged.
func (s *PointStore) RemoveAt(i int) (Point, error) {
	if i < 0 || i >= len(s.points) {
		return Point{}, outOfRange(i, len(s.points))
	}
	p := s.points[i]
	copy(s.points[i:], s.points[i+1:])
	s.points[len(s.points)-1] = Point{}
	s.points = s.points[:len(s.points)-1]
	return p, nil
}

// MoveBy translates the point at index i by (dx, dy).
func (s *PointStore) MoveBy(i int, dx, dy float64) error {
	if i < 0 || i >= len(s.points) {
		return outOfRange(i, len(s.points))
	}
	s.points[i].Pos.X += dx
	s.points[i].Pos.Y += dy
	return nil
}

// ReplaceAll discards every point and stores positions in order, each with
// a fresh ID.
func (s *PointStore) ReplaceAll(positions []Vec2) {
	points := make([]Point, len(positions))
	for i, pos := range positions {
		points[i] = Point{ID: uuid.New(), Pos: pos}
	}
	s.points = points
}

// scale multiplies every position by (sx, sy) in place. IDs are kept.
func (s *PointStore) scale(sx, sy float64) {
	for i := range s.points {
		s.points[i].Pos.X *= sx
		s.points[i].Pos.Y *= sy
	}
}

// All returns a copy of the points in index order.
func (s *PointStore) All() []Point {
	out := make([]Point, len(s.points))
	copy(out, s.points)
	return out
}

// Positions returns a snapshot of the point positions in index order.
func (s *PointStore) Positions() []Vec2 {
	out := make([]Vec2, len(s.points))
	for i, p := range s.points {
		out[i] = p.Pos
	}
	return out
}
