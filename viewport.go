package gridmenu

import "math"

// Viewport tracks the size of the interaction surface.
type Viewport struct {
	Width, Height float64
}

// validDimensions reports whether both sides are positive and finite.
func validDimensions(width, height float64) bool {
	return width > 0 && height > 0 && !math.IsInf(width, 1) && !math.IsInf(height, 1)
}

// NewViewport returns a viewport of the given size, or an error of type
// ErrTypeInvalidDimension when either side is not positive and finite.
func NewViewport(width, height float64) (Viewport, error) {
	if !validDimensions(width, height) {
		return Viewport{}, invalidDimension(width, height)
	}
	return Viewport{Width: width, Height: height}, nil
}

// Extent returns the surface rectangle [0,0]–[Width,Height].
func (v Viewport) Extent() Rect {
	return Rect{Width: v.Width, Height: v.Height}
}

// Clip returns the partition clip rectangle, one pixel outside the surface
// on every side.
func (v Viewport) Clip() Rect {
	return RectFromBounds(-1, -1, v.Width+1, v.Height+1)
}

// Resize rescales every point in store to the new size, each axis
// independently, and updates the viewport. Aspect ratio is not preserved.
// Non-positive or non-finite targets return ErrTypeInvalidDimension and change nothing.
func (v *Viewport) Resize(store *PointStore, width, height float64) error {
	if !validDimensions(width, height) {
		return invalidDimension(width, height)
	}
	store.scale(width/v.Width, height/v.Height)
	v.Width = width
	v.Height = height
	return nil
}
