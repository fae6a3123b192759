package gridmenu

import (
	"math"
	"time"
)

// NoSelection marks an unset selected index.
const NoSelection = -1

// PointerSample is one raw pointer reading in device coordinates. Negative
// Depth means the pointer is past the touch plane; positive means above it.
type PointerSample struct {
	X, Y, Depth float64
}

// PointerFrame is everything the device reported on one tick. Only the first
// sample is used.
type PointerFrame struct {
	Samples []PointerSample
	At      time.Time
}

// DeviceProjection maps raw device coordinates onto the surface:
//
//	x = width/2 + ScaleX*sample.X + OffsetX
//	y = height  + ScaleY*sample.Y + OffsetY
//
// Depth is passed through unchanged.
type DeviceProjection struct {
	ScaleX  float64 `yaml:"scale_x"`
	ScaleY  float64 `yaml:"scale_y"`
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
}

// DefaultProjection is the interaction-box mapping for a hand tracker held
// below the screen: millimetres to pixels, Y flipped, lifted by 150px.
var DefaultProjection = DeviceProjection{ScaleX: 6, ScaleY: -4, OffsetY: 150}

// Project maps a raw sample into surface space for the given viewport.
func (p DeviceProjection) Project(s PointerSample, vp Viewport) (Vec2, float64) {
	return Vec2{
		X: vp.Width/2 + p.ScaleX*s.X + p.OffsetX,
		Y: vp.Height + p.ScaleY*s.Y + p.OffsetY,
	}, s.Depth
}

// Unproject is the inverse of Project: it returns the raw sample that lands
// on pos with the given depth. ScaleX and ScaleY must be non-zero.
func (p DeviceProjection) Unproject(pos Vec2, depth float64, vp Viewport) PointerSample {
	return PointerSample{
		X:     (pos.X - vp.Width/2 - p.OffsetX) / p.ScaleX,
		Y:     (pos.Y - vp.Height - p.OffsetY) / p.ScaleY,
		Depth: depth,
	}
}

// Intensity returns the hover feedback percentage for a depth reading,
// max(0, 100-|depth|). It is display-only.
func Intensity(depth float64) float64 {
	return math.Max(0, 100-math.Abs(depth))
}

// TouchPhase is the state of the touch state machine.
type TouchPhase uint8

const (
	TouchIdle     TouchPhase = iota // no active touch
	TouchTouching                   // pointer past the plane, touch already fired
)

func (p TouchPhase) String() string {
	switch p {
	case TouchIdle:
		return "idle"
	case TouchTouching:
		return "touching"
	default:
		return "unknown"
	}
}

// TouchState is a snapshot of the machine.
type TouchState struct {
	LastSelected int
	Phase        TouchPhase
}

// Touched reports whether the machine is in the touching phase.
func (s TouchState) Touched() bool {
	return s.Phase == TouchTouching
}

// TouchStep describes what one frame did to the machine.
type TouchStep struct {
	// Active is false when the frame had no sample or the index was empty;
	// nothing else in the step is meaningful then.
	Active bool

	Cursor    Vec2    // projected pointer position
	Depth     float64 // raw depth of the sample
	Intensity float64 // hover feedback percentage

	Nearest  Neighbor
	Previous int  // selected index before this frame
	Fired    bool // a touch fired on this frame
	Phase    TouchPhase
}

// HoverChanged reports whether the selected index moved on this frame.
func (s TouchStep) HoverChanged() bool {
	return s.Active && s.Previous != s.Nearest.Index
}

// TouchMachine turns pointer frames into hover tracking and edge-triggered
// touches. A touch fires once on the transition from above the plane to past
// it and cannot fire again until the pointer comes back above the plane.
type TouchMachine struct {
	phase        TouchPhase
	lastSelected int
}

// NewTouchMachine returns an idle machine with no selection.
func NewTouchMachine() *TouchMachine {
	return &TouchMachine{lastSelected: NoSelection}
}

// State returns the current state.
func (m *TouchMachine) State() TouchState {
	return TouchState{LastSelected: m.lastSelected, Phase: m.phase}
}

// Reset returns the machine to idle and clears the selection without firing.
// Call it whenever the point set changes, since indices are renumbered.
func (m *TouchMachine) Reset() {
	m.phase = TouchIdle
	m.lastSelected = NoSelection
}

// Step advances the machine by one frame. Frames with no sample, or an empty
// index, leave the state untouched.
func (m *TouchMachine) Step(frame PointerFrame, idx *SpatialIndex, vp Viewport, proj DeviceProjection) TouchStep {
	if len(frame.Samples) == 0 || idx == nil || idx.Len() == 0 {
		return TouchStep{Previous: m.lastSelected, Phase: m.phase}
	}

	cursor, depth := proj.Project(frame.Samples[0], vp)
	nearest, ok := idx.Nearest(cursor)
	if !ok {
		return TouchStep{Previous: m.lastSelected, Phase: m.phase}
	}

	step := TouchStep{
		Active:    true,
		Cursor:    cursor,
		Depth:     depth,
		Intensity: Intensity(depth),
		Nearest:   nearest,
		Previous:  m.lastSelected,
	}
	m.lastSelected = nearest.Index

	switch m.phase {
	case TouchIdle:
		if depth < 0 {
			m.phase = TouchTouching
			step.Fired = true
		}
	case TouchTouching:
		if depth >= 0 {
			m.phase = TouchIdle
		}
	}
	step.Phase = m.phase
	return step
}
