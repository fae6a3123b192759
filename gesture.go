package gridmenu

import "math"

const (
	// DefaultDragDeadZone is the movement in pixels before a press becomes a drag.
	DefaultDragDeadZone = 4.0
	// DefaultBoxSize is the side in pixels of the grab box drawn on each point.
	DefaultBoxSize = 24.0
)

// pointerState tracks the single mouse pointer between frames.
type pointerState struct {
	down     bool
	startX   float64
	startY   float64
	lastX    float64
	lastY    float64
	hitIndex int // point under the pointer at press time, or NoSelection
	dragging bool
	hover    int // point box under the pointer while not pressed
}

// syntheticPointerEvent is one queued injected pointer sample.
type syntheticPointerEvent struct {
	x, y    float64
	pressed bool
}

// Controller turns raw pointer samples (position plus button state) into
// point store mutations on a Session:
//
//   - click on empty surface adds a point there
//   - click on a point box removes that point
//   - dragging a point box moves the point by every movement delta, and the
//     click the same press/release would produce is suppressed
type Controller struct {
	session      *Session
	boxSize      float64
	dragDeadZone float64
	ptr          pointerState
	injectQueue  []syntheticPointerEvent
}

// NewController creates a controller driving session.
func NewController(session *Session) *Controller {
	return &Controller{
		session:      session,
		boxSize:      DefaultBoxSize,
		dragDeadZone: DefaultDragDeadZone,
		ptr:          pointerState{hitIndex: NoSelection, hover: NoSelection},
	}
}

// SetDragDeadZone sets the minimum movement in pixels before a drag starts.
func (c *Controller) SetDragDeadZone(pixels float64) {
	c.dragDeadZone = pixels
}

// SetBoxSize sets the side of the grab box around each point.
func (c *Controller) SetBoxSize(pixels float64) {
	c.boxSize = pixels
}

// BoxSize returns the side of the grab box around each point.
func (c *Controller) BoxSize() float64 {
	return c.boxSize
}

// HoverBox returns the index of the point box under the released pointer,
// or NoSelection.
func (c *Controller) HoverBox() int {
	return c.ptr.hover
}

// Dragging reports whether a drag is in progress.
func (c *Controller) Dragging() bool {
	return c.ptr.dragging
}

// InjectPress queues a press at (x, y). Each queued sample is consumed by
// one Update call in place of the real pointer.
func (c *Controller) InjectPress(x, y float64) {
	c.injectQueue = append(c.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectMove queues a move at (x, y) with the button held down.
func (c *Controller) InjectMove(x, y float64) {
	c.injectQueue = append(c.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectRelease queues a release at (x, y).
func (c *Controller) InjectRelease(x, y float64) {
	c.injectQueue = append(c.injectQueue, syntheticPointerEvent{x: x, y: y})
}

// InjectClick queues a press followed by a release at the same position.
func (c *Controller) InjectClick(x, y float64) {
	c.InjectPress(x, y)
	c.InjectRelease(x, y)
}

// InjectDrag queues a press at (fromX, fromY), frames-2 linearly
// interpolated moves and a release at (toX, toY). Minimum frames is 2.
func (c *Controller) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	c.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		c.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	c.InjectRelease(toX, toY)
}

// Update consumes one queued injected sample if there is one, otherwise one
// sample from read, and returns the commands the resulting mutations
// produced. read may be nil when only injected input is used.
func (c *Controller) Update(read func() (x, y float64, pressed bool)) []Command {
	if len(c.injectQueue) > 0 {
		evt := c.injectQueue[0]
		copy(c.injectQueue, c.injectQueue[1:])
		c.injectQueue = c.injectQueue[:len(c.injectQueue)-1]
		return c.Pointer(evt.x, evt.y, evt.pressed)
	}
	if read == nil {
		return nil
	}
	x, y, pressed := read()
	return c.Pointer(x, y, pressed)
}

// Pointer runs the press/drag/release state machine for one sample.
func (c *Controller) Pointer(x, y float64, pressed bool) []Command {
	ps := &c.ptr
	target := c.session.HitTest(Vec2{x, y}, c.boxSize)

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.startX, ps.startY = x, y
		ps.lastX, ps.lastY = x, y
		ps.hitIndex = target
		ps.dragging = false
		ps.hover = NoSelection
		return nil

	case !pressed && ps.down:
		var cmds []Command
		if ps.dragging && ps.hitIndex != NoSelection && (x != ps.lastX || y != ps.lastY) {
			cmds = c.session.Dispatch(DragEvent{Index: ps.hitIndex, DX: x - ps.lastX, DY: y - ps.lastY})
		}
		if !ps.dragging && ps.hitIndex == target {
			if target == NoSelection {
				cmds = c.session.Dispatch(AddEvent{Pos: Vec2{x, y}})
			} else {
				cmds = c.session.Dispatch(RemoveEvent{Index: target})
			}
		}
		ps.down = false
		ps.hitIndex = NoSelection
		ps.dragging = false
		ps.lastX, ps.lastY = x, y
		ps.hover = c.session.HitTest(Vec2{x, y}, c.boxSize)
		return cmds

	case pressed && ps.down:
		var cmds []Command
		if x != ps.lastX || y != ps.lastY {
			if !ps.dragging {
				dx := x - ps.startX
				dy := y - ps.startY
				if math.Sqrt(dx*dx+dy*dy) > c.dragDeadZone {
					ps.dragging = true
					// Catch the point up with the movement swallowed by the
					// dead zone so it stays under the pointer.
					ps.lastX, ps.lastY = ps.startX, ps.startY
				}
			}
			if ps.dragging && ps.hitIndex != NoSelection {
				cmds = c.session.Dispatch(DragEvent{Index: ps.hitIndex, DX: x - ps.lastX, DY: y - ps.lastY})
			}
		}
		ps.lastX, ps.lastY = x, y
		return cmds

	default:
		ps.lastX, ps.lastY = x, y
		ps.hover = target
		return nil
	}
}
