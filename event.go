package gridmenu

import (
	"time"

	"github.com/google/uuid"
)

// Event is an input to Session.Dispatch. The set of variants is closed.
type Event interface {
	isEvent()
}

// AddEvent appends a point at Pos.
type AddEvent struct {
	Pos Vec2
}

// RemoveEvent removes the point at Index.
type RemoveEvent struct {
	Index int
}

// DragEvent moves the point at Index by (DX, DY).
type DragEvent struct {
	Index  int
	DX, DY float64
}

// ResizeEvent requests a new surface size. It is debounced: only the last
// request of a burst is applied, by a later TickEvent.
type ResizeEvent struct {
	Width, Height float64
	At            time.Time
}

// TickEvent advances session time. Pending debounced work whose window has
// elapsed is applied.
type TickEvent struct {
	At time.Time
}

// FrameEvent delivers one pointer device frame.
type FrameEvent struct {
	Frame PointerFrame
}

// LoadEvent replaces the point set with coordinates parsed from Text.
type LoadEvent struct {
	Text string
}

// SaveEvent exports the point set as coordinate text.
type SaveEvent struct{}

// GridEvent replaces the point set with a Rows×Cols grid.
type GridEvent struct {
	Rows, Cols int
}

func (AddEvent) isEvent()    {}
func (RemoveEvent) isEvent() {}
func (DragEvent) isEvent()   {}
func (ResizeEvent) isEvent() {}
func (TickEvent) isEvent()   {}
func (FrameEvent) isEvent()  {}
func (LoadEvent) isEvent()   {}
func (SaveEvent) isEvent()   {}
func (GridEvent) isEvent()   {}

// Command is a side effect requested by Session.Dispatch. The session never
// performs I/O itself; the runner executes commands.
type Command interface {
	isCommand()
}

// CmdRedraw asks for the partition and point boxes to be repainted.
type CmdRedraw struct{}

// CmdPlayCue asks for one playback of the touch audio cue.
type CmdPlayCue struct {
	Index   int
	PointID uuid.UUID
}

// CmdHighlight marks the cell at Index as hovered (or touched) and places
// the cursor indicator.
type CmdHighlight struct {
	Index     int
	Cursor    Vec2
	Touching  bool
	Intensity float64
}

// CmdClearHover removes any hover highlight and cursor indicator.
type CmdClearHover struct{}

// CmdShowExport shows Text in the export panel.
type CmdShowExport struct {
	Text string
}

// CmdHideExport hides the export panel.
type CmdHideExport struct{}

// CmdShowError surfaces a recoverable error inline.
type CmdShowError struct {
	Err error
}

func (CmdRedraw) isCommand()     {}
func (CmdPlayCue) isCommand()    {}
func (CmdHighlight) isCommand()  {}
func (CmdClearHover) isCommand() {}
func (CmdShowExport) isCommand() {}
func (CmdHideExport) isCommand() {}
func (CmdShowError) isCommand()  {}

// MenuEventType identifies a kind of menu event.
type MenuEventType uint8

const (
	EventHoverEnter     MenuEventType = iota // pointer's nearest point changed to Index
	EventHoverExit                           // pointer's nearest point is no longer Index
	EventTouchFired                          // pointer crossed the touch plane over Index
	EventPointAdded                          // a point was appended at Index
	EventPointRemoved                        // the point at Index was removed
	EventPointMoved                          // the point at Index was dragged
	EventPointsReplaced                      // the whole point set was replaced
	EventResized                             // the surface was resized to Width×Height
)

func (t MenuEventType) String() string {
	switch t {
	case EventHoverEnter:
		return "hover_enter"
	case EventHoverExit:
		return "hover_exit"
	case EventTouchFired:
		return "touch_fired"
	case EventPointAdded:
		return "point_added"
	case EventPointRemoved:
		return "point_removed"
	case EventPointMoved:
		return "point_moved"
	case EventPointsReplaced:
		return "points_replaced"
	case EventResized:
		return "resized"
	default:
		return "unknown"
	}
}

// MenuEvent carries menu event data to an EventSink.
type MenuEvent struct {
	Type    MenuEventType
	Index   int
	PointID uuid.UUID
	X, Y    float64
	// Depth is set for hover and touch events.
	Depth float64
	// Width and Height are set for EventResized.
	Width, Height float64
	// Count is the new point count for EventPointsReplaced.
	Count int
}

// EventSink receives menu events, for example to forward them to an ECS.
type EventSink interface {
	EmitEvent(event MenuEvent)
}

// EventSinkFunc adapts a plain function to the EventSink interface.
type EventSinkFunc func(MenuEvent)

// EmitEvent calls f.
func (f EventSinkFunc) EmitEvent(event MenuEvent) {
	f(event)
}
