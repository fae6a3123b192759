package gridmenu

import (
	"time"

	"github.com/aukilabs/go-tooling/pkg/logs"
)

// SessionConfig configures a Session.
type SessionConfig struct {
	Width, Height float64

	// Rows and Cols of the initial grid. Zero leaves the surface empty.
	Rows, Cols int

	// ResizeWindow is the resize debounce window (default 200ms).
	ResizeWindow time.Duration

	// Projection maps device samples onto the surface (default
	// DefaultProjection when zero).
	Projection DeviceProjection

	// Partitioner computes the proximity cells (default BisectorPartitioner).
	Partitioner Partitioner

	// Sink receives menu events. Optional.
	Sink EventSink
}

// Session owns all interaction state: points, viewport, spatial index,
// partition cells, touch state and the pending resize. It is driven by
// Dispatch from a single goroutine; nothing in it is safe for concurrent use.
type Session struct {
	store       *PointStore
	viewport    Viewport
	index       *SpatialIndex
	cells       [][]Vec2
	touch       *TouchMachine
	resize      *Debouncer[Viewport]
	partitioner Partitioner
	projection  DeviceProjection
	sink        EventSink
	rows, cols  int
}

// NewSession creates a session, lays out the initial grid and builds the
// index and partition. Non-positive dimensions return ErrTypeInvalidDimension.
func NewSession(cfg SessionConfig) (*Session, error) {
	vp, err := NewViewport(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	if cfg.Projection == (DeviceProjection{}) {
		cfg.Projection = DefaultProjection
	}
	if cfg.Partitioner == nil {
		cfg.Partitioner = &BisectorPartitioner{}
	}

	s := &Session{
		store:       NewPointStore(GenerateGrid(cfg.Rows, cfg.Cols, vp.Width, vp.Height)...),
		viewport:    vp,
		touch:       NewTouchMachine(),
		resize:      NewDebouncer[Viewport](cfg.ResizeWindow),
		partitioner: cfg.Partitioner,
		projection:  cfg.Projection,
		sink:        cfg.Sink,
		rows:        cfg.Rows,
		cols:        cfg.Cols,
	}
	s.rebuild("init")
	return s, nil
}

// Points returns a copy of the current points in index order.
func (s *Session) Points() []Point { return s.store.All() }

// Viewport returns the current surface size.
func (s *Session) Viewport() Viewport { return s.viewport }

// Cells returns the partition cells aligned with Points. The slice must not
// be mutated.
func (s *Session) Cells() [][]Vec2 { return s.cells }

// Index returns the current spatial index.
func (s *Session) Index() *SpatialIndex { return s.index }

// TouchState returns the current touch state.
func (s *Session) TouchState() TouchState { return s.touch.State() }

// Grid returns the rows and columns last used to lay out a grid.
func (s *Session) Grid() (rows, cols int) { return s.rows, s.cols }

// ResizePending reports whether a debounced resize is waiting to be applied.
func (s *Session) ResizePending() bool { return s.resize.Pending() }

// Projection returns the device projection in use.
func (s *Session) Projection() DeviceProjection { return s.projection }

// HitTest returns the index of the topmost point whose box of side boxSize,
// centred on the point, contains pos, or NoSelection. Later points are drawn
// on top, so they are tested first.
func (s *Session) HitTest(pos Vec2, boxSize float64) int {
	half := boxSize / 2
	for i := s.store.Len() - 1; i >= 0; i-- {
		p := s.store.points[i].Pos
		box := Rect{X: p.X - half, Y: p.Y - half, Width: boxSize, Height: boxSize}
		if box.Contains(pos.X, pos.Y) {
			return i
		}
	}
	return NoSelection
}

// Dispatch processes one event to completion and returns the side effects
// the runner should perform. Mutations rebuild the index and partition and
// reset the touch state before Dispatch returns, so the next frame never
// queries a stale index. Recoverable errors leave the state unchanged and
// come back as CmdShowError.
func (s *Session) Dispatch(ev Event) []Command {
	switch ev := ev.(type) {
	case AddEvent:
		p := s.store.Add(ev.Pos)
		s.rebuild("add")
		s.emit(MenuEvent{Type: EventPointAdded, Index: s.store.Len() - 1, PointID: p.ID, X: p.Pos.X, Y: p.Pos.Y})
		return []Command{CmdRedraw{}}

	case RemoveEvent:
		p, err := s.store.RemoveAt(ev.Index)
		if err != nil {
			return s.fail(err)
		}
		s.rebuild("remove")
		s.emit(MenuEvent{Type: EventPointRemoved, Index: ev.Index, PointID: p.ID, X: p.Pos.X, Y: p.Pos.Y})
		return []Command{CmdRedraw{}}

	case DragEvent:
		if err := s.store.MoveBy(ev.Index, ev.DX, ev.DY); err != nil {
			return s.fail(err)
		}
		s.rebuild("drag")
		p := s.store.points[ev.Index]
		s.emit(MenuEvent{Type: EventPointMoved, Index: ev.Index, PointID: p.ID, X: p.Pos.X, Y: p.Pos.Y})
		return []Command{CmdRedraw{}}

	case ResizeEvent:
		if _, err := NewViewport(ev.Width, ev.Height); err != nil {
			return s.fail(err)
		}
		at := ev.At
		if at.IsZero() {
			at = time.Now()
		}
		s.resize.Push(Viewport{Width: ev.Width, Height: ev.Height}, at)
		return nil

	case TickEvent:
		return s.applyResize(ev.At)

	case FrameEvent:
		return s.frame(ev.Frame)

	case LoadEvent:
		positions, err := ImportCoordinates(ev.Text, s.viewport.Width, s.viewport.Height)
		if err != nil {
			return s.fail(err)
		}
		s.replace(positions, "load")
		return []Command{CmdHideExport{}, CmdRedraw{}}

	case SaveEvent:
		text := ExportCoordinates(s.store.Positions(), s.viewport.Width, s.viewport.Height)
		return []Command{CmdShowExport{Text: text}}

	case GridEvent:
		s.rows, s.cols = ev.Rows, ev.Cols
		s.replace(GenerateGrid(ev.Rows, ev.Cols, s.viewport.Width, s.viewport.Height), "grid")
		return []Command{CmdRedraw{}}
	}
	return nil
}

func (s *Session) applyResize(now time.Time) []Command {
	next, ok := s.resize.Poll(now)
	if !ok {
		return nil
	}
	if err := s.viewport.Resize(s.store, next.Width, next.Height); err != nil {
		return s.fail(err)
	}
	s.rebuild("resize")
	logs.WithTag("width", next.Width).
		WithTag("height", next.Height).
		Debug("surface resized")
	s.emit(MenuEvent{Type: EventResized, Width: next.Width, Height: next.Height})
	return []Command{CmdRedraw{}}
}

func (s *Session) frame(f PointerFrame) []Command {
	start := time.Now()
	step := s.touch.Step(f, s.index, s.viewport, s.projection)
	instrumentFrame(start, step.Fired)

	if !step.Active {
		return []Command{CmdClearHover{}}
	}

	idx := step.Nearest.Index
	id := s.store.points[idx].ID
	if step.HoverChanged() {
		if step.Previous != NoSelection && step.Previous < s.store.Len() {
			prev := s.store.points[step.Previous]
			s.emit(MenuEvent{Type: EventHoverExit, Index: step.Previous, PointID: prev.ID,
				X: prev.Pos.X, Y: prev.Pos.Y, Depth: step.Depth})
		}
		s.emit(MenuEvent{Type: EventHoverEnter, Index: idx, PointID: id,
			X: step.Nearest.Pos.X, Y: step.Nearest.Pos.Y, Depth: step.Depth})
	}

	cmds := []Command{CmdHighlight{
		Index:     idx,
		Cursor:    step.Cursor,
		Touching:  step.Depth <= 0,
		Intensity: step.Intensity,
	}}
	if step.Fired {
		s.emit(MenuEvent{Type: EventTouchFired, Index: idx, PointID: id,
			X: step.Nearest.Pos.X, Y: step.Nearest.Pos.Y, Depth: step.Depth})
		cmds = append(cmds, CmdPlayCue{Index: idx, PointID: id})
	}
	return cmds
}

func (s *Session) replace(positions []Vec2, reason string) {
	s.store.ReplaceAll(positions)
	s.rebuild(reason)
	s.emit(MenuEvent{Type: EventPointsReplaced, Count: len(positions)})
}

// rebuild refreshes every structure derived from the point set. Indices may
// have been renumbered, so the touch state is reset.
func (s *Session) rebuild(reason string) {
	positions := s.store.Positions()
	s.index = BuildIndex(positions, s.viewport.Extent())
	s.cells = s.partitioner.Partition(positions, s.viewport.Clip())
	s.touch.Reset()
	instrumentRebuild(reason, len(positions))
	logs.WithTag("reason", reason).
		WithTag("points", len(positions)).
		Debug("spatial index rebuilt")
}

func (s *Session) emit(ev MenuEvent) {
	if s.sink != nil {
		s.sink.EmitEvent(ev)
	}
}

func (s *Session) fail(err error) []Command {
	instrumentDispatchError(err)
	logs.Warn(err)
	return []Command{CmdShowError{Err: err}}
}
