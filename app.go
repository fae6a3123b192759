package gridmenu

import (
	"strconv"
	"strings"
	"time"

	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	maxGridSide     = 10 // slider range is 1..maxGridSide
	mouseDepthStart = 50.0
	mouseDepthStep  = 10.0
	mouseDepthLimit = 100.0
	errorShownFor   = 3 * time.Second
	panelMargin     = 16
)

// hoverView is what the last pointer frame asked to highlight.
type hoverView struct {
	visible   bool
	index     int
	cursor    Vec2
	touching  bool
	intensity float64
	fade      hoverFade
}

// exportPanel is the text area holding exported coordinates. The user can
// edit it before loading.
type exportPanel struct {
	visible bool
	text    string
}

// App runs a Session in an ebiten window. It implements ebiten.Game: mouse
// gestures go through a Controller, device frames are drained from a
// FrameQueue, and the resulting commands drive the highlight, the export
// panel and the touch cue.
type App struct {
	cfg     Config
	session *Session
	ctrl    *Controller
	frames  *FrameQueue
	cue     CuePlayer
	script  *ScriptRunner
	shots   []string

	hover  hoverView
	panel  exportPanel
	errMsg string
	errEnd time.Time

	lastLayoutW, lastLayoutH int
	mouseDepth               float64
	now                      func() time.Time
	stats                    debugStats
}

// NewApp creates an app from cfg. sink may be nil.
func NewApp(cfg Config, sink EventSink) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	sc := cfg.SessionConfig()
	sc.Sink = sink
	session, err := NewSession(sc)
	if err != nil {
		return nil, err
	}

	ctrl := NewController(session)
	ctrl.SetDragDeadZone(cfg.DragDeadZone)
	ctrl.SetBoxSize(cfg.BoxSize)

	var runner *ScriptRunner
	if cfg.Script != "" {
		if runner, err = LoadScript(cfg.Script); err != nil {
			return nil, err
		}
	}

	return &App{
		cfg:         cfg,
		session:     session,
		ctrl:        ctrl,
		frames:      NewFrameQueue(cfg.FrameQueueSize),
		script:      runner,
		lastLayoutW: cfg.Width,
		lastLayoutH: cfg.Height,
		mouseDepth:  mouseDepthStart,
		now:         time.Now,
	}, nil
}

// Session returns the app's session.
func (a *App) Session() *Session { return a.session }

// Controller returns the app's gesture controller.
func (a *App) Controller() *Controller { return a.ctrl }

// Frames returns the queue device drivers push pointer frames into.
func (a *App) Frames() *FrameQueue { return a.frames }

// SetCue sets the touch cue player. Run installs a ToneCue when none is set.
func (a *App) SetCue(c CuePlayer) { a.cue = c }

// SetScript attaches a script that drives the menu instead of the mouse
// until it is done.
func (a *App) SetScript(r *ScriptRunner) { a.script = r }

func (a *App) scripted() bool {
	return a.script != nil && !a.script.Done()
}

// Update implements ebiten.Game.
func (a *App) Update() error {
	start := time.Now()
	now := a.now()

	a.handleKeys()

	var read func() (float64, float64, bool)
	if a.scripted() {
		a.script.step(a)
	} else if !a.panel.visible {
		read = readMouse
	}
	a.apply(a.ctrl.Update(read))

	if a.cfg.MouseDevice && !a.scripted() {
		a.frames.Push(a.mouseFrame(now))
	}
	a.stats.frames += a.frames.Drain(func(f PointerFrame) {
		a.apply(a.session.Dispatch(FrameEvent{Frame: f}))
	})
	a.apply(a.session.Dispatch(TickEvent{At: now}))

	a.hover.fade.update(float32(1.0 / float64(ebiten.TPS())))
	a.stats.update += time.Since(start)
	a.stats.ticks++
	if a.cfg.Debug {
		a.debugLog(now)
	}
	return nil
}

// Layout implements ebiten.Game. A changed window size is sent to the
// session as a debounced resize.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != a.lastLayoutW || outsideHeight != a.lastLayoutH {
		a.lastLayoutW, a.lastLayoutH = outsideWidth, outsideHeight
		a.apply(a.session.Dispatch(ResizeEvent{
			Width:  float64(outsideWidth),
			Height: float64(outsideHeight),
			At:     a.now(),
		}))
	}
	return outsideWidth, outsideHeight
}

// Draw implements ebiten.Game.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(ColorBackground.toRGBA())

	cells := a.session.Cells()
	if a.hover.visible && a.hover.index < len(cells) {
		c := ColorHover
		if a.hover.touching {
			c = ColorTouch
		}
		c.A = a.hover.fade.alpha
		fillCell(screen, cells[a.hover.index], c)
	}
	for _, cell := range cells {
		strokeCell(screen, cell, ColorStroke)
	}

	hoverBox := a.ctrl.HoverBox()
	for i, p := range a.session.Points() {
		fill := ColorBox
		if (a.hover.visible && i == a.hover.index) || i == hoverBox {
			fill = ColorBox.lerp(ColorHover, 0.6)
		}
		drawBox(screen, p.Pos, i, a.ctrl.BoxSize(), fill)
	}

	if a.hover.visible {
		drawCursor(screen, a.hover.cursor, a.hover.intensity, a.hover.touching)
	}

	a.drawOverlay(screen)
	a.flushScreenshots(screen)
}

func (a *App) drawOverlay(screen *ebiten.Image) {
	vp := a.session.Viewport()
	rows, cols := a.session.Grid()
	status := "rows " + strconv.Itoa(rows) + "  cols " + strconv.Itoa(cols) +
		"   [arrows] grid  [S] save  [L] load  [wheel/space] depth"
	ebitenutil.DebugPrintAt(screen, status, panelMargin, int(vp.Height)-debugLineHeight-panelMargin/2)

	if a.cfg.ShowFPS {
		drawStats(screen)
	}

	if a.panel.visible {
		lines := strings.Count(a.panel.text, "\n") + 2
		w := float32(vp.Width/3) + panelMargin
		h := float32(lines*debugLineHeight) + panelMargin
		x := float32(vp.Width) - w - panelMargin
		y := float32(panelMargin)
		vector.DrawFilledRect(screen, x, y, w, h, Color{R: 1, G: 1, B: 1, A: 0.9}.toRGBA(), false)
		vector.StrokeRect(screen, x, y, w, h, strokeWidth, ColorStroke.toRGBA(), false)
		ebitenutil.DebugPrintAt(screen, a.panel.text+"_", int(x)+panelMargin/2, int(y)+panelMargin/2)
	}

	if a.errMsg != "" && a.now().Before(a.errEnd) {
		ebitenutil.DebugPrintAt(screen, a.errMsg, panelMargin, panelMargin+2*debugLineHeight)
	}
}

// apply executes the side effects requested by the session.
func (a *App) apply(cmds []Command) {
	for _, cmd := range cmds {
		switch cmd := cmd.(type) {
		case CmdRedraw:
			a.stats.redraws++
		case CmdPlayCue:
			if a.cue != nil {
				a.cue.Play()
			}
		case CmdHighlight:
			if !a.hover.visible || a.hover.index != cmd.Index || a.hover.touching != cmd.Touching {
				a.hover.fade.restart()
			}
			a.hover.visible = true
			a.hover.index = cmd.Index
			a.hover.cursor = cmd.Cursor
			a.hover.touching = cmd.Touching
			a.hover.intensity = cmd.Intensity
		case CmdClearHover:
			a.hover.visible = false
		case CmdShowExport:
			a.panel.visible = true
			a.panel.text = cmd.Text
		case CmdHideExport:
			a.panel.visible = false
		case CmdShowError:
			a.errMsg = cmd.Err.Error()
			a.errEnd = a.now().Add(errorShownFor)
		}
	}
}

// handleKeys maps the keyboard onto the menu controls: arrows act as the
// rows and columns sliders, S saves into the panel, L opens it. While the
// panel is open typed characters edit it, Ctrl+L loads its text and Escape
// closes it.
func (a *App) handleKeys() {
	if a.panel.visible {
		a.panel.text = string(ebiten.AppendInputChars([]rune(a.panel.text)))
		switch {
		case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
			a.panel.text += "\n"
		case inpututil.IsKeyJustPressed(ebiten.KeyBackspace) && len(a.panel.text) > 0:
			r := []rune(a.panel.text)
			a.panel.text = string(r[:len(r)-1])
		case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
			a.panel.visible = false
		case inpututil.IsKeyJustPressed(ebiten.KeyL) && ebiten.IsKeyPressed(ebiten.KeyControl):
			a.apply(a.session.Dispatch(LoadEvent{Text: a.panel.text}))
		}
		return
	}

	rows, cols := a.session.Grid()
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyUp):
		rows = min(rows+1, maxGridSide)
	case inpututil.IsKeyJustPressed(ebiten.KeyDown):
		rows = max(rows-1, 1)
	case inpututil.IsKeyJustPressed(ebiten.KeyRight):
		cols = min(cols+1, maxGridSide)
	case inpututil.IsKeyJustPressed(ebiten.KeyLeft):
		cols = max(cols-1, 1)
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		a.apply(a.session.Dispatch(SaveEvent{}))
		return
	case inpututil.IsKeyJustPressed(ebiten.KeyL):
		a.panel.visible = true
		return
	default:
		return
	}
	a.apply(a.session.Dispatch(GridEvent{Rows: rows, Cols: cols}))
}

// mouseFrame emulates a 3D pointer: the cursor is the position and the wheel
// moves the pointer through the touch plane. Holding space pushes it just
// past the plane.
func (a *App) mouseFrame(now time.Time) PointerFrame {
	_, dy := ebiten.Wheel()
	a.mouseDepth -= dy * mouseDepthStep
	a.mouseDepth = max(-mouseDepthLimit, min(mouseDepthLimit, a.mouseDepth))

	depth := a.mouseDepth
	if ebiten.IsKeyPressed(ebiten.KeySpace) && !a.panel.visible {
		depth = -1
	}

	mx, my := ebiten.CursorPosition()
	sample := a.session.Projection().Unproject(Vec2{float64(mx), float64(my)}, depth, a.session.Viewport())
	return PointerFrame{Samples: []PointerSample{sample}, At: now}
}

func readMouse() (float64, float64, bool) {
	mx, my := ebiten.CursorPosition()
	return float64(mx), float64(my), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

// Run opens the window and blocks until it is closed. Device drivers started
// before Run push frames into a.Frames().
func (a *App) Run() error {
	if a.cue == nil {
		a.cue = NewToneCue(audio.NewContext(a.cfg.Cue.SampleRate), a.cfg.Cue)
	}

	ebiten.SetWindowSize(a.cfg.Width, a.cfg.Height)
	ebiten.SetWindowTitle(a.cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	logs.WithTag("width", a.cfg.Width).
		WithTag("height", a.cfg.Height).
		WithTag("rows", a.cfg.Rows).
		WithTag("cols", a.cfg.Cols).
		Info("starting grid menu")
	return ebiten.RunGame(a)
}

// Run configures logging, creates an App from cfg and runs it.
func Run(cfg Config) error {
	if cfg.LogLevel != "" {
		logs.SetLevel(logs.ParseLevel(cfg.LogLevel))
	}
	app, err := NewApp(cfg, nil)
	if err != nil {
		return err
	}
	return app.Run()
}
