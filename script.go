package gridmenu

import (
	"os"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Script actions.
const (
	ActionClick      = "click"      // click at (x, y)
	ActionDrag       = "drag"       // drag from (from_x, from_y) to (to_x, to_y) over frames
	ActionPointer    = "pointer"    // one device frame at surface position (x, y) with depth
	ActionWait       = "wait"       // idle for frames ticks
	ActionGrid       = "grid"       // lay out a rows×cols grid
	ActionSave       = "save"       // export into the panel
	ActionLoad       = "load"       // import text, or the panel's text when empty
	ActionScreenshot = "screenshot" // write the next frame to a PNG named by label
)

// ScriptStep is one scripted action.
type ScriptStep struct {
	Action string  `yaml:"action"`
	Label  string  `yaml:"label,omitempty"`
	X      float64 `yaml:"x,omitempty"`
	Y      float64 `yaml:"y,omitempty"`
	Depth  float64 `yaml:"depth,omitempty"`
	FromX  float64 `yaml:"from_x,omitempty"`
	FromY  float64 `yaml:"from_y,omitempty"`
	ToX    float64 `yaml:"to_x,omitempty"`
	ToY    float64 `yaml:"to_y,omitempty"`
	Frames int     `yaml:"frames,omitempty"`
	Rows   int     `yaml:"rows,omitempty"`
	Cols   int     `yaml:"cols,omitempty"`
	Text   string  `yaml:"text,omitempty"`
}

type script struct {
	Steps []ScriptStep `yaml:"steps"`
}

// ScriptRunner replays a scripted menu session one step per tick, for demos
// and automated visual checks. Attach it with App.SetScript.
type ScriptRunner struct {
	steps     []ScriptStep
	cursor    int
	waitCount int
	done      bool
}

// ParseScript parses a YAML script. Unknown actions fail with ErrTypeConfig.
func ParseScript(data []byte) (*ScriptRunner, error) {
	var s script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, errors.New("parsing script failed").
			WithType(ErrTypeConfig).
			Wrap(err)
	}
	if len(s.Steps) == 0 {
		return nil, errors.New("script has no steps").WithType(ErrTypeConfig)
	}
	for i, st := range s.Steps {
		switch st.Action {
		case ActionClick, ActionDrag, ActionPointer, ActionWait,
			ActionGrid, ActionSave, ActionLoad, ActionScreenshot:
		default:
			return nil, errors.New("unknown script action").
				WithType(ErrTypeConfig).
				WithTag("step", i).
				WithTag("action", st.Action)
		}
	}
	return &ScriptRunner{steps: s.Steps}, nil
}

// LoadScript reads a YAML script file. See ParseScript.
func LoadScript(path string) (*ScriptRunner, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("reading script file failed").
			WithType(ErrTypeConfig).
			WithTag("path", path).
			Wrap(err)
	}
	return ParseScript(data)
}

// Done reports whether every step has run.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one tick. Injected pointer samples drain
// before the next step starts.
func (r *ScriptRunner) step(a *App) {
	if r.done || len(a.ctrl.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	s := a.session
	switch st.Action {
	case ActionClick:
		a.ctrl.InjectClick(st.X, st.Y)
	case ActionDrag:
		a.ctrl.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case ActionPointer:
		sample := s.Projection().Unproject(Vec2{st.X, st.Y}, st.Depth, s.Viewport())
		a.frames.Push(PointerFrame{Samples: []PointerSample{sample}, At: a.now()})
	case ActionWait:
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1
		}
	case ActionGrid:
		a.apply(s.Dispatch(GridEvent{Rows: st.Rows, Cols: st.Cols}))
	case ActionSave:
		a.apply(s.Dispatch(SaveEvent{}))
	case ActionLoad:
		text := st.Text
		if text == "" {
			text = a.panel.text
		}
		a.apply(s.Dispatch(LoadEvent{Text: text}))
	case ActionScreenshot:
		a.Screenshot(st.Label)
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(a.ctrl.injectQueue) == 0 {
		r.done = true
	}
}
