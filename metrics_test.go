package gridmenu

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func gatheredValue(t *testing.T, name string) float64 {
	t.Helper()
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		t.Fatal(err)
	}
	for _, f := range families {
		if f.GetName() != name {
			continue
		}
		total := 0.0
		for _, m := range f.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				total += m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				total += m.GetGauge().GetValue()
			case m.GetHistogram() != nil:
				total += float64(m.GetHistogram().GetSampleCount())
			}
		}
		return total
	}
	return 0
}

func TestSessionMetrics(t *testing.T) {
	s := newTestSession(t, nil)

	frames := gatheredValue(t, "gridmenu_pointer_frames")
	fired := gatheredValue(t, "gridmenu_touches_fired")
	rebuilds := gatheredValue(t, "gridmenu_index_rebuilds")
	errs := gatheredValue(t, "gridmenu_dispatch_errors")
	stepped := gatheredValue(t, "gridmenu_frame_seconds")

	s.Dispatch(pointerFrame(s, Vec2{450, 300}, -1))
	s.Dispatch(AddEvent{Pos: Vec2{1, 1}})
	s.Dispatch(RemoveEvent{Index: 99})

	tests := []struct {
		name  string
		delta float64
	}{
		{"gridmenu_pointer_frames", gatheredValue(t, "gridmenu_pointer_frames") - frames},
		{"gridmenu_touches_fired", gatheredValue(t, "gridmenu_touches_fired") - fired},
		{"gridmenu_index_rebuilds", gatheredValue(t, "gridmenu_index_rebuilds") - rebuilds},
		{"gridmenu_dispatch_errors", gatheredValue(t, "gridmenu_dispatch_errors") - errs},
		{"gridmenu_frame_seconds", gatheredValue(t, "gridmenu_frame_seconds") - stepped},
	}
	for _, tt := range tests {
		if tt.delta != 1 {
			t.Errorf("%s grew by %v, want 1", tt.name, tt.delta)
		}
	}
	if got := gatheredValue(t, "gridmenu_points"); got != 10 {
		t.Errorf("gridmenu_points = %v, want 10", got)
	}
}
