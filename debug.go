package gridmenu

import (
	"time"

	"github.com/aukilabs/go-tooling/pkg/logs"
)

// debugInterval is how often accumulated stats are logged in debug mode.
const debugInterval = time.Second

// debugStats accumulates per-tick work between two debug log lines.
// Only reported when Config.Debug is true.
type debugStats struct {
	update  time.Duration
	ticks   int
	frames  int
	redraws int
	since   time.Time
}

// debugLog logs and resets the stats once per debugInterval.
func (a *App) debugLog(now time.Time) {
	if a.stats.since.IsZero() {
		a.stats.since = now
		return
	}
	if now.Sub(a.stats.since) < debugInterval {
		return
	}

	var perTick time.Duration
	if a.stats.ticks > 0 {
		perTick = a.stats.update / time.Duration(a.stats.ticks)
	}
	logs.WithTag("ticks", a.stats.ticks).
		WithTag("update_per_tick", perTick.String()).
		WithTag("frames", a.stats.frames).
		WithTag("frames_dropped", a.frames.Dropped()).
		WithTag("redraws", a.stats.redraws).
		WithTag("points", a.session.store.Len()).
		Debug("grid menu stats")

	a.stats = debugStats{since: now}
}
