package gridmenu

import (
	"time"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	errTypeLabel = "error_type"
	reasonLabel  = "reason"
)

var (
	framesProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gridmenu_pointer_frames",
		Help: "The number of pointer frames consumed.",
	})

	touchesFired = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gridmenu_touches_fired",
		Help: "The number of touches fired.",
	})

	indexRebuilds = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gridmenu_index_rebuilds",
		Help: "The number of spatial index rebuilds, by triggering event.",
	}, []string{
		reasonLabel,
	})

	dispatchErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gridmenu_dispatch_errors",
		Help: "The recoverable errors raised while dispatching events.",
	}, []string{
		errTypeLabel,
	})

	pointCount = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "gridmenu_points",
		Help: "The number of menu points.",
	})

	frameLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "gridmenu_frame_seconds",
		Help:    "The time spent stepping the touch machine for one pointer frame.",
		Buckets: prometheus.ExponentialBuckets(1e-7, 4, 10),
	})
)

func instrumentFrame(start time.Time, fired bool) {
	framesProcessed.Inc()
	frameLatency.Observe(time.Since(start).Seconds())
	if fired {
		touchesFired.Inc()
	}
}

func instrumentRebuild(reason string, points int) {
	indexRebuilds.With(prometheus.Labels{
		reasonLabel: reason,
	}).Inc()
	pointCount.Set(float64(points))
}

func instrumentDispatchError(err error) {
	dispatchErrors.
		With(prometheus.Labels{
			errTypeLabel: errors.Type(err),
		}).
		Inc()
}
