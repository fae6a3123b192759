package gridmenu

import "time"

// DefaultResizeWindow is the quiescence window applied to resize requests.
const DefaultResizeWindow = 200 * time.Millisecond

// Debouncer coalesces a burst of values into the last one. Every Push
// restarts the quiescence window; Poll hands the pending value out once the
// window has elapsed without a newer Push. Time is supplied by the caller so
// the debouncer runs inside the owner's event loop without goroutines.
type Debouncer[T any] struct {
	window   time.Duration
	pending  T
	deadline time.Time
	armed    bool
}

// NewDebouncer creates a debouncer with the given quiescence window.
// A non-positive window falls back to DefaultResizeWindow.
func NewDebouncer[T any](window time.Duration) *Debouncer[T] {
	if window <= 0 {
		window = DefaultResizeWindow
	}
	return &Debouncer[T]{window: window}
}

// Window returns the quiescence window.
func (d *Debouncer[T]) Window() time.Duration {
	return d.window
}

// Push records v as the latest value observed at now, replacing any pending
// value and restarting the window.
func (d *Debouncer[T]) Push(v T, now time.Time) {
	d.pending = v
	d.deadline = now.Add(d.window)
	d.armed = true
}

// Pending reports whether a value is waiting for its window to elapse.
func (d *Debouncer[T]) Pending() bool {
	return d.armed
}

// Poll returns the pending value and true if its window has elapsed at now.
// A value is returned at most once.
func (d *Debouncer[T]) Poll(now time.Time) (T, bool) {
	var zero T
	if !d.armed || now.Before(d.deadline) {
		return zero, false
	}
	v := d.pending
	d.pending = zero
	d.armed = false
	return v, true
}

// Cancel drops any pending value.
func (d *Debouncer[T]) Cancel() {
	var zero T
	d.pending = zero
	d.armed = false
}
