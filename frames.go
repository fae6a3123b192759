package gridmenu

import "sync/atomic"

// DefaultFrameQueueSize is the number of frames buffered between a device
// driver and the event loop.
const DefaultFrameQueueSize = 256

// FrameQueue hands pointer frames from a device driver goroutine to the
// event loop. Push never blocks: when the buffer is full the oldest frame is
// dropped. Drain is called from the loop once per tick and delivers frames
// in arrival order.
type FrameQueue struct {
	ch      chan PointerFrame
	dropped atomic.Uint64
}

// NewFrameQueue creates a queue buffering up to size frames.
func NewFrameQueue(size int) *FrameQueue {
	if size <= 0 {
		size = DefaultFrameQueueSize
	}
	return &FrameQueue{ch: make(chan PointerFrame, size)}
}

// Push enqueues f. Safe for concurrent use by any number of drivers.
func (q *FrameQueue) Push(f PointerFrame) {
	for {
		select {
		case q.ch <- f:
			return
		default:
		}
		select {
		case <-q.ch:
			q.dropped.Add(1)
		default:
		}
	}
}

// Drain delivers every frame queued so far to fn and returns how many were
// delivered. Frames pushed while draining may be left for the next call.
func (q *FrameQueue) Drain(fn func(PointerFrame)) int {
	n := 0
	for {
		select {
		case f := <-q.ch:
			fn(f)
			n++
		default:
			return n
		}
	}
}

// Len returns the number of queued frames.
func (q *FrameQueue) Len() int {
	return len(q.ch)
}

// Dropped returns how many frames were discarded because the queue was full.
func (q *FrameQueue) Dropped() uint64 {
	return q.dropped.Load()
}
