package gridmenu

import (
	"sync"
	"testing"
	"time"
)

func depthFrame(d float64) PointerFrame {
	return PointerFrame{Samples: []PointerSample{{Depth: d}}, At: time.Unix(0, 0)}
}

func TestFrameQueueDrainOrder(t *testing.T) {
	q := NewFrameQueue(8)
	for i := 0; i < 5; i++ {
		q.Push(depthFrame(float64(i)))
	}
	if q.Len() != 5 {
		t.Fatalf("Len = %d, want 5", q.Len())
	}

	var got []float64
	n := q.Drain(func(f PointerFrame) { got = append(got, f.Samples[0].Depth) })
	if n != 5 {
		t.Fatalf("Drain = %d, want 5", n)
	}
	for i, d := range got {
		if d != float64(i) {
			t.Errorf("frame %d depth = %v, want %d", i, d, i)
		}
	}
	if q.Drain(func(PointerFrame) { t.Error("drained from empty queue") }) != 0 {
		t.Error("second Drain returned frames")
	}
}

func TestFrameQueueDropsOldest(t *testing.T) {
	q := NewFrameQueue(3)
	for i := 0; i < 5; i++ {
		q.Push(depthFrame(float64(i)))
	}
	if q.Dropped() != 2 {
		t.Errorf("Dropped = %d, want 2", q.Dropped())
	}

	var got []float64
	q.Drain(func(f PointerFrame) { got = append(got, f.Samples[0].Depth) })
	want := []float64{2, 3, 4}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got %v, want %v", got, want)
			break
		}
	}
}

func TestFrameQueueConcurrentPush(t *testing.T) {
	q := NewFrameQueue(0)
	var wg sync.WaitGroup
	for d := 0; d < 4; d++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				q.Push(depthFrame(1))
			}
		}()
	}
	wg.Wait()

	n := q.Drain(func(PointerFrame) {})
	if uint64(n)+q.Dropped() != 400 {
		t.Errorf("drained %d + dropped %d, want 400", n, q.Dropped())
	}
}
