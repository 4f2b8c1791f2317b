package host

import (
	"testing"
	"time"
)

func TestDrivenTick(t *testing.T) {
	start := time.Unix(1000, 0)
	h := NewDriven(800, 600, 1, false, start)

	var got []float64
	var frame FrameFunc
	frame = func(now float64) {
		got = append(got, now)
		h.RequestFrame(frame)
	}
	h.RequestFrame(frame)

	fired := false
	h.AfterFunc(500*time.Millisecond, func() { fired = true })

	h.Tick(start.Add(16 * time.Millisecond))
	h.Tick(start.Add(32 * time.Millisecond))
	if fired {
		t.Error("timer fired early")
	}
	h.Tick(start.Add(500 * time.Millisecond))
	if !fired {
		t.Error("timer did not fire")
	}

	if len(got) != 3 || got[0] != 16 || got[1] != 32 || got[2] != 500 {
		t.Errorf("frame timestamps %v", got)
	}
}

func TestDrivenSetSize(t *testing.T) {
	h := NewDriven(800, 600, 1, false, time.Now())
	calls := 0
	h.OnResize(func() { calls++ })

	if h.SetSize(800, 600, 1) {
		t.Error("unchanged size reported as a resize")
	}
	if !h.SetSize(1024, 768, 2) || calls != 1 {
		t.Errorf("resize not notified, calls = %d", calls)
	}
	if w, ht := h.Size(); w != 1024 || ht != 768 || h.PixelRatio() != 2 {
		t.Errorf("size %vx%v @%v", w, ht, h.PixelRatio())
	}
}

func TestDrivenRunsEveryRequestedFrame(t *testing.T) {
	start := time.Unix(1000, 0)
	h := NewDriven(800, 600, 1, false, start)

	var order []string
	h.RequestFrame(func(float64) { order = append(order, "a") })
	h.RequestFrame(func(float64) {
		order = append(order, "b")
		h.RequestFrame(func(float64) { order = append(order, "c") })
	})

	h.Tick(start.Add(16 * time.Millisecond))
	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Fatalf("first tick ran %v", order)
	}
	h.Tick(start.Add(32 * time.Millisecond))
	if len(order) != 3 || order[2] != "c" {
		t.Errorf("frame requested during a tick ran %v", order)
	}
}
