// Package hosttest provides a scriptable host for tests: frames run only
// when the test asks for them, with the timestamp the test chooses.
package hosttest

import (
	"time"

	"github.com/ThatOtherAndrew/backdrop/internal/host"
)

type Host struct {
	Width, Height float64
	Ratio         float64
	Reduced       bool

	pending  []host.FrameFunc
	resize   []func()
	pointer  []func(host.PointerEvent)
	timers   []timer
	Requests int
}

type timer struct {
	d  time.Duration
	fn func()
}

func New(width, height, ratio float64) *Host {
	return &Host{Width: width, Height: height, Ratio: ratio}
}

func (h *Host) Size() (float64, float64) { return h.Width, h.Height }
func (h *Host) PixelRatio() float64      { return h.Ratio }
func (h *Host) ReducedMotion() bool      { return h.Reduced }

func (h *Host) OnResize(fn func()) { h.resize = append(h.resize, fn) }

func (h *Host) OnPointer(fn func(host.PointerEvent)) { h.pointer = append(h.pointer, fn) }

func (h *Host) RequestFrame(fn host.FrameFunc) {
	h.Requests++
	h.pending = append(h.pending, fn)
}

func (h *Host) AfterFunc(d time.Duration, fn func()) {
	h.timers = append(h.timers, timer{d: d, fn: fn})
}

// Pending reports how many frame callbacks are waiting.
func (h *Host) Pending() int { return len(h.pending) }

// Frame runs the callbacks that were pending when it was called.
func (h *Host) Frame(now float64) {
	run := h.pending
	h.pending = nil
	for _, fn := range run {
		fn(now)
	}
}

func (h *Host) Resize(width, height float64) {
	h.Width, h.Height = width, height
	for _, fn := range h.resize {
		fn()
	}
}

func (h *Host) Pointer(ev host.PointerEvent) {
	for _, fn := range h.pointer {
		fn(ev)
	}
}

// Advance fires every timer whose delay is at most d.
func (h *Host) Advance(d time.Duration) {
	var keep []timer
	for _, t := range h.timers {
		if t.d <= d {
			t.fn()
		} else {
			keep = append(keep, timer{d: t.d - d, fn: t.fn})
		}
	}
	h.timers = keep
}
