package host

import "time"

type timer struct {
	at time.Time
	fn func()
}

// Driven is a Host for runtimes with their own main loop: Tick runs due
// timers and the pending frames, Pointer and SetSize feed input and window
// changes in.
type Driven struct {
	width, height float64
	ratio         float64
	reduced       bool

	frames  []FrameFunc
	resize  []func()
	pointer []func(PointerEvent)
	timers  []timer

	start time.Time
	now   time.Time
}

var (
	_ Host  = (*Driven)(nil)
	_ Clock = (*Driven)(nil)
)

func NewDriven(width, height, ratio float64, reduced bool, start time.Time) *Driven {
	return &Driven{width: width, height: height, ratio: ratio, reduced: reduced, start: start, now: start}
}

func (h *Driven) Size() (float64, float64) { return h.width, h.height }
func (h *Driven) PixelRatio() float64      { return h.ratio }
func (h *Driven) ReducedMotion() bool      { return h.reduced }

func (h *Driven) OnResize(fn func())              { h.resize = append(h.resize, fn) }
func (h *Driven) OnPointer(fn func(PointerEvent)) { h.pointer = append(h.pointer, fn) }

// RequestFrame queues fn for the next tick. Every request runs once, in
// the order it was made.
func (h *Driven) RequestFrame(fn FrameFunc) { h.frames = append(h.frames, fn) }

func (h *Driven) AfterFunc(d time.Duration, fn func()) {
	h.timers = append(h.timers, timer{at: h.now.Add(d), fn: fn})
}

// SetSize updates the viewport and notifies resize listeners when it
// changed.
func (h *Driven) SetSize(width, height, ratio float64) bool {
	if width == h.width && height == h.height && ratio == h.ratio {
		return false
	}
	h.width, h.height, h.ratio = width, height, ratio
	for _, fn := range h.resize {
		fn()
	}
	return true
}

func (h *Driven) Pointer(ev PointerEvent) {
	for _, fn := range h.pointer {
		fn(ev)
	}
}

// Tick runs the timers due at now, then the frames requested before the
// call with the time since start in milliseconds. Frames requested while
// they run wait for the next tick.
func (h *Driven) Tick(now time.Time) {
	h.now = now

	var keep []timer
	var due []func()
	for _, t := range h.timers {
		if !now.Before(t.at) {
			due = append(due, t.fn)
		} else {
			keep = append(keep, t)
		}
	}
	h.timers = keep
	for _, fn := range due {
		fn()
	}

	ms := float64(now.Sub(h.start)) / float64(time.Millisecond)
	pending := h.frames
	h.frames = nil
	for _, fn := range pending {
		fn(ms)
	}
}
