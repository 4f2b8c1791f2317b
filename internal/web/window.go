//go:build js && wasm

package web

import (
	"syscall/js"
	"time"

	"github.com/ThatOtherAndrew/backdrop/internal/host"
	"github.com/ThatOtherAndrew/backdrop/internal/page"
	"github.com/ThatOtherAndrew/backdrop/internal/transition"
)

const reducedMotionQuery = "(prefers-reduced-motion: reduce)"

// Window is the browser host: viewport, animation frames, timers, pointer
// input and the reduced motion preference.
type Window struct {
	win    js.Value
	frames []host.FrameFunc
	raf    js.Func
}

var (
	_ host.Host   = (*Window)(nil)
	_ page.Window = (*Window)(nil)
)

func NewWindow() *Window {
	w := &Window{win: js.Global()}
	w.raf = js.FuncOf(func(_ js.Value, args []js.Value) any {
		pending := w.frames
		w.frames = nil
		now := args[0].Float()
		for _, fn := range pending {
			fn(now)
		}
		return nil
	})
	return w
}

func (w *Window) Size() (float64, float64) {
	return w.win.Get("innerWidth").Float(), w.win.Get("innerHeight").Float()
}

// PixelRatio is 0 when the browser does not report one.
func (w *Window) PixelRatio() float64 {
	r := w.win.Get("devicePixelRatio")
	if r.Type() != js.TypeNumber {
		return 0
	}
	return r.Float()
}

func (w *Window) OnResize(fn func()) {
	listen(w.win, "resize", func(js.Value) { fn() })
}

// RequestFrame queues fn for the next animation frame. All callbacks
// queued before a repaint share one requestAnimationFrame.
func (w *Window) RequestFrame(fn host.FrameFunc) {
	if len(w.frames) == 0 {
		w.win.Call("requestAnimationFrame", w.raf)
	}
	w.frames = append(w.frames, fn)
}

func (w *Window) AfterFunc(d time.Duration, fn func()) {
	var cb js.Func
	cb = js.FuncOf(func(js.Value, []js.Value) any {
		cb.Release()
		fn()
		return nil
	})
	w.win.Call("setTimeout", cb, d.Milliseconds())
}

func (w *Window) ReducedMotion() bool {
	mm := w.win.Get("matchMedia")
	if mm.Type() != js.TypeFunction {
		return false
	}
	return w.win.Call("matchMedia", reducedMotionQuery).Get("matches").Bool()
}

func (w *Window) OnPointer(fn func(host.PointerEvent)) {
	at := func(kind host.PointerKind) func(js.Value) {
		return func(e js.Value) {
			fn(host.PointerEvent{Kind: kind, X: e.Get("clientX").Float(), Y: e.Get("clientY").Float()})
		}
	}
	listen(w.win, "mousemove", at(host.PointerMove), passive)
	listen(w.win, "mousedown", at(host.PointerDown))
	listen(w.win, "mouseup", at(host.PointerUp))
	listen(w.win.Get("document").Get("documentElement"), "mouseleave", func(js.Value) {
		fn(host.PointerEvent{Kind: host.PointerLeave})
	})
}

// Navigator changes the browser location.
type Navigator struct {
	win js.Value
}

var _ transition.Navigator = Navigator{}

func NewNavigator() Navigator { return Navigator{win: js.Global()} }

func (n Navigator) Assign(url string) { n.win.Get("location").Call("assign", url) }

func (n Navigator) Open(url string) { n.win.Call("open", url, "_blank", "noopener") }
