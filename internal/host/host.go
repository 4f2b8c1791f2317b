// Package host describes the capabilities a runtime lends to the
// background animation and the page behaviors: a viewport, a repaint
// scheduler, pointer and keyboard input, user preferences and a clock.
//
// The browser, the desktop preview, the terminal preview and the headless
// renderer each provide their own implementation; tests use hosttest.
package host

import "time"

type Viewport interface {
	// Size is in CSS pixels.
	Size() (width, height float64)
	PixelRatio() float64
	OnResize(func())
}

// FrameFunc receives the host timestamp of the repaint in milliseconds.
type FrameFunc func(now float64)

// Scheduler runs fn once at the next repaint opportunity. Hosts guarantee
// that frames never overlap.
type Scheduler interface {
	RequestFrame(fn FrameFunc)
}

type PointerKind int

const (
	PointerMove PointerKind = iota
	PointerLeave
	PointerDown
	PointerUp
)

type PointerEvent struct {
	Kind PointerKind
	X, Y float64
}

type Input interface {
	OnPointer(func(PointerEvent))
}

type Preferences interface {
	ReducedMotion() bool
}

type Clock interface {
	AfterFunc(d time.Duration, fn func())
}

// Host bundles the capabilities needed by the background animation.
type Host interface {
	Viewport
	Scheduler
	Input
	Preferences
}
