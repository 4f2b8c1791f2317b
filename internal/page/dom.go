// Package page wires the site behaviors onto a document: loader, navbar,
// smooth scrolling, reveal-on-scroll, parallax, project cards and keyboard
// navigation. Every behavior looks up its elements once and quietly does
// nothing when they are missing.
package page

import "github.com/ThatOtherAndrew/backdrop/internal/host"

// Selectors used to find the page structure.
const (
	SelLoader       = ".loader"
	SelNavbar       = ".navbar"
	SelNavLinks     = ".nav-links a"
	SelAnchors      = `a[href^="#"]`
	SelReveal       = ".reveal"
	SelHero         = ".hero"
	SelParallaxWrap = ".parallax-wrap"
	SelParallax     = ".parallax"
	SelCards        = ".project-card[data-href]"
	SelPrev         = ".project-nav a.prev"
	SelNext         = ".project-nav a.next"
	SelOverlay      = ".page-transition"
)

type Rect struct {
	Top, Bottom, Height float64
}

type Element interface {
	Equal(other Element) bool
	Parent() Element
	QueryAll(selector string) []Element

	ID() string
	Tag() string
	Attr(name string) string
	ContentEditable() bool

	AddClass(name string)
	RemoveClass(name string)
	HasClass(name string) bool

	// Style reads an inline style property, custom properties included.
	Style(prop string) string
	SetStyle(prop, value string)

	// Rect is the bounding box relative to the viewport.
	Rect() Rect
	OffsetHeight() float64

	// OnClick receives primary and auxiliary button clicks.
	OnClick(fn func(*ClickEvent))
	OnAnimationEnd(fn func()) (cancel func())
}

type ObserverOptions struct {
	RootMargin string
	Threshold  float64
}

type Entry struct {
	Target       Element
	Intersecting bool
}

type Observer interface {
	Observe(el Element)
	Unobserve(el Element)
}

type Document interface {
	// Query returns nil when nothing matches.
	Query(selector string) Element
	QueryAll(selector string) []Element

	ScrollY() float64
	ViewHeight() float64
	ScrollTo(top float64, smooth bool)

	OnLoad(fn func())
	OnScroll(fn func())
	OnKeyDown(fn func(*KeyEvent))
	OnPageShow(fn func())

	NewObserver(opts ObserverOptions, fn func([]Entry)) Observer
}

// Window is what the behaviors need from the runtime besides the document.
type Window interface {
	host.Scheduler
	host.Clock
	host.Preferences
}

type ClickEvent struct {
	Button                 int
	Ctrl, Shift, Alt, Meta bool

	Prevent   func()
	prevented bool
}

func (e *ClickEvent) PreventDefault() {
	if e.prevented {
		return
	}
	e.prevented = true
	if e.Prevent != nil {
		e.Prevent()
	}
}

func (e *ClickEvent) DefaultPrevented() bool { return e.prevented }

// NewTab reports whether the click asks for a new tab: a modifier key or
// the middle button.
func (e *ClickEvent) NewTab() bool {
	return e.Ctrl || e.Meta || e.Shift || e.Button == 1
}

type KeyEvent struct {
	Key                    string
	Ctrl, Shift, Alt, Meta bool
	Target                 Element

	Prevent func()
}

func (e *KeyEvent) PreventDefault() {
	if e.Prevent != nil {
		e.Prevent()
	}
}
