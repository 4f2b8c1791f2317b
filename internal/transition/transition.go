// Package transition serializes outbound navigation behind a full-screen
// overlay animation.
package transition

import "github.com/ThatOtherAndrew/backdrop/internal/logger"

// Overlay is the full-screen element masking a navigation change.
type Overlay interface {
	SetActive(active bool)
	// OnAnimationEnd registers fn for the overlay's out-animation completion
	// and returns a function that unregisters it.
	OnAnimationEnd(fn func()) (cancel func())
}

// Navigator performs the actual navigation.
type Navigator interface {
	Assign(url string)
	Open(url string)
}

type Guard struct {
	nav        Navigator
	overlay    Overlay
	navigating bool
	pending    func()
}

// New returns a guard. A nil overlay makes every navigation immediate.
func New(nav Navigator, overlay Overlay) *Guard {
	return &Guard{nav: nav, overlay: overlay}
}

// Navigate leaves the page once the overlay animation has finished. A
// new-tab request also waits for the animation, then resets the overlay.
//
// Without an overlay the navigation happens at once. While a transition is
// already running a new-tab request opens immediately and a same-tab
// request is dropped, since the pending transition leaves the page anyway.
func (g *Guard) Navigate(url string, newTab bool) {
	log := logger.For("transition")

	if g.overlay == nil {
		g.immediate(url, newTab)
		return
	}
	if g.navigating {
		if newTab {
			g.nav.Open(url)
			return
		}
		log.Debug("navigation already in progress, dropping", "url", url)
		return
	}

	g.navigating = true
	g.overlay.SetActive(true)

	fired := false
	g.pending = g.overlay.OnAnimationEnd(func() {
		if fired {
			return
		}
		fired = true
		g.release()
		log.Debug("transition finished", "url", url, "new_tab", newTab)
		if newTab {
			// The current page stays, so put it back the way it was.
			g.nav.Open(url)
			g.PageShow()
			return
		}
		g.nav.Assign(url)
	})
}

// PageShow resets the guard and the overlay, which a history restore may
// have left active.
func (g *Guard) PageShow() {
	g.release()
	g.navigating = false
	if g.overlay != nil {
		g.overlay.SetActive(false)
	}
}

func (g *Guard) Navigating() bool { return g.navigating }

// release unregisters the completion listener, if one is waiting.
func (g *Guard) release() {
	if g.pending != nil {
		g.pending()
		g.pending = nil
	}
}

func (g *Guard) immediate(url string, newTab bool) {
	if newTab {
		g.nav.Open(url)
		return
	}
	g.nav.Assign(url)
}
