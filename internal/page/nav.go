package page

import "github.com/ThatOtherAndrew/backdrop/internal/transition"

// Navigator is the subset of the transition guard the behaviors use.
type Navigator interface {
	Navigate(url string, newTab bool)
}

// Overlay adapts the transition element to transition.Overlay by toggling
// a class.
type Overlay struct {
	el          Element
	activeClass string
}

var _ transition.Overlay = (*Overlay)(nil)

// NewOverlay returns nil when el is nil, so a missing element reads as no
// overlay.
func NewOverlay(el Element, activeClass string) transition.Overlay {
	if el == nil {
		return nil
	}
	return &Overlay{el: el, activeClass: activeClass}
}

func (o *Overlay) SetActive(active bool) {
	if active {
		o.el.AddClass(o.activeClass)
	} else {
		o.el.RemoveClass(o.activeClass)
	}
}

func (o *Overlay) OnAnimationEnd(fn func()) func() {
	return o.el.OnAnimationEnd(fn)
}

// Cards makes every project card navigate to its data-href through nav.
func Cards(doc Document, nav Navigator) int {
	cards := doc.QueryAll(SelCards)
	for _, card := range cards {
		card.OnClick(func(ev *ClickEvent) {
			href := card.Attr("data-href")
			if href == "" {
				return
			}
			ev.PreventDefault()
			nav.Navigate(href, ev.NewTab())
		})
	}
	return len(cards)
}

// Arrow keys understood by KeyNav.
const (
	KeyLeft  = "ArrowLeft"
	KeyRight = "ArrowRight"
)

// Typing reports whether el takes text input, in which case arrow keys
// belong to it.
func Typing(el Element) bool {
	if el == nil {
		return false
	}
	switch el.Tag() {
	case "INPUT", "TEXTAREA", "SELECT":
		return true
	}
	return el.ContentEditable()
}

// KeyNav follows the previous/next project links with the arrow keys.
func KeyNav(doc Document, nav Navigator) bool {
	prev, next := doc.Query(SelPrev), doc.Query(SelNext)
	if prev == nil && next == nil {
		return false
	}

	doc.OnKeyDown(func(ev *KeyEvent) {
		if ev.Ctrl || ev.Alt || ev.Meta || Typing(ev.Target) {
			return
		}
		var link Element
		switch ev.Key {
		case KeyLeft:
			link = prev
		case KeyRight:
			link = next
		}
		if link == nil {
			return
		}
		href := link.Attr("href")
		if href == "" {
			return
		}
		ev.PreventDefault()
		nav.Navigate(href, false)
	})
	return true
}
