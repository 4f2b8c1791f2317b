package page

import (
	"github.com/ThatOtherAndrew/backdrop/internal/config"
	"github.com/ThatOtherAndrew/backdrop/internal/logger"
	"github.com/ThatOtherAndrew/backdrop/internal/transition"
)

// Page holds the state shared by the mounted behaviors.
type Page struct {
	Guard  *transition.Guard
	Scroll *ScrollState

	Navbar, Reveal, Parallax, KeyNav bool
	Cards                            int
}

// Mount attaches every behavior to doc once. nav performs the actual
// navigation for the transition guard.
func Mount(doc Document, win Window, nav transition.Navigator, s *config.Settings) *Page {
	reduced := win.ReducedMotion()
	p := &Page{
		Guard:  transition.New(nav, NewOverlay(doc.Query(SelOverlay), s.Transition.ActiveClass)),
		Scroll: &ScrollState{},
	}

	Loader(doc, win)
	p.Navbar = Navbar(doc, p.Scroll)
	SmoothScroll(doc, reduced)
	p.Reveal = Reveal(doc, reduced)
	p.Parallax = Parallax(doc, win, reduced)
	p.Cards = Cards(doc, p.Guard)
	p.KeyNav = KeyNav(doc, p.Guard)
	doc.OnPageShow(p.Guard.PageShow)

	logger.For("page").Debug("mounted",
		"reduced_motion", reduced,
		"navbar", p.Navbar,
		"reveal", p.Reveal,
		"parallax", p.Parallax,
		"cards", p.Cards,
		"keynav", p.KeyNav)
	return p
}
