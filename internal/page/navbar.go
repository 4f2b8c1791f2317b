package page

import "strings"

const (
	NavbarHideThreshold = 100

	classHidden = "hidden"
	classActive = "active"
)

// ScrollState remembers the last scroll position seen by the navbar.
type ScrollState struct {
	Last float64
}

// Hide reports whether the navbar should be hidden at scroll position y,
// and records y.
func (s *ScrollState) Hide(y float64) bool {
	hide := y > s.Last && y > NavbarHideThreshold
	s.Last = y
	return hide
}

// Navbar hides the bar while scrolling down and highlights the link of the
// section currently in the middle of the viewport. It returns false when
// the bar or its links are missing.
func Navbar(doc Document, state *ScrollState) bool {
	navbar := doc.Query(SelNavbar)
	links := doc.QueryAll(SelNavLinks)
	if navbar == nil || len(links) == 0 {
		return false
	}

	byID := make(map[string]Element, len(links))
	var sections []Element
	for _, a := range links {
		href := a.Attr("href")
		if !strings.HasPrefix(href, "#") || len(href) < 2 {
			continue
		}
		if sec := doc.Query(href); sec != nil {
			sections = append(sections, sec)
			byID[href] = a
		}
	}

	obs := doc.NewObserver(ObserverOptions{RootMargin: "-40% 0px -50% 0px", Threshold: 0.01}, func(entries []Entry) {
		for _, e := range entries {
			link, ok := byID["#"+e.Target.ID()]
			if !ok || !e.Intersecting {
				continue
			}
			for _, a := range links {
				a.RemoveClass(classActive)
			}
			link.AddClass(classActive)
		}
	})
	for _, sec := range sections {
		obs.Observe(sec)
	}

	doc.OnScroll(func() {
		if state.Hide(doc.ScrollY()) {
			navbar.AddClass(classHidden)
		} else {
			navbar.RemoveClass(classHidden)
		}
	})
	return true
}
