package page

import "fmt"

const (
	RevealStagger = 90 // ms per sibling

	classInView = "in-view"
	propDelay   = "--d"
)

// Reveal adds the in-view class to each reveal target the first time it
// scrolls into view, staggering siblings through the --d custom property.
// With reduced motion every target is revealed at once.
func Reveal(doc Document, reducedMotion bool) bool {
	targets := doc.QueryAll(SelReveal)
	if len(targets) == 0 {
		return false
	}

	if reducedMotion {
		for _, el := range targets {
			el.AddClass(classInView)
		}
		return true
	}

	var obs Observer
	obs = doc.NewObserver(ObserverOptions{RootMargin: "0px 0px -5% 0px", Threshold: 0.16}, func(entries []Entry) {
		for _, e := range entries {
			if !e.Intersecting {
				continue
			}
			el := e.Target
			if el.Style(propDelay) == "" {
				el.SetStyle(propDelay, fmt.Sprintf("%dms", siblingIndex(el)*RevealStagger))
			}
			el.AddClass(classInView)
			obs.Unobserve(el)
		}
	})
	for _, el := range targets {
		obs.Observe(el)
	}
	return true
}

// siblingIndex is el's position among the reveal targets of its parent.
func siblingIndex(el Element) int {
	parent := el.Parent()
	if parent == nil {
		return 0
	}
	for i, sib := range parent.QueryAll(SelReveal) {
		if sib.Equal(el) {
			return i
		}
	}
	return 0
}
