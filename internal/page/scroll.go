package page

// AnchorGap is the space left between the navbar and a scrolled-to section.
const AnchorGap = 8

// ScrollTarget is the document offset that puts an element whose viewport
// top is top just below a navbar of the given height.
func ScrollTarget(top, scrollY, navbarHeight float64) float64 {
	return top + scrollY - navbarHeight - AnchorGap
}

// SmoothScroll makes in-page anchors scroll to their section, offset by the
// navbar height. Scrolling jumps instead when reduced motion is preferred.
func SmoothScroll(doc Document, reducedMotion bool) {
	header := doc.Query(SelNavbar)

	for _, anchor := range doc.QueryAll(SelAnchors) {
		anchor.OnClick(func(ev *ClickEvent) {
			id := anchor.Attr("href")
			if id == "" || id == "#" {
				return
			}
			target := doc.Query(id)
			if target == nil {
				return
			}
			ev.PreventDefault()

			var h float64
			if header != nil {
				h = header.OffsetHeight()
			}
			doc.ScrollTo(ScrollTarget(target.Rect().Top, doc.ScrollY(), h), !reducedMotion)
		})
	}
}
