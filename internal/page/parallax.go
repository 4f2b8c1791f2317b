package page

import (
	"fmt"
	"math"
	"strconv"

	"github.com/ThatOtherAndrew/backdrop/internal/host"
)

// MaxParallaxShift is the travel, in pixels, of the deepest layer.
const MaxParallaxShift = 40

// ParallaxProgress is how far the wrapper has moved through the viewport:
// 0 entering at the bottom, 1 leaving at the top.
func ParallaxProgress(r Rect, viewH float64) float64 {
	p := (r.Top + r.Height/2) / (viewH + r.Height/2)
	if math.IsNaN(p) {
		p = 0
	}
	return 1 - math.Min(math.Max(p, 0), 1)
}

// ParallaxShift centres the shift around the middle of the scroll range.
func ParallaxShift(depth, progress float64) float64 {
	return depth / 3 * MaxParallaxShift * (progress - 0.5)
}

func ParallaxTransform(shift float64) string {
	return fmt.Sprintf("translate3d(0, %.2fpx, 0)", shift)
}

// layerDepth reads data-depth. Missing or unparsable depths count as 1.
func layerDepth(el Element) float64 {
	d, err := strconv.ParseFloat(el.Attr("data-depth"), 64)
	if err != nil || math.IsNaN(d) || math.IsInf(d, 0) {
		return 1
	}
	return d
}

// Parallax shifts the hero layers as the page scrolls, at most once per
// repaint. It is disabled under reduced motion.
func Parallax(doc Document, sched host.Scheduler, reducedMotion bool) bool {
	if reducedMotion {
		return false
	}
	wrap := doc.Query(SelHero)
	if wrap == nil {
		wrap = doc.Query(SelParallaxWrap)
	}
	if wrap == nil {
		return false
	}
	layers := wrap.QueryAll(SelParallax)
	if len(layers) == 0 {
		return false
	}

	ticking := false
	apply := func(float64) {
		r := wrap.Rect()
		viewH := doc.ViewHeight()
		if r.Bottom >= 0 && r.Top <= viewH {
			progress := ParallaxProgress(r, viewH)
			for _, layer := range layers {
				layer.SetStyle("transform", ParallaxTransform(ParallaxShift(layerDepth(layer), progress)))
			}
		}
		ticking = false
	}

	doc.OnScroll(func() {
		if ticking {
			return
		}
		ticking = true
		sched.RequestFrame(apply)
	})
	apply(0)
	return true
}
