package page

import (
	"time"

	"github.com/ThatOtherAndrew/backdrop/internal/host"
)

const LoaderHideDelay = 500 * time.Millisecond

// Loader fades the loading overlay out once the page has loaded and takes
// it out of the layout after LoaderHideDelay.
func Loader(doc Document, clock host.Clock) {
	doc.OnLoad(func() {
		loader := doc.Query(SelLoader)
		if loader == nil {
			return
		}
		loader.SetStyle("opacity", "0")
		clock.AfterFunc(LoaderHideDelay, func() {
			loader.SetStyle("display", "none")
		})
	})
}
