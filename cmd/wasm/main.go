//go:build js && wasm

// Command wasm mounts the background and the page behaviors in a browser.
package main

import (
	"log/slog"
	"os"

	"github.com/ThatOtherAndrew/backdrop/internal/backdrop"
	"github.com/ThatOtherAndrew/backdrop/internal/config"
	"github.com/ThatOtherAndrew/backdrop/internal/logger"
	"github.com/ThatOtherAndrew/backdrop/internal/page"
	"github.com/ThatOtherAndrew/backdrop/internal/web"
)

func main() {
	logger.SetLogger(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelWarn})))

	settings := config.Default()
	doc, win := web.NewDocument(), web.NewWindow()

	if canvas := web.FindCanvas(); canvas != nil {
		if v := canvas.Data("variant"); v != "" {
			settings.Variant = config.Variant(v)
			settings.Normalize()
		}
		backdrop.Start(win, canvas, settings)
	}
	page.Mount(doc, win, web.NewNavigator(), settings)

	select {}
}
