// Package desktop runs the background and the project navigation in an
// ebiten window.
package desktop

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/ThatOtherAndrew/backdrop/internal/backdrop"
	"github.com/ThatOtherAndrew/backdrop/internal/config"
	"github.com/ThatOtherAndrew/backdrop/internal/host"
	"github.com/ThatOtherAndrew/backdrop/internal/logger"
	"github.com/ThatOtherAndrew/backdrop/internal/page"
	"github.com/ThatOtherAndrew/backdrop/internal/preview"
	"github.com/ThatOtherAndrew/backdrop/internal/shaders"
)

// ClickTime is the longest press still treated as a click rather than a
// hold.
const ClickTime = 250 * time.Millisecond

var overlayColor = color.NRGBA{R: 5, G: 8, B: 7}

type Options struct {
	Width, Height int
	Reduced       bool
	Opener        func(url string) error
}

type Game struct {
	host     *host.Driven
	canvas   *Canvas
	session  *preview.Session
	settings *config.Settings

	track     tracker
	pressedAt time.Time
	last      time.Time
	quit      bool
}

// Run opens the preview window and blocks until it is closed or a project
// is opened in place.
func Run(s *config.Settings, opts Options) error {
	wash, err := shaders.CompileWash()
	if err != nil {
		return err
	}

	now := time.Now()
	g := &Game{
		host:     host.NewDriven(float64(opts.Width), float64(opts.Height), 1, opts.Reduced, now),
		canvas:   NewCanvas(wash),
		settings: s,
		last:     now,
	}
	g.session = preview.NewSession(s.Projects,
		preview.Launcher{Opener: opts.Opener, Quit: func() { g.quit = true }},
		time.Duration(s.Transition.DurationMs)*time.Millisecond)

	if backdrop.Start(g.host, g.canvas, s) == nil {
		return fmt.Errorf("could not start background")
	}

	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowTitle("backdrop")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	logger.For("desktop").Info("preview running", "variant", s.Variant, "projects", len(s.Projects))
	return ebiten.RunGame(g)
}

func modifiers() page.KeyEvent {
	return page.KeyEvent{
		Ctrl:  ebiten.IsKeyPressed(ebiten.KeyControl),
		Shift: ebiten.IsKeyPressed(ebiten.KeyShift),
		Alt:   ebiten.IsKeyPressed(ebiten.KeyAlt),
		Meta:  ebiten.IsKeyPressed(ebiten.KeyMeta),
	}
}

func (g *Game) Update() error {
	now := time.Now()
	dt := now.Sub(g.last)
	g.last = now

	if g.quit || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	r := g.host.PixelRatio()
	cx, cy := ebiten.CursorPosition()
	x, y := float64(cx)/r, float64(cy)/r
	w, h := g.host.Size()
	inside := ebiten.IsFocused() && x >= 0 && y >= 0 && x < w && y < h
	down := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	for _, ev := range g.track.sample(x, y, inside, down) {
		g.host.Pointer(ev)
	}

	mods := modifiers()
	for key, name := range map[ebiten.Key]string{ebiten.KeyArrowLeft: page.KeyLeft, ebiten.KeyArrowRight: page.KeyRight} {
		if inpututil.IsKeyJustPressed(key) {
			ev := mods
			ev.Key = name
			g.session.Key(ev)
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.pressedAt = now
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) && inside && now.Sub(g.pressedAt) <= ClickTime {
		g.session.Click(page.ClickEvent{Ctrl: mods.Ctrl, Shift: mods.Shift, Alt: mods.Alt, Meta: mods.Meta})
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonMiddle) && inside {
		g.session.Click(page.ClickEvent{Button: 1})
	}

	g.session.Tick(dt)
	g.host.Tick(now)
	if g.quit {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if img := g.canvas.Image(); img != nil {
		screen.DrawImage(img, nil)
	}

	if g.session.Fade.Active() {
		b := screen.Bounds()
		c := overlayColor
		c.A = uint8(g.session.Fade.Alpha()*255 + 0.5)
		vector.DrawFilledRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), c, false)
	}

	label := "no projects configured"
	if n := g.session.Len(); n > 0 {
		label = fmt.Sprintf("%d/%d %s", g.session.Index()+1, n, g.session.Current())
	}
	ebitenutil.DebugPrintAt(screen, label+"   arrows: navigate  click: open  esc: quit", 8, 8)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	ratio := backdrop.ClampRatio(ebiten.Monitor().DeviceScaleFactor(), g.settings.MaxPixelRatio)
	g.host.SetSize(float64(outsideWidth), float64(outsideHeight), ratio)
	b := backdrop.BufferSize(float64(outsideWidth), float64(outsideHeight), ratio, g.settings.MaxPixelRatio)
	return max(b.Width, 1), max(b.Height, 1)
}

// tracker turns polled cursor state into pointer events.
type tracker struct {
	inside, down bool
	x, y         float64
}

func (t *tracker) sample(x, y float64, inside, down bool) []host.PointerEvent {
	var evs []host.PointerEvent
	switch {
	case inside && (!t.inside || x != t.x || y != t.y):
		evs = append(evs, host.PointerEvent{Kind: host.PointerMove, X: x, Y: y})
	case !inside && t.inside:
		evs = append(evs, host.PointerEvent{Kind: host.PointerLeave})
	}
	if down != t.down {
		kind := host.PointerUp
		if down {
			kind = host.PointerDown
		}
		evs = append(evs, host.PointerEvent{Kind: kind, X: x, Y: y})
	}
	t.inside, t.down, t.x, t.y = inside, down, x, y
	return evs
}
