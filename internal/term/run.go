package term

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/ThatOtherAndrew/backdrop/internal/backdrop"
	"github.com/ThatOtherAndrew/backdrop/internal/config"
	"github.com/ThatOtherAndrew/backdrop/internal/host"
	"github.com/ThatOtherAndrew/backdrop/internal/logger"
	"github.com/ThatOtherAndrew/backdrop/internal/page"
	"github.com/ThatOtherAndrew/backdrop/internal/preview"
)

const DefaultFPS = 30

type Options struct {
	// Screen is used instead of the real terminal when set.
	Screen  tcell.Screen
	Reduced bool
	Opener  func(url string) error
	FPS     int
}

type App struct {
	screen   tcell.Screen
	host     *host.Driven
	canvas   *Canvas
	session  *preview.Session
	animator *backdrop.Animator

	last    time.Time
	pressed tcell.ButtonMask
	quit    bool
}

// New attaches the background to an initialised screen.
func New(screen tcell.Screen, s *config.Settings, opts Options, now time.Time) (*App, error) {
	cols, rows := screen.Size()
	a := &App{
		screen: screen,
		host:   host.NewDriven(float64(cols*CellWidth), float64(rows*CellHeight), 1.0/CellWidth, opts.Reduced, now),
		canvas: NewCanvas(),
		last:   now,
	}
	a.session = preview.NewSession(s.Projects,
		preview.Launcher{Opener: opts.Opener, Quit: func() { a.quit = true }},
		time.Duration(s.Transition.DurationMs)*time.Millisecond)

	a.animator = backdrop.Start(a.host, a.canvas, s)
	if a.animator == nil {
		return nil, fmt.Errorf("could not start background")
	}
	return a, nil
}

func (a *App) Done() bool                   { return a.quit }
func (a *App) Session() *preview.Session    { return a.session }
func (a *App) Animator() *backdrop.Animator { return a.animator }

func mods(m tcell.ModMask) (ctrl, shift, alt, meta bool) {
	return m&tcell.ModCtrl != 0, m&tcell.ModShift != 0, m&tcell.ModAlt != 0, m&tcell.ModMeta != 0
}

// cellCenter maps a cell to the CSS pixel at its centre.
func cellCenter(x, y int) (float64, float64) {
	return (float64(x) + 0.5) * CellWidth, (float64(y) + 0.5) * CellHeight
}

func (a *App) Handle(ev tcell.Event) {
	switch e := ev.(type) {
	case *tcell.EventResize:
		cols, rows := e.Size()
		a.host.SetSize(float64(cols*CellWidth), float64(rows*CellHeight), 1.0/CellWidth)
		a.screen.Sync()
	case *tcell.EventKey:
		a.key(e)
	case *tcell.EventMouse:
		a.mouse(e)
	case *tcell.EventFocus:
		if !e.Focused {
			a.host.Pointer(host.PointerEvent{Kind: host.PointerLeave})
		}
	}
}

func (a *App) key(e *tcell.EventKey) {
	ctrl, shift, alt, meta := mods(e.Modifiers())
	switch e.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		a.quit = true
	case tcell.KeyRune:
		if r := e.Rune(); r == 'q' || r == 'Q' {
			a.quit = true
		}
	case tcell.KeyLeft, tcell.KeyRight:
		name := page.KeyLeft
		if e.Key() == tcell.KeyRight {
			name = page.KeyRight
		}
		a.session.Key(page.KeyEvent{Key: name, Ctrl: ctrl, Shift: shift, Alt: alt, Meta: meta})
	case tcell.KeyEnter:
		a.session.Click(page.ClickEvent{Ctrl: ctrl, Shift: shift, Alt: alt, Meta: meta})
	}
}

func (a *App) mouse(e *tcell.EventMouse) {
	x, y := cellCenter(e.Position())
	a.host.Pointer(host.PointerEvent{Kind: host.PointerMove, X: x, Y: y})

	btn := e.Buttons() & (tcell.Button1 | tcell.Button3)
	pressed, released := btn&^a.pressed, a.pressed&^btn
	a.pressed = btn
	if pressed&tcell.Button1 != 0 {
		a.host.Pointer(host.PointerEvent{Kind: host.PointerDown, X: x, Y: y})
	}
	if released&tcell.Button1 != 0 {
		a.host.Pointer(host.PointerEvent{Kind: host.PointerUp, X: x, Y: y})
		ctrl, shift, alt, meta := mods(e.Modifiers())
		a.session.Click(page.ClickEvent{Ctrl: ctrl, Shift: shift, Alt: alt, Meta: meta})
	}
	if pressed&tcell.Button3 != 0 {
		a.session.Click(page.ClickEvent{Button: 1})
	}
}

// Frame advances the fade and the background to now and draws the result.
func (a *App) Frame(now time.Time) {
	a.session.Tick(now.Sub(a.last))
	a.last = now
	a.host.Tick(now)

	dim := 0.0
	if a.session.Fade.Active() {
		dim = a.session.Fade.Alpha()
	}
	a.canvas.Flush(a.screen, dim)

	label := "no projects configured"
	if n := a.session.Len(); n > 0 {
		label = fmt.Sprintf("%d/%d %s", a.session.Index()+1, n, a.session.Current())
	}
	drawText(a.screen, 1, 0, label+"  ←/→ navigate  enter: open  q: quit",
		tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack))
	a.screen.Show()
}

func drawText(s tcell.Screen, x, y int, text string, st tcell.Style) {
	i := 0
	for _, ch := range text {
		s.SetContent(x+i, y, ch, nil, st)
		i++
	}
}

// Run shows the background in the terminal until the user quits, a
// project is opened in place or ctx is cancelled.
func Run(ctx context.Context, s *config.Settings, opts Options) error {
	screen := opts.Screen
	if screen == nil {
		var err error
		if screen, err = tcell.NewScreen(); err != nil {
			return fmt.Errorf("opening terminal: %w", err)
		}
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initialising terminal: %w", err)
	}
	defer screen.Fini()
	screen.Clear()
	screen.HideCursor()
	screen.EnableMouse()
	screen.EnableFocus()

	a, err := New(screen, s, opts, time.Now())
	if err != nil {
		return err
	}

	events := make(chan tcell.Event, 32)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	fps := opts.FPS
	if fps <= 0 {
		fps = DefaultFPS
	}
	tick := time.NewTicker(time.Second / time.Duration(fps))
	defer tick.Stop()

	logger.For("term").Info("preview running", "variant", s.Variant, "projects", len(s.Projects))
	for !a.Done() {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			a.Handle(ev)
		case now := <-tick.C:
			a.Frame(now)
		}
	}
	return nil
}
