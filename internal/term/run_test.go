package term

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/ThatOtherAndrew/backdrop/internal/backdrop"
	"github.com/ThatOtherAndrew/backdrop/internal/config"
)

var t0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func newApp(t *testing.T, opts Options, projects ...string) *App {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(s.Fini)
	s.SetSize(20, 10)

	settings := config.Default()
	settings.Projects = projects
	settings.Transition.DurationMs = 100

	a, err := New(s, settings, opts, t0)
	if err != nil {
		t.Fatal(err)
	}
	return a
}

func TestFramePaintsHalfBlocks(t *testing.T) {
	a := newApp(t, Options{})
	if got := a.Animator().Buffer(); got.Width != 20 || got.Height != 20 {
		t.Fatalf("buffer = %+v, want 20x20", got)
	}

	a.Frame(t0.Add(16 * time.Millisecond))

	if ch, _, _, _ := a.screen.GetContent(5, 5); ch != halfBlock {
		t.Errorf("cell rune = %q", ch)
	}
	if a.Animator().Frames() != 1 {
		t.Errorf("frames = %d, want 1", a.Animator().Frames())
	}
}

func TestResize(t *testing.T) {
	a := newApp(t, Options{})
	a.Handle(tcell.NewEventResize(30, 12))
	want := backdrop.Buffer{Width: 30, Height: 24, Ratio: 1.0 / CellWidth}
	if got := a.Animator().Buffer(); got != want {
		t.Errorf("buffer = %+v, want %+v", got, want)
	}
}

func TestQuitKeys(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		quit bool
	}{
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), true},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), true},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), true},
		{"other rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newApp(t, Options{})
			a.Handle(tt.ev)
			if a.Done() != tt.quit {
				t.Errorf("Done() = %v, want %v", a.Done(), tt.quit)
			}
		})
	}
}

func TestArrowNavigatesAfterFade(t *testing.T) {
	var opened []string
	a := newApp(t, Options{Opener: func(url string) error {
		opened = append(opened, url)
		return nil
	}}, "/a", "/b")

	a.Handle(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
	if a.Session().Index() != 1 {
		t.Fatalf("index = %d, want 1", a.Session().Index())
	}

	a.Frame(t0.Add(50 * time.Millisecond))
	if len(opened) != 0 || a.Done() {
		t.Fatalf("navigated before the fade finished: %v", opened)
	}

	a.Frame(t0.Add(200 * time.Millisecond))
	if len(opened) != 1 || opened[0] != "/b" {
		t.Errorf("opened = %v, want [/b]", opened)
	}
	if !a.Done() {
		t.Error("preview should end after navigating in place")
	}
}

func TestArrowWithModifierIgnored(t *testing.T) {
	a := newApp(t, Options{}, "/a", "/b")
	a.Handle(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModAlt))
	if a.Session().Index() != 0 || a.Session().Fade.Active() {
		t.Error("alt+right should not navigate")
	}
}

func TestMouseClickStartsFade(t *testing.T) {
	a := newApp(t, Options{}, "/a")
	a.Handle(tcell.NewEventMouse(3, 2, tcell.Button1, tcell.ModNone))
	if a.Session().Fade.Active() {
		t.Fatal("press alone should not navigate")
	}
	a.Handle(tcell.NewEventMouse(3, 2, tcell.ButtonNone, tcell.ModNone))
	if !a.Session().Fade.Active() {
		t.Error("release should start the transition")
	}
}

func TestMiddleClickOpensNewTab(t *testing.T) {
	var opened []string
	a := newApp(t, Options{Opener: func(url string) error {
		opened = append(opened, url)
		return nil
	}}, "/a")

	a.Handle(tcell.NewEventMouse(3, 2, tcell.Button3, tcell.ModNone))
	a.Frame(t0.Add(200 * time.Millisecond))

	if len(opened) != 1 || opened[0] != "/a" {
		t.Errorf("opened = %v", opened)
	}
	if a.Done() {
		t.Error("opening a new tab should keep the preview running")
	}
	if a.Session().Fade.Active() {
		t.Error("overlay should reset after a new tab")
	}
}

func TestReducedMotionPaintsOnce(t *testing.T) {
	a := newApp(t, Options{Reduced: true})
	a.Frame(t0.Add(16 * time.Millisecond))
	a.Frame(t0.Add(32 * time.Millisecond))
	if a.Animator().Frames() != 0 {
		t.Errorf("frames = %d, want 0", a.Animator().Frames())
	}
	if ch, _, _, _ := a.screen.GetContent(5, 5); ch != halfBlock {
		t.Errorf("static frame not flushed, rune %q", ch)
	}
}
