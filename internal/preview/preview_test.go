package preview

import (
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/ThatOtherAndrew/backdrop/internal/page"
)

type opener struct {
	urls []string
	err  error
}

func (o *opener) open(url string) error {
	o.urls = append(o.urls, url)
	return o.err
}

func session(projects ...string) (*Session, *opener, *bool) {
	o := &opener{}
	quit := false
	s := NewSession(projects, Launcher{Opener: o.open, Quit: func() { quit = true }}, 800*time.Millisecond)
	return s, o, &quit
}

func TestKeyNavigatesAfterFade(t *testing.T) {
	s, o, quit := session("https://a.example", "https://b.example", "https://c.example")

	if !s.Key(page.KeyEvent{Key: page.KeyRight}) {
		t.Fatal("right arrow ignored")
	}
	if s.Current() != "https://b.example" {
		t.Errorf("current = %q", s.Current())
	}
	if len(o.urls) != 0 {
		t.Fatal("opened before the fade finished")
	}

	s.Tick(900 * time.Millisecond)

	if !slices.Equal(o.urls, []string{"https://b.example"}) {
		t.Errorf("opened %v", o.urls)
	}
	if !*quit {
		t.Error("preview did not quit after leaving the page")
	}
}

func TestKeyDuringFadeKeepsTarget(t *testing.T) {
	s, o, _ := session("https://a.example", "https://b.example", "https://c.example")

	s.Key(page.KeyEvent{Key: page.KeyRight})
	s.Tick(100 * time.Millisecond)
	if s.Key(page.KeyEvent{Key: page.KeyRight}) {
		t.Error("second key accepted while fading")
	}
	if s.Index() != 1 || s.Current() != "https://b.example" {
		t.Errorf("index moved to %d (%q) during the fade", s.Index(), s.Current())
	}

	s.Tick(time.Second)
	if !slices.Equal(o.urls, []string{"https://b.example"}) {
		t.Errorf("opened %v", o.urls)
	}
}

func TestKeyBounds(t *testing.T) {
	s, _, _ := session("https://a.example", "https://b.example")

	if s.Key(page.KeyEvent{Key: page.KeyLeft}) {
		t.Error("navigated before the first project")
	}
	if s.Key(page.KeyEvent{Key: page.KeyRight, Alt: true}) {
		t.Error("navigated with alt held")
	}
	if s.Key(page.KeyEvent{Key: "Enter"}) {
		t.Error("navigated on an unrelated key")
	}
	if s.Guard.Navigating() {
		t.Error("guard set without navigation")
	}
}

func TestClickNewTabKeepsPreview(t *testing.T) {
	s, o, quit := session("https://a.example")

	s.Click(page.ClickEvent{Button: 1})
	s.Tick(time.Second)

	if !slices.Equal(o.urls, []string{"https://a.example"}) {
		t.Errorf("opened %v", o.urls)
	}
	if *quit {
		t.Error("new tab should not end the preview")
	}
	if s.Fade.Active() {
		t.Error("fade left active after new tab")
	}
}

func TestClickWithoutProjects(t *testing.T) {
	s, o, _ := session()
	if s.Click(page.ClickEvent{}) || s.Current() != "" {
		t.Error("click navigated without projects")
	}
	if len(o.urls) != 0 {
		t.Errorf("opened %v", o.urls)
	}
}

func TestLauncherOpenError(t *testing.T) {
	o := &opener{err: errors.New("no browser")}
	quit := false
	l := Launcher{Opener: o.open, Quit: func() { quit = true }}

	l.Assign("https://a.example")
	if !quit {
		t.Error("assign should quit even when the opener fails")
	}
}
