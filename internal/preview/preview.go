// Package preview is the navigation model shared by the desktop and
// terminal previews: a list of project URLs walked with the arrow keys and
// left through the transition guard.
package preview

import (
	"time"

	"github.com/ThatOtherAndrew/backdrop/internal/logger"
	"github.com/ThatOtherAndrew/backdrop/internal/page"
	"github.com/ThatOtherAndrew/backdrop/internal/transition"
)

// Launcher navigates by handing URLs to an external opener. Leaving the
// page in place ends the preview through Quit.
type Launcher struct {
	Opener func(url string) error
	Quit   func()
}

var _ transition.Navigator = Launcher{}

func (l Launcher) Assign(url string) {
	l.open(url)
	if l.Quit != nil {
		l.Quit()
	}
}

func (l Launcher) Open(url string) { l.open(url) }

func (l Launcher) open(url string) {
	if l.Opener == nil {
		return
	}
	if err := l.Opener(url); err != nil {
		logger.For("preview").Warn("could not open url", "url", url, "error", err)
	}
}

type Session struct {
	Guard *transition.Guard
	Fade  *transition.Fade

	projects []string
	index    int
}

func NewSession(projects []string, nav transition.Navigator, fade time.Duration) *Session {
	f := transition.NewFade(fade)
	return &Session{
		Guard:    transition.New(nav, f),
		Fade:     f,
		projects: projects,
	}
}

// Current is the selected project URL, or "" without projects.
func (s *Session) Current() string {
	if len(s.projects) == 0 {
		return ""
	}
	return s.projects[s.index]
}

func (s *Session) Index() int { return s.index }
func (s *Session) Len() int   { return len(s.projects) }

// Key handles the arrow keys the way project pages do: left and right
// navigate to the neighbouring project, unless a modifier is held. It
// reports whether a navigation was started.
func (s *Session) Key(ev page.KeyEvent) bool {
	if ev.Ctrl || ev.Alt || ev.Meta || page.Typing(ev.Target) {
		return false
	}
	i := s.index
	switch ev.Key {
	case page.KeyLeft:
		i--
	case page.KeyRight:
		i++
	default:
		return false
	}
	// A fade already under way keeps its target and the label with it.
	if i < 0 || i >= len(s.projects) || s.Guard.Navigating() {
		return false
	}
	s.index = i
	s.Guard.Navigate(s.projects[i], false)
	return true
}

// Click navigates to the current project, in a new tab when the click
// asks for one.
func (s *Session) Click(ev page.ClickEvent) bool {
	url := s.Current()
	if url == "" {
		return false
	}
	s.Guard.Navigate(url, ev.NewTab())
	return true
}

// Tick advances the overlay fade.
func (s *Session) Tick(dt time.Duration) {
	s.Fade.Advance(dt)
}
