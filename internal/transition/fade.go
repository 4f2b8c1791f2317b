package transition

import "time"

// Fade is an Overlay for hosts without CSS animations. While active it
// eases towards fully opaque over Duration, advanced explicitly by the host
// loop, and notifies its listeners once covered.
type Fade struct {
	Duration time.Duration

	active    bool
	done      bool
	progress  float64
	listeners map[int]func()
	next      int
}

var _ Overlay = (*Fade)(nil)

func NewFade(d time.Duration) *Fade {
	return &Fade{Duration: d, listeners: map[int]func(){}}
}

func (f *Fade) SetActive(active bool) {
	f.active = active
	if !active {
		f.progress = 0
		f.done = false
	}
}

func (f *Fade) OnAnimationEnd(fn func()) func() {
	if f.listeners == nil {
		f.listeners = map[int]func(){}
	}
	id := f.next
	f.next++
	f.listeners[id] = fn
	return func() { delete(f.listeners, id) }
}

// Advance moves the fade forward by dt and fires the completion listeners
// when it reaches the end.
func (f *Fade) Advance(dt time.Duration) {
	if !f.active || f.done {
		return
	}
	if f.Duration <= 0 {
		f.progress = 1
	} else {
		f.progress += float64(dt) / float64(f.Duration)
	}
	if f.progress < 1 {
		return
	}
	f.progress = 1
	f.done = true

	fns := make([]func(), 0, len(f.listeners))
	for _, fn := range f.listeners {
		fns = append(fns, fn)
	}
	for _, fn := range fns {
		fn()
	}
}

func (f *Fade) Active() bool { return f.active }

// Alpha is the eased overlay opacity in [0, 1].
func (f *Fade) Alpha() float64 {
	p := 1 - f.progress
	return 1 - p*p*p*p*p
}
