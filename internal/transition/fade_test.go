package transition

import (
	"math"
	"testing"
	"time"
)

func TestFadeCompletes(t *testing.T) {
	f := NewFade(800 * time.Millisecond)
	ended := 0
	f.OnAnimationEnd(func() { ended++ })

	f.Advance(time.Second)
	if ended != 0 || f.Alpha() != 0 {
		t.Fatal("inactive fade advanced")
	}

	f.SetActive(true)
	f.Advance(400 * time.Millisecond)
	if ended != 0 {
		t.Fatal("ended halfway")
	}
	if a := f.Alpha(); a <= 0.5 || a >= 1 {
		t.Errorf("eased alpha at half time = %v", a)
	}

	f.Advance(400 * time.Millisecond)
	f.Advance(400 * time.Millisecond)
	if ended != 1 {
		t.Errorf("ended %d times, want 1", ended)
	}
	if f.Alpha() != 1 {
		t.Errorf("alpha at end = %v", f.Alpha())
	}
}

func TestFadeResets(t *testing.T) {
	f := NewFade(100 * time.Millisecond)
	f.SetActive(true)
	f.Advance(time.Second)
	f.SetActive(false)

	if f.Active() || f.Alpha() != 0 {
		t.Errorf("fade not reset: active %v alpha %v", f.Active(), f.Alpha())
	}
}

func TestFadeAlphaMonotonic(t *testing.T) {
	f := NewFade(time.Second)
	f.SetActive(true)
	prev := -1.0
	for range 20 {
		f.Advance(50 * time.Millisecond)
		a := f.Alpha()
		if a < prev || math.IsNaN(a) {
			t.Fatalf("alpha went from %v to %v", prev, a)
		}
		prev = a
	}
}

func TestGuardWithFade(t *testing.T) {
	nav := &fakeNav{}
	f := NewFade(800 * time.Millisecond)
	g := New(nav, f)

	g.Navigate("/a", false)
	g.Navigate("/b", false)
	for range 10 {
		f.Advance(100 * time.Millisecond)
	}

	if len(nav.assigned) != 1 || nav.assigned[0] != "/a" {
		t.Errorf("assigned = %v", nav.assigned)
	}
	if len(f.listeners) != 0 {
		t.Errorf("%d listeners left registered", len(f.listeners))
	}

	g.PageShow()
	if f.Active() {
		t.Error("fade still active after page show")
	}
}

func TestZeroDurationFade(t *testing.T) {
	nav := &fakeNav{}
	f := NewFade(0)
	g := New(nav, f)

	g.Navigate("/a", false)
	f.Advance(0)

	if len(nav.assigned) != 1 {
		t.Errorf("assigned = %v", nav.assigned)
	}
}
