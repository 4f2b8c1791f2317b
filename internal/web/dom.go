//go:build js && wasm

// Package web binds the page behaviors and the background to a browser
// through syscall/js.
package web

import (
	"syscall/js"

	"github.com/ThatOtherAndrew/backdrop/internal/page"
)

// listen adds an event listener and returns a function that removes it
// and releases the callback.
func listen(target js.Value, typ string, fn func(e js.Value), opts ...any) (cancel func()) {
	cb := js.FuncOf(func(_ js.Value, args []js.Value) any {
		var e js.Value
		if len(args) > 0 {
			e = args[0]
		}
		fn(e)
		return nil
	})
	target.Call("addEventListener", append([]any{typ, cb}, opts...)...)
	return func() {
		target.Call("removeEventListener", typ, cb)
		cb.Release()
	}
}

var passive = map[string]any{"passive": true}

type element struct {
	v js.Value
}

var _ page.Element = (*element)(nil)

// wrap returns nil for null, undefined and non-element nodes.
func wrap(v js.Value) page.Element {
	if v.IsNull() || v.IsUndefined() || v.Get("nodeType").Int() != 1 {
		return nil
	}
	return &element{v: v}
}

func nodeList(list js.Value) []page.Element {
	n := list.Length()
	out := make([]page.Element, 0, n)
	for i := 0; i < n; i++ {
		if el := wrap(list.Index(i)); el != nil {
			out = append(out, el)
		}
	}
	return out
}

func (e *element) Equal(other page.Element) bool {
	o, ok := other.(*element)
	return ok && e.v.Equal(o.v)
}

func (e *element) Parent() page.Element { return wrap(e.v.Get("parentElement")) }

func (e *element) QueryAll(selector string) []page.Element {
	return nodeList(e.v.Call("querySelectorAll", selector))
}

func (e *element) ID() string            { return e.v.Get("id").String() }
func (e *element) Tag() string           { return e.v.Get("tagName").String() }
func (e *element) ContentEditable() bool { return e.v.Get("isContentEditable").Truthy() }

func (e *element) Attr(name string) string {
	a := e.v.Call("getAttribute", name)
	if a.IsNull() {
		return ""
	}
	return a.String()
}

func (e *element) AddClass(name string)      { e.v.Get("classList").Call("add", name) }
func (e *element) RemoveClass(name string)   { e.v.Get("classList").Call("remove", name) }
func (e *element) HasClass(name string) bool { return e.v.Get("classList").Call("contains", name).Bool() }

func (e *element) Style(prop string) string {
	return e.v.Get("style").Call("getPropertyValue", prop).String()
}

func (e *element) SetStyle(prop, value string) {
	e.v.Get("style").Call("setProperty", prop, value)
}

func (e *element) Rect() page.Rect {
	r := e.v.Call("getBoundingClientRect")
	return page.Rect{
		Top:    r.Get("top").Float(),
		Bottom: r.Get("bottom").Float(),
		Height: r.Get("height").Float(),
	}
}

func (e *element) OffsetHeight() float64 { return e.v.Get("offsetHeight").Float() }

func clickEvent(e js.Value) *page.ClickEvent {
	return &page.ClickEvent{
		Button:  e.Get("button").Int(),
		Ctrl:    e.Get("ctrlKey").Bool(),
		Shift:   e.Get("shiftKey").Bool(),
		Alt:     e.Get("altKey").Bool(),
		Meta:    e.Get("metaKey").Bool(),
		Prevent: func() { e.Call("preventDefault") },
	}
}

// OnClick reports primary clicks and middle-button auxclicks.
func (e *element) OnClick(fn func(*page.ClickEvent)) {
	listen(e.v, "click", func(ev js.Value) { fn(clickEvent(ev)) })
	listen(e.v, "auxclick", func(ev js.Value) {
		if ev.Get("button").Int() == 1 {
			fn(clickEvent(ev))
		}
	})
}

func (e *element) OnAnimationEnd(fn func()) func() {
	return listen(e.v, "animationend", func(js.Value) { fn() })
}

type observer struct {
	v js.Value
}

func (o *observer) Observe(el page.Element) {
	if e, ok := el.(*element); ok {
		o.v.Call("observe", e.v)
	}
}

func (o *observer) Unobserve(el page.Element) {
	if e, ok := el.(*element); ok {
		o.v.Call("unobserve", e.v)
	}
}

type Document struct {
	win, doc js.Value
}

var _ page.Document = (*Document)(nil)

func NewDocument() *Document {
	win := js.Global()
	return &Document{win: win, doc: win.Get("document")}
}

func (d *Document) Query(selector string) page.Element {
	return wrap(d.doc.Call("querySelector", selector))
}

func (d *Document) QueryAll(selector string) []page.Element {
	return nodeList(d.doc.Call("querySelectorAll", selector))
}

func (d *Document) ScrollY() float64    { return d.win.Get("scrollY").Float() }
func (d *Document) ViewHeight() float64 { return d.win.Get("innerHeight").Float() }

func (d *Document) ScrollTo(top float64, smooth bool) {
	behavior := "auto"
	if smooth {
		behavior = "smooth"
	}
	d.win.Call("scrollTo", map[string]any{"top": top, "behavior": behavior})
}

// OnLoad runs fn on the window load event, or right away when the page
// finished loading before the module started.
func (d *Document) OnLoad(fn func()) {
	if d.doc.Get("readyState").String() == "complete" {
		fn()
		return
	}
	listen(d.win, "load", func(js.Value) { fn() })
}

func (d *Document) OnScroll(fn func()) {
	listen(d.win, "scroll", func(js.Value) { fn() }, passive)
}

func (d *Document) OnKeyDown(fn func(*page.KeyEvent)) {
	listen(d.doc, "keydown", func(e js.Value) {
		fn(&page.KeyEvent{
			Key:     e.Get("key").String(),
			Ctrl:    e.Get("ctrlKey").Bool(),
			Shift:   e.Get("shiftKey").Bool(),
			Alt:     e.Get("altKey").Bool(),
			Meta:    e.Get("metaKey").Bool(),
			Target:  wrap(e.Get("target")),
			Prevent: func() { e.Call("preventDefault") },
		})
	})
}

// OnPageShow also fires when the page is restored from the back/forward
// cache.
func (d *Document) OnPageShow(fn func()) {
	listen(d.win, "pageshow", func(js.Value) { fn() })
}

func (d *Document) NewObserver(opts page.ObserverOptions, fn func([]page.Entry)) page.Observer {
	cb := js.FuncOf(func(_ js.Value, args []js.Value) any {
		list := args[0]
		entries := make([]page.Entry, 0, list.Length())
		for i := 0; i < list.Length(); i++ {
			e := list.Index(i)
			entries = append(entries, page.Entry{
				Target:       wrap(e.Get("target")),
				Intersecting: e.Get("isIntersecting").Bool(),
			})
		}
		fn(entries)
		return nil
	})
	v := d.win.Get("IntersectionObserver").New(cb, map[string]any{
		"rootMargin": opts.RootMargin,
		"threshold":  opts.Threshold,
	})
	return &observer{v: v}
}
