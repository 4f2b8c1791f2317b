package page_test

import (
	"github.com/ThatOtherAndrew/backdrop/internal/page"
)

type node struct {
	tag, id  string
	classes  map[string]bool
	attrs    map[string]string
	style    map[string]string
	parent   *node
	queries  map[string][]*node
	rect     page.Rect
	height   float64
	editable bool

	clicks  []func(*page.ClickEvent)
	animEnd map[int]func()
	nextID  int
}

func el(tag string, attrs ...string) *node {
	n := &node{
		tag:     tag,
		classes: map[string]bool{},
		attrs:   map[string]string{},
		style:   map[string]string{},
		queries: map[string][]*node{},
		animEnd: map[int]func(){},
	}
	for i := 0; i+1 < len(attrs); i += 2 {
		n.attrs[attrs[i]] = attrs[i+1]
	}
	return n
}

func (n *node) withID(id string) *node {
	n.id = id
	return n
}

// adopt makes n the parent of children and answers sel with them.
func (n *node) adopt(sel string, children ...*node) *node {
	for _, c := range children {
		c.parent = n
	}
	n.queries[sel] = append(n.queries[sel], children...)
	return n
}

func elements(nodes []*node) []page.Element {
	out := make([]page.Element, len(nodes))
	for i, n := range nodes {
		out[i] = n
	}
	return out
}

func (n *node) Equal(other page.Element) bool {
	o, ok := other.(*node)
	return ok && o == n
}

func (n *node) Parent() page.Element {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

func (n *node) QueryAll(sel string) []page.Element { return elements(n.queries[sel]) }
func (n *node) ID() string                         { return n.id }
func (n *node) Tag() string                        { return n.tag }
func (n *node) Attr(name string) string            { return n.attrs[name] }
func (n *node) ContentEditable() bool              { return n.editable }
func (n *node) AddClass(name string)               { n.classes[name] = true }
func (n *node) RemoveClass(name string)            { delete(n.classes, name) }
func (n *node) HasClass(name string) bool          { return n.classes[name] }
func (n *node) Style(prop string) string           { return n.style[prop] }
func (n *node) SetStyle(prop, value string)        { n.style[prop] = value }
func (n *node) Rect() page.Rect                    { return n.rect }
func (n *node) OffsetHeight() float64              { return n.height }

func (n *node) OnClick(fn func(*page.ClickEvent)) { n.clicks = append(n.clicks, fn) }

func (n *node) OnAnimationEnd(fn func()) func() {
	id := n.nextID
	n.nextID++
	n.animEnd[id] = fn
	return func() { delete(n.animEnd, id) }
}

func (n *node) click(ev *page.ClickEvent) *page.ClickEvent {
	if ev == nil {
		ev = &page.ClickEvent{}
	}
	for _, fn := range n.clicks {
		fn(ev)
	}
	return ev
}

func (n *node) animationEnd() {
	var fns []func()
	for _, fn := range n.animEnd {
		fns = append(fns, fn)
	}
	for _, fn := range fns {
		fn()
	}
}

type scrollCall struct {
	top    float64
	smooth bool
}

type observer struct {
	opts     page.ObserverOptions
	fn       func([]page.Entry)
	observed map[*node]bool
}

func (o *observer) Observe(el page.Element)   { o.observed[el.(*node)] = true }
func (o *observer) Unobserve(el page.Element) { delete(o.observed, el.(*node)) }

// intersect reports n entering the viewport if it is still observed.
func (o *observer) intersect(n *node, in bool) {
	if !o.observed[n] {
		return
	}
	o.fn([]page.Entry{{Target: n, Intersecting: in}})
}

type doc struct {
	queries map[string][]*node
	scrollY float64
	viewH   float64

	scrolls   []scrollCall
	load      []func()
	scroll    []func()
	keydown   []func(*page.KeyEvent)
	pageshow  []func()
	observers []*observer
}

func newDoc() *doc {
	return &doc{queries: map[string][]*node{}, viewH: 800}
}

func (d *doc) set(sel string, nodes ...*node) *doc {
	d.queries[sel] = append(d.queries[sel], nodes...)
	return d
}

func (d *doc) Query(sel string) page.Element {
	if ns := d.queries[sel]; len(ns) > 0 {
		return ns[0]
	}
	return nil
}

func (d *doc) QueryAll(sel string) []page.Element { return elements(d.queries[sel]) }
func (d *doc) ScrollY() float64                   { return d.scrollY }
func (d *doc) ViewHeight() float64                { return d.viewH }

func (d *doc) ScrollTo(top float64, smooth bool) {
	d.scrolls = append(d.scrolls, scrollCall{top: top, smooth: smooth})
}

func (d *doc) OnLoad(fn func())                  { d.load = append(d.load, fn) }
func (d *doc) OnScroll(fn func())                { d.scroll = append(d.scroll, fn) }
func (d *doc) OnKeyDown(fn func(*page.KeyEvent)) { d.keydown = append(d.keydown, fn) }
func (d *doc) OnPageShow(fn func())              { d.pageshow = append(d.pageshow, fn) }

func (d *doc) NewObserver(opts page.ObserverOptions, fn func([]page.Entry)) page.Observer {
	o := &observer{opts: opts, fn: fn, observed: map[*node]bool{}}
	d.observers = append(d.observers, o)
	return o
}

func (d *doc) fireLoad() {
	for _, fn := range d.load {
		fn()
	}
}

func (d *doc) scrollTo(y float64) {
	d.scrollY = y
	for _, fn := range d.scroll {
		fn()
	}
}

func (d *doc) key(ev *page.KeyEvent) {
	for _, fn := range d.keydown {
		fn(ev)
	}
}

func (d *doc) pageShow() {
	for _, fn := range d.pageshow {
		fn()
	}
}

type navigation struct {
	url    string
	newTab bool
}

type recordingNav struct {
	calls []navigation
}

func (r *recordingNav) Navigate(url string, newTab bool) {
	r.calls = append(r.calls, navigation{url: url, newTab: newTab})
}

type browser struct {
	assigned, opened []string
}

func (b *browser) Assign(url string) { b.assigned = append(b.assigned, url) }
func (b *browser) Open(url string)   { b.opened = append(b.opened, url) }
