package core

import (
	"github.com/go-drift/panes/pkg/event"
	"github.com/go-drift/panes/pkg/graphics"
	"github.com/go-drift/panes/pkg/layout"
)

// Renderer is the backend a widget tree is measured and drawn with.
//
// Each widget package declares the capability it needs as a narrower
// interface (for example widgets.SliderRenderer) and asserts it at the call
// site. A renderer without that capability makes the widget report an error
// and fall back: default metrics for layout, nothing for drawing.
type Renderer interface{}

// LayoutHasher is implemented by renderers whose metrics feed layout.
// LayoutHash writes every metric a measurement depends on; two renderers
// writing the same values must measure identically. Layouts made with a
// renderer that does not implement it are never cached.
type LayoutHasher interface {
	LayoutHash(h *layout.Hasher)
}

// Clipboard gives widgets access to the system clipboard. It may be nil.
type Clipboard interface {
	Read() (string, bool)
	Write(contents string)
}

// Drawable is anything that can paint itself into a layout. Renderers receive
// child content as Drawables so they can paint it between their own chrome.
type Drawable interface {
	Draw(r Renderer, l layout.Layout, cursor graphics.Offset)
}

// Widget is the contract every widget satisfies.
//
// Layout must be a pure function of the widget configuration, the renderer
// metrics and limits. OnEvent receives the Layout produced by this widget's
// own Layout call; passing any other tree is a caller error.
type Widget[M any] interface {
	// Width returns the width policy.
	Width() layout.Length
	// Height returns the height policy.
	Height() layout.Length
	// Layout computes the widget's node for limits.
	Layout(r Renderer, limits layout.Limits) *layout.Node
	// Draw paints the widget. It must not mutate state.
	Draw(r Renderer, l layout.Layout, cursor graphics.Offset)
	// OnEvent handles ev, appending produced messages in order.
	OnEvent(ev event.Event, l layout.Layout, cursor graphics.Offset, messages *Messages[M], r Renderer, clipboard Clipboard)
	// HashLayout writes the size-relevant configuration into h.
	HashLayout(h *layout.Hasher)
}

// Element is an owned, type-erased widget.
type Element[M any] struct {
	widget Widget[M]
}

// NewElement wraps w.
func NewElement[M any](w Widget[M]) Element[M] {
	return Element[M]{widget: w}
}

// Widget returns the wrapped widget.
func (e Element[M]) Widget() Widget[M] {
	return e.widget
}

// IsZero reports whether the element wraps no widget.
func (e Element[M]) IsZero() bool {
	return e.widget == nil
}

func (e Element[M]) Width() layout.Length {
	return e.widget.Width()
}

func (e Element[M]) Height() layout.Length {
	return e.widget.Height()
}

func (e Element[M]) Layout(r Renderer, limits layout.Limits) *layout.Node {
	return e.widget.Layout(r, limits)
}

func (e Element[M]) Draw(r Renderer, l layout.Layout, cursor graphics.Offset) {
	e.widget.Draw(r, l, cursor)
}

func (e Element[M]) OnEvent(ev event.Event, l layout.Layout, cursor graphics.Offset, messages *Messages[M], r Renderer, clipboard Clipboard) {
	e.widget.OnEvent(ev, l, cursor, messages, r, clipboard)
}

func (e Element[M]) HashLayout(h *layout.Hasher) {
	e.widget.HashLayout(h)
}

// Map converts the messages produced by e with f.
func Map[A, B any](e Element[A], f func(A) B) Element[B] {
	return NewElement[B](&mapped[A, B]{inner: e, f: f})
}

type mapped[A, B any] struct {
	inner Element[A]
	f     func(A) B
}

func (m *mapped[A, B]) Width() layout.Length  { return m.inner.Width() }
func (m *mapped[A, B]) Height() layout.Length { return m.inner.Height() }

func (m *mapped[A, B]) Layout(r Renderer, limits layout.Limits) *layout.Node {
	return m.inner.Layout(r, limits)
}

func (m *mapped[A, B]) Draw(r Renderer, l layout.Layout, cursor graphics.Offset) {
	m.inner.Draw(r, l, cursor)
}

func (m *mapped[A, B]) OnEvent(ev event.Event, l layout.Layout, cursor graphics.Offset, messages *Messages[B], r Renderer, clipboard Clipboard) {
	var local Messages[A]
	m.inner.OnEvent(ev, l, cursor, &local, r, clipboard)
	for _, msg := range local.All() {
		messages.Push(m.f(msg))
	}
}

func (m *mapped[A, B]) HashLayout(h *layout.Hasher) {
	m.inner.HashLayout(h)
}
