package panegrid

import (
	"math"

	"github.com/go-drift/panes/pkg/core"
	"github.com/go-drift/panes/pkg/errors"
	"github.com/go-drift/panes/pkg/event"
	"github.com/go-drift/panes/pkg/graphics"
	"github.com/go-drift/panes/pkg/layout"
	"github.com/go-drift/panes/pkg/theme"
)

// Renderer paints pane chrome.
type Renderer interface {
	// DrawTitleBar paints a title bar around its parts. controls is nil when
	// the bar has no controls or the caller hides them.
	DrawTitleBar(bounds graphics.Rect, style theme.Style, title core.Part, controls *core.Part, cursor graphics.Offset)
}

// TitleBar is the header of a pane: a title on the left and optional controls
// on the right, inside uniform padding.
//
// The title is display-only. Events reach the controls alone, and the
// controls region is excluded from the area that starts a pane drag, so
// clicking a control never also drags the pane.
type TitleBar[M any] struct {
	title    core.Element[M]
	controls *core.Element[M]
	padding  float64
	style    theme.Style
}

// NewTitleBar creates a title bar showing title.
func NewTitleBar[M any](title core.Element[M]) TitleBar[M] {
	return TitleBar[M]{title: title}
}

// Controls sets the controls shown on the right of the bar.
func (t TitleBar[M]) Controls(controls core.Element[M]) TitleBar[M] {
	t.controls = &controls
	return t
}

// Padding sets the space around the content on every side.
func (t TitleBar[M]) Padding(units float64) TitleBar[M] {
	t.padding = units
	return t
}

// Style sets the style token.
func (t TitleBar[M]) Style(style theme.Style) TitleBar[M] {
	t.style = style
	return t
}

// HasControls reports whether the bar has controls.
func (t TitleBar[M]) HasControls() bool {
	return t.controls != nil
}

// Layout lays the bar out in two levels: an outer padded node holding one
// content node, which holds the title and, when present, the controls side
// by side. The controls take their natural width first and the title gets
// the rest. When the controls are wider than the available width, the title
// width is floored at zero.
func (t TitleBar[M]) Layout(r core.Renderer, limits layout.Limits) *layout.Node {
	limits = limits.Pad(t.padding)

	var content *layout.Node
	if t.controls != nil {
		maxSize := limits.Max()

		controls := t.controls.Layout(r, layout.NewLimits(graphics.SizeZero, maxSize))
		controlsSize := controls.Size()
		spaceBeforeControls := maxSize.Width - controlsSize.Width

		title := t.title.Layout(r, layout.NewLimits(
			graphics.SizeZero,
			graphics.Size{Width: math.Max(spaceBeforeControls, 0), Height: maxSize.Height},
		))

		title.MoveTo(graphics.Offset{X: t.padding, Y: t.padding})
		controls.MoveTo(graphics.Offset{X: spaceBeforeControls + t.padding, Y: t.padding})

		height := math.Max(title.Size().Height, controlsSize.Height)
		content = layout.NewNodeWithChildren(graphics.Size{Width: maxSize.Width, Height: height}, title, controls)
	} else {
		content = t.title.Layout(r, limits)
		content.MoveTo(graphics.Offset{X: t.padding, Y: t.padding})
	}

	return layout.NewNodeWithChildren(content.Size().Pad(t.padding), content)
}

// Draw paints the bar. showControls lets the caller hide the controls, for
// example until the pane is hovered, without changing the layout.
func (t TitleBar[M]) Draw(r core.Renderer, l layout.Layout, cursor graphics.Offset, showControls bool) {
	pr, ok := r.(Renderer)
	if !ok {
		errors.Report(errors.MissingCapability("panegrid.TitleBar.Draw", "title_bar", "panegrid.Renderer", r))
		return
	}
	parts, ok := t.parts(l)
	if !ok {
		return
	}
	title := core.Part{Content: t.title, Layout: parts.title}
	var controls *core.Part
	if parts.hasControls && showControls {
		controls = &core.Part{Content: *t.controls, Layout: parts.controls}
	}
	pr.DrawTitleBar(l.Bounds(), t.style, title, controls, cursor)
}

// IsOverDraggable reports whether cursor is over a part of the bar that may
// start a pane drag: inside the bar and, when the bar has controls, outside
// them. It does not mutate anything.
func (t TitleBar[M]) IsOverDraggable(l layout.Layout, cursor graphics.Offset) bool {
	if !l.Bounds().Contains(cursor) {
		return false
	}
	if t.controls == nil {
		return true
	}
	parts, ok := t.parts(l)
	if !ok || !parts.hasControls {
		return true
	}
	return !parts.controls.Bounds().Contains(cursor)
}

// OnEvent forwards ev to the controls in their own layout. Without controls
// it does nothing.
func (t TitleBar[M]) OnEvent(ev event.Event, l layout.Layout, cursor graphics.Offset, messages *core.Messages[M], r core.Renderer, clipboard core.Clipboard) {
	if t.controls == nil {
		return
	}
	parts, ok := t.parts(l)
	if !ok || !parts.hasControls {
		return
	}
	t.controls.OnEvent(ev, parts.controls, cursor, messages, r, clipboard)
}

// HashLayout hashes the padding and both children.
func (t TitleBar[M]) HashLayout(h *layout.Hasher) {
	h.WriteKind("panegrid.TitleBar")
	h.WriteFloat64(t.padding)
	t.title.HashLayout(h)
	h.WriteBool(t.controls != nil)
	if t.controls != nil {
		t.controls.HashLayout(h)
	}
}

// Element wraps the bar as a free-standing element that draws with the given
// controls visibility. Its width policy is the title's.
func (t TitleBar[M]) Element(showControls bool) core.Element[M] {
	return core.NewElement[M](titleBarWidget[M]{bar: t, showControls: showControls})
}

type titleBarWidget[M any] struct {
	bar          TitleBar[M]
	showControls bool
}

func (w titleBarWidget[M]) Width() layout.Length  { return w.bar.title.Width() }
func (w titleBarWidget[M]) Height() layout.Length { return layout.Shrink }

func (w titleBarWidget[M]) Layout(r core.Renderer, limits layout.Limits) *layout.Node {
	return w.bar.Layout(r, limits)
}

func (w titleBarWidget[M]) Draw(r core.Renderer, l layout.Layout, cursor graphics.Offset) {
	w.bar.Draw(r, l, cursor, w.showControls)
}

func (w titleBarWidget[M]) OnEvent(ev event.Event, l layout.Layout, cursor graphics.Offset, messages *core.Messages[M], r core.Renderer, clipboard core.Clipboard) {
	w.bar.OnEvent(ev, l, cursor, messages, r, clipboard)
}

func (w titleBarWidget[M]) HashLayout(h *layout.Hasher) {
	w.bar.HashLayout(h)
}

// titleBarParts is the layout of a title bar split into its pieces.
type titleBarParts struct {
	content     layout.Layout
	title       layout.Layout
	controls    layout.Layout
	hasControls bool
}

// parts splits l, which must come from this bar's Layout, into the content,
// title and controls layouts. All three walks (draw, hit test, events) go
// through here so they agree with the order Layout produced.
func (t TitleBar[M]) parts(l layout.Layout) (titleBarParts, bool) {
	content, ok := l.Child(0)
	if !ok {
		return titleBarParts{}, false
	}
	if t.controls == nil {
		return titleBarParts{content: content, title: content}, true
	}
	title, ok := content.Child(0)
	if !ok {
		return titleBarParts{}, false
	}
	controls, ok := content.Child(1)
	if !ok {
		return titleBarParts{content: content, title: title}, true
	}
	return titleBarParts{content: content, title: title, controls: controls, hasControls: true}, true
}
