package widgets

import (
	"github.com/go-drift/panes/pkg/core"
	"github.com/go-drift/panes/pkg/event"
	"github.com/go-drift/panes/pkg/graphics"
	"github.com/go-drift/panes/pkg/layout"
	"github.com/go-drift/panes/pkg/theme"
)

// DefaultTextSize is used when neither the widget nor the renderer sets a size.
const DefaultTextSize = 13

// TextRenderer measures and paints text.
type TextRenderer interface {
	// DefaultTextSize returns the size used when a Text sets none.
	DefaultTextSize() float64
	// MeasureText returns the natural size of content within bounds.
	MeasureText(content string, size float64, bounds graphics.Size) graphics.Size
	// DrawText paints content inside bounds.
	DrawText(bounds graphics.Rect, content string, size float64, style theme.Style)
}

// Text displays a string. It never handles input.
//
//	Text[Msg]{Content: "Pane 1"}
//	Text[Msg]{Content: "Status", WidthPolicy: layout.Fill}
type Text[M any] struct {
	// Content is the text to display. Lines are separated by '\n'.
	Content string
	// Size is the text size; 0 uses the renderer default.
	Size float64
	// WidthPolicy defaults to layout.Shrink.
	WidthPolicy layout.Length
	// HeightPolicy defaults to layout.Shrink.
	HeightPolicy layout.Length
	// Style is the style token.
	Style theme.Style
}

// Element wraps the text as an element.
func (t Text[M]) Element() core.Element[M] {
	return core.NewElement[M](t)
}

func (t Text[M]) Width() layout.Length {
	return t.WidthPolicy
}

func (t Text[M]) Height() layout.Length {
	return t.HeightPolicy
}

func (t Text[M]) Layout(r core.Renderer, limits layout.Limits) *layout.Node {
	limits = limits.Width(t.WidthPolicy).Height(t.HeightPolicy)
	tr, ok := capability[TextRenderer](r, "widgets.Text.Layout", "text", "widgets.TextRenderer")
	if !ok {
		return layout.NewNode(limits.Resolve(graphics.SizeZero))
	}
	measured := tr.MeasureText(t.Content, t.size(tr), limits.Max())
	return layout.NewNode(limits.Resolve(measured))
}

func (t Text[M]) Draw(r core.Renderer, l layout.Layout, _ graphics.Offset) {
	tr, ok := capability[TextRenderer](r, "widgets.Text.Draw", "text", "widgets.TextRenderer")
	if !ok {
		return
	}
	tr.DrawText(l.Bounds(), t.Content, t.size(tr), t.Style)
}

func (t Text[M]) OnEvent(event.Event, layout.Layout, graphics.Offset, *core.Messages[M], core.Renderer, core.Clipboard) {
}

func (t Text[M]) HashLayout(h *layout.Hasher) {
	h.WriteKind("widgets.Text")
	h.WriteString(t.Content)
	h.WriteFloat64(t.Size)
	t.WidthPolicy.Hash(h)
	t.HeightPolicy.Hash(h)
}

func (t Text[M]) size(tr TextRenderer) float64 {
	if t.Size > 0 {
		return t.Size
	}
	if s := tr.DefaultTextSize(); s > 0 {
		return s
	}
	return DefaultTextSize
}
