package widgets

import (
	"github.com/go-drift/panes/pkg/core"
	"github.com/go-drift/panes/pkg/event"
	"github.com/go-drift/panes/pkg/graphics"
	"github.com/go-drift/panes/pkg/layout"
	"github.com/go-drift/panes/pkg/theme"
)

// ButtonRenderer paints buttons around their content.
type ButtonRenderer interface {
	DrawButton(bounds graphics.Rect, cursor graphics.Offset, pressed bool, style theme.Style, content core.Part)
}

// ButtonState is the interaction state of a Button, owned by the application.
type ButtonState struct {
	isPressed bool
}

// IsPressed reports whether a press that started on the button is held.
func (s *ButtonState) IsPressed() bool {
	return s.isPressed
}

// Button wraps content and emits a message when clicked: a left press and a
// left release both inside its bounds. A button without an OnPress message is
// disabled and ignores input.
type Button[M any] struct {
	state   *ButtonState
	content core.Element[M]
	onPress *M
	padding float64
	width   layout.Length
	height  layout.Length
	style   theme.Style
}

// NewButton creates a button around content using the borrowed state.
func NewButton[M any](state *ButtonState, content core.Element[M]) Button[M] {
	if state == nil {
		state = &ButtonState{}
	}
	return Button[M]{state: state, content: content, padding: 5}
}

// OnPress sets the message emitted on click.
func (b Button[M]) OnPress(msg M) Button[M] {
	b.onPress = &msg
	return b
}

// WithPadding sets the space around the content on every side.
func (b Button[M]) WithPadding(padding float64) Button[M] {
	b.padding = padding
	return b
}

// WithWidth sets the width policy.
func (b Button[M]) WithWidth(width layout.Length) Button[M] {
	b.width = width
	return b
}

// WithHeight sets the height policy.
func (b Button[M]) WithHeight(height layout.Length) Button[M] {
	b.height = height
	return b
}

// WithStyle sets the style token.
func (b Button[M]) WithStyle(style theme.Style) Button[M] {
	b.style = style
	return b
}

// Element wraps the button as an element.
func (b Button[M]) Element() core.Element[M] {
	return core.NewElement[M](b)
}

func (b Button[M]) Width() layout.Length {
	return b.width
}

func (b Button[M]) Height() layout.Length {
	return b.height
}

func (b Button[M]) Layout(r core.Renderer, limits layout.Limits) *layout.Node {
	limits = limits.Width(b.width).Height(b.height).Pad(b.padding)
	content := b.content.Layout(r, limits)
	content.MoveTo(graphics.Offset{X: b.padding, Y: b.padding})
	size := limits.Resolve(content.Size()).Pad(b.padding)
	return layout.NewNodeWithChildren(size, content)
}

func (b Button[M]) Draw(r core.Renderer, l layout.Layout, cursor graphics.Offset) {
	br, ok := capability[ButtonRenderer](r, "widgets.Button.Draw", "button", "widgets.ButtonRenderer")
	if !ok {
		return
	}
	content, ok := l.Child(0)
	if !ok {
		return
	}
	br.DrawButton(l.Bounds(), cursor, b.state.isPressed, b.style, core.Part{Content: b.content, Layout: content})
}

func (b Button[M]) OnEvent(ev event.Event, l layout.Layout, cursor graphics.Offset, messages *core.Messages[M], _ core.Renderer, _ core.Clipboard) {
	if b.onPress == nil {
		return
	}
	switch {
	case event.IsLeftPress(ev):
		b.state.isPressed = l.Bounds().Contains(cursor)
	case event.IsLeftRelease(ev):
		clicked := b.state.isPressed && l.Bounds().Contains(cursor)
		b.state.isPressed = false
		if clicked {
			messages.Push(*b.onPress)
		}
	}
}

func (b Button[M]) HashLayout(h *layout.Hasher) {
	h.WriteKind("widgets.Button")
	h.WriteFloat64(b.padding)
	b.width.Hash(h)
	b.height.Hash(h)
	b.content.HashLayout(h)
}
