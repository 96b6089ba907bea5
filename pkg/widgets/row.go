package widgets

import (
	"github.com/go-drift/panes/pkg/core"
	"github.com/go-drift/panes/pkg/event"
	"github.com/go-drift/panes/pkg/graphics"
	"github.com/go-drift/panes/pkg/layout"
)

// Row lays its children out left to right.
//
// Children with a shrink or fixed width are laid out first; children with a
// fill width share whatever is left in proportion to their fill factor. The
// row's content height is the tallest child.
//
//	Row[Msg]{Spacing: 4, Children: []core.Element[Msg]{close, maximize}}
type Row[M any] struct {
	Children    []core.Element[M]
	Spacing     float64
	Padding     float64
	WidthPolicy layout.Length
	// HeightPolicy defaults to layout.Shrink.
	HeightPolicy layout.Length
	Align        Alignment
}

// RowOf builds a row from children with the given spacing.
func RowOf[M any](spacing float64, children ...core.Element[M]) Row[M] {
	return Row[M]{Children: children, Spacing: spacing}
}

// Element wraps the row as an element.
func (r Row[M]) Element() core.Element[M] {
	return core.NewElement[M](r)
}

func (r Row[M]) flex() flex[M] {
	return flex[M]{
		axis:     AxisHorizontal,
		children: r.Children,
		spacing:  r.Spacing,
		padding:  r.Padding,
		width:    r.WidthPolicy,
		height:   r.HeightPolicy,
		align:    r.Align,
	}
}

func (r Row[M]) Width() layout.Length {
	return r.WidthPolicy
}

func (r Row[M]) Height() layout.Length {
	return r.HeightPolicy
}

func (r Row[M]) Layout(renderer core.Renderer, limits layout.Limits) *layout.Node {
	return r.flex().layout(renderer, limits)
}

func (r Row[M]) Draw(renderer core.Renderer, l layout.Layout, cursor graphics.Offset) {
	r.flex().draw(renderer, l, cursor)
}

func (r Row[M]) OnEvent(ev event.Event, l layout.Layout, cursor graphics.Offset, messages *core.Messages[M], renderer core.Renderer, clipboard core.Clipboard) {
	r.flex().onEvent(ev, l, cursor, messages, renderer, clipboard)
}

func (r Row[M]) HashLayout(h *layout.Hasher) {
	r.flex().hash(h, "widgets.Row")
}

// Column lays its children out top to bottom. It is the vertical
// counterpart of Row: fill heights share the remaining height and the
// content width is the widest child.
type Column[M any] struct {
	Children []core.Element[M]
	Spacing  float64
	Padding  float64
	// WidthPolicy defaults to layout.Shrink.
	WidthPolicy  layout.Length
	HeightPolicy layout.Length
	Align        Alignment
}

// ColumnOf builds a column from children with the given spacing.
func ColumnOf[M any](spacing float64, children ...core.Element[M]) Column[M] {
	return Column[M]{Children: children, Spacing: spacing}
}

// Element wraps the column as an element.
func (c Column[M]) Element() core.Element[M] {
	return core.NewElement[M](c)
}

func (c Column[M]) flex() flex[M] {
	return flex[M]{
		axis:     AxisVertical,
		children: c.Children,
		spacing:  c.Spacing,
		padding:  c.Padding,
		width:    c.WidthPolicy,
		height:   c.HeightPolicy,
		align:    c.Align,
	}
}

func (c Column[M]) Width() layout.Length {
	return c.WidthPolicy
}

func (c Column[M]) Height() layout.Length {
	return c.HeightPolicy
}

func (c Column[M]) Layout(renderer core.Renderer, limits layout.Limits) *layout.Node {
	return c.flex().layout(renderer, limits)
}

func (c Column[M]) Draw(renderer core.Renderer, l layout.Layout, cursor graphics.Offset) {
	c.flex().draw(renderer, l, cursor)
}

func (c Column[M]) OnEvent(ev event.Event, l layout.Layout, cursor graphics.Offset, messages *core.Messages[M], renderer core.Renderer, clipboard core.Clipboard) {
	c.flex().onEvent(ev, l, cursor, messages, renderer, clipboard)
}

func (c Column[M]) HashLayout(h *layout.Hasher) {
	c.flex().hash(h, "widgets.Column")
}
