package widgets

import (
	"fmt"
	"math"

	"github.com/go-drift/panes/pkg/core"
	"github.com/go-drift/panes/pkg/event"
	"github.com/go-drift/panes/pkg/graphics"
	"github.com/go-drift/panes/pkg/layout"
)

// Axis represents the layout direction.
type Axis int

const (
	AxisVertical Axis = iota
	AxisHorizontal
)

// String returns a human-readable representation of the axis.
func (a Axis) String() string {
	switch a {
	case AxisVertical:
		return "vertical"
	case AxisHorizontal:
		return "horizontal"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Alignment positions children on the cross axis.
type Alignment uint8

const (
	AlignStart Alignment = iota
	AlignCenter
	AlignEnd
)

// flex is the configuration shared by Row and Column.
type flex[M any] struct {
	axis     Axis
	children []core.Element[M]
	spacing  float64
	padding  float64
	width    layout.Length
	height   layout.Length
	align    Alignment
}

func (f flex[M]) mainAxis(size graphics.Size) float64 {
	if f.axis == AxisHorizontal {
		return size.Width
	}
	return size.Height
}

func (f flex[M]) crossAxis(size graphics.Size) float64 {
	if f.axis == AxisHorizontal {
		return size.Height
	}
	return size.Width
}

func (f flex[M]) makeSize(main, cross float64) graphics.Size {
	if f.axis == AxisHorizontal {
		return graphics.Size{Width: main, Height: cross}
	}
	return graphics.Size{Width: cross, Height: main}
}

func (f flex[M]) makeOffset(main, cross float64) graphics.Offset {
	if f.axis == AxisHorizontal {
		return graphics.Offset{X: main, Y: cross}
	}
	return graphics.Offset{X: cross, Y: main}
}

func (f flex[M]) mainPolicy(child core.Element[M]) layout.Length {
	if f.axis == AxisHorizontal {
		return child.Width()
	}
	return child.Height()
}

// layout lays children out along the main axis.
//
// Children with a shrink or fixed main size are laid out first; children with
// a fill main size share whatever is left in proportion to their fill factor.
// The content cross size is the largest child cross size.
func (f flex[M]) layout(r core.Renderer, limits layout.Limits) *layout.Node {
	limits = limits.Width(f.width).Height(f.height).Pad(f.padding)
	maxSize := limits.Max()
	maxCross := f.crossAxis(maxSize)

	spacing := 0.0
	if n := len(f.children); n > 1 {
		spacing = f.spacing * float64(n-1)
	}
	available := math.Max(f.mainAxis(maxSize)-spacing, 0)

	nodes := make([]*layout.Node, len(f.children))
	cross := 0.0
	totalFill := 0.0
	for i, child := range f.children {
		factor := f.mainPolicy(child).FillFactor()
		if factor > 0 && !math.IsInf(available, 1) {
			totalFill += factor
			continue
		}
		node := child.Layout(r, layout.NewLimits(graphics.SizeZero, f.makeSize(available, maxCross)))
		available = math.Max(available-f.mainAxis(node.Size()), 0)
		cross = math.Max(cross, f.crossAxis(node.Size()))
		nodes[i] = node
	}

	if totalFill > 0 {
		for i, child := range f.children {
			if nodes[i] != nil {
				continue
			}
			share := available * f.mainPolicy(child).FillFactor() / totalFill
			node := child.Layout(r, layout.NewLimits(f.makeSize(share, 0), f.makeSize(share, maxCross)))
			cross = math.Max(cross, f.crossAxis(node.Size()))
			nodes[i] = node
		}
	}

	mains := make([]float64, len(nodes))
	main := f.padding
	for i, node := range nodes {
		if i > 0 {
			main += f.spacing
		}
		mains[i] = main
		main += f.mainAxis(node.Size())
	}
	mainSize := math.Max(main-f.padding, 0)

	size := limits.Resolve(f.makeSize(mainSize, cross))
	crossSize := f.crossAxis(size)
	for i, node := range nodes {
		c := f.padding
		switch f.align {
		case AlignCenter:
			c += (crossSize - f.crossAxis(node.Size())) / 2
		case AlignEnd:
			c += crossSize - f.crossAxis(node.Size())
		}
		node.MoveTo(f.makeOffset(mains[i], c))
	}
	return layout.NewNodeWithChildren(size.Pad(f.padding), nodes...)
}

func (f flex[M]) draw(r core.Renderer, l layout.Layout, cursor graphics.Offset) {
	for child, cl := range core.Zip(f.children, l) {
		child.Draw(r, cl, cursor)
	}
}

func (f flex[M]) onEvent(ev event.Event, l layout.Layout, cursor graphics.Offset, messages *core.Messages[M], r core.Renderer, clipboard core.Clipboard) {
	for child, cl := range core.Zip(f.children, l) {
		child.OnEvent(ev, cl, cursor, messages, r, clipboard)
	}
}

func (f flex[M]) hash(h *layout.Hasher, kind string) {
	h.WriteKind(kind)
	h.WriteFloat64(f.spacing)
	h.WriteFloat64(f.padding)
	f.width.Hash(h)
	f.height.Hash(h)
	h.WriteUint64(uint64(f.align))
	h.WriteUint64(uint64(len(f.children)))
	for _, child := range f.children {
		child.HashLayout(h)
	}
}
