package layout

import (
	"iter"

	"github.com/go-drift/panes/pkg/graphics"
)

// Layout is a read-only view of a Node placed at an absolute position.
//
// Event dispatch and drawing walk Layouts rather than Nodes so that every
// widget sees bounds in the same coordinate space as the cursor.
type Layout struct {
	position graphics.Offset
	node     *Node
}

// NewLayout views the root node at its own position.
func NewLayout(node *Node) Layout {
	return WithOffset(graphics.Offset{}, node)
}

// WithOffset views node positioned relative to offset.
func WithOffset(offset graphics.Offset, node *Node) Layout {
	return Layout{position: offset.Add(node.Position()), node: node}
}

// Node returns the underlying node.
func (l Layout) Node() *Node {
	return l.node
}

// Position returns the absolute origin.
func (l Layout) Position() graphics.Offset {
	return l.position
}

// Bounds returns the absolute rectangle.
func (l Layout) Bounds() graphics.Rect {
	return graphics.RectFromOffsetSize(l.position, l.node.Size())
}

// Len returns the number of children.
func (l Layout) Len() int {
	return len(l.node.Children())
}

// Child returns the i-th child layout.
func (l Layout) Child(i int) (Layout, bool) {
	children := l.node.Children()
	if i < 0 || i >= len(children) {
		return Layout{}, false
	}
	return WithOffset(l.position, children[i]), true
}

// Children iterates child layouts in order.
func (l Layout) Children() iter.Seq2[int, Layout] {
	return func(yield func(int, Layout) bool) {
		for i, child := range l.node.Children() {
			if !yield(i, WithOffset(l.position, child)) {
				return
			}
		}
	}
}
