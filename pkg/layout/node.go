package layout

import "github.com/go-drift/panes/pkg/graphics"

// Node is the sized and positioned result of laying out one widget.
//
// A node is built once per layout pass. Its position is relative to its
// parent and is set once with MoveTo while the parent is being laid out;
// after the pass the tree is treated as immutable.
type Node struct {
	position graphics.Offset
	size     graphics.Size
	children []*Node
}

// NewNode creates a leaf node of the given size at the origin.
func NewNode(size graphics.Size) *Node {
	return &Node{size: size}
}

// NewNodeWithChildren creates a node owning children in order.
func NewNodeWithChildren(size graphics.Size, children ...*Node) *Node {
	return &Node{size: size, children: children}
}

// Size returns the node size.
func (n *Node) Size() graphics.Size {
	return n.size
}

// Position returns the node origin relative to its parent.
func (n *Node) Position() graphics.Offset {
	return n.position
}

// Bounds returns the node rectangle relative to its parent.
func (n *Node) Bounds() graphics.Rect {
	return graphics.RectFromOffsetSize(n.position, n.size)
}

// Children returns the child nodes in layout order.
func (n *Node) Children() []*Node {
	return n.children
}

// MoveTo sets the node origin relative to its parent.
func (n *Node) MoveTo(position graphics.Offset) {
	n.position = position
}

// Clone returns a deep copy of the tree rooted at n.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	clone := &Node{position: n.position, size: n.size}
	if len(n.children) > 0 {
		clone.children = make([]*Node, len(n.children))
		for i, child := range n.children {
			clone.children[i] = child.Clone()
		}
	}
	return clone
}
