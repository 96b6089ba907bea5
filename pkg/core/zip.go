package core

import (
	"iter"

	"github.com/go-drift/panes/pkg/layout"
)

// Zip pairs children with the child layouts of l in order. Iteration stops at
// the shorter of the two, so a tree of the wrong shape is never indexed past
// its end.
func Zip[M any](children []Element[M], l layout.Layout) iter.Seq2[Element[M], layout.Layout] {
	return func(yield func(Element[M], layout.Layout) bool) {
		for i, child := range children {
			cl, ok := l.Child(i)
			if !ok {
				return
			}
			if !yield(child, cl) {
				return
			}
		}
	}
}
