package widgets

import (
	"github.com/go-drift/panes/pkg/core"
	"github.com/go-drift/panes/pkg/errors"
)

// capability asserts that r implements T, reporting a render error when it
// does not.
func capability[T any](r core.Renderer, op, widget, name string) (T, bool) {
	c, ok := r.(T)
	if !ok {
		errors.Report(errors.MissingCapability(op, widget, name, r))
	}
	return c, ok
}
