package core

import "github.com/go-drift/panes/pkg/layout"

// Part is child content handed to a renderer together with the layout it
// occupies, so the renderer can paint it between its own chrome.
type Part struct {
	Content Drawable
	Layout  layout.Layout
}
