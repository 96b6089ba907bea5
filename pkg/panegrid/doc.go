// Package panegrid provides the chrome of split panes.
//
// A TitleBar is not a free-standing widget: the surrounding pane grid lays it
// out, decides whether its controls are visible, and polls IsOverDraggable
// before starting its own drag of the pane. Trees without a pane grid can
// embed a bar through TitleBar.Element.
package panegrid
