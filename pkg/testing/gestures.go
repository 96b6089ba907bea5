package testing

import (
	"fmt"

	"github.com/go-drift/panes/pkg/event"
	"github.com/go-drift/panes/pkg/graphics"
)

// MoveTo moves the cursor to pos.
func (t *Tester[M]) MoveTo(pos graphics.Offset) error {
	return t.dispatch(event.Step{Event: event.Moved(pos), Cursor: pos})
}

// Press presses the left button at the current cursor position.
func (t *Tester[M]) Press() error {
	return t.Send(event.Pressed(event.ButtonLeft))
}

// Release releases the left button at the current cursor position.
func (t *Tester[M]) Release() error {
	return t.Send(event.Released(event.ButtonLeft))
}

// PressAt moves the cursor to pos and presses the left button there.
func (t *Tester[M]) PressAt(pos graphics.Offset) error {
	if err := t.MoveTo(pos); err != nil {
		return err
	}
	return t.Press()
}

// TapAt simulates a left click at pos.
func (t *Tester[M]) TapAt(pos graphics.Offset) error {
	if err := t.PressAt(pos); err != nil {
		return err
	}
	return t.Release()
}

// TapCenter clicks the center of the mounted tree's child at path, where each
// index selects a child of the previous layout.
func (t *Tester[M]) TapCenter(path ...int) error {
	l := t.Layout()
	for _, i := range path {
		child, ok := l.Child(i)
		if !ok {
			return errNoChild(path)
		}
		l = child
	}
	return t.TapAt(l.Bounds().Center())
}

// DragFrom presses at start, moves by delta and releases at the end point.
func (t *Tester[M]) DragFrom(start, delta graphics.Offset) error {
	if err := t.PressAt(start); err != nil {
		return err
	}
	if err := t.MoveTo(start.Add(delta)); err != nil {
		return err
	}
	return t.Release()
}

func errNoChild(path []int) error {
	return fmt.Errorf("TapCenter: no layout at child path %v", path)
}
