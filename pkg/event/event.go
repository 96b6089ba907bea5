// Package event defines the input events routed through widget trees.
//
// Widgets switch on the concrete event type and ignore categories they do
// not handle.
package event

import (
	"fmt"

	"github.com/go-drift/panes/pkg/graphics"
)

// Event is a user input event. The concrete types are Mouse, Keyboard and Window.
type Event interface {
	isEvent()
}

// MouseKind identifies a mouse event.
type MouseKind uint8

const (
	// CursorEntered is sent when the cursor enters the window.
	CursorEntered MouseKind = iota
	// CursorLeft is sent when the cursor leaves the window.
	CursorLeft
	// CursorMoved is sent when the cursor moves to Position.
	CursorMoved
	// ButtonPressed is sent when Button goes down.
	ButtonPressed
	// ButtonReleased is sent when Button goes up.
	ButtonReleased
	// WheelScrolled is sent with the scroll amount in Delta.
	WheelScrolled
)

func (k MouseKind) String() string {
	switch k {
	case CursorEntered:
		return "cursor_entered"
	case CursorLeft:
		return "cursor_left"
	case CursorMoved:
		return "cursor_moved"
	case ButtonPressed:
		return "button_pressed"
	case ButtonReleased:
		return "button_released"
	case WheelScrolled:
		return "wheel_scrolled"
	default:
		return fmt.Sprintf("MouseKind(%d)", int(k))
	}
}

// Button identifies a mouse button.
type Button uint8

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
	ButtonOther
)

func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	case ButtonMiddle:
		return "middle"
	default:
		return "other"
	}
}

// Mouse is a pointer event.
type Mouse struct {
	Kind     MouseKind
	Button   Button
	Position graphics.Offset
	Delta    graphics.Offset
}

// KeyboardKind identifies a keyboard event.
type KeyboardKind uint8

const (
	KeyPressed KeyboardKind = iota
	KeyReleased
	CharacterReceived
)

// Keyboard is a key or character event.
type Keyboard struct {
	Kind KeyboardKind
	Key  string
	Char rune
}

// WindowKind identifies a window event.
type WindowKind uint8

const (
	Resized WindowKind = iota
	Focused
	Unfocused
)

// Window is a window-level event.
type Window struct {
	Kind WindowKind
	Size graphics.Size
}

func (Mouse) isEvent()    {}
func (Keyboard) isEvent() {}
func (Window) isEvent()   {}

// Pressed returns a button-pressed event.
func Pressed(b Button) Mouse {
	return Mouse{Kind: ButtonPressed, Button: b}
}

// Released returns a button-released event.
func Released(b Button) Mouse {
	return Mouse{Kind: ButtonReleased, Button: b}
}

// Moved returns a cursor-moved event.
func Moved(p graphics.Offset) Mouse {
	return Mouse{Kind: CursorMoved, Position: p}
}

// IsLeftPress reports whether e is a left button press.
func IsLeftPress(e Event) bool {
	m, ok := e.(Mouse)
	return ok && m.Kind == ButtonPressed && m.Button == ButtonLeft
}

// IsLeftRelease reports whether e is a left button release.
func IsLeftRelease(e Event) bool {
	m, ok := e.(Mouse)
	return ok && m.Kind == ButtonReleased && m.Button == ButtonLeft
}

// Describe renders ev as a short label such as "button_pressed left",
// "cursor_moved", "key Enter" or "resize 300x120".
func Describe(ev Event) string {
	switch e := ev.(type) {
	case Mouse:
		switch e.Kind {
		case ButtonPressed, ButtonReleased:
			return fmt.Sprintf("%s %s", e.Kind, e.Button)
		default:
			return e.Kind.String()
		}
	case Keyboard:
		return fmt.Sprintf("key %s", e.Key)
	case Window:
		return fmt.Sprintf("resize %vx%v", e.Size.Width, e.Size.Height)
	case nil:
		return "none"
	default:
		return fmt.Sprintf("%T", ev)
	}
}
