package event_test

import (
	"strings"
	"testing"

	"github.com/go-drift/panes/pkg/event"
	"github.com/go-drift/panes/pkg/graphics"
)

func TestReadScript(t *testing.T) {
	script := `
- move: [50, 4]
- press: left
- move: [100, 4]
- release: left
- key: Escape
`
	steps, err := event.ReadScript(strings.NewReader(script))
	if err != nil {
		t.Fatalf("ReadScript: %v", err)
	}
	if len(steps) != 5 {
		t.Fatalf("expected 5 steps, got %d", len(steps))
	}
	if !event.IsLeftPress(steps[1].Event) {
		t.Errorf("expected left press, got %#v", steps[1].Event)
	}
	if steps[1].Cursor != (graphics.Offset{X: 50, Y: 4}) {
		t.Errorf("expected press to reuse cursor {50, 4}, got %v", steps[1].Cursor)
	}
	if !event.IsLeftRelease(steps[3].Event) || steps[3].Cursor.X != 100 {
		t.Errorf("unexpected release step %#v", steps[3])
	}
	if _, ok := steps[4].Event.(event.Keyboard); !ok {
		t.Errorf("expected keyboard event, got %T", steps[4].Event)
	}
}

func TestReadScript_Errors(t *testing.T) {
	tests := map[string]string{
		"bad button": "- press: thumb\n",
		"bad move":   "- move: [1]\n",
		"empty step": "- {}\n",
	}
	for name, script := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := event.ReadScript(strings.NewReader(script)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		ev   event.Event
		want string
	}{
		{event.Pressed(event.ButtonLeft), "button_pressed left"},
		{event.Released(event.ButtonRight), "button_released right"},
		{event.Moved(graphics.Offset{X: 3, Y: 4}), "cursor_moved"},
		{event.Keyboard{Kind: event.KeyPressed, Key: "Enter"}, "key Enter"},
		{event.Window{Kind: event.Resized, Size: graphics.Size{Width: 300, Height: 120}}, "resize 300x120"},
		{nil, "none"},
	}
	for _, tt := range tests {
		if got := event.Describe(tt.ev); got != tt.want {
			t.Errorf("expected %q, got %q", tt.want, got)
		}
	}
}
