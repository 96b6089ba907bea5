package event

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/panes/pkg/graphics"
)

// Step is one input in a recorded script: the event plus the cursor position
// it was observed at.
type Step struct {
	Event  Event
	Cursor graphics.Offset
}

// scriptStep is the YAML form of a step. Exactly one action field is set.
//
//	- move: [120, 8]
//	- press: left
//	- release: left
//	- key: Escape
type scriptStep struct {
	Move    []float64 `yaml:"move,omitempty"`
	Press   string    `yaml:"press,omitempty"`
	Release string    `yaml:"release,omitempty"`
	Key     string    `yaml:"key,omitempty"`
	Resize  []float64 `yaml:"resize,omitempty"`
}

// ReadScript decodes a YAML list of steps. Steps that do not move the cursor
// reuse the last cursor position.
func ReadScript(r io.Reader) ([]Step, error) {
	var raw []scriptStep
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to parse event script: %w", err)
	}

	var cursor graphics.Offset
	steps := make([]Step, 0, len(raw))
	for i, s := range raw {
		ev, err := s.event(&cursor)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		steps = append(steps, Step{Event: ev, Cursor: cursor})
	}
	return steps, nil
}

func (s scriptStep) event(cursor *graphics.Offset) (Event, error) {
	switch {
	case s.Move != nil:
		p, err := pair(s.Move)
		if err != nil {
			return nil, fmt.Errorf("move: %w", err)
		}
		*cursor = graphics.Offset{X: p[0], Y: p[1]}
		return Moved(*cursor), nil
	case s.Press != "":
		b, err := parseButton(s.Press)
		if err != nil {
			return nil, err
		}
		return Mouse{Kind: ButtonPressed, Button: b, Position: *cursor}, nil
	case s.Release != "":
		b, err := parseButton(s.Release)
		if err != nil {
			return nil, err
		}
		return Mouse{Kind: ButtonReleased, Button: b, Position: *cursor}, nil
	case s.Key != "":
		return Keyboard{Kind: KeyPressed, Key: s.Key}, nil
	case s.Resize != nil:
		p, err := pair(s.Resize)
		if err != nil {
			return nil, fmt.Errorf("resize: %w", err)
		}
		return Window{Kind: Resized, Size: graphics.Size{Width: p[0], Height: p[1]}}, nil
	default:
		return nil, fmt.Errorf("empty step")
	}
}

func pair(v []float64) ([2]float64, error) {
	if len(v) != 2 {
		return [2]float64{}, fmt.Errorf("want [x, y], got %d values", len(v))
	}
	return [2]float64{v[0], v[1]}, nil
}

func parseButton(s string) (Button, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return ButtonLeft, nil
	case "right":
		return ButtonRight, nil
	case "middle":
		return ButtonMiddle, nil
	case "other":
		return ButtonOther, nil
	default:
		return 0, fmt.Errorf("unknown button %q", s)
	}
}
