package widgets

import (
	"math"

	"github.com/go-drift/panes/pkg/core"
	"github.com/go-drift/panes/pkg/event"
	"github.com/go-drift/panes/pkg/graphics"
	"github.com/go-drift/panes/pkg/layout"
	"github.com/go-drift/panes/pkg/theme"
)

// DefaultSliderHeight is the slider height used when the renderer cannot
// report one.
const DefaultSliderHeight = 22

// Range is an inclusive interval of slider values.
type Range struct {
	Start float64
	End   float64
}

// Clamp places v inside the range. For an inverted range (Start > End) the
// result is always End.
func (r Range) Clamp(v float64) float64 {
	return math.Min(math.Max(v, r.Start), r.End)
}

// SliderState is the interaction state of a Slider. It is owned by the
// application and must outlive the per-frame Slider values that borrow it.
type SliderState struct {
	isDragging bool
}

// NewSliderState creates an idle state.
func NewSliderState() *SliderState {
	return &SliderState{}
}

// IsDragging reports whether a drag started on the slider is in progress.
func (s *SliderState) IsDragging() bool {
	return s.isDragging
}

// SliderRenderer measures and paints sliders.
type SliderRenderer interface {
	// SliderHeight returns the natural slider height.
	SliderHeight() float64
	// DrawSlider paints a slider.
	DrawSlider(bounds graphics.Rect, cursor graphics.Offset, r Range, value float64, dragging bool, style theme.Style)
}

// Slider selects a single value from a range by pressing or dragging along a
// horizontal rail. By default it fills the available width.
type Slider[M any] struct {
	state     *SliderState
	rng       Range
	value     float64
	onChange  func(float64) M
	onRelease *M
	width     layout.Length
	style     theme.Style
}

// NewSlider creates a slider over rng showing value, clamped into rng.
// onChange produces the message emitted whenever a press or drag selects a
// value; a nil onChange still tracks drags but emits nothing. A nil state
// gives the slider a private state that does not survive the frame.
func NewSlider[M any](state *SliderState, rng Range, value float64, onChange func(float64) M) Slider[M] {
	if state == nil {
		state = NewSliderState()
	}
	return Slider[M]{
		state:    state,
		rng:      rng,
		value:    rng.Clamp(value),
		onChange: onChange,
		width:    layout.Fill,
	}
}

// OnRelease sets the message emitted once when a drag ends.
func (s Slider[M]) OnRelease(msg M) Slider[M] {
	s.onRelease = &msg
	return s
}

// WithWidth sets the width policy.
func (s Slider[M]) WithWidth(width layout.Length) Slider[M] {
	s.width = width
	return s
}

// WithStyle sets the style token.
func (s Slider[M]) WithStyle(style theme.Style) Slider[M] {
	s.style = style
	return s
}

// Value returns the clamped value.
func (s Slider[M]) Value() float64 {
	return s.value
}

// Range returns the value range.
func (s Slider[M]) Range() Range {
	return s.rng
}

// Element wraps the slider as an element.
func (s Slider[M]) Element() core.Element[M] {
	return core.NewElement[M](s)
}

func (s Slider[M]) Width() layout.Length {
	return s.width
}

func (s Slider[M]) Height() layout.Length {
	return layout.Shrink
}

func (s Slider[M]) Layout(r core.Renderer, limits layout.Limits) *layout.Node {
	height := float64(DefaultSliderHeight)
	if sr, ok := capability[SliderRenderer](r, "widgets.Slider.Layout", "slider", "widgets.SliderRenderer"); ok {
		height = sr.SliderHeight()
	}
	limits = limits.Width(s.width).Height(layout.Units(height))
	return layout.NewNode(limits.Resolve(graphics.SizeZero))
}

func (s Slider[M]) Draw(r core.Renderer, l layout.Layout, cursor graphics.Offset) {
	sr, ok := capability[SliderRenderer](r, "widgets.Slider.Draw", "slider", "widgets.SliderRenderer")
	if !ok {
		return
	}
	sr.DrawSlider(l.Bounds(), cursor, s.rng, s.value, s.state.isDragging, s.style)
}

func (s Slider[M]) OnEvent(ev event.Event, l layout.Layout, cursor graphics.Offset, messages *core.Messages[M], _ core.Renderer, _ core.Clipboard) {
	m, ok := ev.(event.Mouse)
	if !ok {
		return
	}
	bounds := l.Bounds()
	switch {
	case m.Kind == event.ButtonPressed && m.Button == event.ButtonLeft:
		if bounds.Contains(cursor) {
			s.change(messages, ValueAt(bounds, s.rng, cursor.X))
			s.state.isDragging = true
		}
	case m.Kind == event.ButtonReleased && m.Button == event.ButtonLeft:
		if s.state.isDragging {
			if s.onRelease != nil {
				messages.Push(*s.onRelease)
			}
			s.state.isDragging = false
		}
	case m.Kind == event.CursorMoved:
		if s.state.isDragging {
			s.change(messages, ValueAt(bounds, s.rng, cursor.X))
		}
	}
}

func (s Slider[M]) change(messages *core.Messages[M], value float64) {
	if s.onChange != nil {
		messages.Push(s.onChange(value))
	}
}

// HashLayout hashes the width policy only; value, range and drag state affect
// drawing but not size.
func (s Slider[M]) HashLayout(h *layout.Hasher) {
	h.WriteKind("widgets.Slider")
	s.width.Hash(h)
}

// ValueAt maps a horizontal cursor position over bounds to a value in rng.
// Positions at or left of the left edge give Start; at or right of the right
// edge give End; positions in between interpolate linearly.
func ValueAt(bounds graphics.Rect, rng Range, x float64) float64 {
	switch {
	case x <= bounds.Left:
		return rng.Start
	case x >= bounds.Right:
		return rng.End
	default:
		percent := (x - bounds.Left) / bounds.Width()
		return (rng.End-rng.Start)*percent + rng.Start
	}
}
