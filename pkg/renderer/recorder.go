// Package renderer provides Recorder, a renderer that measures text with
// bundled font metrics and records paint operations instead of rasterizing
// them. It backs tests and the panes CLI.
package renderer

import (
	"io"
	"math"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/panes/pkg/core"
	"github.com/go-drift/panes/pkg/graphics"
	"github.com/go-drift/panes/pkg/layout"
	"github.com/go-drift/panes/pkg/panegrid"
	"github.com/go-drift/panes/pkg/theme"
	"github.com/go-drift/panes/pkg/widgets"
)

// Op is one recorded paint operation.
type Op struct {
	Op     string         `yaml:"op"`
	Bounds graphics.Rect  `yaml:"bounds"`
	Style  theme.Style    `yaml:"style,omitempty"`
	Fill   graphics.Color `yaml:"fill,omitempty"`
	Params map[string]any `yaml:"params,omitempty"`
}

// Recorder records paint operations in paint order.
type Recorder struct {
	theme *theme.ThemeData
	fonts *graphics.FontManager
	face  string
	ops   []Op
}

var (
	_ widgets.TextRenderer   = (*Recorder)(nil)
	_ widgets.ButtonRenderer = (*Recorder)(nil)
	_ widgets.SliderRenderer = (*Recorder)(nil)
	_ panegrid.Renderer      = (*Recorder)(nil)
	_ core.LayoutHasher      = (*Recorder)(nil)
)

// NewRecorder creates a recorder for t. A nil theme uses the light theme.
func NewRecorder(t *theme.ThemeData) *Recorder {
	if t == nil {
		t = theme.DefaultLightTheme()
	}
	return &Recorder{theme: t, fonts: graphics.DefaultFontManager()}
}

// WithFonts replaces the font manager and face used for measurement.
func (r *Recorder) WithFonts(fonts *graphics.FontManager, face string) *Recorder {
	r.fonts = fonts
	r.face = face
	return r
}

// Theme returns the theme styles resolve against.
func (r *Recorder) Theme() *theme.ThemeData {
	return r.theme
}

// Ops returns the recorded operations.
func (r *Recorder) Ops() []Op {
	return r.ops
}

// Find returns the recorded operations named op.
func (r *Recorder) Find(op string) []Op {
	var found []Op
	for _, o := range r.ops {
		if o.Op == op {
			found = append(found, o)
		}
	}
	return found
}

// Reset drops the recorded operations.
func (r *Recorder) Reset() {
	r.ops = nil
}

// WriteYAML writes the recorded operations as a YAML list.
func (r *Recorder) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r.ops); err != nil {
		return err
	}
	return enc.Close()
}

// LayoutHash writes the theme metrics and the fonts that text measurement
// and slider layout read.
func (r *Recorder) LayoutHash(h *layout.Hasher) {
	h.WriteKind("renderer.Recorder")
	h.WriteFloat64(r.theme.TextSize)
	h.WriteFloat64(r.theme.SliderHeight)
	h.WriteUint64(r.fonts.Revision())
	h.WriteString(r.face)
}

func (r *Recorder) DefaultTextSize() float64 {
	return r.theme.TextSize
}

func (r *Recorder) MeasureText(content string, size float64, bounds graphics.Size) graphics.Size {
	tl, err := graphics.LayoutText(content, graphics.TextStyle{FontSize: size}, r.fonts, r.face, bounds.Width)
	if err != nil {
		return graphics.SizeZero
	}
	return tl.Size
}

func (r *Recorder) DrawText(bounds graphics.Rect, content string, size float64, style theme.Style) {
	r.ops = append(r.ops, Op{
		Op:     "text",
		Bounds: bounds,
		Style:  style,
		Fill:   r.theme.Resolve(style).Foreground,
		Params: map[string]any{"content": content, "size": size},
	})
}

func (r *Recorder) DrawButton(bounds graphics.Rect, cursor graphics.Offset, pressed bool, style theme.Style, content core.Part) {
	palette := r.theme.Resolve(style)
	fill := palette.Background
	if pressed {
		fill = palette.Accent
	}
	r.ops = append(r.ops, Op{
		Op:     "button",
		Bounds: bounds,
		Style:  style,
		Fill:   fill,
		Params: map[string]any{"pressed": pressed, "hovered": bounds.Contains(cursor)},
	})
	content.Content.Draw(r, content.Layout, cursor)
}

func (r *Recorder) SliderHeight() float64 {
	return r.theme.SliderHeight
}

func (r *Recorder) DrawSlider(bounds graphics.Rect, cursor graphics.Offset, rng widgets.Range, value float64, dragging bool, style theme.Style) {
	palette := r.theme.Resolve(style)
	handle := sliderHandle(bounds, rng, value, r.theme.SliderHandleWidth)
	fill := palette.Foreground
	if dragging {
		fill = palette.Accent
	}
	r.ops = append(r.ops, Op{
		Op:     "slider",
		Bounds: bounds,
		Style:  style,
		Fill:   fill,
		Params: map[string]any{
			"start":    rng.Start,
			"end":      rng.End,
			"value":    value,
			"dragging": dragging,
			"hovered":  bounds.Contains(cursor),
			"handle":   handle,
		},
	})
}

func (r *Recorder) DrawTitleBar(bounds graphics.Rect, style theme.Style, title core.Part, controls *core.Part, cursor graphics.Offset) {
	r.ops = append(r.ops, Op{
		Op:     "title_bar",
		Bounds: bounds,
		Style:  style,
		Fill:   r.theme.Resolve(style).Background,
		Params: map[string]any{"controls": controls != nil, "hovered": bounds.Contains(cursor)},
	})
	title.Content.Draw(r, title.Layout, cursor)
	if controls != nil {
		controls.Content.Draw(r, controls.Layout, cursor)
	}
}

// sliderHandle places the handle so that Start puts it flush left and End
// flush right.
func sliderHandle(bounds graphics.Rect, rng widgets.Range, value, handleWidth float64) graphics.Rect {
	span := rng.End - rng.Start
	percent := 0.0
	if span != 0 {
		percent = (value - rng.Start) / span
	}
	percent = math.Min(math.Max(percent, 0), 1)
	track := math.Max(bounds.Width()-handleWidth, 0)
	return graphics.RectFromLTWH(bounds.Left+track*percent, bounds.Top, handleWidth, bounds.Height())
}
