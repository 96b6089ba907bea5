// Package theme maps style tokens to concrete colors and metrics.
//
// Widgets only carry a Style token; renderers resolve it against a
// ThemeData when painting.
package theme

import "github.com/go-drift/panes/pkg/graphics"

// Style is an opaque style token carried by widgets. The empty token is the
// default style.
type Style string

const (
	// StyleDefault is the style used when none is set.
	StyleDefault Style = ""
	// StylePrimary highlights the widget.
	StylePrimary Style = "primary"
	// StyleFocused is used by pane chrome when the pane has focus.
	StyleFocused Style = "focused"
)

// Palette holds the colors a style resolves to.
type Palette struct {
	Background graphics.Color `yaml:"background"`
	Foreground graphics.Color `yaml:"foreground"`
	Accent     graphics.Color `yaml:"accent"`
	Border     graphics.Color `yaml:"border"`
}

// Brightness indicates if a theme is light or dark.
type Brightness string

const (
	BrightnessLight Brightness = "light"
	BrightnessDark  Brightness = "dark"
)

// ThemeData contains all theme configuration for a widget tree.
type ThemeData struct {
	// Version is the semantic version of the theme schema.
	Version string `yaml:"version"`

	// Brightness indicates if this is a light or dark theme.
	Brightness Brightness `yaml:"brightness"`

	// TextSize is the default text size in logical pixels.
	TextSize float64 `yaml:"text_size"`

	// SliderHeight is the natural height of a slider rail and handle.
	SliderHeight float64 `yaml:"slider_height"`

	// SliderHandleWidth is the width of the slider handle.
	SliderHandleWidth float64 `yaml:"slider_handle_width"`

	// TitleBarPadding is the space around pane title bar content.
	TitleBarPadding float64 `yaml:"title_bar_padding"`

	// Palettes maps style tokens to colors. StyleDefault must be present.
	Palettes map[Style]Palette `yaml:"palettes"`
}

// SchemaVersion is the theme schema version this package writes.
const SchemaVersion = "v1.0.0"

// DefaultLightTheme returns the default light theme.
func DefaultLightTheme() *ThemeData {
	return &ThemeData{
		Version:           SchemaVersion,
		Brightness:        BrightnessLight,
		TextSize:          13,
		SliderHeight:      22,
		SliderHandleWidth: 8,
		TitleBarPadding:   5,
		Palettes: map[Style]Palette{
			StyleDefault: {
				Background: graphics.RGB(0xF5, 0xF5, 0xF5),
				Foreground: graphics.RGB(0x21, 0x21, 0x21),
				Accent:     graphics.RGB(0x19, 0x76, 0xD2),
				Border:     graphics.RGB(0xBD, 0xBD, 0xBD),
			},
			StylePrimary: {
				Background: graphics.RGB(0x19, 0x76, 0xD2),
				Foreground: graphics.ColorWhite,
				Accent:     graphics.RGB(0x0D, 0x47, 0xA1),
				Border:     graphics.RGB(0x0D, 0x47, 0xA1),
			},
			StyleFocused: {
				Background: graphics.RGB(0x30, 0x30, 0x30),
				Foreground: graphics.ColorWhite,
				Accent:     graphics.RGB(0x64, 0xB5, 0xF6),
				Border:     graphics.RGB(0x64, 0xB5, 0xF6),
			},
		},
	}
}

// DefaultDarkTheme returns the default dark theme.
func DefaultDarkTheme() *ThemeData {
	t := DefaultLightTheme()
	t.Brightness = BrightnessDark
	t.Palettes[StyleDefault] = Palette{
		Background: graphics.RGB(0x21, 0x21, 0x21),
		Foreground: graphics.RGB(0xEE, 0xEE, 0xEE),
		Accent:     graphics.RGB(0x90, 0xCA, 0xF9),
		Border:     graphics.RGB(0x42, 0x42, 0x42),
	}
	return t
}

// Resolve returns the palette for style, falling back to the default palette.
func (t *ThemeData) Resolve(style Style) Palette {
	if p, ok := t.Palettes[style]; ok {
		return p
	}
	return t.Palettes[StyleDefault]
}
