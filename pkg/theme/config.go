package theme

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// Load reads a theme file, layering it over the default theme for its
// brightness. The file must exist.
func Load(path string) (*ThemeData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme: %w", err)
	}
	return Parse(data)
}

// LoadOptional is Load for a path that may be empty or name a missing file;
// both yield the light theme.
func LoadOptional(path string) (*ThemeData, error) {
	if path == "" {
		return DefaultLightTheme(), nil
	}
	t, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultLightTheme(), nil
	}
	return t, err
}

// Parse decodes YAML theme data over the defaults and validates it.
func Parse(data []byte) (*ThemeData, error) {
	var header struct {
		Brightness Brightness `yaml:"brightness"`
	}
	if err := yaml.Unmarshal(data, &header); err != nil {
		return nil, fmt.Errorf("failed to parse theme: %w", err)
	}

	t := DefaultLightTheme()
	if header.Brightness == BrightnessDark {
		t = DefaultDarkTheme()
	}
	defaults := t.Palettes
	t.Palettes = nil
	t.Version = ""
	if err := yaml.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("failed to parse theme: %w", err)
	}
	if t.Palettes == nil {
		t.Palettes = defaults
	} else {
		for style, p := range defaults {
			if _, ok := t.Palettes[style]; !ok {
				t.Palettes[style] = p
			}
		}
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate checks the schema version and metrics.
func (t *ThemeData) Validate() error {
	v := t.Version
	if v == "" {
		return fmt.Errorf("theme version is required")
	}
	if !semver.IsValid(v) {
		return fmt.Errorf("invalid theme version %q: want semantic version like %s", v, SchemaVersion)
	}
	if semver.Major(v) != semver.Major(SchemaVersion) {
		return fmt.Errorf("unsupported theme version %s: this build reads %s.x", v, semver.Major(SchemaVersion))
	}
	switch t.Brightness {
	case BrightnessLight, BrightnessDark:
	default:
		return fmt.Errorf("invalid brightness %q", t.Brightness)
	}
	if t.TextSize <= 0 {
		return fmt.Errorf("text_size must be positive, got %v", t.TextSize)
	}
	if t.SliderHeight <= 0 {
		return fmt.Errorf("slider_height must be positive, got %v", t.SliderHeight)
	}
	if t.SliderHandleWidth < 0 {
		return fmt.Errorf("slider_handle_width must not be negative, got %v", t.SliderHandleWidth)
	}
	if t.TitleBarPadding < 0 {
		return fmt.Errorf("title_bar_padding must not be negative, got %v", t.TitleBarPadding)
	}
	if _, ok := t.Palettes[StyleDefault]; !ok {
		return fmt.Errorf("theme must define the default palette")
	}
	return nil
}
