package theme_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-drift/panes/pkg/graphics"
	"github.com/go-drift/panes/pkg/theme"
)

func TestParse_OverridesDefaults(t *testing.T) {
	data := `
version: v1.2.0
brightness: dark
slider_height: 30
palettes:
  primary:
    background: "#112233"
    foreground: "#FFFFFF"
    accent: "#445566"
    border: "#778899"
`
	th, err := theme.Parse([]byte(data))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if th.SliderHeight != 30 {
		t.Errorf("expected slider height 30, got %v", th.SliderHeight)
	}
	if th.TextSize != 13 {
		t.Errorf("expected default text size 13, got %v", th.TextSize)
	}
	if got := th.Resolve(theme.StylePrimary).Background; got != graphics.RGB(0x11, 0x22, 0x33) {
		t.Errorf("expected primary background #112233, got %s", got)
	}
	if got := th.Resolve(theme.StyleDefault); got != theme.DefaultDarkTheme().Resolve(theme.StyleDefault) {
		t.Errorf("expected dark default palette to be kept, got %+v", got)
	}
}

func TestParse_Validation(t *testing.T) {
	tests := map[string]string{
		"missing version": "brightness: light\n",
		"bad version":     "version: one\n",
		"future major":    "version: v2.0.0\n",
		"bad height":      "version: v1.0.0\nslider_height: 0\n",
		"bad padding":     "version: v1.0.0\ntitle_bar_padding: -1\n",
		"bad brightness":  "version: v1.0.0\nbrightness: dim\n",
		"bad color":       "version: v1.0.0\npalettes:\n  primary:\n    accent: nope\n",
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := theme.Parse([]byte(data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := theme.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected a not-exist error, got %v", err)
	}
}

func TestLoadOptional(t *testing.T) {
	th, err := theme.LoadOptional(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadOptional: %v", err)
	}
	if th.Brightness != theme.BrightnessLight {
		t.Errorf("expected light default, got %s", th.Brightness)
	}

	path := filepath.Join(t.TempDir(), "theme.yaml")
	if err := os.WriteFile(path, []byte("version: v1.0.0\ntext_size: 20\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	th, err = theme.LoadOptional(path)
	if err != nil {
		t.Fatalf("LoadOptional: %v", err)
	}
	if th.TextSize != 20 {
		t.Errorf("expected text size 20, got %v", th.TextSize)
	}

	if err := os.WriteFile(path, []byte("version: [\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := theme.LoadOptional(path); err == nil || !strings.Contains(err.Error(), "parse") {
		t.Errorf("expected parse error, got %v", err)
	}
}
